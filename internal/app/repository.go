package app

import (
	"github.com/betops/bonusledger/internal/domain"
	"github.com/betops/bonusledger/internal/infrastructure/repository"
	"gorm.io/gorm"
)

func (a *application) InitRepository(db *gorm.DB) (
	domain.PlayerRepository,
	domain.GameRepository,
	domain.GrantRepository,
	domain.OperatorRepository,
	domain.OutboxRepository,
) {
	return repository.NewPlayerRepository(db),
		repository.NewGameRepository(db),
		repository.NewGrantRepository(db),
		repository.NewOperatorRepository(db),
		repository.NewOutboxRepository(db)
}
