package app

import (
	"github.com/betops/bonusledger/internal/domain"
	"github.com/betops/bonusledger/internal/infrastructure/auth"
	"github.com/betops/bonusledger/internal/infrastructure/lock"
	"github.com/betops/bonusledger/internal/infrastructure/logger"
	"github.com/betops/bonusledger/internal/usecase/game"
	"github.com/betops/bonusledger/internal/usecase/grant"
	"github.com/betops/bonusledger/internal/usecase/ledger"
	"github.com/betops/bonusledger/internal/usecase/operator"
)

func (a *application) InitOperatorUseCase(or domain.OperatorRepository, jwt auth.JWTService, log *logger.Logger) domain.OperatorUseCase {
	return operator.NewOperatorUseCase(or, jwt, log)
}

func (a *application) InitGrantUseCase(
	pr domain.PlayerRepository,
	gr domain.GameRepository,
	grr domain.GrantRepository,
	obr domain.OutboxRepository,
	lm *lock.GrantLockManager,
	log *logger.Logger,
) domain.GrantUseCase {
	return grant.NewGrantUseCase(pr, gr, grr, obr, lm, log)
}

func (a *application) InitLedgerUseCase(grr domain.GrantRepository, log *logger.Logger) domain.LedgerUseCase {
	return ledger.NewLedgerUseCase(grr, log)
}

func (a *application) InitGameUseCase(gr domain.GameRepository, log *logger.Logger) domain.GameUseCase {
	return game.NewGameUseCase(gr, log)
}
