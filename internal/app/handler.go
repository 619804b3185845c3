package app

import (
	"github.com/betops/bonusledger/internal/domain"
	"github.com/betops/bonusledger/internal/http/handlers"
	"github.com/betops/bonusledger/internal/infrastructure/auth"
	"github.com/betops/bonusledger/internal/infrastructure/logger"
)

func (a *application) InitOperatorHandler(uc domain.OperatorUseCase, jwt auth.JWTService) *handlers.OperatorHandler {
	return handlers.NewOperatorHandler(uc, jwt)
}

func (a *application) InitGrantHandler(uc domain.GrantUseCase, log *logger.Logger) *handlers.GrantHandler {
	return handlers.NewGrantHandler(uc, log)
}

func (a *application) InitLedgerHandler(uc domain.LedgerUseCase, log *logger.Logger) *handlers.LedgerHandler {
	return handlers.NewLedgerHandler(uc, log)
}

func (a *application) InitGameHandler(uc domain.GameUseCase) *handlers.GameHandler {
	return handlers.NewGameHandler(uc)
}

func (a *application) InitPlayerHandler(pr domain.PlayerRepository, ds domain.DirectoryService, log *logger.Logger) *handlers.PlayerHandler {
	return handlers.NewPlayerHandler(pr, ds, log)
}
