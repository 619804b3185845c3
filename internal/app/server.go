package app

import (
	"context"

	"github.com/betops/bonusledger/internal/domain"
	"github.com/betops/bonusledger/internal/http"
	"github.com/betops/bonusledger/internal/http/handlers"
	"github.com/betops/bonusledger/internal/http/middleware"
	"github.com/betops/bonusledger/internal/infrastructure/auth"
	"github.com/betops/bonusledger/internal/infrastructure/logger"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// InitHTTPServer initializes the HTTP server with all dependencies
func (a *application) InitHTTPServer(
	jwtService auth.JWTService,
	operatorHandler *handlers.OperatorHandler,
	grantHandler *handlers.GrantHandler,
	ledgerHandler *handlers.LedgerHandler,
	gameHandler *handlers.GameHandler,
	playerHandler *handlers.PlayerHandler,
	errorHandler *middleware.ErrorHandler,
) *http.Server {
	if a.config.Server.Port == "" {
		a.config.Server.Port = "8080" // default port
	}

	return http.NewServer(jwtService, operatorHandler, grantHandler, ledgerHandler, gameHandler, playerHandler, errorHandler, a.config.GetServerAddress())
}

// registerHooks ties the HTTP server and outbox processor to the fx lifecycle
func (a *application) registerHooks(
	lc fx.Lifecycle,
	server *http.Server,
	processor domain.OutboxProcessor,
	log *logger.Logger,
) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			processor.StartBackgroundProcessing()
			go func() {
				if err := server.Start(); err != nil {
					log.Fatal("HTTP server failed", zap.Error(err))
				}
			}()
			log.Info("Bonus ledger service started", zap.String("port", a.config.Server.Port))
			return nil
		},
		OnStop: func(ctx context.Context) error {
			processor.StopBackgroundProcessing()
			_ = log.Sync()
			return nil
		},
	})
}
