package app

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/betops/bonusledger/internal/config"
	"go.uber.org/fx"
)

// Application provides application level setup
type Application interface {
	Setup()
	GetContext() context.Context
}

// application represents context and configure file
type application struct {
	ctx    context.Context
	config *config.Config
}

// NewApplication creates a new application
func NewApplication(ctx context.Context) Application {
	return &application{ctx: ctx}
}

// GetContext returns application context
func (a *application) GetContext() context.Context {
	return a.ctx
}

// Setup creates a new fx application with all modules
func (a *application) Setup() {
	fmt.Println("[x] Starting Bonus Ledger Service...")

	path := flag.String("e", "./config", "env file directory")
	flag.Parse()

	err := a.setupViper(*path)
	if err != nil {
		log.Panic(err.Error())
	}

	app := fx.New(
		fx.Provide(
			a.InitLogger,
			a.InitDatabase,
			a.InitJWTService,
			a.InitGrantLockManager,
			a.InitErrorHandler,
			a.InitRepository,
			a.InitDirectoryService,
			a.InitOperatorUseCase,
			a.InitGrantUseCase,
			a.InitLedgerUseCase,
			a.InitGameUseCase,
			a.InitOutboxProcessor,
			a.InitOperatorHandler,
			a.InitGrantHandler,
			a.InitLedgerHandler,
			a.InitGameHandler,
			a.InitPlayerHandler,
			a.InitHTTPServer,
		),
		fx.Invoke(a.registerHooks),
	)

	app.Run()
}
