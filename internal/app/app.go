package app

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/saradorri/economyengine/internal/config"
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
	store  *config.Store
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
	fmt.Println("[x] Starting Economy Engine Service...")

	path := flag.String("e", "./config", "env file directory")
	flag.Parse()

	err := a.setupViper(*path)
	if err != nil {
		log.Panic(err.Error())
	}

	app := fx.New(
		fx.NopLogger,
		fx.Provide(
			a.InitConfigStore,
			a.InitLogger,
			a.InitDatabase,
			a.InitAccountLockManager,
			a.InitJWTService,
			a.InitErrorHandler,
			a.InitGroupService,
		),
		repositoryModule,
		usecaseModule,
		handlerModule,
		fx.Provide(
			a.InitOutboxProcessor,
			a.InitHTTPServer,
		),
		fx.Invoke(
			a.watchConfig,
			a.registerLifecycle,
		),
	)

	app.Run()
}

// InitConfigStore exposes the loaded configuration
func (a *application) InitConfigStore() *config.Store {
	return a.store
}
