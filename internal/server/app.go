// Package server initializes and runs the dilbilim application: it opens the
// store, applies migrations, builds the services, and serves the HTTP API
// until a termination signal arrives.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/dilbilim/internal/dbx"
	"github.com/dmitrijs2005/dilbilim/internal/logging"
	"github.com/dmitrijs2005/dilbilim/internal/server/config"
	"github.com/dmitrijs2005/dilbilim/internal/server/httpapi"
	"github.com/dmitrijs2005/dilbilim/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/dilbilim/internal/server/services"
	"github.com/dmitrijs2005/dilbilim/internal/server/storage"
	"github.com/gin-gonic/gin"
)

type App struct {
	config          *config.Config
	logger          logging.Logger
	db              *sql.DB
	userService     *services.UserService
	languageService *services.LanguageService
}

// NewApp opens the configured store and brings its schema up to date.
// The caller owns the returned App and must Close it.
func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	dialect, err := dbx.ParseDialect(c.DatabaseDriver)
	if err != nil {
		return nil, err
	}

	db, err := storage.Open(ctx, dialect, c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	rm, err := repomanager.NewSQLRepositoryManager(dialect)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	if err := rm.RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration error: %w", err)
	}

	logger.Info(ctx, "Store ready", "driver", string(dialect))

	return &App{
		config:          c,
		logger:          logger,
		db:              db,
		userService:     services.NewUserService(db, rm, c, logger.With("module", "users")),
		languageService: services.NewLanguageService(db, rm, logger.With("module", "languages")),
	}, nil
}

func (app *App) UserService() *services.UserService {
	return app.userService
}

func (app *App) LanguageService() *services.LanguageService {
	return app.languageService
}

func (app *App) Close() error {
	return app.db.Close()
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) error {
	if app.config.LogLevel == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	s := httpapi.NewHTTPServer(app.config.EndpointAddrHTTP, app.config.ShutdownTimeout,
		app.logger, app.userService, app.languageService)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
		return err
	}
	return nil
}

// Run serves until ctx is cancelled or SIGINT/SIGTERM/SIGQUIT arrives, then
// closes the store.
func (app *App) Run(ctx context.Context) error {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var (
		wg     sync.WaitGroup
		runErr error
	)

	wg.Add(1)
	go func() {
		defer wg.Done()
		runErr = app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.Close(); err != nil {
		app.logger.Error(ctx, "closing store", "error", err)
	}

	app.logger.Info(ctx, "App stopped")
	return runErr
}
