package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "github.com/smicho01/todos-rest-api/internal/todos/http"
	"github.com/smicho01/todos-rest-api/internal/todos/service"
	"github.com/smicho01/todos-rest-api/internal/todos/store"
	"github.com/smicho01/todos-rest-api/internal/todos/store/drivers/sqlite"
	"github.com/smicho01/todos-rest-api/pkg/jwtx"
	"github.com/smicho01/todos-rest-api/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags. Later problem
	BuildVersion = "v0.1.0"
)

// Application encapsulates the todos service with all its dependencies.
type Application struct {
	cfg    Config
	logger *slog.Logger

	// Core dependencies
	db       store.Store
	signer   *jwtx.Signer
	verifier *jwtx.Verifier

	// Services
	auditService    *service.AuditService
	tokenService    *service.TokenService
	userService     *service.UserService
	categoryService *service.CategoryService
	todoService     *service.TodoService
	guardService    *service.GuardService

	// HTTP server
	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized.
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "todos-service",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	if cfg.TokenSecret == "" {
		return nil, errors.New("TODO_TOKEN_SECRET must be set")
	}

	signer, err := jwtx.NewSigner([]byte(cfg.TokenSecret))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize token signer: %w", err)
	}
	verifier, err := jwtx.NewVerifier([]byte(cfg.TokenSecret), cfg.Issuer)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize token verifier: %w", err)
	}
	app.signer = signer
	app.verifier = verifier

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	app.initServices()
	app.initHTTP()

	return app, nil
}

// Run starts the application and blocks until shutdown is requested.
func (app *Application) Run() error {
	app.logger.Info("todos service starting", "port", app.cfg.Port, "version", BuildVersion)

	// Start server in a goroutine
	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	// Setup signal handling for graceful shutdown
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a shutdown signal or server error
	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully shuts down the application.
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down todos service...")

	// Give outstanding requests a deadline for completion
	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	// Shutdown the HTTP server
	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	// Let in-flight audit writes land before the database goes away
	app.auditService.Flush()

	// Close database connection
	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("todos service stopped")
	return nil
}

// initDatabase initializes the database and applies migrations
func (app *Application) initDatabase() error {
	host := fmt.Sprintf("file:%s?_busy_timeout=5000&_journal_mode=WAL", app.cfg.DatabaseFile)
	db, err := sqlite.NewStore(host)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied successfully")
	return nil
}

// initServices initializes all business logic services
func (app *Application) initServices() {
	app.auditService = &service.AuditService{
		Store:  app.db,
		Logger: app.logger,
	}

	app.tokenService = &service.TokenService{
		Signer:   app.signer,
		Verifier: app.verifier,
		Issuer:   app.cfg.Issuer,
		TTL:      app.cfg.TokenTTL,
	}

	app.userService = &service.UserService{Store: app.db, Audit: app.auditService}
	app.categoryService = &service.CategoryService{Store: app.db, Audit: app.auditService}
	app.todoService = &service.TodoService{Store: app.db, Audit: app.auditService}
	app.guardService = &service.GuardService{Audit: app.auditService}
}

// initHTTP initializes the HTTP router and server
func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		app.verifier,
		BuildVersion,
		app.db,
		app.logger,
	)

	// Wire services to router
	router.AuditService = app.auditService
	router.TokenService = app.tokenService
	router.UserService = app.userService
	router.CategoryService = app.categoryService
	router.TodoService = app.todoService
	router.GuardService = app.guardService
	router.ApplyRoutes()

	app.router = router

	// Initialize HTTP server
	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
