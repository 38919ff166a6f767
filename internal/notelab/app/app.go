package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "github.com/nclabhq/notelab/internal/notelab/http"
	"github.com/nclabhq/notelab/internal/notelab/provider"
	"github.com/nclabhq/notelab/internal/notelab/service"
	"github.com/nclabhq/notelab/internal/notelab/store"
	"github.com/nclabhq/notelab/internal/notelab/store/drivers/sqlite"
	"github.com/nclabhq/notelab/pkg/cryptox"
	"github.com/nclabhq/notelab/pkg/jwtx"
	"github.com/nclabhq/notelab/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags. Later problem
	BuildVersion = "v0.1.0"
)

// Application encapsulates the notelab service with all its dependencies
type Application struct {
	cfg    Config
	logger *slog.Logger

	// Core dependencies
	db        store.Store
	signer    jwtx.Signer
	keys      *jwtx.KeySet
	providers *provider.Registry

	// Services
	authService         *service.AuthService
	linkService         *service.LinkService
	sessionService      *service.SessionService
	accountService      *service.AccountService
	notesService        *service.NotesService
	housekeepingService *service.HousekeepingService

	// HTTP server
	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "notelab",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	// Set pepper path for password hashing
	cryptox.SetPepperPath(app.cfg.PepperFile)

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	signer, keys, err := initSessionKeys(app.logger)
	if err != nil {
		return nil, err
	}
	app.signer = signer
	app.keys = keys

	app.initProviders()
	app.initServices()
	app.initHTTP()

	return app, nil
}

// Run starts the application and blocks until shutdown is requested
func (app *Application) Run() error {
	// Start housekeeping service
	app.housekeepingService.Start()

	app.logger.Info("notelab service starting", "port", app.cfg.Port, "version", BuildVersion)

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
		if err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		// Perform graceful shutdown
		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully shuts down the application
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down notelab service...")

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

	// Stop the housekeeping service
	app.housekeepingService.Stop()

	// Close database connection
	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("notelab service stopped")
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

	empty, err := db.Users().IsEmpty(context.Background())
	if err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to check user store: %w", err)
	}
	if empty {
		app.logger.Info("no accounts yet, awaiting first registration",
			"registration_key_set", app.cfg.RegistrationKey != "")
	}
	return nil
}

// initProviders registers the external sign-in providers that have
// credentials configured.
func (app *Application) initProviders() {
	app.providers = provider.NewRegistry()

	if app.cfg.GitHubClientID != "" {
		app.providers.Register(provider.NewGitHub(
			app.cfg.GitHubClientID,
			app.cfg.GitHubClientSecret,
			app.cfg.ServerURL+"/v1/auth/github/callback",
		))
		app.logger.Info("github sign-in enabled")
	}

	if app.cfg.GoogleClientID != "" {
		app.providers.Register(provider.NewGoogle(
			app.cfg.GoogleClientID,
			app.cfg.GoogleClientSecret,
			app.cfg.ServerURL+"/v1/auth/google/callback",
		))
		app.logger.Info("google sign-in enabled")
	}
}

// initServices initializes all business logic services
func (app *Application) initServices() {
	app.authService = &service.AuthService{
		Store:              app.db,
		RegistrationKey:    app.cfg.RegistrationKey,
		AllowEmailRegister: app.cfg.AllowEmailRegister,
	}

	app.linkService = &service.LinkService{
		Store:           app.db,
		RegistrationKey: app.cfg.RegistrationKey,
		StateTTL:        service.DefaultStateTTL,
	}

	app.sessionService = &service.SessionService{
		Signer: app.signer,
		Issuer: app.cfg.Issuer,
		TTL:    app.cfg.SessionTTL,
	}

	app.accountService = &service.AccountService{Store: app.db}
	app.notesService = &service.NotesService{Store: app.db}

	app.housekeepingService = service.NewHousekeepingService(
		app.db,
		app.logger,
		app.cfg.HousekeepingInterval,
	)
}

// initHTTP initializes the HTTP router and server
func (app *Application) initHTTP() {
	verifier := jwtx.NewVerifierEdDSA(app.keys, app.cfg.Issuer, []string{app.cfg.Issuer})

	router := httpapi.NewRouter(
		app.keys,
		verifier,
		app.cfg.Issuer,
		BuildVersion,
		app.db,
		app.logger,
	)

	// Wire services to router
	router.Providers = app.providers
	router.AuthService = app.authService
	router.LinkService = app.linkService
	router.SessionService = app.sessionService
	router.AccountService = app.accountService
	router.NotesService = app.notesService
	router.ApplyRoutes()

	app.router = router

	// Initialize HTTP server
	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
