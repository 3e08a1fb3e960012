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

	httpapi "github.com/callbridgehq/callbridge/internal/callbridge/http"
	"github.com/callbridgehq/callbridge/internal/callbridge/service"
	"github.com/callbridgehq/callbridge/internal/callbridge/store"
	"github.com/callbridgehq/callbridge/internal/callbridge/store/drivers/sqlite"
	"github.com/callbridgehq/callbridge/pkg/cryptox"
	"github.com/callbridgehq/callbridge/pkg/jwtx"
	"github.com/callbridgehq/callbridge/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags. Later problem
	BuildVersion = "v0.1.0"
)

// Application encapsulates the scheduling service with all its dependencies.
type Application struct {
	cfg    Config
	logger *slog.Logger

	// Core dependencies
	db     store.Store
	signer *jwtx.Signer

	// Services
	onboardingService   *service.OnboardingService
	invitationService   *service.InvitationService
	callService         *service.CallService
	feedbackService     *service.FeedbackService
	statsService        *service.StatsService
	housekeepingService *service.HousekeepingService

	// HTTP server
	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized.
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "callbridge",
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

	// Session tokens are signed with an ephemeral Ed25519 key; sessions do
	// not survive a restart.
	signer, err := jwtx.NewEphemeralSigner(app.cfg.Issuer)
	if err != nil {
		_ = app.db.Close()
		return nil, fmt.Errorf("failed to initialize session signer: %w", err)
	}
	app.signer = signer

	app.initServices()
	app.initHTTP()

	return app, nil
}

// Run starts the application and blocks until shutdown is requested.
func (app *Application) Run() error {
	app.housekeepingService.Start()

	app.logger.Info("callbridge service starting", "port", app.cfg.Port, "version", BuildVersion)

	// Start server in a goroutine
	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	// Setup signal handling for graceful shutdown
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
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
	app.logger.Info("shutting down callbridge service...")

	// Give outstanding requests a deadline for completion
	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	app.housekeepingService.Stop()

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("callbridge service stopped")
	return nil
}

// initDatabase initializes the database and applies migrations.
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

// initServices initializes all business logic services.
func (app *Application) initServices() {
	app.onboardingService = &service.OnboardingService{
		Store:                         app.db,
		Signer:                        app.signer,
		BootstrapToken:                app.cfg.BootstrapToken,
		DefaultCallCredits:            app.cfg.DefaultCallCredits,
		DefaultMonthlyInvitationLimit: app.cfg.DefaultMonthlyInvitationLimit,
		SessionTTL:                    app.cfg.SessionTTL,
	}

	app.invitationService = &service.InvitationService{
		Store:      app.db,
		Signer:     app.signer,
		TTL:        app.cfg.InvitationTTL,
		SessionTTL: app.cfg.SessionTTL,
	}

	app.callService = &service.CallService{Store: app.db}
	app.feedbackService = &service.FeedbackService{Store: app.db}
	app.statsService = &service.StatsService{
		Store:       app.db,
		Invitations: app.invitationService,
		Calls:       app.callService,
	}

	app.housekeepingService = &service.HousekeepingService{
		Store:    app.db,
		Logger:   app.logger,
		Interval: app.cfg.SweepInterval,
	}
}

// initHTTP initializes the HTTP router and server.
func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		app.signer,
		BuildVersion,
		app.db,
		app.logger,
	)

	// Wire services to router
	router.OnboardingService = app.onboardingService
	router.InvitationService = app.invitationService
	router.CallService = app.callService
	router.FeedbackService = app.feedbackService
	router.StatsService = app.statsService
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
