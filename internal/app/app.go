package app

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver for database/sql

	"github.com/ranklens/ranklens-backend/internal/adapter/postgres"
	contentprojectrepo "github.com/ranklens/ranklens-backend/internal/adapter/postgres/contentproject"
	leadrepo "github.com/ranklens/ranklens-backend/internal/adapter/postgres/lead"
	profilerepo "github.com/ranklens/ranklens-backend/internal/adapter/postgres/profile"
	savedkeywordrepo "github.com/ranklens/ranklens-backend/internal/adapter/postgres/savedkeyword"
	anthropicprovider "github.com/ranklens/ranklens-backend/internal/adapter/provider/anthropic"
	"github.com/ranklens/ranklens-backend/internal/adapter/provider/pagemeta"
	"github.com/ranklens/ranklens-backend/internal/auth"
	"github.com/ranklens/ranklens-backend/internal/config"
	"github.com/ranklens/ranklens-backend/internal/localstate"
	"github.com/ranklens/ranklens-backend/internal/metrics"
	authservice "github.com/ranklens/ranklens-backend/internal/service/auth"
	profileservice "github.com/ranklens/ranklens-backend/internal/service/profile"
	"github.com/ranklens/ranklens-backend/internal/service/search"
	"github.com/ranklens/ranklens-backend/internal/service/workspace"
	"github.com/ranklens/ranklens-backend/internal/transport/middleware"
	"github.com/ranklens/ranklens-backend/internal/transport/rest"
	"github.com/ranklens/ranklens-backend/migrations"
)

// Run is the application entry point. It loads configuration, connects to
// the database and the local state store, wires the services, and runs the
// HTTP server until ctx is canceled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer pool.Close()

	if cfg.Database.MigrateOnStart {
		if err := migrate(ctx, cfg.Database.DSN); err != nil {
			return err
		}
		logger.Info("migrations applied")
	}

	snapshots, err := localstate.Open(cfg.LocalState.Path)
	if err != nil {
		return fmt.Errorf("open local state: %w", err)
	}
	defer snapshots.Close()

	profiles := profilerepo.New(pool)
	keywords := savedkeywordrepo.New(pool)
	projects := contentprojectrepo.New(pool)
	leads := leadrepo.New(pool)

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	authSvc := authservice.NewService(logger, profiles, jwtManager, cfg.Auth)

	m := metrics.New()
	pages := pagemeta.NewFetcher(cfg.Generation.PageFetchTimeout)
	generator := anthropicprovider.NewGenerator(logger, cfg.Generation, pages)

	sessions := search.NewSessions(snapshots, profiles, cfg.Credits.Default, cfg.History.Capacity, logger)
	searchSvc := search.NewService(logger, generator, sessions, m, cfg.Credits.CostPerQuery)
	workspaceSvc := workspace.NewService(logger, keywords, projects, leads, postgres.NewTxManager(pool))
	profileSvc := profileservice.NewService(logger, profiles, snapshots)

	rateLimiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
	defer rateLimiter.Stop()

	var rateLimitMW middleware.Middleware
	if cfg.RateLimit.Enabled {
		rateLimitMW = rateLimiter.Limit(cfg.RateLimit.PerMinute)
	}

	handler := rest.NewRouter(rest.RouterDeps{
		Auth:      rest.NewAuthHandler(authSvc, logger),
		Profile:   rest.NewProfileHandler(profileSvc, logger),
		Search:    rest.NewSearchHandler(searchSvc, logger),
		Workspace: rest.NewWorkspaceHandler(workspaceSvc, logger),
		Export:    rest.NewExportHandler(searchSvc, logger),
		Health:    rest.NewHealthHandler(pool, snapshots, BuildVersion()),
		Metrics:   m.Handler(),

		TokenValidator: middleware.Auth(authSvc),
		Logger:         middleware.Logger(logger),
		Recovery:       middleware.Recovery(logger),
		CORS:           middleware.CORS(cfg.CORS),
		RateLimit:      rateLimitMW,
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	logger.Info("server stopped")
	return nil
}

// migrate applies pending goose migrations. goose needs database/sql, so a
// separate short-lived connection is used instead of the pgx pool.
func migrate(ctx context.Context, dsn string) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return fmt.Errorf("open migration connection: %w", err)
	}
	defer db.Close()

	if err := migrations.Up(ctx, db); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}
	return nil
}
