// Package main is the entry point for the quotebook service.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"

	"github.com/jsamuelsen/quotebook-service/internal/adapters/http"
	"github.com/jsamuelsen/quotebook-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen/quotebook-service/internal/adapters/storage"
	"github.com/jsamuelsen/quotebook-service/internal/adapters/storage/mongostore"
	"github.com/jsamuelsen/quotebook-service/internal/adapters/storage/sqlitestore"
	"github.com/jsamuelsen/quotebook-service/internal/app"
	"github.com/jsamuelsen/quotebook-service/internal/platform/config"
	"github.com/jsamuelsen/quotebook-service/internal/platform/logging"
	"github.com/jsamuelsen/quotebook-service/internal/platform/telemetry"
	"github.com/jsamuelsen/quotebook-service/internal/ports"
)

// Build-time variables, injected via ldflags.
// Example: go build -ldflags "-X main.Version=1.0.0 -X main.Commit=$(git rev-parse HEAD) -X main.BuildTime=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
var (
	// Version is the semantic version of the service.
	Version = "dev"

	// Commit is the git commit SHA.
	Commit = "unknown"

	// BuildTime is the timestamp when the binary was built.
	BuildTime = "unknown"
)

// storeCloseTimeout bounds closing the repository after the server stopped.
const storeCloseTimeout = 5 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 1. Determine profile from environment
	profile := os.Getenv("APP_ENVIRONMENT")
	if profile == "" {
		profile = "local"
	}

	// 2. Load and validate configuration (fail fast)
	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	// 3. Initialize logging
	logger := logging.New(&logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: cfg.App.Name,
		Version: cfg.App.Version,
		File: logging.FileConfig{
			Enabled:    cfg.Log.File.Enabled,
			Path:       cfg.Log.File.Path,
			MaxSizeMB:  cfg.Log.File.MaxSizeMB,
			MaxBackups: cfg.Log.File.MaxBackups,
			MaxAgeDays: cfg.Log.File.MaxAgeDays,
			Compress:   cfg.Log.File.Compress,
		},
	})
	logging.SetDefault(logger)

	logger.Info("starting service",
		slog.String("version", Version),
		slog.String("commit", Commit),
		slog.String("environment", cfg.App.Environment),
		slog.String("store", cfg.Store.Driver),
	)

	// 4. Initialize telemetry (noop if disabled)
	telProvider, err := telemetry.New(ctx, &telemetry.Config{
		Enabled:      cfg.Telemetry.Enabled,
		Endpoint:     cfg.Telemetry.Endpoint,
		ServiceName:  cfg.Telemetry.ServiceName,
		Version:      cfg.App.Version,
		Environment:  cfg.App.Environment,
		StoreDriver:  cfg.Store.Driver,
		SamplingRate: cfg.Telemetry.SamplingRate,
	})
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	defer func() {
		if shutdownErr := telProvider.Shutdown(context.WithoutCancel(ctx)); shutdownErr != nil {
			logger.Error("telemetry shutdown error", slog.Any("error", shutdownErr))
		}
	}()

	// 5. Connect the quote repository (fail fast)
	repo, err := openRepository(ctx, &cfg.Store, logger)
	if err != nil {
		return fmt.Errorf("opening quote store: %w", err)
	}

	defer func() {
		closeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), storeCloseTimeout)
		defer cancel()

		if closeErr := repo.Close(closeCtx); closeErr != nil {
			logger.Error("quote store close error", slog.Any("error", closeErr))
		}
	}()

	// 6. Create health registry with the repository ping
	healthRegistry := ports.NewHealthRegistry()
	if err := healthRegistry.Register(repo); err != nil {
		return fmt.Errorf("registering quote store health check: %w", err)
	}

	// 7. Create quote service (application layer)
	quoteService := app.NewQuoteService(app.QuoteServiceConfig{
		Repository: repo,
		Logger:     logger,
	})

	// 8. Create HTTP server and router
	server := http.New(&cfg.Server, logger)

	buildInfo := handlers.NewBuildInfo(Version, Commit, BuildTime)
	routerCfg := http.NewDefaultRouterConfig(logger, &cfg.App, handlers.NewHealthHandler(healthRegistry, buildInfo))
	routerCfg.QuoteHandler = handlers.NewQuoteHandler(quoteService)
	routerCfg.Timeout = cfg.Server.RequestTimeout
	http.SetupRouter(server.Engine(), routerCfg)

	// 9. Serve until a signal arrives or the server fails
	return serve(ctx, logger, server, cfg.Server.ShutdownTimeout)
}

// openRepository connects the configured store and wraps it with Prometheus
// instrumentation. Connection failures wrap storage.ErrStartup.
func openRepository(ctx context.Context, cfg *config.StoreConfig, logger *slog.Logger) (ports.QuoteRepository, error) {
	collectors, err := storage.NewCollectors(prometheus.DefaultRegisterer)
	if err != nil {
		return nil, fmt.Errorf("registering store metrics: %w", err)
	}

	var repo ports.QuoteRepository

	switch cfg.Driver {
	case "sqlite":
		repo, err = sqlitestore.Open(ctx, cfg.SQLite.Path, logger)
	default:
		repo, err = mongostore.Open(ctx, mongostore.Config{
			URI:            cfg.Mongo.URI,
			Database:       cfg.Mongo.Database,
			Collection:     cfg.Mongo.Collection,
			ConnectTimeout: cfg.Mongo.ConnectTimeout,
		}, logger)
	}

	if err != nil {
		return nil, err
	}

	return storage.NewInstrumented(repo, collectors), nil
}

// serve runs the server and shuts it down gracefully once ctx is cancelled.
func serve(ctx context.Context, logger *slog.Logger, server *http.Server, shutdownTimeout time.Duration) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := <-server.Start(); err != nil {
			return fmt.Errorf("server error: %w", err)
		}

		return nil
	})

	g.Go(func() error {
		<-gctx.Done()

		logger.Info("initiating graceful shutdown",
			slog.Duration("timeout", shutdownTimeout),
		)

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()

		// Stop accepting new requests, drain in-flight
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		return err
	}

	logger.Info("shutdown complete")

	return nil
}
