// cmd/api/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"

	"github.com/ammerola/resell-phones/internal/adapters/memory"
	redis_a "github.com/ammerola/resell-phones/internal/adapters/redis_adapter"
	"github.com/ammerola/resell-phones/internal/core/ports"
	"github.com/ammerola/resell-phones/internal/core/pricing"
	"github.com/ammerola/resell-phones/internal/core/services"
	"github.com/ammerola/resell-phones/internal/handlers"
	"github.com/ammerola/resell-phones/internal/pkg/config"
	"github.com/ammerola/resell-phones/internal/pkg/logger"
	"github.com/ammerola/resell-phones/internal/pkg/metrics"
)

// Build information injected at compile time
var (
	Version   = "dev"
	BuildTime = "unknown"
	GoVersion = "unknown"
)

func main() {
	// Bootstrap logger until the configuration is known
	slogger := logger.SetupLogger(&logger.LogConfig{Level: "info", Format: "json"})

	slogger.Info("starting phone resale inventory service",
		slog.String("version", Version),
		slog.String("build_time", BuildTime),
		slog.String("go_version", GoVersion),
	)

	cfg, err := config.Load(slogger)
	if err != nil {
		slogger.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if cfg.App.Version == "" {
		cfg.App.Version = Version
	}

	// Reconfigure logger with loaded settings
	slogger = logger.SetupLogger(&logger.LogConfig{
		Level:          cfg.App.LogLevel,
		Format:         cfg.App.LogFormat,
		AddSource:      cfg.App.Debug,
		Environment:    cfg.App.Environment,
		ServiceName:    cfg.App.Name,
		ServiceVersion: cfg.App.Version,
	})
	slogger.Info("configuration loaded",
		slog.String("environment", cfg.App.Environment),
		slog.String("log_level", cfg.App.LogLevel),
		slog.String("store", cfg.Store.Driver),
	)

	ctx := context.Background()

	deps, err := initializeDependencies(ctx, cfg, slogger)
	if err != nil {
		slogger.Error("failed to initialize dependencies", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer deps.cleanup()

	server := setupHTTPServer(cfg, deps, slogger)

	serverErrors := make(chan error, 1)
	go func() {
		slogger.Info("starting HTTP server",
			slog.String("address", cfg.GetServerAddress()),
		)
		serverErrors <- server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			slogger.Error("server error", slog.String("error", err.Error()))
		}
	case sig := <-shutdown:
		slogger.Info("shutdown signal received",
			slog.String("signal", sig.String()),
		)

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.GracefulTimeout)
		defer shutdownCancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			slogger.Error("failed to gracefully shutdown server", slog.String("error", err.Error()))
			server.Close()
		}

		slogger.Info("server shutdown complete")
	}
}

// dependencies holds all application dependencies
type dependencies struct {
	redisClient  *redis.Client
	store        ports.PhoneRepository
	phoneService *services.PhoneService
	authService  *services.AuthService
	metrics      *metrics.Metrics
}

func (d *dependencies) cleanup() {
	if d.redisClient != nil {
		d.redisClient.Close()
	}
}

func initializeDependencies(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*dependencies, error) {
	deps := &dependencies{}

	switch cfg.Store.Driver {
	case config.StoreRedis:
		logger.Info("connecting to Redis",
			slog.String("address", cfg.GetRedisAddress()),
		)

		client, err := redis_a.NewClient(ctx, cfg.Redis, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize redis store: %w", err)
		}
		deps.redisClient = client

		repo := redis_a.NewPhoneRepository(client, cfg.Redis.KeyPrefix, logger)
		// Inventory is process-lifetime, seeded or not
		if err := repo.Reset(ctx); err != nil {
			return nil, fmt.Errorf("failed to reset redis store: %w", err)
		}
		deps.store = repo
	default:
		deps.store = memory.NewPhoneRepository(logger)
	}

	engine := pricing.NewEngine(pricing.DefaultCatalog(), logger)
	deps.phoneService = services.NewPhoneService(deps.store, engine, logger)
	deps.authService = services.NewAuthService(logger)

	if cfg.App.SeedSampleData {
		samples := memory.SamplePhones()
		if err := deps.phoneService.Seed(ctx, samples); err != nil {
			return nil, fmt.Errorf("failed to seed sample phones: %w", err)
		}
		logger.Info("seeded sample phones", slog.Int("count", len(samples)))
	}

	if cfg.Server.EnableMetrics {
		deps.metrics = metrics.New()
	}

	logger.Info("all dependencies initialized successfully")
	return deps, nil
}

func setupHTTPServer(cfg *config.Config, deps *dependencies, logger *slog.Logger) *http.Server {
	handler := handlers.NewRouter(cfg, handlers.RouterDeps{
		Phones:  deps.phoneService,
		Auth:    deps.authService,
		Store:   deps.store,
		Metrics: deps.metrics,
	}, logger)

	return &http.Server{
		Addr:           cfg.GetServerAddress(),
		Handler:        handler,
		ReadTimeout:    cfg.Server.ReadTimeout,
		WriteTimeout:   cfg.Server.WriteTimeout,
		IdleTimeout:    cfg.Server.IdleTimeout,
		MaxHeaderBytes: cfg.Server.MaxHeaderBytes,
		ErrorLog:       slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}
}
