package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/tesouraclub/tesoura-go/internal/api"
	"github.com/tesouraclub/tesoura-go/internal/factory"
	"github.com/tesouraclub/tesoura-go/internal/services/lineup"
	redisstorage "github.com/tesouraclub/tesoura-go/internal/storage/redis"
)

func main() {
	// Local .env is optional
	_ = godotenv.Load()

	// Set up logging with JSON output
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Build factory config from environment
	cfg := factory.Config{
		Logger:       logger,
		StorageType:  os.Getenv("STORAGE_TYPE"),
		LineupConfig: lineupConfigFromEnv(logger),
	}

	// Configure Redis if storage type is redis
	if cfg.StorageType == factory.StorageTypeRedis {
		redisURL := os.Getenv("REDIS_URL")
		if redisURL == "" {
			logger.Error("REDIS_URL required when STORAGE_TYPE=redis")
			os.Exit(1)
		}
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = redisURL
		cfg.RedisConfig = &redisCfg
	}

	// Create application factory
	app, err := factory.New(cfg)
	if err != nil {
		logger.Error("failed to create application", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Create API router
	router := api.NewRouter(api.RouterConfig{
		Logger:           logger,
		RosterService:    app.RosterService,
		LedgerService:    app.LedgerService,
		PaymentService:   app.PaymentService,
		ArchiveService:   app.ArchiveService,
		LineupController: app.LineupController,
	})

	// Create server
	serverConfig := api.DefaultServerConfig()
	if port := os.Getenv("PORT"); port != "" {
		p, err := strconv.Atoi(port)
		if err != nil {
			logger.Error("invalid PORT", slog.String("port", port))
			os.Exit(1)
		}
		serverConfig.Port = p
	}
	server := api.NewServer(router, serverConfig, logger)

	// Handle graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		logger.Info("shutdown signal received")
		cancel()
	}()

	// Start server in goroutine
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	logger.Info("server started", slog.String("addr", server.Addr()))

	// Wait for shutdown or error
	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	case <-ctx.Done():
		if err := server.Shutdown(context.Background()); err != nil {
			logger.Error("shutdown error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	logger.Info("server stopped")
}

// lineupConfigFromEnv reads squad size and history window overrides
func lineupConfigFromEnv(logger *slog.Logger) lineup.Config {
	cfg := lineup.DefaultConfig()

	if v := os.Getenv("SQUAD_SIZE"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			logger.Error("invalid SQUAD_SIZE", slog.String("value", v))
			os.Exit(1)
		}
		cfg.SquadSize = n
	}
	if v := os.Getenv("HISTORY_WINDOW"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			logger.Error("invalid HISTORY_WINDOW", slog.String("value", v))
			os.Exit(1)
		}
		cfg.HistoryWindow = n
	}

	return cfg
}
