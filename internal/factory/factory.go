package factory

import (
	"errors"
	"io"
	"log/slog"

	"github.com/tesouraclub/tesoura-go/internal/dependencies/clock"
	"github.com/tesouraclub/tesoura-go/internal/services/archive"
	"github.com/tesouraclub/tesoura-go/internal/services/history"
	"github.com/tesouraclub/tesoura-go/internal/services/ledger"
	"github.com/tesouraclub/tesoura-go/internal/services/lineup"
	"github.com/tesouraclub/tesoura-go/internal/services/payment"
	"github.com/tesouraclub/tesoura-go/internal/services/roster"
	"github.com/tesouraclub/tesoura-go/internal/storage"
	"github.com/tesouraclub/tesoura-go/internal/storage/memory"
	redisstorage "github.com/tesouraclub/tesoura-go/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock clock.Clock

	// Services
	RosterService    *roster.Service
	LedgerService    *ledger.Service
	PaymentService   *payment.Service
	HistoryService   *history.Service
	ArchiveService   *archive.Service
	LineupController *lineup.Controller
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
	// LineupConfig holds squad size, history window, and priority weights
	// If zero value, defaults to lineup.DefaultConfig()
	LineupConfig lineup.Config
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	// Create storage based on type
	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	clk := clock.New()

	lineupCfg := cfg.LineupConfig
	if lineupCfg.SquadSize == 0 {
		lineupCfg = lineup.DefaultConfig()
	}

	return newWithDependencies(store, clk, lineupCfg, logger), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, lineupCfg lineup.Config, logger *slog.Logger) *App {
	// Create services
	rosterService := roster.New(store, clk, logger)
	ledgerService := ledger.New(store, clk, logger)
	paymentService := payment.New(store, clk, logger)
	historyService := history.New(store, logger)
	archiveService := archive.New(store, clk, logger)
	lineupController := lineup.NewController(
		store,
		rosterService,
		ledgerService,
		historyService,
		paymentService,
		clk,
		logger,
		lineupCfg,
	)

	return &App{
		Storage:          store,
		Clock:            clk,
		RosterService:    rosterService,
		LedgerService:    ledgerService,
		PaymentService:   paymentService,
		HistoryService:   historyService,
		ArchiveService:   archiveService,
		LineupController: lineupController,
	}
}
