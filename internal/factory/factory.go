package factory

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/chhavipande/museumyatra/internal/clock"
	"github.com/chhavipande/museumyatra/internal/services/accounts"
	"github.com/chhavipande/museumyatra/internal/services/badges"
	"github.com/chhavipande/museumyatra/internal/services/catalog"
	"github.com/chhavipande/museumyatra/internal/services/journey"
	"github.com/chhavipande/museumyatra/internal/storage"
	"github.com/chhavipande/museumyatra/internal/storage/memory"
	"github.com/chhavipande/museumyatra/internal/storage/postgres"
	redisstorage "github.com/chhavipande/museumyatra/internal/storage/redis"
	"github.com/chhavipande/museumyatra/internal/storage/sqlite"
)

// Storage type constants
const (
	StorageTypeMemory   = "memory"
	StorageTypeRedis    = "redis"
	StorageTypeSQLite   = "sqlite"
	StorageTypePostgres = "postgres"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock clock.Clock

	// Services
	CatalogService  *catalog.Service
	BadgeService    *badges.Service
	AccountsService *accounts.Service
	JourneyService  *journey.Service
}

// Config holds configuration for the application factory
type Config struct {
	// CatalogPath is the path to the museum catalog file (optional)
	// If empty, the catalog must be loaded manually
	CatalogPath string
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
	// SQLitePath is the sqlite database path (required if StorageType is "sqlite")
	SQLitePath string
	// DatabaseURI is the postgres connection URI (required if StorageType is "postgres")
	DatabaseURI string
}

// New creates a new application with all dependencies wired
func New(ctx context.Context, cfg Config) (*App, error) {
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
	case StorageTypeSQLite:
		if cfg.SQLitePath == "" {
			return nil, errors.New("SQLitePath required when StorageType is sqlite")
		}
		sqliteStore, err := sqlite.New(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		store = sqliteStore
	case StorageTypePostgres:
		if cfg.DatabaseURI == "" {
			return nil, errors.New("DatabaseURI required when StorageType is postgres")
		}
		pgStore, err := postgres.New(ctx, cfg.DatabaseURI)
		if err != nil {
			return nil, err
		}
		store = pgStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory', 'redis', 'sqlite' or 'postgres'")
	}

	clk := clock.New()

	app, err := NewWithDependencies(ctx, store, clk, logger)
	if err != nil {
		return nil, err
	}

	if cfg.CatalogPath != "" {
		if err := app.CatalogService.LoadFromFile(cfg.CatalogPath); err != nil {
			return nil, err
		}
	}

	return app, nil
}

// NewWithDependencies creates an App with the given dependencies (useful for testing)
func NewWithDependencies(ctx context.Context, store storage.Storage, clk clock.Clock, logger *slog.Logger) (*App, error) {
	catalogService := catalog.New()
	badgeService := badges.NewDefault()

	accountsService, err := accounts.New(ctx, store, accounts.NewHasher(), logger)
	if err != nil {
		return nil, err
	}

	journeyService := journey.New(accountsService, badgeService, catalogService, clk, logger)

	return &App{
		Storage:         store,
		Clock:           clk,
		CatalogService:  catalogService,
		BadgeService:    badgeService,
		AccountsService: accountsService,
		JourneyService:  journeyService,
	}, nil
}
