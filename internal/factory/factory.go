package factory

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/mcoot/hangman-go/internal/dependencies/clock"
	"github.com/mcoot/hangman-go/internal/dependencies/ids"
	"github.com/mcoot/hangman-go/internal/dependencies/random"
	"github.com/mcoot/hangman-go/internal/model"
	"github.com/mcoot/hangman-go/internal/services/dictionary"
	"github.com/mcoot/hangman-go/internal/services/game"
	"github.com/mcoot/hangman-go/internal/storage"
	"github.com/mcoot/hangman-go/internal/storage/memory"
	pgstorage "github.com/mcoot/hangman-go/internal/storage/postgres"
	redisstorage "github.com/mcoot/hangman-go/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory   = "memory"
	StorageTypeRedis    = "redis"
	StorageTypePostgres = "postgres"
)

// DefaultMaxWrongGuesses is used when neither the request nor the config sets a limit
const DefaultMaxWrongGuesses = 6

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random
	IDs    ids.Generator

	// Services
	DictionaryService *dictionary.Service
	GameController    *game.Controller

	closer io.Closer
}

// Close releases the storage connection, if any
func (a *App) Close() error {
	if a.closer == nil {
		return nil
	}
	return a.closer.Close()
}

// Config holds configuration for the application factory
type Config struct {
	// DictionaryPath is the path to the word list (optional).
	// If empty, words already saved in storage are used, and failing that the
	// dictionary must be loaded manually.
	DictionaryPath string
	// DefaultMaxWrongGuesses applies to games created without a limit.
	// If zero, DefaultMaxWrongGuesses is used.
	DefaultMaxWrongGuesses int
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory", "redis" or "postgres")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
	// PostgresConfig holds PostgreSQL settings (required if StorageType is "postgres")
	PostgresConfig *pgstorage.Config
}

// New creates a new application with all dependencies wired
func New(ctx context.Context, cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	store, closer, err := newStorage(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	maxWrong := cfg.DefaultMaxWrongGuesses
	if maxWrong == 0 {
		maxWrong = DefaultMaxWrongGuesses
	}

	app := newWithDependencies(store, clock.New(), random.New(), ids.New(), maxWrong, logger)
	app.closer = closer

	if err := loadDictionary(ctx, app.DictionaryService, cfg.DictionaryPath); err != nil {
		_ = app.Close()
		return nil, err
	}

	return app, nil
}

// newStorage creates storage based on type
func newStorage(ctx context.Context, cfg Config, logger *slog.Logger) (storage.Storage, io.Closer, error) {
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		return memory.New(), nil, nil
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, nil, err
		}
		return redisStore, redisStore, nil
	case StorageTypePostgres:
		if cfg.PostgresConfig == nil {
			return nil, nil, errors.New("PostgresConfig required when StorageType is postgres")
		}
		pgStore, err := pgstorage.New(ctx, *cfg.PostgresConfig, logger)
		if err != nil {
			return nil, nil, err
		}
		return pgStore, pgStore, nil
	default:
		return nil, nil, fmt.Errorf("invalid StorageType %q: must be 'memory', 'redis' or 'postgres'", storageType)
	}
}

func loadDictionary(ctx context.Context, dict *dictionary.Service, path string) error {
	if path != "" {
		if err := dict.LoadFromFile(ctx, path); err != nil {
			return fmt.Errorf("load dictionary %s: %w", path, err)
		}
		return nil
	}

	err := dict.LoadFromStorage(ctx)
	if err != nil && !errors.Is(err, model.ErrDictionaryNotLoaded) {
		return fmt.Errorf("load dictionary from storage: %w", err)
	}
	return nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(
	store storage.Storage,
	clk clock.Clock,
	rnd random.Random,
	idGen ids.Generator,
	defaultMaxWrongGuesses int,
	logger *slog.Logger,
) *App {
	dictService := dictionary.New(store, logger)
	gameController := game.NewController(store, dictService, clk, rnd, idGen, defaultMaxWrongGuesses, logger)

	return &App{
		Storage:           store,
		Clock:             clk,
		Random:            rnd,
		IDs:               idGen,
		DictionaryService: dictService,
		GameController:    gameController,
	}
}
