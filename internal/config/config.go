package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config describes all runtime settings for the server.
// It is loaded once in main, validated, and passed down explicitly.
type Config struct {
	Log struct {
		Format string // text|json
		Level  slog.Level
	}

	HTTP struct {
		Host            string
		Port            int
		ReadTimeout     time.Duration
		WriteTimeout    time.Duration
		ShutdownTimeout time.Duration
	}

	Storage struct {
		Type string // memory|redis|postgres
	}

	Redis struct {
		URL       string
		KeyPrefix string
	}

	Postgres struct {
		URL           string
		RunMigrations bool
	}

	Game struct {
		DefaultMaxWrongGuesses int
		WordsFile              string
	}
}

// LoadFromEnv reads the configuration from environment variables. Values
// that are set but do not parse are errors, never silently replaced by the
// default.
func LoadFromEnv() (Config, error) {
	var c Config
	var env envReader

	c.Log.Format = envString("LOG_FORMAT", "json")
	level, err := parseLevel(envString("LOG_LEVEL", "info"))
	if err != nil {
		return Config{}, err
	}
	c.Log.Level = level

	c.HTTP.Host = envString("HTTP_HOST", "")
	c.HTTP.Port = env.integer("PORT", 8080)
	c.HTTP.ReadTimeout = env.duration("HTTP_READ_TIMEOUT", 15*time.Second)
	c.HTTP.WriteTimeout = env.duration("HTTP_WRITE_TIMEOUT", 15*time.Second)
	c.HTTP.ShutdownTimeout = env.duration("HTTP_SHUTDOWN_TIMEOUT", 30*time.Second)

	c.Storage.Type = envString("STORAGE_TYPE", "memory")

	c.Redis.URL = envString("REDIS_URL", "")
	c.Redis.KeyPrefix = envString("REDIS_KEY_PREFIX", "hangman")

	c.Postgres.URL = envString("DATABASE_URL", "")
	c.Postgres.RunMigrations = env.boolean("RUN_MIGRATIONS", true)

	c.Game.DefaultMaxWrongGuesses = env.integer("DEFAULT_MAX_WRONG_GUESSES", 6)
	c.Game.WordsFile = envString("WORDS_FILE", "data/words.txt")

	if err := errors.Join(env.errs...); err != nil {
		return Config{}, err
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks that the settings are usable together
func (c Config) Validate() error {
	if c.HTTP.Port < 1 || c.HTTP.Port > 65535 {
		return fmt.Errorf("PORT=%d out of range", c.HTTP.Port)
	}
	if c.Log.Format != "text" && c.Log.Format != "json" {
		return fmt.Errorf("unsupported LOG_FORMAT=%q (want text|json)", c.Log.Format)
	}
	if c.Game.DefaultMaxWrongGuesses < 1 {
		return fmt.Errorf("DEFAULT_MAX_WRONG_GUESSES=%d must be positive", c.Game.DefaultMaxWrongGuesses)
	}

	switch c.Storage.Type {
	case "memory":
	case "redis":
		if c.Redis.URL == "" {
			return errors.New("REDIS_URL required when STORAGE_TYPE=redis")
		}
	case "postgres":
		if c.Postgres.URL == "" {
			return errors.New("DATABASE_URL required when STORAGE_TYPE=postgres")
		}
	default:
		return fmt.Errorf("unsupported STORAGE_TYPE=%q (want memory|redis|postgres)", c.Storage.Type)
	}
	return nil
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(s))); err != nil {
		return 0, fmt.Errorf("unsupported LOG_LEVEL=%q: %w", s, err)
	}
	return level, nil
}

func envString(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// envReader parses typed variables and collects every parse failure
type envReader struct {
	errs []error
}

func (e *envReader) fail(key, value string, err error) {
	e.errs = append(e.errs, fmt.Errorf("invalid %s=%q: %w", key, value, err))
}

func (e *envReader) duration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		e.fail(key, v, err)
		return def
	}
	return d
}

func (e *envReader) boolean(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		e.fail(key, v, err)
		return def
	}
	return b
}

func (e *envReader) integer(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		e.fail(key, v, err)
		return def
	}
	return n
}
