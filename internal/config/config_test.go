package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"LOG_FORMAT", "LOG_LEVEL", "HTTP_HOST", "PORT", "HTTP_READ_TIMEOUT",
		"HTTP_WRITE_TIMEOUT", "HTTP_SHUTDOWN_TIMEOUT", "STORAGE_TYPE", "REDIS_URL", "REDIS_KEY_PREFIX",
		"DATABASE_URL", "RUN_MIGRATIONS", "DEFAULT_MAX_WRONG_GUESSES", "WORDS_FILE",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadFromEnvDefaults(t *testing.T) {
	clearEnv(t)

	c, err := LoadFromEnv()
	require.NoError(t, err)

	assert.Equal(t, "json", c.Log.Format)
	assert.Equal(t, slog.LevelInfo, c.Log.Level)
	assert.Equal(t, 8080, c.HTTP.Port)
	assert.Equal(t, 15*time.Second, c.HTTP.ReadTimeout)
	assert.Equal(t, "memory", c.Storage.Type)
	assert.Equal(t, 6, c.Game.DefaultMaxWrongGuesses)
	assert.Equal(t, "data/words.txt", c.Game.WordsFile)
	assert.Equal(t, "hangman", c.Redis.KeyPrefix)
	assert.True(t, c.Postgres.RunMigrations)
}

func TestLoadFromEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("LOG_FORMAT", "text")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("PORT", "9090")
	t.Setenv("HTTP_SHUTDOWN_TIMEOUT", "5s")
	t.Setenv("STORAGE_TYPE", "redis")
	t.Setenv("REDIS_URL", "redis://cache:6379/1")
	t.Setenv("REDIS_KEY_PREFIX", "staging")
	t.Setenv("DEFAULT_MAX_WRONG_GUESSES", "10")

	c, err := LoadFromEnv()
	require.NoError(t, err)

	assert.Equal(t, "text", c.Log.Format)
	assert.Equal(t, slog.LevelDebug, c.Log.Level)
	assert.Equal(t, 9090, c.HTTP.Port)
	assert.Equal(t, 5*time.Second, c.HTTP.ShutdownTimeout)
	assert.Equal(t, "redis", c.Storage.Type)
	assert.Equal(t, "redis://cache:6379/1", c.Redis.URL)
	assert.Equal(t, "staging", c.Redis.KeyPrefix)
	assert.Equal(t, 10, c.Game.DefaultMaxWrongGuesses)
}

func TestLoadFromEnvRejectsInvalid(t *testing.T) {
	cases := map[string]map[string]string{
		"bad log format":         {"LOG_FORMAT": "xml"},
		"bad log level":          {"LOG_LEVEL": "loud"},
		"bad storage type":       {"STORAGE_TYPE": "cassandra"},
		"redis without url":      {"STORAGE_TYPE": "redis"},
		"postgres without url":   {"STORAGE_TYPE": "postgres"},
		"zero max wrong guesses": {"DEFAULT_MAX_WRONG_GUESSES": "0"},
		"port out of range":      {"PORT": "70000"},
		"port not a number":      {"PORT": "abc"},
		"max wrong not a number": {"DEFAULT_MAX_WRONG_GUESSES": "x"},
		"bad timeout":            {"HTTP_READ_TIMEOUT": "soon"},
		"bad migrations flag":    {"RUN_MIGRATIONS": "maybe"},
	}

	for name, env := range cases {
		t.Run(name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range env {
				t.Setenv(k, v)
			}
			_, err := LoadFromEnv()
			assert.Error(t, err)
		})
	}
}

func TestLoadFromEnvReportsEveryMalformedValue(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "abc")
	t.Setenv("DEFAULT_MAX_WRONG_GUESSES", "x")

	_, err := LoadFromEnv()
	require.Error(t, err)
	assert.ErrorContains(t, err, `PORT="abc"`)
	assert.ErrorContains(t, err, `DEFAULT_MAX_WRONG_GUESSES="x"`)
}
