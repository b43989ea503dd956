package redis

// Config holds Redis connection settings. Game logs have no TTL; a game
// can be replayed for as long as its keys exist.
type Config struct {
	// URL is the Redis connection URL, e.g. redis://localhost:6379/0
	URL string

	// KeyPrefix namespaces every key, so several deployments can share a
	// database. Empty means DefaultKeyPrefix.
	KeyPrefix string

	PoolSize     int
	MinIdleConns int
}

// DefaultKeyPrefix is used when Config.KeyPrefix is empty
const DefaultKeyPrefix = "hangman"

// DefaultConfig returns the connection settings for a local Redis
func DefaultConfig() Config {
	return Config{
		URL:          "redis://localhost:6379",
		KeyPrefix:    DefaultKeyPrefix,
		PoolSize:     10,
		MinIdleConns: 2,
	}
}

func (c Config) prefix() string {
	if c.KeyPrefix == "" {
		return DefaultKeyPrefix
	}
	return c.KeyPrefix
}
