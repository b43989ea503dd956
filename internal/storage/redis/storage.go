package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mcoot/hangman-go/internal/model"
	"github.com/mcoot/hangman-go/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface
type Storage struct {
	client *redis.Client
	keys   keys
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	return NewWithClient(client, cfg), nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		keys:   keys(cfg.prefix()),
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Game log operations

// appendScript takes the next seq from the counter and adds the record under
// it in one step, so no reader sees seq n+1 before n. Members are prefixed
// with their seq, which keeps identical records distinct.
var appendScript = redis.NewScript(`
local seq = redis.call('INCR', KEYS[1])
redis.call('ZADD', KEYS[2], seq, seq .. ':' .. ARGV[1])
return seq
`)

// AppendRecord assigns the game's next Seq and adds the record to the game's
// sorted set under that score
func (s *Storage) AppendRecord(ctx context.Context, record model.LogRecord) (int64, error) {
	record.Seq = 0
	data, err := json.Marshal(record)
	if err != nil {
		return 0, err
	}

	seq, err := appendScript.Run(ctx, s.client,
		[]string{s.keys.seq(record.GameID), s.keys.log(record.GameID)}, data).Int64()
	if err != nil {
		return 0, fmt.Errorf("append record: %w", err)
	}
	return seq, nil
}

func (s *Storage) ReadLog(ctx context.Context, id model.GameID) ([]model.LogRecord, error) {
	members, err := s.client.ZRange(ctx, s.keys.log(id), 0, -1).Result()
	if err != nil {
		return nil, err
	}

	records := make([]model.LogRecord, 0, len(members))
	for _, m := range members {
		record, err := decodeMember(m)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", model.ErrCorruptLog, err)
		}
		records = append(records, record)
	}
	return records, nil
}

// decodeMember parses "{seq}:{json}"
func decodeMember(m string) (model.LogRecord, error) {
	var record model.LogRecord

	prefix, data, ok := strings.Cut(m, ":")
	if !ok {
		return record, fmt.Errorf("member has no seq prefix")
	}
	seq, err := strconv.ParseInt(prefix, 10, 64)
	if err != nil {
		return record, fmt.Errorf("bad seq %q", prefix)
	}
	if err := json.Unmarshal([]byte(data), &record); err != nil {
		return record, err
	}
	record.Seq = seq
	return record, nil
}

// Dictionary operations

func (s *Storage) GetDictionaryWords(ctx context.Context) ([]string, error) {
	key := s.keys.dictionary()

	// Check if dictionary exists
	exists, err := s.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, err
	}
	if exists == 0 {
		return nil, model.ErrDictionaryNotLoaded
	}

	return s.client.SMembers(ctx, key).Result()
}

func (s *Storage) SaveDictionaryWords(ctx context.Context, words []string) error {
	key := s.keys.dictionary()

	// Replace the dictionary atomically
	pipe := s.client.TxPipeline()
	pipe.Del(ctx, key)

	if len(words) > 0 {
		members := make([]any, len(words))
		for i, w := range words {
			members[i] = w
		}
		pipe.SAdd(ctx, key, members...)
	}

	_, err := pipe.Exec(ctx)
	return err
}
