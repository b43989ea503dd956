package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mcoot/hangman-go/internal/model"
	"github.com/mcoot/hangman-go/internal/storage"
)

// Storage is a PostgreSQL-backed implementation of the storage interface.
// Seq comes from the game_log BIGSERIAL column.
type Storage struct {
	db *pgxpool.Pool
}

// New connects to PostgreSQL, optionally applying migrations first
func New(ctx context.Context, cfg Config, log *slog.Logger) (*Storage, error) {
	if cfg.RunMigrations {
		if err := Migrate(cfg.URL, log); err != nil {
			return nil, err
		}
	}

	pool, err := pgxpool.New(ctx, cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("pgxpool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("postgres ping: %w", err)
	}

	return NewWithPool(pool), nil
}

// NewWithPool creates a PostgreSQL storage on an open pool
func NewWithPool(pool *pgxpool.Pool) *Storage {
	return &Storage{db: pool}
}

// Close closes the connection pool
func (s *Storage) Close() error {
	s.db.Close()
	return nil
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Game log operations

func (s *Storage) AppendRecord(ctx context.Context, record model.LogRecord) (int64, error) {
	var seq int64
	err := s.db.QueryRow(ctx, `
		INSERT INTO game_log (game_id, kind, word, max_wrong_guesses, letter, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING seq
	`, string(record.GameID), string(record.Kind), record.Word, record.MaxWrongGuesses, record.Letter, record.CreatedAt).Scan(&seq)
	if err != nil {
		return 0, err
	}
	return seq, nil
}

func (s *Storage) ReadLog(ctx context.Context, id model.GameID) ([]model.LogRecord, error) {
	rows, err := s.db.Query(ctx, `
		SELECT seq, kind, word, max_wrong_guesses, letter, created_at
		FROM game_log
		WHERE game_id=$1
		ORDER BY seq
	`, string(id))
	if err != nil {
		return nil, err
	}

	records, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (model.LogRecord, error) {
		r := model.LogRecord{GameID: id}
		var kind string
		err := row.Scan(&r.Seq, &kind, &r.Word, &r.MaxWrongGuesses, &r.Letter, &r.CreatedAt)
		r.Kind = model.RecordKind(kind)
		r.CreatedAt = r.CreatedAt.UTC()
		return r, err
	})
	if err != nil {
		return nil, err
	}
	return records, nil
}

// Dictionary operations

// GetDictionaryWords treats an empty table as a dictionary that was never loaded
func (s *Storage) GetDictionaryWords(ctx context.Context) ([]string, error) {
	rows, err := s.db.Query(ctx, `SELECT word FROM dictionary_words ORDER BY word`)
	if err != nil {
		return nil, err
	}

	words, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, err
	}
	if len(words) == 0 {
		return nil, model.ErrDictionaryNotLoaded
	}
	return words, nil
}

func (s *Storage) SaveDictionaryWords(ctx context.Context, words []string) error {
	return pgx.BeginFunc(ctx, s.db, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM dictionary_words`); err != nil {
			return err
		}
		if len(words) == 0 {
			return nil
		}

		rows := make([][]any, len(words))
		for i, w := range words {
			rows[i] = []any{w}
		}
		_, err := tx.CopyFrom(ctx, pgx.Identifier{"dictionary_words"}, []string{"word"}, pgx.CopyFromRows(rows))
		return err
	})
}
