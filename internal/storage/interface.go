package storage

import (
	"context"

	"github.com/mcoot/hangman-go/internal/model"
)

// Storage defines the interface for data persistence.
//
// Games are stored as append-only logs. The store assigns each appended
// record a sequence number that increases within the game's log, so the log
// can be ordered by Seq no matter how concurrent appends interleaved.
// ReadLog returns an empty slice for an unknown game.
type Storage interface {
	// Game log operations
	AppendRecord(ctx context.Context, record model.LogRecord) (int64, error)
	ReadLog(ctx context.Context, id model.GameID) ([]model.LogRecord, error)

	// Dictionary operations
	GetDictionaryWords(ctx context.Context) ([]string, error)
	SaveDictionaryWords(ctx context.Context, words []string) error
}
