package model

import "time"

// RecordKind identifies the type of a log record
type RecordKind string

const (
	RecordKindGame  RecordKind = "game"
	RecordKindGuess RecordKind = "guess"
)

// LogRecord is one entry of a game's append-only log.
// Seq is assigned by the store on append and orders the records of a game.
type LogRecord struct {
	GameID    GameID     `json:"game_id"`
	Seq       int64      `json:"seq"`
	Kind      RecordKind `json:"kind"`
	CreatedAt time.Time  `json:"created_at"`

	// Game records
	Word            string `json:"word,omitempty"`
	MaxWrongGuesses int    `json:"max_wrong_guesses,omitempty"`

	// Guess records
	Letter string `json:"letter,omitempty"`
}

// NewGameRecord returns the record that opens a game's log
func NewGameRecord(g *Game) LogRecord {
	return LogRecord{
		GameID:          g.ID,
		Kind:            RecordKindGame,
		CreatedAt:       g.CreatedAt,
		Word:            g.Word().String(),
		MaxWrongGuesses: g.MaxWrongGuesses,
	}
}

// NewGuessRecord returns the record for a guessed letter
func NewGuessRecord(id GameID, letter rune, createdAt time.Time) LogRecord {
	return LogRecord{
		GameID:    id,
		Kind:      RecordKindGuess,
		CreatedAt: createdAt,
		Letter:    string(letter),
	}
}
