package model

import (
	"fmt"
	"slices"
)

// ReplayGame rebuilds a game from its log records.
//
// Records are applied in Seq order regardless of the order they were read
// in. The log must open with a game record; anything else is reported as
// ErrCorruptLog rather than filled in with defaults.
func ReplayGame(records []LogRecord) (*Game, error) {
	if len(records) == 0 {
		return nil, ErrGameNotFound
	}

	ordered := slices.Clone(records)
	slices.SortStableFunc(ordered, func(a, b LogRecord) int {
		switch {
		case a.Seq < b.Seq:
			return -1
		case a.Seq > b.Seq:
			return 1
		default:
			return 0
		}
	})

	var header *LogRecord
	guesses := make([]rune, 0, len(ordered))

	for i := range ordered {
		rec := &ordered[i]
		switch rec.Kind {
		case RecordKindGame:
			if header == nil {
				header = rec
			}
		case RecordKindGuess:
			letter, err := ParseLetter(rec.Letter)
			if err != nil {
				return nil, fmt.Errorf("%w: game %s seq %d: %v", ErrCorruptLog, rec.GameID, rec.Seq, err)
			}
			guesses = append(guesses, letter)
		default:
			return nil, fmt.Errorf("%w: game %s seq %d: unknown record kind %q", ErrCorruptLog, rec.GameID, rec.Seq, rec.Kind)
		}
	}

	if header == nil {
		return nil, fmt.Errorf("%w: game %s has guesses but no game record", ErrCorruptLog, ordered[0].GameID)
	}

	word, err := NewWord(header.Word)
	if err != nil {
		return nil, fmt.Errorf("%w: game %s: %v", ErrCorruptLog, header.GameID, err)
	}

	game, err := RestoreGame(header.GameID, header.MaxWrongGuesses, word, guesses, header.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: game %s: %v", ErrCorruptLog, header.GameID, err)
	}
	return game, nil
}
