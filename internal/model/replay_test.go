package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var createdAt = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

func gameRecord(seq int64, word string, limit int) LogRecord {
	return LogRecord{GameID: "g1", Seq: seq, Kind: RecordKindGame, Word: word, MaxWrongGuesses: limit, CreatedAt: createdAt}
}

func guessRecord(seq int64, letter string) LogRecord {
	return LogRecord{GameID: "g1", Seq: seq, Kind: RecordKindGuess, Letter: letter, CreatedAt: createdAt}
}

func TestReplayEmptyLogIsNotFound(t *testing.T) {
	_, err := ReplayGame(nil)
	assert.ErrorIs(t, err, ErrGameNotFound)
}

func TestReplayGameRecordOnly(t *testing.T) {
	game, err := ReplayGame([]LogRecord{gameRecord(1, "abruptly", 3)})
	require.NoError(t, err)

	assert.Equal(t, GameID("g1"), game.ID)
	assert.Equal(t, 3, game.MaxWrongGuesses)
	assert.Equal(t, 8, game.WordLength())
	assert.Equal(t, "abruptly", game.Word().String())
	assert.Equal(t, createdAt, game.CreatedAt)
	assert.Equal(t, 3, game.PlayState.RemainingWrongGuesses())
	assert.Equal(t, GameStatusInProgress, game.Status())
}

func TestReplayOrdersBySeq(t *testing.T) {
	records := []LogRecord{
		guessRecord(4, "o"),
		guessRecord(3, "z"),
		gameRecord(1, "mywordmy", 1),
		guessRecord(2, "m"),
	}

	game, err := ReplayGame(records)
	require.NoError(t, err)

	assert.Equal(t, []any{"z"}, letters(game.PlayState.MissedGuesses()))
	assert.Equal(t, 0, game.PlayState.RemainingWrongGuesses())
	assert.Equal(t, []any{"m", nil, nil, nil, nil, nil, "m", nil}, letters(game.PlayState.MaskedWord()))
	assert.Equal(t, GuessOutcomeIgnored, game.GuessOutcome('o'))
}

func TestReplayDoesNotReorderInput(t *testing.T) {
	records := []LogRecord{guessRecord(2, "a"), gameRecord(1, "ab", 3)}

	_, err := ReplayGame(records)
	require.NoError(t, err)
	assert.Equal(t, int64(2), records[0].Seq)
}

func TestReplayConcurrentGuessesMergeDeterministically(t *testing.T) {
	a := []LogRecord{gameRecord(1, "abruptly", 3), guessRecord(2, "q"), guessRecord(3, "b")}
	b := []LogRecord{guessRecord(3, "b"), guessRecord(2, "q"), gameRecord(1, "abruptly", 3)}

	ga, err := ReplayGame(a)
	require.NoError(t, err)
	gb, err := ReplayGame(b)
	require.NoError(t, err)

	assert.True(t, ga.PlayState.Equal(gb.PlayState))
}

func TestReplayMissingGameRecordIsCorrupt(t *testing.T) {
	_, err := ReplayGame([]LogRecord{guessRecord(2, "a")})
	assert.ErrorIs(t, err, ErrCorruptLog)
}

func TestReplayBadGuessLetterIsCorrupt(t *testing.T) {
	_, err := ReplayGame([]LogRecord{gameRecord(1, "ab", 3), guessRecord(2, "ab")})
	assert.ErrorIs(t, err, ErrCorruptLog)
}

func TestReplayUnknownKindIsCorrupt(t *testing.T) {
	_, err := ReplayGame([]LogRecord{gameRecord(1, "ab", 3), {GameID: "g1", Seq: 2, Kind: "hint"}})
	assert.ErrorIs(t, err, ErrCorruptLog)
}

func TestReplayInvalidHeaderIsCorrupt(t *testing.T) {
	_, err := ReplayGame([]LogRecord{gameRecord(1, "", 3)})
	assert.ErrorIs(t, err, ErrCorruptLog)

	_, err = ReplayGame([]LogRecord{gameRecord(1, "ab", 0)})
	assert.ErrorIs(t, err, ErrCorruptLog)
}

func TestGuessRecordRoundTrip(t *testing.T) {
	game, err := NewGame("g1", 3, mustWord(t, "mañana"), createdAt)
	require.NoError(t, err)

	header := NewGameRecord(game)
	header.Seq = 1
	guess := NewGuessRecord(game.ID, 'ñ', createdAt)
	guess.Seq = 2

	replayed, err := ReplayGame([]LogRecord{header, guess})
	require.NoError(t, err)
	assert.Equal(t, GuessOutcomeMatch, replayed.GuessOutcome('ñ'))
	assert.Equal(t, RecordKindGuess, guess.Kind)
	assert.Equal(t, "ñ", guess.Letter)
}

func TestNewGameValidates(t *testing.T) {
	_, err := NewGame("g1", 0, mustWord(t, "ab"), createdAt)
	assert.ErrorIs(t, err, ErrInvalidMaxWrongGuesses)

	_, err = NewGame("g1", 3, nil, createdAt)
	assert.ErrorIs(t, err, ErrInvalidWord)
}
