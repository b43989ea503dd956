package model

import (
	"fmt"
	"time"
)

// GameID uniquely identifies a game
type GameID string

// GameStatus summarises where a game stands
type GameStatus string

const (
	GameStatusInProgress GameStatus = "in_progress"
	GameStatusWon        GameStatus = "won"
	GameStatusLost       GameStatus = "lost"
)

// GuessOutcome describes what a guess did to the game
type GuessOutcome string

const (
	GuessOutcomeMatch  GuessOutcome = "match"
	GuessOutcomeMiss   GuessOutcome = "miss"
	GuessOutcomeRepeat GuessOutcome = "repeat"
	// GuessOutcomeIgnored is a guess that reached the log after the wrong
	// guess limit was hit by another guess, so the derivation skipped it.
	GuessOutcomeIgnored GuessOutcome = "ignored"
)

// Game binds identity and configuration to the current derived PlayState.
// The secret word is only reachable through Word().
type Game struct {
	ID              GameID
	MaxWrongGuesses int
	PlayState       PlayState
	CreatedAt       time.Time

	word Word
}

// NewGame creates a game with no guesses
func NewGame(id GameID, maxWrongGuesses int, word Word, createdAt time.Time) (*Game, error) {
	return RestoreGame(id, maxWrongGuesses, word, nil, createdAt)
}

// RestoreGame creates a game and derives its state from the ordered guesses
func RestoreGame(id GameID, maxWrongGuesses int, word Word, guesses []rune, createdAt time.Time) (*Game, error) {
	if maxWrongGuesses < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidMaxWrongGuesses, maxWrongGuesses)
	}
	if word.Len() == 0 {
		return nil, fmt.Errorf("%w: empty", ErrInvalidWord)
	}

	return &Game{
		ID:              id,
		MaxWrongGuesses: maxWrongGuesses,
		PlayState:       BuildPlayState(maxWrongGuesses, guesses, word),
		CreatedAt:       createdAt,
		word:            word,
	}, nil
}

// Word returns the secret word. Never send this to a client.
func (g *Game) Word() Word {
	return g.word
}

// WordLength returns the number of code points in the secret word
func (g *Game) WordLength() int {
	return g.word.Len()
}

// IneligibleToGuessReason classifies a proposed guess against the current state
func (g *Game) IneligibleToGuessReason(letter rune) IneligibleReason {
	return g.PlayState.IneligibleReason(letter)
}

// Status returns whether the game is won, lost or still in progress
func (g *Game) Status() GameStatus {
	switch {
	case g.PlayState.IsLost():
		return GameStatusLost
	case g.PlayState.IsWon():
		return GameStatusWon
	default:
		return GameStatusInProgress
	}
}

// GuessOutcome classifies a just-recorded guess against the current state
func (g *Game) GuessOutcome(letter rune) GuessOutcome {
	switch {
	case g.PlayState.IsRevealed(letter):
		return GuessOutcomeMatch
	case g.PlayState.IsMissed(letter):
		return GuessOutcomeMiss
	default:
		return GuessOutcomeIgnored
	}
}
