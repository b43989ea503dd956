package response

import (
	"github.com/mcoot/hangman-go/internal/model"
	"github.com/mcoot/hangman-go/internal/services/game"
)

// LetterState is one masked word position or missed guess.
// Letter is null for a position that has not been revealed.
type LetterState struct {
	Letter *string `json:"letter"`
}

// LetterStateFromModel converts a model.LetterState
func LetterStateFromModel(l model.LetterState) LetterState {
	if !l.IsFilled() {
		return LetterState{}
	}
	s := l.String()
	return LetterState{Letter: &s}
}

// PlayState is the visible part of a game
type PlayState struct {
	RemainingWrongGuesses int           `json:"remainingWrongGuesses"`
	MaskedWord            []LetterState `json:"maskedWord"`
	MissedGuesses         []LetterState `json:"missedGuesses"`
}

// PlayStateFromModel converts a model.PlayState
func PlayStateFromModel(p model.PlayState) PlayState {
	masked := p.MaskedWord()
	missed := p.MissedGuesses()

	resp := PlayState{
		RemainingWrongGuesses: p.RemainingWrongGuesses(),
		MaskedWord:            make([]LetterState, len(masked)),
		MissedGuesses:         make([]LetterState, len(missed)),
	}
	for i, l := range masked {
		resp.MaskedWord[i] = LetterStateFromModel(l)
	}
	for i, l := range missed {
		resp.MissedGuesses[i] = LetterStateFromModel(l)
	}
	return resp
}

// Game represents a game in API responses. The secret word is never included.
type Game struct {
	ID              string    `json:"id"`
	MaxWrongGuesses int       `json:"maxWrongGuesses"`
	WordLength      int       `json:"wordLength"`
	Status          string    `json:"status"`
	PlayState       PlayState `json:"playState"`
}

// GameFromModel converts a model.Game to a response Game
func GameFromModel(g *model.Game) Game {
	return Game{
		ID:              string(g.ID),
		MaxWrongGuesses: g.MaxWrongGuesses,
		WordLength:      g.WordLength(),
		Status:          string(g.Status()),
		PlayState:       PlayStateFromModel(g.PlayState),
	}
}

// GameResponse is the response for game creation and lookup
type GameResponse struct {
	Game Game `json:"game"`
}

// GuessResponse is the response for a guess
type GuessResponse struct {
	Game    Game   `json:"game"`
	Outcome string `json:"outcome"`
}

// GuessResponseFromResult converts a game.GuessResult
func GuessResponseFromResult(r *game.GuessResult) GuessResponse {
	return GuessResponse{
		Game:    GameFromModel(r.Game),
		Outcome: string(r.Outcome),
	}
}

// HealthResponse is the response for the health check
type HealthResponse struct {
	Status string `json:"status"`
}
