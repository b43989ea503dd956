package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
	w      io.Writer
}

// NewOutput creates a new Output formatter
func NewOutput(format string, w io.Writer) *Output {
	return &Output{format: format, w: w}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == OutputJSON {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case GameResult:
		o.printGame(v.Game)
	case GuessResult:
		o.printGuessResult(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// LetterState response type (matches API)
type LetterState struct {
	Letter *string `json:"letter"`
}

// PlayState response type
type PlayState struct {
	RemainingWrongGuesses int           `json:"remainingWrongGuesses"`
	MaskedWord            []LetterState `json:"maskedWord"`
	MissedGuesses         []LetterState `json:"missedGuesses"`
}

// Game response type
type Game struct {
	ID              string    `json:"id"`
	MaxWrongGuesses int       `json:"maxWrongGuesses"`
	WordLength      int       `json:"wordLength"`
	Status          string    `json:"status"`
	PlayState       PlayState `json:"playState"`
}

// GameResult wraps a game
type GameResult struct {
	Game Game `json:"game"`
}

// GuessResult is a game with the outcome of a guess
type GuessResult struct {
	Game    Game   `json:"game"`
	Outcome string `json:"outcome"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

// MaskedWord renders the masked word with _ for hidden letters, e.g. "a _ _ _"
func MaskedWord(letters []LetterState) string {
	parts := make([]string, len(letters))
	for i, l := range letters {
		if l.Letter == nil {
			parts[i] = "_"
		} else {
			parts[i] = *l.Letter
		}
	}
	return strings.Join(parts, " ")
}

func missedLetters(letters []LetterState) string {
	parts := make([]string, 0, len(letters))
	for _, l := range letters {
		if l.Letter != nil {
			parts = append(parts, *l.Letter)
		}
	}
	return strings.Join(parts, ", ")
}

func (o *Output) printGame(g Game) {
	fmt.Fprintf(o.w, "Game: %s\n", g.ID)
	fmt.Fprintf(o.w, "Status: %s\n", g.Status)
	fmt.Fprintf(o.w, "Word: %s\n", MaskedWord(g.PlayState.MaskedWord))
	if missed := missedLetters(g.PlayState.MissedGuesses); missed != "" {
		fmt.Fprintf(o.w, "Missed: %s\n", missed)
	}
	fmt.Fprintf(o.w, "Wrong guesses left: %d of %d\n", g.PlayState.RemainingWrongGuesses, g.MaxWrongGuesses)
}

func (o *Output) printGuessResult(r GuessResult) {
	switch r.Outcome {
	case "match":
		fmt.Fprintln(o.w, "Hit!")
	case "miss":
		fmt.Fprintln(o.w, "Miss.")
	case "repeat":
		fmt.Fprintln(o.w, "Already guessed.")
	case "ignored":
		fmt.Fprintln(o.w, "Too late, the game ended first.")
	}
	o.printGame(r.Game)
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Fprintf(o.w, "Status: %s\n", h.Status)
}
