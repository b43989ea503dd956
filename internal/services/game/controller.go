package game

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/mcoot/hangman-go/internal/dependencies/clock"
	"github.com/mcoot/hangman-go/internal/dependencies/ids"
	"github.com/mcoot/hangman-go/internal/dependencies/random"
	"github.com/mcoot/hangman-go/internal/model"
	"github.com/mcoot/hangman-go/internal/services/dictionary"
	"github.com/mcoot/hangman-go/internal/storage"
)

// GuessResult is the game as rebuilt after a guess, with what the guess did
type GuessResult struct {
	Game    *model.Game
	Outcome model.GuessOutcome
}

// Controller runs the guess-log protocol. It keeps no game state of its own:
// every operation rebuilds the game from its log, and guesses are appended
// without locking. Concurrent guesses are resolved by replay order.
type Controller struct {
	storage                storage.Storage
	dictionary             *dictionary.Service
	clock                  clock.Clock
	random                 random.Random
	ids                    ids.Generator
	defaultMaxWrongGuesses int
	logger                 *slog.Logger
}

// NewController creates a new GameController
func NewController(
	storage storage.Storage,
	dictionary *dictionary.Service,
	clock clock.Clock,
	random random.Random,
	ids ids.Generator,
	defaultMaxWrongGuesses int,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		storage:                storage,
		dictionary:             dictionary,
		clock:                  clock,
		random:                 random,
		ids:                    ids,
		defaultMaxWrongGuesses: defaultMaxWrongGuesses,
		logger:                 logger,
	}
}

// CreateGame starts a game with a word from the dictionary. A nil
// maxWrongGuesses uses the configured default.
func (c *Controller) CreateGame(ctx context.Context, maxWrongGuesses *int) (*model.Game, error) {
	limit := c.defaultMaxWrongGuesses
	if maxWrongGuesses != nil {
		limit = *maxWrongGuesses
	}
	if limit < 1 {
		return nil, fmt.Errorf("%w: %d", model.ErrInvalidMaxWrongGuesses, limit)
	}

	word, err := c.dictionary.RandomWord(c.random)
	if err != nil {
		return nil, err
	}

	game, err := model.NewGame(model.GameID(c.ids.NewID()), limit, word, c.clock.Now())
	if err != nil {
		return nil, err
	}

	if _, err := c.storage.AppendRecord(ctx, model.NewGameRecord(game)); err != nil {
		c.logger.Error("failed to save game",
			slog.String("game_id", string(game.ID)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	c.logger.Info("game created",
		slog.String("game_id", string(game.ID)),
		slog.Int("word_length", game.WordLength()),
		slog.Int("max_wrong_guesses", limit),
	)

	return game, nil
}

// GetGame rebuilds a game from its log
func (c *Controller) GetGame(ctx context.Context, gameID model.GameID) (*model.Game, error) {
	records, err := c.storage.ReadLog(ctx, gameID)
	if err != nil {
		return nil, err
	}

	game, err := model.ReplayGame(records)
	if err != nil {
		if errors.Is(err, model.ErrCorruptLog) {
			c.logger.Error("corrupt game log",
				slog.String("game_id", string(gameID)),
				slog.String("error", err.Error()),
			)
		}
		return nil, err
	}
	return game, nil
}

// GuessLetter records a guess and returns the rebuilt game.
//
// The letter is validated before the game is looked up. A repeat returns the
// game unchanged and appends nothing. A guess that passes the check is
// appended even if a concurrent guess ends the game first; replay then
// ignores it and the outcome is reported as ignored.
func (c *Controller) GuessLetter(ctx context.Context, gameID model.GameID, raw string) (*GuessResult, error) {
	letter, err := model.ParseLetter(raw)
	if err != nil {
		var invalid *model.InvalidLetterError
		if errors.As(err, &invalid) {
			c.logger.Warn("invalid letter",
				slog.String("game_id", string(gameID)),
				slog.Int("letter_length", invalid.Length),
				slog.String("code_points", formatCodePoints(invalid.CodePoints)),
			)
		}
		return nil, err
	}

	game, err := c.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}

	reason := game.IneligibleToGuessReason(letter)
	switch reason {
	case model.Eligible:
	case model.ReasonRepeat:
		return &GuessResult{Game: game, Outcome: model.GuessOutcomeRepeat}, nil
	default:
		c.logger.Info("guess rejected",
			slog.String("game_id", string(gameID)),
			slog.String("reason", reason.String()),
		)
		return nil, reason.Err()
	}

	seq, err := c.storage.AppendRecord(ctx, model.NewGuessRecord(gameID, letter, c.clock.Now()))
	if err != nil {
		c.logger.Error("failed to save guess",
			slog.String("game_id", string(gameID)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	game, err = c.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}

	outcome := game.GuessOutcome(letter)
	c.logger.Info("guess recorded",
		slog.String("game_id", string(gameID)),
		slog.Int64("seq", seq),
		slog.String("outcome", string(outcome)),
		slog.String("status", string(game.Status())),
	)

	return &GuessResult{Game: game, Outcome: outcome}, nil
}

// formatCodePoints renders runes as space separated U+XXXX values
func formatCodePoints(runes []rune) string {
	parts := make([]string, len(runes))
	for i, r := range runes {
		parts[i] = fmt.Sprintf("%U", r)
	}
	return strings.Join(parts, " ")
}
