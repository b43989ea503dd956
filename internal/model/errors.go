package model

import "errors"

// Common errors used across the application
var (
	// Game errors
	ErrGameNotFound           = errors.New("game not found")
	ErrInvalidMaxWrongGuesses = errors.New("max wrong guesses must be positive")
	ErrCorruptLog             = errors.New("game log is corrupt")

	// Guess errors
	ErrInvalidLetter       = errors.New("invalid letter")
	ErrTooManyWrongGuesses = errors.New("too many wrong guesses")
	ErrAlreadyWon          = errors.New("game is already won")

	// Word errors
	ErrInvalidWord = errors.New("invalid word")

	// Dictionary errors
	ErrDictionaryNotLoaded = errors.New("dictionary not loaded")
	ErrNoWords             = errors.New("no words available")
)
