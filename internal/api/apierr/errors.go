package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mcoot/hangman-go/internal/model"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest      = "INVALID_REQUEST"
	CodeInvalidLetter       = "INVALID_LETTER"
	CodeGameNotFound        = "GAME_NOT_FOUND"
	CodeTooManyWrongGuesses = "TOO_MANY_WRONG_GUESSES"
	CodeAlreadyWon          = "ALREADY_WON"
	CodeNoWordsAvailable    = "NO_WORDS_AVAILABLE"
	CodeInternalError       = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	// Check for specific error types
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	// Map model errors
	switch {
	case errors.Is(err, model.ErrGameNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeGameNotFound, "Game not found"}}
	case errors.Is(err, model.ErrInvalidLetter):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidLetter, "Guess must be exactly one character"}}
	case errors.Is(err, model.ErrTooManyWrongGuesses):
		return &httpError{http.StatusBadRequest, APIError{CodeTooManyWrongGuesses, "No wrong guesses remaining"}}
	case errors.Is(err, model.ErrAlreadyWon):
		return &httpError{http.StatusBadRequest, APIError{CodeAlreadyWon, "Game is already won"}}
	case errors.Is(err, model.ErrInvalidMaxWrongGuesses):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, "maxWrongGuesses must be a positive integer"}}
	case errors.Is(err, model.ErrNoWords), errors.Is(err, model.ErrDictionaryNotLoaded):
		return &httpError{http.StatusServiceUnavailable, APIError{CodeNoWordsAvailable, "No words available to start a game"}}

	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}
