package request

// CreateGameRequest is the request body for creating a game.
// A missing maxWrongGuesses uses the server default.
type CreateGameRequest struct {
	MaxWrongGuesses *int `json:"maxWrongGuesses,omitempty"`
}
