package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/gorilla/mux"

	"github.com/mcoot/hangman-go/internal/api/request"
	"github.com/mcoot/hangman-go/internal/api/response"
	"github.com/mcoot/hangman-go/internal/model"
	"github.com/mcoot/hangman-go/internal/services/game"
)

// GameHandler handles game-related endpoints
type GameHandler struct {
	gameController *game.Controller
}

// NewGameHandler creates a new game handler
func NewGameHandler(gameController *game.Controller) *GameHandler {
	return &GameHandler{
		gameController: gameController,
	}
}

// Create handles POST /api/v1/games. The body is optional.
func (h *GameHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		WriteError(w, NewInvalidRequestError("Invalid request body"))
		return
	}

	g, err := h.gameController.CreateGame(r.Context(), req.MaxWrongGuesses)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.Created(w, fmt.Sprintf("/api/v1/games/%s", g.ID), response.GameResponse{Game: response.GameFromModel(g)})
}

// Get handles GET /api/v1/games/{id}
func (h *GameHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathVar(r, "id")
	if err != nil {
		WriteError(w, err)
		return
	}

	g, err := h.gameController.GetGame(r.Context(), model.GameID(id))
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.GameResponse{Game: response.GameFromModel(g)})
}

// Guess handles PUT /api/v1/games/{id}/guesses/{letter}
func (h *GameHandler) Guess(w http.ResponseWriter, r *http.Request) {
	id, err := pathVar(r, "id")
	if err != nil {
		WriteError(w, err)
		return
	}
	letter, err := pathVar(r, "letter")
	if err != nil {
		WriteError(w, err)
		return
	}

	result, err := h.gameController.GuessLetter(r.Context(), model.GameID(id), letter)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.GuessResponseFromResult(result))
}

// pathVar returns the unescaped value of a route variable. The router
// matches on the escaped path.
func pathVar(r *http.Request, name string) (string, error) {
	v, err := url.PathUnescape(mux.Vars(r)[name])
	if err != nil {
		return "", NewInvalidRequestError(fmt.Sprintf("Invalid %s in path", name))
	}
	return v, nil
}
