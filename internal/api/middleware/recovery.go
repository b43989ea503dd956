package middleware

import (
	"log/slog"
	"net/http"

	"github.com/mcoot/hangman-go/internal/api/apierr"
	"github.com/mcoot/hangman-go/internal/middleware"
)

// Recovery creates panic recovery middleware for the API.
// A panic is answered with the JSON INTERNAL_ERROR body.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return middleware.Recovery(logger, apiPanicHandler)
}

func apiPanicHandler(w http.ResponseWriter, _ *http.Request, _ any) {
	apierr.WriteError(w, apierr.NewInternalError())
}
