package middleware

import (
	"net/http"
	"os"

	"github.com/getsentry/raven-go"
	"github.com/gorilla/handlers"
)

// WithLogging logs requests to stdout.
func WithLogging(next http.Handler) http.Handler {
	return handlers.LoggingHandler(os.Stdout, next)
}

// WithErrorReporting reports panics to Sentry.
func WithErrorReporting(next http.Handler) http.Handler {
	return raven.Recoverer(next)
}

// nolint
var corsHandler = handlers.CORS(
	handlers.AllowedOrigins([]string{"*"}),
	handlers.AllowedMethods([]string{"GET"}),
	handlers.AllowedHeaders([]string{"Content-Type"}),
)

// WithCORS adds OPTIONS endpoints and validates CORS permissions. The API is
// read-only, so only GET is allowed through.
func WithCORS(next http.Handler) http.Handler {
	return corsHandler(next)
}
