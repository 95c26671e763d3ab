// Package router sets up all HTTP routes and middleware chains for the
// graphic generation API.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"graphicgen/internal/handlers"
	"graphicgen/internal/middleware"
)

// New creates and returns the configured Chi router with all middleware
// and routes wired up. corsOrigin is the value sent in
// Access-Control-Allow-Origin on /api routes.
func New(graphics *handlers.Graphics, corsOrigin string) chi.Router {
	r := chi.NewRouter()

	// Global middleware, applied to every request. RequestID runs before
	// Recoverer so panics are reported with the request's ID.
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders)

	r.NotFound(notFoundHandler)

	// Health check, no CORS.
	r.Get("/health", healthHandler)

	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.CORS(corsOrigin))

		// The handler does its own method dispatch (OPTIONS preflight,
		// POST, 405 for the rest), so it is mounted for every method.
		// /api/graphics is kept as an alias of the original endpoint name.
		r.HandleFunc("/generate-graphic", graphics.GenerateGraphic)
		r.HandleFunc("/graphics", graphics.GenerateGraphic)

		r.Get("/themes", graphics.ListThemes)
	})

	return r
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

// notFoundHandler answers unknown routes with JSON instead of chi's
// plain-text default.
func notFoundHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusNotFound)
	w.Write([]byte(`{"error":"Not found"}`))
}
