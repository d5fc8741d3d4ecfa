// Package router sets up all HTTP routes and middleware chains for the
// invitation service. Everything here is public-facing; invitations are
// reachable by anyone holding a token.
package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"ceremony/internal/handlers"
	"ceremony/internal/middleware"
)

// New creates and returns the configured Chi router with all middleware
// and route groups wired up. limiter may be nil to disable rate limiting
// (tests).
func New(templates *handlers.Templates, invitations *handlers.Invitations, limiter *middleware.RateLimiter) chi.Router {
	r := chi.NewRouter()

	// Global middleware, applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)

	// Health check and metrics sit outside the rate limit.
	r.Get("/health", healthHandler)
	r.Handle("/metrics", promhttp.Handler())

	r.Group(func(r chi.Router) {
		if limiter != nil {
			r.Use(limiter.Middleware)
		}

		// Template catalog.
		r.Route("/templates", func(r chi.Router) {
			r.Get("/", templates.List)
			r.Get("/{id}", templates.Get)
		})

		// Invitation rendering and derived artifacts.
		r.Route("/invitations/{token}", func(r chi.Router) {
			r.Get("/", invitations.Show)
			r.Get("/calendar.ics", invitations.Calendar)
			r.Get("/qr.png", invitations.QRCode)
			r.Post("/rsvp", invitations.RSVP)
			r.Post("/session", invitations.SessionCreate)
		})

		// Rendering-session navigation.
		r.Route("/sessions/{id}", func(r chi.Router) {
			r.Get("/", invitations.SessionState)
			r.Post("/advance", invitations.SessionAdvance)
			r.Post("/jump", invitations.SessionJump)
			r.Post("/complete", invitations.SessionComplete)
			r.Delete("/", invitations.SessionDelete)
		})
	})

	return r
}

// DefaultRateLimiter returns the limiter applied to public routes:
// generous enough for a guest flipping through pages, tight enough to
// blunt token scanning.
func DefaultRateLimiter() *middleware.RateLimiter {
	return middleware.NewRateLimiter(120, time.Minute)
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
