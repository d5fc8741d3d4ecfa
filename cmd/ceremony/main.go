// Package main is the entry point for the ceremony invitation server.
// It loads configuration, connects to services, sets up routing, and starts
// the HTTP server with graceful shutdown support.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ceremony/internal/cache"
	"ceremony/internal/config"
	"ceremony/internal/eventdata"
	"ceremony/internal/handlers"
	"ceremony/internal/renderer"
	"ceremony/internal/router"
	"ceremony/internal/session"
)

func main() {
	// Structured logger for the whole process.
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("configuration loaded",
		"env", cfg.Env,
		"addr", cfg.Addr(),
		"event_api", cfg.EventAPIURL,
	)

	// Connect to Valkey. The service works without the event payload
	// cache; every view just hits the remote API.
	var eventCache *cache.EventCache
	if cfg.CacheEnabled() {
		valkeyClient, err := cache.ConnectValkey(cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword)
		if err != nil {
			slog.Error("failed to connect to valkey", "error", err)
			os.Exit(1)
		}
		defer valkeyClient.Close()
		eventCache = cache.NewEventCache(valkeyClient, cache.DefaultEventTTL)
	} else {
		slog.Warn("valkey not configured, event payload caching disabled")
	}

	// Event data fetch client against the remote event API.
	events := eventdata.NewClient(cfg.EventAPIURL, eventCache)

	// Element content resolver with the configured entry-pass base URL.
	resolver := renderer.New()
	resolver.PassBaseURL = cfg.PassBaseURL

	// In-process registry of rendering sessions, swept periodically so
	// abandoned story sessions stop their auto-advance timers.
	sessions := session.NewRegistry()
	go func() {
		ticker := time.NewTicker(5 * time.Minute)
		defer ticker.Stop()
		for range ticker.C {
			if n := sessions.Sweep(); n > 0 {
				slog.Debug("swept idle sessions", "count", n)
			}
		}
	}()

	// Create handler groups with their dependencies.
	templateHandlers := handlers.NewTemplates()
	invitationHandlers := handlers.NewInvitations(events, resolver, sessions)

	// Set up the Chi router with all middleware and routes.
	limiter := router.DefaultRateLimiter()
	defer limiter.Stop()
	r := router.New(templateHandlers, invitationHandlers, limiter)

	// Create the HTTP server with sensible timeouts. The write timeout
	// covers the upstream event API fetch on cold cache.
	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start the server in a goroutine so we can listen for shutdown signals.
	go func() {
		slog.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown: wait for SIGINT or SIGTERM, then drain connections.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	slog.Info("shutdown signal received", "signal", sig)

	// Give active requests up to 30 seconds to complete.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}
