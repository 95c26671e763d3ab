// Package main is the entry point for the graphic generation API server.
// It loads configuration, wires the image backend and prompt builder, sets
// up routing, and starts the HTTP server with graceful shutdown support.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"graphicgen/internal/ai"
	"graphicgen/internal/config"
	"graphicgen/internal/handlers"
	"graphicgen/internal/prompt"
	"graphicgen/internal/router"
)

func main() {
	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Structured logger (text in development, JSON everywhere else).
	opts := &slog.HandlerOptions{Level: cfg.LogLevel}
	var logger *slog.Logger
	if cfg.IsDev() {
		logger = slog.New(slog.NewTextHandler(os.Stdout, opts))
	} else {
		logger = slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	slog.SetDefault(logger)

	slog.Info("configuration loaded",
		"env", cfg.Env,
		"addr", cfg.Addr(),
		"prompt_strategy", cfg.PromptStrategy,
	)

	// Initialize the image backend registry. A missing key is not fatal:
	// generation requests answer 500 until it is configured.
	registry := ai.NewRegistry(cfg.ImageProvider, map[string]ai.ProviderConfig{
		"openai": {APIKey: cfg.OpenAIKey, Model: cfg.OpenAIImageModel, BaseURL: cfg.OpenAIBaseURL},
	})

	if !cfg.HasImageCredential() {
		slog.Warn("OPENAI_API_KEY not set; graphic generation will fail until configured")
	}
	slog.Info("image providers initialized",
		"active", registry.ActiveName(),
		"available", registry.Available(),
	)

	builder, err := prompt.NewBuilder(cfg.PromptStrategy)
	if err != nil {
		slog.Error("failed to initialize prompt builder", "error", err)
		os.Exit(1)
	}

	graphics := handlers.NewGraphics(registry, builder)
	r := router.New(graphics, cfg.CORSAllowOrigin)

	// WriteTimeout must cover an HD image render, which can take most of
	// the provider client's 120s budget.
	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      150 * time.Second,
		IdleTimeout:       120 * time.Second,
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

	// In-flight generations may still be waiting on the provider.
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}
