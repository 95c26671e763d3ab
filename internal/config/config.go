// Package config handles application configuration loading from environment
// variables. It provides a centralized Config struct used across the application.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"slices"
	"strings"

	"graphicgen/internal/prompt"
)

// Config holds all application configuration values loaded from the environment.
type Config struct {
	// Server settings
	Host string
	Port string
	Env  string // "development", "production", "testing"

	// Logging
	LogLevel slog.Level

	// Image generation backend
	ImageProvider    string // "openai"
	OpenAIKey        string
	OpenAIImageModel string
	OpenAIBaseURL    string

	// Prompt strategy: "concise" or "master".
	PromptStrategy string

	// CORS
	CORSAllowOrigin string
}

var validEnvs = []string{"development", "production", "testing"}

// Load reads configuration from environment variables, applying defaults
// where appropriate. The OpenAI key is deliberately optional: without it
// the server still starts and answers generation requests with a
// configuration error.
func Load() (*Config, error) {
	cfg := &Config{
		Host: envOrDefault("APP_HOST", "0.0.0.0"),
		Port: envOrDefault("APP_PORT", "8080"),
		Env:  envOrDefault("APP_ENV", "development"),

		ImageProvider:    envOrDefault("IMAGE_PROVIDER", "openai"),
		OpenAIKey:        os.Getenv("OPENAI_API_KEY"),
		OpenAIImageModel: envOrDefault("OPENAI_IMAGE_MODEL", "dall-e-3"),
		OpenAIBaseURL:    envOrDefault("OPENAI_BASE_URL", "https://api.openai.com/v1"),

		PromptStrategy: envOrDefault("PROMPT_STRATEGY", prompt.StrategyMaster),

		CORSAllowOrigin: envOrDefault("CORS_ALLOW_ORIGIN", "*"),
	}

	if !slices.Contains(validEnvs, cfg.Env) {
		return nil, fmt.Errorf("APP_ENV must be one of %s, got %q", strings.Join(validEnvs, ", "), cfg.Env)
	}

	if !slices.Contains(prompt.Strategies(), cfg.PromptStrategy) {
		return nil, fmt.Errorf("PROMPT_STRATEGY must be one of %s, got %q",
			strings.Join(prompt.Strategies(), ", "), cfg.PromptStrategy)
	}

	defaultLevel := "info"
	if cfg.IsDev() {
		defaultLevel = "debug"
	}
	if err := cfg.LogLevel.UnmarshalText([]byte(envOrDefault("LOG_LEVEL", defaultLevel))); err != nil {
		return nil, fmt.Errorf("LOG_LEVEL: %w", err)
	}

	return cfg, nil
}

// Addr returns the server listen address (host:port).
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

// IsDev returns true if the application is running in development mode.
func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// HasImageCredential reports whether the backend credential is present.
func (c *Config) HasImageCredential() bool {
	return c.OpenAIKey != ""
}

// envOrDefault reads an environment variable, returning a fallback if unset or empty.
func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
