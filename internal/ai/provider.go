// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package ai provides a uniform interface to third-party image-generation
// backends. Each backend implements Provider, and the Registry selects the
// active one by name.
package ai

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
)

// ErrNotConfigured is returned when the active provider has no credential.
var ErrNotConfigured = errors.New("ai: image provider not configured")

// ErrMalformedResponse is returned when a backend answers with a success
// status but the body cannot be parsed or carries no image.
var ErrMalformedResponse = errors.New("ai: malformed provider response")

// APIError reports a non-success HTTP status from a backend. Body holds
// the raw upstream response for server-side logging; it is not meant to be
// shown to end users.
type APIError struct {
	Provider   string
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s API error (status %d): %s", e.Provider, e.StatusCode, e.Body)
}

// ImageGenerator creates images from a text prompt.
type ImageGenerator interface {
	// GenerateImage sends params to the backend and returns the first
	// generated image.
	GenerateImage(ctx context.Context, params ImageParams) (*GeneratedImage, error)
}

// Provider is an ImageGenerator with a stable identifier.
type Provider interface {
	ImageGenerator

	// Name returns the provider identifier (e.g., "openai").
	Name() string
}

// ProviderConfig holds the credentials and settings for a single provider.
type ProviderConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

// Registry manages the available providers and selects the active one.
// All methods are safe for concurrent use.
type Registry struct {
	mu        sync.RWMutex
	providers map[string]Provider
	active    string
}

// NewRegistry creates a registry and initialises a provider for every config
// that has a non-empty API key. Providers without keys are skipped, so a
// registry built without credentials answers every call with
// ErrNotConfigured instead of failing at start-up.
func NewRegistry(active string, configs map[string]ProviderConfig) *Registry {
	r := &Registry{
		providers: make(map[string]Provider),
		active:    active,
	}

	for name, cfg := range configs {
		if cfg.APIKey == "" {
			continue
		}
		switch name {
		case "openai":
			r.providers[name] = newOpenAI(cfg)
		}
	}

	return r
}

// GenerateImage calls the active provider's GenerateImage method.
func (r *Registry) GenerateImage(ctx context.Context, params ImageParams) (*GeneratedImage, error) {
	p, err := r.Active()
	if err != nil {
		return nil, err
	}
	return p.GenerateImage(ctx, params)
}

// Active returns the currently active provider.
func (r *Registry) Active() (Provider, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.providers[r.active]
	if !ok {
		return nil, fmt.Errorf("%w: no provider for %q", ErrNotConfigured, r.active)
	}
	return p, nil
}

// SetActive switches the active provider at runtime. Returns an error if
// the named provider has no API key configured.
func (r *Registry) SetActive(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.providers[name]; !ok {
		return fmt.Errorf("ai: provider %q is not available (no API key?)", name)
	}
	r.active = name
	return nil
}

// ActiveName returns the name of the currently active provider.
func (r *Registry) ActiveName() string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.active
}

// Available returns the sorted names of all providers that have API keys.
func (r *Registry) Available() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.providers))
	for name := range r.providers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Register adds or replaces a provider in the registry. Tests use it to
// inject fakes.
func (r *Registry) Register(name string, p Provider) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.providers[name] = p
}

// HasProvider checks whether a named provider is configured and available.
func (r *Registry) HasProvider(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.providers[name]
	return ok
}
