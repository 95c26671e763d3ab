// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package handlers implements the JSON endpoints of the graphic API.
package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"graphicgen/internal/ai"
	"graphicgen/internal/middleware"
	"graphicgen/internal/prompt"
)

// Client-facing error messages. Upstream detail is only logged.
const (
	msgMethodNotAllowed = "Method not allowed"
	msgInvalidJSON      = "Invalid JSON body"
	msgMissingFields    = "Missing required fields: headline, subtitle, cta"
	msgNotConfigured    = "Image generation backend is not configured"
	msgGenerateFailed   = "Failed to generate graphic"
)

// GenerationRequest is the inbound JSON payload.
type GenerationRequest struct {
	Headline string `json:"headline"`
	Subtitle string `json:"subtitle"`
	CTA      string `json:"cta"`
	Theme    string `json:"theme,omitempty"`
}

// missingFields returns the names of required fields that are empty.
func (req GenerationRequest) missingFields() []string {
	var missing []string
	if req.Headline == "" {
		missing = append(missing, "headline")
	}
	if req.Subtitle == "" {
		missing = append(missing, "subtitle")
	}
	if req.CTA == "" {
		missing = append(missing, "cta")
	}
	return missing
}

// GenerationResult is the success payload.
type GenerationResult struct {
	Success       bool              `json:"success"`
	ImageURL      string            `json:"imageUrl"`
	Prompt        string            `json:"prompt"`
	Inputs        GenerationRequest `json:"inputs"`
	Theme         string            `json:"theme"`
	Quality       string            `json:"quality"`
	RevisedPrompt string            `json:"revisedPrompt,omitempty"`
	Timestamp     time.Time         `json:"timestamp"`
}

// errorResponse is the body of every 4xx/5xx answer from this package.
type errorResponse struct {
	Success        bool     `json:"success"`
	Error          string   `json:"error"`
	Missing        []string `json:"missing,omitempty"`
	ErrorID        string   `json:"errorId,omitempty"`
	UpstreamStatus int      `json:"upstreamStatus,omitempty"`
}

// Graphics groups the graphic endpoints and their dependencies.
type Graphics struct {
	images  ai.ImageGenerator
	builder *prompt.Builder
	now     func() time.Time
}

// NewGraphics creates the graphic handler group. The builder's strategy
// decides the prompt wording for every request.
func NewGraphics(images ai.ImageGenerator, builder *prompt.Builder) *Graphics {
	return &Graphics{
		images:  images,
		builder: builder,
		now:     time.Now,
	}
}

// GenerateGraphic turns a headline, subtitle and call-to-action into an
// image URL. It answers every method itself: OPTIONS is the CORS preflight,
// POST does the work, anything else is 405.
func (g *Graphics) GenerateGraphic(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodOptions:
		w.WriteHeader(http.StatusOK)
		return
	case http.MethodPost:
	default:
		w.Header().Set("Allow", "POST, OPTIONS")
		writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Error: msgMethodNotAllowed})
		return
	}

	var req GenerationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Debug("generate graphic: bad request body", "error", err)
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: msgInvalidJSON})
		return
	}

	if missing := req.missingFields(); len(missing) > 0 {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: msgMissingFields, Missing: missing})
		return
	}

	theme := prompt.LookupTheme(req.Theme)
	text := g.builder.Build(req.Headline, req.Subtitle, req.CTA, req.Theme)

	slog.Debug("generate graphic: prompt built",
		"strategy", g.builder.Strategy(),
		"theme", theme.Key,
		"prompt_len", len(text),
	)

	img, err := g.images.GenerateImage(r.Context(), ai.GraphicParams(text))
	if err != nil {
		g.writeGenerateError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, GenerationResult{
		Success:       true,
		ImageURL:      img.URL,
		Prompt:        text,
		Inputs:        req,
		Theme:         theme.Key,
		Quality:       g.builder.Quality(),
		RevisedPrompt: img.RevisedPrompt,
		Timestamp:     g.now().UTC(),
	})
}

// writeGenerateError logs the full backend failure under an opaque ID and
// sends the client a generic message carrying that ID.
func (g *Graphics) writeGenerateError(w http.ResponseWriter, r *http.Request, err error) {
	resp := errorResponse{
		Error:   msgGenerateFailed,
		ErrorID: errorID(r),
	}
	attrs := []any{"error", err, "error_id", resp.ErrorID}

	var apiErr *ai.APIError
	switch {
	case errors.Is(err, ai.ErrNotConfigured):
		resp.Error = msgNotConfigured
		slog.Error("generate graphic: backend not configured", attrs...)
	case errors.As(err, &apiErr):
		resp.UpstreamStatus = apiErr.StatusCode
		slog.Error("generate graphic: backend rejected request",
			append(attrs, "upstream_status", apiErr.StatusCode, "upstream_body", apiErr.Body)...)
	case errors.Is(err, ai.ErrMalformedResponse):
		slog.Error("generate graphic: malformed backend response", attrs...)
	default:
		slog.Error("generate graphic: backend call failed", attrs...)
	}

	writeJSON(w, http.StatusInternalServerError, resp)
}

// errorID reuses the request ID so client reports can be matched to logs.
func errorID(r *http.Request) string {
	if id := middleware.RequestIDFromCtx(r.Context()); id != "" {
		return id
	}
	return uuid.NewString()
}

// themeInfo is one entry of the ListThemes response.
type themeInfo struct {
	Key   string `json:"key"`
	Style string `json:"style"`
}

// ListThemes reports the available themes, the fallback theme and the
// active prompt strategy.
func (g *Graphics) ListThemes(w http.ResponseWriter, r *http.Request) {
	all := prompt.Themes()
	out := make([]themeInfo, 0, len(all))
	for _, t := range all {
		out = append(out, themeInfo{Key: t.Key, Style: t.Style})
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"default":  prompt.DefaultTheme,
		"strategy": g.builder.Strategy(),
		"themes":   out,
	})
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Warn("write json response failed", "error", err)
	}
}
