// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// handler_test.go provides shared test infrastructure for handler tests.
// The image backend is always a fake; no test reaches the network.
package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"graphicgen/internal/ai"
	"graphicgen/internal/prompt"
)

// mockImages implements ai.ImageGenerator and records every call.
type mockImages struct {
	mu     sync.Mutex
	img    *ai.GeneratedImage
	err    error
	calls  int
	params ai.ImageParams
}

func (m *mockImages) GenerateImage(_ context.Context, params ai.ImageParams) (*ai.GeneratedImage, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	m.params = params
	if m.err != nil {
		return nil, m.err
	}
	return m.img, nil
}

func (m *mockImages) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

// fixedNow is the clock used by every test handler.
var fixedNow = time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)

// testEnv bundles a handler group with its fake backend.
type testEnv struct {
	Images   *mockImages
	Graphics *Graphics
	Logs     *bytes.Buffer
}

// newTestEnv builds a Graphics handler for the given strategy whose backend
// returns a fixed image. Logs go to a buffer so tests can inspect them.
func newTestEnv(t *testing.T, strategy string) *testEnv {
	t.Helper()

	builder, err := prompt.NewBuilder(strategy)
	if err != nil {
		t.Fatalf("NewBuilder: %v", err)
	}

	images := &mockImages{img: &ai.GeneratedImage{URL: "https://images.example/out.png"}}
	g := NewGraphics(images, builder)
	g.now = func() time.Time { return fixedNow }

	var logs bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewJSONHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { slog.SetDefault(prev) })

	return &testEnv{Images: images, Graphics: g, Logs: &logs}
}

// doRequest runs a request through GenerateGraphic and returns the recorder.
func (env *testEnv) doRequest(method, body string) *httptest.ResponseRecorder {
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, "/api/generate-graphic", r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	env.Graphics.GenerateGraphic(rec, req)
	return rec
}

// decodeBody unmarshals a recorder's body into a generic map.
func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
	return body
}

// assertStatus fails the test when the recorder's status differs.
func assertStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Fatalf("status: got %d, want %d (body: %s)", rec.Code, want, rec.Body.String())
	}
}

const validBody = `{"headline":"Grow 10x","subtitle":"Automate the boring parts","cta":"Book a demo","theme":"automation"}`
