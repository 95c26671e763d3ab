// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
)

func TestRequestID(t *testing.T) {
	t.Run("generates a UUID when none is supplied", func(t *testing.T) {
		var seen string
		handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen = RequestIDFromCtx(r.Context())
		}))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		if _, err := uuid.Parse(seen); err != nil {
			t.Fatalf("context ID %q is not a UUID: %v", seen, err)
		}
		if got := rr.Header().Get(RequestIDHeader); got != seen {
			t.Errorf("header: got %q, want %q", got, seen)
		}
	})

	t.Run("reuses a valid inbound UUID", func(t *testing.T) {
		in := uuid.NewString()
		var seen string
		handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen = RequestIDFromCtx(r.Context())
		}))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(RequestIDHeader, in)
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		if seen != in {
			t.Errorf("context ID: got %q, want %q", seen, in)
		}
	})

	t.Run("replaces a non-UUID inbound value", func(t *testing.T) {
		var seen string
		handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen = RequestIDFromCtx(r.Context())
		}))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(RequestIDHeader, "evil\nlog line")
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		if seen == "evil\nlog line" {
			t.Fatal("inbound non-UUID value should not be trusted")
		}
		if _, err := uuid.Parse(seen); err != nil {
			t.Errorf("replacement %q is not a UUID", seen)
		}
	})

	t.Run("each request gets a distinct ID", func(t *testing.T) {
		handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		ids := make(map[string]bool)
		for i := 0; i < 20; i++ {
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
			ids[rr.Header().Get(RequestIDHeader)] = true
		}
		if len(ids) != 20 {
			t.Errorf("expected 20 distinct IDs, got %d", len(ids))
		}
	})
}

func TestRequestIDFromCtx_Empty(t *testing.T) {
	if got := RequestIDFromCtx(context.Background()); got != "" {
		t.Errorf("got %q, want empty", got)
	}
}
