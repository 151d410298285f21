package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/todolist-service/internal/adapters/http/middleware"
)

func TestRequestID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		header   string
		wantKeep bool
	}{
		{name: "generates when absent", header: "", wantKeep: false},
		{name: "reuses well-formed header", header: "incoming-123", wantKeep: true},
		{name: "replaces oversized header", header: strings.Repeat("a", 129), wantKeep: false},
		{name: "replaces header with spaces", header: "two words", wantKeep: false},
		{name: "replaces non-ascii header", header: "idé", wantKeep: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var gotID string
			handler := middleware.RequestID()(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
				gotID = middleware.RequestIDFromContext(r.Context())
			}))

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/api", http.NoBody)
			if tt.header != "" {
				req.Header.Set("X-Request-ID", tt.header)
			}
			handler.ServeHTTP(rec, req)

			if tt.wantKeep {
				if gotID != tt.header {
					t.Errorf("RequestIDFromContext = %q, want %q", gotID, tt.header)
				}
			} else {
				parsed, err := uuid.Parse(gotID)
				if err != nil || parsed.Version() != 4 {
					t.Errorf("RequestIDFromContext = %q, want a generated UUID v4", gotID)
				}
			}
			if respID := rec.Header().Get("X-Request-ID"); respID != gotID {
				t.Errorf("response X-Request-ID = %q, want %q", respID, gotID)
			}
		})
	}
}

func TestRequestID_UniquenessAcrossRequests(t *testing.T) {
	t.Parallel()

	ids := make(map[string]bool)
	handler := middleware.RequestID()(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		ids[middleware.RequestIDFromContext(r.Context())] = true
	}))

	for range 100 {
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api", http.NoBody))
	}

	if len(ids) != 100 {
		t.Errorf("unique IDs = %d, want 100", len(ids))
	}
}

func TestRequestIDFromContext(t *testing.T) {
	t.Parallel()

	if id := middleware.RequestIDFromContext(context.Background()); id != "" {
		t.Errorf("RequestIDFromContext(empty) = %q, want empty string", id)
	}

	ctx := middleware.WithRequestID(context.Background(), "test-id")
	if got := middleware.RequestIDFromContext(ctx); got != "test-id" {
		t.Errorf("RequestIDFromContext = %q, want %q", got, "test-id")
	}
}
