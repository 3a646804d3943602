package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"mercator-hq/solarsystem/pkg/telemetry/logging"
)

func TestRequestIDMiddleware(t *testing.T) {
	var seen string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = logging.GetRequestID(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	wrapped := RequestIDMiddleware(handler)

	t.Run("generates request ID when not provided", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		w := httptest.NewRecorder()

		wrapped.ServeHTTP(w, req)

		requestID := w.Header().Get(RequestIDHeader)
		if _, err := uuid.Parse(requestID); err != nil {
			t.Errorf("Request ID %q is not a UUID: %v", requestID, err)
		}
		if seen != requestID {
			t.Errorf("context request ID = %q, header = %q", seen, requestID)
		}
	})

	t.Run("uses provided request ID", func(t *testing.T) {
		customID := "custom-request-id-12345"
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.Header.Set(RequestIDHeader, customID)
		w := httptest.NewRecorder()

		wrapped.ServeHTTP(w, req)

		if got := w.Header().Get(RequestIDHeader); got != customID {
			t.Errorf("Request ID = %q, want %q", got, customID)
		}
		if seen != customID {
			t.Errorf("context request ID = %q, want %q", seen, customID)
		}
	})

	rejected := []struct {
		name string
		id   string
	}{
		{"too long", strings.Repeat("a", maxRequestIDLength+1)},
		{"contains space", "bad id"},
		{"contains control character", "bad\x01id"},
	}

	for _, tt := range rejected {
		t.Run("replaces "+tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			req.Header.Set(RequestIDHeader, tt.id)
			w := httptest.NewRecorder()

			wrapped.ServeHTTP(w, req)

			got := w.Header().Get(RequestIDHeader)
			if got == tt.id {
				t.Fatal("invalid request ID was kept")
			}
			if _, err := uuid.Parse(got); err != nil {
				t.Errorf("replacement %q is not a UUID", got)
			}
		})
	}
}
