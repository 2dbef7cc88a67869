package middleware

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
}

func TestAPISecret(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tests := []struct {
		name           string
		configured     string
		query          string
		expectedStatus int
	}{
		{name: "Matching secret", configured: "s3cr3t", query: "api_secret=s3cr3t", expectedStatus: http.StatusNoContent},
		{name: "Wrong secret", configured: "s3cr3t", query: "api_secret=nope", expectedStatus: http.StatusForbidden},
		{name: "Missing secret", configured: "s3cr3t", query: "", expectedStatus: http.StatusUnauthorized},
		{name: "Any secret when unconfigured", configured: "", query: "api_secret=anything", expectedStatus: http.StatusNoContent},
		{name: "Still required when unconfigured", configured: "", query: "", expectedStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := APISecret(tt.configured, logger)(okHandler())
			req := httptest.NewRequest(http.MethodPost, "/mp/collect?"+tt.query, nil)
			rr := httptest.NewRecorder()
			h.ServeHTTP(rr, req)

			if rr.Code != tt.expectedStatus {
				t.Errorf("status = %d, want %d", rr.Code, tt.expectedStatus)
			}
		})
	}
}

func TestLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	h := Logging(logger)(okHandler())

	t.Run("Generates request id", func(t *testing.T) {
		buf.Reset()
		req := httptest.NewRequest(http.MethodPost, "/mp/collect?api_secret=hidden", nil)
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)

		id := rr.Header().Get(RequestIDHeader)
		if id == "" {
			t.Fatal("expected a request id header")
		}
		out := buf.String()
		if !strings.Contains(out, "status=204") || !strings.Contains(out, "request_id="+id) {
			t.Errorf("unexpected log line %q", out)
		}
		if strings.Contains(out, "hidden") {
			t.Errorf("query string leaked into logs: %q", out)
		}
	})

	t.Run("Reuses caller request id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		req.Header.Set(RequestIDHeader, "abc")
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)

		if got := rr.Header().Get(RequestIDHeader); got != "abc" {
			t.Errorf("request id = %q, want abc", got)
		}
	})
}
