package api

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/V4T54L/ga4-measurement/internal/adapter/metrics"
	"github.com/V4T54L/ga4-measurement/internal/adapter/transport"
	"github.com/V4T54L/ga4-measurement/internal/catalog"
	"github.com/V4T54L/ga4-measurement/internal/domain"
	"github.com/V4T54L/ga4-measurement/internal/pkg/config"
	"github.com/V4T54L/ga4-measurement/internal/usecase"
)

func TestNewRouter(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	reg := prometheus.NewRegistry()
	router := NewRouter(&config.MockConfig{APISecret: "s", MaxBodySize: 1 << 16}, logger, metrics.NewEmulatorMetrics(reg), reg)

	post := func(path string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, path,
			bytes.NewBufferString(`{"app_instance_id":"i","events":[{"name":"login"}]}`))
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		return rr
	}

	if rr := post("/mp/collect?api_secret=s&firebase_app_id=app"); rr.Code != http.StatusNoContent {
		t.Errorf("collect status = %d, want 204", rr.Code)
	}
	if rr := post("/debug/mp/collect?api_secret=s&firebase_app_id=app"); rr.Code != http.StatusOK {
		t.Errorf("validate status = %d, want 200", rr.Code)
	}
	if rr := post("/mp/collect?api_secret=wrong&firebase_app_id=app"); rr.Code != http.StatusForbidden {
		t.Errorf("bad secret status = %d, want 403", rr.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK || !strings.Contains(rr.Body.String(), `"ok"`) {
		t.Errorf("unexpected health response %d %q", rr.Code, rr.Body.String())
	}

	req = httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	if !strings.Contains(rr.Body.String(), "ga4_mp_emulator_requests_total") {
		t.Errorf("expected emulator metrics in /metrics output")
	}
}

func TestNewRouter_MethodNotAllowed(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	reg := prometheus.NewRegistry()
	router := NewRouter(&config.MockConfig{MaxBodySize: 1 << 16}, logger, metrics.NewEmulatorMetrics(reg), reg)

	req := httptest.NewRequest(http.MethodGet, "/mp/collect", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	if rr.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want 405", rr.Code)
	}
}

// The emulator is exercised end to end through the real client.
func TestEmulator_WithClient(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	reg := prometheus.NewRegistry()
	server := httptest.NewServer(NewRouter(&config.MockConfig{APISecret: "s", MaxBodySize: 1 << 16}, logger, metrics.NewEmulatorMetrics(reg), reg))
	defer server.Close()

	newClient := func(t *testing.T, tr domain.Transport) *usecase.Client {
		t.Helper()
		client, err := usecase.NewClient(tr, usecase.ClientConfig{
			BaseURL:   server.URL,
			APISecret: "s",
			Context:   usecase.ClientContext{Identity: domain.FirebaseIdentity("app", "instance")},
		}, logger, nil)
		if err != nil {
			t.Fatalf("NewClient() error = %v", err)
		}
		return client
	}

	price := domain.MustPrice("EUR", 12.5)
	purchase := catalog.Purchase(catalog.TransactionParams{TransactionID: "T1", Price: &price})

	tests := []struct {
		name      string
		transport domain.Transport
	}{
		{name: "Plain", transport: transport.NewHTTPTransport(5 * time.Second)},
		{name: "Gzip", transport: transport.Gzip(transport.NewHTTPTransport(5 * time.Second))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newClient(t, tt.transport)
			ctx := context.Background()

			if err := client.Send(ctx, []domain.Event{purchase}, time.Time{}); err != nil {
				t.Fatalf("Send() error = %v", err)
			}

			messages, err := client.Validate(ctx, []domain.Event{purchase}, time.Time{})
			if err != nil {
				t.Fatalf("Validate() error = %v", err)
			}
			if len(messages) != 0 {
				t.Errorf("expected no validation messages, got %+v", messages)
			}

			messages, err = client.Validate(ctx, []domain.Event{catalog.SessionStart(domain.Engagement{})}, time.Time{})
			if err != nil {
				t.Fatalf("Validate() error = %v", err)
			}
			if len(messages) != 1 || messages[0].ValidationCode != domain.CodeNameReserved {
				t.Errorf("expected NAME_RESERVED, got %+v", messages)
			}
		})
	}
}
