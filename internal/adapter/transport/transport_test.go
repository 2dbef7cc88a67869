package transport

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/klauspost/compress/gzip"
	"golang.org/x/time/rate"

	"github.com/V4T54L/ga4-measurement/internal/domain"
	"github.com/V4T54L/ga4-measurement/internal/domain/mocks"
)

func TestHTTPTransport_Execute(t *testing.T) {
	var gotMethod, gotContentType, gotBody, gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotContentType = r.Header.Get("Content-Type")
		gotQuery = r.URL.RawQuery
		b, _ := io.ReadAll(r.Body)
		gotBody = string(b)
		w.Header().Set("X-Test", "yes")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":"bad"}`))
	}))
	defer server.Close()

	tr := NewHTTPTransport(5 * time.Second)
	req := domain.Request{
		Method: http.MethodPost,
		URL:    server.URL + "/mp/collect?api_secret=x",
		Header: http.Header{"Content-Type": []string{"application/json"}},
	}
	body, resp, err := tr.Execute(context.Background(), req, []byte(`{"events":[]}`))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if gotMethod != http.MethodPost || gotContentType != "application/json" || gotQuery != "api_secret=x" {
		t.Errorf("unexpected request: method=%s content-type=%s query=%s", gotMethod, gotContentType, gotQuery)
	}
	if gotBody != `{"events":[]}` {
		t.Errorf("unexpected request body %s", gotBody)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
	if resp.Header.Get("X-Test") != "yes" {
		t.Error("response headers were not returned")
	}
	if string(body) != `{"error":"bad"}` {
		t.Errorf("unexpected response body %s", body)
	}
}

func TestHTTPTransport_ContextCanceled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := NewHTTPTransport(0).Execute(ctx, domain.Request{Method: http.MethodPost, URL: server.URL}, nil)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestRateLimited(t *testing.T) {
	t.Run("Nil limiter is a no-op", func(t *testing.T) {
		next := &mocks.MockTransport{StatusCode: 204}
		if got := RateLimited(next, nil); got != domain.Transport(next) {
			t.Error("expected the wrapped transport to be returned unchanged")
		}
	})

	t.Run("Forwards requests", func(t *testing.T) {
		next := &mocks.MockTransport{StatusCode: 204}
		tr := RateLimited(next, rate.NewLimiter(rate.Inf, 1))
		_, resp, err := tr.Execute(context.Background(), domain.Request{URL: "http://x"}, []byte("b"))
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if resp.StatusCode != 204 || len(next.Requests) != 1 {
			t.Errorf("request was not forwarded: %+v", next.Requests)
		}
	})

	t.Run("Honours cancellation while waiting", func(t *testing.T) {
		next := &mocks.MockTransport{StatusCode: 204}
		limiter := rate.NewLimiter(rate.Every(time.Hour), 1)
		limiter.Allow() // drain the only token
		tr := RateLimited(next, limiter)

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		defer cancel()
		if _, _, err := tr.Execute(ctx, domain.Request{}, nil); err == nil {
			t.Fatal("expected an error while waiting for a token")
		}
		if len(next.Requests) != 0 {
			t.Error("request must not be forwarded after cancellation")
		}
	})
}

func TestNewLimiter(t *testing.T) {
	if NewLimiter(0, 5) != nil {
		t.Error("expected nil limiter when rps is 0")
	}
	l := NewLimiter(10, 0)
	if l == nil || l.Burst() != 1 || l.Limit() != 10 {
		t.Errorf("unexpected limiter %+v", l)
	}
}

func TestGzip(t *testing.T) {
	mock := &mocks.MockTransport{StatusCode: http.StatusNoContent}
	original := http.Header{"Content-Type": []string{"application/json"}}
	req := domain.Request{Method: http.MethodPost, URL: "http://example.test/mp/collect", Header: original}

	if _, _, err := Gzip(mock).Execute(context.Background(), req, []byte(`{"events":[{"name":"login"}]}`)); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	got, ok := mock.LastRequest()
	if !ok {
		t.Fatal("request was not forwarded")
	}
	if got.Request.Header.Get("Content-Encoding") != "gzip" {
		t.Error("Content-Encoding must be gzip")
	}
	if got.Request.Header.Get("Content-Type") != "application/json" {
		t.Error("existing headers must be kept")
	}
	if original.Get("Content-Encoding") != "" {
		t.Error("the caller's header must not be modified")
	}

	zr, err := gzip.NewReader(bytes.NewReader(got.Body))
	if err != nil {
		t.Fatalf("body is not gzip: %v", err)
	}
	plain, err := io.ReadAll(zr)
	if err != nil {
		t.Fatalf("failed to inflate body: %v", err)
	}
	if string(plain) != `{"events":[{"name":"login"}]}` {
		t.Errorf("unexpected inflated body %s", plain)
	}
}

func TestNewHTTPTransportWithClient(t *testing.T) {
	server := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	tr := NewHTTPTransportWithClient(server.Client())
	req := domain.Request{Method: http.MethodPost, URL: server.URL + "/mp/collect"}
	_, resp, err := tr.Execute(context.Background(), req, []byte(`{}`))
	if err != nil {
		t.Fatalf("expected the TLS client to be used, got %v", err)
	}
	if resp.StatusCode != http.StatusNoContent {
		t.Errorf("status = %d, want 204", resp.StatusCode)
	}
}
