package mocks

import (
	"context"
	"sync"

	"github.com/V4T54L/ga4-measurement/internal/domain"
)

// RecordedRequest is a request captured by MockTransport.
type RecordedRequest struct {
	Request domain.Request
	Body    []byte
}

// MockTransport is a mock implementation of domain.Transport for testing.
// It answers every request with the configured status and body.
type MockTransport struct {
	mu         sync.Mutex
	Requests   []RecordedRequest
	StatusCode int
	Body       []byte
	Err        error
}

func (m *MockTransport) Execute(ctx context.Context, req domain.Request, body []byte) ([]byte, domain.Response, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Requests = append(m.Requests, RecordedRequest{Request: req, Body: append([]byte(nil), body...)})
	if m.Err != nil {
		return nil, domain.Response{}, m.Err
	}
	return m.Body, domain.Response{StatusCode: m.StatusCode}, nil
}

// LastRequest returns the most recent request, or false if none was made.
func (m *MockTransport) LastRequest() (RecordedRequest, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.Requests) == 0 {
		return RecordedRequest{}, false
	}
	return m.Requests[len(m.Requests)-1], true
}
