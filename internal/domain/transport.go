package domain

import (
	"context"
	"net/http"
)

// Request describes an outgoing protocol request.
type Request struct {
	Method string
	URL    string
	Header http.Header
}

// Response is the metadata of a protocol response.
type Response struct {
	StatusCode int
	Header     http.Header
}

// Transport performs a single HTTP exchange. Implementations return transport
// failures as errors and any HTTP status as a normal Response.
type Transport interface {
	Execute(ctx context.Context, req Request, body []byte) ([]byte, Response, error)
}
