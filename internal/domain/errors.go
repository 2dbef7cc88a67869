package domain

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrNoEvents          = errors.New("payload requires at least one event")
	ErrTooManyEvents     = fmt.Errorf("payload exceeds %d events", MaxEventsPerPayload)
	ErrEmptyEventName    = errors.New("event name is required")
	ErrInvalidIdentity   = errors.New("invalid identity")
	ErrMalformedResponse = errors.New("malformed validation response")
)

// maxErrorBody bounds how much of a response body ends up in an error string.
const maxErrorBody = 512

// ResponseError reports an unexpected status from the protocol endpoint. The
// raw body and response metadata are kept for diagnostics.
type ResponseError struct {
	Body     []byte
	Response Response
}

func (e *ResponseError) Error() string {
	body := e.Body
	if len(body) > maxErrorBody {
		body = body[:maxErrorBody]
	}
	return fmt.Sprintf("unexpected response status %d %s: %s",
		e.Response.StatusCode, http.StatusText(e.Response.StatusCode), body)
}
