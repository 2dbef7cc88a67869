package transport

import (
	"context"

	"golang.org/x/time/rate"

	"github.com/V4T54L/ga4-measurement/internal/domain"
)

// RateLimitedTransport delays requests so that next sees at most the rate
// allowed by the limiter. It never retries.
type RateLimitedTransport struct {
	next    domain.Transport
	limiter *rate.Limiter
}

// RateLimited wraps next with limiter. A nil limiter returns next unchanged.
func RateLimited(next domain.Transport, limiter *rate.Limiter) domain.Transport {
	if limiter == nil {
		return next
	}
	return &RateLimitedTransport{next: next, limiter: limiter}
}

// NewLimiter builds a limiter for rps requests per second. rps <= 0 disables
// limiting and returns nil.
func NewLimiter(rps float64, burst int) *rate.Limiter {
	if rps <= 0 {
		return nil
	}
	if burst < 1 {
		burst = 1
	}
	return rate.NewLimiter(rate.Limit(rps), burst)
}

func (t *RateLimitedTransport) Execute(ctx context.Context, req domain.Request, body []byte) ([]byte, domain.Response, error) {
	if err := t.limiter.Wait(ctx); err != nil {
		return nil, domain.Response{}, err
	}
	return t.next.Execute(ctx, req, body)
}
