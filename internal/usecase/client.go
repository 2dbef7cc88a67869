package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/V4T54L/ga4-measurement/internal/domain"
)

const (
	DefaultBaseURL = "https://www.google-analytics.com/"

	collectPath  = "mp/collect"
	validatePath = "debug/mp/collect"

	endpointCollect  = "collect"
	endpointValidate = "validate"
)

// Recorder receives per-request measurements. metrics.ClientMetrics
// implements it.
type Recorder interface {
	ObserveRequest(endpoint string, statusCode, events int, elapsed time.Duration, err error)
	ObserveValidationMessage(code string)
}

// ClientConfig is the immutable configuration of a Client.
type ClientConfig struct {
	BaseURL   string
	APISecret string
	Context   ClientContext
}

// Client sends events to the collection endpoint and checks them against the
// validation endpoint. It holds no mutable state and is safe for concurrent
// use.
type Client struct {
	transport domain.Transport
	cfg       ClientConfig
	base      *url.URL
	logger    *slog.Logger
	metrics   Recorder
}

// NewClient creates a Client. metrics may be nil.
func NewClient(transport domain.Transport, cfg ClientConfig, logger *slog.Logger, metrics Recorder) (*Client, error) {
	if transport == nil {
		return nil, errors.New("transport is required")
	}
	if cfg.APISecret == "" {
		return nil, errors.New("api secret is required")
	}
	if err := cfg.Context.Identity.Validate(); err != nil {
		return nil, err
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	base, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base url %q: %w", cfg.BaseURL, err)
	}
	if !strings.HasSuffix(base.Path, "/") {
		base.Path += "/"
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		transport: transport,
		cfg:       cfg,
		base:      base,
		logger:    logger.With("component", "ga4_client"),
		metrics:   metrics,
	}, nil
}

// Send posts events to the collection endpoint. Only 204 No Content counts as
// success; any other status is returned as *domain.ResponseError.
func (c *Client) Send(ctx context.Context, events []domain.Event, timestamp time.Time) error {
	_, resp, err := c.post(ctx, collectPath, endpointCollect, events, timestamp)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusNoContent {
		return resp.err()
	}
	return nil
}

// Validate posts events to the validation endpoint and returns its
// diagnostics. An empty result means the payload is well formed.
func (c *Client) Validate(ctx context.Context, events []domain.Event, timestamp time.Time) ([]domain.ValidationMessage, error) {
	body, resp, err := c.post(ctx, validatePath, endpointValidate, events, timestamp)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, resp.err()
	}

	var vr domain.ValidationResponse
	if err := json.Unmarshal(body, &vr); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedResponse, err)
	}
	for _, m := range vr.ValidationMessages {
		c.logger.Debug("validation message", "code", m.ValidationCode, "field_path", m.FieldPath, "description", m.Description)
		if c.metrics != nil {
			c.metrics.ObserveValidationMessage(m.ValidationCode)
		}
	}
	if vr.ValidationMessages == nil {
		vr.ValidationMessages = []domain.ValidationMessage{}
	}
	return vr.ValidationMessages, nil
}

type result struct {
	domain.Response
	body []byte
}

func (r result) err() error {
	return &domain.ResponseError{Body: r.body, Response: r.Response}
}

func (c *Client) post(ctx context.Context, path, endpoint string, events []domain.Event, timestamp time.Time) ([]byte, result, error) {
	ctx, span := otel.Tracer("ga4-client").Start(ctx, "mp."+endpoint)
	defer span.End()
	span.SetAttributes(attribute.String("mp.endpoint", endpoint), attribute.Int("mp.events", len(events)))

	payload, err := BuildPayload(c.cfg.Context, events, timestamp)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, result{}, err
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, result{}, fmt.Errorf("failed to encode payload: %w", err)
	}

	for _, e := range events {
		if domain.IsReservedEventName(e.Name) {
			c.logger.Warn("sending reserved event name", "event", e.Name, "endpoint", endpoint)
		}
	}

	req := domain.Request{
		Method: http.MethodPost,
		URL:    c.endpointURL(path),
		Header: http.Header{"Content-Type": []string{"application/json"}},
	}

	start := time.Now()
	respBody, resp, err := c.transport.Execute(ctx, req, body)
	elapsed := time.Since(start)
	if c.metrics != nil {
		c.metrics.ObserveRequest(endpoint, resp.StatusCode, len(events), elapsed, err)
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		c.logger.Debug("protocol request failed", "endpoint", endpoint, "error", err)
		return nil, result{}, err
	}
	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))

	c.logger.Debug("protocol request completed",
		"endpoint", endpoint,
		"status", resp.StatusCode,
		"events", len(events),
		"bytes", len(body),
		"duration", elapsed,
	)
	return respBody, result{Response: resp, body: respBody}, nil
}

// endpointURL joins path onto the base URL and adds the query parameters.
// The secret only ever appears in the returned URL, never in log records.
func (c *Client) endpointURL(path string) string {
	u := *c.base
	u.Path += path
	q := u.Query()
	q.Set("api_secret", c.cfg.APISecret)
	key, value := c.cfg.Context.Identity.QueryParam()
	q.Set(key, value)
	u.RawQuery = q.Encode()
	return u.String()
}
