package handler

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"strings"

	"github.com/klauspost/compress/gzip"

	"github.com/V4T54L/ga4-measurement/internal/adapter/metrics"
	"github.com/V4T54L/ga4-measurement/internal/domain"
	"github.com/V4T54L/ga4-measurement/internal/usecase"
)

const (
	EndpointCollect  = "collect"
	EndpointValidate = "validate"
)

// CollectHandler emulates the collection endpoint or, when debug is set, the
// validation endpoint.
type CollectHandler struct {
	logger      *slog.Logger
	metrics     *metrics.EmulatorMetrics
	maxBodySize int64
	debug       bool
}

// NewCollectHandler creates a handler for /mp/collect.
func NewCollectHandler(logger *slog.Logger, m *metrics.EmulatorMetrics, maxBodySize int64) *CollectHandler {
	return &CollectHandler{logger: logger, metrics: m, maxBodySize: maxBodySize}
}

// NewValidateHandler creates a handler for /debug/mp/collect.
func NewValidateHandler(logger *slog.Logger, m *metrics.EmulatorMetrics, maxBodySize int64) *CollectHandler {
	return &CollectHandler{logger: logger, metrics: m, maxBodySize: maxBodySize, debug: true}
}

func (h *CollectHandler) endpoint() string {
	if h.debug {
		return EndpointValidate
	}
	return EndpointCollect
}

func (h *CollectHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	endpoint := h.endpoint()

	if r.Method != http.MethodPost {
		h.metrics.RequestsTotal.WithLabelValues(endpoint, "error_method").Inc()
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil || mediaType != "application/json" {
		h.metrics.RequestsTotal.WithLabelValues(endpoint, "error_media_type").Inc()
		http.Error(w, "Unsupported Media Type: "+r.Header.Get("Content-Type"), http.StatusUnsupportedMediaType)
		return
	}

	body, failure := h.readBody(w, r)
	if failure != nil {
		h.metrics.RequestsTotal.WithLabelValues(endpoint, failure.label).Inc()
		http.Error(w, failure.text, failure.code)
		return
	}
	h.metrics.BytesTotal.Add(float64(len(body)))

	inspection, err := usecase.InspectPayload(r.URL.Query(), body)
	if err != nil {
		h.logger.Warn("rejected malformed payload", "endpoint", endpoint, "error", err)
		h.metrics.RequestsTotal.WithLabelValues(endpoint, "error_parse").Inc()
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	if h.debug {
		for _, m := range inspection.Messages {
			h.metrics.ValidationMessagesTotal.WithLabelValues(m.ValidationCode).Inc()
		}
		h.metrics.RequestsTotal.WithLabelValues(endpoint, "validated").Inc()
		writeJSON(w, http.StatusOK, domain.ValidationResponse{ValidationMessages: inspection.Messages})
		return
	}

	// The collection endpoint accepts any well-formed body, even one the
	// validation endpoint would complain about.
	if len(inspection.Messages) > 0 {
		h.logger.Debug("accepted payload with validation messages", "count", len(inspection.Messages))
	}
	h.metrics.EventsTotal.Add(float64(inspection.Events))
	h.metrics.RequestsTotal.WithLabelValues(endpoint, "accepted").Inc()
	w.WriteHeader(http.StatusNoContent)
}

type readFailure struct {
	code  int
	text  string
	label string
}

var (
	tooLarge        = &readFailure{http.StatusRequestEntityTooLarge, "Payload Too Large", "error_size"}
	unreadable      = &readFailure{http.StatusBadRequest, "Bad Request", "error_read"}
	badEncoding     = &readFailure{http.StatusBadRequest, "Bad Request: invalid gzip body", "error_encoding"}
	unknownEncoding = &readFailure{http.StatusUnsupportedMediaType, "Unsupported Content-Encoding", "error_encoding"}
)

// readBody reads the request body, inflating it when it is gzip encoded. The
// size limit applies to the body both before and after decompression.
func (h *CollectHandler) readBody(w http.ResponseWriter, r *http.Request) ([]byte, *readFailure) {
	var reader io.Reader = http.MaxBytesReader(w, r.Body, h.maxBodySize)

	switch strings.ToLower(strings.TrimSpace(r.Header.Get("Content-Encoding"))) {
	case "", "identity":
	case "gzip":
		zr, err := gzip.NewReader(reader)
		if err != nil {
			if isMaxBytes(err) {
				return nil, tooLarge
			}
			return nil, badEncoding
		}
		defer zr.Close()
		reader = io.LimitReader(zr, h.maxBodySize+1)
	default:
		return nil, unknownEncoding
	}

	body, err := io.ReadAll(reader)
	switch {
	case isMaxBytes(err):
		return nil, tooLarge
	case errors.Is(err, gzip.ErrChecksum), errors.Is(err, gzip.ErrHeader), errors.Is(err, io.ErrUnexpectedEOF):
		return nil, badEncoding
	case err != nil:
		return nil, unreadable
	case int64(len(body)) > h.maxBodySize:
		return nil, tooLarge
	}
	return body, nil
}

func isMaxBytes(err error) bool {
	var maxBytesErr *http.MaxBytesError
	return errors.As(err, &maxBytesErr)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
