package transport

import (
	"bytes"
	"context"
	"fmt"
	"net/http"

	"github.com/klauspost/compress/gzip"

	"github.com/V4T54L/ga4-measurement/internal/domain"
)

// GzipTransport compresses request bodies before handing them to next.
type GzipTransport struct {
	next  domain.Transport
	level int
}

// Gzip wraps next so that bodies are sent with Content-Encoding: gzip.
func Gzip(next domain.Transport) *GzipTransport {
	return &GzipTransport{next: next, level: gzip.DefaultCompression}
}

func (t *GzipTransport) Execute(ctx context.Context, req domain.Request, body []byte) ([]byte, domain.Response, error) {
	var buf bytes.Buffer
	zw, err := gzip.NewWriterLevel(&buf, t.level)
	if err != nil {
		return nil, domain.Response{}, fmt.Errorf("failed to create gzip writer: %w", err)
	}
	if _, err := zw.Write(body); err != nil {
		return nil, domain.Response{}, fmt.Errorf("failed to compress body: %w", err)
	}
	if err := zw.Close(); err != nil {
		return nil, domain.Response{}, fmt.Errorf("failed to compress body: %w", err)
	}

	header := req.Header.Clone()
	if header == nil {
		header = http.Header{}
	}
	header.Set("Content-Encoding", "gzip")
	req.Header = header

	return t.next.Execute(ctx, req, buf.Bytes())
}
