package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "ga4_mp"

// ClientMetrics holds the Prometheus metrics recorded by the client.
type ClientMetrics struct {
	RequestsTotal           *prometheus.CounterVec
	EventsTotal             *prometheus.CounterVec
	RequestDuration         *prometheus.HistogramVec
	ValidationMessagesTotal *prometheus.CounterVec
}

// NewClientMetrics initializes the client metrics and registers them with reg.
func NewClientMetrics(reg prometheus.Registerer) *ClientMetrics {
	factory := promauto.With(reg)
	return &ClientMetrics{
		RequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "client",
			Name:      "requests_total",
			Help:      "Total number of protocol requests by endpoint and status class.",
		}, []string{"endpoint", "status"}), // status: 2xx, 4xx, 5xx, error
		EventsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "client",
			Name:      "events_total",
			Help:      "Total number of events posted by endpoint.",
		}, []string{"endpoint"}),
		RequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "client",
			Name:      "request_duration_seconds",
			Help:      "Latency of protocol requests.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"endpoint"}),
		ValidationMessagesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "client",
			Name:      "validation_messages_total",
			Help:      "Total number of validation messages received by code.",
		}, []string{"code"}),
	}
}

// ObserveRequest records one request. A non-nil err counts as status "error".
func (m *ClientMetrics) ObserveRequest(endpoint string, statusCode, events int, elapsed time.Duration, err error) {
	m.RequestsTotal.WithLabelValues(endpoint, StatusClass(statusCode, err)).Inc()
	m.EventsTotal.WithLabelValues(endpoint).Add(float64(events))
	m.RequestDuration.WithLabelValues(endpoint).Observe(elapsed.Seconds())
}

func (m *ClientMetrics) ObserveValidationMessage(code string) {
	m.ValidationMessagesTotal.WithLabelValues(code).Inc()
}

// EmulatorMetrics holds the Prometheus metrics of the protocol emulator.
type EmulatorMetrics struct {
	RequestsTotal           *prometheus.CounterVec
	EventsTotal             prometheus.Counter
	BytesTotal              prometheus.Counter
	ValidationMessagesTotal *prometheus.CounterVec
}

// NewEmulatorMetrics initializes the emulator metrics and registers them with reg.
func NewEmulatorMetrics(reg prometheus.Registerer) *EmulatorMetrics {
	factory := promauto.With(reg)
	return &EmulatorMetrics{
		RequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "emulator",
			Name:      "requests_total",
			Help:      "Total number of requests received by endpoint and status.",
		}, []string{"endpoint", "status"}), // status: accepted, error_parse, error_media_type, error_auth, validated
		EventsTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "emulator",
			Name:      "events_total",
			Help:      "Total number of events accepted by the collection endpoint.",
		}),
		BytesTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "emulator",
			Name:      "bytes_total",
			Help:      "Total number of request body bytes received.",
		}),
		ValidationMessagesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "emulator",
			Name:      "validation_messages_total",
			Help:      "Total number of validation messages returned by code.",
		}, []string{"code"}),
	}
}

// StatusClass buckets an HTTP status into 2xx/3xx/4xx/5xx.
func StatusClass(statusCode int, err error) string {
	if err != nil || statusCode < 100 {
		return "error"
	}
	return strconv.Itoa(statusCode/100) + "xx"
}
