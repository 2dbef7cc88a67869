package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/V4T54L/ga4-measurement/internal/adapter/api/handler"
	"github.com/V4T54L/ga4-measurement/internal/adapter/api/middleware"
	"github.com/V4T54L/ga4-measurement/internal/adapter/metrics"
	"github.com/V4T54L/ga4-measurement/internal/pkg/config"
)

// NewRouter creates and configures the HTTP router of the protocol emulator.
func NewRouter(
	cfg *config.MockConfig,
	logger *slog.Logger,
	m *metrics.EmulatorMetrics,
	gatherer prometheus.Gatherer,
) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logging(logger))
	r.Use(chimw.Recoverer)

	collectHandler := handler.NewCollectHandler(logger, m, cfg.MaxBodySize)
	validateHandler := handler.NewValidateHandler(logger, m, cfg.MaxBodySize)

	r.Group(func(r chi.Router) {
		r.Use(middleware.APISecret(cfg.APISecret, logger))
		r.Method(http.MethodPost, "/mp/collect", collectHandler)
		r.Method(http.MethodPost, "/debug/mp/collect", validateHandler)
	})

	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	return r
}
