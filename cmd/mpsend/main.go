package main

import (
	"context"
	"encoding/json"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/V4T54L/ga4-measurement/internal/adapter/metrics"
	"github.com/V4T54L/ga4-measurement/internal/adapter/transport"
	"github.com/V4T54L/ga4-measurement/internal/domain"
	"github.com/V4T54L/ga4-measurement/internal/pkg/config"
	"github.com/V4T54L/ga4-measurement/internal/pkg/eventfile"
	"github.com/V4T54L/ga4-measurement/internal/pkg/logger"
	"github.com/V4T54L/ga4-measurement/internal/usecase"
)

func main() {
	file := flag.String("file", "events.yaml", "YAML file describing the events to send")
	validate := flag.Bool("validate", false, "Send to the validation endpoint and print its messages")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := logger.New(cfg.LogLevel)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	reg := prometheus.NewRegistry()
	m := metrics.NewClientMetrics(reg)

	// --- Optional Metrics Server ---
	var metricsServer *http.Server
	if cfg.MetricsAddr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
		metricsServer = &http.Server{Addr: cfg.MetricsAddr, Handler: mux}
		go func() {
			logger.Info("starting metrics server", "addr", metricsServer.Addr)
			if err := metricsServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				logger.Error("metrics server failed", "error", err)
			}
		}()
	}

	// --- Build Events and Client ---
	events, cc, err := loadEvents(*file, cfg)
	if err != nil {
		logger.Error("failed to load events", "file", *file, "error", err)
		os.Exit(1)
	}

	var t domain.Transport = transport.NewHTTPTransport(cfg.HTTPTimeout)
	if cfg.Gzip {
		t = transport.Gzip(t)
	}
	t = transport.RateLimited(t, transport.NewLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst))
	client, err := usecase.NewClient(t, usecase.ClientConfig{
		BaseURL:   cfg.BaseURL,
		APISecret: cfg.APISecret,
		Context:   cc,
	}, logger, m)
	if err != nil {
		logger.Error("failed to create client", "error", err)
		os.Exit(1)
	}

	exitCode := run(ctx, client, events, *validate, logger)

	if metricsServer != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := metricsServer.Shutdown(shutdownCtx); err != nil {
			logger.Error("metrics server shutdown failed", "error", err)
		}
	}
	if exitCode != 0 {
		os.Exit(exitCode)
	}
}

func loadEvents(path string, cfg *config.Config) ([]domain.Event, usecase.ClientContext, error) {
	f, err := eventfile.Load(path)
	if err != nil {
		return nil, usecase.ClientContext{}, err
	}
	events, err := f.BuildEvents()
	if err != nil {
		return nil, usecase.ClientContext{}, err
	}

	identity, err := cfg.Identity()
	if err != nil {
		return nil, usecase.ClientContext{}, err
	}
	behavior, err := cfg.Behavior()
	if err != nil {
		return nil, usecase.ClientContext{}, err
	}
	cc, err := f.ApplyTo(usecase.ClientContext{
		Identity:           identity,
		UserID:             cfg.UserID,
		ValidationBehavior: behavior,
	})
	if err != nil {
		return nil, usecase.ClientContext{}, err
	}
	return events, cc, nil
}

func run(ctx context.Context, client *usecase.Client, events []domain.Event, validate bool, logger *slog.Logger) int {
	if !validate {
		if err := client.Send(ctx, events, time.Time{}); err != nil {
			logger.Error("failed to send events", "error", err)
			return 1
		}
		logger.Info("events sent", "count", len(events))
		return 0
	}

	messages, err := client.Validate(ctx, events, time.Time{})
	if err != nil {
		logger.Error("failed to validate events", "error", err)
		return 1
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(messages); err != nil {
		logger.Error("failed to print validation messages", "error", err)
		return 1
	}
	if len(messages) > 0 {
		return 2
	}
	return 0
}
