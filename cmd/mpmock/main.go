package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/V4T54L/ga4-measurement/internal/adapter/api"
	"github.com/V4T54L/ga4-measurement/internal/adapter/metrics"
	"github.com/V4T54L/ga4-measurement/internal/pkg/config"
	"github.com/V4T54L/ga4-measurement/internal/pkg/logger"
)

func main() {
	cfg, err := config.LoadMock()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := logger.New(cfg.LogLevel)
	slog.SetDefault(logger)

	reg := prometheus.NewRegistry()
	m := metrics.NewEmulatorMetrics(reg)

	// --- Graceful Shutdown Context ---
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- Initialize Emulator Server ---
	server := &http.Server{
		Addr:         cfg.ServerAddr,
		Handler:      api.NewRouter(cfg, logger, m, reg),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  15 * time.Second,
	}

	go func() {
		logger.Info("starting measurement protocol emulator", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("emulator server failed", "error", err)
			stop() // Trigger shutdown on server error
		}
	}()

	// --- Wait for shutdown signal ---
	<-ctx.Done()
	logger.Info("shutting down server...")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("emulator server shutdown failed", "error", err)
	}

	logger.Info("server shut down gracefully")
}
