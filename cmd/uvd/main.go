package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/couchcryptid/uv-advisory-service/internal/adapter/arpansa"
	httpadapter "github.com/couchcryptid/uv-advisory-service/internal/adapter/http"
	kafkaadapter "github.com/couchcryptid/uv-advisory-service/internal/adapter/kafka"
	"github.com/couchcryptid/uv-advisory-service/internal/config"
	"github.com/couchcryptid/uv-advisory-service/internal/observability"
	"github.com/couchcryptid/uv-advisory-service/internal/poller"
	"github.com/couchcryptid/uv-advisory-service/internal/render"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	client := arpansa.NewClient(cfg.FeedURL, cfg.FetchTimeout, metrics, logger)
	snapshot := render.NewSnapshot()

	// Kafka publishing is feature-flagged via UV_KAFKA_ENABLED.
	var publisher poller.Publisher
	var writer *kafkaadapter.Writer
	if cfg.KafkaEnabled {
		writer = kafkaadapter.NewWriter(cfg, logger)
		publisher = writer
		logger.Info("kafka publishing enabled", "topic", cfg.KafkaTopic, "brokers", cfg.KafkaBrokers)
	} else {
		logger.Info("kafka publishing disabled")
	}

	p := poller.New(client, snapshot, publisher, logger, metrics, cfg.Location, cfg.PollInterval)

	srv := httpadapter.NewServer(cfg.HTTPAddr, snapshot, p, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Start HTTP server.
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
		}
	}()

	// Start the poll loop.
	go func() {
		if err := p.Run(ctx); err != nil {
			logger.Error("poller error", "error", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}
	if writer != nil {
		if err := writer.Close(); err != nil {
			logger.Error("kafka writer close error", "error", err)
		}
	}

	logger.Info("shutdown complete")
}
