// Command impact generates the storm impact report: it fetches the NOAA storm
// database export on first run, aggregates casualty and damage totals per
// event type, and writes HTML chart and plain-text reports. The run is
// idempotent; rerunning reuses the cached dataset and overwrites the reports.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	kafkaadapter "github.com/couchcryptid/storm-impact-report/internal/adapter/kafka"
	"github.com/couchcryptid/storm-impact-report/internal/adapter/noaa"
	"github.com/couchcryptid/storm-impact-report/internal/config"
	"github.com/couchcryptid/storm-impact-report/internal/observability"
	"github.com/couchcryptid/storm-impact-report/internal/pipeline"
	"github.com/couchcryptid/storm-impact-report/internal/report"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if err := run(cfg); err != nil {
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	runID := uuid.NewString()
	logger := observability.NewLogger(cfg).With("run_id", runID)
	metrics := observability.NewMetrics()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client := noaa.NewClient(cfg.DataURL, cfg.DownloadTimeout, logger)
	source := noaa.NewSource(client, cfg.DataPath(), logger)

	renderers := []pipeline.Renderer{
		report.NewHTMLRenderer(cfg.ReportDir, logger),
		report.NewTextRenderer(cfg.ReportDir, os.Stdout, logger),
	}

	// Aggregate publishing is feature-flagged via KAFKA_ENABLED.
	var publisher pipeline.Publisher
	if cfg.KafkaEnabled {
		kp := kafkaadapter.NewPublisher(cfg, logger)
		defer func() {
			if err := kp.Close(); err != nil {
				logger.Error("kafka publisher close error", "error", err)
			}
		}()
		publisher = kp
		logger.Info("aggregate publishing enabled", "topic", cfg.KafkaTopic, "brokers", cfg.KafkaBrokers)
	} else {
		logger.Info("aggregate publishing disabled")
	}

	p := pipeline.New(source, renderers, publisher, cfg.TopN, runID, logger, metrics)

	runErr := p.Run(ctx)
	if runErr != nil {
		logger.Error("report run failed", "error", runErr)
	}

	// Failed runs push too; last_success stays zero so staleness alerts fire.
	if cfg.MetricsPushURL != "" {
		pushCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := observability.PushMetrics(pushCtx, cfg.MetricsPushURL, "storm-impact-report", prometheus.DefaultGatherer); err != nil {
			logger.Error("metrics push failed", "error", err)
		}
	}

	return runErr
}
