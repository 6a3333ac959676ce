package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/couchcryptid/storm-impact-report/internal/domain"
	"github.com/couchcryptid/storm-impact-report/internal/observability"
	"github.com/couchcryptid/storm-impact-report/internal/report"
)

// Extractor provides the storm records for a run.
type Extractor interface {
	Extract(ctx context.Context) ([]domain.StormRecord, error)
}

// Renderer writes one rendition of the built report.
type Renderer interface {
	Render(ctx context.Context, rep report.Report) error
}

// Publisher sends per-category aggregates downstream.
type Publisher interface {
	Publish(ctx context.Context, runID string, generatedAt time.Time, totals []domain.CategoryTotals) error
}

// Pipeline orchestrates one extract-transform-report cycle.
type Pipeline struct {
	extractor Extractor
	renderers []Renderer
	publisher Publisher // nil when aggregate publishing is disabled
	topN      int
	runID     string
	logger    *slog.Logger
	metrics   *observability.Metrics
}

// New creates a Pipeline with the given stages and observability.
func New(e Extractor, renderers []Renderer, pub Publisher, topN int, runID string, logger *slog.Logger, metrics *observability.Metrics) *Pipeline {
	return &Pipeline{
		extractor: e,
		renderers: renderers,
		publisher: pub,
		topN:      topN,
		runID:     runID,
		logger:    logger,
		metrics:   metrics,
	}
}

// Run executes one complete report cycle. The whole run is idempotent, so any
// stage error simply aborts it; rerunning after a failure is always safe.
func (p *Pipeline) Run(ctx context.Context) error {
	runStart := time.Now()
	p.logger.Info("report run started", "top_n", p.topN)

	start := time.Now()
	records, err := p.extractor.Extract(ctx)
	if err != nil {
		return fmt.Errorf("extract dataset: %w", err)
	}
	p.observeStage("extract", start)
	p.metrics.RowsExtracted.Add(float64(len(records)))
	p.logger.Info("dataset extracted", "rows", len(records))

	start = time.Now()
	totals := domain.AccumulateTotals(domain.ScaleRecords(records))
	p.observeStage("transform", start)
	p.metrics.CategoriesAggregated.Set(float64(len(totals)))
	p.logger.Info("impact totals aggregated", "categories", len(totals))

	start = time.Now()
	rep := report.Build(totals, len(records), p.topN, p.runID)
	for _, r := range p.renderers {
		if err := r.Render(ctx, rep); err != nil {
			return fmt.Errorf("render report: %w", err)
		}
	}
	p.observeStage("report", start)

	if p.publisher != nil {
		start = time.Now()
		if err := p.publisher.Publish(ctx, rep.RunID, rep.GeneratedAt, totals); err != nil {
			return fmt.Errorf("publish aggregates: %w", err)
		}
		p.observeStage("publish", start)
		p.metrics.AggregatesPublished.Add(float64(len(totals)))
		p.logger.Info("aggregates published", "categories", len(totals))
	}

	p.metrics.RunDuration.Observe(time.Since(runStart).Seconds())
	p.metrics.LastSuccess.Set(float64(domain.Now().Unix()))
	p.logger.Info("report run complete",
		"rows", len(records),
		"categories", len(totals),
		"duration", time.Since(runStart).Round(time.Millisecond),
	)
	return nil
}

func (p *Pipeline) observeStage(stage string, start time.Time) {
	p.metrics.StageDuration.WithLabelValues(stage).Observe(time.Since(start).Seconds())
}
