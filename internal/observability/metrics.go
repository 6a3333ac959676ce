package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for the
// report pipeline.
type Metrics struct {
	RowsExtracted        prometheus.Counter
	CategoriesAggregated prometheus.Gauge
	AggregatesPublished  prometheus.Counter

	StageDuration *prometheus.HistogramVec // labels: stage={extract,transform,report,publish}
	RunDuration   prometheus.Histogram
	LastSuccess   prometheus.Gauge
}

// NewMetrics creates and registers all pipeline metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		RowsExtracted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "storm_impact",
			Name:      "rows_extracted_total",
			Help:      "Total dataset rows parsed into storm records.",
		}),
		CategoriesAggregated: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "storm_impact",
			Name:      "categories",
			Help:      "Distinct event categories aggregated in the last run.",
		}),
		AggregatesPublished: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "storm_impact",
			Name:      "aggregates_published_total",
			Help:      "Per-category aggregates published to Kafka.",
		}),
		StageDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "storm_impact",
			Name:      "stage_duration_seconds",
			Help:      "Duration of each pipeline stage.",
			Buckets:   []float64{0.1, 0.5, 1, 5, 10, 30, 60, 120, 300},
		}, []string{"stage"}),
		RunDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "storm_impact",
			Name:      "run_duration_seconds",
			Help:      "Duration of a complete report run.",
			Buckets:   []float64{1, 5, 10, 30, 60, 120, 300, 600},
		}),
		LastSuccess: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "storm_impact",
			Name:      "last_success_timestamp_seconds",
			Help:      "Unix timestamp of the last successful run.",
		}),
	}

	prometheus.MustRegister(
		m.RowsExtracted,
		m.CategoriesAggregated,
		m.AggregatesPublished,
		m.StageDuration,
		m.RunDuration,
		m.LastSuccess,
	)

	return m
}

// NewMetricsForTesting creates Metrics with a fresh registry to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		RowsExtracted:        prometheus.NewCounter(prometheus.CounterOpts{Namespace: "storm_impact", Name: "rows_extracted_total"}),
		CategoriesAggregated: prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "storm_impact", Name: "categories"}),
		AggregatesPublished:  prometheus.NewCounter(prometheus.CounterOpts{Namespace: "storm_impact", Name: "aggregates_published_total"}),
		StageDuration:        prometheus.NewHistogramVec(prometheus.HistogramOpts{Namespace: "storm_impact", Name: "stage_duration_seconds"}, []string{"stage"}),
		RunDuration:          prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "storm_impact", Name: "run_duration_seconds"}),
		LastSuccess:          prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "storm_impact", Name: "last_success_timestamp_seconds"}),
	}
}
