// Package report builds the storm impact report from aggregated category
// totals and renders it as HTML charts and plain text.
package report

import (
	"time"

	"github.com/couchcryptid/storm-impact-report/internal/domain"
)

// Report is the fully assembled impact report: two panels of three charts
// each, one panel per impact dimension.
type Report struct {
	RunID         string
	GeneratedAt   time.Time
	SourceRows    int
	CategoryCount int
	Panels        []Panel
}

// Panel groups the charts for one impact dimension with a short narrative
// naming the worst categories by the panel's lead metric.
type Panel struct {
	Key       string
	Title     string
	Unit      string
	Narrative string
	Charts    []Chart
}

// Chart is one ranked bar chart, highest value first.
type Chart struct {
	Title      string
	Metric     domain.Metric
	ValueLabel string
	Bars       []Bar
}

// Bar is a single labeled chart value.
type Bar struct {
	Label string
	Value float64
}
