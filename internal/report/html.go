package report

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/samber/lo"
)

// HTMLFileName is the chart document written under the report directory.
const HTMLFileName = "storm_impact.html"

// HTMLRenderer writes the report as one HTML document of ECharts bar charts,
// both panels in order.
type HTMLRenderer struct {
	dir    string
	logger *slog.Logger
}

// NewHTMLRenderer creates an HTML renderer writing into dir.
func NewHTMLRenderer(dir string, logger *slog.Logger) *HTMLRenderer {
	return &HTMLRenderer{dir: dir, logger: logger}
}

// Render writes the chart document to <dir>/storm_impact.html.
func (r *HTMLRenderer) Render(_ context.Context, rep Report) error {
	page := components.NewPage()
	page.PageTitle = "Storm Impact Report"
	page.SetLayout(components.PageFlexLayout)

	chartCount := 0
	for _, panel := range rep.Panels {
		for _, chart := range panel.Charts {
			page.AddCharts(barChart(panel, chart))
			chartCount++
		}
	}

	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		return fmt.Errorf("create report dir: %w", err)
	}

	path := filepath.Join(r.dir, HTMLFileName)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create html report: %w", err)
	}
	if err := page.Render(f); err != nil {
		f.Close()
		return fmt.Errorf("render html report: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close html report: %w", err)
	}

	r.logger.Info("html report written", "path", path, "charts", chartCount)
	return nil
}

func barChart(panel Panel, c Chart) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: c.Title, Subtitle: panel.Title}),
		charts.WithInitializationOpts(opts.Initialization{Width: "560px", Height: "400px"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(false)}),
		// Event type names are long; tilt them so all bars stay labeled.
		charts.WithXAxisOpts(opts.XAxis{AxisLabel: &opts.AxisLabel{Rotate: 30, Interval: "0"}}),
	)

	labels := lo.Map(c.Bars, func(b Bar, _ int) string { return b.Label })
	values := lo.Map(c.Bars, func(b Bar, _ int) opts.BarData { return opts.BarData{Value: b.Value} })
	bar.SetXAxis(labels).AddSeries(c.Title, values)
	return bar
}
