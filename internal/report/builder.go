package report

import (
	"github.com/couchcryptid/storm-impact-report/internal/domain"
	"github.com/samber/lo"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Panel identity and ordering. Health before economy, matching the order the
// questions are usually asked in.
const (
	HealthPanelKey   = "population-health"
	EconomicPanelKey = "economic-consequences"

	healthPanelTitle   = "Population health"
	economicPanelTitle = "Economic consequences"

	healthUnit   = "people killed or injured"
	economicUnit = "US dollars in damage"
)

var (
	healthMetrics   = []domain.Metric{domain.MetricHealth, domain.MetricInjuries, domain.MetricFatalities}
	economicMetrics = []domain.Metric{domain.MetricDamage, domain.MetricPropertyDamage, domain.MetricCropDamage}

	// englishPrinter renders comma-grouped numbers ("96,979") in narrative
	// and text output.
	englishPrinter = message.NewPrinter(language.English)
)

// Build assembles the report from aggregated totals. Each chart ranks the top
// topN categories for its metric; categories beyond the available count are
// simply absent. The narrative of each panel names the top three categories
// by the panel's lead metric.
func Build(totals []domain.CategoryTotals, sourceRows, topN int, runID string) Report {
	return Report{
		RunID:         runID,
		GeneratedAt:   domain.Now(),
		SourceRows:    sourceRows,
		CategoryCount: len(totals),
		Panels: []Panel{
			buildPanel(HealthPanelKey, healthPanelTitle, healthUnit, healthMetrics, totals, topN),
			buildPanel(EconomicPanelKey, economicPanelTitle, economicUnit, economicMetrics, totals, topN),
		},
	}
}

func buildPanel(key, title, unit string, metrics []domain.Metric, totals []domain.CategoryTotals, topN int) Panel {
	charts := lo.Map(metrics, func(m domain.Metric, _ int) Chart {
		top := domain.TopCategories(totals, m, topN)
		return Chart{
			Title:      m.Label(),
			Metric:     m,
			ValueLabel: unit,
			Bars: lo.Map(top, func(t domain.CategoryTotals, _ int) Bar {
				return Bar{Label: t.Category, Value: m.Of(t)}
			}),
		}
	})

	return Panel{
		Key:       key,
		Title:     title,
		Unit:      unit,
		Narrative: narrative(metrics[0], unit, totals),
		Charts:    charts,
	}
}

// narrative summarizes the top three categories by the lead metric. Fewer
// than three categories shortens the sentence rather than failing.
func narrative(lead domain.Metric, unit string, totals []domain.CategoryTotals) string {
	top := domain.TopCategories(totals, lead, 3)
	switch len(top) {
	case 0:
		return "No event categories recorded."
	case 1:
		return englishPrinter.Sprintf("%s leads with %.0f %s.",
			top[0].Category, lead.Of(top[0]), unit)
	case 2:
		return englishPrinter.Sprintf("%s leads with %.0f %s, followed by %s (%.0f).",
			top[0].Category, lead.Of(top[0]), unit,
			top[1].Category, lead.Of(top[1]))
	default:
		return englishPrinter.Sprintf("%s leads with %.0f %s, followed by %s (%.0f) and %s (%.0f).",
			top[0].Category, lead.Of(top[0]), unit,
			top[1].Category, lead.Of(top[1]),
			top[2].Category, lead.Of(top[2]))
	}
}
