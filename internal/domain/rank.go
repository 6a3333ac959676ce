package domain

import "sort"

// Metric names one of the six ranked totals.
type Metric string

const (
	MetricHealth         Metric = "health"
	MetricInjuries       Metric = "injuries"
	MetricFatalities     Metric = "fatalities"
	MetricDamage         Metric = "damage"
	MetricPropertyDamage Metric = "property_damage"
	MetricCropDamage     Metric = "crop_damage"
)

// Metrics lists all six rankable metrics, health panel first.
var Metrics = []Metric{
	MetricHealth, MetricInjuries, MetricFatalities,
	MetricDamage, MetricPropertyDamage, MetricCropDamage,
}

// Of selects this metric's value from a totals row.
func (m Metric) Of(t CategoryTotals) float64 {
	switch m {
	case MetricHealth:
		return t.Health
	case MetricInjuries:
		return t.Injuries
	case MetricFatalities:
		return t.Fatalities
	case MetricDamage:
		return t.Damage
	case MetricPropertyDamage:
		return t.PropertyDamage
	case MetricCropDamage:
		return t.CropDamage
	default:
		return 0
	}
}

// Label returns the metric's human-readable chart label.
func (m Metric) Label() string {
	switch m {
	case MetricHealth:
		return "Fatalities + injuries"
	case MetricInjuries:
		return "Injuries"
	case MetricFatalities:
		return "Fatalities"
	case MetricDamage:
		return "Total damage (USD)"
	case MetricPropertyDamage:
		return "Property damage (USD)"
	case MetricCropDamage:
		return "Crop damage (USD)"
	default:
		return string(m)
	}
}

// TopCategories returns the n categories with the highest value of the given
// metric, descending. The sort is stable over the totals' first-seen order,
// so equal values rank in input order. Fewer than n distinct categories is a
// degraded result, not an error: all of them come back.
func TopCategories(totals []CategoryTotals, metric Metric, n int) []CategoryTotals {
	ranked := make([]CategoryTotals, len(totals))
	copy(ranked, totals)

	sort.SliceStable(ranked, func(i, j int) bool {
		return metric.Of(ranked[i]) > metric.Of(ranked[j])
	})

	if n > len(ranked) {
		n = len(ranked)
	}
	return ranked[:n]
}
