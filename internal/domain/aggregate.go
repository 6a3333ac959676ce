package domain

// CategoryTotals holds the six summed metrics for one event category.
type CategoryTotals struct {
	Category       string  `json:"category"`
	Fatalities     float64 `json:"fatalities"`
	Injuries       float64 `json:"injuries"`
	PropertyDamage float64 `json:"property_damage"`
	CropDamage     float64 `json:"crop_damage"`
	Health         float64 `json:"health"`
	Damage         float64 `json:"damage"`
}

// AccumulateTotals groups impact records by category and sums every metric
// per bucket in a single pass. Buckets appear in the returned slice in
// first-seen input order, which is what every ranking uses to break ties,
// so the whole pipeline stays deterministic for a given input file.
func AccumulateTotals(records []ImpactRecord) []CategoryTotals {
	index := make(map[string]int)
	totals := make([]CategoryTotals, 0)

	for _, rec := range records {
		i, ok := index[rec.Category]
		if !ok {
			i = len(totals)
			index[rec.Category] = i
			totals = append(totals, CategoryTotals{Category: rec.Category})
		}

		t := &totals[i]
		t.Fatalities += rec.Fatalities
		t.Injuries += rec.Injuries
		t.PropertyDamage += rec.PropertyDamage
		t.CropDamage += rec.CropDamage
		t.Health += rec.Health
		t.Damage += rec.Damage
	}

	return totals
}
