package domain

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// threeRecordInput is the canonical worked example: two tornado reports and
// one flood, exercising K, B, M and blank unit codes together.
func threeRecordInput() []StormRecord {
	return []StormRecord{
		{Category: "TORNADO", Fatalities: 5, Injuries: 10, PropertyDamage: 100, PropertyUnit: "K"},
		{Category: "FLOOD", Fatalities: 1, PropertyDamage: 2, PropertyUnit: "B", CropDamage: 1, CropUnit: "M"},
		{Category: "TORNADO", Fatalities: 2, Injuries: 3, PropertyDamage: 50, PropertyUnit: "K"},
	}
}

func TestAccumulateTotals_WorkedExample(t *testing.T) {
	totals := AccumulateTotals(ScaleRecords(threeRecordInput()))
	require.Len(t, totals, 2)

	expected := []CategoryTotals{
		{
			Category:       "TORNADO",
			Fatalities:     7,
			Injuries:       13,
			PropertyDamage: 150_000,
			CropDamage:     0,
			Health:         20,
			Damage:         150_000,
		},
		{
			Category:       "FLOOD",
			Fatalities:     1,
			Injuries:       0,
			PropertyDamage: 2_000_000_000,
			CropDamage:     1_000_000,
			Health:         1,
			Damage:         2_001_000_000,
		},
	}
	if diff := cmp.Diff(expected, totals); diff != "" {
		t.Fatalf("totals mismatch (-want +got):\n%s", diff)
	}
}

func TestAccumulateTotals_FirstSeenOrder(t *testing.T) {
	totals := AccumulateTotals([]ImpactRecord{
		{Category: "HAIL"},
		{Category: "FLOOD"},
		{Category: "HAIL"},
		{Category: "TORNADO"},
		{Category: "FLOOD"},
	})

	require.Len(t, totals, 3)
	assert.Equal(t, "HAIL", totals[0].Category)
	assert.Equal(t, "FLOOD", totals[1].Category)
	assert.Equal(t, "TORNADO", totals[2].Category)
}

func TestAccumulateTotals_Conservation(t *testing.T) {
	records := ScaleRecords(threeRecordInput())
	totals := AccumulateTotals(records)

	var wantHealth, wantDamage, wantFatal float64
	for _, r := range records {
		wantHealth += r.Health
		wantDamage += r.Damage
		wantFatal += r.Fatalities
	}

	var gotHealth, gotDamage, gotFatal float64
	for _, tot := range totals {
		gotHealth += tot.Health
		gotDamage += tot.Damage
		gotFatal += tot.Fatalities
	}

	assert.Equal(t, wantHealth, gotHealth)
	assert.Equal(t, wantDamage, gotDamage)
	assert.Equal(t, wantFatal, gotFatal)
}

func TestAccumulateTotals_AllZeroRowsContributeNothing(t *testing.T) {
	totals := AccumulateTotals([]ImpactRecord{
		{Category: "DENSE FOG"},
		{Category: "DENSE FOG"},
	})

	require.Len(t, totals, 1)
	assert.Equal(t, CategoryTotals{Category: "DENSE FOG"}, totals[0])
}

func TestAccumulateTotals_Empty(t *testing.T) {
	assert.Empty(t, AccumulateTotals(nil))
}

func TestAccumulateTotals_Idempotent(t *testing.T) {
	records := ScaleRecords(threeRecordInput())

	first := AccumulateTotals(records)
	second := AccumulateTotals(records)

	assert.Equal(t, first, second)
}
