package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDamageMultiplier(t *testing.T) {
	tests := []struct {
		name     string
		code     string
		expected float64
	}{
		{"thousands", "K", 1e3},
		{"millions", "M", 1e6},
		{"billions", "B", 1e9},
		{"empty", "", 1},
		{"lowercase k", "k", 1},
		{"lowercase m", "m", 1},
		{"legacy numeric", "5", 1},
		{"plus sign", "+", 1},
		{"question mark", "?", 1},
		{"hundreds code", "H", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DamageMultiplier(tt.code))
		})
	}
}

func TestScaleRecord(t *testing.T) {
	rec := ScaleRecord(StormRecord{
		Category:       "FLOOD",
		Fatalities:     1,
		Injuries:       0,
		PropertyDamage: 2,
		PropertyUnit:   "B",
		CropDamage:     1,
		CropUnit:       "M",
	})

	assert.Equal(t, "FLOOD", rec.Category)
	assert.Equal(t, 2e9, rec.PropertyDamage)
	assert.Equal(t, 1e6, rec.CropDamage)
	assert.Equal(t, 1.0, rec.Health)
	assert.Equal(t, 2_001_000_000.0, rec.Damage)
}

func TestScaleRecord_UnrecognizedUnitsScaleByOne(t *testing.T) {
	rec := ScaleRecord(StormRecord{
		Category:       "HAIL",
		PropertyDamage: 25,
		PropertyUnit:   "?",
		CropDamage:     10,
		CropUnit:       "",
	})

	assert.Equal(t, 25.0, rec.PropertyDamage)
	assert.Equal(t, 10.0, rec.CropDamage)
	assert.Equal(t, 35.0, rec.Damage)
}

func TestScaleRecord_DerivedFieldsExact(t *testing.T) {
	rec := ScaleRecord(StormRecord{
		Category:       "TORNADO",
		Fatalities:     5,
		Injuries:       10,
		PropertyDamage: 100,
		PropertyUnit:   "K",
	})

	assert.Equal(t, rec.Fatalities+rec.Injuries, rec.Health)
	assert.Equal(t, rec.PropertyDamage+rec.CropDamage, rec.Damage)
	assert.Equal(t, 100_000.0, rec.PropertyDamage)
}

func TestScaleRecords_PreservesOrder(t *testing.T) {
	scaled := ScaleRecords([]StormRecord{
		{Category: "TORNADO"},
		{Category: "FLOOD"},
		{Category: "TORNADO"},
	})

	assert.Len(t, scaled, 3)
	assert.Equal(t, "TORNADO", scaled[0].Category)
	assert.Equal(t, "FLOOD", scaled[1].Category)
	assert.Equal(t, "TORNADO", scaled[2].Category)
}
