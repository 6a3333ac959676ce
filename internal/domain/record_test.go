package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseStormRecord(t *testing.T) {
	rec := ParseStormRecord(RawStormRecord{
		EventType:  " TORNADO ",
		Fatalities: "5",
		Injuries:   "10",
		PropDmg:    "100",
		PropDmgExp: "K",
		CropDmg:    "0",
		CropDmgExp: "",
	})

	assert.Equal(t, "TORNADO", rec.Category)
	assert.Equal(t, 5.0, rec.Fatalities)
	assert.Equal(t, 10.0, rec.Injuries)
	assert.Equal(t, 100.0, rec.PropertyDamage)
	assert.Equal(t, "K", rec.PropertyUnit)
	assert.Equal(t, 0.0, rec.CropDamage)
	assert.Equal(t, "", rec.CropUnit)
}

func TestParseStormRecord_BlankRow(t *testing.T) {
	rec := ParseStormRecord(RawStormRecord{})

	assert.Equal(t, "", rec.Category)
	assert.Equal(t, 0.0, rec.Fatalities)
	assert.Equal(t, 0.0, rec.Injuries)
	assert.Equal(t, 0.0, rec.PropertyDamage)
	assert.Equal(t, 0.0, rec.CropDamage)
}

func TestParseFloatOrZero(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		expected float64
	}{
		{"integer", "42", 42},
		{"decimal", "2.5", 2.5},
		{"padded", "  7 ", 7},
		{"empty", "", 0},
		{"blank", "   ", 0},
		{"junk", "UNK", 0},
		{"negative", "-3", -3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseFloatOrZero(tt.in))
		})
	}
}
