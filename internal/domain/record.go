package domain

import (
	"strconv"
	"strings"
)

// RawStormRecord holds the seven projected CSV columns as raw strings, in
// source form. The dataset adapter fills it straight from a row; all typing
// and cleanup happens in ParseStormRecord.
type RawStormRecord struct {
	EventType  string // EVTYPE
	Fatalities string // FATALITIES
	Injuries   string // INJURIES
	PropDmg    string // PROPDMG
	PropDmgExp string // PROPDMGEXP
	CropDmg    string // CROPDMG
	CropDmgExp string // CROPDMGEXP
}

// StormRecord is the typed projection of one dataset row. Damage amounts are
// still in mantissa form; the unit codes say how to scale them.
type StormRecord struct {
	Category       string
	Fatalities     float64
	Injuries       float64
	PropertyDamage float64
	PropertyUnit   string
	CropDamage     float64
	CropUnit       string
}

// ImpactRecord is a StormRecord after unit scaling, with both damage fields
// in raw US dollars and the two derived metrics filled in.
type ImpactRecord struct {
	Category       string
	Fatalities     float64
	Injuries       float64
	PropertyDamage float64
	CropDamage     float64
	Health         float64 // Fatalities + Injuries
	Damage         float64 // PropertyDamage + CropDamage
}

// ParseStormRecord projects a raw row into a typed StormRecord. The mapping
// is one-to-one and row order is preserved by the caller; no rows are
// filtered, so all-zero records flow through and contribute nothing to any
// aggregate.
func ParseStormRecord(raw RawStormRecord) StormRecord {
	return StormRecord{
		Category:       strings.TrimSpace(raw.EventType),
		Fatalities:     parseFloatOrZero(raw.Fatalities),
		Injuries:       parseFloatOrZero(raw.Injuries),
		PropertyDamage: parseFloatOrZero(raw.PropDmg),
		PropertyUnit:   strings.TrimSpace(raw.PropDmgExp),
		CropDamage:     parseFloatOrZero(raw.CropDmg),
		CropUnit:       strings.TrimSpace(raw.CropDmgExp),
	}
}

// parseFloatOrZero parses a string as float64, returning 0 on failure.
// Blank and junk values mean "unreported" in the storm database.
func parseFloatOrZero(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}
