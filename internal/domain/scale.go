package domain

// damageMultipliers maps a damage exponent code to its scale factor.
// An explicit table rather than a conditional chain; codes outside it
// (including blank) scale by 1 per the package doc.
var damageMultipliers = map[string]float64{
	"K": 1e3,
	"M": 1e6,
	"B": 1e9,
}

// DamageMultiplier returns the scale factor for a damage exponent code.
// The match is exact and case-sensitive: lowercase and legacy numeric codes
// are among the unrecognized values that deliberately map to 1.
func DamageMultiplier(code string) float64 {
	if m, ok := damageMultipliers[code]; ok {
		return m
	}
	return 1
}

// ScaleRecord converts a StormRecord into an ImpactRecord: each damage field
// is scaled by its own unit code (two independent lookups), and the two
// derived metrics are computed from the scaled values.
func ScaleRecord(rec StormRecord) ImpactRecord {
	property := rec.PropertyDamage * DamageMultiplier(rec.PropertyUnit)
	crop := rec.CropDamage * DamageMultiplier(rec.CropUnit)

	return ImpactRecord{
		Category:       rec.Category,
		Fatalities:     rec.Fatalities,
		Injuries:       rec.Injuries,
		PropertyDamage: property,
		CropDamage:     crop,
		Health:         rec.Fatalities + rec.Injuries,
		Damage:         property + crop,
	}
}

// ScaleRecords applies ScaleRecord to every record, preserving order.
func ScaleRecords(recs []StormRecord) []ImpactRecord {
	scaled := make([]ImpactRecord, len(recs))
	for i, rec := range recs {
		scaled[i] = ScaleRecord(rec)
	}
	return scaled
}
