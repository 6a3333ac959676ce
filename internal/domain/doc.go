// Package domain models NOAA Storm Events database records and the impact
// aggregation computed over them.
//
// # Data Source
//
// Records come from the NOAA National Climatic Data Center storm database
// export (1950–2011), a single bzip2-compressed CSV of roughly 900k rows and
// 37 columns. Only the seven columns relevant to impact reporting are
// projected; the rest are dropped at parse time.
//
// # Column Conventions
//
// EVTYPE (event category):
//
//	Free text, not a fixed taxonomy. Entry quality varies across decades:
//	"TORNADO", "TSTM WIND", "THUNDERSTORM WINDS" and "Thunderstorm winds"
//	all occur. Categories are taken as-is; the distinct set in the input
//	defines the aggregation buckets.
//
// FATALITIES / INJURIES:
//
//	Direct casualty counts as decimal numbers. Blank or unparseable values
//	are treated as zero (unreported), matching how the collector services
//	handle missing magnitudes.
//
// PROPDMG / CROPDMG with PROPDMGEXP / CROPDMGEXP (damage amount + exponent):
//
//	The amount column holds a mantissa; the exponent column a scale code:
//
//	  "K" → thousands (1e3)
//	  "M" → millions  (1e6)
//	  "B" → billions  (1e9)
//
//	Historical rows carry other codes ("+", "?", "-", "0"–"8", lowercase
//	"k"/"m") whose meaning was never standardized by NWS. All of them,
//	including blank, scale by 1. This is the documented simplification, not
//	an oversight: the unrecognized codes appear on a few hundred rows out of
//	~900k and only in low-damage decades. See [DamageMultiplier].
//
// # Derived Metrics
//
// Health impact = FATALITIES + INJURIES.
// Economic damage = scaled PROPDMG + scaled CROPDMG, in raw US dollars.
//
// Both are derived per record during scaling and summed per category during
// aggregation. float64 keeps integral dollar values exact well past the
// ~10^12 range the largest flood years reach.
//
// # Aggregation Order
//
// Category buckets are created in first-seen input order and every ranking
// breaks ties by that order. The input file is static, so the full pipeline
// is reproducible run to run.
package domain
