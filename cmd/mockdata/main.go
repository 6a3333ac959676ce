// Command mockdata generates a StormData-shaped CSV so a report run can be
// exercised offline without the 47 MB archive download. It runs the actual
// aggregation on what it wrote and prints the expected rankings, so test
// assertions can be updated from its output.
//
// Usage:
//
//	go run ./cmd/mockdata -out data/StormData.csv -rows 5000 -seed 42
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"

	"github.com/couchcryptid/storm-impact-report/internal/domain"
)

// profile shapes how often a category hurts people or destroys property.
// Rates are rough echoes of the real dataset: tornadoes dominate casualties,
// floods dominate damage.
type profile struct {
	category     string
	weight       int
	fatalityRate float64
	injuryRate   float64
	propChance   float64
	cropChance   float64
}

var profiles = []profile{
	{category: "TSTM WIND", weight: 30, fatalityRate: 0.002, injuryRate: 0.02, propChance: 0.3, cropChance: 0.05},
	{category: "HAIL", weight: 25, fatalityRate: 0.0001, injuryRate: 0.005, propChance: 0.25, cropChance: 0.1},
	{category: "TORNADO", weight: 10, fatalityRate: 0.08, injuryRate: 1.2, propChance: 0.7, cropChance: 0.1},
	{category: "FLASH FLOOD", weight: 8, fatalityRate: 0.02, injuryRate: 0.03, propChance: 0.5, cropChance: 0.15},
	{category: "FLOOD", weight: 6, fatalityRate: 0.01, injuryRate: 0.02, propChance: 0.6, cropChance: 0.3},
	{category: "LIGHTNING", weight: 6, fatalityRate: 0.05, injuryRate: 0.35, propChance: 0.4, cropChance: 0.01},
	{category: "EXCESSIVE HEAT", weight: 3, fatalityRate: 1.1, injuryRate: 3.8, propChance: 0.01, cropChance: 0.1},
	{category: "HIGH WIND", weight: 5, fatalityRate: 0.01, injuryRate: 0.07, propChance: 0.35, cropChance: 0.1},
	{category: "WINTER STORM", weight: 4, fatalityRate: 0.02, injuryRate: 0.1, propChance: 0.3, cropChance: 0.05},
	{category: "ICE STORM", weight: 3, fatalityRate: 0.04, injuryRate: 0.15, propChance: 0.45, cropChance: 0.1},
}

// exps includes the real dataset's junk codes: anything outside K/M/B scales
// by 1, and a fixture should exercise that path too.
var exps = []string{"K", "K", "K", "K", "M", "M", "B", "", "0", "H", "m", "+"}

var states = []string{"TX", "OK", "KS", "MO", "AL", "FL", "IA", "NE", "GA", "TN"}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	out := flag.String("out", "data/StormData.csv", "output path for the generated CSV")
	rows := flag.Int("rows", 5000, "number of event rows to generate")
	seed := flag.Int64("seed", 42, "random seed for reproducible output")
	flag.Parse()

	if *rows <= 0 {
		return fmt.Errorf("-rows must be positive, got %d", *rows)
	}

	rng := rand.New(rand.NewSource(*seed))

	if err := os.MkdirAll(filepath.Dir(*out), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	f, err := os.Create(*out)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	defer f.Close()

	records, err := writeRows(f, rng, *rows)
	if err != nil {
		return fmt.Errorf("write rows: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close output file: %w", err)
	}

	log.Printf("wrote %d rows to %s", *rows, *out)
	printExpectedStats(records)
	return nil
}

// writeRows emits the CSV and returns the same rows as parsed records, so the
// expected aggregation comes from the exact generated values.
func writeRows(f *os.File, rng *rand.Rand, rows int) ([]domain.StormRecord, error) {
	w := csv.NewWriter(f)
	header := []string{"STATE__", "BGN_DATE", "STATE", "EVTYPE", "FATALITIES", "INJURIES", "PROPDMG", "PROPDMGEXP", "CROPDMG", "CROPDMGEXP"}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	totalWeight := 0
	for _, p := range profiles {
		totalWeight += p.weight
	}

	records := make([]domain.StormRecord, 0, rows)
	for i := 0; i < rows; i++ {
		p := pickProfile(rng, totalWeight)

		fatalities := drawCount(rng, p.fatalityRate)
		injuries := drawCount(rng, p.injuryRate)
		propDmg, propExp := drawDamage(rng, p.propChance)
		cropDmg, cropExp := drawDamage(rng, p.cropChance)

		row := []string{
			strconv.Itoa(i + 1),
			fmt.Sprintf("%d/%d/1995 0:00:00", 1+rng.Intn(12), 1+rng.Intn(28)),
			states[rng.Intn(len(states))],
			p.category,
			formatCount(fatalities),
			formatCount(injuries),
			strconv.FormatFloat(propDmg, 'f', -1, 64),
			propExp,
			strconv.FormatFloat(cropDmg, 'f', -1, 64),
			cropExp,
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}

		records = append(records, domain.StormRecord{
			Category:       p.category,
			Fatalities:     fatalities,
			Injuries:       injuries,
			PropertyDamage: propDmg,
			PropertyUnit:   propExp,
			CropDamage:     cropDmg,
			CropUnit:       cropExp,
		})
	}

	w.Flush()
	return records, w.Error()
}

func pickProfile(rng *rand.Rand, totalWeight int) profile {
	n := rng.Intn(totalWeight)
	for _, p := range profiles {
		if n < p.weight {
			return p
		}
		n -= p.weight
	}
	return profiles[len(profiles)-1]
}

// drawCount turns a per-event rate into a whole casualty count. Rates above 1
// mean most events hurt someone (heat waves); below 1 they rarely do.
func drawCount(rng *rand.Rand, rate float64) float64 {
	count := 0.0
	for rate >= 1 {
		count += float64(rng.Intn(3))
		rate -= 1
	}
	if rng.Float64() < rate {
		count += float64(1 + rng.Intn(4))
	}
	return count
}

func drawDamage(rng *rand.Rand, chance float64) (float64, string) {
	if rng.Float64() >= chance {
		return 0, ""
	}
	// One significant digit mirrors how the dataset reports estimates.
	value := float64(1+rng.Intn(9)) * 10
	return value, exps[rng.Intn(len(exps))]
}

func formatCount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// printExpectedStats runs the real aggregation over the generated rows and
// prints the rankings the report would produce.
func printExpectedStats(records []domain.StormRecord) {
	totals := domain.AccumulateTotals(domain.ScaleRecords(records))

	fmt.Println("\n=== Expected aggregation for test assertions ===")
	fmt.Printf("Rows: %d, categories: %d\n", len(records), len(totals))

	for _, metric := range domain.Metrics {
		fmt.Printf("\nTop 5 by %s:\n", metric.Label())
		for i, t := range domain.TopCategories(totals, metric, 5) {
			fmt.Printf("  %d. %-16s %.0f\n", i+1, t.Category, metric.Of(t))
		}
	}
}
