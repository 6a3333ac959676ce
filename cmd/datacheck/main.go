// Command datacheck performs integrity checks on a local storm dataset before
// a report run: column presence, numeric field quality, damage exponent
// distribution, and aggregation consistency. It reads the same CSV the report
// generator reads and exits non-zero if any phase fails.
//
// Usage:
//
//	go run ./cmd/datacheck -csv data/StormData.csv
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/couchcryptid/storm-impact-report/internal/domain"
)

const maxReportedErrors = 10

var requiredColumns = []string{"EVTYPE", "FATALITIES", "INJURIES", "PROPDMG", "PROPDMGEXP", "CROPDMG", "CROPDMGEXP"}

// knownExps are the codes the normalizer scales; everything else multiplies
// by 1 and is worth knowing about before trusting a report.
var knownExps = map[string]bool{"": true, "K": true, "M": true, "B": true}

// phase tracks pass/fail for a validation phase.
type phase struct {
	name     string
	errors   []string
	overflow int
}

func (p *phase) errorf(format string, args ...any) {
	if len(p.errors) >= maxReportedErrors {
		p.overflow++
		return
	}
	p.errors = append(p.errors, fmt.Sprintf(format, args...))
}

func (p *phase) passed() bool { return len(p.errors) == 0 }

func main() {
	csvPath := flag.String("csv", "data/StormData.csv", "path to the storm dataset CSV")
	flag.Parse()

	os.Exit(run(*csvPath))
}

func run(csvPath string) int {
	fmt.Println("=== Storm Dataset Integrity Check ===")
	fmt.Println()

	f, err := os.Open(csvPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: open dataset: %v\n", err)
		return 1
	}
	defer f.Close()

	rows, header, err := loadRows(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: read dataset: %v\n", err)
		return 1
	}

	phases := []*phase{
		checkColumns(header),
		checkNumericFields(rows),
		checkExponents(rows),
		checkAggregation(rows),
	}

	fmt.Println()
	allPassed := true
	for _, p := range phases {
		status := "\033[32mPASS\033[0m"
		if !p.passed() {
			status = fmt.Sprintf("\033[31mFAIL (%d errors)\033[0m", len(p.errors)+p.overflow)
			allPassed = false
		}
		fmt.Printf("  %-40s %s\n", p.name, status)
	}

	fmt.Println()
	fmt.Printf("Rows: %d\n", len(rows))

	for _, p := range phases {
		if p.passed() {
			continue
		}
		fmt.Printf("\n--- %s ---\n", p.name)
		for i, e := range p.errors {
			fmt.Printf("  [%d] %s\n", i+1, e)
		}
		if p.overflow > 0 {
			fmt.Printf("  ... and %d more\n", p.overflow)
		}
	}

	if allPassed {
		fmt.Println("\nAll checks passed.")
		return 0
	}
	fmt.Println("\nCheck FAILED.")
	return 1
}

// row is a parsed CSV row with field values keyed by upper-cased header name.
type row struct {
	lineNum int
	fields  map[string]string
}

func (r row) get(col string) string { return r.fields[col] }

func loadRows(f io.Reader) ([]row, []string, error) {
	reader := csv.NewReader(f)
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err != nil {
		return nil, nil, fmt.Errorf("read header: %w", err)
	}
	for i := range header {
		header[i] = strings.ToUpper(strings.TrimSpace(header[i]))
	}

	var rows []row
	for line := 2; ; line++ {
		rec, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, err
		}
		fields := make(map[string]string, len(header))
		for i, name := range header {
			if i < len(rec) {
				fields[name] = strings.TrimSpace(rec[i])
			}
		}
		rows = append(rows, row{lineNum: line, fields: fields})
	}
	return rows, header, nil
}

// ── Phase 1: Columns ──

func checkColumns(header []string) *phase {
	p := &phase{name: "Phase 1: Required columns"}

	present := make(map[string]bool, len(header))
	for _, h := range header {
		present[h] = true
	}
	for _, col := range requiredColumns {
		if !present[col] {
			p.errorf("missing required column %s", col)
		}
	}
	return p
}

// ── Phase 2: Numeric fields ──
// Non-numeric values silently become 0 in the report; surface them here.

func checkNumericFields(rows []row) *phase {
	p := &phase{name: "Phase 2: Numeric fields"}

	numericCols := []string{"FATALITIES", "INJURIES", "PROPDMG", "CROPDMG"}
	coerced := 0
	for _, r := range rows {
		for _, col := range numericCols {
			v := r.get(col)
			if v == "" {
				continue
			}
			if _, err := strconv.ParseFloat(v, 64); err != nil {
				coerced++
				p.errorf("line %d: %s=%q is not numeric (reported as 0)", r.lineNum, col, v)
			}
		}
	}
	if coerced > 0 {
		fmt.Printf("  Note: %d non-numeric values coerce to 0\n", coerced)
	}
	return p
}

// ── Phase 3: Damage exponents ──
// Unknown codes are legal (multiplier 1) so this phase only informs.

func checkExponents(rows []row) *phase {
	p := &phase{name: "Phase 3: Damage exponents"}

	counts := map[string]int{}
	for _, r := range rows {
		counts[r.get("PROPDMGEXP")]++
		counts[r.get("CROPDMGEXP")]++
	}

	codes := make([]string, 0, len(counts))
	for c := range counts {
		codes = append(codes, c)
	}
	sort.Slice(codes, func(i, j int) bool { return counts[codes[i]] > counts[codes[j]] })

	fmt.Println("  Damage exponent distribution:")
	for _, c := range codes {
		label := c
		if c == "" {
			label = "(empty)"
		}
		marker := ""
		if !knownExps[c] {
			marker = "  <- scales by 1"
		}
		fmt.Printf("    %-8s %8d%s\n", label, counts[c], marker)
	}
	return p
}

// ── Phase 4: Aggregation consistency ──
// Runs the real aggregation and verifies the derived-field identities hold.

func checkAggregation(rows []row) *phase {
	p := &phase{name: "Phase 4: Aggregation consistency"}

	records := make([]domain.StormRecord, 0, len(rows))
	for _, r := range rows {
		records = append(records, domain.ParseStormRecord(domain.RawStormRecord{
			EventType:  r.get("EVTYPE"),
			Fatalities: r.get("FATALITIES"),
			Injuries:   r.get("INJURIES"),
			PropDmg:    r.get("PROPDMG"),
			PropDmgExp: r.get("PROPDMGEXP"),
			CropDmg:    r.get("CROPDMG"),
			CropDmgExp: r.get("CROPDMGEXP"),
		}))
	}

	totals := domain.AccumulateTotals(domain.ScaleRecords(records))
	fmt.Printf("  Categories: %d\n", len(totals))

	for _, t := range totals {
		if !floatEq(t.Health, t.Fatalities+t.Injuries) {
			p.errorf("%s: health %.0f != fatalities %.0f + injuries %.0f",
				t.Category, t.Health, t.Fatalities, t.Injuries)
		}
		if !floatEq(t.Damage, t.PropertyDamage+t.CropDamage) {
			p.errorf("%s: damage %.2f != property %.2f + crop %.2f",
				t.Category, t.Damage, t.PropertyDamage, t.CropDamage)
		}
	}

	if len(totals) > 0 {
		fmt.Println("  Top 3 by total damage:")
		for i, t := range domain.TopCategories(totals, domain.MetricDamage, 3) {
			fmt.Printf("    %d. %-20s %.0f\n", i+1, t.Category, t.Damage)
		}
	}
	return p
}

func floatEq(a, b float64) bool {
	return math.Abs(a-b) <= 1e-6*math.Max(1, math.Abs(b))
}
