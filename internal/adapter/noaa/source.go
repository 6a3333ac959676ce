package noaa

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/couchcryptid/storm-impact-report/internal/domain"
)

// requiredColumns are the dataset columns the report depends on, by their
// canonical upper-case names.
var requiredColumns = []string{
	"EVTYPE",
	"FATALITIES",
	"INJURIES",
	"PROPDMG",
	"PROPDMGEXP",
	"CROPDMG",
	"CROPDMGEXP",
}

// Source provides storm records from the local dataset, downloading the
// archive on first use. Subsequent runs reuse the cached CSV unchanged.
type Source struct {
	client *Client
	path   string
	logger *slog.Logger
}

// NewSource creates a record source backed by the CSV at path.
func NewSource(client *Client, path string, logger *slog.Logger) *Source {
	return &Source{
		client: client,
		path:   path,
		logger: logger,
	}
}

// Extract returns every storm record in the dataset, fetching the archive
// first if no local copy exists.
func (s *Source) Extract(ctx context.Context) ([]domain.StormRecord, error) {
	if _, err := os.Stat(s.path); errors.Is(err, fs.ErrNotExist) {
		s.logger.Info("dataset not cached, downloading", "path", s.path)
		if err := s.client.Download(ctx, s.path); err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, fmt.Errorf("stat dataset: %w", err)
	} else {
		s.logger.Info("dataset cached, skipping download", "path", s.path)
	}

	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	records, err := parseRecords(f)
	if err != nil {
		return nil, fmt.Errorf("parse dataset %s: %w", s.path, err)
	}
	return records, nil
}

// parseRecords reads the CSV and projects each row onto the report columns.
// Column positions come from the header, matched case-insensitively. A header
// missing any required column and any row the reader cannot parse are both
// fatal.
func parseRecords(r io.Reader) ([]domain.StormRecord, error) {
	reader := csv.NewReader(r)
	// REMARKS narratives carry stray quotes in some rows of the published
	// dataset.
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	colIdx := make(map[string]int, len(header))
	for i, name := range header {
		colIdx[strings.ToUpper(strings.TrimSpace(name))] = i
	}
	for _, col := range requiredColumns {
		if _, ok := colIdx[col]; !ok {
			return nil, fmt.Errorf("missing required column %s", col)
		}
	}

	var records []domain.StormRecord
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		records = append(records, domain.ParseStormRecord(domain.RawStormRecord{
			EventType:  row[colIdx["EVTYPE"]],
			Fatalities: row[colIdx["FATALITIES"]],
			Injuries:   row[colIdx["INJURIES"]],
			PropDmg:    row[colIdx["PROPDMG"]],
			PropDmgExp: row[colIdx["PROPDMGEXP"]],
			CropDmg:    row[colIdx["CROPDMG"]],
			CropDmgExp: row[colIdx["CROPDMGEXP"]],
		}))
	}
	return records, nil
}
