package report

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

// TextFileName is the plain-text report written under the report directory.
const TextFileName = "storm_impact.txt"

// TextRenderer writes the plain-text report to the report directory and
// mirrors it to out, which is stdout in production.
type TextRenderer struct {
	dir    string
	out    io.Writer
	logger *slog.Logger
}

// NewTextRenderer creates a text renderer writing into dir and echoing to out.
func NewTextRenderer(dir string, out io.Writer, logger *slog.Logger) *TextRenderer {
	return &TextRenderer{dir: dir, out: out, logger: logger}
}

// Render writes the text report to <dir>/storm_impact.txt and to out.
func (r *TextRenderer) Render(_ context.Context, rep Report) error {
	var buf bytes.Buffer
	writeText(&buf, rep)

	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		return fmt.Errorf("create report dir: %w", err)
	}
	path := filepath.Join(r.dir, TextFileName)
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write text report: %w", err)
	}
	if _, err := r.out.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("echo text report: %w", err)
	}

	r.logger.Info("text report written", "path", path, "bytes", buf.Len())
	return nil
}

func writeText(w io.Writer, rep Report) {
	fmt.Fprintln(w, "STORM IMPACT REPORT")
	fmt.Fprintf(w, "Generated: %s\n", rep.GeneratedAt.UTC().Format(time.RFC3339))
	fmt.Fprintf(w, "Run:       %s\n", rep.RunID)
	englishPrinter.Fprintf(w, "Source:    %d rows, %d event categories\n",
		rep.SourceRows, rep.CategoryCount)

	for _, panel := range rep.Panels {
		fmt.Fprintf(w, "\n== %s ==\n%s\n", panel.Title, panel.Narrative)
		for _, chart := range panel.Charts {
			fmt.Fprintf(w, "\n%s\n", chart.Title)
			if len(chart.Bars) == 0 {
				fmt.Fprintln(w, "  (no data)")
				continue
			}
			for i, bar := range chart.Bars {
				englishPrinter.Fprintf(w, "%4d. %-28s %18.0f\n", i+1, bar.Label, bar.Value)
			}
		}
	}
}
