package report

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestHTMLRenderer_Render(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "reports")
	r := NewHTMLRenderer(dir, discardLogger())
	rep := Build(fixtureTotals(), 902297, 5, testRunID)

	require.NoError(t, r.Render(context.Background(), rep))

	raw, err := os.ReadFile(filepath.Join(dir, HTMLFileName))
	require.NoError(t, err)
	html := string(raw)

	assert.Contains(t, html, "Storm Impact Report")
	for _, panel := range rep.Panels {
		assert.Contains(t, html, panel.Title)
		for _, chart := range panel.Charts {
			assert.Contains(t, html, chart.Title)
		}
	}
	assert.Contains(t, html, "TORNADO")
	assert.Contains(t, html, "FLOOD")
}

func TestHTMLRenderer_EmptyReportStillRenders(t *testing.T) {
	dir := t.TempDir()
	r := NewHTMLRenderer(dir, discardLogger())

	require.NoError(t, r.Render(context.Background(), Build(nil, 0, 5, testRunID)))
	assert.FileExists(t, filepath.Join(dir, HTMLFileName))
}

func TestTextRenderer_Render(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "reports")
	var out bytes.Buffer
	r := NewTextRenderer(dir, &out, discardLogger())
	rep := Build(fixtureTotals(), 902297, 5, testRunID)

	require.NoError(t, r.Render(context.Background(), rep))

	raw, err := os.ReadFile(filepath.Join(dir, TextFileName))
	require.NoError(t, err)
	text := string(raw)

	assert.Equal(t, text, out.String(), "stdout copy should match the file")
	assert.Contains(t, text, "STORM IMPACT REPORT")
	assert.Contains(t, text, "Run:       "+testRunID)
	assert.Contains(t, text, "902,297 rows")
	assert.Contains(t, text, "== Population health ==")
	assert.Contains(t, text, "== Economic consequences ==")
	assert.Contains(t, text, "TORNADO leads with 96,979 people killed or injured")
	assert.Contains(t, text, "1. TORNADO")
	assert.Contains(t, text, "150,319,678,250")
}

func TestTextRenderer_EmptyReport(t *testing.T) {
	dir := t.TempDir()
	var out bytes.Buffer
	r := NewTextRenderer(dir, &out, discardLogger())

	require.NoError(t, r.Render(context.Background(), Build(nil, 0, 5, testRunID)))
	assert.Contains(t, out.String(), "No event categories recorded.")
	assert.Contains(t, out.String(), "(no data)")
}
