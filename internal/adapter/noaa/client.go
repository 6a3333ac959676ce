package noaa

import (
	"compress/bzip2"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Client downloads the storm database archive over HTTPS.
type Client struct {
	httpClient *http.Client
	url        string
	logger     *slog.Logger
}

// NewClient creates a storm archive client for the given URL.
func NewClient(url string, timeout time.Duration, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		url:    url,
		logger: logger,
	}
}

// Download fetches the archive and writes the decompressed CSV to dst,
// creating parent directories as needed. Archives ending in .bz2 are
// decompressed in-stream; anything else is assumed to be plain CSV. The
// write goes through a .partial file renamed into place on success, so an
// interrupted download never leaves a truncated dataset behind. There are no
// retries: a failed fetch is fatal to the run.
func (c *Client) Download(ctx context.Context, dst string) error {
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("fetch storm archive: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("fetch storm archive: status %d from %s", resp.StatusCode, c.url)
	}

	var reader io.Reader = resp.Body
	if strings.HasSuffix(strings.ToLower(strippedPath(c.url)), ".bz2") {
		reader = bzip2.NewReader(resp.Body)
	}

	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	tmp := dst + ".partial"
	written, err := writeFile(tmp, reader)
	if err != nil {
		os.Remove(tmp)
		return fmt.Errorf("write dataset: %w", err)
	}

	if err := os.Rename(tmp, dst); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("finalize dataset: %w", err)
	}

	c.logger.Info("storm archive downloaded",
		"url", c.url,
		"path", dst,
		"bytes", written,
		"duration", time.Since(start).Round(time.Millisecond),
	)
	return nil
}

func writeFile(path string, r io.Reader) (int64, error) {
	f, err := os.Create(path)
	if err != nil {
		return 0, err
	}

	written, err := io.Copy(f, r)
	if err != nil {
		f.Close()
		return written, err
	}
	return written, f.Close()
}

// strippedPath drops the query string so suffix checks see the file name.
func strippedPath(url string) string {
	if i := strings.IndexByte(url, '?'); i >= 0 {
		return url[:i]
	}
	return url
}
