// Package fetch resolves a glossary source argument to a local PDF
// path, downloading and caching remote files.
package fetch

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/avast/retry-go/v4"
)

// DefaultFileName names downloads whose URL carries no usable filename.
const DefaultFileName = "financial_guide.pdf"

const (
	downloadAttempts = 3
	downloadDelay    = 2 * time.Second
	downloadTimeout  = 60 * time.Second
)

// IsURL reports whether source is an http or https URL.
func IsURL(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}

// Resolve turns source into a local PDF path. A URL is downloaded into
// cacheDir, reusing a previous download with the same filename; a plain
// path is checked for existence and returned as-is.
func Resolve(ctx context.Context, source, cacheDir string, log *slog.Logger) (string, error) {
	if log == nil {
		log = slog.Default()
	}

	if !IsURL(source) {
		if _, err := os.Stat(source); err != nil {
			return "", fmt.Errorf("pdf not found at %s: %w", source, err)
		}
		return source, nil
	}

	dest := filepath.Join(cacheDir, fileNameFromURL(source))
	if _, err := os.Stat(dest); err == nil {
		log.Info("using cached pdf", "path", dest)
		return dest, nil
	}

	if err := os.MkdirAll(cacheDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create %s: %w", cacheDir, err)
	}

	log.Info("downloading pdf", "url", source, "dest", dest)
	err := retry.Do(
		func() error {
			return download(ctx, source, dest)
		},
		retry.Context(ctx),
		retry.Attempts(downloadAttempts),
		retry.Delay(downloadDelay),
		retry.OnRetry(func(n uint, err error) {
			log.Warn("download failed, retrying", "attempt", n+1, "error", err)
		}),
	)
	if err != nil {
		return "", fmt.Errorf("failed to download %s: %w", source, err)
	}
	return dest, nil
}

// fileNameFromURL takes the last path segment of a URL, falling back to
// DefaultFileName when the segment is missing or not a .pdf name.
func fileNameFromURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return DefaultFileName
	}
	name := path.Base(u.Path)
	if name == "" || name == "." || name == "/" || !strings.HasSuffix(strings.ToLower(name), ".pdf") {
		return DefaultFileName
	}
	return name
}

// download fetches url into dest via a temp file so a failed transfer
// never leaves a partial PDF behind.
func download(ctx context.Context, url, dest string) error {
	ctx, cancel := context.WithTimeout(ctx, downloadTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	tmp, err := os.CreateTemp(filepath.Dir(dest), ".download-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, resp.Body); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), dest)
}
