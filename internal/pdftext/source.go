// Package pdftext extracts per-page text from PDF files.
//
// Two backends are provided: a layout-aware extractor that reconstructs
// reading order from glyph positions, and a content-stream extractor
// that takes text in stream order. Glossary PDFs vary enough that
// neither wins everywhere, so callers usually try both and keep the
// first backend that produces text (see FirstNonEmpty).
package pdftext

import (
	"context"
	"fmt"
	"strings"
)

// Page holds the extracted text of a single PDF page.
type Page struct {
	Number int // 1-indexed page number in the source document
	Text   string
}

// Options controls which pages are extracted and how.
type Options struct {
	// SkipFirstPage drops page 1, typically a cover or title page.
	SkipFirstPage bool

	// SkipPages lists 1-indexed page numbers to drop. Negative values
	// count from the end: -1 is the last page.
	SkipPages []int

	// SplitColumns treats each page as two columns divided at the
	// horizontal midpoint and reads the left column before the right.
	// Only the layout backend honors it.
	SplitColumns bool
}

// Source extracts text from a PDF, one entry per kept page.
type Source interface {
	// Name identifies the backend in logs and CLI flags.
	Name() string

	// ExtractPages reads the PDF at path and returns the text of every
	// page not excluded by opts, in document order.
	ExtractPages(ctx context.Context, path string, opts Options) ([]Page, error)
}

// skipSet resolves opts.SkipPages and opts.SkipFirstPage against a
// document of pageCount pages into a set of 1-indexed page numbers.
func skipSet(pageCount int, opts Options) map[int]bool {
	skip := make(map[int]bool)
	if opts.SkipFirstPage {
		skip[1] = true
	}
	for _, n := range opts.SkipPages {
		if n < 0 {
			n = pageCount + n + 1
		}
		if n >= 1 && n <= pageCount {
			skip[n] = true
		}
	}
	return skip
}

// JoinPages concatenates page texts with blank lines between pages.
func JoinPages(pages []Page) string {
	parts := make([]string, 0, len(pages))
	for _, p := range pages {
		if t := strings.TrimSpace(p.Text); t != "" {
			parts = append(parts, t)
		}
	}
	return strings.Join(parts, "\n\n")
}

// FirstNonEmpty runs each source in order and returns the pages from
// the first one that yields any text. Extraction errors are collected
// and only surfaced if every backend comes up empty.
func FirstNonEmpty(ctx context.Context, path string, opts Options, sources ...Source) ([]Page, string, error) {
	var errs []string
	for _, src := range sources {
		pages, err := src.ExtractPages(ctx, path, opts)
		if err != nil {
			errs = append(errs, fmt.Sprintf("%s: %v", src.Name(), err))
			continue
		}
		if strings.TrimSpace(JoinPages(pages)) != "" {
			return pages, src.Name(), nil
		}
	}
	if len(errs) > 0 {
		return nil, "", fmt.Errorf("no backend extracted text from %s: %s", path, strings.Join(errs, "; "))
	}
	return nil, "", fmt.Errorf("no backend extracted text from %s", path)
}
