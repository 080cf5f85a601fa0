package pdftext

import (
	"context"
	"fmt"

	"github.com/ledongthuc/pdf"
)

// StreamSource takes text in content-stream order. Faster than layout
// reconstruction and usually right for single-column documents; the
// fallback when it is not is LayoutSource.
type StreamSource struct{}

// NewStreamSource returns a StreamSource.
func NewStreamSource() *StreamSource {
	return &StreamSource{}
}

func (s *StreamSource) Name() string { return "stream" }

func (s *StreamSource) ExtractPages(ctx context.Context, path string, opts Options) ([]Page, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	total := r.NumPage()
	skip := skipSet(total, opts)

	fonts := make(map[string]*pdf.Font)
	var pages []Page
	for i := 1; i <= total; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if skip[i] {
			continue
		}

		p := r.Page(i)
		if p.V.IsNull() {
			continue
		}

		text, err := p.GetPlainText(fonts)
		if err != nil {
			return nil, fmt.Errorf("failed to read page %d of %s: %w", i, path, err)
		}
		pages = append(pages, Page{Number: i, Text: text})
	}
	return pages, nil
}
