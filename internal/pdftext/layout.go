package pdftext

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"
)

// LayoutSource reconstructs reading order from glyph positions. Glyphs
// are grouped into rows by Y coordinate and sorted left to right, which
// matches how a person reads the page even when the content stream is
// out of order.
type LayoutSource struct {
	// RowTolerance is the maximum Y distance between glyphs on the
	// same visual row, in points.
	RowTolerance float64
}

// NewLayoutSource returns a LayoutSource with the default row tolerance.
func NewLayoutSource() *LayoutSource {
	return &LayoutSource{RowTolerance: 3.0}
}

func (s *LayoutSource) Name() string { return "layout" }

func (s *LayoutSource) ExtractPages(ctx context.Context, path string, opts Options) ([]Page, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	total := r.NumPage()
	skip := skipSet(total, opts)

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

		text := s.assemble(p.Content().Text, opts.SplitColumns)
		pages = append(pages, Page{Number: i, Text: text})
	}
	return pages, nil
}

// assemble renders positioned glyphs into lines. With splitColumns set,
// the page is divided at the horizontal midpoint of its text extent and
// the left half is read in full before the right half.
func (s *LayoutSource) assemble(texts []pdf.Text, splitColumns bool) string {
	glyphs := make([]pdf.Text, 0, len(texts))
	for _, t := range texts {
		if strings.TrimSpace(t.S) != "" {
			glyphs = append(glyphs, t)
		}
	}
	if len(glyphs) == 0 {
		return ""
	}

	if !splitColumns {
		return s.renderRows(glyphs)
	}

	minX, maxX := glyphs[0].X, glyphs[0].X+glyphs[0].W
	for _, g := range glyphs[1:] {
		if g.X < minX {
			minX = g.X
		}
		if g.X+g.W > maxX {
			maxX = g.X + g.W
		}
	}
	mid := (minX + maxX) / 2

	var left, right []pdf.Text
	for _, g := range glyphs {
		if g.X+g.W/2 < mid {
			left = append(left, g)
		} else {
			right = append(right, g)
		}
	}

	parts := make([]string, 0, 2)
	if l := s.renderRows(left); l != "" {
		parts = append(parts, l)
	}
	if r := s.renderRows(right); r != "" {
		parts = append(parts, r)
	}
	return strings.Join(parts, "\n")
}

// renderRows groups glyphs into rows by Y, orders rows top to bottom
// (PDF Y grows upward), and joins glyphs left to right with spaces at
// word-sized gaps.
func (s *LayoutSource) renderRows(glyphs []pdf.Text) string {
	if len(glyphs) == 0 {
		return ""
	}

	type row struct {
		y      float64
		glyphs []pdf.Text
	}
	var rows []row
	for _, g := range glyphs {
		placed := false
		for i := range rows {
			if g.Y >= rows[i].y-s.RowTolerance && g.Y <= rows[i].y+s.RowTolerance {
				rows[i].glyphs = append(rows[i].glyphs, g)
				placed = true
				break
			}
		}
		if !placed {
			rows = append(rows, row{y: g.Y, glyphs: []pdf.Text{g}})
		}
	}

	sort.Slice(rows, func(i, j int) bool { return rows[i].y > rows[j].y })

	var b strings.Builder
	for i, r := range rows {
		if i > 0 {
			b.WriteByte('\n')
		}
		sort.Slice(r.glyphs, func(a, c int) bool { return r.glyphs[a].X < r.glyphs[c].X })

		var lastEnd float64
		for j, g := range r.glyphs {
			if j > 0 {
				gap := g.X - lastEnd
				threshold := g.FontSize * 0.3
				if threshold <= 0 {
					threshold = 1.0
				}
				if gap > threshold {
					b.WriteByte(' ')
				}
			}
			b.WriteString(g.S)
			lastEnd = g.X + g.W
		}
	}
	return b.String()
}
