package glossary

import (
	"fmt"
	"strings"
)

// Layout identifies the term/definition formatting convention of a source
// document family.
type Layout string

const (
	// LayoutCapRun marks single-column documents where a run of leading
	// capitalized words starts a new entry.
	LayoutCapRun Layout = "caprun"

	// LayoutTwoColumn marks two-column pages (flattened left then right)
	// with colon-separated entries.
	LayoutTwoColumn Layout = "twocolumn"

	// LayoutHyphen marks documents with "Term — definition" runs.
	LayoutHyphen Layout = "hyphen"

	// LayoutColon marks colon-separated entries grouped under
	// single-letter section markers.
	LayoutColon Layout = "colon"

	// LayoutLine marks documents where a term occupies a whole line of
	// its own between sentence blocks.
	LayoutLine Layout = "line"
)

// Layouts lists all supported layouts.
func Layouts() []Layout {
	return []Layout{LayoutCapRun, LayoutTwoColumn, LayoutHyphen, LayoutColon, LayoutLine}
}

// ParseLayout converts a user-supplied string into a Layout.
func ParseLayout(s string) (Layout, error) {
	l := Layout(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Layouts() {
		if l == known {
			return l, nil
		}
	}
	return "", fmt.Errorf("unknown layout %q (supported: caprun, twocolumn, hyphen, colon, line)", s)
}

// Segmenter extracts ordered term/definition pairs from cleaned text.
// Implementations are pure functions of their input: no matches means an
// empty result, never an error.
type Segmenter interface {
	Segment(text string) []Pair
}

// NewSegmenter returns the segmenter for the given layout.
func NewSegmenter(layout Layout) (Segmenter, error) {
	switch layout {
	case LayoutCapRun:
		return capRunSegmenter{}, nil
	case LayoutTwoColumn:
		return twoColumnSegmenter{}, nil
	case LayoutHyphen:
		return hyphenSegmenter{}, nil
	case LayoutColon:
		return colonSegmenter{}, nil
	case LayoutLine:
		return lineSegmenter{}, nil
	default:
		return nil, fmt.Errorf("unknown layout %q", layout)
	}
}

// state is the per-scan accumulator: the pending term and the definition
// fragments collected so far. It is owned by a single Segment call and
// flushed whenever a new term is detected or the scan ends.
type state struct {
	term     string
	defParts []string
}

// open starts accumulating a new entry.
func (s *state) open(term string, defParts ...string) {
	s.term = term
	s.defParts = append([]string(nil), defParts...)
}

// extend appends a continuation fragment to the pending definition.
func (s *state) extend(parts ...string) {
	s.defParts = append(s.defParts, parts...)
}

// pending reports whether an entry is being accumulated.
func (s *state) pending() bool {
	return s.term != ""
}

// flush appends the pending entry to pairs (if any) and resets the state.
func (s *state) flush(pairs []Pair) []Pair {
	if s.term != "" && len(s.defParts) > 0 {
		pairs = append(pairs, Pair{
			Term:       s.term,
			Definition: strings.Join(s.defParts, " "),
		})
	}
	s.term = ""
	s.defParts = nil
	return pairs
}
