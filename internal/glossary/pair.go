// Package glossary turns glossary page text into ordered term/definition
// pairs. Each supported document layout gets its own Segmenter variant;
// the continuation, dedup, and persistence logic is shared.
package glossary

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Pair is one glossary entry. Pairs are value types: equality for
// deduplication is case-insensitive on Term only.
type Pair struct {
	Term       string `json:"term" yaml:"term"`
	Definition string `json:"definition" yaml:"definition"`
}

var spaceRe = regexp.MustCompile(`\s+`)

// NormalizeSpace collapses whitespace runs to single spaces and trims.
func NormalizeSpace(s string) string {
	return strings.TrimSpace(spaceRe.ReplaceAllString(s, " "))
}

// Normalize returns the pair with whitespace-normalized fields.
func (p Pair) Normalize() Pair {
	return Pair{
		Term:       NormalizeSpace(p.Term),
		Definition: NormalizeSpace(p.Definition),
	}
}

// Valid reports whether the pair clears the minimum-length heuristics:
// terms longer than one character, definitions longer than five. Lengths
// are in runes, so accented terms are measured like ASCII ones. Anything
// shorter is almost always extraction noise.
func (p Pair) Valid() bool {
	return utf8.RuneCountInString(p.Term) > 1 && utf8.RuneCountInString(p.Definition) > 5
}

// finalize normalizes candidates and drops the ones that fail validation.
func finalize(pairs []Pair) []Pair {
	out := make([]Pair, 0, len(pairs))
	for _, p := range pairs {
		p = p.Normalize()
		if p.Valid() {
			out = append(out, p)
		}
	}
	return out
}
