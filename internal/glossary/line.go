package glossary

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// lineTermRe accepts a line as a term only when the entire line looks
// like one. Stricter than the capitalization-run check, which only
// inspects the first word.
var lineTermRe = regexp.MustCompile(`^[A-Z][\w\s()\-]+$`)

// lineSegmenter handles documents where each term sits on a line of its
// own between sentence blocks.
type lineSegmenter struct{}

func (lineSegmenter) Segment(text string) []Pair {
	var pairs []Pair
	var st state

	for _, block := range splitSentenceBlocks(text) {
		var lines []string
		for _, l := range strings.Split(block, "\n") {
			if l = strings.TrimSpace(l); l != "" {
				lines = append(lines, l)
			}
		}
		if len(lines) == 0 {
			continue
		}

		if lineTermRe.MatchString(lines[0]) {
			pairs = st.flush(pairs)
			st.open(lines[0], lines[1:]...)
		} else if st.pending() {
			st.extend(lines...)
		}
	}

	pairs = st.flush(pairs)
	return finalize(pairs)
}

// splitSentenceBlocks splits text after each sentence-ending period that
// is followed by a capitalized word (either Xx... or a lone capital).
// This stands in for the lookbehind/lookahead split
// (?<=\.)\s*(?=[A-Z][a-z]|\b[A-Z]\b), which RE2 cannot express.
func splitSentenceBlocks(text string) []string {
	var blocks []string
	start := 0

	for i := 0; i < len(text); i++ {
		if text[i] != '.' {
			continue
		}

		j := i + 1
		for j < len(text) && isSpaceByte(text[j]) {
			j++
		}
		if j >= len(text) {
			break
		}

		r, size := utf8.DecodeRuneInString(text[j:])
		if !unicode.IsUpper(r) {
			continue
		}
		next, _ := utf8.DecodeRuneInString(text[j+size:])
		if unicode.IsLower(next) || !unicode.IsLetter(next) {
			blocks = append(blocks, text[start:i+1])
			start = j
			i = j - 1
		}
	}

	if start < len(text) {
		blocks = append(blocks, text[start:])
	}
	return blocks
}

func isSpaceByte(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}
