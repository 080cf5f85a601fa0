package glossary

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// capRunSegmenter handles single-column glossaries where a new entry is
// signaled by a run of leading capitalized words, e.g.
//
//	Yield Curve a graphical representation of interest rates ...
//
// The term is at most the first three words. A pair is only emitted once
// its definition ends with a period, so trailing text cut off at a page
// boundary is dropped. That loses genuinely short definitions without
// terminal punctuation; known limitation of the source heuristic.
type capRunSegmenter struct{}

func (capRunSegmenter) Segment(text string) []Pair {
	var pairs []Pair
	var st state

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		words := strings.Fields(line)
		if !startsCapitalized(words[0]) || IsContinuation(st.term, line) {
			if st.pending() {
				st.extend(line)
			}
			continue
		}

		pairs = flushComplete(&st, pairs)
		n := capRunTermLen(words)
		st.open(strings.Join(words[:n], " "), words[n:]...)
	}

	pairs = flushComplete(&st, pairs)
	return finalize(pairs)
}

// flushComplete emits the pending entry only when its definition ends
// with a period; incomplete entries are discarded.
func flushComplete(st *state, pairs []Pair) []Pair {
	def := strings.TrimSpace(strings.Join(st.defParts, " "))
	if st.term != "" && strings.HasSuffix(def, ".") {
		pairs = append(pairs, Pair{Term: st.term, Definition: def})
	}
	st.term = ""
	st.defParts = nil
	return pairs
}

// capRunTermLen applies the term-length ladder: count the leading
// capitalized words (at most four). A run of n capitalized words followed
// by a lowercase word yields a term of max(1, n-1) words, capped at
// three. A line that is nothing but capitalized words is all term.
// Terms of four or more words are not recognized; whether that truncation
// is intentional in the source heuristic is unresolved.
func capRunTermLen(words []string) int {
	limit := len(words)
	if limit > 4 {
		limit = 4
	}

	n := 0
	for n < limit && startsCapitalized(words[n]) {
		n++
	}

	if n == len(words) {
		// Term-only line; the definition comes from continuation lines.
		if n > 3 {
			return 3
		}
		return n
	}

	termLen := n - 1
	if termLen < 1 {
		termLen = 1
	}
	if termLen > 3 {
		termLen = 3
	}
	return termLen
}

// startsCapitalized reports whether a word begins with an uppercase letter.
func startsCapitalized(word string) bool {
	r, _ := utf8.DecodeRuneInString(word)
	return unicode.IsUpper(r)
}
