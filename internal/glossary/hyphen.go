package glossary

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// hyphenAnchorRe locates "Term —" anchors in whole-page text. Go's RE2
// engine has no lookahead, so instead of terminating each match at the
// next capitalized run (as the equivalent PCRE would), anchors are found
// first and each definition is the slice up to the following anchor.
var hyphenAnchorRe = regexp.MustCompile(`([A-Z][A-Za-z0-9\s()/,]+?)\s*[—–-]\s*`)

// hyphenSegmenter handles documents formatted as repeating
// "Term — definition" or "Term - definition" runs.
type hyphenSegmenter struct{}

func (hyphenSegmenter) Segment(text string) []Pair {
	matches := hyphenAnchorRe.FindAllStringSubmatchIndex(text, -1)

	var pairs []Pair
	var st state

	for i, m := range matches {
		term := strings.TrimSpace(text[m[2]:m[3]])
		term = strings.TrimRight(term, ". ")

		end := len(text)
		if i+1 < len(matches) {
			end = matches[i+1][0]
		}
		def := NormalizeSpace(text[m[1]:end])

		// Single capital letters are section markers, not terms.
		if len(term) == 1 {
			continue
		}

		// An anchor whose term reads like a continuation ("The State —",
		// "This rate —") is a dash inside the previous definition, not a
		// new entry; fold its text in.
		if st.pending() && startsContinuation(term) {
			st.extend(def)
			continue
		}

		pairs = st.flush(pairs)
		st.open(term, def)
	}

	pairs = st.flush(pairs)

	// The anchor scan can echo the term at the head of its own
	// definition when separators repeat; drop those.
	out := make([]Pair, 0, len(pairs))
	for _, p := range finalize(pairs) {
		if strings.HasPrefix(strings.ToLower(p.Definition), strings.ToLower(p.Term)) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func startsLower(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return unicode.IsLower(r)
}
