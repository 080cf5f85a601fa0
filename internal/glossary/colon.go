package glossary

import (
	"regexp"
	"strings"
)

// sectionMarkerRe matches the single-letter section headings ("A", "B",
// ...) that alphabetical glossaries interleave between entries.
var sectionMarkerRe = regexp.MustCompile(`^[A-Z]$`)

// colonSegmenter handles line-oriented glossaries where a colon closes
// the previous entry and opens a new one, with single-letter section
// markers skipped outright.
type colonSegmenter struct{}

func (colonSegmenter) Segment(text string) []Pair {
	var pairs []Pair
	var st state

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if sectionMarkerRe.MatchString(line) {
			continue
		}

		if idx := strings.Index(line, ":"); idx >= 0 {
			pairs = st.flush(pairs)
			st.open(strings.TrimSpace(line[:idx]), strings.TrimSpace(line[idx+1:]))
			continue
		}

		if st.pending() {
			st.extend(line)
		}
	}

	pairs = st.flush(pairs)
	return finalize(pairs)
}
