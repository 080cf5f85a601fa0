package glossary

import (
	"regexp"
	"strings"
)

// newEntryRe matches lines that look like the start of a new entry even
// though they carry no colon on this line (the separator landed on the
// next line after a column break).
var newEntryRe = regexp.MustCompile(`^[A-Z][^:–-]+[:–-]`)

// posMarkerRe strips part-of-speech markers like (n.), (v.), (adj.) that
// some glossaries attach to terms.
var posMarkerRe = regexp.MustCompile(`\s*\((?:n|v|adj)\.\)\s*`)

// twoColumnSegmenter handles two-column pages whose text has been
// flattened column by column (left fully, then right). Entries are colon
// separated; a line without a colon continues the previous definition
// unless it reads like the start of a new term.
type twoColumnSegmenter struct{}

func (twoColumnSegmenter) Segment(text string) []Pair {
	var pairs []Pair
	var st state

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if idx := strings.Index(line, ":"); idx >= 0 {
			pairs = st.flush(pairs)
			term := posMarkerRe.ReplaceAllString(line[:idx], " ")
			st.open(strings.TrimSpace(term), strings.TrimSpace(line[idx+1:]))
			continue
		}

		if st.pending() && !newEntryRe.MatchString(line) {
			st.extend(line)
		}
		// A colon-less line that looks like a fresh term is dropped:
		// without its separator we cannot tell term from definition.
	}

	pairs = st.flush(pairs)
	return finalize(pairs)
}
