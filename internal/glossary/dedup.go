package glossary

import "strings"

// Dedup removes entries whose term duplicates (case-insensitively) an
// earlier entry's term. First occurrence wins; later, possibly more
// complete definitions for the same term are discarded. Order is
// preserved.
func Dedup(pairs []Pair) []Pair {
	seen := make(map[string]struct{}, len(pairs))
	out := make([]Pair, 0, len(pairs))

	for _, p := range pairs {
		key := strings.ToLower(p.Term)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, p)
	}
	return out
}
