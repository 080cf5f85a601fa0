package glossary

import "strings"

// Reformat applies the continuation-merge rules to pairs parsed back out
// of a written glossary:
//
//   - runs of entries whose definition opens in lowercase fold into the
//     entry before them (stray colons removed),
//   - an entry whose term reads like a continuation folds term and
//     definition into the previous entry,
//   - "X: Y" sentences found inside a definition become entries of their
//     own, replacing the original.
func Reformat(pairs []Pair) []Pair {
	var out []Pair

	i := 0
	for i < len(pairs) {
		term, def := pairs[i].Term, pairs[i].Definition

		// Fold lowercase-opening definitions of the following entries in.
		j := i + 1
		for j < len(pairs) {
			next := pairs[j].Definition
			if next == "" || !startsLower(next) {
				break
			}
			def = def + " " + strings.ReplaceAll(next, ":", "")
			j++
		}
		i = j

		if len(out) > 0 && startsContinuation(term) {
			prev := &out[len(out)-1]
			prev.Definition = prev.Definition + " " + term + " " + def
			continue
		}

		if extra := splitDefinitionColons(def); len(extra) > 0 {
			out = append(out, extra...)
			continue
		}
		out = append(out, Pair{Term: term, Definition: def})
	}

	return finalize(out)
}

// splitDefinitionColons scans a definition's sentences for embedded
// "X: Y" runs that are really separate entries.
func splitDefinitionColons(def string) []Pair {
	var extra []Pair

	for _, sentence := range strings.Split(def, ". ") {
		before, after, found := strings.Cut(sentence, ": ")
		if !found {
			continue
		}
		if startsContinuation(before) {
			continue
		}
		extra = append(extra, Pair{
			Term:       strings.TrimSpace(before),
			Definition: strings.TrimSpace(after),
		})
	}
	return extra
}
