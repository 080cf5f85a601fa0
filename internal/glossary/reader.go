package glossary

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Parse reads glossary text back into pairs. It accepts the standard
// "term: definition" record format, the legacy two-line
// "Term: …\nDefinition: …" format, and combined files whose sources are
// separated by a row of equals signs. Records that fail the length
// invariants are skipped.
func Parse(r io.Reader) ([]Pair, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read glossary: %w", err)
	}

	var pairs []Pair
	for _, section := range strings.Split(string(data), combineSeparator) {
		pairs = append(pairs, parseSection(section)...)
	}
	return pairs, nil
}

// ParseFile reads a glossary file from disk.
func ParseFile(path string) ([]Pair, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()
	return Parse(f)
}

func parseSection(section string) []Pair {
	var pairs []Pair

	for _, record := range strings.Split(section, "\n\n") {
		record = strings.TrimSpace(record)
		if record == "" || strings.HasPrefix(record, "Warning:") {
			continue
		}

		var p Pair
		if strings.HasPrefix(record, "Term: ") {
			p = parseLegacyRecord(record)
		} else {
			idx := strings.Index(record, ":")
			if idx < 0 {
				continue
			}
			p = Pair{Term: record[:idx], Definition: record[idx+1:]}
		}

		p = p.Normalize()
		if p.Valid() {
			pairs = append(pairs, p)
		}
	}
	return pairs
}

// parseLegacyRecord handles the earliest two-line output format.
func parseLegacyRecord(record string) Pair {
	var p Pair
	for _, line := range strings.Split(record, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(line, "Term: "):
			p.Term = strings.TrimPrefix(line, "Term: ")
		case strings.HasPrefix(line, "Definition: "):
			p.Definition = strings.TrimPrefix(line, "Definition: ")
		default:
			if p.Definition != "" {
				p.Definition += " " + line
			}
		}
	}
	return p
}
