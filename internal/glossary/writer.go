package glossary

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// NoPairsWarning is written as the file's content when extraction yields
// nothing, so "nothing extracted" stays distinguishable from "not yet
// processed".
const NoPairsWarning = "Warning: No terms and definitions were extracted from the PDF.\n"

// Write writes pairs as blank-line-separated "term: definition" records.
// With zero pairs it writes the warning line instead.
func Write(w io.Writer, pairs []Pair) error {
	bw := bufio.NewWriter(w)

	if len(pairs) == 0 {
		if _, err := bw.WriteString(NoPairsWarning); err != nil {
			return err
		}
		return bw.Flush()
	}

	for _, p := range pairs {
		if _, err := fmt.Fprintf(bw, "%s: %s\n\n", p.Term, p.Definition); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteFile creates or overwrites path with the glossary records.
func WriteFile(path string, pairs []Pair) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	if err := Write(f, pairs); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
