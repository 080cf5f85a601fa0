package glossary

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// combineSeparator divides source files inside a combined glossary.
const combineSeparator = "================================================================================"

// CombineDir combines every .txt glossary in dir into outPath, separated
// by a row of equals signs, skipping the output file itself and any
// excluded names. A file that fails to read is logged and skipped; the
// batch continues. Returns the list of files combined.
func CombineDir(dir, outPath string, exclude map[string]struct{}, log *slog.Logger) ([]string, error) {
	if log == nil {
		log = slog.Default()
	}

	entries, err := filepath.Glob(filepath.Join(dir, "*.txt"))
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", dir, err)
	}

	var files []string
	for _, e := range entries {
		name := filepath.Base(e)
		if name == filepath.Base(outPath) {
			continue
		}
		if _, skip := exclude[name]; skip {
			continue
		}
		files = append(files, e)
	}
	sort.Strings(files)

	if len(files) == 0 {
		return nil, fmt.Errorf("no glossary files found in %s", dir)
	}

	var parts []string
	var combined []string
	for _, p := range files {
		data, err := os.ReadFile(p)
		if err != nil {
			log.Warn("skipping unreadable glossary", "file", p, "error", err)
			continue
		}
		content := strings.TrimSpace(string(data))
		if content == "" {
			continue
		}
		log.Debug("combining glossary", "file", filepath.Base(p))
		parts = append(parts, content, "\n"+combineSeparator+"\n")
		combined = append(combined, p)
	}

	if len(parts) == 0 {
		return nil, fmt.Errorf("no content found to combine")
	}

	if err := os.WriteFile(outPath, []byte(strings.Join(parts, "\n")), 0o644); err != nil {
		return nil, fmt.Errorf("failed to write %s: %w", outPath, err)
	}
	return combined, nil
}
