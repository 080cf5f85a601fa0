package glossary

import (
	"fmt"
	"regexp"
)

// Cleaner strips headers, footers, and boilerplate from page text before
// segmentation. Sources carry their own quirks (running headers, "3 of
// 12" footers, campaign banners), so the pattern list is configurable;
// DefaultCleanPatterns covers the generic cases.
type Cleaner struct {
	patterns []*regexp.Regexp
}

// DefaultCleanPatterns remove page-number-only lines, single-letter
// section heading lines, bracketed URLs, and "N of M" footers.
var DefaultCleanPatterns = []string{
	`(?m)^\s*\d+\s*$`,
	`(?m)^[A-Z]\s*$`,
	`\[\]\(https://[^)]*\)`,
	`(?mi)^\d+ of \d+.*$`,
}

// NewCleaner compiles the given patterns into a Cleaner.
func NewCleaner(patterns ...string) (*Cleaner, error) {
	c := &Cleaner{patterns: make([]*regexp.Regexp, 0, len(patterns))}
	for _, p := range patterns {
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("invalid clean pattern %q: %w", p, err)
		}
		c.patterns = append(c.patterns, re)
	}
	return c, nil
}

// Clean applies each pattern in order, deleting everything it matches.
func (c *Cleaner) Clean(text string) string {
	for _, re := range c.patterns {
		text = re.ReplaceAllString(text, "")
	}
	return text
}
