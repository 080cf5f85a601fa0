package glossary

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Words that mark a line as a continuation of the previous definition
// rather than the start of a new term.
var continuationWords = map[string]struct{}{
	// pronouns and articles
	"a": {}, "an": {}, "the": {}, "you": {}, "it": {}, "they": {},
	"this": {}, "that": {}, "these": {}, "those": {},
	// connectives
	"usually": {}, "in": {}, "therefore": {}, "when": {}, "can": {},
	"since": {}, "also": {}, "if": {}, "however": {}, "because": {},
	"while": {}, "although": {}, "unless": {}, "moreover": {},
	"furthermore": {},
}

// startsContinuation reports whether a line reads like the middle of a
// definition: it opens with a known pronoun/connective, or with a
// lowercase letter.
func startsContinuation(line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return true
	}
	if _, ok := continuationWords[strings.ToLower(fields[0])]; ok {
		return true
	}
	r, _ := utf8.DecodeRuneInString(fields[0])
	return unicode.IsLower(r)
}

// IsContinuation classifies a line as a continuation of the pending
// definition versus the start of a new term. With no pending term a line
// can only be a new term candidate. The rules deliberately favor merging:
// over-splitting produces more garbage entries than over-merging.
func IsContinuation(currentTerm, line string) bool {
	if currentTerm == "" {
		return false
	}
	return startsContinuation(line)
}
