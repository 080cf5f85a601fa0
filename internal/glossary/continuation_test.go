package glossary

import "testing"

func TestIsContinuation(t *testing.T) {
	tests := []struct {
		name        string
		currentTerm string
		line        string
		want        bool
	}{
		{"no pending term", "", "It pays interest.", false},
		{"pronoun first word", "Bond", "It pays interest.", true},
		{"demonstrative first word", "Bond", "These payments recur.", true},
		{"connective first word", "Bond", "However, rates vary.", false},
		{"plain connective", "Bond", "However rates vary.", true},
		{"lowercase first letter", "Bond", "usually paid twice a year.", true},
		{"capitalized new term", "Bond", "Yield Curve shows rates.", false},
		{"empty line", "Bond", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsContinuation(tt.currentTerm, tt.line); got != tt.want {
				t.Errorf("IsContinuation(%q, %q) = %v, want %v", tt.currentTerm, tt.line, got, tt.want)
			}
		})
	}
}

// Removing a line classified as a continuation must not change the
// classification of any later line: decisions depend only on the fixed
// word sets and the pending term, never on lookahead.
func TestIsContinuation_Monotonicity(t *testing.T) {
	lines := []string{
		"A debt security issued by a government.",
		"It pays interest at fixed intervals.",
		"usually twice per year.",
		"Yield Curve shows rates across maturities.",
	}

	classify := func(ls []string) []bool {
		out := make([]bool, len(ls))
		for i, l := range ls {
			out[i] = IsContinuation("Bond", l)
		}
		return out
	}

	full := classify(lines)

	for drop := 0; drop < len(lines); drop++ {
		if !full[drop] {
			continue
		}
		reduced := make([]string, 0, len(lines)-1)
		reduced = append(reduced, lines[:drop]...)
		reduced = append(reduced, lines[drop+1:]...)

		got := classify(reduced)
		want := make([]bool, 0, len(full)-1)
		want = append(want, full[:drop]...)
		want = append(want, full[drop+1:]...)

		for i := range got {
			if got[i] != want[i] {
				t.Errorf("dropping line %d changed classification of %q", drop, reduced[i])
			}
		}
	}
}
