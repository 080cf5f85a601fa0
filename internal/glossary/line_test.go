package glossary

import (
	"reflect"
	"testing"
)

func TestSplitSentenceBlocks(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "split before capitalized word",
			input: "First sentence ends here. Second starts now.",
			want:  []string{"First sentence ends here.", "Second starts now."},
		},
		{
			name:  "no split before lowercase",
			input: "An abbreviation e.g. like this stays together.",
			want:  []string{"An abbreviation e.g. like this stays together."},
		},
		{
			name:  "split before lone capital",
			input: "Sentence one ends. A is a section marker.",
			want:  []string{"Sentence one ends.", "A is a section marker."},
		},
		{
			name:  "no periods",
			input: "no terminal punctuation at all",
			want:  []string{"no terminal punctuation at all"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := splitSentenceBlocks(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLineSegmenter(t *testing.T) {
	t.Run("term on its own line", func(t *testing.T) {
		input := "Compound Interest\nInterest calculated on both principal and accumulated interest. " +
			"Credit Score\nA number that represents a consumer's creditworthiness."

		want := []Pair{
			{"Compound Interest", "Interest calculated on both principal and accumulated interest."},
			{"Credit Score", "A number that represents a consumer's creditworthiness."},
		}

		got := mustSegmenter(t, LayoutLine).Segment(input)
		if !reflect.DeepEqual(got, want) {
			t.Errorf("got %v, want %v", got, want)
		}
	})

	t.Run("whole line must look like a term", func(t *testing.T) {
		// First word is capitalized but the line carries sentence
		// punctuation, so it is not a term.
		input := "Interest rates rose sharply, surprising markets.\nMore prose follows here."

		if got := mustSegmenter(t, LayoutLine).Segment(input); len(got) != 0 {
			t.Errorf("expected no pairs, got %v", got)
		}
	})

	t.Run("blocks without terms extend current definition", func(t *testing.T) {
		input := "Escrow\nAn account held by a third party. " +
			"It releases funds when conditions are met."

		got := mustSegmenter(t, LayoutLine).Segment(input)
		if len(got) != 1 {
			t.Fatalf("expected 1 pair, got %d: %v", len(got), got)
		}
		if got[0].Definition != "An account held by a third party. It releases funds when conditions are met." {
			t.Errorf("unexpected definition: %q", got[0].Definition)
		}
	})
}
