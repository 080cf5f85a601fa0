package glossary

import (
	"reflect"
	"strings"
	"testing"
)

func TestTwoColumnSegmenter(t *testing.T) {
	t.Run("colon separated entries", func(t *testing.T) {
		input := "Arbitrage: buying and selling to profit from price differences.\n" +
			"Broker: an agent who executes trades on behalf of clients."

		want := []Pair{
			{"Arbitrage", "buying and selling to profit from price differences."},
			{"Broker", "an agent who executes trades on behalf of clients."},
		}

		got := mustSegmenter(t, LayoutTwoColumn).Segment(input)
		if !reflect.DeepEqual(got, want) {
			t.Errorf("got %v, want %v", got, want)
		}
	})

	t.Run("wrapped definition lines merge", func(t *testing.T) {
		input := "Collateral: property pledged as security for a loan,\n" +
			"which the lender may seize on default."

		got := mustSegmenter(t, LayoutTwoColumn).Segment(input)
		if len(got) != 1 {
			t.Fatalf("expected 1 pair, got %d: %v", len(got), got)
		}
		if !strings.HasSuffix(got[0].Definition, "seize on default.") {
			t.Errorf("wrapped line missing: %q", got[0].Definition)
		}
	})

	t.Run("part of speech markers stripped", func(t *testing.T) {
		input := "Arbitrage (n.): simultaneous purchase and sale to exploit price gaps."

		got := mustSegmenter(t, LayoutTwoColumn).Segment(input)
		if len(got) != 1 {
			t.Fatalf("expected 1 pair, got %d: %v", len(got), got)
		}
		if got[0].Term != "Arbitrage" {
			t.Errorf("got term %q, want Arbitrage", got[0].Term)
		}
	})

	t.Run("new-term lookalike without colon is dropped", func(t *testing.T) {
		input := "Asset: anything of value owned by a person or company.\n" +
			"Balance Sheet – fragment cut off by a column break"

		got := mustSegmenter(t, LayoutTwoColumn).Segment(input)
		want := []Pair{
			{"Asset", "anything of value owned by a person or company."},
		}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("got %v, want %v", got, want)
		}
	})
}
