package dataset

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jackzampolin/gloss/internal/glossary"
)

func samplePairs() []glossary.Pair {
	return []glossary.Pair{
		{Term: "Asset", Definition: "Anything of value owned by a person or company."},
		{Term: "Asset Allocation", Definition: "Dividing investments among different asset classes."},
		{Term: "Bond", Definition: "A debt security issued by a government or corporation."},
		{Term: "Compound Interest", Definition: "Interest calculated on both principal and accumulated interest."},
		{Term: "Dividend", Definition: "A share of profits paid to stockholders."},
		{Term: "Escrow", Definition: "An account held by a third party on behalf of two others."},
		{Term: "Liquidity", Definition: "How quickly an asset can be converted to cash."},
		{Term: "Mutual Fund", Definition: "An investment vehicle pooling money from many investors."},
		{Term: "Principal", Definition: "The original amount of money borrowed or invested."},
		{Term: "Yield", Definition: "The income returned on an investment over time."},
	}
}

func TestGenerate(t *testing.T) {
	g := NewGenerator(42, nil)
	pairs := samplePairs()

	convs := g.Generate(pairs, 0)

	// 5 greetings (floor) + starter and follow-up per term + 2 comparisons.
	want := 5 + 2*len(pairs) + len(pairs)/5
	if len(convs) != want {
		t.Fatalf("expected %d conversations, got %d", want, len(convs))
	}

	for i, c := range convs {
		if err := Validate(c); err != nil {
			t.Errorf("conversation %d invalid: %v", i, err)
		}
	}
}

func TestGenerateDeterministicText(t *testing.T) {
	pairs := samplePairs()

	a := NewGenerator(7, nil).Generate(pairs, 0)
	b := NewGenerator(7, nil).Generate(pairs, 0)

	if len(a) != len(b) {
		t.Fatalf("runs differ in length: %d vs %d", len(a), len(b))
	}
	for i := range a {
		// IDs are random UUIDs; everything else follows the seed.
		if a[i].FreeMessages[0] != b[i].FreeMessages[0] {
			t.Errorf("conversation %d free message differs: %q vs %q",
				i, a[i].FreeMessages[0], b[i].FreeMessages[0])
		}
		if a[i].Context != b[i].Context {
			t.Errorf("conversation %d context differs", i)
		}
	}
}

func TestGenerateSampleSize(t *testing.T) {
	g := NewGenerator(1, nil)
	convs := g.Generate(samplePairs(), 3)

	// 5 greetings + 3 starters + 3 follow-ups + 0 comparisons (3/5 == 0).
	if len(convs) != 11 {
		t.Errorf("expected 11 conversations, got %d", len(convs))
	}
}

func TestStarterEmbedsDefinition(t *testing.T) {
	g := NewGenerator(3, nil)
	p := glossary.Pair{Term: "Escrow", Definition: "An account held by a third party."}

	c := g.starter(p)
	if c.AdditionalContext != "Escrow" {
		t.Errorf("unexpected additional_context %q", c.AdditionalContext)
	}
	if !strings.Contains(c.GuidedMessages[0], p.Definition) {
		t.Errorf("guided message missing definition: %q", c.GuidedMessages[0])
	}
	if !strings.Contains(c.FreeMessages[0], "Escrow") {
		t.Errorf("free message missing term: %q", c.FreeMessages[0])
	}
	if len(c.PreviousUtterance) != 0 {
		t.Errorf("starter should have no previous utterance: %v", c.PreviousUtterance)
	}
}

func TestFollowupCarriesPreviousExchange(t *testing.T) {
	g := NewGenerator(3, nil)
	p := glossary.Pair{Term: "Bond", Definition: "A debt security issued by a government."}

	c := g.followup(p)
	if len(c.PreviousUtterance) != 2 {
		t.Fatalf("expected 2 previous utterances, got %v", c.PreviousUtterance)
	}
	if !strings.Contains(c.PreviousUtterance[1], p.Definition) {
		t.Errorf("previous answer missing definition: %q", c.PreviousUtterance[1])
	}
}

func TestComparisonUsesBothTerms(t *testing.T) {
	g := NewGenerator(3, nil)
	a := glossary.Pair{Term: "Stock", Definition: "An ownership share in a corporation."}
	b := glossary.Pair{Term: "Bond", Definition: "A debt security issued by a government."}

	c := g.comparison(a, b)
	msg := c.GuidedMessages[0]
	if !strings.Contains(msg, "Stock") || !strings.Contains(msg, "Bond") {
		t.Errorf("answer missing a term: %q", msg)
	}
	if !strings.Contains(msg, strings.ToLower(a.Definition)) {
		t.Errorf("answer missing first definition: %q", msg)
	}
	if c.AdditionalContext != "Stock vs Bond" {
		t.Errorf("unexpected additional_context %q", c.AdditionalContext)
	}
}

func TestSharesWord(t *testing.T) {
	a := glossary.Pair{Term: "Asset Allocation", Definition: "Dividing investments."}
	b := glossary.Pair{Term: "Asset", Definition: "Anything of value."}
	c := glossary.Pair{Term: "Yield", Definition: "Investment income."}

	if !sharesWord(a, b) {
		t.Error("expected Asset Allocation and Asset to share a word")
	}
	if sharesWord(b, c) {
		t.Error("Asset and Yield should not share a word")
	}
}

func TestChosenSuggestionsShape(t *testing.T) {
	g := NewGenerator(11, nil)
	valid := map[string]bool{
		"": true, "financial_advice": true,
		"banking_basics": true, "investment_knowledge": true,
	}

	for i := 0; i < 50; i++ {
		got := g.chosenSuggestions()
		if len(got) != 3 {
			t.Fatalf("expected 3 slots, got %v", got)
		}
		for _, s := range got {
			if !valid[s] {
				t.Errorf("unexpected suggestion key %q", s)
			}
		}
		if got[1] != "" && got[1] == got[2] {
			t.Errorf("duplicate non-empty slots: %v", got)
		}
	}
}

func TestWriteFile(t *testing.T) {
	g := NewGenerator(5, nil)
	convs := g.Generate(samplePairs(), 0)

	path := filepath.Join(t.TempDir(), "datasets", "finance_training_data.json")
	if err := WriteFile(path, convs); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	var decoded []Conversation
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(decoded) != len(convs) {
		t.Errorf("expected %d records, got %d", len(convs), len(decoded))
	}
}

func TestValidateRejectsBadRecord(t *testing.T) {
	c := Conversation{ID: "x", Context: "unrelated_topic"}
	if err := Validate(c); err == nil {
		t.Error("expected validation error for bad context")
	}
}
