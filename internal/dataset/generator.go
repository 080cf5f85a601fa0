// Package dataset synthesizes conversational training data from
// glossary term/definition pairs. Every record follows the same
// schema: persona lines, a topic context, optional prior exchange, a
// user message, and a guided assistant reply built from the
// definition.
package dataset

import (
	"fmt"
	"log/slog"
	"math/rand"
	"strings"

	"github.com/google/uuid"

	"github.com/jackzampolin/gloss/internal/glossary"
)

// Conversation is one training record.
type Conversation struct {
	ID                      string              `json:"id"`
	Personas                []string            `json:"personas"`
	AdditionalContext       string              `json:"additional_context"`
	Context                 string              `json:"context"`
	PreviousUtterance       []string            `json:"previous_utterance"`
	FreeMessages            []string            `json:"free_messages"`
	GuidedMessages          []string            `json:"guided_messages"`
	Suggestions             map[string][]string `json:"suggestions"`
	GuidedChosenSuggestions []string            `json:"guided_chosen_suggestions"`
	LabelCandidates         []string            `json:"label_candidates"`
}

// Generator builds conversations from glossary pairs. The random
// source is seeded so a run is reproducible.
type Generator struct {
	rng *rand.Rand
	log *slog.Logger
}

// NewGenerator returns a Generator seeded with seed.
func NewGenerator(seed int64, log *slog.Logger) *Generator {
	if log == nil {
		log = slog.Default()
	}
	return &Generator{rng: rand.New(rand.NewSource(seed)), log: log}
}

// Generate produces the full training set for pairs: greeting
// conversations (~10% of the term count, at least 5), a starter and a
// follow-up conversation per term, and comparison conversations for
// ~20% of terms. sampleSize > 0 first samples that many pairs.
func (g *Generator) Generate(pairs []glossary.Pair, sampleSize int) []Conversation {
	if sampleSize > 0 && sampleSize < len(pairs) {
		sampled := make([]glossary.Pair, 0, sampleSize)
		for _, i := range g.rng.Perm(len(pairs))[:sampleSize] {
			sampled = append(sampled, pairs[i])
		}
		pairs = sampled
	}

	var out []Conversation

	greetings := len(pairs) / 10
	if greetings < 5 {
		greetings = 5
	}
	for i := 0; i < greetings; i++ {
		out = append(out, g.greeting())
	}

	for _, p := range pairs {
		out = append(out, g.starter(p), g.followup(p))
	}

	out = append(out, g.comparisons(pairs)...)

	g.log.Info("generated conversations",
		"terms", len(pairs), "greetings", greetings, "total", len(out))
	return out
}

func (g *Generator) greeting() Conversation {
	return Conversation{
		ID:                      g.pickID(),
		Personas:                g.pickPersona(),
		AdditionalContext:       "financial_literacy",
		Context:                 g.pick(contexts),
		PreviousUtterance:       []string{},
		FreeMessages:            []string{g.pick(greetingStarters)},
		GuidedMessages:          []string{g.pick(greetingResponses)},
		Suggestions:             defaultSuggestions(),
		GuidedChosenSuggestions: g.chosenSuggestions(),
		LabelCandidates:         []string{},
	}
}

func (g *Generator) starter(p glossary.Pair) Conversation {
	return Conversation{
		ID:                g.pickID(),
		Personas:          g.pickPersona(),
		AdditionalContext: p.Term,
		Context:           g.pick(contexts),
		PreviousUtterance: []string{},
		FreeMessages:      []string{fmt.Sprintf(g.pick(starterQuestions), p.Term)},
		GuidedMessages: []string{
			fmt.Sprintf("I'll explain %s. %s Would you like to know more about related concepts?",
				p.Term, p.Definition),
		},
		Suggestions:             defaultSuggestions(),
		GuidedChosenSuggestions: g.chosenSuggestions(),
		LabelCandidates:         []string{},
	}
}

func (g *Generator) followup(p glossary.Pair) Conversation {
	return Conversation{
		ID:                g.pickID(),
		Personas:          g.pickPersona(),
		AdditionalContext: p.Term,
		Context:           g.pick(contexts),
		PreviousUtterance: []string{
			fmt.Sprintf(g.pick(followupPrevious), p.Term),
			fmt.Sprintf("Of course! %s is %s", p.Term, p.Definition),
		},
		FreeMessages: []string{fmt.Sprintf(g.pick(followupQuestions), p.Term)},
		GuidedMessages: []string{
			fmt.Sprintf("I'm glad I could help explain %s. %s", p.Term, g.pick(followupClosings)),
		},
		Suggestions:             defaultSuggestions(),
		GuidedChosenSuggestions: g.chosenSuggestions(),
		LabelCandidates:         []string{},
	}
}

// comparisons pairs up ~20% of terms, preferring terms that share a
// word with the first pick, and asks for the difference between them.
func (g *Generator) comparisons(pairs []glossary.Pair) []Conversation {
	count := len(pairs) / 5
	available := append([]glossary.Pair{}, pairs...)

	var out []Conversation
	for i := 0; i < count && len(available) >= 2; i++ {
		first := available[g.rng.Intn(len(available))]

		var related []glossary.Pair
		for _, p := range available {
			if p != first && sharesWord(first, p) {
				related = append(related, p)
			}
		}

		var second glossary.Pair
		if len(related) > 0 {
			second = related[g.rng.Intn(len(related))]
		} else {
			for {
				second = available[g.rng.Intn(len(available))]
				if second != first {
					break
				}
			}
		}

		out = append(out, g.comparison(first, second))
		available = remove(available, first)
		available = remove(available, second)
	}
	return out
}

func (g *Generator) comparison(a, b glossary.Pair) Conversation {
	answer := fmt.Sprintf(g.pick(comparisonAnswers),
		a.Term, b.Term, a.Term, strings.ToLower(a.Definition), b.Term, strings.ToLower(b.Definition))

	return Conversation{
		ID:                g.pickID(),
		Personas:          g.pickPersona(),
		AdditionalContext: fmt.Sprintf("%s vs %s", a.Term, b.Term),
		Context:           g.pick(contexts),
		PreviousUtterance: []string{},
		FreeMessages:      []string{fmt.Sprintf(g.pick(comparisonQuestions), a.Term, b.Term)},
		GuidedMessages:    []string{answer},
		Suggestions: map[string][]string{
			"financial_advice": {
				fmt.Sprintf("Would you like to learn more about %s?", a.Term),
				fmt.Sprintf("I can explain more about %s if you'd like.", b.Term),
				"Let me know if you need clarification on either term.",
			},
			"banking_basics":       bankingSuggestions,
			"investment_knowledge": investmentSuggestions,
		},
		GuidedChosenSuggestions: g.chosenSuggestions(),
		LabelCandidates:         []string{},
	}
}

func (g *Generator) pick(options []string) string {
	return options[g.rng.Intn(len(options))]
}

func (g *Generator) pickPersona() []string {
	return personas[g.rng.Intn(len(personas))]
}

func (g *Generator) pickID() string {
	return uuid.New().String()
}

// chosenSuggestions marks which suggestion pools the guided reply drew
// from; empty slots mean none.
func (g *Generator) chosenSuggestions() []string {
	first := g.pick([]string{"financial_advice", "", ""})
	rest := []string{"banking_basics", "investment_knowledge", "", "", ""}
	i := g.rng.Intn(len(rest))
	j := g.rng.Intn(len(rest) - 1)
	if j >= i {
		j++
	}
	return []string{first, rest[i], rest[j]}
}

func defaultSuggestions() map[string][]string {
	return map[string][]string{
		"financial_advice":     adviceSuggestions,
		"banking_basics":       bankingSuggestions,
		"investment_knowledge": investmentSuggestions,
	}
}

// sharesWord reports whether two pairs look related: any word of one
// term appears in the other term, case-insensitively.
func sharesWord(a, b glossary.Pair) bool {
	bTerm := strings.ToLower(b.Term)
	for _, w := range strings.Fields(strings.ToLower(a.Term)) {
		if strings.Contains(bTerm, w) {
			return true
		}
	}
	return false
}

func remove(pairs []glossary.Pair, target glossary.Pair) []glossary.Pair {
	out := pairs[:0]
	for _, p := range pairs {
		if p != target {
			out = append(out, p)
		}
	}
	return out
}
