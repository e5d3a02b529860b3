package eventrag_test

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fairgate/eventrag"
	"github.com/fairgate/eventrag/pkg/knowledge"
	"github.com/fairgate/eventrag/pkg/nlp"
)

// stubClassifier returns a fixed classification for every query.
type stubClassifier struct {
	intent  string
	keyword string
}

func (s stubClassifier) Classify(_ context.Context, _ string) nlp.Classification {
	return nlp.Classification{Intent: s.intent, Keyword: s.keyword}
}

// scriptedGenerator replays canned responses and records every prompt it
// receives. Once the script runs out it returns the transport sentinel,
// like the real generator under failure.
type scriptedGenerator struct {
	mu        sync.Mutex
	responses []string
	prompts   []string
}

func (g *scriptedGenerator) Complete(_ context.Context, prompt string, _ int) string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.prompts = append(g.prompts, prompt)
	if len(g.responses) == 0 {
		return nlp.FailureSentinel
	}
	response := g.responses[0]
	g.responses = g.responses[1:]
	return response
}

func (g *scriptedGenerator) promptsContaining(substr string) int {
	g.mu.Lock()
	defer g.mu.Unlock()
	count := 0
	for _, p := range g.prompts {
		if strings.Contains(p, substr) {
			count++
		}
	}
	return count
}

func newAssistant(t *testing.T, classifier eventrag.Classifier, generator eventrag.Generator) *eventrag.Assistant {
	t.Helper()
	kb, err := knowledge.NewSeededBase()
	require.NoError(t, err)
	return eventrag.NewAssistant(kb, classifier, generator, nil)
}

func TestAnswerVenue(t *testing.T) {
	gen := &scriptedGenerator{responses: []string{
		"Selected Question: Where does Breakpoint take place?\nHumanized Answer: Etihad Arena, Abu Dhabi, United Arab Emirates",
	}}
	assistant := newAssistant(t, stubClassifier{intent: "venue", keyword: "breakpoint"}, gen)

	answer := assistant.Answer(context.Background(), "where is breakpoint held?")
	assert.Equal(t, "Where does Breakpoint take place?", answer.SelectedQuestion)
	assert.Equal(t, "Etihad Arena, Abu Dhabi, United Arab Emirates", answer.HumanizedAnswer)

	// The composed instruction embeds the retrieved data verbatim, and
	// breakpoint has no address fact so there is no Address suffix.
	require.Len(t, gen.prompts, 1)
	assert.Contains(t, gen.prompts[0], "Etihad Arena, Abu Dhabi, United Arab Emirates")
	assert.NotContains(t, gen.prompts[0], "| Address:")
}

func TestAnswerVenueWithAddress(t *testing.T) {
	gen := &scriptedGenerator{}
	assistant := newAssistant(t, stubClassifier{intent: "venue", keyword: "devconnect"}, gen)

	answer := assistant.Answer(context.Background(), "where is devconnect?")
	assert.Contains(t, answer.HumanizedAnswer, "La Rural, Buenos Aires, Argentina | Address: Av. Sarmiento 2704")
}

func TestAnswerTicketFallsBackToData(t *testing.T) {
	// A single-line generation response fails the two-line contract, so
	// the answer must be exactly {original query, raw data}.
	gen := &scriptedGenerator{responses: []string{"TICKETS start at $100"}}
	assistant := newAssistant(t, stubClassifier{intent: "ticket", keyword: "breakpoint"}, gen)

	query := "how much are breakpoint tickets?"
	answer := assistant.Answer(context.Background(), query)
	assert.Equal(t, query, answer.SelectedQuestion)
	assert.Equal(t,
		"TICKETS: general_admission:$500 • developer:$250 • artist:$250 • student:$100",
		answer.HumanizedAnswer,
		"breakpoint has no payment or note facts, so no suffix is appended")
}

func TestAnswerTicketWithPaymentAndNote(t *testing.T) {
	gen := &scriptedGenerator{}
	assistant := newAssistant(t, stubClassifier{intent: "ticket", keyword: "devconnect"}, gen)

	answer := assistant.Answer(context.Background(), "devconnect ticket prices?")
	assert.Contains(t, answer.HumanizedAnswer, "TICKETS: General: USD 120")
	assert.Contains(t, answer.HumanizedAnswer, "| PAYMENT: Crypto Payment via Daimo Pay or Fiat via Stripe")
	assert.Contains(t, answer.HumanizedAnswer, "| NOTE: World's Fair ticket gating")
}

func TestAnswerDates(t *testing.T) {
	gen := &scriptedGenerator{}
	assistant := newAssistant(t, stubClassifier{intent: "dates", keyword: "breakpoint"}, gen)

	answer := assistant.Answer(context.Background(), "when is breakpoint?")
	assert.Equal(t, "2025-12-11 to 2025-12-13", answer.HumanizedAnswer)

	missing := newAssistant(t, stubClassifier{intent: "dates", keyword: "ethdenver"}, &scriptedGenerator{})
	answer = missing.Answer(context.Background(), "when is ethdenver?")
	assert.Equal(t, "Dates not announced.", answer.HumanizedAnswer)
}

func TestAnswerLogistics(t *testing.T) {
	gen := &scriptedGenerator{}
	assistant := newAssistant(t, stubClassifier{intent: "logistics", keyword: "devconnect"}, gen)

	answer := assistant.Answer(context.Background(), "how do I get around in buenos aires?")
	assert.Contains(t, answer.HumanizedAnswer, "RIDE APPS: Cabify, Didi, Uber")
	assert.Contains(t, answer.HumanizedAnswer, "| EMERGENCY: 911")
	assert.Contains(t, answer.HumanizedAnswer, "| CRYPTO: 100+ cafés")

	// Only the first three neighborhoods make the composite line.
	assert.Contains(t, answer.HumanizedAnswer, "Palermo Chico")
	assert.NotContains(t, answer.HumanizedAnswer, "Recoleta")
}

func TestAnswerLogisticsDefaults(t *testing.T) {
	gen := &scriptedGenerator{}
	assistant := newAssistant(t, stubClassifier{intent: "logistics", keyword: "breakpoint"}, gen)

	answer := assistant.Answer(context.Background(), "getting around abu dhabi?")
	assert.Equal(t,
		"RIDE APPS: Uber, local taxis | STAY: near venue | EMERGENCY: 911 | CRYPTO: Some shops accept crypto",
		answer.HumanizedAnswer)
}

func TestAnswerSideEventsBypassesGeneration(t *testing.T) {
	gen := &scriptedGenerator{}
	assistant := newAssistant(t, stubClassifier{intent: "side_event"}, gen)

	answer := assistant.Answer(context.Background(), "what side events are there?")
	assert.Equal(t, "What are the side events?", answer.SelectedQuestion)
	assert.Empty(t, gen.prompts, "side_event must not invoke the generator")

	lines := strings.Split(answer.HumanizedAnswer, "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "SIDE EVENTS:", lines[0])
	assert.Equal(t, "• staking_summit: Nov 15-16 — Staking Summit (tickets required)", lines[1])
	assert.Equal(t, "• governance_day: Nov 15 — Governance Day (Main)", lines[4])
}

func TestAnswerSpeakers(t *testing.T) {
	gen := &scriptedGenerator{}
	assistant := newAssistant(t, stubClassifier{intent: "speakers", keyword: "breakpoint"}, gen)

	answer := assistant.Answer(context.Background(), "who speaks at breakpoint?")
	assert.True(t, strings.HasPrefix(answer.HumanizedAnswer, "SPEAKERS: Lily Liu"))

	none := newAssistant(t, stubClassifier{intent: "speakers", keyword: "ethdenver"}, &scriptedGenerator{})
	answer = none.Answer(context.Background(), "who speaks at ethdenver?")
	assert.Equal(t, "Speakers to be announced.", answer.HumanizedAnswer)
}

func TestAnswerProgramSniffsQueryText(t *testing.T) {
	tests := []struct {
		query string
		want  string
	}{
		{"tell me about Destino support", "DESTINO: Scholarship funding available"},
		{"how do the Frens work?", "FRENS: Universities, startups"},
		{"what programs exist?", "Destino and Frens help builders attend. Check eligibility."},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			assistant := newAssistant(t, stubClassifier{intent: "program"}, &scriptedGenerator{})
			answer := assistant.Answer(context.Background(), tt.query)
			assert.Contains(t, answer.HumanizedAnswer, tt.want)
		})
	}
}

func TestAnswerUnknownIntent(t *testing.T) {
	for _, intent := range []string{"unknown", "", "weather", "dates"} {
		// "dates" with an empty keyword also lands on the fallback.
		assistant := newAssistant(t, stubClassifier{intent: intent}, &scriptedGenerator{})
		answer := assistant.Answer(context.Background(), "hmm?")
		assert.Equal(t, "hmm?", answer.SelectedQuestion)
		assert.Equal(t,
			"Kindly ask more descriptive questions. About dates, tickets, venue, logistics, or programs for example.",
			answer.HumanizedAnswer)
	}
}

func TestAnswerFaqLearnsOnMiss(t *testing.T) {
	learned := "Yes, many nationalities can get a UAE visa on arrival."
	gen := &scriptedGenerator{responses: []string{learned}}
	assistant := newAssistant(t, stubClassifier{intent: "faq", keyword: "uae_visa_on_arrival"}, gen)

	query := "can I get a visa on arrival for breakpoint?"
	answer := assistant.Answer(context.Background(), query)
	assert.Equal(t, learned, answer.HumanizedAnswer, "humanize fell back to the freshly learned data")
	assert.Equal(t, 1, gen.promptsContaining("Answer in 1 short sentence"))

	// The learned fact is stored; a second query reuses it without a new
	// synthesis call.
	stored, ok := assistant.Knowledge().FaqAnswer("uae_visa_on_arrival")
	require.True(t, ok)
	assert.Equal(t, learned, stored)

	assistant.Answer(context.Background(), query)
	assert.Equal(t, 1, gen.promptsContaining("Answer in 1 short sentence"))
}

func TestAnswerFaqSeededHitSkipsSynthesis(t *testing.T) {
	gen := &scriptedGenerator{responses: []string{
		"Selected Question: What is Breakpoint?\nHumanized Answer: Breakpoint is Solana's flagship conference for builders, creators and investors; 2025 edition in Abu Dhabi.",
	}}
	assistant := newAssistant(t, stubClassifier{intent: "faq", keyword: "what_is_breakpoint"}, gen)

	answer := assistant.Answer(context.Background(), "what is breakpoint?")
	assert.Contains(t, answer.HumanizedAnswer, "Solana's flagship conference")
	assert.Equal(t, 0, gen.promptsContaining("Answer in 1 short sentence"))
}

func TestAnswerFaqConcurrentMissesSynthesizeOnce(t *testing.T) {
	gen := &scriptedGenerator{responses: []string{
		"The venue wifi is announced on-site.",
	}}
	assistant := newAssistant(t, stubClassifier{intent: "faq", keyword: "venue_wifi"}, gen)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assistant.Answer(context.Background(), "is there wifi at the venue?")
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, gen.promptsContaining("Answer in 1 short sentence"))

	values, err := assistant.Knowledge().Store().MatchLiteral("faq", "venue_wifi")
	require.NoError(t, err)
	assert.Equal(t, []string{"The venue wifi is announced on-site."}, values, "exactly one learned atom")
}
