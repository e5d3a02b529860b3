package eventrag

import (
	"context"
	"fmt"
	"strings"

	"github.com/fairgate/eventrag/pkg/atomstore"
	"github.com/fairgate/eventrag/pkg/prompts"
)

const (
	humanizeTokenBudget = 300
	learnTokenBudget    = 80

	fallbackData = "Kindly ask more descriptive questions. About dates, tickets, venue, logistics, or programs for example."
)

// retrieve dispatches on the intent and produces the canonical data string
// for the generation step. For side_event it instead returns the final
// answer directly. Intents that need an event keyword fall through to the
// generic fallback when the classifier produced none.
func (a *Assistant) retrieve(ctx context.Context, intent Intent, keyword, query string) (string, *Answer) {
	switch {
	case intent == IntentDates && keyword != "":
		return a.datesData(keyword), nil

	case intent == IntentVenue && keyword != "":
		return a.venueData(keyword), nil

	case intent == IntentTicket && keyword != "":
		return a.ticketData(keyword), nil

	case intent == IntentLogistics && keyword != "":
		return a.logisticsData(keyword), nil

	case intent == IntentSideEvent:
		return "", a.sideEventAnswer()

	case intent == IntentSpeakers && keyword != "":
		return a.speakersData(keyword), nil

	case intent == IntentProgram:
		return a.programData(query), nil

	case intent == IntentFaq:
		return a.faqData(ctx, query, keyword), nil

	default:
		return fallbackData, nil
	}
}

func (a *Assistant) datesData(keyword string) string {
	if dates := a.kb.DateRange(keyword); dates != "" {
		return dates
	}
	return "Dates not announced."
}

func (a *Assistant) venueData(keyword string) string {
	summary := a.kb.EventSummary(keyword)
	venue := summary.Venue
	if venue == "" {
		venue = "TBD"
	}
	data := fmt.Sprintf("%s, %s, %s", venue, summary.City, summary.Country)
	if address := a.kb.VenueAddress(keyword); address != "" {
		data += " | Address: " + address
	}
	return data
}

func (a *Assistant) ticketData(keyword string) string {
	info := a.kb.TicketInfo(keyword)

	tiers := "Not announced"
	if len(info.Tiers) > 0 {
		tiers = strings.Join(info.Tiers, " • ")
	}

	data := "TICKETS: " + tiers
	if info.Payment != "" {
		data += " | PAYMENT: " + info.Payment
	}
	if info.Note != "" {
		data += " | NOTE: " + info.Note
	}
	return data
}

func (a *Assistant) logisticsData(keyword string) string {
	logi := a.kb.Logistics(keyword)

	apps := "Uber, local taxis"
	if len(logi.TransportApps) > 0 {
		apps = strings.Join(logi.TransportApps, ", ")
	}

	hoods := "near venue"
	if len(logi.Neighborhoods) > 0 {
		top := logi.Neighborhoods
		if len(top) > 3 {
			top = top[:3]
		}
		hoods = strings.Join(top, ", ")
	}

	police := logi.Emergency.Police
	if police == "" {
		police = "911"
	}

	crypto := logi.CryptoShops
	if crypto == "" {
		crypto = "Some shops accept crypto"
	}

	return fmt.Sprintf("RIDE APPS: %s | STAY: %s | EMERGENCY: %s | CRYPTO: %s", apps, hoods, police, crypto)
}

// sideEventAnswer builds the final answer without a generation step.
func (a *Assistant) sideEventAnswer() *Answer {
	events := a.kb.SideEvents()
	if len(events) == 0 {
		return &Answer{
			SelectedQuestion: "What are the side events?",
			HumanizedAnswer:  "No side events announced yet.",
		}
	}

	lines := make([]string, 0, len(events))
	for _, event := range events {
		lines = append(lines, fmt.Sprintf("• %s: %s", event.Name, event.Description))
	}
	return &Answer{
		SelectedQuestion: "What are the side events?",
		HumanizedAnswer:  "SIDE EVENTS:\n" + strings.Join(lines, "\n"),
	}
}

func (a *Assistant) speakersData(keyword string) string {
	speakers := a.kb.Speakers(keyword)
	if len(speakers) == 0 {
		return "Speakers to be announced."
	}
	if len(speakers) > 5 {
		speakers = speakers[:5]
	}
	return "SPEAKERS: " + strings.Join(speakers, ", ")
}

// programData sniffs the original query text for a specific program name;
// the classifier only reports the program intent, not which program.
func (a *Assistant) programData(query string) string {
	lower := strings.ToLower(query)
	switch {
	case strings.Contains(lower, "destino"):
		if info := a.kb.Scholarships(); len(info) > 0 {
			return "DESTINO: " + strings.Join(info, " | ")
		}
		return "DESTINO: Free tickets + travel support"
	case strings.Contains(lower, "frens"):
		if info := a.kb.FrensProgram(); len(info) > 0 {
			return "FRENS: " + strings.Join(info, " | ")
		}
		return "FRENS: Community visibility"
	default:
		return "Destino and Frens help builders attend. Check eligibility."
	}
}

// faqData answers from the fact table, or synthesizes an answer and writes
// it through so the next query for the keyword hits the store. Concurrent
// misses for one keyword share a single synthesis; the stored answer is
// re-checked inside the flight so only one atom is appended.
func (a *Assistant) faqData(ctx context.Context, query, keyword string) string {
	if answer, ok := a.kb.FaqAnswer(keyword); ok {
		return answer
	}

	learned, _, _ := a.learning.Do(keyword, func() (interface{}, error) {
		if answer, ok := a.kb.FaqAnswer(keyword); ok {
			return answer, nil
		}
		answer := a.generator.Complete(ctx, prompts.LearnFAQ(query, keyword), learnTokenBudget)
		a.kb.AddKnowledge(atomstore.FaqRelation, keyword, answer)
		a.logger.Info("learned new faq", "keyword", keyword)
		return answer, nil
	})
	return learned.(string)
}
