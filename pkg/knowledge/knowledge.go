package knowledge

import (
	"fmt"
	"strings"

	"github.com/fairgate/eventrag/pkg/atomstore"
)

// KnownEventKeys are the seeded event subjects. SearchEvents scans only
// these; the fact base is scoped to a small fixed set of events and does
// not discover subjects dynamically.
var KnownEventKeys = []string{"devconnect", "breakpoint"}

// EventSummary is a composed view of one event, recomputed per call.
type EventSummary struct {
	Name        string `json:"name"`
	Organizer   string `json:"organizer"`
	Dates       string `json:"dates"`
	Venue       string `json:"venue"`
	City        string `json:"city"`
	Country     string `json:"country"`
	Description string `json:"description"`
}

// TicketInfo holds ticketing details for one event.
type TicketInfo struct {
	Tiers   []string `json:"tiers"`
	Payment string   `json:"payment"`
	Note    string   `json:"note"`
}

// EmergencyNumbers holds local emergency contacts.
type EmergencyNumbers struct {
	Police    string `json:"police"`
	Ambulance string `json:"ambulance"`
	Fire      string `json:"fire"`
}

// Logistics holds travel, transport, safety and crypto facts for one event.
type Logistics struct {
	TransportApps []string         `json:"transport_apps"`
	Neighborhoods []string         `json:"neighborhoods"`
	CryptoShops   string           `json:"crypto_shops"`
	CryptoMap     string           `json:"crypto_map"`
	Emergency     EmergencyNumbers `json:"emergency"`
	SafetyTips    []string         `json:"safety_tips"`
	Timezone      string           `json:"timezone"`
	Currency      string           `json:"currency"`
}

// SideEvent is one tuple-shaped side-event fact.
type SideEvent struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Program is one named program fact (Destino, Frens, ...).
type Program struct {
	Key         string `json:"key"`
	Description string `json:"description"`
}

// Base composes higher-level queries over the atom store. Every query
// substitutes an explicit default for missing facts; none of them return
// an error.
type Base struct {
	store *atomstore.Store
}

// NewBase creates a knowledge base over the given store.
func NewBase(store *atomstore.Store) *Base {
	return &Base{store: store}
}

// Store exposes the underlying atom store.
func (b *Base) Store() *atomstore.Store {
	return b.store
}

// first returns the first literal for (relation, key), or the empty string.
func (b *Base) first(relation, key string) string {
	values, err := b.store.MatchLiteral(relation, key)
	if err != nil {
		return ""
	}
	return values[0]
}

// all returns every literal for (relation, key), or nil.
func (b *Base) all(relation, key string) []string {
	values, err := b.store.MatchLiteral(relation, key)
	if err != nil {
		return nil
	}
	return values
}

// EventSummary assembles the full overview of one event. The name falls
// back through event_fullname, event, and finally the raw key; the
// description falls back through event_description then short_desc.
func (b *Base) EventSummary(key string) EventSummary {
	name := b.first("event_fullname", key)
	if name == "" {
		name = b.first("event", key)
	}
	if name == "" {
		name = key
	}

	description := b.first("event_description", key)
	if description == "" {
		description = b.first("short_desc", key)
	}

	return EventSummary{
		Name:        name,
		Organizer:   b.first("organiser", key),
		Dates:       b.first("date_range", key),
		Venue:       b.first("venue", key),
		City:        b.first("venue_city", key),
		Country:     b.first("venue_country", key),
		Description: description,
	}
}

// DateRange returns the announced date range for one event.
func (b *Base) DateRange(key string) string {
	return b.first("date_range", key)
}

// VenueAddress returns the street address of the event venue.
func (b *Base) VenueAddress(key string) string {
	return b.first("venue_address", key)
}

// TicketInfo returns all ticketing details for one event.
func (b *Base) TicketInfo(key string) TicketInfo {
	return TicketInfo{
		Tiers:   b.TicketTiers(key),
		Payment: b.first("ticket_payment_methods", key),
		Note:    b.first("ticket_note", key),
	}
}

// TicketTiers returns the ticket tiers for one event, in seeded order.
func (b *Base) TicketTiers(key string) []string {
	return b.all("ticket_tier", key)
}

// Logistics returns travel, transport, safety and crypto facts for one event.
func (b *Base) Logistics(key string) Logistics {
	apps, err := b.store.MatchSymbol("transport_app", key)
	if err != nil {
		apps = nil
	}
	return Logistics{
		TransportApps: apps,
		Neighborhoods: b.Neighborhoods(key),
		CryptoShops:   b.first("crypto_in_local_shops", key),
		CryptoMap:     b.first("crypto_merchant_map", key),
		Emergency: EmergencyNumbers{
			Police:    b.first("emergency_number_police", key),
			Ambulance: b.first("emergency_number_ambulance", key),
			Fire:      b.first("emergency_number_fire", key),
		},
		SafetyTips: b.all("safety_tip", key),
		Timezone:   b.first("timezone", key),
		Currency:   b.first("currency", key),
	}
}

// Neighborhoods returns the recommended neighborhoods for one event.
func (b *Base) Neighborhoods(key string) []string {
	return b.all("recommended_neighborhood", key)
}

// SideEvents returns every side event in seeded order.
func (b *Base) SideEvents() []SideEvent {
	pairs := b.store.MatchPair("side_event")
	events := make([]SideEvent, 0, len(pairs))
	for _, p := range pairs {
		events = append(events, SideEvent{Name: p.Name, Description: p.Description})
	}
	return events
}

// Speakers returns the speakers for one event.
func (b *Base) Speakers(key string) []string {
	return b.all("speaker", key)
}

// Programs returns every program fact (Destino, Frens, ...).
func (b *Base) Programs() []Program {
	pairs := b.store.MatchPair("program")
	programs := make([]Program, 0, len(pairs))
	for _, p := range pairs {
		programs = append(programs, Program{Key: p.Name, Description: p.Description})
	}
	return programs
}

// PreEvents returns regional events running ahead of the main event.
func (b *Base) PreEvents(key string) []string {
	return b.all("pre_event", key)
}

// VisaInfo returns visa programme notes for one event.
func (b *Base) VisaInfo(key string) []string {
	return b.all("visa_program", key)
}

// WeatherNote returns seasonal temperature notes for one event.
func (b *Base) WeatherNote(key string) []string {
	return b.all("avg_temp_november", key)
}

// Scholarships returns Destino scholarship facts.
func (b *Base) Scholarships() []string {
	return b.all("destino_scholarship", "devconnect_destino")
}

// FrensProgram returns Frens eligibility facts.
func (b *Base) FrensProgram() []string {
	return b.all("frens_eligibility", "devconnect_frens")
}

// FaqAnswer returns the stored answer for a keyword. A false result is the
// signal for the caller's learning path.
func (b *Base) FaqAnswer(keyword string) (string, bool) {
	answer, err := b.store.MatchFaq(keyword)
	if err != nil {
		return "", false
	}
	return answer, true
}

// AddKnowledge appends one literal fact and returns a confirmation. The
// relation is not validated against the known vocabulary and duplicates
// are not rejected.
func (b *Base) AddKnowledge(relation, subject, value string) string {
	b.store.Add(relation, subject, atomstore.Literal(value))
	return fmt.Sprintf("Added %s: %s → %s", relation, subject, value)
}

// SearchEvents scans the summaries of the known event keys for a
// case-insensitive substring match. It is deliberately scoped to the fixed
// key list rather than indexing all subjects.
func (b *Base) SearchEvents(keyword string) []string {
	keyword = strings.ToLower(keyword)
	var matches []string
	for _, key := range KnownEventKeys {
		summary := b.EventSummary(key)
		fields := []string{
			summary.Name, summary.Organizer, summary.Dates,
			summary.Venue, summary.City, summary.Country, summary.Description,
		}
		for _, field := range fields {
			if field != "" && strings.Contains(strings.ToLower(field), keyword) {
				matches = append(matches, key)
				break
			}
		}
	}
	return matches
}
