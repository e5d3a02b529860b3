package eventrag

// Intent is the closed-set classification of a user query's purpose.
type Intent string

const (
	IntentDates     Intent = "dates"
	IntentVenue     Intent = "venue"
	IntentTicket    Intent = "ticket"
	IntentLogistics Intent = "logistics"
	IntentSideEvent Intent = "side_event"
	IntentSpeakers  Intent = "speakers"
	IntentProgram   Intent = "program"
	IntentFaq       Intent = "faq"
	IntentUnknown   Intent = "unknown"
)

// ParseIntent validates an untrusted classifier tag against the closed
// intent set. Anything unrecognized normalizes to IntentUnknown.
func ParseIntent(s string) Intent {
	switch Intent(s) {
	case IntentDates, IntentVenue, IntentTicket, IntentLogistics,
		IntentSideEvent, IntentSpeakers, IntentProgram, IntentFaq:
		return Intent(s)
	default:
		return IntentUnknown
	}
}
