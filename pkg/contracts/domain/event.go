package domain

// EventType represents the kind of transcript event
type EventType string

const (
	EventOfferReceived  EventType = "offer received"
	EventOfferViewed    EventType = "offer viewed"
	EventOfferCompleted EventType = "offer completed"
	EventTransaction    EventType = "transaction"
)

// IsOfferLifecycle reports whether events of this type reference an offer
func (t EventType) IsOfferLifecycle() bool {
	switch t {
	case EventOfferReceived, EventOfferViewed, EventOfferCompleted:
		return true
	}
	return false
}

// TranscriptEvent is a raw transcript record as found in the event log.
// The offer identifier appears as "offer id" on received/viewed events and
// as "offer_id" on completed events.
type TranscriptEvent struct {
	Person string     `json:"person" validate:"required"`
	Event  EventType  `json:"event" validate:"required,oneof='offer received' 'offer viewed' 'offer completed' 'transaction'"`
	Time   int        `json:"time" validate:"min=0"`
	Value  EventValue `json:"value"`
}

// EventValue is the type-dependent payload of a transcript event
type EventValue struct {
	OfferIDSpaced *string  `json:"offer id"`
	OfferID       *string  `json:"offer_id"`
	Amount        *float64 `json:"amount"`
	Reward        *float64 `json:"reward"`
}

// Event is a transcript event with a single canonical offer identifier
type Event struct {
	PersonID string
	Type     EventType
	Time     int
	OfferID  *string
	Amount   *float64
}
