package dataprocessing

import (
	"fmt"

	"offerfeat/internal/errors"
	"offerfeat/pkg/contracts/domain"
)

// CoalesceOfferID resolves the canonical offer identifier of a transcript
// payload. Received and viewed events spell the key "offer id", completed
// events spell it "offer_id". Precedence is fixed: "offer id" first, then
// "offer_id". Nil means neither key is present.
func CoalesceOfferID(v domain.EventValue) *string {
	if v.OfferIDSpaced != nil {
		return ptr(*v.OfferIDSpaced)
	}
	if v.OfferID != nil {
		return ptr(*v.OfferID)
	}
	return nil
}

// NormalizeEvents flattens raw transcript events into events with a single
// canonical offer_id. Only transactions keep an amount and only offer
// lifecycle events keep an offer_id. The payload reward is dropped; the
// catalog reward is joined back later. Output order matches input order.
//
// An offer lifecycle event without a resolvable offer identifier violates
// the transcript contract and fails the whole run.
func NormalizeEvents(raw []domain.TranscriptEvent) ([]domain.Event, error) {
	events := make([]domain.Event, 0, len(raw))

	for i, rec := range raw {
		ev := domain.Event{
			PersonID: rec.Person,
			Type:     rec.Event,
			Time:     rec.Time,
		}

		if rec.Event.IsOfferLifecycle() {
			ev.OfferID = CoalesceOfferID(rec.Value)
			if ev.OfferID == nil {
				return nil, errors.NewTransformError(
					fmt.Sprintf("event %d (%s, person %s, time %d) has no offer identifier", i, rec.Event, rec.Person, rec.Time),
					nil,
				).WithContext("index", i)
			}
		}

		if rec.Event == domain.EventTransaction && rec.Value.Amount != nil {
			ev.Amount = ptr(*rec.Value.Amount)
		}

		events = append(events, ev)
	}

	return events, nil
}
