package dataprocessing

import (
	"gonum.org/v1/gonum/stat"

	"offerfeat/pkg/contracts/domain"
)

// rankKey groups the occurrences of one event type of one offer for one person
type rankKey struct {
	person  string
	offerID string
	event   domain.EventType
}

// momentKey identifies everything a person did at one point in time
type momentKey struct {
	person string
	time   int
}

// occurrenceKey identifies the k-th occurrence of an offer for a person,
// across event types
type occurrenceKey struct {
	person  string
	offerID string
	rank    int
}

// rankState is the per-group dense rank accumulator
type rankState struct {
	lastTime int
	rank     int
}

// AttributeOfferAmounts links transaction amounts to offer completions.
// Rows must be sorted ascending by time.
//
//  1. offer_rank is the dense rank of time within each
//     (person, offer_id, event) group. Transactions have no rank.
//  2. Each "offer completed" row takes the mean amount of the transactions
//     the same person made at exactly the same time.
//  3. Offer rows still without an amount take the mean amount of their
//     (person, offer_id, offer_rank) group, so the k-th receipt of an offer
//     inherits the amount of its k-th completion.
//
// Rows with neither source keep a nil offer_amount.
func AttributeOfferAmounts(rows []domain.FeatureRow) {
	ranks := make(map[rankKey]*rankState)
	purchases := make(map[momentKey][]float64)

	for i := range rows {
		row := &rows[i]

		if row.Event == domain.EventTransaction {
			if row.Amount != nil {
				k := momentKey{person: row.PersonID, time: row.Time}
				purchases[k] = append(purchases[k], *row.Amount)
			}
			continue
		}
		if row.OfferID == nil {
			continue
		}

		k := rankKey{person: row.PersonID, offerID: *row.OfferID, event: row.Event}
		st, seen := ranks[k]
		switch {
		case !seen:
			st = &rankState{lastTime: row.Time, rank: 1}
			ranks[k] = st
		case row.Time != st.lastTime:
			st.lastTime = row.Time
			st.rank++
		}
		row.OfferRank = ptr(st.rank)
	}

	occurrenceAmounts := make(map[occurrenceKey][]float64)

	for i := range rows {
		row := &rows[i]
		if row.Event != domain.EventOfferCompleted {
			continue
		}
		if amounts, ok := purchases[momentKey{person: row.PersonID, time: row.Time}]; ok {
			row.OfferAmount = ptr(stat.Mean(amounts, nil))
		}
		if row.OfferAmount != nil && row.OfferRank != nil {
			k := occurrenceKey{person: row.PersonID, offerID: *row.OfferID, rank: *row.OfferRank}
			occurrenceAmounts[k] = append(occurrenceAmounts[k], *row.OfferAmount)
		}
	}

	for i := range rows {
		row := &rows[i]
		if row.OfferAmount != nil || row.OfferRank == nil {
			continue
		}
		k := occurrenceKey{person: row.PersonID, offerID: *row.OfferID, rank: *row.OfferRank}
		if amounts, ok := occurrenceAmounts[k]; ok {
			row.OfferAmount = ptr(stat.Mean(amounts, nil))
		}
	}
}
