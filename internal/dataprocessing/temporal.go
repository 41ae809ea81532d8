package dataprocessing

import (
	"offerfeat/pkg/contracts/domain"
)

// BuildTemporalFeatures computes days_since_offer, offer_success and
// offer_completed_hist. Rows must be sorted ascending by time.
//
// days_since_offer carries forward, per person, the time of the latest
// "offer received" row seen so far (the current row included) and stays nil
// until the person has received an offer. offer_success is only ever set
// on received rows and offer_completed_hist only on completed rows; every
// other row keeps nil rather than 0.
func BuildTemporalFeatures(rows []domain.FeatureRow) {
	lastReceived := make(map[string]int)

	for i := range rows {
		row := &rows[i]

		if row.Event == domain.EventOfferReceived {
			lastReceived[row.PersonID] = row.Time
		}
		if received, ok := lastReceived[row.PersonID]; ok {
			row.DaysSinceOffer = ptr(row.Time - received)
		}

		paid := row.OfferAmount != nil && *row.OfferAmount > 0
		switch {
		case paid && row.Event == domain.EventOfferReceived:
			row.OfferSuccess = ptr(1)
		case paid && row.Event == domain.EventOfferCompleted:
			row.OfferCompletedHist = ptr(*row.OfferAmount)
		}
	}
}
