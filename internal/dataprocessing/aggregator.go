package dataprocessing

import (
	"offerfeat/pkg/contracts/domain"
)

// runningTotals is the per-person prefix-sum state
type runningTotals struct {
	offerCum   []float64
	amount     float64
	successCnt int
}

// AccumulateTotals computes the per-person running totals. Rows must be
// sorted ascending by time and encoded. Nils count as 0 while summing and
// are left nil on the rows.
//
//   - offer_cum_<id>: running sum of offer_id_<id> times the completed
//     amount (offer_completed_hist on "offer completed" rows, else 0)
//   - amount_cum: running sum of amount
//   - offer_success_cum: running count of offer_success
//
// Every value includes the current row.
func AccumulateTotals(table *domain.FeatureTable) {
	totals := make(map[string]*runningTotals)
	width := len(table.OfferCategories)

	for i := range table.Rows {
		row := &table.Rows[i]

		t, ok := totals[row.PersonID]
		if !ok {
			t = &runningTotals{offerCum: make([]float64, width)}
			totals[row.PersonID] = t
		}

		completed := 0.0
		if row.Event == domain.EventOfferCompleted && row.OfferCompletedHist != nil {
			completed = *row.OfferCompletedHist
		}
		for k, indicator := range row.OfferIndicators {
			t.offerCum[k] += float64(indicator) * completed
		}

		if row.Amount != nil {
			t.amount += *row.Amount
		}
		if row.OfferSuccess != nil {
			t.successCnt += *row.OfferSuccess
		}

		row.OfferCumAmounts = append([]float64(nil), t.offerCum...)
		row.AmountCum = t.amount
		row.OfferSuccessCum = t.successCnt
	}
}
