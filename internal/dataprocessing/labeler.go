package dataprocessing

import (
	"offerfeat/pkg/contracts/domain"
)

// BuildLabels sets the training target and the inference snapshot flag.
//
// selected_offer is the row's offer_id when offer_success is 1 and
// failLabel otherwise. last_info is 1 on every row at the person's latest
// time, so ties at that time are all flagged, and 0 elsewhere.
func BuildLabels(table *domain.FeatureTable, failLabel string) {
	if failLabel == "" {
		failLabel = DefaultOptions().FailLabel
	}

	latest := make(map[string]int)
	for i := range table.Rows {
		row := &table.Rows[i]
		if t, ok := latest[row.PersonID]; !ok || row.Time > t {
			latest[row.PersonID] = row.Time
		}
	}

	for i := range table.Rows {
		row := &table.Rows[i]

		row.SelectedOffer = failLabel
		if row.OfferSuccess != nil && *row.OfferSuccess == 1 && row.OfferID != nil {
			row.SelectedOffer = *row.OfferID
		}

		row.LastInfo = boolToInt(row.Time == latest[row.PersonID])
	}
}
