package dataprocessing

import (
	"offerfeat/pkg/contracts/domain"
)

// RunSummary describes a finished feature table
type RunSummary struct {
	Rows           int     `json:"rows"`
	Persons        int     `json:"persons"`
	OffersReceived int     `json:"offers_received"`
	Successes      int     `json:"successes"`
	SuccessRate    float64 `json:"success_rate"`
	Snapshots      int     `json:"snapshots"`
}

// Summarize counts rows, distinct persons, received offers and successful
// offers. SuccessRate is successes over received offers, 0 when nothing was
// received.
func Summarize(table *domain.FeatureTable) RunSummary {
	var s RunSummary
	if table == nil {
		return s
	}

	persons := make(map[string]struct{})
	for i := range table.Rows {
		row := &table.Rows[i]
		persons[row.PersonID] = struct{}{}
		if row.Event == domain.EventOfferReceived {
			s.OffersReceived++
		}
		if row.OfferSuccess != nil && *row.OfferSuccess == 1 {
			s.Successes++
		}
		s.Snapshots += row.LastInfo
	}

	s.Rows = len(table.Rows)
	s.Persons = len(persons)
	if s.OffersReceived > 0 {
		s.SuccessRate = float64(s.Successes) / float64(s.OffersReceived)
	}
	return s
}
