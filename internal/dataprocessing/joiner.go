package dataprocessing

import (
	"fmt"
	"sort"

	"offerfeat/internal/errors"
	"offerfeat/pkg/contracts/domain"
)

// JoinDatasets left-joins events to the offer catalog on offer_id and then
// to the enriched profiles on person_id, producing one feature row per
// event. Unmatched keys leave the joined columns nil; rows are never
// dropped. The result is stable-sorted by time, ties keeping input order,
// which every later stage relies on.
//
// Offer and profile identifiers must be unique, otherwise a join would
// duplicate event rows.
func JoinDatasets(events []domain.Event, offers []domain.Offer, profiles []domain.MemberProfile) ([]domain.FeatureRow, error) {
	offerByID := make(map[string]*domain.Offer, len(offers))
	for i := range offers {
		if _, dup := offerByID[offers[i].ID]; dup {
			return nil, errors.NewTransformError(fmt.Sprintf("duplicate offer id %s in catalog", offers[i].ID), nil)
		}
		offerByID[offers[i].ID] = &offers[i]
	}

	profileByID := make(map[string]*domain.MemberProfile, len(profiles))
	for i := range profiles {
		if _, dup := profileByID[profiles[i].ID]; dup {
			return nil, errors.NewTransformError(fmt.Sprintf("duplicate person id %s in profiles", profiles[i].ID), nil)
		}
		profileByID[profiles[i].ID] = &profiles[i]
	}

	rows := make([]domain.FeatureRow, len(events))
	for i, ev := range events {
		row := domain.FeatureRow{
			PersonID: ev.PersonID,
			Event:    ev.Type,
			Time:     ev.Time,
		}
		if ev.Amount != nil {
			row.Amount = ptr(*ev.Amount)
		}

		if ev.OfferID != nil {
			row.OfferID = ptr(*ev.OfferID)
			if offer, ok := offerByID[*ev.OfferID]; ok {
				row.OfferType = ptr(string(offer.OfferType))
				row.Difficulty = ptr(offer.Difficulty)
				row.Reward = ptr(offer.Reward)
				row.Duration = ptr(offer.Duration)
			}
		}

		if p, ok := profileByID[ev.PersonID]; ok {
			row.Gender = ptr(p.Gender)
			if p.Age != nil {
				row.Age = ptr(*p.Age)
			}
			if p.Income != nil {
				row.Income = ptr(*p.Income)
			}
			row.BecameMemberOn = ptr(p.BecameMemberOn)
			row.DaysAsMember = ptr(p.DaysAsMember)
			row.IncomeInformed = ptr(p.IncomeInformed)
			row.AgeInformed = ptr(p.AgeInformed)
		}

		rows[i] = row
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Time < rows[j].Time
	})

	return rows, nil
}
