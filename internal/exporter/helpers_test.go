package exporter

import (
	"time"

	"offerfeat/pkg/contracts/domain"
)

func strp(s string) *string { return &s }
func fp(f float64) *float64 { return &f }
func ip(i int) *int { return &i }

func sampleTable() *domain.FeatureTable {
	since := time.Date(2017, 7, 15, 0, 0, 0, 0, time.UTC)
	return &domain.FeatureTable{
		GenderCategories: []string{"F", "M"},
		OfferCategories:  []string{"A", "B"},
		Rows: []domain.FeatureRow{
			{
				PersonID: "P", Event: domain.EventOfferReceived, Time: 0, OfferID: strp("A"),
				OfferType: strp("bogo"), Difficulty: fp(10), Reward: fp(10), Duration: fp(7),
				Gender: strp("F"), Age: ip(55), Income: fp(100000), BecameMemberOn: &since,
				DaysAsMember: ip(376), IncomeInformed: ip(1), AgeInformed: ip(1),
				OfferRank: ip(1), OfferAmount: fp(12), DaysSinceOffer: ip(0), OfferSuccess: ip(1),
				GenderIndicators: []int{1, 0}, OfferIndicators: []int{1, 0}, OfferCumAmounts: []float64{0, 0},
				OfferSuccessCum: 1, SelectedOffer: "A",
			},
			{
				PersonID: "P", Event: domain.EventTransaction, Time: 5, Amount: fp(12.5),
				Gender: strp("F"), Age: ip(55), Income: fp(100000), BecameMemberOn: &since,
				DaysAsMember: ip(376), IncomeInformed: ip(1), AgeInformed: ip(1),
				DaysSinceOffer: ip(5),
				GenderIndicators: []int{1, 0}, OfferIndicators: []int{0, 0}, OfferCumAmounts: []float64{0, 0},
				AmountCum: 12.5, OfferSuccessCum: 1, SelectedOffer: "offer_fail", LastInfo: 1,
			},
			{
				PersonID: "S", Event: domain.EventOfferReceived, Time: 5, OfferID: strp("B"),
				OfferRank: ip(1), DaysSinceOffer: ip(0),
				GenderIndicators: []int{0, 0}, OfferIndicators: []int{0, 1}, OfferCumAmounts: []float64{0, 0},
				SelectedOffer: "offer_fail", LastInfo: 1,
			},
		},
	}
}
