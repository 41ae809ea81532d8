package domain

import (
	"time"
)

// FeatureRow is one output row of the feature table. There is exactly one
// row per transcript event. Nil pointers are missing values.
type FeatureRow struct {
	PersonID string
	Event    EventType
	Time     int
	Amount   *float64
	OfferID  *string

	// Offer catalog attributes, nil when the row has no known offer
	OfferType  *string
	Difficulty *float64
	Reward     *float64
	Duration   *float64

	// Profile attributes, nil when the person has no profile
	Gender         *string
	Age            *int
	Income         *float64
	BecameMemberOn *time.Time
	DaysAsMember   *int
	IncomeInformed *int
	AgeInformed    *int

	OfferRank   *int
	OfferAmount *float64

	DaysSinceOffer     *int
	OfferSuccess       *int
	OfferCompletedHist *float64

	// Indexed like FeatureTable.GenderCategories / OfferCategories
	GenderIndicators []int
	OfferIndicators  []int
	OfferCumAmounts  []float64

	AmountCum       float64
	OfferSuccessCum int

	SelectedOffer string
	LastInfo      int
}

// FeatureTable is the ordered feature rows together with the sorted
// category sets that define the one-hot columns.
type FeatureTable struct {
	GenderCategories []string
	OfferCategories  []string
	Rows             []FeatureRow
}

// Len returns the number of rows in the table
func (t *FeatureTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Rows)
}
