package domain

// OfferType represents the kind of promotional offer
type OfferType string

const (
	OfferTypeBOGO          OfferType = "bogo"
	OfferTypeDiscount      OfferType = "discount"
	OfferTypeInformational OfferType = "informational"
)

// Offer is one entry of the offer catalog (the "portfolio" dataset).
// Catalog entries are reference data and are never modified by the pipeline.
type Offer struct {
	ID         string    `json:"id" validate:"required"`
	OfferType  OfferType `json:"offer_type"`
	Difficulty float64   `json:"difficulty"`
	Reward     float64   `json:"reward"`
	Duration   float64   `json:"duration"`
	Channels   []string  `json:"channels"`
}
