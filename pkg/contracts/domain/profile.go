package domain

import (
	"time"
)

// AgeUnknown is the sentinel age the profile dataset uses for "not informed"
const AgeUnknown = 118

// Profile is a raw customer profile record
type Profile struct {
	ID             string   `json:"id" validate:"required"`
	Gender         *string  `json:"gender"`
	Age            *int     `json:"age"`
	Income         *float64 `json:"income"`
	BecameMemberOn int      `json:"became_member_on" validate:"required"`
}

// MemberProfile is a profile after enrichment: gender filled, income imputed,
// tenure and missing-value indicators derived.
type MemberProfile struct {
	ID             string
	Gender         string
	Age            *int
	Income         *float64
	BecameMemberOn time.Time
	DaysAsMember   int
	IncomeInformed int
	AgeInformed    int
}
