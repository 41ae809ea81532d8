package dataprocessing

import (
	"offerfeat/pkg/contracts/domain"
)

// ProcessingOptions configures the constants the transform stages depend on
type ProcessingOptions struct {
	// AgeSentinel is the age value that means "not informed"
	AgeSentinel int

	// MemberDateLayout parses became_member_on, rendered as a decimal integer
	MemberDateLayout string

	// UnknownGender replaces a missing gender
	UnknownGender string

	// FailLabel is the selected_offer value for rows without a successful offer
	FailLabel string
}

// DefaultOptions returns default processing options
func DefaultOptions() ProcessingOptions {
	return ProcessingOptions{
		AgeSentinel:      domain.AgeUnknown,
		MemberDateLayout: "20060102",
		UnknownGender:    "na",
		FailLabel:        "offer_fail",
	}
}

// withDefaults fills zero-valued fields from DefaultOptions
func (o ProcessingOptions) withDefaults() ProcessingOptions {
	def := DefaultOptions()
	if o.AgeSentinel == 0 {
		o.AgeSentinel = def.AgeSentinel
	}
	if o.MemberDateLayout == "" {
		o.MemberDateLayout = def.MemberDateLayout
	}
	if o.UnknownGender == "" {
		o.UnknownGender = def.UnknownGender
	}
	if o.FailLabel == "" {
		o.FailLabel = def.FailLabel
	}
	return o
}

func ptr[T any](v T) *T {
	return &v
}
