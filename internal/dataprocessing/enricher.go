package dataprocessing

import (
	"fmt"
	"strconv"
	"time"

	"gonum.org/v1/gonum/stat"

	"offerfeat/internal/errors"
	"offerfeat/pkg/contracts/domain"
)

const secondsPerDay = 24 * 60 * 60

// ProfileEnricher derives tenure and missing-value indicator features
type ProfileEnricher struct {
	opts ProcessingOptions
}

// NewProfileEnricher creates a new profile enricher
func NewProfileEnricher(opts ProcessingOptions) *ProfileEnricher {
	return &ProfileEnricher{opts: opts.withDefaults()}
}

// Enrich returns one enriched profile per input profile, in input order.
//
// days_as_member is measured against the latest membership date in the
// whole profile set, not the wall clock, so reruns on the same snapshot
// agree. Missing income is imputed with the mean of the informed incomes,
// computed before imputation. The raw age is kept even when it is the
// sentinel.
func (e *ProfileEnricher) Enrich(profiles []domain.Profile) ([]domain.MemberProfile, error) {
	out := make([]domain.MemberProfile, len(profiles))
	if len(profiles) == 0 {
		return out, nil
	}

	var latest time.Time
	incomes := make([]float64, 0, len(profiles))

	for i, p := range profiles {
		since, err := e.parseMemberDate(p.BecameMemberOn)
		if err != nil {
			return nil, errors.NewParsingError(fmt.Sprintf("profile %s: invalid became_member_on", p.ID), err).
				WithContext("index", i)
		}
		if since.After(latest) {
			latest = since
		}
		if p.Income != nil {
			incomes = append(incomes, *p.Income)
		}

		out[i] = domain.MemberProfile{
			ID:             p.ID,
			Gender:         e.opts.UnknownGender,
			BecameMemberOn: since,
			IncomeInformed: boolToInt(p.Income != nil),
			AgeInformed:    boolToInt(p.Age != nil && *p.Age != e.opts.AgeSentinel),
		}
		if p.Gender != nil {
			out[i].Gender = *p.Gender
		}
		if p.Age != nil {
			out[i].Age = ptr(*p.Age)
		}
		if p.Income != nil {
			out[i].Income = ptr(*p.Income)
		}
	}

	// With no informed income at all there is nothing to impute from
	var meanIncome *float64
	if len(incomes) > 0 {
		meanIncome = ptr(stat.Mean(incomes, nil))
	}

	for i := range out {
		out[i].DaysAsMember = daysBetween(out[i].BecameMemberOn, latest)
		if out[i].Income == nil && meanIncome != nil {
			out[i].Income = ptr(*meanIncome)
		}
	}

	return out, nil
}

func (e *ProfileEnricher) parseMemberDate(v int) (time.Time, error) {
	return time.Parse(e.opts.MemberDateLayout, strconv.Itoa(v))
}

// daysBetween counts whole calendar days from since to until. It works on
// Unix seconds because time.Duration saturates after about 292 years.
func daysBetween(since, until time.Time) int {
	return int((until.Unix() - since.Unix()) / secondsPerDay)
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
