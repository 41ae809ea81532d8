package exporter

import (
	"strconv"

	"offerfeat/pkg/contracts/domain"
)

// MemberDateFormat renders became_member_on in every output
const MemberDateFormat = "2006-01-02 15:04:05"

// SQLType is the declared storage type of a column
type SQLType string

const (
	SQLText    SQLType = "TEXT"
	SQLInteger SQLType = "INTEGER"
	SQLReal    SQLType = "REAL"
)

// Column is one output column of the feature table
type Column struct {
	Name  string
	Type  SQLType
	value func(r *domain.FeatureRow) interface{}
}

// Value returns the typed cell value of row, or nil for a missing value
func (c Column) Value(r *domain.FeatureRow) interface{} {
	return c.value(r)
}

// Columns returns the output columns of table in their fixed order: event,
// offer, profile and derived columns, then gender_*, offer_id_* and
// offer_cum_*, then the cumulative and label columns.
func Columns(table *domain.FeatureTable) []Column {
	cols := []Column{
		{"person", SQLText, func(r *domain.FeatureRow) interface{} { return r.PersonID }},
		{"event", SQLText, func(r *domain.FeatureRow) interface{} { return string(r.Event) }},
		{"time", SQLInteger, func(r *domain.FeatureRow) interface{} { return r.Time }},
		{"amount", SQLReal, func(r *domain.FeatureRow) interface{} { return deref(r.Amount) }},
		{"offer_id", SQLText, func(r *domain.FeatureRow) interface{} { return deref(r.OfferID) }},

		{"offer_type", SQLText, func(r *domain.FeatureRow) interface{} { return deref(r.OfferType) }},
		{"difficulty", SQLReal, func(r *domain.FeatureRow) interface{} { return deref(r.Difficulty) }},
		{"reward", SQLReal, func(r *domain.FeatureRow) interface{} { return deref(r.Reward) }},
		{"duration", SQLReal, func(r *domain.FeatureRow) interface{} { return deref(r.Duration) }},

		{"gender", SQLText, func(r *domain.FeatureRow) interface{} { return deref(r.Gender) }},
		{"age", SQLInteger, func(r *domain.FeatureRow) interface{} { return deref(r.Age) }},
		{"income", SQLReal, func(r *domain.FeatureRow) interface{} { return deref(r.Income) }},
		{"became_member_on", SQLText, func(r *domain.FeatureRow) interface{} {
			if r.BecameMemberOn == nil {
				return nil
			}
			return r.BecameMemberOn.Format(MemberDateFormat)
		}},
		{"days_as_member", SQLInteger, func(r *domain.FeatureRow) interface{} { return deref(r.DaysAsMember) }},
		{"income_informed", SQLInteger, func(r *domain.FeatureRow) interface{} { return deref(r.IncomeInformed) }},
		{"age_informed", SQLInteger, func(r *domain.FeatureRow) interface{} { return deref(r.AgeInformed) }},

		{"offer_rank", SQLInteger, func(r *domain.FeatureRow) interface{} { return deref(r.OfferRank) }},
		{"offer_amount", SQLReal, func(r *domain.FeatureRow) interface{} { return deref(r.OfferAmount) }},
		{"days_since_offer", SQLInteger, func(r *domain.FeatureRow) interface{} { return deref(r.DaysSinceOffer) }},
		{"offer_success", SQLInteger, func(r *domain.FeatureRow) interface{} { return deref(r.OfferSuccess) }},
		{"offer_completed_hist", SQLReal, func(r *domain.FeatureRow) interface{} { return deref(r.OfferCompletedHist) }},
	}

	for i, g := range table.GenderCategories {
		i := i
		cols = append(cols, Column{"gender_" + g, SQLInteger, func(r *domain.FeatureRow) interface{} {
			return indexed(r.GenderIndicators, i)
		}})
	}
	for i, o := range table.OfferCategories {
		i := i
		cols = append(cols, Column{"offer_id_" + o, SQLInteger, func(r *domain.FeatureRow) interface{} {
			return indexed(r.OfferIndicators, i)
		}})
	}
	for i, o := range table.OfferCategories {
		i := i
		cols = append(cols, Column{"offer_cum_" + o, SQLReal, func(r *domain.FeatureRow) interface{} {
			return indexed(r.OfferCumAmounts, i)
		}})
	}

	return append(cols,
		Column{"amount_cum", SQLReal, func(r *domain.FeatureRow) interface{} { return r.AmountCum }},
		Column{"offer_success_cum", SQLInteger, func(r *domain.FeatureRow) interface{} { return r.OfferSuccessCum }},
		Column{"selected_offer", SQLText, func(r *domain.FeatureRow) interface{} { return r.SelectedOffer }},
		Column{"last_info", SQLInteger, func(r *domain.FeatureRow) interface{} { return r.LastInfo }},
	)
}

// Headers returns the column names
func Headers(cols []Column) []string {
	headers := make([]string, len(cols))
	for i, c := range cols {
		headers[i] = c.Name
	}
	return headers
}

// FormatValue renders a cell for text outputs. Missing values are empty.
func FormatValue(v interface{}) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case int:
		return strconv.Itoa(x)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	default:
		return ""
	}
}

// Record renders one row as text cells
func Record(cols []Column, r *domain.FeatureRow) []string {
	record := make([]string, len(cols))
	for i, c := range cols {
		record[i] = FormatValue(c.Value(r))
	}
	return record
}

// deref returns the pointee, or an untyped nil so callers can test v == nil
func deref[T any](p *T) interface{} {
	if p == nil {
		return nil
	}
	return *p
}

func indexed[T int | float64](values []T, i int) T {
	if i < len(values) {
		return values[i]
	}
	return 0
}
