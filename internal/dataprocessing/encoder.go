package dataprocessing

import (
	"sort"

	"offerfeat/pkg/contracts/domain"
)

// EncodeCategories one-hot encodes gender and offer_id. There is one
// indicator per distinct non-null value, in lexicographic order. A nil
// value gets all-zero indicators; no pseudo-category is created. The
// original categorical fields are kept on the rows.
func EncodeCategories(rows []domain.FeatureRow) *domain.FeatureTable {
	genders := make(map[string]struct{})
	offers := make(map[string]struct{})
	for i := range rows {
		if rows[i].Gender != nil {
			genders[*rows[i].Gender] = struct{}{}
		}
		if rows[i].OfferID != nil {
			offers[*rows[i].OfferID] = struct{}{}
		}
	}

	table := &domain.FeatureTable{
		GenderCategories: sortedKeys(genders),
		OfferCategories:  sortedKeys(offers),
		Rows:             rows,
	}

	genderIndex := indexOf(table.GenderCategories)
	offerIndex := indexOf(table.OfferCategories)

	for i := range rows {
		row := &rows[i]
		row.GenderIndicators = make([]int, len(table.GenderCategories))
		row.OfferIndicators = make([]int, len(table.OfferCategories))
		if row.Gender != nil {
			row.GenderIndicators[genderIndex[*row.Gender]] = 1
		}
		if row.OfferID != nil {
			row.OfferIndicators[offerIndex[*row.OfferID]] = 1
		}
	}

	return table
}

func sortedKeys(m map[string]struct{}) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func indexOf(values []string) map[string]int {
	idx := make(map[string]int, len(values))
	for i, v := range values {
		idx[v] = i
	}
	return idx
}
