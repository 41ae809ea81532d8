package dataprocessing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"offerfeat/pkg/contracts/domain"
)

func TestBuildLabels(t *testing.T) {
	table := runStages(t, testDataset())

	t.Run("selected offer", func(t *testing.T) {
		assert.Equal(t, "A", findRow(t, table.Rows, "P", 0, domain.EventOfferReceived).SelectedOffer)
		assert.Equal(t, "B", findRow(t, table.Rows, "S", 24, domain.EventOfferReceived).SelectedOffer)

		for _, r := range table.Rows {
			if r.OfferSuccess == nil {
				assert.Equal(t, "offer_fail", r.SelectedOffer)
			}
		}
	})

	t.Run("last info flags every tied row", func(t *testing.T) {
		flagged := make(map[string][]int)
		for _, r := range table.Rows {
			if r.LastInfo == 1 {
				flagged[r.PersonID] = append(flagged[r.PersonID], r.Time)
			}
		}
		assert.Equal(t, map[string][]int{
			"P": {200},
			"Q": {12},
			"R": {3},
			"S": {30, 30, 30},
		}, flagged)
	})
}

func TestBuildLabels_CustomFailLabel(t *testing.T) {
	table := &domain.FeatureTable{Rows: []domain.FeatureRow{
		{PersonID: "P", Time: 0, OfferID: strp("A"), OfferSuccess: ip(1)},
		{PersonID: "P", Time: 1},
	}}

	BuildLabels(table, "none")

	assert.Equal(t, "A", table.Rows[0].SelectedOffer)
	assert.Equal(t, "none", table.Rows[1].SelectedOffer)
	assert.Equal(t, 0, table.Rows[0].LastInfo)
	assert.Equal(t, 1, table.Rows[1].LastInfo)
}
