package dataprocessing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"offerfeat/pkg/contracts/domain"
)

func TestStages_ReceiveCompleteScenario(t *testing.T) {
	ds := &Dataset{
		Offers:   testOffers(),
		Profiles: testProfiles(),
		Transcript: []domain.TranscriptEvent{
			received("P", 0, "A"),
			purchase("P", 0, 5),
			completed("P", 5, "A", 10),
			purchase("P", 5, 12),
		},
	}

	table := runStages(t, ds)
	require.Equal(t, 4, table.Len())

	done := findRow(t, table.Rows, "P", 5, domain.EventOfferCompleted)
	require.NotNil(t, done.OfferAmount)
	assert.InDelta(t, 12.0, *done.OfferAmount, 1e-9)
	assert.Equal(t, ip(5), done.DaysSinceOffer)

	got := findRow(t, table.Rows, "P", 0, domain.EventOfferReceived)
	assert.Equal(t, ip(1), got.OfferSuccess)
	assert.Equal(t, "A", got.SelectedOffer)
	assert.Equal(t, ip(1), got.OfferRank)

	assert.Equal(t, ip(5), findRow(t, table.Rows, "P", 5, domain.EventTransaction).DaysSinceOffer)
	assert.Equal(t, ip(0), findRow(t, table.Rows, "P", 0, domain.EventTransaction).DaysSinceOffer)

	last := table.Rows[table.Len()-1]
	assert.InDelta(t, 17.0, last.AmountCum, 1e-9)
	assert.Equal(t, 1, last.OfferSuccessCum)
	assert.Equal(t, 1, last.LastInfo)
}

func TestStages_Deterministic(t *testing.T) {
	first := runStages(t, testDataset())
	second := runStages(t, testDataset())
	assert.Equal(t, first, second)
}

func TestStages_OneRowPerEvent(t *testing.T) {
	table := runStages(t, testDataset())
	assert.Equal(t, len(testTranscript()), table.Len())
}

func TestStages_InputsUnchanged(t *testing.T) {
	ds := testDataset()
	runStages(t, ds)
	assert.Equal(t, testDataset(), ds)
}
