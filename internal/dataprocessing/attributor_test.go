package dataprocessing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"offerfeat/pkg/contracts/domain"
)

func attributed(t *testing.T, transcript []domain.TranscriptEvent) []domain.FeatureRow {
	t.Helper()
	rows := joinFixture(t, transcript)
	AttributeOfferAmounts(rows)
	return rows
}

func TestAttributeOfferAmounts_Rank(t *testing.T) {
	rows := attributed(t, []domain.TranscriptEvent{
		received("P", 0, "A"),
		received("P", 0, "A"),
		viewed("P", 4, "A"),
		received("P", 168, "A"),
		received("P", 170, "B"),
		purchase("P", 171, 9),
		received("P", 336, "A"),
	})

	ranks := make([]*int, len(rows))
	for i, r := range rows {
		ranks[i] = r.OfferRank
	}

	assert.Equal(t, []*int{ip(1), ip(1), ip(1), ip(2), ip(1), nil, ip(3)}, ranks)
}

func TestAttributeOfferAmounts_Amounts(t *testing.T) {
	rows := attributed(t, testTranscript())

	tests := []struct {
		name   string
		person string
		time   int
		event  domain.EventType
		want   *float64
	}{
		{name: "completion takes same-moment purchase", person: "P", time: 5, event: domain.EventOfferCompleted, want: fp(12)},
		{name: "receipt inherits its completion", person: "P", time: 0, event: domain.EventOfferReceived, want: fp(12)},
		{name: "view inherits its completion", person: "P", time: 2, event: domain.EventOfferViewed, want: fp(12)},
		{name: "simultaneous purchases are averaged", person: "S", time: 30, event: domain.EventOfferCompleted, want: fp(6)},
		{name: "receipt inherits averaged amount", person: "S", time: 24, event: domain.EventOfferReceived, want: fp(6)},
		{name: "never completed stays nil", person: "Q", time: 0, event: domain.EventOfferReceived, want: nil},
		{name: "second receipt without completion stays nil", person: "P", time: 168, event: domain.EventOfferReceived, want: nil},
		{name: "transactions get no offer amount", person: "P", time: 5, event: domain.EventTransaction, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row := findRow(t, rows, tt.person, tt.time, tt.event)
			if tt.want == nil {
				assert.Nil(t, row.OfferAmount)
				return
			}
			require.NotNil(t, row.OfferAmount)
			assert.InDelta(t, *tt.want, *row.OfferAmount, 1e-9)
		})
	}
}

func TestAttributeOfferAmounts_CompletionWithoutPurchase(t *testing.T) {
	rows := attributed(t, []domain.TranscriptEvent{
		received("P", 0, "A"),
		completed("P", 5, "A", 10),
		purchase("P", 6, 12),
	})

	for _, r := range rows {
		assert.Nil(t, r.OfferAmount, "%s at %d", r.Event, r.Time)
	}
}

func TestAttributeOfferAmounts_SecondOccurrence(t *testing.T) {
	rows := attributed(t, []domain.TranscriptEvent{
		received("P", 0, "A"),
		received("P", 100, "A"),
		completed("P", 110, "A", 10),
		purchase("P", 110, 20),
	})

	// The first completion pairs with the first receipt by rank
	assert.InDelta(t, 20.0, *findRow(t, rows, "P", 0, domain.EventOfferReceived).OfferAmount, 1e-9)
	assert.Nil(t, findRow(t, rows, "P", 100, domain.EventOfferReceived).OfferAmount)
}
