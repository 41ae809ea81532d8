package dataprocessing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"offerfeat/pkg/contracts/domain"
)

func TestBuildTemporalFeatures(t *testing.T) {
	rows := attributed(t, testTranscript())
	BuildTemporalFeatures(rows)

	t.Run("days since offer", func(t *testing.T) {
		tests := []struct {
			person string
			time   int
			event  domain.EventType
			want   *int
		}{
			{"P", 0, domain.EventOfferReceived, ip(0)},
			{"P", 0, domain.EventTransaction, ip(0)},
			{"P", 2, domain.EventOfferViewed, ip(2)},
			{"P", 5, domain.EventOfferCompleted, ip(5)},
			{"P", 5, domain.EventTransaction, ip(5)},
			{"P", 168, domain.EventOfferReceived, ip(0)},
			{"P", 200, domain.EventTransaction, ip(32)},
			{"Q", 12, domain.EventTransaction, ip(12)},
			{"R", 3, domain.EventTransaction, nil},
			{"S", 30, domain.EventTransaction, ip(6)},
		}
		for _, tt := range tests {
			row := findRow(t, rows, tt.person, tt.time, tt.event)
			assert.Equal(t, tt.want, row.DaysSinceOffer, "%s %s at %d", tt.person, tt.event, tt.time)
		}
	})

	t.Run("success only on received rows", func(t *testing.T) {
		for _, r := range rows {
			if r.OfferSuccess != nil {
				assert.Equal(t, domain.EventOfferReceived, r.Event)
				assert.Equal(t, 1, *r.OfferSuccess)
			}
			if r.OfferCompletedHist != nil {
				assert.Equal(t, domain.EventOfferCompleted, r.Event)
			}
		}
		assert.Equal(t, ip(1), findRow(t, rows, "P", 0, domain.EventOfferReceived).OfferSuccess)
		assert.Nil(t, findRow(t, rows, "P", 168, domain.EventOfferReceived).OfferSuccess)
		assert.Nil(t, findRow(t, rows, "P", 2, domain.EventOfferViewed).OfferSuccess)
	})

	t.Run("completed hist", func(t *testing.T) {
		row := findRow(t, rows, "S", 30, domain.EventOfferCompleted)
		require.NotNil(t, row.OfferCompletedHist)
		assert.InDelta(t, 6.0, *row.OfferCompletedHist, 1e-9)
	})
}

func TestBuildTemporalFeatures_ZeroAmountIsNotSuccess(t *testing.T) {
	rows := attributed(t, []domain.TranscriptEvent{
		received("P", 0, "A"),
		completed("P", 5, "A", 10),
		purchase("P", 5, 0),
	})
	BuildTemporalFeatures(rows)

	assert.Nil(t, findRow(t, rows, "P", 0, domain.EventOfferReceived).OfferSuccess)
	assert.Nil(t, findRow(t, rows, "P", 5, domain.EventOfferCompleted).OfferCompletedHist)
}
