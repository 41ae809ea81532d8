package dataprocessing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"offerfeat/internal/errors"
	"offerfeat/pkg/contracts/domain"
)

func joinFixture(t *testing.T, transcript []domain.TranscriptEvent) []domain.FeatureRow {
	t.Helper()
	events, err := NormalizeEvents(transcript)
	require.NoError(t, err)
	profiles, err := NewProfileEnricher(DefaultOptions()).Enrich(testProfiles())
	require.NoError(t, err)
	rows, err := JoinDatasets(events, testOffers(), profiles)
	require.NoError(t, err)
	return rows
}

func TestJoinDatasets(t *testing.T) {
	rows := joinFixture(t, testTranscript())
	require.Len(t, rows, len(testTranscript()))

	t.Run("sorted by time", func(t *testing.T) {
		for i := 1; i < len(rows); i++ {
			assert.LessOrEqual(t, rows[i-1].Time, rows[i].Time)
		}
	})

	t.Run("offer attributes joined", func(t *testing.T) {
		row := findRow(t, rows, "P", 0, domain.EventOfferReceived)
		require.NotNil(t, row.OfferType)
		assert.Equal(t, "bogo", *row.OfferType)
		assert.Equal(t, 10.0, *row.Difficulty)
		assert.Equal(t, 10.0, *row.Reward)
		assert.Equal(t, 7.0, *row.Duration)
	})

	t.Run("transactions have no offer attributes", func(t *testing.T) {
		row := findRow(t, rows, "R", 3, domain.EventTransaction)
		assert.Nil(t, row.OfferID)
		assert.Nil(t, row.OfferType)
		assert.Nil(t, row.Difficulty)
		require.NotNil(t, row.Amount)
		assert.Equal(t, 7.0, *row.Amount)
	})

	t.Run("profile attributes joined", func(t *testing.T) {
		row := findRow(t, rows, "Q", 6, domain.EventOfferViewed)
		require.NotNil(t, row.Gender)
		assert.Equal(t, "na", *row.Gender)
		assert.Equal(t, 0, *row.DaysAsMember)
		assert.Equal(t, 0, *row.AgeInformed)
		assert.Equal(t, 0, *row.IncomeInformed)
		assert.InDelta(t, 75000.0, *row.Income, 1e-9)
	})

	t.Run("unknown person keeps nil profile columns", func(t *testing.T) {
		row := findRow(t, rows, "S", 24, domain.EventOfferReceived)
		assert.Nil(t, row.Gender)
		assert.Nil(t, row.Age)
		assert.Nil(t, row.Income)
		assert.Nil(t, row.BecameMemberOn)
		assert.Nil(t, row.DaysAsMember)
	})
}

func TestJoinDatasets_StableTies(t *testing.T) {
	rows := joinFixture(t, []domain.TranscriptEvent{
		purchase("P", 5, 1),
		received("Q", 0, "A"),
		purchase("P", 5, 2),
		purchase("P", 5, 3),
	})

	require.Len(t, rows, 4)
	assert.Equal(t, "Q", rows[0].PersonID)
	assert.Equal(t, 1.0, *rows[1].Amount)
	assert.Equal(t, 2.0, *rows[2].Amount)
	assert.Equal(t, 3.0, *rows[3].Amount)
}

func TestJoinDatasets_UnknownOffer(t *testing.T) {
	rows := joinFixture(t, []domain.TranscriptEvent{received("P", 0, "Z")})
	require.Len(t, rows, 1)
	require.NotNil(t, rows[0].OfferID)
	assert.Equal(t, "Z", *rows[0].OfferID)
	assert.Nil(t, rows[0].OfferType)
	assert.Nil(t, rows[0].Reward)
}

func TestJoinDatasets_DuplicateKeys(t *testing.T) {
	events, err := NormalizeEvents([]domain.TranscriptEvent{received("P", 0, "A")})
	require.NoError(t, err)

	tests := []struct {
		name     string
		offers   []domain.Offer
		profiles []domain.MemberProfile
		message  string
	}{
		{
			name:    "duplicate offer",
			offers:  []domain.Offer{{ID: "A"}, {ID: "A"}},
			message: "duplicate offer id A",
		},
		{
			name:     "duplicate person",
			offers:   testOffers(),
			profiles: []domain.MemberProfile{{ID: "P"}, {ID: "P"}},
			message:  "duplicate person id P",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows, err := JoinDatasets(events, tt.offers, tt.profiles)
			assert.Nil(t, rows)
			require.Error(t, err)
			assert.True(t, errors.IsType(err, errors.ErrTypeTransform))
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}
