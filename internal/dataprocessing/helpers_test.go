package dataprocessing

import (
	"testing"

	"github.com/stretchr/testify/require"

	"offerfeat/pkg/contracts/domain"
)

func strp(s string) *string { return &s }
func fp(f float64) *float64 { return &f }
func ip(i int) *int { return &i }

func received(person string, t int, offer string) domain.TranscriptEvent {
	return domain.TranscriptEvent{Person: person, Event: domain.EventOfferReceived, Time: t,
		Value: domain.EventValue{OfferIDSpaced: strp(offer)}}
}

func viewed(person string, t int, offer string) domain.TranscriptEvent {
	return domain.TranscriptEvent{Person: person, Event: domain.EventOfferViewed, Time: t,
		Value: domain.EventValue{OfferIDSpaced: strp(offer)}}
}

func completed(person string, t int, offer string, reward float64) domain.TranscriptEvent {
	return domain.TranscriptEvent{Person: person, Event: domain.EventOfferCompleted, Time: t,
		Value: domain.EventValue{OfferID: strp(offer), Reward: fp(reward)}}
}

func purchase(person string, t int, amount float64) domain.TranscriptEvent {
	return domain.TranscriptEvent{Person: person, Event: domain.EventTransaction, Time: t,
		Value: domain.EventValue{Amount: fp(amount)}}
}

func testOffers() []domain.Offer {
	return []domain.Offer{
		{ID: "A", OfferType: domain.OfferTypeBOGO, Difficulty: 10, Reward: 10, Duration: 7, Channels: []string{"email", "web"}},
		{ID: "B", OfferType: domain.OfferTypeDiscount, Difficulty: 7, Reward: 3, Duration: 7, Channels: []string{"email"}},
		{ID: "C", OfferType: domain.OfferTypeInformational, Difficulty: 0, Reward: 0, Duration: 3},
	}
}

func testProfiles() []domain.Profile {
	return []domain.Profile{
		{ID: "P", Gender: strp("F"), Age: ip(55), Income: fp(100000), BecameMemberOn: 20170715},
		{ID: "Q", Gender: nil, Age: ip(118), Income: nil, BecameMemberOn: 20180726},
		{ID: "R", Gender: strp("M"), Age: ip(40), Income: fp(50000), BecameMemberOn: 20180101},
	}
}

// runStages chains every transform stage the way the processor does
func runStages(t *testing.T, ds *Dataset) *domain.FeatureTable {
	t.Helper()

	events, err := NormalizeEvents(ds.Transcript)
	require.NoError(t, err)

	profiles, err := NewProfileEnricher(DefaultOptions()).Enrich(ds.Profiles)
	require.NoError(t, err)

	rows, err := JoinDatasets(events, ds.Offers, profiles)
	require.NoError(t, err)

	AttributeOfferAmounts(rows)
	BuildTemporalFeatures(rows)
	table := EncodeCategories(rows)
	AccumulateTotals(table)
	BuildLabels(table, DefaultOptions().FailLabel)
	return table
}

// findRow returns the first row matching person, time and event
func findRow(t *testing.T, rows []domain.FeatureRow, person string, at int, ev domain.EventType) domain.FeatureRow {
	t.Helper()
	for _, r := range rows {
		if r.PersonID == person && r.Time == at && r.Event == ev {
			return r
		}
	}
	t.Fatalf("no %q row for %s at %d", ev, person, at)
	return domain.FeatureRow{}
}

// testTranscript covers repeated offers, simultaneous purchases, a person
// who never receives an offer and a person with no profile
func testTranscript() []domain.TranscriptEvent {
	return []domain.TranscriptEvent{
		received("P", 0, "A"),
		purchase("P", 0, 5),
		received("Q", 0, "C"),
		viewed("P", 2, "A"),
		purchase("R", 3, 7),
		completed("P", 5, "A", 10),
		purchase("P", 5, 12),
		viewed("Q", 6, "C"),
		purchase("Q", 12, 2.5),
		received("S", 24, "B"),
		completed("S", 30, "B", 3),
		purchase("S", 30, 8),
		purchase("S", 30, 4),
		received("P", 168, "B"),
		purchase("P", 200, 3),
	}
}

func testDataset() *Dataset {
	return &Dataset{Offers: testOffers(), Profiles: testProfiles(), Transcript: testTranscript()}
}
