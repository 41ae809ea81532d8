// Package dataprocessing turns the raw offer catalog, customer profiles and
// event transcript into the per-event offer-response feature table.
//
// # Stages
//
// The transform is a fixed chain of pure stages. Each stage takes the
// output of the previous one; only the loader touches the filesystem.
//
//  1. Loader.LoadAll reads the three newline-delimited JSON files
//  2. NormalizeEvents coalesces the two offer id spellings
//  3. ProfileEnricher.Enrich derives tenure, indicators and imputed income
//  4. JoinDatasets left-joins events to offers and profiles, sorted by time
//  5. AttributeOfferAmounts ranks offer events and links purchase amounts
//  6. BuildTemporalFeatures computes days_since_offer and success flags
//  7. EncodeCategories one-hot encodes gender and offer_id
//  8. AccumulateTotals and BuildLabels add running totals and labels
//
// Stages 5 to 8 mutate the rows in place and require the time ordering
// established by JoinDatasets.
//
// # Usage
//
//	ds, err := dataprocessing.NewLoader(logger).LoadAll(ctx, portfolio, profile, transcript)
//	if err != nil {
//	    return err
//	}
//	events, err := dataprocessing.NormalizeEvents(ds.Transcript)
//	...
//
// The operations package wires these stages into a traced pipeline.
package dataprocessing
