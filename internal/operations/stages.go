package operations

import (
	"context"
	"fmt"

	"offerfeat/internal/dataprocessing"
)

// NormalizeStage flattens transcript payloads into canonical events
type NormalizeStage struct {
	BaseStage
}

// NewNormalizeStage creates the event normalizer Step
func NewNormalizeStage() *NormalizeStage {
	return &NormalizeStage{BaseStage: NewBaseStage(StageIDNormalize, StageNameNormalize)}
}

// Validate requires a loaded dataset
func (s *NormalizeStage) Validate(state *OperationState) error {
	if state.Dataset == nil {
		return fmt.Errorf("no dataset loaded")
	}
	return nil
}

// Execute normalizes the transcript
func (s *NormalizeStage) Execute(ctx context.Context, state *OperationState) error {
	events, err := dataprocessing.NormalizeEvents(state.Dataset.Transcript)
	if err != nil {
		return err
	}
	state.Events = events
	return nil
}

// EnrichStage derives member tenure and indicator features
type EnrichStage struct {
	BaseStage
}

// NewEnrichStage creates the profile enricher Step
func NewEnrichStage() *EnrichStage {
	return &EnrichStage{BaseStage: NewBaseStage(StageIDEnrich, StageNameEnrich)}
}

// Validate requires a loaded dataset
func (s *EnrichStage) Validate(state *OperationState) error {
	if state.Dataset == nil {
		return fmt.Errorf("no dataset loaded")
	}
	return nil
}

// Execute enriches the profiles
func (s *EnrichStage) Execute(ctx context.Context, state *OperationState) error {
	profiles, err := dataprocessing.NewProfileEnricher(state.Options).Enrich(state.Dataset.Profiles)
	if err != nil {
		return err
	}
	state.Profiles = profiles
	return nil
}

// JoinStage builds the time-ordered feature rows
type JoinStage struct {
	BaseStage
}

// NewJoinStage creates the dataset joiner Step
func NewJoinStage() *JoinStage {
	return &JoinStage{BaseStage: NewBaseStage(StageIDJoin, StageNameJoin)}
}

// Validate requires normalized events and enriched profiles
func (s *JoinStage) Validate(state *OperationState) error {
	if state.Dataset == nil {
		return fmt.Errorf("no dataset loaded")
	}
	if state.Events == nil {
		return fmt.Errorf("events not normalized")
	}
	if state.Profiles == nil {
		return fmt.Errorf("profiles not enriched")
	}
	return nil
}

// Execute joins events, offers and profiles
func (s *JoinStage) Execute(ctx context.Context, state *OperationState) error {
	rows, err := dataprocessing.JoinDatasets(state.Events, state.Dataset.Offers, state.Profiles)
	if err != nil {
		return err
	}
	state.Rows = rows
	return nil
}

// AttributeStage links purchase amounts to offer events
type AttributeStage struct {
	BaseStage
}

// NewAttributeStage creates the offer-transaction attributor Step
func NewAttributeStage() *AttributeStage {
	return &AttributeStage{BaseStage: NewBaseStage(StageIDAttribute, StageNameAttribute)}
}

// Validate requires joined rows
func (s *AttributeStage) Validate(state *OperationState) error {
	return requireRows(state)
}

// Execute attributes offer amounts
func (s *AttributeStage) Execute(ctx context.Context, state *OperationState) error {
	dataprocessing.AttributeOfferAmounts(state.Rows)
	return nil
}

// TemporalStage computes recency and success flags
type TemporalStage struct {
	BaseStage
}

// NewTemporalStage creates the temporal feature builder Step
func NewTemporalStage() *TemporalStage {
	return &TemporalStage{BaseStage: NewBaseStage(StageIDTemporal, StageNameTemporal)}
}

// Validate requires joined rows
func (s *TemporalStage) Validate(state *OperationState) error {
	return requireRows(state)
}

// Execute builds the temporal features
func (s *TemporalStage) Execute(ctx context.Context, state *OperationState) error {
	dataprocessing.BuildTemporalFeatures(state.Rows)
	return nil
}

// EncodeStage one-hot encodes the categorical columns
type EncodeStage struct {
	BaseStage
}

// NewEncodeStage creates the categorical encoder Step
func NewEncodeStage() *EncodeStage {
	return &EncodeStage{BaseStage: NewBaseStage(StageIDEncode, StageNameEncode)}
}

// Validate requires joined rows
func (s *EncodeStage) Validate(state *OperationState) error {
	return requireRows(state)
}

// Execute encodes the rows into a feature table
func (s *EncodeStage) Execute(ctx context.Context, state *OperationState) error {
	state.Table = dataprocessing.EncodeCategories(state.Rows)
	return nil
}

// AggregateStage computes the per-person running totals
type AggregateStage struct {
	BaseStage
}

// NewAggregateStage creates the cumulative aggregator Step
func NewAggregateStage() *AggregateStage {
	return &AggregateStage{BaseStage: NewBaseStage(StageIDAggregate, StageNameAggregate)}
}

// Validate requires an encoded table
func (s *AggregateStage) Validate(state *OperationState) error {
	return requireTable(state)
}

// Execute accumulates the running totals
func (s *AggregateStage) Execute(ctx context.Context, state *OperationState) error {
	dataprocessing.AccumulateTotals(state.Table)
	return nil
}

// LabelStage sets selected_offer and last_info
type LabelStage struct {
	BaseStage
}

// NewLabelStage creates the label and snapshot builder Step
func NewLabelStage() *LabelStage {
	return &LabelStage{BaseStage: NewBaseStage(StageIDLabel, StageNameLabel)}
}

// Validate requires an encoded table
func (s *LabelStage) Validate(state *OperationState) error {
	return requireTable(state)
}

// Execute builds the labels
func (s *LabelStage) Execute(ctx context.Context, state *OperationState) error {
	dataprocessing.BuildLabels(state.Table, state.Options.FailLabel)
	return nil
}

func requireRows(state *OperationState) error {
	if state.Rows == nil {
		return fmt.Errorf("rows not joined")
	}
	return nil
}

func requireTable(state *OperationState) error {
	if state.Table == nil {
		return fmt.Errorf("feature table not encoded")
	}
	return nil
}

// RegisterFeatureStages registers the feature pipeline steps in execution
// order
func RegisterFeatureStages(r *Registry) error {
	steps := []Step{
		NewNormalizeStage(),
		NewEnrichStage(),
		NewJoinStage(),
		NewAttributeStage(),
		NewTemporalStage(),
		NewEncodeStage(),
		NewAggregateStage(),
		NewLabelStage(),
	}
	for _, step := range steps {
		if err := r.Register(step); err != nil {
			return err
		}
	}
	return nil
}
