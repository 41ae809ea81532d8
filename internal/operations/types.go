package operations

import (
	"time"

	"offerfeat/internal/dataprocessing"
	"offerfeat/pkg/contracts/domain"
)

// operation Step identifiers
const (
	StageIDNormalize = "normalize"
	StageIDEnrich    = "enrich"
	StageIDJoin      = "join"
	StageIDAttribute = "attribute"
	StageIDTemporal  = "temporal"
	StageIDEncode    = "encode"
	StageIDAggregate = "aggregate"
	StageIDLabel     = "label"
)

// operation Step names
const (
	StageNameNormalize = "Event Normalizer"
	StageNameEnrich    = "Profile Enricher"
	StageNameJoin      = "Dataset Joiner"
	StageNameAttribute = "Offer-Transaction Attributor"
	StageNameTemporal  = "Temporal Feature Builder"
	StageNameEncode    = "Categorical Encoder"
	StageNameAggregate = "Cumulative Aggregator"
	StageNameLabel     = "Label & Snapshot Builder"
)

// OperationRequest represents a request to build a feature table
type OperationRequest struct {
	ID      string                           `json:"id"`
	Dataset *dataprocessing.Dataset          `json:"-"`
	Options dataprocessing.ProcessingOptions `json:"options"`
}

// OperationResponse represents the response from an operation execution
type OperationResponse struct {
	ID       string                `json:"id"`
	Status   OperationStatusValue  `json:"status"`
	Duration time.Duration         `json:"duration"`
	Steps    map[string]*StepState `json:"steps"`
	Table    *domain.FeatureTable  `json:"-"`
	Error    string                `json:"error,omitempty"`
}
