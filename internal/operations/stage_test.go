package operations

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"offerfeat/internal/dataprocessing"
	"offerfeat/pkg/contracts/domain"
)

func TestStepState_Lifecycle(t *testing.T) {
	st := NewStepState(StageIDJoin, StageNameJoin)
	assert.Equal(t, StepStatusPending, st.GetStatus())
	assert.Zero(t, st.Duration())

	st.Start()
	assert.Equal(t, StepStatusActive, st.GetStatus())

	st.SetMetadata("rows", 3)
	st.Complete()
	assert.Equal(t, StepStatusCompleted, st.GetStatus())
	assert.Equal(t, 3, st.Metadata["rows"])
	assert.GreaterOrEqual(t, st.Duration(), time.Duration(0))

	failed := NewStepState(StageIDEncode, StageNameEncode)
	failed.Start()
	failed.Fail(errors.New("boom"))
	assert.Equal(t, StepStatusFailed, failed.GetStatus())
	assert.Equal(t, "boom", failed.Message)

	skipped := NewStepState(StageIDLabel, StageNameLabel)
	skipped.Skip("step encode failed")
	assert.Equal(t, StepStatusSkipped, skipped.GetStatus())
}

func TestStages_Validate(t *testing.T) {
	tests := []struct {
		name  string
		step  Step
		state func() *OperationState
		ok    bool
	}{
		{
			name:  "normalize without dataset",
			step:  NewNormalizeStage(),
			state: func() *OperationState { return NewOperationState("x") },
		},
		{
			name: "normalize with dataset",
			step: NewNormalizeStage(),
			state: func() *OperationState {
				s := NewOperationState("x")
				s.Dataset = &dataprocessing.Dataset{}
				return s
			},
			ok: true,
		},
		{
			name: "join before enrich",
			step: NewJoinStage(),
			state: func() *OperationState {
				s := NewOperationState("x")
				s.Dataset = &dataprocessing.Dataset{}
				s.Events = []domain.Event{}
				return s
			},
		},
		{
			name:  "attribute without rows",
			step:  NewAttributeStage(),
			state: func() *OperationState { return NewOperationState("x") },
		},
		{
			name:  "label without table",
			step:  NewLabelStage(),
			state: func() *OperationState { return NewOperationState("x") },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.step.Validate(tt.state())
			if tt.ok {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
			}
		})
	}
}

func TestOperationState_StageQueries(t *testing.T) {
	s := NewOperationState("x")
	done := NewStepState("a", "A")
	done.Complete()
	failed := NewStepState("b", "B")
	failed.Fail(errors.New("boom"))
	s.SetStage("a", done)
	s.SetStage("b", failed)

	assert.Len(t, s.GetCompletedStages(), 1)
	assert.Same(t, done, s.GetStage("a"))
	assert.Nil(t, s.GetStage("c"))
}
