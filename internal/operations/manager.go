package operations

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"offerfeat/internal/dataprocessing"
	"offerfeat/internal/infrastructure"
)

// Manager orchestrates operation execution. Steps run strictly in
// registration order and the first failure stops the run.
type Manager struct {
	registry *Registry
	tracer   *OperationTracer
	logger   *slog.Logger
}

// NewManager creates a new operation manager with dependency injection
func NewManager(registry *Registry, tracer *OperationTracer, logger *slog.Logger) *Manager {
	if registry == nil {
		registry = NewRegistry()
	}
	if tracer == nil {
		// A noop tracer never fails to build
		tracer, _ = NewOperationTracer(nil)
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Manager{
		registry: registry,
		tracer:   tracer,
		logger:   infrastructure.WithComponent(logger, "operations"),
	}
}

// Execute runs every registered Step over the request's dataset
func (m *Manager) Execute(ctx context.Context, req OperationRequest) (*OperationResponse, error) {
	if req.ID == "" {
		req.ID = infrastructure.GetTraceID(ctx)
	}
	if req.ID == "" {
		req.ID = fmt.Sprintf("operation-%d", time.Now().Unix())
	}

	state := NewOperationState(req.ID)
	if req.Options != (dataprocessing.ProcessingOptions{}) {
		state.Options = req.Options
	}
	state.Dataset = req.Dataset

	if state.Dataset == nil {
		err := NewFatalError("no dataset supplied", nil)
		m.logOperationError(ctx, req.ID, err)
		state.Fail(err)
		return m.createResponse(state), err
	}

	steps := m.registry.List()
	for _, step := range steps {
		state.SetStage(step.ID(), NewStepState(step.ID(), step.Name()))
	}

	ctx, span := m.tracer.TraceOperationExecution(ctx, req.ID, len(state.Dataset.Transcript))
	m.logOperationStart(ctx, req.ID, len(steps))

	state.Start()
	err := m.executeSequential(ctx, state, steps)

	rows := state.Table.Len()
	if err != nil {
		if GetErrorType(err) == ErrorTypeCancellation {
			state.Cancel()
		} else {
			state.Fail(err)
		}
		m.logOperationError(ctx, req.ID, err)
	} else {
		state.Complete()
		m.logOperationComplete(ctx, req.ID, state.Duration(), rows, len(state.GetCompletedStages()))
	}
	m.tracer.RecordOperationCompletion(ctx, span, state.Duration(), rows, err)

	return m.createResponse(state), err
}

// executeSequential executes steps one by one. Steps are never interrupted;
// the caller's context is only checked between steps.
func (m *Manager) executeSequential(ctx context.Context, state *OperationState, steps []Step) error {
	for i, step := range steps {
		if ctx.Err() != nil {
			m.logger.WarnContext(ctx, "operation_cancelled",
				slog.String("operation_id", state.ID),
				slog.String("step", step.ID()))
			m.skipRemaining(state, steps[i:], "operation cancelled")
			return NewCancellationError(step.ID())
		}

		m.logStageProgress(ctx, state.ID, step.ID(), i+1, len(steps))
		if err := m.executeStage(ctx, state, step); err != nil {
			m.logStageError(ctx, state.ID, step.ID(), err)
			m.skipRemaining(state, steps[i+1:], fmt.Sprintf("step %s failed", step.ID()))
			return err
		}
	}
	return nil
}

// executeStage validates and runs a single Step
func (m *Manager) executeStage(ctx context.Context, state *OperationState, step Step) error {
	stepState := state.GetStage(step.ID())
	if stepState == nil {
		return NewFatalError(fmt.Sprintf("state for step %s not found", step.ID()), nil)
	}

	if err := step.Validate(state); err != nil {
		opErr := NewValidationError(step.ID(), err.Error())
		stepState.Fail(opErr)
		return opErr
	}

	stageCtx, span := m.tracer.TraceStageExecution(ctx, state.ID, step.ID())
	m.logStageStart(ctx, state.ID, step.ID())

	stepState.Start()
	startTime := time.Now()
	err := step.Execute(stageCtx, state)
	duration := time.Since(startTime)

	rows := stageRows(state)
	m.tracer.RecordStageCompletion(ctx, span, step.ID(), duration, rows, err)

	if err != nil {
		var opErr *OperationError
		if !errors.As(err, &opErr) {
			opErr = NewExecutionError(step.ID(), err)
		}
		stepState.Fail(opErr)
		return opErr
	}

	stepState.SetMetadata("rows", rows)
	stepState.Complete()
	m.logStageComplete(ctx, state.ID, step.ID(), duration, rows)
	return nil
}

// skipRemaining marks steps that will not run
func (m *Manager) skipRemaining(state *OperationState, steps []Step, reason string) {
	for _, step := range steps {
		if st := state.GetStage(step.ID()); st != nil && st.GetStatus() == StepStatusPending {
			st.Skip(reason)
		}
	}
}

// stageRows is the size of the latest output written to the state
func stageRows(state *OperationState) int {
	switch {
	case state.Table != nil:
		return state.Table.Len()
	case state.Rows != nil:
		return len(state.Rows)
	case state.Events != nil:
		return len(state.Events)
	default:
		return len(state.Profiles)
	}
}

// createResponse creates an operation response from state
func (m *Manager) createResponse(state *OperationState) *OperationResponse {
	resp := &OperationResponse{
		ID:       state.ID,
		Status:   state.Status,
		Duration: state.Duration(),
		Steps:    state.Steps,
	}

	if state.Status == OperationStatusCompleted {
		resp.Table = state.Table
	}
	if state.Error != nil {
		resp.Error = state.Error.Error()
	}

	return resp
}
