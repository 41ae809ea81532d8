// Package operations runs the offer-response feature pipeline as an ordered
// sequence of steps.
//
// Core Components:
//
// Manager: executes the registered steps one by one over a shared
// OperationState, tracing each Step and recording its duration and output
// size. The first failing Step stops the run and the remaining steps are
// marked skipped. Steps run to completion without deadlines; a cancelled
// context is only observed between steps.
//
// Step: a single unit of work. Validate checks that the inputs written by
// earlier steps are present; Execute reads them and writes its own output
// back to the state.
//
// Registry: holds the steps in registration order. RegisterFeatureStages
// registers the eight feature steps from event normalization to labeling.
//
// OperationError: every Step failure is returned as an OperationError naming
// the Step, wrapping the underlying cause.
//
// Usage:
//
//	registry := operations.NewRegistry()
//	if err := operations.RegisterFeatureStages(registry); err != nil {
//	    return err
//	}
//	manager := operations.NewManager(registry, tracer, logger)
//	resp, err := manager.Execute(ctx, operations.OperationRequest{Dataset: ds})
package operations
