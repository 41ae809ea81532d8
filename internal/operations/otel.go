package operations

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	metricnoop "go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"
	tracenoop "go.opentelemetry.io/otel/trace/noop"

	"offerfeat/internal/infrastructure"
)

const (
	TracerName = "offerfeat.operation"
)

// OperationTracer provides OpenTelemetry instrumentation for pipeline runs
type OperationTracer struct {
	tracer trace.Tracer

	runsTotal     metric.Int64Counter
	stageRuns     metric.Int64Counter
	stageDuration metric.Float64Histogram
	rowsProduced  metric.Int64Counter
}

// NewOperationTracer creates a new operation tracer. Nil providers give a
// tracer that records nothing.
func NewOperationTracer(providers *infrastructure.OTelProviders) (*OperationTracer, error) {
	var (
		tracer trace.Tracer = tracenoop.NewTracerProvider().Tracer(TracerName)
		meter  metric.Meter = metricnoop.NewMeterProvider().Meter(TracerName)
	)
	if providers != nil {
		if providers.Tracer != nil {
			tracer = providers.Tracer
		}
		if providers.Meter != nil {
			meter = providers.Meter
		}
	}

	runsTotal, err := meter.Int64Counter("offerfeat_runs_total",
		metric.WithDescription("Feature pipeline runs by outcome"))
	if err != nil {
		return nil, fmt.Errorf("failed to create runs counter: %w", err)
	}

	stageRuns, err := meter.Int64Counter("offerfeat_stage_executions_total",
		metric.WithDescription("Step executions by step and outcome"))
	if err != nil {
		return nil, fmt.Errorf("failed to create stage counter: %w", err)
	}

	stageDuration, err := meter.Float64Histogram("offerfeat_stage_duration_seconds",
		metric.WithDescription("Step execution time"),
		metric.WithUnit("s"))
	if err != nil {
		return nil, fmt.Errorf("failed to create stage histogram: %w", err)
	}

	rowsProduced, err := meter.Int64Counter("offerfeat_rows_total",
		metric.WithDescription("Feature rows produced"))
	if err != nil {
		return nil, fmt.Errorf("failed to create rows counter: %w", err)
	}

	return &OperationTracer{
		tracer:        tracer,
		runsTotal:     runsTotal,
		stageRuns:     stageRuns,
		stageDuration: stageDuration,
		rowsProduced:  rowsProduced,
	}, nil
}

// TraceOperationExecution creates a span for the entire run
func (t *OperationTracer) TraceOperationExecution(ctx context.Context, operationID string, events int) (context.Context, trace.Span) {
	return t.tracer.Start(ctx, "operation.execute",
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(
			attribute.String("operation.id", operationID),
			attribute.Int("operation.input_events", events),
		),
	)
}

// TraceStageExecution creates a span for one Step
func (t *OperationTracer) TraceStageExecution(ctx context.Context, operationID, stageID string) (context.Context, trace.Span) {
	return t.tracer.Start(ctx, fmt.Sprintf("operation.step.%s", stageID),
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(
			attribute.String("operation.id", operationID),
			attribute.String("step.id", stageID),
		),
	)
}

// RecordStageCompletion ends a Step span and records its metrics
func (t *OperationTracer) RecordStageCompletion(ctx context.Context, span trace.Span, stageID string, duration time.Duration, rows int, err error) {
	status := outcome(err)

	span.SetAttributes(
		attribute.String("step.status", status),
		attribute.Float64("step.duration_seconds", duration.Seconds()),
		attribute.Int("step.rows", rows),
	)
	attrs := metric.WithAttributes(
		attribute.String("stage_id", stageID),
		attribute.String("status", status),
	)
	t.stageRuns.Add(ctx, 1, attrs)
	t.stageDuration.Record(ctx, duration.Seconds(), attrs)

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "step execution failed")
	} else {
		span.SetStatus(codes.Ok, "step completed")
	}
	span.End()
}

// RecordOperationCompletion ends the run span and records its metrics
func (t *OperationTracer) RecordOperationCompletion(ctx context.Context, span trace.Span, duration time.Duration, rows int, err error) {
	status := outcome(err)

	span.SetAttributes(
		attribute.String("operation.status", status),
		attribute.Float64("operation.duration_seconds", duration.Seconds()),
		attribute.Int("operation.rows", rows),
	)
	t.runsTotal.Add(ctx, 1, metric.WithAttributes(attribute.String("status", status)))
	if err == nil {
		t.rowsProduced.Add(ctx, int64(rows))
		span.SetStatus(codes.Ok, "operation completed")
	} else {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

func outcome(err error) string {
	if err != nil {
		return "failure"
	}
	return "success"
}
