package observe

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	tracenoop "go.opentelemetry.io/otel/trace/noop"

	"github.com/jonwraymond/healthops/health"
)

// spanName returns the deterministic span name for a check.
// Format: health.check.<name>
func spanName(name string) string {
	return "health.check." + name
}

// Tracer wraps OpenTelemetry tracing with check-specific span management.
//
// Contract:
// - Concurrency: implementations must be safe for concurrent use.
// - Errors: EndSpan must be best-effort and must not panic.
type Tracer interface {
	// StartSpan starts a new span for a check execution.
	StartSpan(ctx context.Context, name string) (context.Context, trace.Span)

	// EndSpan ends the span, recording the check's outcome.
	EndSpan(span trace.Span, result health.Result)
}

// tracerImpl is the concrete implementation of Tracer.
type tracerImpl struct {
	tracer trace.Tracer
}

// newTracer creates a new Tracer wrapping the given OpenTelemetry tracer.
func newTracer(t trace.Tracer) Tracer {
	return &tracerImpl{tracer: t}
}

// StartSpan starts a new span with the check name as an attribute.
func (t *tracerImpl) StartSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return t.tracer.Start(ctx, spanName(name),
		trace.WithAttributes(attribute.String("check.name", name)),
		trace.WithSpanKind(trace.SpanKindInternal),
	)
}

// EndSpan ends the span, recording the result status and any check error.
func (t *tracerImpl) EndSpan(span trace.Span, result health.Result) {
	span.SetAttributes(attribute.String("check.status", result.Status.String()))
	if result.Err != nil {
		span.RecordError(result.Err)
	}

	switch result.Status {
	case health.StatusUnhealthy:
		span.SetStatus(codes.Error, result.Message)
	default:
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}

// noopTracer is a tracer that does nothing.
type noopTracer struct {
	noop trace.Tracer
}

// newNoopTracer creates a no-op tracer.
func newNoopTracer() Tracer {
	return &noopTracer{
		noop: tracenoop.NewTracerProvider().Tracer("noop"),
	}
}

func (t *noopTracer) StartSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return t.noop.Start(ctx, spanName(name))
}

func (t *noopTracer) EndSpan(span trace.Span, result health.Result) {
	span.End()
}
