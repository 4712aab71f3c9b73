package observe

import (
	"context"
	"time"

	"github.com/jonwraymond/healthops/health"
)

// Middleware wraps health checkers with observability (tracing, metrics,
// logging).
//
// Contract:
//   - Concurrency: Wrap() returns a thread-safe Checker.
//   - Context: Propagates context through tracing spans.
//   - Ownership: Results from the wrapped checker pass through unmodified.
type Middleware struct {
	tracer  Tracer
	metrics Metrics
	logger  Logger
}

// NewMiddleware creates a new Middleware with the given observability components.
func NewMiddleware(tracer Tracer, metrics Metrics, logger Logger) *Middleware {
	return &Middleware{
		tracer:  tracer,
		metrics: metrics,
		logger:  logger,
	}
}

// Wrap wraps a checker so each execution is traced, measured and logged
// under the given check name.
func (m *Middleware) Wrap(name string, checker health.Checker) health.Checker {
	logger := m.logger.WithCheck(name)

	return health.CheckerFunc(func(ctx context.Context) health.Result {
		ctx, span := m.tracer.StartSpan(ctx, name)
		start := time.Now()

		result := checker.Check(ctx)

		// The evaluator stamps durations onto results after the checker
		// returns, so measure here for telemetry purposes.
		if result.Duration == 0 {
			result.Duration = time.Since(start)
		}

		m.tracer.EndSpan(span, result)
		m.metrics.RecordCheck(ctx, name, result)

		fields := []Field{
			{Key: "status", Value: result.Status.String()},
			{Key: "duration_ms", Value: float64(result.Duration.Milliseconds())},
		}
		switch result.Status {
		case health.StatusUnhealthy:
			if result.Err != nil {
				fields = append(fields, Field{Key: "error", Value: result.Err.Error()})
			}
			logger.Error(ctx, "health check failed", fields...)
		case health.StatusDegraded:
			logger.Warn(ctx, "health check degraded", fields...)
		default:
			logger.Debug(ctx, "health check passed", fields...)
		}

		return result
	})
}

// MiddlewareFromObserver creates a Middleware from an Observer.
// This is a convenience function for common use cases.
func MiddlewareFromObserver(obs Observer) (*Middleware, error) {
	tracer := newTracer(obs.Tracer())

	metrics, err := newMetrics(obs.Meter())
	if err != nil {
		return nil, err
	}

	return NewMiddleware(tracer, metrics, obs.Logger()), nil
}

// NoopMiddleware creates a Middleware that passes checks through with no
// telemetry. Useful as a default when observability is disabled.
func NoopMiddleware() *Middleware {
	return NewMiddleware(newNoopTracer(), &noopMetrics{}, &noopLogger{})
}
