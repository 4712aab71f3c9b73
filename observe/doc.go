// Package observe provides observability for health check evaluations.
//
// The health evaluator itself never logs or emits telemetry; this package
// adds both as an opt-in layer. An Observer bootstraps OpenTelemetry tracing
// and metrics providers from configuration, and Middleware wraps individual
// health checkers so every check execution produces a span, a set of metrics,
// and a structured log line.
//
// # Basic Usage
//
//	obs, err := observe.NewObserver(ctx, observe.Config{
//	    ServiceName: "payments",
//	    Tracing:     observe.TracingConfig{Enabled: true, Exporter: "otlp", SamplePct: 1.0},
//	    Metrics:     observe.MetricsConfig{Enabled: true, Exporter: "prometheus"},
//	    Logging:     observe.LoggingConfig{Enabled: true, Level: "info"},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer obs.Shutdown(context.Background())
//
//	mw, err := observe.MiddlewareFromObserver(obs)
//	reg, err := health.NewRegistryBuilder().
//	    Add("database", mw.Wrap("database", dbChecker)).
//	    Build()
//
// Each wrapped check records a "health.check.<name>" span, increments
// health.check.total (and health.check.failures when the result is not
// healthy), and records health.check.duration_ms.
package observe
