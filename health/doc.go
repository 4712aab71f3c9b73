// Package health provides a health check evaluation engine.
//
// This package implements the core of a health checking system: a registry of
// named check descriptors assembled once at startup, and an evaluator that runs
// a filtered subset of those checks concurrently, bounds each check with a
// timeout, and folds the per-check results into a single aggregate report.
//
// # Core Concepts
//
// A Checker is any component that can report its health status. The Status
// type represents the health state: Healthy, Degraded, or Unhealthy. Statuses
// are ordered by severity (Healthy < Degraded < Unhealthy) and a Report's
// overall status is always the most severe status among its checks.
//
// # Registering Checks
//
// Checks are registered through a RegistryBuilder before the first evaluation
// and are immutable afterwards:
//
//	reg, err := health.NewRegistryBuilder().
//	    Add("database", dbChecker, health.WithTags("ready")).
//	    Add("cache", cacheChecker, health.WithTimeout(2*time.Second)).
//	    Build()
//	if err != nil {
//	    log.Fatal(err) // duplicate name: a configuration bug
//	}
//
// Names are unique under case-insensitive comparison; registering "DB" after
// "db" fails at Build time rather than at request time.
//
// # Evaluating
//
// An Evaluator runs checks concurrently and produces a Report:
//
//	ev := health.NewEvaluator(reg)
//	report, err := ev.Evaluate(ctx)
//	if err != nil {
//	    // context canceled before all checks finished
//	}
//	if report.Status == health.StatusUnhealthy {
//	    log.Printf("unhealthy: %v", report.Names())
//	}
//
// Individual check failures never fail the evaluation: a check that returns an
// error, times out, or panics is captured as an Unhealthy result for that check
// alone, and its siblings still run to completion. Only two conditions are
// exceptional: a filter naming an unregistered check (a ConfigError) and the
// caller's context being canceled before all checks finish (ErrCanceled).
//
// # Filtering
//
// Evaluate accepts optional filters narrowing which registered checks run:
//
//	report, err := ev.Evaluate(ctx, health.ByTags("ready"))
//	report, err = ev.Evaluate(ctx, health.ByNames("database"))
//
// A filter that matches nothing yields a Healthy report with zero entries.
// This is deliberate but easy to misread: an empty report is "healthy" only in
// the sense that nothing was found to be wrong, so callers that expect checks
// to have run should also inspect len(report.Checks).
package health
