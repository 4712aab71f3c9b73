package health

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

// EvaluatorConfig configures the evaluator.
type EvaluatorConfig struct {
	// CheckTimeout bounds each check that has no timeout of its own.
	// Zero means checks are bounded only by the caller's context.
	CheckTimeout time.Duration

	// MaxConcurrent limits how many checks run at once.
	// Zero means all selected checks run concurrently.
	MaxConcurrent int

	// CacheTTL makes unfiltered evaluations serve the previous report while
	// it is younger than the TTL, shielding slow dependencies from probe
	// storms. Zero disables caching. Filtered evaluations never use the
	// cache.
	CacheTTL time.Duration
}

// Evaluator runs registered health checks and aggregates their results.
// It holds an immutable reference to a Registry and is stateless per call
// apart from the optional report cache; it is safe for concurrent use.
type Evaluator struct {
	registry *Registry
	config   EvaluatorConfig

	mu       sync.Mutex
	cached   *Report
	cachedAt time.Time
}

// NewEvaluator creates an evaluator over the given registry.
func NewEvaluator(registry *Registry, config ...EvaluatorConfig) *Evaluator {
	cfg := EvaluatorConfig{}
	if len(config) > 0 {
		cfg = config[0]
	}
	return &Evaluator{registry: registry, config: cfg}
}

// Registry returns the registry the evaluator runs against.
func (e *Evaluator) Registry() *Registry {
	return e.registry
}

type outcome struct {
	name   string
	result Result
	err    error
}

// Evaluate runs the checks selected by the given filters and returns the
// aggregate report.
//
// Checks run concurrently; a check that returns an error, exceeds its
// timeout, or panics yields an Unhealthy result for that check alone and
// never aborts its siblings. The evaluator waits for every selected check
// before producing a report, so the report is always a complete snapshot.
//
// Two outcomes are errors rather than reports: a ByNames filter referencing
// an unregistered check returns a *ConfigError before anything runs, and
// cancellation of ctx before all checks finish returns an error wrapping
// ErrCanceled with no partial report.
//
// An empty selection (no registered checks, or a filter matching none)
// returns a Healthy report with zero entries.
func (e *Evaluator) Evaluate(ctx context.Context, filters ...Filter) (*Report, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCanceled, err)
	}

	for _, f := range filters {
		if err := f.validate(e.registry); err != nil {
			return nil, err
		}
	}

	if len(filters) == 0 {
		if report := e.freshCached(); report != nil {
			return report, nil
		}
	}

	selected := e.selectDescriptors(filters)
	start := time.Now()

	if len(selected) == 0 {
		return newReport(nil, start), nil
	}

	outcomes := make(chan outcome, len(selected))
	var g errgroup.Group
	if e.config.MaxConcurrent > 0 {
		g.SetLimit(e.config.MaxConcurrent)
	}

	for _, d := range selected {
		d := d
		g.Go(func() error {
			res, err := e.runCheck(ctx, d)
			outcomes <- outcome{name: d.Name, result: res, err: err}
			return nil
		})
	}

	done := make(chan struct{})
	go func() {
		_ = g.Wait()
		close(done)
	}()

	select {
	case <-done:
		// A cancellation racing the last check still wins: no partial report.
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrCanceled, err)
		}
	case <-ctx.Done():
		return nil, fmt.Errorf("%w: %v", ErrCanceled, ctx.Err())
	}

	results := make(map[string]Result, len(selected))
	for range selected {
		o := <-outcomes
		if o.err != nil {
			return nil, fmt.Errorf("%w: %v", ErrCanceled, o.err)
		}
		results[o.name] = o.result
	}

	report := newReport(results, start)
	if len(filters) == 0 && e.config.CacheTTL > 0 {
		e.mu.Lock()
		e.cached = report
		e.cachedAt = time.Now()
		e.mu.Unlock()
	}
	return report, nil
}

// selectDescriptors applies the filters to the registry in name order.
func (e *Evaluator) selectDescriptors(filters []Filter) []Descriptor {
	all := e.registry.descriptorsSorted()
	if len(filters) == 0 {
		return all
	}
	selected := make([]Descriptor, 0, len(all))
	for _, d := range all {
		match := true
		for _, f := range filters {
			if !f.matches(d) {
				match = false
				break
			}
		}
		if match {
			selected = append(selected, d)
		}
	}
	return selected
}

// runCheck executes one check bounded by its timeout. The returned error is
// non-nil only when the caller's context was canceled; a timeout or failure
// of the check itself is absorbed into the Result.
func (e *Evaluator) runCheck(ctx context.Context, d Descriptor) (Result, error) {
	timeout := d.Timeout
	if timeout <= 0 {
		timeout = e.config.CheckTimeout
	}

	checkCtx := ctx
	if timeout > 0 {
		var cancel context.CancelFunc
		checkCtx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	start := time.Now()
	resultCh := make(chan Result, 1)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				resultCh <- Unhealthy(
					fmt.Sprintf("check panicked: %v", r),
					fmt.Errorf("%w: %v", ErrCheckPanicked, r),
				)
			}
		}()
		resultCh <- d.Checker.Check(checkCtx)
	}()

	select {
	case res := <-resultCh:
		res.Duration = time.Since(start)
		if res.Timestamp.IsZero() {
			res.Timestamp = start
		}
		return res, nil
	case <-checkCtx.Done():
		if err := ctx.Err(); err != nil {
			// The whole evaluation is being abandoned, not just this check.
			return Result{}, err
		}
		res := Unhealthy("check timed out", ErrCheckTimeout)
		res.Duration = time.Since(start)
		res.Timestamp = start
		return res, nil
	}
}

// freshCached returns the cached report while it is younger than CacheTTL.
func (e *Evaluator) freshCached() *Report {
	if e.config.CacheTTL <= 0 {
		return nil
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.cached == nil || time.Since(e.cachedAt) > e.config.CacheTTL {
		return nil
	}
	return e.cached
}
