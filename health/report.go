package health

import (
	"sort"
	"time"
)

// Report is the aggregate outcome of one evaluation: the overall status, the
// wall-clock duration of the whole run, and each selected check's result keyed
// by its registered name. A report is created fresh per Evaluate call and is
// not mutated afterwards.
//
// The overall Status is always the most severe status among Checks, or
// StatusHealthy when Checks is empty.
type Report struct {
	// Status is the most severe status among the included checks.
	Status Status

	// Duration is wall-clock time from the start of the evaluation to the
	// completion of the last check. Checks run concurrently, so this is not
	// the sum of the individual durations.
	Duration time.Duration

	// Timestamp is when the evaluation started.
	Timestamp time.Time

	// Checks maps each selected check's name to its result.
	Checks map[string]Result
}

// Names returns the report's check names sorted alphabetically.
func (r *Report) Names() []string {
	names := make([]string, 0, len(r.Checks))
	for name := range r.Checks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// newReport folds per-check results into a report. The empty-set policy is
// part of the contract: zero results aggregate to StatusHealthy.
func newReport(results map[string]Result, start time.Time) *Report {
	status := StatusHealthy
	for _, res := range results {
		status = MaxStatus(status, res.Status)
	}
	return &Report{
		Status:    status,
		Duration:  time.Since(start),
		Timestamp: start,
		Checks:    results,
	}
}
