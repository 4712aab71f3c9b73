package checks

import (
	"context"
	"fmt"
	"runtime"

	"github.com/jonwraymond/healthops/health"
)

// MemoryConfig configures the memory checker.
type MemoryConfig struct {
	// WarningThreshold is the fraction of MaxAlloc that triggers a degraded
	// status. Value should be between 0 and 1. Default: 0.8 (80%)
	WarningThreshold float64

	// CriticalThreshold is the fraction of MaxAlloc that triggers an
	// unhealthy status. Value should be between 0 and 1. Default: 0.95 (95%)
	CriticalThreshold float64

	// MaxAlloc is the maximum expected heap allocation in bytes.
	// If zero, the runtime's reported Sys size is used.
	MaxAlloc uint64
}

// Memory reports on the process's heap usage.
type Memory struct {
	config MemoryConfig
}

// NewMemory creates a memory checker, applying defaults to out-of-range
// thresholds.
func NewMemory(config MemoryConfig) *Memory {
	if config.WarningThreshold <= 0 || config.WarningThreshold >= 1 {
		config.WarningThreshold = 0.8
	}
	if config.CriticalThreshold <= 0 || config.CriticalThreshold >= 1 {
		config.CriticalThreshold = 0.95
	}
	if config.CriticalThreshold < config.WarningThreshold {
		config.CriticalThreshold = config.WarningThreshold
	}
	return &Memory{config: config}
}

// Check implements health.Checker.
func (m *Memory) Check(ctx context.Context) health.Result {
	var stats runtime.MemStats
	runtime.ReadMemStats(&stats)

	maxAlloc := m.config.MaxAlloc
	if maxAlloc == 0 {
		maxAlloc = stats.Sys
	}

	details := map[string]any{
		"alloc_bytes":  stats.Alloc,
		"max_alloc":    maxAlloc,
		"heap_objects": stats.HeapObjects,
		"num_gc":       stats.NumGC,
		"goroutines":   runtime.NumGoroutine(),
	}

	if maxAlloc == 0 {
		return health.Healthy("memory stats unavailable").WithDetails(details)
	}

	usage := float64(stats.Alloc) / float64(maxAlloc)
	details["usage_percent"] = usage * 100

	switch {
	case usage >= m.config.CriticalThreshold:
		return health.Unhealthy(
			fmt.Sprintf("memory usage critical: %.1f%%", usage*100),
			fmt.Errorf("heap allocation %d exceeds %.0f%% of %d", stats.Alloc, m.config.CriticalThreshold*100, maxAlloc),
		).WithDetails(details)
	case usage >= m.config.WarningThreshold:
		return health.Degraded(
			fmt.Sprintf("memory usage high: %.1f%%", usage*100),
		).WithDetails(details)
	default:
		return health.Healthy(
			fmt.Sprintf("memory usage normal: %.1f%%", usage*100),
		).WithDetails(details)
	}
}
