package health

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrCanceled indicates the evaluation was abandoned because the caller's
	// context was canceled before all checks completed.
	ErrCanceled = errors.New("health: evaluation canceled")

	// ErrCheckTimeout indicates a single health check exceeded its timeout.
	ErrCheckTimeout = errors.New("health: check timeout")

	// ErrCheckPanicked indicates a health check panicked during execution.
	ErrCheckPanicked = errors.New("health: check panicked")

	// ErrDuplicateName indicates two checks were registered under the same
	// name (names compare case-insensitively).
	ErrDuplicateName = errors.New("health: duplicate check name")

	// ErrUnknownCheck indicates a filter referenced a name that is not in the
	// registry.
	ErrUnknownCheck = errors.New("health: unknown check name")
)

// ConfigError reports a registry or filter misconfiguration. It identifies a
// setup defect (duplicate registration, a filter naming an unregistered
// check), not a transient runtime condition, and is never recovered silently.
type ConfigError struct {
	// Names are the offending check names.
	Names []string

	// Registered is the full set of registered names at the time of the error.
	Registered []string

	err error
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%v: %s", e.err, strings.Join(e.Names, ", "))
	if len(e.Registered) > 0 {
		fmt.Fprintf(&b, " (registered: %s)", strings.Join(e.Registered, ", "))
	}
	return b.String()
}

// Unwrap returns the underlying sentinel (ErrDuplicateName or ErrUnknownCheck).
func (e *ConfigError) Unwrap() error {
	return e.err
}
