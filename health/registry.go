package health

import (
	"context"
	"sort"
	"strings"
	"time"
)

// Descriptor is the registered identity of one health check: its unique name,
// the check logic, filter tags, and an optional per-check timeout. Descriptors
// are immutable once the registry is built.
type Descriptor struct {
	// Name uniquely identifies the check. Uniqueness is case-insensitive.
	Name string

	// Checker is the check logic.
	Checker Checker

	// Tags are labels used for filtering.
	Tags []string

	// Timeout bounds this check alone. Zero means no per-check bound beyond
	// the evaluator's default.
	Timeout time.Duration
}

// HasTag reports whether the descriptor carries the given tag.
func (d Descriptor) HasTag(tag string) bool {
	for _, t := range d.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// DescriptorOption configures a descriptor at registration time.
type DescriptorOption func(*Descriptor)

// WithTags sets the descriptor's filter tags.
func WithTags(tags ...string) DescriptorOption {
	return func(d *Descriptor) {
		d.Tags = tags
	}
}

// WithTimeout sets a per-check timeout on the descriptor.
func WithTimeout(timeout time.Duration) DescriptorOption {
	return func(d *Descriptor) {
		d.Timeout = timeout
	}
}

// RegistryBuilder assembles a Registry at application startup. Add calls
// accumulate descriptors; Build validates them and freezes the set.
type RegistryBuilder struct {
	descriptors []Descriptor
}

// NewRegistryBuilder creates an empty builder.
func NewRegistryBuilder() *RegistryBuilder {
	return &RegistryBuilder{}
}

// Add registers a check under the given name. It returns the builder so calls
// can be chained. Duplicate names are detected by Build, not here.
func (b *RegistryBuilder) Add(name string, checker Checker, opts ...DescriptorOption) *RegistryBuilder {
	d := Descriptor{Name: name, Checker: checker}
	for _, opt := range opts {
		opt(&d)
	}
	b.descriptors = append(b.descriptors, d)
	return b
}

// AddFunc registers a plain function as a check.
func (b *RegistryBuilder) AddFunc(name string, fn func(ctx context.Context) Result, opts ...DescriptorOption) *RegistryBuilder {
	return b.Add(name, CheckerFunc(fn), opts...)
}

// Build validates the accumulated descriptors and returns a frozen Registry.
// Registering two checks whose names differ only in case is a *ConfigError
// wrapping ErrDuplicateName.
func (b *RegistryBuilder) Build() (*Registry, error) {
	byKey := make(map[string]Descriptor, len(b.descriptors))
	names := make([]string, 0, len(b.descriptors))
	var dups []string

	for _, d := range b.descriptors {
		key := strings.ToLower(d.Name)
		if _, exists := byKey[key]; exists {
			dups = append(dups, d.Name)
			continue
		}
		byKey[key] = d
		names = append(names, d.Name)
	}

	if len(dups) > 0 {
		sort.Strings(names)
		return nil, &ConfigError{Names: dups, Registered: names, err: ErrDuplicateName}
	}

	sort.Strings(names)
	return &Registry{byKey: byKey, names: names}, nil
}

// Registry is the frozen set of registered check descriptors, keyed by name.
// It is read-only after Build and safe for concurrent use.
type Registry struct {
	byKey map[string]Descriptor
	names []string
}

// Names returns the registered check names sorted alphabetically.
func (r *Registry) Names() []string {
	names := make([]string, len(r.names))
	copy(names, r.names)
	return names
}

// Len returns the number of registered checks.
func (r *Registry) Len() int {
	return len(r.byKey)
}

// Lookup returns the descriptor registered under name. The comparison is
// case-insensitive.
func (r *Registry) Lookup(name string) (Descriptor, bool) {
	d, ok := r.byKey[strings.ToLower(name)]
	return d, ok
}

// descriptorsSorted returns all descriptors ordered by name.
func (r *Registry) descriptorsSorted() []Descriptor {
	out := make([]Descriptor, 0, len(r.names))
	for _, name := range r.names {
		out = append(out, r.byKey[strings.ToLower(name)])
	}
	return out
}
