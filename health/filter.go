package health

import "strings"

// Filter narrows which registered checks an evaluation runs. Filters apply to
// a single Evaluate call and are not stored. Passing several filters to
// Evaluate selects the checks matching all of them.
type Filter struct {
	names []string
	pred  func(Descriptor) bool
}

// ByNames selects only the named checks. Names compare case-insensitively.
// Unlike other filters, the names are validated against the registry before
// any check runs: a name with no registered check fails the evaluation with a
// *ConfigError wrapping ErrUnknownCheck, since asking for a check that does
// not exist is a setup bug rather than something to silently skip.
func ByNames(names ...string) Filter {
	keys := make(map[string]bool, len(names))
	for _, n := range names {
		keys[strings.ToLower(n)] = true
	}
	return Filter{
		names: names,
		pred: func(d Descriptor) bool {
			return keys[strings.ToLower(d.Name)]
		},
	}
}

// ByTags selects checks carrying at least one of the given tags.
func ByTags(tags ...string) Filter {
	return Filter{
		pred: func(d Descriptor) bool {
			for _, tag := range tags {
				if d.HasTag(tag) {
					return true
				}
			}
			return false
		},
	}
}

// Predicate wraps an arbitrary predicate over descriptors as a Filter.
func Predicate(fn func(Descriptor) bool) Filter {
	return Filter{pred: fn}
}

// matches reports whether the filter includes the descriptor.
func (f Filter) matches(d Descriptor) bool {
	if f.pred == nil {
		return true
	}
	return f.pred(d)
}

// validate checks name-based filters against the registry.
func (f Filter) validate(reg *Registry) error {
	if len(f.names) == 0 {
		return nil
	}
	var missing []string
	for _, name := range f.names {
		if _, ok := reg.Lookup(name); !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return &ConfigError{Names: missing, Registered: reg.Names(), err: ErrUnknownCheck}
	}
	return nil
}
