// Package match resolves type-name expressions against a registry and tests
// single values, in two deliberately separate forms: a non-raising boolean
// probe for control flow, and a validating form that returns the accepted
// (possibly narrowed) value or a rich mismatch error.
//
// Type arguments may be single names ("string"), lists of names, or
// "|"-delimited unions ("string|number"); whitespace around delimiters and
// empty segments are ignored.
package match

import (
	"fmt"
	"strings"

	"github.com/aretw0/typeguard/pkg/kindof"
	"github.com/aretw0/typeguard/pkg/registry"
)

// Matcher tests values against registered type names.
type Matcher struct {
	registry *registry.Registry
}

// New creates a matcher backed by reg.
func New(reg *registry.Registry) *Matcher {
	return &Matcher{registry: reg}
}

// Registry returns the backing registry, for validators that compose.
func (m *Matcher) Registry() *registry.Registry {
	return m.registry
}

// ExpandTypes flattens type arguments into normalized candidate names:
// each argument is split on "|", segments trimmed and lower-cased, empty
// segments dropped. Order is preserved.
func ExpandTypes(types ...string) []string {
	var names []string
	for _, t := range types {
		for _, segment := range strings.Split(t, "|") {
			if name := registry.Normalize(segment); name != "" {
				names = append(names, name)
			}
		}
	}
	return names
}

// Matches reports whether value satisfies at least one of the candidate
// types. A mismatch never raises; the only error condition is a candidate
// naming an unregistered type, which is a configuration mistake rather than
// a property of the value.
func (m *Matcher) Matches(value any, types ...string) (bool, error) {
	names := ExpandTypes(types...)
	if len(names) == 0 {
		return false, fmt.Errorf("no type names given")
	}

	for _, name := range names {
		v, err := m.registry.Lookup(name)
		if err != nil {
			return false, err
		}
		if _, err := v.Check(value); err == nil {
			return true, nil
		}
	}
	return false, nil
}

// Validate tries each candidate type in order and returns the accepted
// value from the first validator that succeeds; that value may be a
// narrowed form of the input. If every candidate rejects, it returns a
// *MismatchError carrying each candidate's rejection reason in trial order.
func (m *Matcher) Validate(value any, types ...string) (any, error) {
	names := ExpandTypes(types...)
	if len(names) == 0 {
		return nil, fmt.Errorf("no type names given")
	}

	reasons := make([]string, 0, len(names))
	for _, name := range names {
		v, err := m.registry.Lookup(name)
		if err != nil {
			return nil, err
		}

		accepted, err := v.Check(value)
		if err == nil {
			return accepted, nil
		}
		reasons = append(reasons, fmt.Sprintf("%s: %v", name, err))
	}

	return nil, &MismatchError{
		Types:   names,
		Kind:    kindof.Kind(value),
		Reasons: reasons,
	}
}

// MismatchError reports that a value matched none of the attempted types.
// Reasons preserves each validator's own rejection message, in trial order.
type MismatchError struct {
	Types   []string
	Kind    string
	Reasons []string
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("value of kind %s matches none of [%s]: %s",
		e.Kind, strings.Join(e.Types, ", "), strings.Join(e.Reasons, "; "))
}
