// Package registry keeps the live mapping from type names to validators.
//
// Names are opaque keys, normalized to lower-case trimmed form on every
// operation, so "String", " string " and "string" address the same entry.
// The registry is the sole owner of its entries: validators enter through
// Register and leave through Unregister, nothing else mutates the map.
package registry

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"
)

// Registry maps normalized type names to validators.
//
// All methods are safe for concurrent use. Validation-time callers should
// still prefer registering everything up front and treating the registry as
// read-only afterwards; Register and Unregister are destructive and carry no
// versioning.
type Registry struct {
	mu         sync.RWMutex
	validators map[string]Validator
	logger     *slog.Logger
}

// New creates an empty registry. Built-in validators are seeded by the
// caller (see the types package) so the registry itself stays free of
// validation logic.
func New(logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.Default()
	}
	return &Registry{
		validators: make(map[string]Validator),
		logger:     logger,
	}
}

// Normalize returns the canonical form of a type name: lower-cased and
// stripped of surrounding whitespace.
func Normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Register adds a validator under name. If the name is already taken the
// call fails with ErrAlreadyRegistered unless override is set, in which case
// the existing entry is replaced.
func (r *Registry) Register(name string, v Validator, override bool) error {
	key := Normalize(name)
	if key == "" {
		return fmt.Errorf("register: empty type name")
	}
	if v == nil {
		return fmt.Errorf("register %q: nil validator", key)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.validators[key]; exists && !override {
		return fmt.Errorf("register %q: %w", key, ErrAlreadyRegistered)
	}
	r.validators[key] = v
	return nil
}

// Unregister removes the validator registered under name. It fails with
// ErrNotRegistered if the name is absent.
func (r *Registry) Unregister(name string) error {
	key := Normalize(name)

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.validators[key]; !exists {
		return fmt.Errorf("unregister %q: %w", key, ErrNotRegistered)
	}
	delete(r.validators, key)
	return nil
}

// Lookup resolves a type name to its validator. It fails with
// ErrUnknownType if the name is absent.
func (r *Registry) Lookup(name string) (Validator, error) {
	key := Normalize(name)

	r.mu.RLock()
	v, exists := r.validators[key]
	r.mu.RUnlock()

	if !exists {
		return nil, fmt.Errorf("lookup %q: %w", key, ErrUnknownType)
	}
	return v, nil
}

// Has reports whether a type name is registered.
func (r *Registry) Has(name string) bool {
	key := Normalize(name)

	r.mu.RLock()
	defer r.mu.RUnlock()
	_, exists := r.validators[key]
	return exists
}

// List returns all registered names, sorted. Callers should treat the
// result as a set; the ordering only exists to keep output stable.
func (r *Registry) List() []string {
	r.mu.RLock()
	names := make([]string, 0, len(r.validators))
	for name := range r.validators {
		names = append(names, name)
	}
	r.mu.RUnlock()

	sort.Strings(names)
	return names
}

// Export serializes the registered name set as a JSON array. Validators are
// functions and cannot travel; only their names do.
func (r *Registry) Export() (string, error) {
	data, err := json.Marshal(r.List())
	if err != nil {
		return "", fmt.Errorf("export types: %w", err)
	}
	return string(data), nil
}

// Import parses a payload produced by Export and checks each name against
// the current registry. Names that are not registered are reported as
// warnings, never as errors: validator logic is not transportable, so an
// import can only tell the caller which types it would have to provide.
// The call fails only when the payload itself does not decode to a JSON
// array of strings.
func (r *Registry) Import(payload string) error {
	var names []string
	if err := json.Unmarshal([]byte(payload), &names); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedImport, err)
	}

	for _, name := range names {
		if !r.Has(name) {
			r.logger.Warn("imported type has no registered validator", "type", Normalize(name))
		}
	}
	return nil
}
