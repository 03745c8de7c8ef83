// Package keymap is the Custom Key Mapper (spec §4.5): it binds
// caller-chosen labels to registered query keys so a caller can invoke a
// named bundle ("give me imports and classes") instead of juggling raw
// query keys.
package keymap

import (
	"fmt"
	"sort"

	"github.com/kestrel-dev/srcmap/pkg/model"
	"github.com/kestrel-dev/srcmap/pkg/registry"
	"github.com/kestrel-dev/srcmap/pkg/tsquery"
)

// Mapper is a userLabel -> query key mapping. The zero value (nil Labels)
// is a legal, empty mapping.
type Mapper struct {
	Labels map[string]string
}

// GetUserKeys returns the mapper's labels, sorted.
func (m Mapper) GetUserKeys() []string {
	keys := make([]string, 0, len(m.Labels))
	for k := range m.Labels {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// GetQueryKeys returns the distinct registry keys the mapper targets,
// sorted.
func (m Mapper) GetQueryKeys() []string {
	seen := make(map[string]bool, len(m.Labels))
	keys := make([]string, 0, len(m.Labels))
	for _, k := range m.Labels {
		if !seen[k] {
			seen[k] = true
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}

// ValidationResult reports whether every target key is registered.
type ValidationResult struct {
	IsValid bool
	Errors  []string
}

// Validate checks that every target key in the mapping is registered in
// reg. It warns (collects an error) on unknown keys rather than silently
// dropping them — the caller decides what to do with an invalid mapper.
func (m Mapper) Validate(reg *registry.Registry) ValidationResult {
	var errs []string
	for _, label := range m.GetUserKeys() {
		key := m.Labels[label]
		if !reg.Registered(key) {
			errs = append(errs, fmt.Sprintf("label %q targets unregistered key %q", label, key))
		}
	}
	return ValidationResult{IsValid: len(errs) == 0, Errors: errs}
}

// Execute runs every target key through reg (using matchesByKey, typically
// the output of the Query Bridge) and remaps the per-key results back onto
// the mapper's user labels. A label whose key produced no matches maps to
// an empty (non-nil) slice, not an absent map entry.
func (m Mapper) Execute(reg *registry.Registry, matchesByKey map[string][]tsquery.Match, ctx any) map[string][]model.TypedResult {
	keys := m.GetQueryKeys()
	filtered := make(map[string][]tsquery.Match, len(keys))
	for _, key := range keys {
		filtered[key] = matchesByKey[key]
	}

	byKey, _ := reg.ExecuteMultiple(filtered, ctx)

	out := make(map[string][]model.TypedResult, len(m.Labels))
	for label, key := range m.Labels {
		out[label] = byKey[key]
	}
	return out
}
