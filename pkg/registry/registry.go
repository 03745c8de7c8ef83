// Package registry is the Query Registry & Engine: it maps a query key to
// the processor that turns its raw matches into typed results, keeps a
// per-language index so a caller can ask "which keys apply to this file's
// language", and enforces the one contract every processor must honor —
// every result it returns carries the key it was registered under.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/kestrel-dev/srcmap/pkg/model"
	"github.com/kestrel-dev/srcmap/pkg/tsparse"
	"github.com/kestrel-dev/srcmap/pkg/tsquery"
)

// ProcessorFunc is a pure function from matches to typed results (glossary:
// "Processor"). It never errors — a processor that cannot make sense of a
// match skips it rather than failing the whole batch, matching §7's query-
// error category (absorbed at the engine boundary, not propagated here).
// ctx is opaque to the registry; pkg/bridge supplies the concrete type its
// processors expect (current file path, language, enclosing symbol scope).
type ProcessorFunc func(matches []tsquery.Match, ctx any) []model.TypedResult

// Entry is what a query key registers.
type Entry struct {
	Processor          ProcessorFunc
	SupportedLanguages []tsparse.Language
	Priority           int // 0-100, higher runs first in ExecuteByPriority
	DeclaredResultType string
}

// Registry maps query key -> Entry, keeping a per-language index and a
// bounded ring buffer of recent execution metrics per key.
type Registry struct {
	mu       sync.RWMutex
	entries  map[string]Entry
	byLang   map[tsparse.Language]map[string]bool
	metrics  map[string]*metricsRing
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{
		entries: make(map[string]Entry),
		byLang:  make(map[tsparse.Language]map[string]bool),
		metrics: make(map[string]*metricsRing),
	}
}

// Register adds key -> entry. Fails if entry.DeclaredResultType != key, the
// runtime restatement of the type-level contract that a key and its result
// shape agree (spec §4.2).
func (r *Registry) Register(key string, entry Entry) error {
	if entry.DeclaredResultType != key {
		return fmt.Errorf("registry: key %q declares result type %q, must match", key, entry.DeclaredResultType)
	}
	if entry.Processor == nil {
		return fmt.Errorf("registry: key %q has a nil processor", key)
	}
	if len(entry.SupportedLanguages) == 0 {
		return fmt.Errorf("registry: key %q declares no supported languages", key)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries[key] = entry
	for _, lang := range entry.SupportedLanguages {
		if r.byLang[lang] == nil {
			r.byLang[lang] = make(map[string]bool)
		}
		r.byLang[lang][key] = true
	}
	if r.metrics[key] == nil {
		r.metrics[key] = newMetricsRing(ringCapacity)
	}
	return nil
}

// Registered reports whether key has been registered.
func (r *Registry) Registered(key string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.entries[key]
	return ok
}

// KeysForLanguage returns the registered keys that apply to lang, sorted
// for deterministic iteration.
func (r *Registry) KeysForLanguage(lang tsparse.Language) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	set := r.byLang[lang]
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Execute runs the processor registered under key against matches, records
// metrics, and verifies invariant I1 (every result's queryName equals key)
// before returning. A result that fails I1 is dropped and logged into the
// metrics entry's error, rather than silently trusted.
func (r *Registry) Execute(key string, matches []tsquery.Match, ctx any) ([]model.TypedResult, error) {
	r.mu.RLock()
	entry, ok := r.entries[key]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("registry: key %q is not registered", key)
	}

	start := nowFunc()
	raw := entry.Processor(matches, ctx)
	duration := nowFunc().Sub(start)

	results := make([]model.TypedResult, 0, len(raw))
	var violations int
	for _, res := range raw {
		if res.ResultQueryName() != key {
			violations++
			continue
		}
		results = append(results, res)
	}

	var recErr error
	if violations > 0 {
		recErr = fmt.Errorf("registry: key %q processor emitted %d result(s) with mismatched queryName", key, violations)
	}
	r.recordMetrics(key, duration, len(results), recErr)
	return results, recErr
}

// ExecuteMultiple runs every key in matchesByKey, settling all of them even
// if some fail (spec §5: "a timeout ... is recorded ... and proceeds; it is
// not fatal" generalizes to every per-key failure here). Returns the
// results keyed the same way, and a map of key -> error for any failures.
func (r *Registry) ExecuteMultiple(matchesByKey map[string][]tsquery.Match, ctx any) (map[string][]model.TypedResult, map[string]error) {
	results := make(map[string][]model.TypedResult, len(matchesByKey))
	errs := make(map[string]error)

	var wg sync.WaitGroup
	var mu sync.Mutex
	for key, matches := range matchesByKey {
		wg.Add(1)
		go func(key string, matches []tsquery.Match) {
			defer wg.Done()
			res, err := r.Execute(key, matches, ctx)
			mu.Lock()
			results[key] = res
			if err != nil {
				errs[key] = err
			}
			mu.Unlock()
		}(key, matches)
	}
	wg.Wait()

	return results, errs
}

// ExecuteByPriority runs the keys registered for lang in descending
// priority order (ties broken lexicographically), sequentially. Useful
// when a later key's processor context depends on an earlier key having
// already run (e.g. class definitions before their nested methods).
func (r *Registry) ExecuteByPriority(lang tsparse.Language, matchesByKey map[string][]tsquery.Match, ctx any) map[string][]model.TypedResult {
	keys := r.KeysForLanguage(lang)

	r.mu.RLock()
	sort.SliceStable(keys, func(i, j int) bool {
		pi, pj := r.entries[keys[i]].Priority, r.entries[keys[j]].Priority
		if pi != pj {
			return pi > pj
		}
		return keys[i] < keys[j]
	})
	r.mu.RUnlock()

	results := make(map[string][]model.TypedResult, len(keys))
	for _, key := range keys {
		matches, ok := matchesByKey[key]
		if !ok {
			continue
		}
		res, _ := r.Execute(key, matches, ctx)
		results[key] = res
	}
	return results
}

// ExecuteConditional runs only the keys for which predicate returns true.
func (r *Registry) ExecuteConditional(matchesByKey map[string][]tsquery.Match, ctx any, predicate func(key string) bool) map[string][]model.TypedResult {
	filtered := make(map[string][]tsquery.Match)
	for key, matches := range matchesByKey {
		if predicate(key) {
			filtered[key] = matches
		}
	}
	results, _ := r.ExecuteMultiple(filtered, ctx)
	return results
}

// Validate checks the registry-wide invariant that every entry's declared
// result type matches its key (guaranteed at Register time, re-checked here
// in case of direct struct mutation). It does not check per-language
// coverage.
func (r *Registry) Validate() error {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for key, entry := range r.entries {
		if entry.DeclaredResultType != key {
			return fmt.Errorf("registry: invariant violated, key %q declares %q", key, entry.DeclaredResultType)
		}
	}
	return nil
}

// Metrics returns the recent execution metrics recorded for key, oldest
// first. A registered key that has not run yet has no entries; a key that
// was never registered yields nil.
func (r *Registry) Metrics(key string) []ExecutionMetrics {
	r.mu.RLock()
	ring := r.metrics[key]
	r.mu.RUnlock()
	if ring == nil {
		return nil
	}
	return ring.snapshot()
}

func (r *Registry) recordMetrics(key string, duration durationLike, resultCount int, err error) {
	r.mu.Lock()
	ring := r.metrics[key]
	if ring == nil {
		ring = newMetricsRing(ringCapacity)
		r.metrics[key] = ring
	}
	r.mu.Unlock()

	ring.record(ExecutionMetrics{
		Duration:    duration,
		ResultCount: resultCount,
		Err:         err,
	})
}
