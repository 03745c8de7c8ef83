// Package bridge is the Query Bridge (spec §4.3): it is the only component
// that knows about both the Tree-sitter Query Engine (compiling and
// running raw query text) and the Query Registry (turning matches into
// typed results). Nothing downstream of the bridge ever sees a raw
// tsquery.Match.
package bridge

import (
	"log/slog"

	ts "github.com/tree-sitter/go-tree-sitter"

	"github.com/kestrel-dev/srcmap/pkg/model"
	"github.com/kestrel-dev/srcmap/pkg/registry"
	"github.com/kestrel-dev/srcmap/pkg/tsparse"
	"github.com/kestrel-dev/srcmap/pkg/tsquery"
	"github.com/kestrel-dev/srcmap/pkg/util"
)

// Bridge wires a tsquery.Engine to a registry.Registry.
type Bridge struct {
	engine   *tsquery.Engine
	registry *registry.Registry
	logger   *slog.Logger
}

// New creates a Bridge over an already-populated engine and registry. Both
// are expected to have their query keys registered before use (see
// tsquery.RegisterAll and the per-language processor packages).
func New(engine *tsquery.Engine, reg *registry.Registry, logger *slog.Logger) *Bridge {
	if logger == nil {
		logger = util.NewLogger(util.DefaultLoggerConfig())
	}
	return &Bridge{engine: engine, registry: reg, logger: logger}
}

// ExecuteKey runs one query key against tree and routes its matches through
// the registered processor, returning typed results.
func (b *Bridge) ExecuteKey(key string, tree *ts.Tree, lang tsparse.Language, ctx any) ([]model.TypedResult, error) {
	matches := b.engine.ExecuteSelectedQueries([]string{key}, tree, lang)[key]
	return b.registry.Execute(key, matches, ctx)
}

// ExecuteAllLanguageQueries runs every key that is both registered in
// registry and defined in the engine for lang, intersecting the two key
// sets rather than assuming they're identical (a key can be defined in
// querytext without a processor yet being wired, or vice versa during
// incremental rollout).
func (b *Bridge) ExecuteAllLanguageQueries(tree *ts.Tree, lang tsparse.Language, ctx any) (map[string][]model.TypedResult, map[string]error) {
	registered := b.registry.KeysForLanguage(lang)

	matchesByKey := b.engine.ExecuteSelectedQueries(registered, tree, lang)

	return b.registry.ExecuteMultiple(matchesByKey, ctx)
}
