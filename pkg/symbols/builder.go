package symbols

import (
	"strings"

	"github.com/kestrel-dev/srcmap/pkg/model"
)

// symbolBuilder accumulates the typed results from every query key executed
// against one file's tree into the flat Symbol/SymbolDependencyEdge/import
// shape FileResult exposes, assigning each definition a hierarchical
// namePath (I2) from its ParentClass and anchoring each dependency edge's
// From to the symbol that lexically encloses it.
type symbolBuilder struct {
	filePath string
	language string

	syms         []model.Symbol
	pendingEdges []model.SymbolDependencyEdge
	imports      []model.ImportSourceResult
}

func newSymbolBuilder(filePath, language string) *symbolBuilder {
	return &symbolBuilder{filePath: filePath, language: language}
}

// ingest folds every result produced by one query key into the builder,
// dispatching on the result's concrete type rather than the key string so
// behavior does not depend on key-naming conventions. Dependency edges are
// held unanchored until edges() runs, since the query keys that produce
// them execute in no particular order relative to the definitions that
// may enclose them.
func (b *symbolBuilder) ingest(key string, results []model.TypedResult) {
	for _, res := range results {
		switch r := res.(type) {
		case model.DefinitionResult:
			b.syms = append(b.syms, b.definitionToSymbol(key, r))
		case model.DependencyResult:
			b.pendingEdges = append(b.pendingEdges, r.Edge)
		case model.ImportSourceResult:
			b.imports = append(b.imports, r)
		}
	}
}

func (b *symbolBuilder) definitionToSymbol(key string, r model.DefinitionResult) model.Symbol {
	parent := r.ParentClass
	namePath := model.BuildNamePath(parent, r.Name)
	return model.Symbol{
		Kind:       kindForKey(key),
		Name:       r.Name,
		NamePath:   namePath,
		FilePath:   b.filePath,
		Location:   r.Location,
		Language:   b.language,
		Parent:     parent,
		Parameters: r.Parameters,
		ReturnType: r.ReturnType,
		Text:       r.NodeText,
	}
}

func (b *symbolBuilder) symbols() []model.Symbol { return b.syms }

// edges resolves every pending dependency edge's From to the namePath of
// the symbol that lexically encloses it (the smallest declaration span
// containing the edge's location), falling back to the file path for
// references with no enclosing symbol.
func (b *symbolBuilder) edges() []model.SymbolDependencyEdge {
	out := make([]model.SymbolDependencyEdge, len(b.pendingEdges))
	for i, e := range b.pendingEdges {
		e.From = b.enclosingNamePath(e.Location)
		out[i] = e
	}
	return out
}

func (b *symbolBuilder) importSources() []model.ImportSourceResult { return b.imports }

// enclosingNamePath returns the namePath of the symbol with the smallest
// declaration range containing loc, by lexical containment (spec §3, §4.6
// step 5: "an edge from the file (or the nearest enclosing symbol, by
// lexical containment)").
func (b *symbolBuilder) enclosingNamePath(loc model.Location) string {
	best := -1
	bestSpan := -1
	for i, s := range b.syms {
		if !contains(s.Location, loc) {
			continue
		}
		span := s.Location.ByteEnd - s.Location.ByteStart
		if bestSpan == -1 || span < bestSpan {
			bestSpan = span
			best = i
		}
	}
	if best == -1 {
		return b.filePath
	}
	return b.syms[best].NamePath
}

// contains reports whether outer's declaration range fully spans inner,
// preferring byte offsets (always populated for tree-sitter captures) and
// falling back to line ranges for locations with no byte offsets at all.
func contains(outer, inner model.Location) bool {
	if outer.ByteEnd > outer.ByteStart {
		return outer.ByteStart <= inner.ByteStart && inner.ByteEnd <= outer.ByteEnd
	}
	return outer.Line <= inner.Line && inner.EndLine <= outer.EndLine
}

// kindForKey infers a SymbolKind from a definition query's key, since every
// language family names its keys with the same definition-shape
// vocabulary (class/interface/enum/struct/method/function/property/
// variable/type) regardless of language prefix.
func kindForKey(key string) model.SymbolKind {
	switch {
	case strings.Contains(key, "class"):
		return model.SymbolKindClass
	case strings.Contains(key, "struct"):
		return model.SymbolKindClass
	case strings.Contains(key, "interface"):
		return model.SymbolKindInterface
	case strings.Contains(key, "enum"):
		return model.SymbolKindEnum
	case strings.Contains(key, "method"):
		return model.SymbolKindMethod
	case strings.Contains(key, "property"):
		return model.SymbolKindProperty
	case strings.Contains(key, "variable"):
		return model.SymbolKindVariable
	case strings.Contains(key, "type"):
		return model.SymbolKindType
	case strings.Contains(key, "function"):
		return model.SymbolKindFunction
	default:
		return model.SymbolKindVariable
	}
}
