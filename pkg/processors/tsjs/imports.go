// Package tsjs holds the typed processors for the TypeScript/TSX and
// JavaScript/JSX query families. TypeScript and JavaScript share almost
// all of their capture shapes (the JS queries are a strict subset of the
// TS ones per spec §6), so most processor constructors here are shared
// between the `ts-*` and `js-*` keys and only the query text differs.
package tsjs

import (
	"strings"

	"github.com/kestrel-dev/srcmap/pkg/model"
	"github.com/kestrel-dev/srcmap/pkg/processors/common"
	"github.com/kestrel-dev/srcmap/pkg/registry"
	"github.com/kestrel-dev/srcmap/pkg/tsquery"
)

// ImportSourcesProcessor emits one ImportSourceResult per import
// statement's module specifier (ts-import-sources / js-import-sources).
func ImportSourcesProcessor(key string) registry.ProcessorFunc {
	return func(matches []tsquery.Match, ctx any) []model.TypedResult {
		out := make([]model.TypedResult, 0, len(matches))
		for _, m := range matches {
			source, ok := common.ByName(m, "source.text")
			if !ok {
				continue
			}
			out = append(out, model.ImportSourceResult{
				ResultBase: model.ResultBase{QueryName: key, Location: common.DefinitionLocation(m), NodeText: common.NodeText(m)},
				Source:     source.Text,
				IsRelative: common.IsRelativeSpecifier(source.Text),
				ImportType: "static",
			})
		}
		return out
	}
}

// NamedImportsProcessor emits one NamedImportResult per named import
// specifier, with its alias if present (ts-named-imports / js-named-imports).
func NamedImportsProcessor(key string) registry.ProcessorFunc {
	return func(matches []tsquery.Match, ctx any) []model.TypedResult {
		out := make([]model.TypedResult, 0, len(matches))
		seen := make(map[string]bool)
		for _, m := range matches {
			name, ok := common.ByName(m, "import.named")
			if !ok {
				continue
			}
			alias := ""
			if a, ok := common.ByName(m, "import.alias"); ok {
				alias = a.Text
			}
			dedupeKey := name.Text + "|" + alias
			if seen[dedupeKey] {
				continue
			}
			seen[dedupeKey] = true
			out = append(out, model.NamedImportResult{
				ResultBase: model.ResultBase{QueryName: key, Location: name.Location, NodeText: name.Text},
				Name:       name.Text,
				Alias:      alias,
			})
		}
		return out
	}
}

// DefaultImportsProcessor emits default and namespace import bindings
// (ts-default-imports / js-default-imports).
func DefaultImportsProcessor(key string) registry.ProcessorFunc {
	return func(matches []tsquery.Match, ctx any) []model.TypedResult {
		out := make([]model.TypedResult, 0, len(matches))
		for _, m := range matches {
			if c, ok := common.ByName(m, "import.default"); ok {
				out = append(out, model.DefaultImportResult{
					ResultBase: model.ResultBase{QueryName: key, Location: c.Location, NodeText: c.Text},
					Name:       c.Text,
				})
				continue
			}
			if c, ok := common.ByName(m, "import.namespace"); ok {
				out = append(out, model.DefaultImportResult{
					ResultBase:  model.ResultBase{QueryName: key, Location: c.Location, NodeText: c.Text},
					Name:        c.Text,
					IsNamespace: true,
				})
			}
		}
		return out
	}
}

// TypeImportsProcessor emits TypeScript type-only import bindings
// (ts-type-imports). TypeScript-only: JavaScript has no type system.
func TypeImportsProcessor(key string) registry.ProcessorFunc {
	return func(matches []tsquery.Match, ctx any) []model.TypedResult {
		out := make([]model.TypedResult, 0, len(matches))
		for _, m := range matches {
			var name, alias string
			if c, ok := common.ByName(m, "import.type.specifier.name"); ok {
				name = c.Text
			} else if c, ok := common.ByName(m, "import.type.specifier.named"); ok {
				name = c.Text
			} else {
				continue
			}
			if a, ok := common.ByName(m, "import.type.specifier.alias"); ok {
				alias = a.Text
			}
			out = append(out, model.TypeImportResult{
				ResultBase: model.ResultBase{QueryName: key, Location: common.DefinitionLocation(m)},
				Name:       strings.TrimSpace(name),
				Alias:      alias,
			})
		}
		return out
	}
}
