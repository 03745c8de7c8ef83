// Package java holds the typed processors for the Java query family.
package java

import (
	"strings"

	"github.com/kestrel-dev/srcmap/pkg/model"
	"github.com/kestrel-dev/srcmap/pkg/processors/common"
	"github.com/kestrel-dev/srcmap/pkg/processors/textutil"
	"github.com/kestrel-dev/srcmap/pkg/registry"
	"github.com/kestrel-dev/srcmap/pkg/tsparse"
	"github.com/kestrel-dev/srcmap/pkg/tsquery"
)

// ImportSourcesProcessor emits one ImportSourceResult per import
// declaration's fully-qualified path (java-import-sources).
func ImportSourcesProcessor(key string) registry.ProcessorFunc {
	return func(matches []tsquery.Match, ctx any) []model.TypedResult {
		out := make([]model.TypedResult, 0, len(matches))
		for _, m := range matches {
			source, ok := common.ByName(m, "source.text")
			if !ok {
				continue
			}
			out = append(out, model.ImportSourceResult{
				ResultBase: model.ResultBase{QueryName: key, Location: common.DefinitionLocation(m), NodeText: source.Text},
				Source:     source.Text,
				ImportType: "static",
			})
		}
		return out
	}
}

// ImportStatementsProcessor emits one ImportSourceResult per ordinary
// (non-static) import declaration (java-import-statements).
func ImportStatementsProcessor(key string) registry.ProcessorFunc {
	return func(matches []tsquery.Match, ctx any) []model.TypedResult {
		out := make([]model.TypedResult, 0, len(matches))
		for _, m := range matches {
			path, ok := common.ByName(m, "import.path")
			if !ok {
				continue
			}
			out = append(out, model.ImportSourceResult{
				ResultBase: model.ResultBase{QueryName: key, Location: common.DefinitionLocation(m), NodeText: path.Text},
				Source:     path.Text,
				ImportType: "static",
			})
		}
		return out
	}
}

// StaticImportsProcessor emits `import static` declarations
// (java-static-imports).
func StaticImportsProcessor(key string) registry.ProcessorFunc {
	return func(matches []tsquery.Match, ctx any) []model.TypedResult {
		out := make([]model.TypedResult, 0, len(matches))
		for _, m := range matches {
			path, ok := common.ByName(m, "import.static.path")
			if !ok {
				continue
			}
			out = append(out, model.ImportSourceResult{
				ResultBase: model.ResultBase{QueryName: key, Location: common.DefinitionLocation(m), NodeText: path.Text},
				Source:     path.Text,
				ImportType: "static",
			})
		}
		return out
	}
}

// WildcardImportsProcessor emits on-demand (`.*`) imports
// (java-wildcard-imports).
func WildcardImportsProcessor(key string) registry.ProcessorFunc {
	return func(matches []tsquery.Match, ctx any) []model.TypedResult {
		out := make([]model.TypedResult, 0, len(matches))
		for _, m := range matches {
			path, ok := common.ByName(m, "import.wildcard.path")
			if !ok {
				continue
			}
			out = append(out, model.ImportSourceResult{
				ResultBase: model.ResultBase{QueryName: key, Location: common.DefinitionLocation(m), NodeText: path.Text + ".*"},
				Source:     path.Text + ".*",
				ImportType: "static",
			})
		}
		return out
	}
}

// ClassDeclarationsProcessor emits one DefinitionResult per class
// declaration, plus an Extends edge and one Implements edge per interface,
// read directly off the class.extends / class.implements captures present
// on the same match (java-class-declarations) rather than a second
// registered key.
func ClassDeclarationsProcessor(key string) registry.ProcessorFunc {
	return func(matches []tsquery.Match, ctx any) []model.TypedResult {
		out := make([]model.TypedResult, 0, len(matches))
		for _, m := range matches {
			name, ok := common.ByName(m, "class.name")
			if !ok {
				continue
			}
			out = append(out, model.DefinitionResult{
				ResultBase: model.ResultBase{QueryName: key, Location: common.DefinitionLocation(m), NodeText: common.NodeText(m)},
				Name:       name.Text,
			})

			if super, ok := common.ByName(m, "class.extends"); ok {
				out = append(out, model.DependencyResult{
					ResultBase: model.ResultBase{QueryName: key, Location: super.Location, NodeText: super.Text},
					Edge: model.SymbolDependencyEdge{
						To:       "/" + super.Text,
						Type:     model.EdgeKindExtends,
						Location: super.Location,
					},
				})
			}
			for _, iface := range common.AllByName(m, "class.implements") {
				out = append(out, model.DependencyResult{
					ResultBase: model.ResultBase{QueryName: key, Location: iface.Location, NodeText: iface.Text},
					Edge: model.SymbolDependencyEdge{
						To:       "/" + iface.Text,
						Type:     model.EdgeKindImplements,
						Location: iface.Location,
					},
				})
			}
		}
		return out
	}
}

// edgeProcessor builds a DependencyResult from whichever of the given
// capture names is present, mirroring pkg/processors/tsjs's helper of the
// same shape.
func edgeProcessor(key string, edgeKind model.EdgeKind, captureNames ...string) registry.ProcessorFunc {
	return func(matches []tsquery.Match, ctx any) []model.TypedResult {
		out := make([]model.TypedResult, 0, len(matches))
		for _, m := range matches {
			var target tsquery.Capture
			var ok bool
			for _, name := range captureNames {
				if target, ok = common.ByName(m, name); ok {
					break
				}
			}
			if !ok {
				continue
			}
			out = append(out, model.DependencyResult{
				ResultBase: model.ResultBase{QueryName: key, Location: target.Location, NodeText: target.Text},
				Edge: model.SymbolDependencyEdge{
					To:       "/" + target.Text,
					Type:     edgeKind,
					Location: target.Location,
				},
			})
		}
		return out
	}
}

// CallExpressionsProcessor emits Call edges (java-call-expressions).
func CallExpressionsProcessor(key string) registry.ProcessorFunc {
	return edgeProcessor(key, model.EdgeKindCall, "call.callee")
}

// NewExpressionsProcessor emits Instantiation edges (java-new-expressions).
func NewExpressionsProcessor(key string) registry.ProcessorFunc {
	return edgeProcessor(key, model.EdgeKindInstantiation, "new.callee")
}

// TypeReferencesProcessor emits TypeReference edges (java-type-references).
func TypeReferencesProcessor(key string) registry.ProcessorFunc {
	return edgeProcessor(key, model.EdgeKindTypeReference, "typeref.name")
}

// FieldAccessProcessor emits MemberAccess edges (java-field-access).
func FieldAccessProcessor(key string) registry.ProcessorFunc {
	return func(matches []tsquery.Match, ctx any) []model.TypedResult {
		out := make([]model.TypedResult, 0, len(matches))
		for _, m := range matches {
			obj, hasObj := common.ByName(m, "member.object")
			field, hasField := common.ByName(m, "member.property")
			if !hasObj || !hasField {
				continue
			}
			out = append(out, model.DependencyResult{
				ResultBase: model.ResultBase{QueryName: key, Location: field.Location, NodeText: field.Text},
				Edge: model.SymbolDependencyEdge{
					To:       "/" + obj.Text + "." + field.Text,
					Type:     model.EdgeKindMemberAccess,
					Location: field.Location,
				},
			})
		}
		return out
	}
}

// InterfaceDeclarationsProcessor emits one DefinitionResult per interface
// declaration (java-interface-declarations).
func InterfaceDeclarationsProcessor(key string) registry.ProcessorFunc {
	return func(matches []tsquery.Match, ctx any) []model.TypedResult {
		out := make([]model.TypedResult, 0, len(matches))
		for _, m := range matches {
			name, ok := common.ByName(m, "interface.name")
			if !ok {
				continue
			}
			out = append(out, model.DefinitionResult{
				ResultBase: model.ResultBase{QueryName: key, Location: common.DefinitionLocation(m), NodeText: common.NodeText(m)},
				Name:       name.Text,
			})
		}
		return out
	}
}

// EnumDeclarationsProcessor emits one DefinitionResult per enum
// declaration (java-enum-declarations).
func EnumDeclarationsProcessor(key string) registry.ProcessorFunc {
	return func(matches []tsquery.Match, ctx any) []model.TypedResult {
		out := make([]model.TypedResult, 0, len(matches))
		for _, m := range matches {
			name, ok := common.ByName(m, "enum.name")
			if !ok {
				continue
			}
			out = append(out, model.DefinitionResult{
				ResultBase: model.ResultBase{QueryName: key, Location: common.DefinitionLocation(m), NodeText: common.NodeText(m)},
				Name:       name.Text,
			})
		}
		return out
	}
}

// MethodDeclarationsProcessor emits one DefinitionResult per method in a
// class or interface body, with ParentClass set (java-method-declarations).
func MethodDeclarationsProcessor(key string) registry.ProcessorFunc {
	return func(matches []tsquery.Match, ctx any) []model.TypedResult {
		out := make([]model.TypedResult, 0, len(matches))
		for _, m := range matches {
			methodName, ok := common.ByName(m, "method.name")
			if !ok {
				continue
			}
			parent := ""
			if c, ok := common.ByName(m, "class.name"); ok {
				parent = c.Text
			} else if i, ok := common.ByName(m, "interface.name"); ok {
				parent = i.Text
			}
			var params []model.Parameter
			if p, ok := common.ByName(m, "method.parameters"); ok {
				params = textutil.ParseParameterList(p.Text)
			}
			returnType := ""
			if r, ok := common.ByName(m, "method.returnType"); ok {
				returnType = strings.TrimSpace(r.Text)
			}
			definitionLoc := methodName.Location
			if d, ok := common.ByName(m, "method.definition"); ok {
				definitionLoc = d.Location
			}
			out = append(out, model.DefinitionResult{
				ResultBase:  model.ResultBase{QueryName: key, Location: definitionLoc, NodeText: methodName.Text},
				Name:        methodName.Text,
				ParentClass: parent,
				Parameters:  params,
				ReturnType:  returnType,
			})
		}
		return out
	}
}

var builders = map[string]func(string) registry.ProcessorFunc{
	"java-import-sources":         ImportSourcesProcessor,
	"java-import-statements":      ImportStatementsProcessor,
	"java-static-imports":         StaticImportsProcessor,
	"java-wildcard-imports":       WildcardImportsProcessor,
	"java-class-declarations":     ClassDeclarationsProcessor,
	"java-interface-declarations": InterfaceDeclarationsProcessor,
	"java-enum-declarations":      EnumDeclarationsProcessor,
	"java-method-declarations":    MethodDeclarationsProcessor,
	"java-call-expressions":       CallExpressionsProcessor,
	"java-new-expressions":        NewExpressionsProcessor,
	"java-field-access":           FieldAccessProcessor,
	"java-type-references":        TypeReferencesProcessor,
}

// RegisterAll registers every Java processor entry into reg.
func RegisterAll(reg *registry.Registry) error {
	for key, build := range builders {
		if err := reg.Register(key, registry.Entry{
			Processor:          build(key),
			SupportedLanguages: []tsparse.Language{tsparse.LanguageJava},
			Priority:           50,
			DeclaredResultType: key,
		}); err != nil {
			return err
		}
	}
	return nil
}
