// Package python holds the typed processors for the Python query family.
package python

import (
	"strconv"
	"strings"

	"github.com/kestrel-dev/srcmap/pkg/model"
	"github.com/kestrel-dev/srcmap/pkg/processors/common"
	"github.com/kestrel-dev/srcmap/pkg/processors/textutil"
	"github.com/kestrel-dev/srcmap/pkg/registry"
	"github.com/kestrel-dev/srcmap/pkg/tsparse"
	"github.com/kestrel-dev/srcmap/pkg/tsquery"
)

func isRelativeModule(s string) bool {
	return strings.HasPrefix(s, ".")
}

// ImportSourcesProcessor emits one ImportSourceResult per import or
// from-import statement's module path (python-import-sources).
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
				IsRelative: isRelativeModule(source.Text),
				ImportType: "static",
			})
		}
		return out
	}
}

// ImportStatementsProcessor emits one ImportSourceResult per plain
// `import module` statement (python-import-statements).
func ImportStatementsProcessor(key string) registry.ProcessorFunc {
	return func(matches []tsquery.Match, ctx any) []model.TypedResult {
		out := make([]model.TypedResult, 0, len(matches))
		for _, m := range matches {
			module, ok := common.ByName(m, "import.module")
			if !ok {
				continue
			}
			out = append(out, model.ImportSourceResult{
				ResultBase: model.ResultBase{QueryName: key, Location: common.DefinitionLocation(m), NodeText: module.Text},
				Source:     module.Text,
				IsRelative: isRelativeModule(module.Text),
				ImportType: "static",
			})
		}
		return out
	}
}

// FromImportsProcessor emits one FromImportResult per `from module import
// ...` statement, folding every name bound by that statement into Names
// (python-from-imports).
func FromImportsProcessor(key string) registry.ProcessorFunc {
	return func(matches []tsquery.Match, ctx any) []model.TypedResult {
		order := make([]string, 0, len(matches))
		byStmt := map[string]*model.FromImportResult{}

		for _, m := range matches {
			module, ok := common.ByName(m, "from.module")
			if !ok {
				continue
			}
			stmtKey := strconv.Itoa(common.DefinitionLocation(m).ByteStart)

			result, seen := byStmt[stmtKey]
			if !seen {
				result = &model.FromImportResult{
					ResultBase: model.ResultBase{QueryName: key, Location: common.DefinitionLocation(m), NodeText: common.NodeText(m)},
					Module:     module.Text,
					IsRelative: isRelativeModule(module.Text),
				}
				byStmt[stmtKey] = result
				order = append(order, stmtKey)
			}

			if name, ok := common.ByName(m, "from.name"); ok {
				result.Names = append(result.Names, name.Text)
			} else if _, ok := common.ByName(m, "from.wildcard"); ok {
				result.Names = append(result.Names, "*")
			}
		}

		out := make([]model.TypedResult, 0, len(order))
		for _, k := range order {
			out = append(out, *byStmt[k])
		}
		return out
	}
}

// ImportAsProcessor emits one NamedImportResult per aliased from-import
// binding (`from typing import List as L`), python-import-as.
func ImportAsProcessor(key string) registry.ProcessorFunc {
	return func(matches []tsquery.Match, ctx any) []model.TypedResult {
		out := make([]model.TypedResult, 0, len(matches))
		for _, m := range matches {
			name, ok := common.ByName(m, "importas.name")
			if !ok {
				continue
			}
			alias := ""
			if a, ok := common.ByName(m, "importas.alias"); ok {
				alias = a.Text
			}
			out = append(out, model.NamedImportResult{
				ResultBase: model.ResultBase{QueryName: key, Location: common.DefinitionLocation(m), NodeText: name.Text},
				Name:       name.Text,
				Alias:      alias,
			})
		}
		return out
	}
}

// FunctionDefinitionsProcessor emits one DefinitionResult per module-level
// or nested function definition (python-function-definitions).
func FunctionDefinitionsProcessor(key string) registry.ProcessorFunc {
	return func(matches []tsquery.Match, ctx any) []model.TypedResult {
		out := make([]model.TypedResult, 0, len(matches))
		for _, m := range matches {
			name, ok := common.ByName(m, "function.name")
			if !ok {
				continue
			}
			var params []model.Parameter
			if p, ok := common.ByName(m, "function.parameters"); ok {
				params = textutil.ParseParameterList(p.Text)
			}
			returnType := ""
			if r, ok := common.ByName(m, "function.returnType"); ok {
				returnType = r.Text
			}
			out = append(out, model.DefinitionResult{
				ResultBase: model.ResultBase{QueryName: key, Location: common.DefinitionLocation(m), NodeText: name.Text},
				Name:       name.Text,
				Parameters: params,
				ReturnType: returnType,
			})
		}
		return out
	}
}

// ClassDefinitionsProcessor emits one DefinitionResult per class
// definition, plus an Extends edge per base class listed in its
// superclass argument list (python-class-definitions).
func ClassDefinitionsProcessor(key string) registry.ProcessorFunc {
	return func(matches []tsquery.Match, ctx any) []model.TypedResult {
		out := make([]model.TypedResult, 0, len(matches))
		for _, m := range matches {
			name, ok := common.ByName(m, "class.name")
			if !ok {
				continue
			}
			out = append(out, model.DefinitionResult{
				ResultBase: model.ResultBase{QueryName: key, Location: common.DefinitionLocation(m), NodeText: name.Text},
				Name:       name.Text,
			})

			for _, base := range common.AllByName(m, "class.base") {
				out = append(out, model.DependencyResult{
					ResultBase: model.ResultBase{QueryName: key, Location: base.Location, NodeText: base.Text},
					Edge: model.SymbolDependencyEdge{
						To:       "/" + base.Text,
						Type:     model.EdgeKindExtends,
						Location: base.Location,
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

// CallExpressionsProcessor emits Call edges (python-call-expressions).
// Python has no distinct constructor syntax, so instantiation is just
// another call and gets no separate Instantiation processor.
func CallExpressionsProcessor(key string) registry.ProcessorFunc {
	return edgeProcessor(key, model.EdgeKindCall, "call.callee")
}

// TypeReferencesProcessor emits TypeReference edges
// (python-type-references).
func TypeReferencesProcessor(key string) registry.ProcessorFunc {
	return edgeProcessor(key, model.EdgeKindTypeReference, "typeref.name")
}

// MemberExpressionsProcessor emits MemberAccess edges
// (python-member-expressions), targeting `object.attribute`.
func MemberExpressionsProcessor(key string) registry.ProcessorFunc {
	return func(matches []tsquery.Match, ctx any) []model.TypedResult {
		out := make([]model.TypedResult, 0, len(matches))
		for _, m := range matches {
			obj, hasObj := common.ByName(m, "member.object")
			attr, hasAttr := common.ByName(m, "member.property")
			if !hasObj || !hasAttr {
				continue
			}
			out = append(out, model.DependencyResult{
				ResultBase: model.ResultBase{QueryName: key, Location: attr.Location, NodeText: attr.Text},
				Edge: model.SymbolDependencyEdge{
					To:       "/" + obj.Text + "." + attr.Text,
					Type:     model.EdgeKindMemberAccess,
					Location: attr.Location,
				},
			})
		}
		return out
	}
}

// MethodDefinitionsProcessor emits one DefinitionResult per function
// definition directly nested in a class body, carrying ParentClass
// (python-method-definitions).
func MethodDefinitionsProcessor(key string) registry.ProcessorFunc {
	return func(matches []tsquery.Match, ctx any) []model.TypedResult {
		out := make([]model.TypedResult, 0, len(matches))
		for _, m := range matches {
			className, hasClass := common.ByName(m, "class.name")
			methodName, ok := common.ByName(m, "method.name")
			if !ok {
				continue
			}
			var params []model.Parameter
			if p, ok := common.ByName(m, "method.parameters"); ok {
				params = textutil.ParseParameterList(p.Text)
			}
			returnType := ""
			if r, ok := common.ByName(m, "method.returnType"); ok {
				returnType = r.Text
			}
			parent := ""
			if hasClass {
				parent = className.Text
			}
			out = append(out, model.DefinitionResult{
				ResultBase:  model.ResultBase{QueryName: key, Location: methodName.Location, NodeText: methodName.Text},
				Name:        methodName.Text,
				ParentClass: parent,
				Parameters:  params,
				ReturnType:  returnType,
			})
		}
		return out
	}
}

// VariableDefinitionsProcessor emits one DefinitionResult per module- or
// class-level assignment target (python-variable-definitions).
func VariableDefinitionsProcessor(key string) registry.ProcessorFunc {
	return func(matches []tsquery.Match, ctx any) []model.TypedResult {
		out := make([]model.TypedResult, 0, len(matches))
		for _, m := range matches {
			name, ok := common.ByName(m, "variable.name")
			if !ok {
				continue
			}
			out = append(out, model.DefinitionResult{
				ResultBase: model.ResultBase{QueryName: key, Location: common.DefinitionLocation(m), NodeText: name.Text},
				Name:       name.Text,
			})
		}
		return out
	}
}

var builders = map[string]func(string) registry.ProcessorFunc{
	"python-import-sources":       ImportSourcesProcessor,
	"python-import-statements":    ImportStatementsProcessor,
	"python-from-imports":         FromImportsProcessor,
	"python-import-as":            ImportAsProcessor,
	"python-function-definitions": FunctionDefinitionsProcessor,
	"python-class-definitions":    ClassDefinitionsProcessor,
	"python-method-definitions":   MethodDefinitionsProcessor,
	"python-variable-definitions": VariableDefinitionsProcessor,
	"python-call-expressions":     CallExpressionsProcessor,
	"python-member-expressions":   MemberExpressionsProcessor,
	"python-type-references":      TypeReferencesProcessor,
}

// RegisterAll registers every Python processor entry into reg.
func RegisterAll(reg *registry.Registry) error {
	for key, build := range builders {
		if err := reg.Register(key, registry.Entry{
			Processor:          build(key),
			SupportedLanguages: []tsparse.Language{tsparse.LanguagePython},
			Priority:           50,
			DeclaredResultType: key,
		}); err != nil {
			return err
		}
	}
	return nil
}
