// Package golang holds the typed processors for the Go query family.
package golang

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

// unquote strips the surrounding double quotes tree-sitter leaves on an
// interpreted_string_literal's text.
func unquote(s string) string {
	if unq, err := strconv.Unquote(s); err == nil {
		return unq
	}
	return strings.Trim(s, `"`)
}

// goParams parses a Go parameter list. Go writes each entry as "name Type",
// while textutil.ParseParameterList reads a spaced entry as "Type name", so
// every entry that came back with both halves is re-split at its first space.
func goParams(raw string) []model.Parameter {
	params := textutil.ParseParameterList(raw)
	for i, p := range params {
		if p.Name == "" || p.Type == "" {
			continue
		}
		full := p.Type + " " + p.Name
		idx := strings.Index(full, " ")
		params[i].Name, params[i].Type = full[:idx], strings.TrimSpace(full[idx+1:])
	}
	return params
}

// ImportSourcesProcessor emits one ImportSourceResult per import spec's
// path string (go-import-sources).
func ImportSourcesProcessor(key string) registry.ProcessorFunc {
	return func(matches []tsquery.Match, ctx any) []model.TypedResult {
		out := make([]model.TypedResult, 0, len(matches))
		for _, m := range matches {
			source, ok := common.ByName(m, "source.text")
			if !ok {
				continue
			}
			path := unquote(source.Text)
			out = append(out, model.ImportSourceResult{
				ResultBase: model.ResultBase{QueryName: key, Location: common.DefinitionLocation(m), NodeText: path},
				Source:     path,
				ImportType: "static",
			})
		}
		return out
	}
}

// ImportStatementsProcessor emits one NamedImportResult per import spec,
// Alias set for named and blank-imported specs (go-import-statements).
// Dot imports carry no alias capture and come back with an empty Alias.
func ImportStatementsProcessor(key string) registry.ProcessorFunc {
	return func(matches []tsquery.Match, ctx any) []model.TypedResult {
		out := make([]model.TypedResult, 0, len(matches))
		for _, m := range matches {
			path, ok := common.ByName(m, "import.path")
			if !ok {
				continue
			}
			alias := ""
			if a, ok := common.ByName(m, "import.alias"); ok {
				alias = a.Text
			} else if _, ok := common.ByName(m, "import.blank"); ok {
				alias = "_"
			}
			out = append(out, model.NamedImportResult{
				ResultBase: model.ResultBase{QueryName: key, Location: common.DefinitionLocation(m), NodeText: unquote(path.Text)},
				Name:       unquote(path.Text),
				Alias:      alias,
			})
		}
		return out
	}
}

// FunctionDefinitionsProcessor emits one DefinitionResult per top-level
// function declaration (go-function-definitions).
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
				params = goParams(p.Text)
			}
			returnType := ""
			if r, ok := common.ByName(m, "function.returnType"); ok {
				returnType = strings.TrimSpace(r.Text)
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

// MethodDefinitionsProcessor emits one DefinitionResult per method
// declaration, with ParentClass set to the receiver's named type
// (go-method-definitions).
func MethodDefinitionsProcessor(key string) registry.ProcessorFunc {
	return func(matches []tsquery.Match, ctx any) []model.TypedResult {
		out := make([]model.TypedResult, 0, len(matches))
		for _, m := range matches {
			name, ok := common.ByName(m, "method.name")
			if !ok {
				continue
			}
			receiver := ""
			if r, ok := common.ByName(m, "method.receiverType"); ok {
				receiver = strings.TrimPrefix(strings.TrimSpace(r.Text), "*")
			}
			var params []model.Parameter
			if p, ok := common.ByName(m, "method.parameters"); ok {
				params = goParams(p.Text)
			}
			returnType := ""
			if r, ok := common.ByName(m, "method.returnType"); ok {
				returnType = strings.TrimSpace(r.Text)
			}
			out = append(out, model.DefinitionResult{
				ResultBase:  model.ResultBase{QueryName: key, Location: common.DefinitionLocation(m), NodeText: name.Text},
				Name:        name.Text,
				ParentClass: receiver,
				Parameters:  params,
				ReturnType:  returnType,
			})
		}
		return out
	}
}

// structLikeProcessor builds a DefinitionResult for a query that captures
// just a type name (struct/interface/type-alias declarations share this
// shape).
func structLikeProcessor(key, nameCapture string) registry.ProcessorFunc {
	return func(matches []tsquery.Match, ctx any) []model.TypedResult {
		out := make([]model.TypedResult, 0, len(matches))
		for _, m := range matches {
			name, ok := common.ByName(m, nameCapture)
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

// StructDefinitionsProcessor emits one DefinitionResult per struct type
// declaration (go-struct-definitions).
func StructDefinitionsProcessor(key string) registry.ProcessorFunc {
	return structLikeProcessor(key, "struct.name")
}

// InterfaceDefinitionsProcessor emits one DefinitionResult per interface
// type declaration (go-interface-definitions).
func InterfaceDefinitionsProcessor(key string) registry.ProcessorFunc {
	return structLikeProcessor(key, "interface.name")
}

// TypeDefinitionsProcessor emits one DefinitionResult per non-struct,
// non-interface named type or alias (go-type-definitions).
func TypeDefinitionsProcessor(key string) registry.ProcessorFunc {
	return func(matches []tsquery.Match, ctx any) []model.TypedResult {
		out := make([]model.TypedResult, 0, len(matches))
		for _, m := range matches {
			name, ok := common.ByName(m, "type.name")
			if !ok {
				continue
			}
			underlying := ""
			if v, ok := common.ByName(m, "type.value"); ok {
				underlying = strings.TrimSpace(v.Text)
			}
			out = append(out, model.DefinitionResult{
				ResultBase: model.ResultBase{QueryName: key, Location: common.DefinitionLocation(m), NodeText: name.Text},
				Name:       name.Text,
				ReturnType: underlying,
			})
		}
		return out
	}
}

// VariableDefinitionsProcessor emits one DefinitionResult per var/const
// spec (go-variable-definitions).
func VariableDefinitionsProcessor(key string) registry.ProcessorFunc {
	return func(matches []tsquery.Match, ctx any) []model.TypedResult {
		out := make([]model.TypedResult, 0, len(matches))
		for _, m := range matches {
			name, ok := common.ByName(m, "variable.name")
			if !ok {
				continue
			}
			typ := ""
			if t, ok := common.ByName(m, "variable.type"); ok {
				typ = strings.TrimSpace(t.Text)
			}
			out = append(out, model.DefinitionResult{
				ResultBase: model.ResultBase{QueryName: key, Location: common.DefinitionLocation(m), NodeText: name.Text},
				Name:       name.Text,
				ReturnType: typ,
			})
		}
		return out
	}
}

// CallExpressionsProcessor emits Call edges (go-call-expressions).
func CallExpressionsProcessor(key string) registry.ProcessorFunc {
	return func(matches []tsquery.Match, ctx any) []model.TypedResult {
		out := make([]model.TypedResult, 0, len(matches))
		for _, m := range matches {
			callee, ok := common.ByName(m, "call.callee")
			if !ok {
				continue
			}
			out = append(out, model.DependencyResult{
				ResultBase: model.ResultBase{QueryName: key, Location: callee.Location, NodeText: callee.Text},
				Edge: model.SymbolDependencyEdge{
					To:       "/" + callee.Text,
					Type:     model.EdgeKindCall,
					Location: callee.Location,
				},
			})
		}
		return out
	}
}

var builders = map[string]func(string) registry.ProcessorFunc{
	"go-import-sources":        ImportSourcesProcessor,
	"go-import-statements":     ImportStatementsProcessor,
	"go-function-definitions":  FunctionDefinitionsProcessor,
	"go-method-definitions":    MethodDefinitionsProcessor,
	"go-struct-definitions":    StructDefinitionsProcessor,
	"go-interface-definitions": InterfaceDefinitionsProcessor,
	"go-type-definitions":      TypeDefinitionsProcessor,
	"go-variable-definitions":  VariableDefinitionsProcessor,
	"go-call-expressions":      CallExpressionsProcessor,
}

// RegisterAll registers every Go processor entry into reg.
func RegisterAll(reg *registry.Registry) error {
	for key, build := range builders {
		if err := reg.Register(key, registry.Entry{
			Processor:          build(key),
			SupportedLanguages: []tsparse.Language{tsparse.LanguageGo},
			Priority:           50,
			DeclaredResultType: key,
		}); err != nil {
			return err
		}
	}
	return nil
}
