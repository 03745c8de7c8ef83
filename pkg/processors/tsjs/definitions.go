package tsjs

import (
	"github.com/kestrel-dev/srcmap/pkg/model"
	"github.com/kestrel-dev/srcmap/pkg/processors/common"
	"github.com/kestrel-dev/srcmap/pkg/processors/textutil"
	"github.com/kestrel-dev/srcmap/pkg/registry"
	"github.com/kestrel-dev/srcmap/pkg/tsquery"
)

// simpleNameProcessor builds a DefinitionResult whose only field besides
// name/location is the bare declaration (class/interface/type/enum —
// anything without its own parameter list).
func simpleNameProcessor(key, nameField string) registry.ProcessorFunc {
	return func(matches []tsquery.Match, ctx any) []model.TypedResult {
		out := make([]model.TypedResult, 0, len(matches))
		for _, m := range matches {
			name, ok := common.ByField(m, nameField)
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

// ClassDefinitionsProcessor emits one DefinitionResult per class
// declaration (ts-class-definitions / js-class-definitions).
func ClassDefinitionsProcessor(key string) registry.ProcessorFunc {
	return simpleNameProcessor(key, "name")
}

// InterfaceDefinitionsProcessor emits one DefinitionResult per interface
// declaration (ts-interface-definitions, TypeScript-only).
func InterfaceDefinitionsProcessor(key string) registry.ProcessorFunc {
	return simpleNameProcessor(key, "name")
}

// TypeDefinitionsProcessor emits one DefinitionResult per type alias
// (ts-type-definitions, TypeScript-only).
func TypeDefinitionsProcessor(key string) registry.ProcessorFunc {
	return simpleNameProcessor(key, "name")
}

// EnumDefinitionsProcessor emits one DefinitionResult per enum declaration
// (ts-enum-definitions, TypeScript-only).
func EnumDefinitionsProcessor(key string) registry.ProcessorFunc {
	return simpleNameProcessor(key, "name")
}

// VariableDefinitionsProcessor emits one DefinitionResult per non-function,
// non-arrow variable declarator (ts-variable-definitions /
// js-variable-definitions).
func VariableDefinitionsProcessor(key string) registry.ProcessorFunc {
	return func(matches []tsquery.Match, ctx any) []model.TypedResult {
		out := make([]model.TypedResult, 0, len(matches))
		for _, m := range matches {
			name, ok := common.ByField(m, "name")
			if !ok {
				continue
			}
			returnType := ""
			if t, ok := common.ByField(m, "type"); ok {
				returnType = t.Text
			}
			out = append(out, model.DefinitionResult{
				ResultBase: model.ResultBase{QueryName: key, Location: common.DefinitionLocation(m), NodeText: common.NodeText(m)},
				Name:       name.Text,
				ReturnType: returnType,
			})
		}
		return out
	}
}

// PropertyDefinitionsProcessor emits one DefinitionResult per class field
// (ts-property-definitions / js-property-definitions).
func PropertyDefinitionsProcessor(key string) registry.ProcessorFunc {
	return func(matches []tsquery.Match, ctx any) []model.TypedResult {
		out := make([]model.TypedResult, 0, len(matches))
		for _, m := range matches {
			name, ok := common.ByField(m, "name")
			if !ok {
				continue
			}
			typ := ""
			if t, ok := common.ByField(m, "type"); ok {
				typ = t.Text
			}
			out = append(out, model.DefinitionResult{
				ResultBase: model.ResultBase{QueryName: key, Location: common.DefinitionLocation(m), NodeText: common.NodeText(m)},
				Name:       name.Text,
				ReturnType: typ,
			})
		}
		return out
	}
}

// functionLikeProcessor builds a DefinitionResult for a query that
// captures a name and (optionally) a parameters/returnType field —
// shared between plain functions and arrow functions.
func functionLikeProcessor(key string) registry.ProcessorFunc {
	return func(matches []tsquery.Match, ctx any) []model.TypedResult {
		out := make([]model.TypedResult, 0, len(matches))
		for _, m := range matches {
			name, ok := common.ByField(m, "name")
			if !ok {
				continue
			}
			var params []model.Parameter
			if p, ok := common.ByField(m, "parameters"); ok {
				params = textutil.ParseParameterList(p.Text)
			}
			returnType := ""
			if r, ok := common.ByField(m, "returnType"); ok {
				returnType = r.Text
			}
			out = append(out, model.DefinitionResult{
				ResultBase: model.ResultBase{QueryName: key, Location: common.DefinitionLocation(m), NodeText: common.NodeText(m)},
				Name:       name.Text,
				Parameters: params,
				ReturnType: returnType,
			})
		}
		return out
	}
}

// FunctionDefinitionsProcessor (ts-function-definitions /
// js-function-definitions) and ArrowFunctionDefinitionsProcessor
// (ts-arrow-function-definitions / js-arrow-function-definitions) share
// the same capture shape.
func FunctionDefinitionsProcessor(key string) registry.ProcessorFunc      { return functionLikeProcessor(key) }
func ArrowFunctionDefinitionsProcessor(key string) registry.ProcessorFunc { return functionLikeProcessor(key) }

// MethodDefinitionsProcessor emits one DefinitionResult per method,
// carrying the enclosing class name as ParentClass
// (ts-method-definitions / js-method-definitions).
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
			parentClass := ""
			if hasClass {
				parentClass = className.Text
			}

			definitionLoc := methodName.Location
			if def, ok := common.ByName(m, "method.definition"); ok {
				definitionLoc = def.Location
			}
			out = append(out, model.DefinitionResult{
				ResultBase:  model.ResultBase{QueryName: key, Location: definitionLoc, NodeText: methodName.Text},
				Name:        methodName.Text,
				ParentClass: parentClass,
				Parameters:  params,
				ReturnType:  returnType,
			})
		}
		return out
	}
}
