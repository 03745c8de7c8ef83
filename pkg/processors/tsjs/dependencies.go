package tsjs

import (
	"github.com/kestrel-dev/srcmap/pkg/model"
	"github.com/kestrel-dev/srcmap/pkg/processors/common"
	"github.com/kestrel-dev/srcmap/pkg/registry"
	"github.com/kestrel-dev/srcmap/pkg/tsquery"
)

// edgeProcessor builds a DependencyResult from whichever of the given
// capture names is present, using it as both the edge's `To` target and
// its location; edgeKind fixes the SymbolDependencyEdge.Type.
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

// CallExpressionsProcessor emits Call edges (ts-call-expressions /
// js-call-expressions).
func CallExpressionsProcessor(key string) registry.ProcessorFunc {
	return edgeProcessor(key, model.EdgeKindCall, "call.callee")
}

// NewExpressionsProcessor emits Instantiation edges (ts-new-expressions /
// js-new-expressions).
func NewExpressionsProcessor(key string) registry.ProcessorFunc {
	return edgeProcessor(key, model.EdgeKindInstantiation, "new.callee")
}

// MemberExpressionsProcessor emits MemberAccess edges
// (ts-member-expressions / js-member-expressions), targeting
// `object.property`.
func MemberExpressionsProcessor(key string) registry.ProcessorFunc {
	return func(matches []tsquery.Match, ctx any) []model.TypedResult {
		out := make([]model.TypedResult, 0, len(matches))
		for _, m := range matches {
			obj, hasObj := common.ByName(m, "member.object")
			prop, hasProp := common.ByName(m, "member.property")
			if !hasObj || !hasProp {
				continue
			}
			out = append(out, model.DependencyResult{
				ResultBase: model.ResultBase{QueryName: key, Location: prop.Location, NodeText: prop.Text},
				Edge: model.SymbolDependencyEdge{
					To:       "/" + obj.Text + "." + prop.Text,
					Type:     model.EdgeKindMemberAccess,
					Location: prop.Location,
				},
			})
		}
		return out
	}
}

// TypeReferencesProcessor emits TypeReference edges (ts-type-references,
// TypeScript-only).
func TypeReferencesProcessor(key string) registry.ProcessorFunc {
	return edgeProcessor(key, model.EdgeKindTypeReference, "typeref.name")
}

// ExtendsClauseProcessor emits Extends edges (ts-extends-clause /
// js-extends-clause).
func ExtendsClauseProcessor(key string) registry.ProcessorFunc {
	return edgeProcessor(key, model.EdgeKindExtends, "extends.target")
}

// ImplementsClauseProcessor emits Implements edges (ts-implements-clause,
// TypeScript-only).
func ImplementsClauseProcessor(key string) registry.ProcessorFunc {
	return edgeProcessor(key, model.EdgeKindImplements, "implements.target")
}
