package tsjs

import (
	"github.com/kestrel-dev/srcmap/pkg/model"
	"github.com/kestrel-dev/srcmap/pkg/processors/common"
	"github.com/kestrel-dev/srcmap/pkg/registry"
	"github.com/kestrel-dev/srcmap/pkg/tsquery"
)

// ExportDeclarationsProcessor emits named declaration exports and
// re-exports (ts-export-declarations / js-export-declarations).
func ExportDeclarationsProcessor(key string) registry.ProcessorFunc {
	return func(matches []tsquery.Match, ctx any) []model.TypedResult {
		out := make([]model.TypedResult, 0, len(matches))
		for _, m := range matches {
			if name, ok := common.ByName(m, "export.name"); ok {
				out = append(out, model.ExportDeclarationResult{
					ResultBase: model.ResultBase{QueryName: key, Location: common.DefinitionLocation(m)},
					ExportName: name.Text,
					ExportType: "declaration",
				})
				continue
			}

			source, hasSource := common.ByName(m, "export.reexport.source")
			if !hasSource {
				continue
			}
			if name, ok := common.ByName(m, "export.reexport.name"); ok {
				out = append(out, model.ExportDeclarationResult{
					ResultBase: model.ResultBase{QueryName: key, Location: common.DefinitionLocation(m)},
					ExportName: name.Text,
					ExportType: "re-export",
					Source:     source.Text,
				})
				continue
			}
			out = append(out, model.ExportDeclarationResult{
				ResultBase: model.ResultBase{QueryName: key, Location: common.DefinitionLocation(m)},
				ExportType: "re-export-all",
				Source:     source.Text,
			})
		}
		return out
	}
}

// ExportAssignmentsProcessor emits default-export bindings
// (ts-export-assignments / js-export-assignments).
func ExportAssignmentsProcessor(key string) registry.ProcessorFunc {
	return func(matches []tsquery.Match, ctx any) []model.TypedResult {
		out := make([]model.TypedResult, 0, len(matches))
		for _, m := range matches {
			if name, ok := common.ByName(m, "export.default.name"); ok {
				out = append(out, model.ExportAssignmentResult{
					ResultBase: model.ResultBase{QueryName: key, Location: common.DefinitionLocation(m)},
					Name:       name.Text,
				})
				continue
			}
			if name, ok := common.ByName(m, "export.assignment.name"); ok {
				out = append(out, model.ExportAssignmentResult{
					ResultBase: model.ResultBase{QueryName: key, Location: common.DefinitionLocation(m)},
					Name:       name.Text,
				})
				continue
			}
			if val, ok := common.ByName(m, "export.default.value"); ok {
				out = append(out, model.ExportAssignmentResult{
					ResultBase: model.ResultBase{QueryName: key, Location: val.Location, NodeText: val.Text},
					Name:       "default",
				})
			}
		}
		return out
	}
}
