package bridge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kestrel-dev/srcmap/pkg/model"
	"github.com/kestrel-dev/srcmap/pkg/registry"
	"github.com/kestrel-dev/srcmap/pkg/tsparse"
	"github.com/kestrel-dev/srcmap/pkg/tsquery"
)

type nameResult struct {
	model.ResultBase
	Name string
}

func TestExecuteKeyRunsRegisteredProcessor(t *testing.T) {
	pm := tsparse.NewParserManager(nil)
	defer pm.Close()

	engine := tsquery.NewEngine(pm, nil)
	engine.RegisterQuery(tsparse.LanguageJavaScript, "js-function-definitions",
		`(function_declaration name: (identifier) @function.name) @function.definition`)

	reg := registry.New()
	require.NoError(t, reg.Register("js-function-definitions", registry.Entry{
		SupportedLanguages: []tsparse.Language{tsparse.LanguageJavaScript},
		DeclaredResultType: "js-function-definitions",
		Processor: func(matches []tsquery.Match, ctx any) []model.TypedResult {
			out := make([]model.TypedResult, 0, len(matches))
			for _, m := range matches {
				for _, c := range m.Captures {
					if c.Name == "function.name" {
						out = append(out, nameResult{
							ResultBase: model.ResultBase{QueryName: "js-function-definitions", Location: c.Location, NodeText: c.Text},
							Name:       c.Text,
						})
					}
				}
			}
			return out
		},
	}))

	b := New(engine, reg, nil)

	source := []byte("function greet() {}\n")
	tree, err := pm.Parse(source, tsparse.LanguageJavaScript)
	require.NoError(t, err)
	defer tree.Close()

	results, err := b.ExecuteKey("js-function-definitions", tree, tsparse.LanguageJavaScript, nil)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "greet", results[0].(nameResult).Name)
}

func TestExecuteAllLanguageQueriesIntersectsKeySets(t *testing.T) {
	pm := tsparse.NewParserManager(nil)
	defer pm.Close()

	engine := tsquery.NewEngine(pm, nil)
	engine.RegisterQuery(tsparse.LanguageJavaScript, "js-function-definitions",
		`(function_declaration name: (identifier) @function.name) @function.definition`)

	reg := registry.New()
	require.NoError(t, reg.Register("js-function-definitions", registry.Entry{
		SupportedLanguages: []tsparse.Language{tsparse.LanguageJavaScript},
		DeclaredResultType: "js-function-definitions",
		Processor: func(matches []tsquery.Match, ctx any) []model.TypedResult {
			out := make([]model.TypedResult, 0, len(matches))
			for range matches {
				out = append(out, nameResult{ResultBase: model.ResultBase{QueryName: "js-function-definitions"}})
			}
			return out
		},
	}))
	// Registered but never defined in the engine: should be skipped, not error.
	require.NoError(t, reg.Register("js-never-defined", registry.Entry{
		SupportedLanguages: []tsparse.Language{tsparse.LanguageJavaScript},
		DeclaredResultType: "js-never-defined",
		Processor: func(matches []tsquery.Match, ctx any) []model.TypedResult { return nil },
	}))

	b := New(engine, reg, nil)
	source := []byte("function greet() {}\n")
	tree, err := pm.Parse(source, tsparse.LanguageJavaScript)
	require.NoError(t, err)
	defer tree.Close()

	results, errs := b.ExecuteAllLanguageQueries(tree, tsparse.LanguageJavaScript, nil)
	assert.Len(t, results["js-function-definitions"], 1)
	assert.Empty(t, errs["js-function-definitions"])
	assert.Empty(t, results["js-never-defined"])
}
