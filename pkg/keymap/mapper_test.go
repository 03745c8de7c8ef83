package keymap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kestrel-dev/srcmap/pkg/model"
	"github.com/kestrel-dev/srcmap/pkg/registry"
	"github.com/kestrel-dev/srcmap/pkg/tsparse"
	"github.com/kestrel-dev/srcmap/pkg/tsquery"
)

type stubResult struct {
	model.ResultBase
	Name string
}

func registerStub(t *testing.T, reg *registry.Registry, key string) {
	t.Helper()
	require.NoError(t, reg.Register(key, registry.Entry{
		SupportedLanguages: []tsparse.Language{tsparse.LanguageTypeScript},
		DeclaredResultType: key,
		Processor: func(matches []tsquery.Match, ctx any) []model.TypedResult {
			out := make([]model.TypedResult, 0, len(matches))
			for range matches {
				out = append(out, stubResult{ResultBase: model.ResultBase{QueryName: key}})
			}
			return out
		},
	}))
}

func TestMapperExecuteRemapsToUserLabels(t *testing.T) {
	reg := registry.New()
	registerStub(t, reg, "ts-import-sources")
	registerStub(t, reg, "ts-class-definitions")

	m := Mapper{Labels: map[string]string{
		"imports": "ts-import-sources",
		"classes": "ts-class-definitions",
	}}

	matchesByKey := map[string][]tsquery.Match{
		"ts-import-sources":   {},
		"ts-class-definitions": {{}},
	}

	results := m.Execute(reg, matchesByKey, nil)
	assert.Empty(t, results["imports"])
	assert.Len(t, results["classes"], 1)
}

func TestMapperValidateAgainstEmptyRegistryIsInvalid(t *testing.T) {
	reg := registry.New()
	m := Mapper{Labels: map[string]string{
		"imports": "ts-import-sources",
		"classes": "ts-class-definitions",
	}}

	result := m.Validate(reg)
	require.False(t, result.IsValid)
	require.Len(t, result.Errors, 2)

	joined := result.Errors[0] + result.Errors[1]
	assert.Contains(t, joined, "ts-import-sources")
	assert.Contains(t, joined, "ts-class-definitions")
}

func TestEmptyMapperIsLegal(t *testing.T) {
	var m Mapper
	reg := registry.New()
	assert.True(t, m.Validate(reg).IsValid)
	assert.Empty(t, m.GetUserKeys())
	assert.Empty(t, m.GetQueryKeys())
}

func TestPredefinedMappingsAreWellFormed(t *testing.T) {
	for name, m := range PredefinedMappings {
		assert.NotEmpty(t, m.Labels, "predefined mapping %q should not be empty", name)
	}
}
