package tsjs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kestrel-dev/srcmap/pkg/bridge"
	"github.com/kestrel-dev/srcmap/pkg/model"
	"github.com/kestrel-dev/srcmap/pkg/processors/tsjs"
	"github.com/kestrel-dev/srcmap/pkg/registry"
	"github.com/kestrel-dev/srcmap/pkg/tsparse"
	"github.com/kestrel-dev/srcmap/pkg/tsquery"
)

func setup(t *testing.T) (*bridge.Bridge, *tsparse.ParserManager) {
	t.Helper()
	pm := tsparse.NewParserManager(nil)
	t.Cleanup(func() { pm.Close() })

	engine := tsquery.NewEngine(pm, nil)
	tsquery.RegisterAll(engine)

	reg := registry.New()
	require.NoError(t, tsjs.RegisterAll(reg))

	return bridge.New(engine, reg, nil), pm
}

// TestNamedImportAndReExport exercises the S1 scenario from the
// specification's end-to-end test suite.
func TestNamedImportAndReExport(t *testing.T) {
	b, pm := setup(t)

	source := []byte("import { useState, useEffect as ue } from \"react\";\nexport { foo } from \"./utils\";\n")
	tree, err := pm.Parse(source, tsparse.LanguageTypeScript)
	require.NoError(t, err)
	defer tree.Close()

	sources, err := b.ExecuteKey("ts-import-sources", tree, tsparse.LanguageTypeScript, nil)
	require.NoError(t, err)
	require.Len(t, sources, 1)
	src := sources[0].(model.ImportSourceResult)
	assert.Equal(t, "react", src.Source)
	assert.False(t, src.IsRelative)
	assert.Equal(t, "static", src.ImportType)

	named, err := b.ExecuteKey("ts-named-imports", tree, tsparse.LanguageTypeScript, nil)
	require.NoError(t, err)
	require.Len(t, named, 2)
	names := []string{named[0].(model.NamedImportResult).Name, named[1].(model.NamedImportResult).Name}
	assert.ElementsMatch(t, []string{"useState", "useEffect"}, names)
	for _, r := range named {
		ni := r.(model.NamedImportResult)
		if ni.Name == "useEffect" {
			assert.Equal(t, "ue", ni.Alias)
		}
	}

	exports, err := b.ExecuteKey("ts-export-declarations", tree, tsparse.LanguageTypeScript, nil)
	require.NoError(t, err)
	require.Len(t, exports, 1)
	exp := exports[0].(model.ExportDeclarationResult)
	assert.Equal(t, "re-export", exp.ExportType)
	assert.Equal(t, "./utils", exp.Source)
	assert.Equal(t, "foo", exp.ExportName)
}

// TestClassWithNestedMethodAndInheritance exercises the S2 scenario.
func TestClassWithNestedMethodAndInheritance(t *testing.T) {
	b, pm := setup(t)

	source := []byte("export class UserService extends Base implements IUser {\n  async getUser(id: string): Promise<User> { return fetch(`/u/${id}`); }\n}\n")
	tree, err := pm.Parse(source, tsparse.LanguageTypeScript)
	require.NoError(t, err)
	defer tree.Close()

	classes, err := b.ExecuteKey("ts-class-definitions", tree, tsparse.LanguageTypeScript, nil)
	require.NoError(t, err)
	require.Len(t, classes, 1)
	assert.Equal(t, "UserService", classes[0].(model.DefinitionResult).Name)

	methods, err := b.ExecuteKey("ts-method-definitions", tree, tsparse.LanguageTypeScript, nil)
	require.NoError(t, err)
	require.Len(t, methods, 1)
	method := methods[0].(model.DefinitionResult)
	assert.Equal(t, "getUser", method.Name)
	assert.Equal(t, "UserService", method.ParentClass)
	require.Len(t, method.Parameters, 1)
	assert.Equal(t, "id", method.Parameters[0].Name)

	extends, err := b.ExecuteKey("ts-extends-clause", tree, tsparse.LanguageTypeScript, nil)
	require.NoError(t, err)
	require.Len(t, extends, 1)
	assert.Equal(t, "/Base", extends[0].(model.DependencyResult).Edge.To)

	implements, err := b.ExecuteKey("ts-implements-clause", tree, tsparse.LanguageTypeScript, nil)
	require.NoError(t, err)
	require.Len(t, implements, 1)
	assert.Equal(t, "/IUser", implements[0].(model.DependencyResult).Edge.To)

	calls, err := b.ExecuteKey("ts-call-expressions", tree, tsparse.LanguageTypeScript, nil)
	require.NoError(t, err)
	require.Len(t, calls, 1)
	assert.Equal(t, "/fetch", calls[0].(model.DependencyResult).Edge.To)
}
