package python_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kestrel-dev/srcmap/pkg/bridge"
	"github.com/kestrel-dev/srcmap/pkg/model"
	"github.com/kestrel-dev/srcmap/pkg/processors/python"
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
	require.NoError(t, python.RegisterAll(reg))

	return bridge.New(engine, reg, nil), pm
}

// TestFromImportsAndImportAs exercises the S5 scenario from the
// specification's end-to-end test suite.
func TestFromImportsAndImportAs(t *testing.T) {
	b, pm := setup(t)

	source := []byte("from os.path import dirname\nfrom typing import List as L\nfrom .pkg import *\n")
	tree, err := pm.Parse(source, tsparse.LanguagePython)
	require.NoError(t, err)
	defer tree.Close()

	fromImports, err := b.ExecuteKey("python-from-imports", tree, tsparse.LanguagePython, nil)
	require.NoError(t, err)
	require.Len(t, fromImports, 3)

	byModule := map[string]model.FromImportResult{}
	for _, r := range fromImports {
		fi := r.(model.FromImportResult)
		byModule[fi.Module] = fi
	}

	osPath, ok := byModule["os.path"]
	require.True(t, ok)
	assert.Equal(t, []string{"dirname"}, osPath.Names)
	assert.False(t, osPath.IsRelative)

	typing, ok := byModule["typing"]
	require.True(t, ok)
	assert.Equal(t, []string{"List"}, typing.Names)
	assert.False(t, typing.IsRelative)

	pkg, ok := byModule[".pkg"]
	require.True(t, ok)
	assert.Equal(t, []string{"*"}, pkg.Names)
	assert.True(t, pkg.IsRelative)

	importAs, err := b.ExecuteKey("python-import-as", tree, tsparse.LanguagePython, nil)
	require.NoError(t, err)
	require.Len(t, importAs, 1)
	ia := importAs[0].(model.NamedImportResult)
	assert.Equal(t, "List", ia.Name)
	assert.Equal(t, "L", ia.Alias)
}

func TestClassAndMethodDefinitions(t *testing.T) {
	b, pm := setup(t)

	source := []byte("class Widget:\n    def render(self, size):\n        return size\n")
	tree, err := pm.Parse(source, tsparse.LanguagePython)
	require.NoError(t, err)
	defer tree.Close()

	classes, err := b.ExecuteKey("python-class-definitions", tree, tsparse.LanguagePython, nil)
	require.NoError(t, err)
	require.Len(t, classes, 1)
	assert.Equal(t, "Widget", classes[0].(model.DefinitionResult).Name)

	methods, err := b.ExecuteKey("python-method-definitions", tree, tsparse.LanguagePython, nil)
	require.NoError(t, err)
	require.Len(t, methods, 1)
	method := methods[0].(model.DefinitionResult)
	assert.Equal(t, "render", method.Name)
	assert.Equal(t, "Widget", method.ParentClass)
	require.Len(t, method.Parameters, 2)
	assert.Equal(t, "self", method.Parameters[0].Name)
	assert.Equal(t, "size", method.Parameters[1].Name)
}

func TestDependencyEdges(t *testing.T) {
	b, pm := setup(t)

	source := []byte("class Repo(BaseRepo):\n" +
		"    def fetch(self, id: int) -> User:\n" +
		"        conn.open()\n" +
		"        return conn.cached\n")
	tree, err := pm.Parse(source, tsparse.LanguagePython)
	require.NoError(t, err)
	defer tree.Close()

	calls, err := b.ExecuteKey("python-call-expressions", tree, tsparse.LanguagePython, nil)
	require.NoError(t, err)
	require.Len(t, calls, 1)
	assert.Equal(t, "/open", calls[0].(model.DependencyResult).Edge.To)

	members, err := b.ExecuteKey("python-member-expressions", tree, tsparse.LanguagePython, nil)
	require.NoError(t, err)
	foundCached := false
	for _, r := range members {
		dep := r.(model.DependencyResult)
		if dep.Edge.To == "/conn.cached" {
			foundCached = true
		}
	}
	assert.True(t, foundCached)

	typeRefs, err := b.ExecuteKey("python-type-references", tree, tsparse.LanguagePython, nil)
	require.NoError(t, err)
	require.Len(t, typeRefs, 2)

	classResults, err := b.ExecuteKey("python-class-definitions", tree, tsparse.LanguagePython, nil)
	require.NoError(t, err)
	foundExtends := false
	for _, r := range classResults {
		if dep, ok := r.(model.DependencyResult); ok && dep.Edge.Type == model.EdgeKindExtends {
			foundExtends = true
			assert.Equal(t, "/BaseRepo", dep.Edge.To)
		}
	}
	assert.True(t, foundExtends)
}
