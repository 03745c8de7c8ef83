package golang_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kestrel-dev/srcmap/pkg/bridge"
	"github.com/kestrel-dev/srcmap/pkg/model"
	"github.com/kestrel-dev/srcmap/pkg/processors/golang"
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
	require.NoError(t, golang.RegisterAll(reg))

	return bridge.New(engine, reg, nil), pm
}

const source = `
package widgets

import (
	"fmt"
	_ "embed"
)

type Widget struct {
	Name string
}

type Renderer interface {
	Render() string
}

func New(name string) *Widget {
	return &Widget{Name: name}
}

func (w *Widget) Render() string {
	fmt.Println(w.Name)
	return w.Name
}
`

func TestImportsAndDeclarations(t *testing.T) {
	b, pm := setup(t)
	tree, err := pm.Parse([]byte(source), tsparse.LanguageGo)
	require.NoError(t, err)
	defer tree.Close()

	sources, err := b.ExecuteKey("go-import-sources", tree, tsparse.LanguageGo, nil)
	require.NoError(t, err)
	require.Len(t, sources, 2)
	paths := []string{sources[0].(model.ImportSourceResult).Source, sources[1].(model.ImportSourceResult).Source}
	assert.ElementsMatch(t, []string{"fmt", "embed"}, paths)

	statements, err := b.ExecuteKey("go-import-statements", tree, tsparse.LanguageGo, nil)
	require.NoError(t, err)
	require.Len(t, statements, 2)
	var blankSeen bool
	for _, s := range statements {
		ni := s.(model.NamedImportResult)
		if ni.Name == "embed" {
			assert.Equal(t, "_", ni.Alias)
			blankSeen = true
		}
	}
	assert.True(t, blankSeen)

	structs, err := b.ExecuteKey("go-struct-definitions", tree, tsparse.LanguageGo, nil)
	require.NoError(t, err)
	require.Len(t, structs, 1)
	assert.Equal(t, "Widget", structs[0].(model.DefinitionResult).Name)

	interfaces, err := b.ExecuteKey("go-interface-definitions", tree, tsparse.LanguageGo, nil)
	require.NoError(t, err)
	require.Len(t, interfaces, 1)
	assert.Equal(t, "Renderer", interfaces[0].(model.DefinitionResult).Name)
}

func TestFunctionAndMethodDefinitions(t *testing.T) {
	b, pm := setup(t)
	tree, err := pm.Parse([]byte(source), tsparse.LanguageGo)
	require.NoError(t, err)
	defer tree.Close()

	functions, err := b.ExecuteKey("go-function-definitions", tree, tsparse.LanguageGo, nil)
	require.NoError(t, err)
	require.Len(t, functions, 1)
	fn := functions[0].(model.DefinitionResult)
	assert.Equal(t, "New", fn.Name)
	require.Len(t, fn.Parameters, 1)
	assert.Equal(t, "name", fn.Parameters[0].Name)

	methods, err := b.ExecuteKey("go-method-definitions", tree, tsparse.LanguageGo, nil)
	require.NoError(t, err)
	require.Len(t, methods, 1)
	method := methods[0].(model.DefinitionResult)
	assert.Equal(t, "Render", method.Name)
	assert.Equal(t, "Widget", method.ParentClass)

	calls, err := b.ExecuteKey("go-call-expressions", tree, tsparse.LanguageGo, nil)
	require.NoError(t, err)
	require.NotEmpty(t, calls)
}
