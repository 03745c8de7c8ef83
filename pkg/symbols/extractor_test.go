package symbols_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kestrel-dev/srcmap/pkg/bridge"
	"github.com/kestrel-dev/srcmap/pkg/processors/golang"
	"github.com/kestrel-dev/srcmap/pkg/processors/java"
	"github.com/kestrel-dev/srcmap/pkg/processors/python"
	"github.com/kestrel-dev/srcmap/pkg/processors/tsjs"
	"github.com/kestrel-dev/srcmap/pkg/registry"
	"github.com/kestrel-dev/srcmap/pkg/symbols"
	"github.com/kestrel-dev/srcmap/pkg/tsparse"
	"github.com/kestrel-dev/srcmap/pkg/tsquery"
)

func setup(t *testing.T) *symbols.Extractor {
	t.Helper()
	pm := tsparse.NewParserManager(nil)
	t.Cleanup(func() { pm.Close() })

	engine := tsquery.NewEngine(pm, nil)
	tsquery.RegisterAll(engine)

	reg := registry.New()
	require.NoError(t, tsjs.RegisterAll(reg))
	require.NoError(t, java.RegisterAll(reg))
	require.NoError(t, python.RegisterAll(reg))
	require.NoError(t, golang.RegisterAll(reg))

	b := bridge.New(engine, reg, nil)
	return symbols.NewExtractor(b, pm, 0, nil)
}

// TestClassWithNestedMethodAndInheritance exercises the S2 scenario at the
// symbol-extractor level: the method's namePath nests under its class, and
// every produced symbol satisfies invariant I2.
func TestClassWithNestedMethodAndInheritance(t *testing.T) {
	e := setup(t)

	source := []byte("export class UserService extends Base implements IUser {\n  async getUser(id: string): Promise<User> { return fetch(`/u/${id}`); }\n}\n")
	result, err := e.ExtractFile("src/user_service.ts", source)
	require.NoError(t, err)

	foundClass := false
	foundMethod := false
	for _, s := range result.Symbols {
		require.True(t, s.ValidateNamePath(), "namePath invariant violated for %+v", s)
		if s.Name == "UserService" {
			foundClass = true
			assert.Equal(t, "UserService", s.NamePath)
		}
		if s.Name == "getUser" {
			foundMethod = true
			assert.Equal(t, "UserService/getUser", s.NamePath)
			assert.Equal(t, "UserService", s.Parent)
		}
	}
	assert.True(t, foundClass)
	assert.True(t, foundMethod)

	foundExtends, foundImplements, foundCall := false, false, false
	for _, edge := range result.Edges {
		switch edge.To {
		case "/Base":
			foundExtends = true
			assert.Equal(t, "UserService", edge.From, "extends clause is lexically inside the class declaration")
		case "/IUser":
			foundImplements = true
			assert.Equal(t, "UserService", edge.From, "implements clause is lexically inside the class declaration")
		case "/fetch":
			foundCall = true
			assert.Equal(t, "UserService/getUser", edge.From, "call must originate inside its enclosing method")
		}
	}
	assert.True(t, foundExtends)
	assert.True(t, foundImplements)
	assert.True(t, foundCall)
}

// TestCachingServesIdenticalContentWithoutReparsing checks that a second
// call with identical bytes for the same path returns an equal result
// (content-hash cache hit), and that changing the content produces a
// fresh result.
func TestCachingServesIdenticalContentWithoutReparsing(t *testing.T) {
	e := setup(t)
	source := []byte("function greet(name) { return name; }\n")

	first, err := e.ExtractFile("src/greet.js", source)
	require.NoError(t, err)

	second, err := e.ExtractFile("src/greet.js", source)
	require.NoError(t, err)
	assert.Same(t, first, second)

	changed, err := e.ExtractFile("src/greet.js", []byte("function greet2(name) { return name; }\n"))
	require.NoError(t, err)
	assert.NotSame(t, first, changed)
}

func TestMarkdownFileRoutesToCustomExtractor(t *testing.T) {
	e := setup(t)
	result, err := e.ExtractFile("docs/readme.md", []byte("# Title\n\nSee [ref](./other.md).\n"))
	require.NoError(t, err)
	assert.Equal(t, "markdown", result.Language)
	require.NotEmpty(t, result.Symbols)
	require.NotEmpty(t, result.Edges)
}
