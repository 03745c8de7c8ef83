package java_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kestrel-dev/srcmap/pkg/bridge"
	"github.com/kestrel-dev/srcmap/pkg/model"
	"github.com/kestrel-dev/srcmap/pkg/processors/java"
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
	require.NoError(t, java.RegisterAll(reg))

	return bridge.New(engine, reg, nil), pm
}

const source = `
package com.example.app;

import java.util.List;
import static java.lang.Math.max;
import java.util.*;

public class UserService implements Runnable {
  public List<String> findUser(String id) {
    return null;
  }
}

interface Greeter {
  String greet(String name);
}

enum Status {
  ACTIVE, INACTIVE
}
`

func TestImportFamilies(t *testing.T) {
	b, pm := setup(t)
	tree, err := pm.Parse([]byte(source), tsparse.LanguageJava)
	require.NoError(t, err)
	defer tree.Close()

	statements, err := b.ExecuteKey("java-import-statements", tree, tsparse.LanguageJava, nil)
	require.NoError(t, err)
	require.Len(t, statements, 1)
	assert.Equal(t, "java.util.List", statements[0].(model.ImportSourceResult).Source)

	static, err := b.ExecuteKey("java-static-imports", tree, tsparse.LanguageJava, nil)
	require.NoError(t, err)
	require.Len(t, static, 1)
	assert.Equal(t, "java.lang.Math.max", static[0].(model.ImportSourceResult).Source)

	wildcard, err := b.ExecuteKey("java-wildcard-imports", tree, tsparse.LanguageJava, nil)
	require.NoError(t, err)
	require.Len(t, wildcard, 1)
	assert.Equal(t, "java.util.*", wildcard[0].(model.ImportSourceResult).Source)
}

func TestClassInterfaceEnumAndMethod(t *testing.T) {
	b, pm := setup(t)
	tree, err := pm.Parse([]byte(source), tsparse.LanguageJava)
	require.NoError(t, err)
	defer tree.Close()

	classResults, err := b.ExecuteKey("java-class-declarations", tree, tsparse.LanguageJava, nil)
	require.NoError(t, err)
	var classes []model.DefinitionResult
	var classEdges []model.DependencyResult
	for _, r := range classResults {
		switch v := r.(type) {
		case model.DefinitionResult:
			classes = append(classes, v)
		case model.DependencyResult:
			classEdges = append(classEdges, v)
		}
	}
	require.Len(t, classes, 1)
	assert.Equal(t, "UserService", classes[0].Name)
	require.Len(t, classEdges, 1)
	assert.Equal(t, model.EdgeKindImplements, classEdges[0].Edge.Type)
	assert.Equal(t, "/Runnable", classEdges[0].Edge.To)

	interfaces, err := b.ExecuteKey("java-interface-declarations", tree, tsparse.LanguageJava, nil)
	require.NoError(t, err)
	require.Len(t, interfaces, 1)
	assert.Equal(t, "Greeter", interfaces[0].(model.DefinitionResult).Name)

	enums, err := b.ExecuteKey("java-enum-declarations", tree, tsparse.LanguageJava, nil)
	require.NoError(t, err)
	require.Len(t, enums, 1)
	assert.Equal(t, "Status", enums[0].(model.DefinitionResult).Name)

	methods, err := b.ExecuteKey("java-method-declarations", tree, tsparse.LanguageJava, nil)
	require.NoError(t, err)
	require.Len(t, methods, 2)
	byName := map[string]model.DefinitionResult{}
	for _, m := range methods {
		d := m.(model.DefinitionResult)
		byName[d.Name] = d
	}
	findUser, ok := byName["findUser"]
	require.True(t, ok)
	assert.Equal(t, "UserService", findUser.ParentClass)
	require.Len(t, findUser.Parameters, 1)
	assert.Equal(t, "id", findUser.Parameters[0].Name)

	greet, ok := byName["greet"]
	require.True(t, ok)
	assert.Equal(t, "Greeter", greet.ParentClass)
}

func TestDependencyEdges(t *testing.T) {
	b, pm := setup(t)

	source := []byte(`
package com.example.app;

class Repo extends BaseRepo {
  Connection conn;

  User fetch(String id) {
    conn.open();
    conn.label = id;
    return new User(id);
  }
}
`)
	tree, err := pm.Parse(source, tsparse.LanguageJava)
	require.NoError(t, err)
	defer tree.Close()

	calls, err := b.ExecuteKey("java-call-expressions", tree, tsparse.LanguageJava, nil)
	require.NoError(t, err)
	require.Len(t, calls, 1)
	assert.Equal(t, "/open", calls[0].(model.DependencyResult).Edge.To)

	news, err := b.ExecuteKey("java-new-expressions", tree, tsparse.LanguageJava, nil)
	require.NoError(t, err)
	require.Len(t, news, 1)
	assert.Equal(t, "/User", news[0].(model.DependencyResult).Edge.To)

	members, err := b.ExecuteKey("java-field-access", tree, tsparse.LanguageJava, nil)
	require.NoError(t, err)
	require.Len(t, members, 1)
	assert.Equal(t, "/conn.label", members[0].(model.DependencyResult).Edge.To)

	typeRefs, err := b.ExecuteKey("java-type-references", tree, tsparse.LanguageJava, nil)
	require.NoError(t, err)
	require.Len(t, typeRefs, 1)
	assert.Equal(t, model.EdgeKindTypeReference, typeRefs[0].(model.DependencyResult).Edge.Type)

	classResults, err := b.ExecuteKey("java-class-declarations", tree, tsparse.LanguageJava, nil)
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
