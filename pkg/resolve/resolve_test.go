package resolve_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kestrel-dev/srcmap/pkg/resolve"
)

// TestSpecifierClassification implements the S4 scenario: a builtin import,
// a relative import to a file that does not exist, and an external package
// import, each classified correctly.
func TestSpecifierClassification(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "x.ts"), []byte("// entry\n"), 0o644))

	r := resolve.NewResolver(root, nil, nil)
	basePath := filepath.Join(root, "x.ts")

	builtin := r.Resolve("node:fs", basePath, "typescript")
	assert.Equal(t, resolve.ClassificationBuiltin, builtin.Classification)
	assert.True(t, builtin.Exists)
	assert.Equal(t, "node:fs", builtin.TargetPath)

	missing := r.Resolve("./missing", basePath, "typescript")
	assert.Equal(t, resolve.ClassificationRelative, missing.Classification)
	assert.False(t, missing.Exists)

	external := r.Resolve("react", basePath, "typescript")
	assert.Equal(t, resolve.ClassificationExternal, external.Classification)
	assert.True(t, external.Exists)
	assert.Equal(t, "react", external.TargetPath)
}

// TestRelativeResolutionFindsSibling exercises extension search against a
// sibling file that exists only under an implied extension.
func TestRelativeResolutionFindsSibling(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "helper.ts"), []byte("export const x = 1;\n"), 0o644))

	r := resolve.NewResolver(root, nil, nil)
	basePath := filepath.Join(root, "x.ts")

	got := r.Resolve("./helper", basePath, "typescript")
	assert.Equal(t, resolve.ClassificationRelative, got.Classification)
	assert.True(t, got.Exists)
	assert.Equal(t, filepath.Join(root, "helper.ts"), got.TargetPath)
}

// TestRelativeResolutionFindsIndex exercises the `<path>/index.<ext>`
// fallback.
func TestRelativeResolutionFindsIndex(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "utils"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "utils", "index.js"), []byte("module.exports = {};\n"), 0o644))

	r := resolve.NewResolver(root, nil, nil)
	basePath := filepath.Join(root, "x.ts")

	got := r.Resolve("./utils", basePath, "javascript")
	assert.Equal(t, resolve.ClassificationRelative, got.Classification)
	assert.True(t, got.Exists)
	assert.Equal(t, filepath.Join(root, "utils", "index.js"), got.TargetPath)
}

// TestAliasResolution exercises the configured alias-prefix table.
func TestAliasResolution(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "src"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "src", "button.tsx"), []byte("export default function Button() {}\n"), 0o644))

	r := resolve.NewResolver(root, []resolve.Alias{{Prefix: "@/", Replacement: "src/"}}, nil)
	basePath := filepath.Join(root, "x.ts")

	got := r.Resolve("@/button", basePath, "typescript")
	assert.Equal(t, resolve.ClassificationAlias, got.Classification)
	assert.True(t, got.Exists)
	assert.Equal(t, filepath.Join(root, "src", "button.tsx"), got.TargetPath)
}

// TestAbsoluteResolution resolves a project-root-relative path.
func TestAbsoluteResolution(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "lib"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "lib", "math.ts"), []byte("export const pi = 3.14;\n"), 0o644))

	r := resolve.NewResolver(root, nil, nil)
	basePath := filepath.Join(root, "x.ts")

	got := r.Resolve("/lib/math", basePath, "typescript")
	assert.Equal(t, resolve.ClassificationAbsolute, got.Classification)
	assert.True(t, got.Exists)
	assert.Equal(t, filepath.Join(root, "lib", "math.ts"), got.TargetPath)
}

// TestGoBuiltinAndExternal checks the Go language family separately from
// the node family used by the other cases.
func TestGoBuiltinAndExternal(t *testing.T) {
	root := t.TempDir()
	r := resolve.NewResolver(root, nil, nil)
	basePath := filepath.Join(root, "main.go")

	builtin := r.Resolve("net/http", basePath, "go")
	assert.Equal(t, resolve.ClassificationBuiltin, builtin.Classification)

	external := r.Resolve("github.com/stretchr/testify", basePath, "go")
	assert.Equal(t, resolve.ClassificationExternal, external.Classification)
}

// TestJavaPackagePrefixIsBuiltin checks that a fully-qualified class
// reference inherits its package's builtin status.
func TestJavaPackagePrefixIsBuiltin(t *testing.T) {
	root := t.TempDir()
	r := resolve.NewResolver(root, nil, nil)
	basePath := filepath.Join(root, "Main.java")

	got := r.Resolve("java.util.List", basePath, "java")
	assert.Equal(t, resolve.ClassificationBuiltin, got.Classification)
}
