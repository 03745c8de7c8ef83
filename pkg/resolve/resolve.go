// Package resolve implements the Path Resolver (spec §4.7): turning an
// import specifier under a base file into a classification and a
// canonical target path, deterministically and without side effects
// beyond file-existence probes (routed through pkg/srcread).
package resolve

import (
	"path/filepath"
	"strings"

	"github.com/kestrel-dev/srcmap/pkg/srcread"
)

// Classification is the bucket a specifier falls into per the spec §4.7
// table.
type Classification string

const (
	ClassificationBuiltin  Classification = "Builtin"
	ClassificationRelative Classification = "Relative"
	ClassificationAbsolute Classification = "Absolute"
	ClassificationAlias    Classification = "Alias"
	ClassificationExternal Classification = "External"
)

// Alias is one configured alias-prefix replacement (e.g. "@/" → "src/").
type Alias struct {
	Prefix      string
	Replacement string
}

// DefaultExtensions is the extension-search order from spec §4.7.
var DefaultExtensions = []string{".ts", ".tsx", ".js", ".jsx", ".json"}

// Result is the outcome of resolving one specifier.
type Result struct {
	Specifier      string
	Classification Classification
	TargetPath     string
	Exists         bool
}

// Resolver resolves import specifiers under a fixed project root.
type Resolver struct {
	root       string
	aliases    []Alias
	extensions []string
}

// NewResolver builds a Resolver rooted at root with the given alias table.
// extensions defaults to DefaultExtensions when nil.
func NewResolver(root string, aliases []Alias, extensions []string) *Resolver {
	if extensions == nil {
		extensions = DefaultExtensions
	}
	return &Resolver{root: root, aliases: aliases, extensions: extensions}
}

// Resolve classifies spec (found in file basePath, written in language) and
// resolves it to a canonical target path.
func (r *Resolver) Resolve(spec, basePath, language string) Result {
	family := LanguageFamily(language)
	if IsBuiltin(family, spec) {
		return Result{Specifier: spec, Classification: ClassificationBuiltin, TargetPath: spec, Exists: true}
	}

	switch {
	case strings.HasPrefix(spec, "."):
		target := filepath.Join(filepath.Dir(basePath), spec)
		resolved, exists := r.searchExtensions(target)
		return Result{Specifier: spec, Classification: ClassificationRelative, TargetPath: resolved, Exists: exists}

	case strings.HasPrefix(spec, "/"):
		target := filepath.Join(r.root, spec)
		resolved, exists := r.searchExtensions(target)
		return Result{Specifier: spec, Classification: ClassificationAbsolute, TargetPath: resolved, Exists: exists}

	default:
		if replacement, ok := r.matchAlias(spec); ok {
			target := filepath.Join(r.root, replacement)
			resolved, exists := r.searchExtensions(target)
			return Result{Specifier: spec, Classification: ClassificationAlias, TargetPath: resolved, Exists: exists}
		}
		return Result{Specifier: spec, Classification: ClassificationExternal, TargetPath: spec, Exists: true}
	}
}

func (r *Resolver) matchAlias(spec string) (string, bool) {
	for _, a := range r.aliases {
		if strings.HasPrefix(spec, a.Prefix) {
			return a.Replacement + strings.TrimPrefix(spec, a.Prefix), true
		}
	}
	return "", false
}

// searchExtensions implements spec §4.7's extension search: an already-
// extended existing path wins outright; otherwise try each configured
// extension, then `<path>/index.<ext>` in the same order. Returns the
// unextended path with exists=false if nothing is found.
func (r *Resolver) searchExtensions(path string) (string, bool) {
	if filepath.Ext(path) != "" && srcread.Exists(path) {
		return path, true
	}

	for _, ext := range r.extensions {
		candidate := path + ext
		if srcread.Exists(candidate) {
			return candidate, true
		}
	}

	for _, ext := range r.extensions {
		candidate := filepath.Join(path, "index"+ext)
		if srcread.Exists(candidate) {
			return candidate, true
		}
	}

	return path, false
}
