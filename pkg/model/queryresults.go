package model

// Every processor's result type embeds ResultBase and adds the
// query-specific fields named here (spec §3 "Typed query result", §4.4).
// These shapes are shared across language families where the underlying
// fact is the same (an import source is an import source whether it came
// from a TypeScript or Python file); the query key on ResultBase is what
// distinguishes provenance.

// ImportSourceResult is the module specifier of one import statement.
type ImportSourceResult struct {
	ResultBase
	Source     string
	IsRelative bool
	ImportType string // "static" or "dynamic"
}

// NamedImportResult is one named binding pulled out of an import clause.
type NamedImportResult struct {
	ResultBase
	Name  string
	Alias string
}

// DefaultImportResult is a default or namespace import binding.
type DefaultImportResult struct {
	ResultBase
	Name        string
	IsNamespace bool
}

// TypeImportResult is a TypeScript type-only import, whole-statement or
// per-specifier.
type TypeImportResult struct {
	ResultBase
	Name  string
	Alias string
}

// ExportDeclarationResult is a named declaration export or a re-export.
type ExportDeclarationResult struct {
	ResultBase
	ExportName string
	ExportType string // "declaration", "re-export", "re-export-all"
	Source     string // populated for re-exports
}

// ExportAssignmentResult is a default export (`export default ...`).
type ExportAssignmentResult struct {
	ResultBase
	Name string
}

// DefinitionResult covers class/interface/function/method/type/enum/
// variable/property definitions uniformly; ParentClass is set for methods
// and properties nested in a class body.
type DefinitionResult struct {
	ResultBase
	Name        string
	ParentClass string
	Parameters  []Parameter
	ReturnType  string
}

// DependencyResult wraps a SymbolDependencyEdge as a typed query result for
// call/new/member-access/type-reference/extends/implements processors.
type DependencyResult struct {
	ResultBase
	Edge SymbolDependencyEdge
}

// FromImportResult is a `from module import name[, name...]` statement,
// with every name bound in that one statement collected into Names.
type FromImportResult struct {
	ResultBase
	Module     string
	Names      []string
	IsRelative bool
}
