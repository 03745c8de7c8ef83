package tsquery

import (
	"github.com/kestrel-dev/srcmap/pkg/tsparse"
	"github.com/kestrel-dev/srcmap/pkg/tsquery/querytext"
)

// KeyDefinition pairs a query key with the language it applies to and its
// raw query text, so a caller can register a whole family in one pass
// without repeating language/name bookkeeping.
type KeyDefinition struct {
	Language tsparse.Language
	Key      string
	Text     string
}

// AllKeyDefinitions returns every normatively-named query key from the
// supported-language key space, plus the Go-specific keys this module adds
// for full closed-set coverage (Go has no normative key list in the
// source key space, only membership in S_lang).
func AllKeyDefinitions() []KeyDefinition {
	defs := make([]KeyDefinition, 0, 64)
	defs = append(defs, typeScriptKeys()...)
	defs = append(defs, javaScriptKeys()...)
	defs = append(defs, javaKeys()...)
	defs = append(defs, pythonKeys()...)
	defs = append(defs, goKeys()...)
	return defs
}

func typeScriptKeys() []KeyDefinition {
	lang := tsparse.LanguageTypeScript
	return []KeyDefinition{
		{lang, "ts-import-sources", querytext.TSImportSources},
		{lang, "ts-named-imports", querytext.TSNamedImports},
		{lang, "ts-default-imports", querytext.TSDefaultImports},
		{lang, "ts-type-imports", querytext.TSTypeImports},
		{lang, "ts-export-declarations", querytext.TSExportDeclarations},
		{lang, "ts-export-assignments", querytext.TSExportAssignments},
		{lang, "ts-class-definitions", querytext.TSClassDefinitions},
		{lang, "ts-interface-definitions", querytext.TSInterfaceDefinitions},
		{lang, "ts-function-definitions", querytext.TSFunctionDefinitions},
		{lang, "ts-method-definitions", querytext.TSMethodDefinitions},
		{lang, "ts-type-definitions", querytext.TSTypeDefinitions},
		{lang, "ts-enum-definitions", querytext.TSEnumDefinitions},
		{lang, "ts-variable-definitions", querytext.TSVariableDefinitions},
		{lang, "ts-arrow-function-definitions", querytext.TSArrowFunctionDefinitions},
		{lang, "ts-property-definitions", querytext.TSPropertyDefinitions},
		{lang, "ts-call-expressions", querytext.TSCallExpressions},
		{lang, "ts-new-expressions", querytext.TSNewExpressions},
		{lang, "ts-member-expressions", querytext.TSMemberExpressions},
		{lang, "ts-type-references", querytext.TSTypeReferences},
		{lang, "ts-extends-clause", querytext.TSExtendsClause},
		{lang, "ts-implements-clause", querytext.TSImplementsClause},
	}
}

// javaScriptKeys mirrors the TypeScript key set without the type-specific
// keys, per spec ("js-* mirrors without the type-specific keys"). JSX
// shares the JavaScript grammar and so shares these key registrations under
// LanguageJSX as well.
func javaScriptKeys() []KeyDefinition {
	defs := []KeyDefinition{
		{tsparse.LanguageJavaScript, "js-import-sources", querytext.JSImportSources},
		{tsparse.LanguageJavaScript, "js-named-imports", querytext.JSNamedImports},
		{tsparse.LanguageJavaScript, "js-default-imports", querytext.JSDefaultImports},
		{tsparse.LanguageJavaScript, "js-export-declarations", querytext.JSExportDeclarations},
		{tsparse.LanguageJavaScript, "js-export-assignments", querytext.JSExportAssignments},
		{tsparse.LanguageJavaScript, "js-class-definitions", querytext.JSClassDefinitions},
		{tsparse.LanguageJavaScript, "js-function-definitions", querytext.JSFunctionDefinitions},
		{tsparse.LanguageJavaScript, "js-method-definitions", querytext.JSMethodDefinitions},
		{tsparse.LanguageJavaScript, "js-variable-definitions", querytext.JSVariableDefinitions},
		{tsparse.LanguageJavaScript, "js-arrow-function-definitions", querytext.JSArrowFunctionDefinitions},
		{tsparse.LanguageJavaScript, "js-property-definitions", querytext.JSPropertyDefinitions},
		{tsparse.LanguageJavaScript, "js-call-expressions", querytext.JSCallExpressions},
		{tsparse.LanguageJavaScript, "js-new-expressions", querytext.JSNewExpressions},
		{tsparse.LanguageJavaScript, "js-member-expressions", querytext.JSMemberExpressions},
		{tsparse.LanguageJavaScript, "js-extends-clause", querytext.JSExtendsClause},
	}
	jsx := make([]KeyDefinition, len(defs))
	for i, d := range defs {
		jsx[i] = KeyDefinition{Language: tsparse.LanguageJSX, Key: d.Key, Text: d.Text}
	}
	return append(defs, jsx...)
}

func javaKeys() []KeyDefinition {
	lang := tsparse.LanguageJava
	return []KeyDefinition{
		{lang, "java-import-sources", querytext.JavaImportSources},
		{lang, "java-import-statements", querytext.JavaImportStatements},
		{lang, "java-static-imports", querytext.JavaStaticImports},
		{lang, "java-wildcard-imports", querytext.JavaWildcardImports},
		{lang, "java-class-declarations", querytext.JavaClassDeclarations},
		{lang, "java-interface-declarations", querytext.JavaInterfaceDeclarations},
		{lang, "java-enum-declarations", querytext.JavaEnumDeclarations},
		{lang, "java-method-declarations", querytext.JavaMethodDeclarations},
		{lang, "java-call-expressions", querytext.JavaCallExpressions},
		{lang, "java-new-expressions", querytext.JavaNewExpressions},
		{lang, "java-field-access", querytext.JavaFieldAccess},
		{lang, "java-type-references", querytext.JavaTypeReferences},
	}
}

func pythonKeys() []KeyDefinition {
	lang := tsparse.LanguagePython
	return []KeyDefinition{
		{lang, "python-import-sources", querytext.PythonImportSources},
		{lang, "python-import-statements", querytext.PythonImportStatements},
		{lang, "python-from-imports", querytext.PythonFromImports},
		{lang, "python-import-as", querytext.PythonImportAs},
		{lang, "python-function-definitions", querytext.PythonFunctionDefinitions},
		{lang, "python-class-definitions", querytext.PythonClassDefinitions},
		{lang, "python-method-definitions", querytext.PythonMethodDefinitions},
		{lang, "python-variable-definitions", querytext.PythonVariableDefinitions},
		{lang, "python-call-expressions", querytext.PythonCallExpressions},
		{lang, "python-member-expressions", querytext.PythonMemberExpressions},
		{lang, "python-type-references", querytext.PythonTypeReferences},
	}
}

func goKeys() []KeyDefinition {
	lang := tsparse.LanguageGo
	return []KeyDefinition{
		{lang, "go-import-sources", querytext.GoImportSources},
		{lang, "go-import-statements", querytext.GoImportStatements},
		{lang, "go-function-definitions", querytext.GoFunctionDefinitions},
		{lang, "go-method-definitions", querytext.GoMethodDefinitions},
		{lang, "go-struct-definitions", querytext.GoStructDefinitions},
		{lang, "go-interface-definitions", querytext.GoInterfaceDefinitions},
		{lang, "go-type-definitions", querytext.GoTypeDefinitions},
		{lang, "go-variable-definitions", querytext.GoVariableDefinitions},
		{lang, "go-call-expressions", querytext.GoCallExpressions},
	}
}

// RegisterAll registers every known query key with e.
func RegisterAll(e *Engine) {
	for _, def := range AllKeyDefinitions() {
		e.RegisterQuery(def.Language, def.Key, def.Text)
	}
}
