package tsjs

import (
	"github.com/kestrel-dev/srcmap/pkg/registry"
	"github.com/kestrel-dev/srcmap/pkg/tsparse"
)

// keyBuilder pairs a query key with the processor constructor that should
// back it (every constructor here takes the key itself, so the emitted
// results stamp the right queryName).
type keyBuilder struct {
	key     string
	build   func(key string) registry.ProcessorFunc
}

// tsOnlyBuilders are keys with no JavaScript equivalent (TypeScript's type
// system: type imports, interfaces, type aliases, implements clauses, type
// references).
var tsOnlyBuilders = []keyBuilder{
	{"ts-type-imports", TypeImportsProcessor},
	{"ts-interface-definitions", InterfaceDefinitionsProcessor},
	{"ts-type-definitions", TypeDefinitionsProcessor},
	{"ts-enum-definitions", EnumDefinitionsProcessor},
	{"ts-type-references", TypeReferencesProcessor},
	{"ts-implements-clause", ImplementsClauseProcessor},
}

// sharedBuilders are keys present in both the `ts-*` and `js-*` families,
// differing only by key prefix and the (separately registered) query text.
var sharedBuilders = []keyBuilder{
	{"import-sources", ImportSourcesProcessor},
	{"named-imports", NamedImportsProcessor},
	{"default-imports", DefaultImportsProcessor},
	{"export-declarations", ExportDeclarationsProcessor},
	{"export-assignments", ExportAssignmentsProcessor},
	{"class-definitions", ClassDefinitionsProcessor},
	{"function-definitions", FunctionDefinitionsProcessor},
	{"method-definitions", MethodDefinitionsProcessor},
	{"variable-definitions", VariableDefinitionsProcessor},
	{"arrow-function-definitions", ArrowFunctionDefinitionsProcessor},
	{"property-definitions", PropertyDefinitionsProcessor},
	{"call-expressions", CallExpressionsProcessor},
	{"new-expressions", NewExpressionsProcessor},
	{"member-expressions", MemberExpressionsProcessor},
	{"extends-clause", ExtendsClauseProcessor},
}

// RegisterAll registers every TypeScript and JavaScript/JSX processor
// entry into reg.
func RegisterAll(reg *registry.Registry) error {
	for _, b := range tsOnlyBuilders {
		if err := reg.Register(b.key, registry.Entry{
			Processor:          b.build(b.key),
			SupportedLanguages: []tsparse.Language{tsparse.LanguageTypeScript, tsparse.LanguageTSX},
			Priority:           50,
			DeclaredResultType: b.key,
		}); err != nil {
			return err
		}
	}

	for _, b := range sharedBuilders {
		tsKey := "ts-" + b.key
		if err := reg.Register(tsKey, registry.Entry{
			Processor:          b.build(tsKey),
			SupportedLanguages: []tsparse.Language{tsparse.LanguageTypeScript, tsparse.LanguageTSX},
			Priority:           50,
			DeclaredResultType: tsKey,
		}); err != nil {
			return err
		}

		jsKey := "js-" + b.key
		if err := reg.Register(jsKey, registry.Entry{
			Processor:          b.build(jsKey),
			SupportedLanguages: []tsparse.Language{tsparse.LanguageJavaScript, tsparse.LanguageJSX},
			Priority:           50,
			DeclaredResultType: jsKey,
		}); err != nil {
			return err
		}
	}

	return nil
}
