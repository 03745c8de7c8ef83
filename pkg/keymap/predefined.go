package keymap

// PredefinedMappings ships the common mappings named by spec §4.5 as plain
// data rather than code, so adding a new bundle never requires a new Go
// type.
var PredefinedMappings = map[string]Mapper{
	"typescript-analysis": {
		Labels: map[string]string{
			"imports":   "ts-import-sources",
			"exports":   "ts-export-declarations",
			"classes":   "ts-class-definitions",
			"functions": "ts-function-definitions",
			"types":     "ts-type-definitions",
		},
	},
	"class-analysis": {
		Labels: map[string]string{
			"classes":    "ts-class-definitions",
			"interfaces": "ts-interface-definitions",
			"methods":    "ts-method-definitions",
			"properties": "ts-property-definitions",
			"extends":    "ts-extends-clause",
			"implements": "ts-implements-clause",
		},
	},
}
