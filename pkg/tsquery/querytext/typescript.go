// Package querytext holds the raw tree-sitter s-expression query text for
// every supported language. Every pattern here uses capture-style bindings
// uniformly (never whole-node-only captures) so a single downstream
// processor can read named fields off each match without special-casing
// which variant fired — the corpus this was modeled on mixed both styles
// for the same key across files, which this package deliberately does not
// repeat.
package querytext

// TSImportSources captures the module specifier of every import statement.
const TSImportSources = `
(import_statement
  source: (string (string_fragment) @source.text)
) @source.definition
`

// TSNamedImports captures named import bindings and their optional aliases.
const TSNamedImports = `
(import_specifier
  name: (identifier) @import.named
) @import.definition

(import_specifier
  name: (identifier) @import.named
  alias: (identifier) @import.alias
) @import.definition
`

// TSDefaultImports captures default and namespace import bindings.
const TSDefaultImports = `
(import_statement
  (import_clause
    (identifier) @import.default
  )
) @import.definition

(import_statement
  (import_clause
    (namespace_import
      (identifier) @import.namespace
    )
  )
) @import.definition
`

// TSTypeImports captures TypeScript type-only imports, whole-statement and
// per-specifier.
const TSTypeImports = `
(import_statement
  "type" @import.type.marker
  source: (string (string_fragment) @import.type.source)
) @import.type.definition

(import_specifier
  "type" @import.type.specifier.marker
  name: (identifier) @import.type.specifier.name
) @import.type.definition

(import_specifier
  "type"
  name: (identifier) @import.type.specifier.name
  alias: (identifier) @import.type.specifier.alias
) @import.type.definition
`

// TSExportDeclarations captures named declaration exports and re-exports.
const TSExportDeclarations = `
(export_statement
  declaration: (function_declaration
    name: (identifier) @export.name
  ) @export.declaration
)

(export_statement
  declaration: (class_declaration
    name: (type_identifier) @export.name
  ) @export.declaration
)

(export_statement
  declaration: (interface_declaration
    name: (type_identifier) @export.name
  ) @export.declaration
)

(export_statement
  declaration: (type_alias_declaration
    name: (type_identifier) @export.name
  ) @export.declaration
)

(export_statement
  declaration: (enum_declaration
    name: (identifier) @export.name
  ) @export.declaration
)

(export_statement
  declaration: (lexical_declaration
    (variable_declarator
      name: (identifier) @export.name
    )
  ) @export.declaration
)

(export_statement
  (export_clause
    (export_specifier
      name: (identifier) @export.reexport.name
    )
  )
  source: (string (string_fragment) @export.reexport.source)
) @export.reexport.definition

(export_statement
  !declaration
  !(export_clause)
  source: (string (string_fragment) @export.reexport.source)
) @export.reexport.definition
`

// TSExportAssignments captures default exports, including `export default`
// with an identifier, an inline function, or an inline class.
const TSExportAssignments = `
(export_statement
  value: (identifier) @export.default.name
) @export.default.definition

(export_statement
  value: (function_expression) @export.default.value
) @export.default.definition

(export_statement
  value: (class) @export.default.value
) @export.default.definition

(export_statement
  "=" @export.assignment.marker
  (identifier) @export.assignment.name
) @export.assignment.definition
`

// TSClassDefinitions captures class declarations and their heritage clauses.
const TSClassDefinitions = `
(class_declaration
  name: (type_identifier) @class.name
  body: (class_body) @class.body
) @class.definition
`

// TSInterfaceDefinitions captures interface declarations.
const TSInterfaceDefinitions = `
(interface_declaration
  name: (type_identifier) @interface.name
  body: (interface_body) @interface.body
) @interface.definition
`

// TSFunctionDefinitions captures top-level function declarations, including
// generators and async variants (both share the function_declaration node
// shape; async/generator markers are recovered from node text downstream).
const TSFunctionDefinitions = `
(function_declaration
  name: (identifier) @function.name
  parameters: (formal_parameters) @function.parameters
) @function.definition

(variable_declarator
  name: (identifier) @function.name
  value: (function_expression
    parameters: (formal_parameters) @function.parameters
  )
) @function.definition
`

// TSMethodDefinitions captures method definitions inside class bodies.
const TSMethodDefinitions = `
(class_declaration
  name: (type_identifier) @class.name
  body: (class_body
    (method_definition
      name: (property_identifier) @method.name
      parameters: (formal_parameters) @method.parameters
      return_type: (type_annotation)? @method.returnType
    ) @method.definition
  )
)
`

// TSTypeDefinitions captures type alias declarations.
const TSTypeDefinitions = `
(type_alias_declaration
  name: (type_identifier) @type.name
  value: (_) @type.value
) @type.definition
`

// TSEnumDefinitions captures enum declarations.
const TSEnumDefinitions = `
(enum_declaration
  name: (identifier) @enum.name
) @enum.definition
`

// TSVariableDefinitions captures top-level (non-arrow-function) variable
// declarators.
const TSVariableDefinitions = `
(lexical_declaration
  (variable_declarator
    name: (identifier) @variable.name
    type: (type_annotation)? @variable.type
  ) @variable.definition
)
`

// TSArrowFunctionDefinitions captures arrow functions bound to a variable
// name, tracked separately from plain variable declarations since they
// participate in the symbol graph as callables.
const TSArrowFunctionDefinitions = `
(variable_declarator
  name: (identifier) @function.name
  value: (arrow_function
    parameters: (formal_parameters)? @function.parameters
  )
) @function.definition
`

// TSPropertyDefinitions captures class field (property) definitions.
const TSPropertyDefinitions = `
(class_body
  (public_field_definition
    name: (property_identifier) @property.name
    type: (type_annotation)? @property.type
  ) @property.definition
)
`

// TSCallExpressions captures call-expression dependency edges.
const TSCallExpressions = `
(call_expression
  function: (identifier) @call.callee
) @call.definition

(call_expression
  function: (member_expression
    property: (property_identifier) @call.callee
  )
) @call.definition
`

// TSNewExpressions captures constructor invocation dependency edges.
const TSNewExpressions = `
(new_expression
  constructor: (identifier) @new.callee
) @new.definition
`

// TSMemberExpressions captures member access dependency edges.
const TSMemberExpressions = `
(member_expression
  object: (identifier) @member.object
  property: (property_identifier) @member.property
) @member.definition
`

// TSTypeReferences captures named type usages (parameter types, return
// types, and other annotation positions resolve to this node shape).
const TSTypeReferences = `
(type_annotation
  (type_identifier) @typeref.name
) @typeref.definition

(type_annotation
  (generic_type
    name: (type_identifier) @typeref.name
  )
) @typeref.definition
`

// TSExtendsClause captures class inheritance edges.
const TSExtendsClause = `
(class_heritage
  (extends_clause
    value: (identifier) @extends.target
  )
) @extends.definition
`

// TSImplementsClause captures interface implementation edges.
const TSImplementsClause = `
(class_heritage
  (implements_clause
    (type_identifier) @implements.target
  )
) @implements.definition
`
