package querytext

// JS mirrors the TypeScript query family without the type-only constructs
// (no type imports, interfaces, type aliases, or implements clauses) and
// using JavaScript's untyped node shapes (identifier instead of
// type_identifier for class names, no type_annotation nodes).

// JSImportSources captures the module specifier of every import statement.
const JSImportSources = `
(import_statement
  source: (string (string_fragment) @source.text)
) @source.definition
`

// JSNamedImports captures named import bindings and their optional aliases.
const JSNamedImports = `
(import_specifier
  name: (identifier) @import.named
) @import.definition

(import_specifier
  name: (identifier) @import.named
  alias: (identifier) @import.alias
) @import.definition
`

// JSDefaultImports captures default and namespace import bindings.
const JSDefaultImports = `
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

// JSExportDeclarations captures named declaration exports and re-exports.
const JSExportDeclarations = `
(export_statement
  declaration: (function_declaration
    name: (identifier) @export.name
  ) @export.declaration
)

(export_statement
  declaration: (class_declaration
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

// JSExportAssignments captures default exports.
const JSExportAssignments = `
(export_statement
  value: (identifier) @export.default.name
) @export.default.definition

(export_statement
  value: (function_expression) @export.default.value
) @export.default.definition

(export_statement
  value: (class) @export.default.value
) @export.default.definition
`

// JSClassDefinitions captures class declarations.
const JSClassDefinitions = `
(class_declaration
  name: (identifier) @class.name
  body: (class_body) @class.body
) @class.definition
`

// JSFunctionDefinitions captures function declarations, expressions, and
// generators.
const JSFunctionDefinitions = `
(function_declaration
  name: (identifier) @function.name
  parameters: (formal_parameters) @function.parameters
) @function.definition

(generator_function_declaration
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

// JSMethodDefinitions captures method definitions inside class bodies.
const JSMethodDefinitions = `
(class_declaration
  name: (identifier) @class.name
  body: (class_body
    (method_definition
      name: (property_identifier) @method.name
      parameters: (formal_parameters) @method.parameters
    ) @method.definition
  )
)
`

// JSVariableDefinitions captures top-level variable declarators.
const JSVariableDefinitions = `
(lexical_declaration
  (variable_declarator
    name: (identifier) @variable.name
  ) @variable.definition
)
`

// JSArrowFunctionDefinitions captures arrow functions bound to a variable
// name.
const JSArrowFunctionDefinitions = `
(variable_declarator
  name: (identifier) @function.name
  value: (arrow_function
    parameters: (formal_parameters)? @function.parameters
  )
) @function.definition
`

// JSPropertyDefinitions captures class field (property) definitions.
const JSPropertyDefinitions = `
(class_body
  (public_field_definition
    name: (property_identifier) @property.name
  ) @property.definition
)
`

// JSCallExpressions captures call-expression dependency edges.
const JSCallExpressions = `
(call_expression
  function: (identifier) @call.callee
) @call.definition

(call_expression
  function: (member_expression
    property: (property_identifier) @call.callee
  )
) @call.definition
`

// JSNewExpressions captures constructor invocation dependency edges.
const JSNewExpressions = `
(new_expression
  constructor: (identifier) @new.callee
) @new.definition
`

// JSMemberExpressions captures member access dependency edges.
const JSMemberExpressions = `
(member_expression
  object: (identifier) @member.object
  property: (property_identifier) @member.property
) @member.definition
`

// JSExtendsClause captures class inheritance edges.
const JSExtendsClause = `
(class_heritage
  (extends_clause
    value: (identifier) @extends.target
  )
) @extends.definition
`
