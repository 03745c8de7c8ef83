package querytext

// Go query keys are not named in the closed key-space list but Go is a
// supported language (closed set S_lang); these mirror the shape of the
// Java/Python families (sources, definitions, dependency edges) against
// Go's grammar so the Go processor has the same query surface the other
// language processors do.

// GoImportSources captures the import path string of every import spec.
const GoImportSources = `
(import_spec
  path: (interpreted_string_literal) @source.text
) @source.definition
`

// GoImportStatements captures import specs including any named local alias
// and the blank `_` form. The dot `.` form has no capture of its own.
const GoImportStatements = `
(import_spec
  name: (package_identifier)? @import.alias
  path: (interpreted_string_literal) @import.path
) @import.definition

(import_spec
  name: (blank_identifier) @import.blank
  path: (interpreted_string_literal) @import.path
) @import.definition
`

// GoFunctionDefinitions captures top-level function declarations (not
// methods, which carry a receiver and are captured separately).
const GoFunctionDefinitions = `
(function_declaration
  name: (identifier) @function.name
  parameters: (parameter_list) @function.parameters
  result: (_)? @function.returnType
) @function.definition
`

// GoMethodDefinitions captures method declarations, keyed by their
// receiver's named type.
const GoMethodDefinitions = `
(method_declaration
  receiver: (parameter_list
    (parameter_declaration
      type: (_) @method.receiverType
    )
  )
  name: (field_identifier) @method.name
  parameters: (parameter_list) @method.parameters
  result: (_)? @method.returnType
) @method.definition
`

// GoStructDefinitions captures struct type declarations.
const GoStructDefinitions = `
(type_declaration
  (type_spec
    name: (type_identifier) @struct.name
    type: (struct_type) @struct.body
  )
) @struct.definition
`

// GoInterfaceDefinitions captures interface type declarations.
const GoInterfaceDefinitions = `
(type_declaration
  (type_spec
    name: (type_identifier) @interface.name
    type: (interface_type) @interface.body
  )
) @interface.definition
`

// GoTypeDefinitions captures non-struct, non-interface type aliases and
// named types (e.g. `type ID string`).
const GoTypeDefinitions = `
(type_declaration
  (type_spec
    name: (type_identifier) @type.name
    type: (_) @type.value
  ) @type.definition
  (#not-match? @type.value "struct_type|interface_type")
)
`

// GoVariableDefinitions captures package- and function-level var/const
// declarations.
const GoVariableDefinitions = `
(var_spec
  name: (identifier) @variable.name
  type: (_)? @variable.type
) @variable.definition

(const_spec
  name: (identifier) @variable.name
) @variable.definition
`

// GoCallExpressions captures call-expression dependency edges.
const GoCallExpressions = `
(call_expression
  function: (identifier) @call.callee
) @call.definition

(call_expression
  function: (selector_expression
    field: (field_identifier) @call.callee
  )
) @call.definition
`
