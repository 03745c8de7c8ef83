package querytext

// PythonImportSources captures the dotted module path of both plain
// imports and from-imports.
const PythonImportSources = `
(import_statement
  name: (dotted_name) @source.text
) @source.definition

(import_from_statement
  module_name: (dotted_name) @source.text
) @source.definition

(import_from_statement
  module_name: (relative_import) @source.text
) @source.definition
`

// PythonImportStatements captures plain `import x` / `import x.y` forms.
const PythonImportStatements = `
(import_statement
  name: (dotted_name) @import.module
) @import.definition

(import_statement
  name: (aliased_import
    name: (dotted_name) @import.module
    alias: (identifier) @import.alias
  )
) @import.definition
`

// PythonFromImports captures `from module import name[, name...]` forms,
// including relative imports (leading dots) and wildcard imports.
const PythonFromImports = `
(import_from_statement
  module_name: (dotted_name) @from.module
  name: (dotted_name) @from.name
) @from.definition

(import_from_statement
  module_name: (dotted_name) @from.module
  name: (aliased_import
    name: (dotted_name) @from.name
  )
) @from.definition

(import_from_statement
  module_name: (relative_import) @from.module
  name: (dotted_name) @from.name
) @from.definition

(import_from_statement
  module_name: (relative_import) @from.module
  (wildcard_import) @from.wildcard
) @from.definition
`

// PythonImportAs captures the alias half of an aliased from-import
// (`from typing import List as L`).
const PythonImportAs = `
(import_from_statement
  name: (aliased_import
    name: (dotted_name) @importas.name
    alias: (identifier) @importas.alias
  )
) @importas.definition
`

// PythonFunctionDefinitions captures module-level and nested function
// definitions (methods are distinguished downstream by class ancestry,
// mirrored structurally in PythonMethodDefinitions).
const PythonFunctionDefinitions = `
(function_definition
  name: (identifier) @function.name
  parameters: (parameters) @function.parameters
  return_type: (type)? @function.returnType
) @function.definition
`

// PythonClassDefinitions captures class definitions, each base class
// identifier (for Extends edges), and the class body.
const PythonClassDefinitions = `
(class_definition
  name: (identifier) @class.name
  superclasses: (argument_list
    (identifier) @class.base
  )?
  body: (block) @class.body
) @class.definition
`

// PythonMethodDefinitions captures function definitions directly nested in
// a class body.
const PythonMethodDefinitions = `
(class_definition
  name: (identifier) @class.name
  body: (block
    (function_definition
      name: (identifier) @method.name
      parameters: (parameters) @method.parameters
      return_type: (type)? @method.returnType
    ) @method.definition
  )
)
`

// PythonVariableDefinitions captures module- and class-level assignments.
const PythonVariableDefinitions = `
(expression_statement
  (assignment
    left: (identifier) @variable.name
  ) @variable.definition
)
`

// PythonCallExpressions captures call dependency edges, whether the callee
// is a bare name or an attribute access (`obj.method()`); Python has no
// separate constructor syntax, so instantiation is a call like any other.
const PythonCallExpressions = `
(call
  function: (identifier) @call.callee
) @call.definition

(call
  function: (attribute
    attribute: (identifier) @call.callee
  )
) @call.definition
`

// PythonMemberExpressions captures attribute access dependency edges.
const PythonMemberExpressions = `
(attribute
  object: (identifier) @member.object
  attribute: (identifier) @member.property
) @member.definition
`

// PythonTypeReferences captures named type annotations on parameters and
// return types.
const PythonTypeReferences = `
(typed_parameter
  type: (type (identifier) @typeref.name)
) @typeref.definition

(function_definition
  return_type: (type (identifier) @typeref.name)
) @typeref.definition
`
