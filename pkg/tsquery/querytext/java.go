package querytext

// JavaImportSources captures the fully-qualified path of every import
// statement, static or not.
const JavaImportSources = `
(import_declaration
  (scoped_identifier) @source.text
) @source.definition

(import_declaration
  (identifier) @source.text
) @source.definition
`

// JavaImportStatements captures whole import declarations, distinguishing
// static imports (static method/field imports) from ordinary type imports.
const JavaImportStatements = `
(import_declaration
  !static
  (scoped_identifier) @import.path
) @import.definition

(import_declaration
  !static
  (identifier) @import.path
) @import.definition
`

// JavaStaticImports captures `import static` declarations.
const JavaStaticImports = `
(import_declaration
  "static" @import.static.marker
  (scoped_identifier) @import.static.path
) @import.static.definition
`

// JavaWildcardImports captures on-demand (`.*`) imports.
const JavaWildcardImports = `
(import_declaration
  (scoped_identifier) @import.wildcard.path
  (asterisk) @import.wildcard.marker
) @import.wildcard.definition
`

// JavaClassDeclarations captures class declarations, including their
// superclass and interface clauses.
const JavaClassDeclarations = `
(class_declaration
  name: (identifier) @class.name
  superclass: (superclass (type_identifier) @class.extends)?
  interfaces: (super_interfaces (type_list (type_identifier) @class.implements))?
  body: (class_body) @class.body
) @class.definition
`

// JavaInterfaceDeclarations captures interface declarations.
const JavaInterfaceDeclarations = `
(interface_declaration
  name: (identifier) @interface.name
  body: (interface_body) @interface.body
) @interface.definition
`

// JavaEnumDeclarations captures enum declarations.
const JavaEnumDeclarations = `
(enum_declaration
  name: (identifier) @enum.name
  body: (enum_body) @enum.body
) @enum.definition
`

// JavaMethodDeclarations captures method declarations inside a class or
// interface body, including their parameter list and return type.
const JavaMethodDeclarations = `
(class_declaration
  name: (identifier) @class.name
  body: (class_body
    (method_declaration
      name: (identifier) @method.name
      parameters: (formal_parameters) @method.parameters
      type: (_) @method.returnType
    ) @method.definition
  )
)

(interface_declaration
  name: (identifier) @interface.name
  body: (interface_body
    (method_declaration
      name: (identifier) @method.name
      parameters: (formal_parameters) @method.parameters
      type: (_) @method.returnType
    ) @method.definition
  )
)
`

// JavaCallExpressions captures method-invocation dependency edges,
// whether called on a receiver or bare (method.name fires either way).
const JavaCallExpressions = `
(method_invocation
  name: (identifier) @call.callee
) @call.definition
`

// JavaNewExpressions captures constructor invocation dependency edges,
// including generic instantiations (`new ArrayList<String>()`).
const JavaNewExpressions = `
(object_creation_expression
  type: (type_identifier) @new.callee
) @new.definition

(object_creation_expression
  type: (generic_type
    (type_identifier) @new.callee
  )
) @new.definition
`

// JavaFieldAccess captures member access dependency edges.
const JavaFieldAccess = `
(field_access
  object: (identifier) @member.object
  field: (identifier) @member.property
) @member.definition
`

// JavaTypeReferences captures named type usages in parameter and local
// variable declarations.
const JavaTypeReferences = `
(formal_parameter
  type: (type_identifier) @typeref.name
) @typeref.definition

(local_variable_declaration
  type: (type_identifier) @typeref.name
) @typeref.definition
`
