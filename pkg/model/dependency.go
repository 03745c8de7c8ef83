package model

// EdgeKind identifies the nature of a symbol-to-symbol reference, per
// spec §3 "Symbol dependency edge".
type EdgeKind string

const (
	EdgeKindCall           EdgeKind = "Call"
	EdgeKindInstantiation  EdgeKind = "Instantiation"
	EdgeKindTypeReference  EdgeKind = "TypeReference"
	EdgeKindExtends        EdgeKind = "Extends"
	EdgeKindImplements     EdgeKind = "Implements"
	EdgeKindMemberAccess   EdgeKind = "MemberAccess"
)

// SymbolDependencyEdge is a reference from a symbol (or, for file-scoped
// references, a bare file path) to another name path. To may be an
// unresolved local name, conventionally prefixed with "/" (e.g. "/fetch")
// until the graph builder resolves it across files.
type SymbolDependencyEdge struct {
	From     string
	To       string
	Type     EdgeKind
	Location Location
	Context  string
}
