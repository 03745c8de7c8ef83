package model

// NodeKind classifies a dependency graph node, per spec §3.
type NodeKind string

const (
	NodeKindInternal NodeKind = "Internal"
	NodeKindExternal NodeKind = "External"
	NodeKindBuiltin  NodeKind = "Builtin"
	NodeKindMissing  NodeKind = "Missing"
)

// Node is a file (or the "<package>"/"<builtin>" sentinel) in the
// dependency graph, keyed by canonical id (its absolute path, or the
// sentinel string for non-project nodes).
type Node struct {
	ID       string
	FilePath string
	Language string
	Kind     NodeKind
	Exists   bool
}

// GraphEdgeKind classifies a dependency graph edge, per spec §3.
type GraphEdgeKind string

const (
	GraphEdgeKindImport  GraphEdgeKind = "Import"
	GraphEdgeKindExport  GraphEdgeKind = "Export"
	GraphEdgeKindDynamic GraphEdgeKind = "Dynamic"
)

// Edge is a directed reference between two graph nodes. Multi-edges between
// the same pair of nodes are permitted when they originate at distinct
// source lines.
type Edge struct {
	From       string
	To         string
	Kind       GraphEdgeKind
	Specifier  string
	Line       int
}

// UnresolvedSpecifier names an import that resolved to a Missing node.
type UnresolvedSpecifier struct {
	From       string
	Specifier  string
}

// GraphMetadata carries run-level facts about the graph that are not
// properties of any single node or edge.
type GraphMetadata struct {
	AnalyzedFileCount    int
	UnresolvedSpecifiers []UnresolvedSpecifier
	Cycles               [][]string // SCC-derived; each cycle >= 2 nodes, recorded once up to rotation
}

// Graph is the assembled, multi-file dependency graph. Nodes and edges are
// keyed/ordered by canonical id so two builds over identical filesystem
// state produce node-set- and edge-set-equal graphs (spec §4.8, P3).
type Graph struct {
	Nodes    map[string]*Node
	Edges    map[string][]Edge // outgoing edges, keyed by from-node id, insertion-order stable
	nodeIDs  []string          // insertion order, for deterministic enumeration
	Metadata GraphMetadata
}

// NewGraph returns an empty graph ready for incremental assembly.
func NewGraph() *Graph {
	return &Graph{
		Nodes: make(map[string]*Node),
		Edges: make(map[string][]Edge),
	}
}

// AddNode inserts a node if absent and returns the stored node (so repeat
// calls for the same id are idempotent and preserve first-write metadata).
func (g *Graph) AddNode(n Node) *Node {
	if existing, ok := g.Nodes[n.ID]; ok {
		return existing
	}
	stored := n
	g.Nodes[n.ID] = &stored
	g.nodeIDs = append(g.nodeIDs, n.ID)
	return &stored
}

// AddEdge appends an edge to the from-node's outgoing list, preserving
// insertion order. Multi-edges (distinct lines) are permitted.
func (g *Graph) AddEdge(e Edge) {
	g.Edges[e.From] = append(g.Edges[e.From], e)
}

// NodeIDs returns node ids in insertion order.
func (g *Graph) NodeIDs() []string {
	out := make([]string, len(g.nodeIDs))
	copy(out, g.nodeIDs)
	return out
}

// OutEdges returns the outgoing edges for a node id, in insertion order.
func (g *Graph) OutEdges(id string) []Edge {
	return g.Edges[id]
}
