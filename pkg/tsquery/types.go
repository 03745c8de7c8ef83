package tsquery

import (
	ts "github.com/tree-sitter/go-tree-sitter"

	"github.com/kestrel-dev/srcmap/pkg/model"
)

// Capture is a single named node captured by a query pattern (spec §3
// "Capture"). Captures are transient: the Node field borrows the tree and
// must not be used after the tree is closed.
type Capture struct {
	Name     string // full capture name, e.g. "function.name"
	Category string // part before the first ".", e.g. "function"
	Field    string // part after the first ".", e.g. "name" (empty if no dot)
	Node     *ts.Node
	Text     string
	Location model.Location
}

// Match is one pattern firing at one site in the tree (spec §3 "Query
// match").
type Match struct {
	PatternIndex uint32
	Captures     []Capture
}

// parseCaptureName splits "function.name" into ("function", "name"). A
// name with no dot returns (name, "").
func parseCaptureName(name string) (category, field string) {
	for i := 0; i < len(name); i++ {
		if name[i] == '.' {
			return name[:i], name[i+1:]
		}
	}
	return name, ""
}

// nodeLocation converts a tree-sitter node's 0-based coordinates to the
// model's 1-based line / 0-based column convention (spec §3).
func nodeLocation(node *ts.Node) model.Location {
	start := node.StartPosition()
	end := node.EndPosition()
	return model.Location{
		Line:      int(start.Row) + 1,
		Column:    int(start.Column),
		EndLine:   int(end.Row) + 1,
		EndColumn: int(end.Column),
		ByteStart: int(node.StartByte()),
		ByteEnd:   int(node.EndByte()),
	}
}
