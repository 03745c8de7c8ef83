// Package model holds the data types shared across the query pipeline: source
// locations, symbols, dependency edges, and the dependency graph itself.
//
// Types here are plain data. They carry no tree-sitter handles and no
// references to parser state, so they can outlive the pass that produced
// them (spec §3 "Lifecycles").
package model

// Location is a source position. Lines are 1-based, columns 0-based, per
// spec §3. Offsets are filled in eagerly by producers that already hold the
// byte range (tree-sitter nodes expose it for free); callers that only have
// (line, column) may leave ByteStart/ByteEnd at zero and compute them
// lazily from the source text via ComputeOffsets.
type Location struct {
	Line      int `json:"line"`
	Column    int `json:"column"`
	EndLine   int `json:"endLine"`
	EndColumn int `json:"endColumn"`
	ByteStart int `json:"byteOffset"`
	ByteEnd   int `json:"endOffset"`
}

// Valid checks the machine-checkable shape invariant from spec P5:
// endOffset >= offset and endLine >= line.
func (l Location) Valid() bool {
	return l.EndLine >= l.Line && l.ByteEnd >= l.ByteStart
}

// ComputeOffsets fills ByteStart/ByteEnd from (line, column) against source,
// for locations built from line/column only (e.g. the markdown extractor,
// which has no tree-sitter byte offsets to read).
func (l Location) ComputeOffsets(source []byte) Location {
	if l.ByteEnd > 0 || l.ByteStart > 0 {
		return l
	}
	l.ByteStart = offsetOf(source, l.Line, l.Column)
	l.ByteEnd = offsetOf(source, l.EndLine, l.EndColumn)
	return l
}

func offsetOf(source []byte, line, column int) int {
	if line < 1 {
		return 0
	}
	curLine := 1
	i := 0
	for i < len(source) && curLine < line {
		if source[i] == '\n' {
			curLine++
		}
		i++
	}
	return i + column
}
