package model

import "strings"

// SymbolKind identifies the declaration shape of a Symbol. The set covers
// every language this module understands, including the Markdown-only
// kinds (Heading, Section, Paragraph, Tag).
type SymbolKind string

const (
	SymbolKindClass     SymbolKind = "Class"
	SymbolKindInterface SymbolKind = "Interface"
	SymbolKindFunction  SymbolKind = "Function"
	SymbolKindMethod    SymbolKind = "Method"
	SymbolKindProperty  SymbolKind = "Property"
	SymbolKindVariable  SymbolKind = "Variable"
	SymbolKindType      SymbolKind = "Type"
	SymbolKindEnum      SymbolKind = "Enum"
	SymbolKindNamespace SymbolKind = "Namespace"
	SymbolKindHeading   SymbolKind = "Heading"
	SymbolKindSection   SymbolKind = "Section"
	SymbolKindParagraph SymbolKind = "Paragraph"
	SymbolKindTag       SymbolKind = "Tag"
)

// Symbol is a declaration site in a file, per spec §3.
type Symbol struct {
	Kind       SymbolKind
	Name       string
	NamePath   string // slash-separated: Parent/Child/Leaf, unique within a file
	FilePath   string
	Location   Location
	Language   string
	Parent     string // namePath of the enclosing symbol, or "" for top-level
	Parameters []Parameter
	ReturnType string
	TypeParams []string
	Signature  string
	Text       string
}

// Parameter is one entry of a function/method parameter list.
type Parameter struct {
	Name    string
	Type    string
	Default string
}

// BuildNamePath joins an enclosing namePath (possibly empty) with a leaf
// name, maintaining the "/" convention from spec §3.
func BuildNamePath(parentNamePath, name string) string {
	if parentNamePath == "" {
		return name
	}
	return parentNamePath + "/" + name
}

// ValidateNamePath checks invariant I2: the last path segment of NamePath
// equals Name, and if Parent is set it must be a prefix of NamePath.
func (s Symbol) ValidateNamePath() bool {
	segs := strings.Split(s.NamePath, "/")
	if len(segs) == 0 || segs[len(segs)-1] != s.Name {
		return false
	}
	if s.Parent != "" && !strings.HasPrefix(s.NamePath, s.Parent+"/") {
		return false
	}
	return true
}
