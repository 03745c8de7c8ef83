// Package common holds capture-lookup helpers shared by every
// per-language processor package, so each one reads as "find these
// fields, build this result" rather than re-deriving the same capture
// bookkeeping per language.
package common

import (
	"strings"

	"github.com/kestrel-dev/srcmap/pkg/model"
	"github.com/kestrel-dev/srcmap/pkg/tsquery"
)

// ByField returns the first capture in m whose Field matches field
// (e.g. "name", "parameters", "returnType").
func ByField(m tsquery.Match, field string) (tsquery.Capture, bool) {
	for _, c := range m.Captures {
		if c.Field == field {
			return c, true
		}
	}
	return tsquery.Capture{}, false
}

// ByName returns the first capture in m with the exact full capture name
// (e.g. "export.reexport.source").
func ByName(m tsquery.Match, name string) (tsquery.Capture, bool) {
	for _, c := range m.Captures {
		if c.Name == name {
			return c, true
		}
	}
	return tsquery.Capture{}, false
}

// AllByName returns every capture in m with the exact full capture name,
// for patterns where a repeated node (e.g. each interface in an
// implements clause, each base class in a superclass list) can match more
// than once per site.
func AllByName(m tsquery.Match, name string) []tsquery.Capture {
	var out []tsquery.Capture
	for _, c := range m.Captures {
		if c.Name == name {
			out = append(out, c)
		}
	}
	return out
}

// HasName reports whether m contains a capture with the exact name.
func HasName(m tsquery.Match, name string) bool {
	_, ok := ByName(m, name)
	return ok
}

// DefinitionLocation returns the location of the capture with the ".definition"
// suffix if present (the whole declaration node), falling back to the
// match's first capture. This follows the teacher's convention of deriving
// a symbol's location from its full declaration node, not just its name
// identifier.
func DefinitionLocation(m tsquery.Match) model.Location {
	for _, c := range m.Captures {
		if strings.HasSuffix(c.Name, ".definition") {
			return c.Location
		}
	}
	if len(m.Captures) > 0 {
		return m.Captures[0].Location
	}
	return model.Location{}
}

// NodeText returns the text of the capture with the ".definition" suffix,
// or the first capture's text.
func NodeText(m tsquery.Match) string {
	for _, c := range m.Captures {
		if strings.HasSuffix(c.Name, ".definition") {
			return c.Text
		}
	}
	if len(m.Captures) > 0 {
		return m.Captures[0].Text
	}
	return ""
}

// IsRelativeSpecifier reports whether a module specifier is a relative
// (`.`/`..`) import path, as opposed to an absolute, aliased, or bare
// package specifier.
func IsRelativeSpecifier(source string) bool {
	return strings.HasPrefix(source, "./") || strings.HasPrefix(source, "../") ||
		source == "." || source == ".."
}
