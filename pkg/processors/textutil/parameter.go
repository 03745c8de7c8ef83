package textutil

import (
	"strings"

	"github.com/kestrel-dev/srcmap/pkg/model"
)

// ParseParameterList splits a raw formal-parameter-list node's text (e.g.
// "(id: string, opts?: Options = {})") into individual model.Parameter
// values. Each entry is parsed best-effort by ParseParameter; the split
// itself backs off to a single raw entry on unbalanced brackets.
func ParseParameterList(raw string) []model.Parameter {
	inner := StripOuter(strings.TrimSpace(raw), '(', ')')
	if inner == "" {
		return nil
	}

	fields := SplitTopLevel(inner, ',')
	params := make([]model.Parameter, 0, len(fields))
	for _, f := range fields {
		params = append(params, ParseParameter(f))
	}
	return params
}

// ParseParameter parses a single parameter entry in either TypeScript/Java
// style ("name: Type = default", "Type name") or Python style
// ("name: Type = default", "name=default"). It recognizes a colon as the
// name/type separator and an equals sign as the default-value separator,
// wherever each occurs at bracket depth 0; anything it can't confidently
// split is kept as the Name, raw.
func ParseParameter(raw string) model.Parameter {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return model.Parameter{}
	}

	nameAndType, def, hasDefault := cutTopLevel(raw, '=')
	name, typ, hasColon := cutTopLevel(strings.TrimSpace(nameAndType), ':')

	param := model.Parameter{}
	if hasDefault {
		param.Default = strings.TrimSpace(def)
	}

	if hasColon {
		param.Name = strings.TrimSpace(strings.TrimSuffix(name, "?"))
		param.Type = strings.TrimSpace(typ)
		return param
	}

	// Java style: "Type name" — last whitespace-separated token is the
	// name when there's no colon and the text contains a space.
	trimmed := strings.TrimSpace(nameAndType)
	if idx := lastSpace(trimmed); idx >= 0 {
		param.Type = strings.TrimSpace(trimmed[:idx])
		param.Name = strings.TrimSpace(trimmed[idx+1:])
		return param
	}

	param.Name = strings.TrimSuffix(trimmed, "?")
	return param
}

func lastSpace(s string) int {
	for i := len(s) - 1; i >= 0; i-- {
		if s[i] == ' ' {
			return i
		}
	}
	return -1
}

// cutTopLevel splits s at the first occurrence of sep found at bracket
// depth 0, outside quotes. Returns (before, after, true) if found, else
// (s, "", false).
func cutTopLevel(s string, sep byte) (string, string, bool) {
	var depth int
	var inSingle, inDouble bool
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case inSingle:
			if c == '\'' {
				inSingle = false
			}
			continue
		case inDouble:
			if c == '"' {
				inDouble = false
			}
			continue
		}
		switch c {
		case '\'':
			inSingle = true
		case '"':
			inDouble = true
		case '(', '[', '{', '<':
			depth++
		case ')', ']', '}', '>':
			depth--
		case sep:
			if depth == 0 {
				return s[:i], s[i+1:], true
			}
		}
	}
	return s, "", false
}

// ExtractDecorators pulls leading `@decorator` / `@decorator(...)` tokens
// off the text preceding a declaration (Python/TypeScript decorator
// syntax). Best-effort: stops at the first line that isn't a decorator.
func ExtractDecorators(precedingText string) []string {
	var decorators []string
	lines := strings.Split(strings.TrimSpace(precedingText), "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		line := strings.TrimSpace(lines[i])
		if line == "" {
			continue
		}
		if !strings.HasPrefix(line, "@") {
			break
		}
		decorators = append([]string{line}, decorators...)
	}
	return decorators
}
