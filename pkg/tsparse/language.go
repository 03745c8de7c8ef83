// Package tsparse manages tree-sitter parsers for every language in the
// closed support set S_lang (spec §6), generalizing the teacher's
// two-language parser manager to typescript, tsx, javascript, jsx, java,
// python, and go. Markdown is deliberately absent here: spec §6 calls for
// a custom, non-tree-sitter extractor (see pkg/processors/markdown).
package tsparse

import (
	"path/filepath"
	"strings"
)

// Language identifies a tree-sitter-backed source language.
type Language int

const (
	LanguageTypeScript Language = iota
	LanguageTSX
	LanguageJavaScript
	LanguageJSX
	LanguageJava
	LanguagePython
	LanguageGo
	LanguageUnknown
)

// String returns the lowercase name used throughout query keys and logs.
func (l Language) String() string {
	switch l {
	case LanguageTypeScript:
		return "typescript"
	case LanguageTSX:
		return "tsx"
	case LanguageJavaScript:
		return "javascript"
	case LanguageJSX:
		return "jsx"
	case LanguageJava:
		return "java"
	case LanguagePython:
		return "python"
	case LanguageGo:
		return "go"
	default:
		return "unknown"
	}
}

// DetectLanguage detects the tree-sitter language from a file path.
// Markdown files and unrecognized extensions return LanguageUnknown; the
// caller is expected to route ".md" to the markdown extractor before
// reaching here (spec §4.6 step 1).
func DetectLanguage(filePath string) Language {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".ts", ".mts", ".cts":
		return LanguageTypeScript
	case ".tsx":
		return LanguageTSX
	case ".js", ".mjs", ".cjs":
		return LanguageJavaScript
	case ".jsx":
		return LanguageJSX
	case ".java":
		return LanguageJava
	case ".py":
		return LanguagePython
	case ".go":
		return LanguageGo
	default:
		return LanguageUnknown
	}
}

// IsTSXFile reports whether filePath should be parsed with the TSX grammar
// variant (TypeScript grammar with JSX enabled).
func IsTSXFile(filePath string) bool {
	return strings.ToLower(filepath.Ext(filePath)) == ".tsx"
}

// ParseLanguageString converts a language name (as used in query keys and
// the S_lang set) to a Language. Returns LanguageUnknown for anything else,
// including "markdown" (handled outside this package).
func ParseLanguageString(lang string) Language {
	switch strings.ToLower(lang) {
	case "typescript", "ts":
		return LanguageTypeScript
	case "tsx":
		return LanguageTSX
	case "javascript", "js":
		return LanguageJavaScript
	case "jsx":
		return LanguageJSX
	case "java":
		return LanguageJava
	case "python", "py":
		return LanguagePython
	case "go", "golang":
		return LanguageGo
	default:
		return LanguageUnknown
	}
}

// SupportedLanguages returns every tree-sitter-backed language this module
// parses. Markdown is intentionally excluded (see package doc).
func SupportedLanguages() []Language {
	return []Language{
		LanguageTypeScript,
		LanguageTSX,
		LanguageJavaScript,
		LanguageJSX,
		LanguageJava,
		LanguagePython,
		LanguageGo,
	}
}
