package resolve

// builtinModules lists stdlib-known specifiers per language, classified as
// Builtin regardless of file-existence probing (spec §4.7 table row 1).
var builtinModules = map[string]map[string]bool{
	"node": setOf(
		"fs", "node:fs", "path", "node:path", "os", "node:os", "http", "node:http",
		"https", "node:https", "url", "node:url", "util", "node:util", "events",
		"node:events", "stream", "node:stream", "crypto", "node:crypto", "child_process",
		"node:child_process", "assert", "node:assert", "buffer", "node:buffer",
		"process", "node:process", "net", "node:net", "fs/promises", "node:fs/promises",
	),
	"python": setOf(
		"os", "sys", "pathlib", "typing", "re", "json", "math", "itertools",
		"functools", "collections", "datetime", "subprocess", "asyncio", "logging",
		"io", "abc", "dataclasses", "enum", "unittest", "threading",
	),
	"go": setOf(
		"fmt", "os", "io", "strings", "strconv", "errors", "context", "sync",
		"time", "net", "net/http", "encoding/json", "bytes", "bufio", "log",
		"sort", "math", "path", "path/filepath", "reflect", "regexp", "testing",
	),
	"java": setOf(
		"java.lang", "java.util", "java.io", "java.nio", "java.net", "java.time",
		"java.math", "java.text", "java.sql", "javax.annotation",
	),
}

func setOf(items ...string) map[string]bool {
	m := make(map[string]bool, len(items))
	for _, i := range items {
		m[i] = true
	}
	return m
}

// IsBuiltin reports whether specifier is a known standard-library module
// for languageFamily ("node" covers javascript/typescript/jsx/tsx). Java
// specifiers are matched by package prefix since `java.util.List` should
// classify the same as `java.util`.
func IsBuiltin(languageFamily, specifier string) bool {
	table, ok := builtinModules[languageFamily]
	if !ok {
		return false
	}
	if table[specifier] {
		return true
	}
	if languageFamily == "java" {
		for prefix := range table {
			if len(specifier) > len(prefix) && specifier[:len(prefix)+1] == prefix+"." {
				return true
			}
		}
	}
	return false
}

// LanguageFamily maps a tsquery-style language string to the builtin-table
// key used above.
func LanguageFamily(language string) string {
	switch language {
	case "typescript", "tsx", "javascript", "jsx":
		return "node"
	case "python":
		return "python"
	case "go":
		return "go"
	case "java":
		return "java"
	default:
		return ""
	}
}
