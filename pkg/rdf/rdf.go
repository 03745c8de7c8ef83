// Package rdf derives and parses the stable opaque identifier used by
// search to locate a symbol's file and node kind (spec §3 "RDF
// identifier", §6 "RDF search", Open Question (c)).
//
// An identifier must be a reversible encoding of its four source fields —
// never a hash — because R1 requires Decode(Encode(x)) == x exactly. We
// percent-escape each field, join with "/", and base64url-encode the
// result so the identifier is safe to use as a map key, a URL path
// segment, or a filename.
package rdf

import (
	"encoding/base64"
	"fmt"
	"net/url"
	"strings"

	"github.com/kestrel-dev/srcmap/pkg/model"
)

// ID is an opaque, reversible identifier for a symbol within a project.
type ID string

const fieldCount = 4

// Encode derives a stable identifier from the four fields that uniquely
// locate a symbol. filePath is normalized to project-relative before
// encoding (Open Question (c)): a leading "/" is stripped; the path is not
// otherwise rewritten against any project root.
func Encode(projectName, filePath, nodeType, symbolName string) ID {
	filePath = normalizeFilePath(filePath)
	fields := []string{projectName, filePath, nodeType, symbolName}
	escaped := make([]string, fieldCount)
	for i, f := range fields {
		escaped[i] = url.PathEscape(f)
	}
	raw := strings.Join(escaped, "/")
	return ID(base64.RawURLEncoding.EncodeToString([]byte(raw)))
}

// Decode recovers the four fields that produced id. It returns an error if
// id is not a validly-encoded RDF identifier (Open Question (c): the
// caller may pass an absolute-looking identifier whose inner filePath is
// actually project-relative; Decode never errors on that, since it only
// unpacks what Encode packed).
func Decode(id ID) (projectName, filePath, nodeType, symbolName string, err error) {
	raw, err := base64.RawURLEncoding.DecodeString(string(id))
	if err != nil {
		return "", "", "", "", fmt.Errorf("rdf: invalid identifier encoding: %w", err)
	}
	parts := strings.Split(string(raw), "/")
	if len(parts) != fieldCount {
		return "", "", "", "", fmt.Errorf("rdf: identifier has %d fields, want %d", len(parts), fieldCount)
	}
	unescaped := make([]string, fieldCount)
	for i, p := range parts {
		u, uerr := url.PathUnescape(p)
		if uerr != nil {
			return "", "", "", "", fmt.Errorf("rdf: invalid field encoding: %w", uerr)
		}
		unescaped[i] = u
	}
	return unescaped[0], unescaped[1], unescaped[2], unescaped[3], nil
}

// normalizeFilePath strips a leading "/" so that an identifier built from
// an absolute-looking path and one built from the equivalent
// project-relative path encode identically.
func normalizeFilePath(filePath string) string {
	return strings.TrimPrefix(filePath, "/")
}

// Index maps an RDF identifier to the Location of the symbol it names. It
// is rebuilt whenever the symbol table it was derived from changes; the
// package holds no index of its own (spec §5: derived state, not a store).
type Index map[ID]model.Location

// BuildIndex derives an Index from a project's symbol table, keying each
// entry with the identifier Encode would produce for that symbol, so a
// later Search(index, rdfOf(symbol)) resolves back to the same location
// (R2).
func BuildIndex(projectName string, symbols []model.Symbol) Index {
	idx := make(Index, len(symbols))
	for _, s := range symbols {
		idx[Encode(projectName, s.FilePath, string(s.Kind), s.NamePath)] = s.Location
	}
	return idx
}

// Search resolves id to the Location of the symbol it names within index,
// the "RDF search" path named by spec §6: rdf-of(symbol) -> search ->
// location (R2). The bool result is false when id has no entry in index
// (search-miss, not a decode error — id need not even be well-formed).
func Search(index Index, id ID) (model.Location, bool) {
	loc, ok := index[id]
	return loc, ok
}
