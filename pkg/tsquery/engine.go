// Package tsquery is the Tree-sitter Query Engine (spec §4.1): it compiles
// and runs s-expression queries against parsed syntax trees and returns
// grouped capture matches. It never throws — compile failures, unknown
// languages, and missing parsers degrade to an empty result plus a logged
// warning, so the rest of the pipeline stays best-effort across languages
// of varying grammar maturity.
package tsquery

import (
	"log/slog"
	"sort"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	ts "github.com/tree-sitter/go-tree-sitter"

	"github.com/kestrel-dev/srcmap/pkg/tsparse"
	"github.com/kestrel-dev/srcmap/pkg/util"
)

// DefaultCompiledQueryCacheSize bounds the number of compiled queries kept
// in memory across all languages. 6 languages x ~20 query keys comfortably
// fits well under this; the bound exists so a caller that registers many
// one-off queries (e.g. ad hoc key-mapper bundles) cannot grow the cache
// without limit.
const DefaultCompiledQueryCacheSize = 512

type queryKey struct {
	lang tsparse.Language
	name string
}

// Engine runs tree-sitter queries against parsed trees, per language.
type Engine struct {
	parserManager *tsparse.ParserManager

	mu           sync.RWMutex
	queryStrings map[queryKey]string
	readyLangs   map[tsparse.Language]bool

	compiled *lru.Cache[queryKey, *ts.Query]
	logger   *slog.Logger
}

// NewEngine creates a query engine backed by pm for grammar/parser access.
func NewEngine(pm *tsparse.ParserManager, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = util.NewLogger(util.DefaultLoggerConfig())
	}
	cache, _ := lru.New[queryKey, *ts.Query](DefaultCompiledQueryCacheSize)
	return &Engine{
		parserManager: pm,
		queryStrings:  make(map[queryKey]string),
		readyLangs:    make(map[tsparse.Language]bool),
		compiled:      cache,
		logger:        logger,
	}
}

// RegisterQuery idempotently upserts a named query string for a language.
// Re-registering the same name with different text invalidates any cached
// compiled query for that key so the next execution recompiles.
func (e *Engine) RegisterQuery(lang tsparse.Language, name, queryString string) {
	key := queryKey{lang: lang, name: name}

	e.mu.Lock()
	defer e.mu.Unlock()

	if existing, ok := e.queryStrings[key]; ok && existing == queryString {
		return
	}
	e.queryStrings[key] = queryString
	e.compiled.Remove(key)
}

// SetParser records that lang has a usable parser/grammar. Queries for a
// language that was never set up still execute (ExecuteQuery resolves the
// grammar lazily through the ParserManager), but SetParser lets a caller
// probe grammar availability up front. The recorded flag does not affect
// query execution.
func (e *Engine) SetParser(lang tsparse.Language) error {
	if _, err := e.parserManager.GetLanguagePointer(lang); err != nil {
		e.logger.Warn("setParser: no grammar available", "language", lang.String(), "error", err)
		return err
	}
	e.mu.Lock()
	e.readyLangs[lang] = true
	e.mu.Unlock()
	return nil
}

// ExecuteQuery compiles (and caches) queryString for lang and runs it
// against tree's root node, returning matches in source-text order
// (tie-break: pattern index, then capture order within the match — the
// order tree-sitter's cursor already yields them in). On any failure,
// logs a warning and returns nil (an empty match list).
func (e *Engine) ExecuteQuery(name, queryString string, tree *ts.Tree, lang tsparse.Language) []Match {
	if tree == nil {
		e.logger.Warn("executeQuery: nil tree", "query", name, "language", lang.String())
		return nil
	}

	query, err := e.compile(lang, name, queryString)
	if err != nil {
		e.logger.Warn("executeQuery: compile failed", "query", name, "language", lang.String(), "error", err)
		return nil
	}

	return e.run(query, tree)
}

func (e *Engine) compile(lang tsparse.Language, name, queryString string) (*ts.Query, error) {
	key := queryKey{lang: lang, name: name}

	e.mu.Lock()
	if queryString != "" {
		e.queryStrings[key] = queryString
	} else {
		queryString = e.queryStrings[key]
	}
	e.mu.Unlock()

	if cached, ok := e.compiled.Get(key); ok {
		return cached, nil
	}

	tsLang, err := e.parserManager.Get(lang)
	if err != nil {
		return nil, err
	}
	query, qerr := ts.NewQuery(tsLang, queryString)
	if qerr != nil {
		return nil, qerr
	}
	e.compiled.Add(key, query)
	return query, nil
}

func (e *Engine) run(query *ts.Query, tree *ts.Tree) []Match {
	source := tree.Source()

	cursor := ts.NewQueryCursor()
	defer cursor.Close()

	iter := cursor.Matches(query, tree.RootNode(), source)
	captureNames := query.CaptureNames()

	var matches []Match
	for {
		m := iter.Next()
		if m == nil {
			break
		}

		captures := make([]Capture, 0, len(m.Captures))
		for _, c := range m.Captures {
			var name string
			if int(c.Index) < len(captureNames) {
				name = captureNames[c.Index]
			}
			category, field := parseCaptureName(name)
			captures = append(captures, Capture{
				Name:     name,
				Category: category,
				Field:    field,
				Node:     &c.Node,
				Text:     string(c.Node.Utf8Text(source)),
				Location: nodeLocation(&c.Node),
			})
		}

		matches = append(matches, Match{
			PatternIndex: uint32(m.PatternIndex),
			Captures:     captures,
		})
	}

	sortMatches(matches)
	return matches
}

// sortMatches orders matches in source-text order, tie-broken by pattern
// index (spec §4.1 step 3). tree-sitter's QueryCursor already yields
// captures in source order per match; the stable sort here only needs to
// fix up ordering across distinct patterns firing at the same start.
func sortMatches(matches []Match) {
	sort.SliceStable(matches, func(i, j int) bool {
		bi, bj := startByte(matches[i]), startByte(matches[j])
		if bi != bj {
			return bi < bj
		}
		return matches[i].PatternIndex < matches[j].PatternIndex
	})
}

func startByte(m Match) int {
	if len(m.Captures) == 0 {
		return 0
	}
	return m.Captures[0].Location.ByteStart
}

// ExecuteAllQueries runs every query registered for lang against tree,
// returning a map keyed by query name.
func (e *Engine) ExecuteAllQueries(tree *ts.Tree, lang tsparse.Language) map[string][]Match {
	return e.ExecuteSelectedQueries(e.namesFor(lang), tree, lang)
}

// ExecuteSelectedQueries runs only the named queries registered for lang.
// Unregistered names are skipped with a warning rather than aborting the
// rest of the batch.
func (e *Engine) ExecuteSelectedQueries(names []string, tree *ts.Tree, lang tsparse.Language) map[string][]Match {
	results := make(map[string][]Match, len(names))
	for _, name := range names {
		key := queryKey{lang: lang, name: name}
		e.mu.RLock()
		queryString, ok := e.queryStrings[key]
		e.mu.RUnlock()
		if !ok {
			e.logger.Warn("executeSelectedQueries: query not registered", "query", name, "language", lang.String())
			continue
		}
		results[name] = e.ExecuteQuery(name, queryString, tree, lang)
	}
	return results
}

func (e *Engine) namesFor(lang tsparse.Language) []string {
	e.mu.RLock()
	defer e.mu.RUnlock()

	names := make([]string, 0)
	for key := range e.queryStrings {
		if key.lang == lang {
			names = append(names, key.name)
		}
	}
	sort.Strings(names)
	return names
}
