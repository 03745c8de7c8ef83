package tsparse

import (
	"fmt"
	"log/slog"
	"sync"
	"unsafe"

	ts "github.com/tree-sitter/go-tree-sitter"
	ts_go "github.com/tree-sitter/tree-sitter-go/bindings/go"
	ts_java "github.com/tree-sitter/tree-sitter-java/bindings/go"
	ts_javascript "github.com/tree-sitter/tree-sitter-javascript/bindings/go"
	ts_python "github.com/tree-sitter/tree-sitter-python/bindings/go"
	ts_typescript "github.com/tree-sitter/tree-sitter-typescript/bindings/go"

	"github.com/kestrel-dev/srcmap/pkg/util"
)

// poolKey uniquely identifies a parser pool. Pools are keyed by Language
// alone; TSX is its own Language value and so gets its own pool.
type poolKey struct {
	lang Language
}

// ParserManager manages tree-sitter parsers for every supported language
// with lazy initialization and thread-safe concurrent access.
//
// Memory Management:
//   - Parser pools are created lazily on first use per language
//   - ParserManager owns parser pool instances and must be closed via Close()
//   - Callers own Tree instances and must call tree.Close() after use
//
// Thread Safety:
//   - Parser pools allow true concurrent parsing per language
//   - Pool creation is synchronized with write locks
type ParserManager struct {
	pools  map[poolKey]*parserPool
	mutex  sync.RWMutex
	logger *slog.Logger

	stats struct {
		parsersCreated int
		parsesCalled   int
	}
}

// NewParserManager creates a new ParserManager. The returned manager must
// be closed via Close() to free resources.
func NewParserManager(logger *slog.Logger) *ParserManager {
	if logger == nil {
		logger = util.NewLogger(util.DefaultLoggerConfig())
	}
	return &ParserManager{
		pools:  make(map[poolKey]*parserPool),
		logger: logger,
	}
}

// Parse parses source code using the specified language grammar. Returns a
// Tree that MUST be closed by the caller via tree.Close().
func (pm *ParserManager) Parse(source []byte, lang Language) (*ts.Tree, error) {
	if lang == LanguageUnknown {
		return nil, fmt.Errorf("tsparse: cannot parse unknown language")
	}

	pm.mutex.Lock()
	pm.stats.parsesCalled++
	pm.mutex.Unlock()

	pool, err := pm.getOrCreatePool(lang)
	if err != nil {
		return nil, fmt.Errorf("tsparse: failed to get pool for %s: %w", lang, err)
	}

	parser, err := pool.acquire()
	if err != nil {
		return nil, fmt.Errorf("tsparse: failed to acquire parser: %w", err)
	}
	tree := parser.Parse(source, nil)
	pool.release(parser)

	if tree == nil {
		return nil, fmt.Errorf("tsparse: parser.Parse returned nil tree")
	}

	if tree.RootNode().HasError() {
		pm.logger.Warn("parse tree contains errors", "language", lang.String())
	}

	return tree, nil
}

// ParseFile parses a file by detecting its language from the file path.
// Returns (nil, nil) for an unsupported extension — callers route those to
// the markdown extractor or skip per spec §4.6 step 1.
func (pm *ParserManager) ParseFile(source []byte, filePath string) (*ts.Tree, error) {
	lang := DetectLanguage(filePath)
	if lang == LanguageUnknown {
		return nil, nil
	}
	return pm.Parse(source, lang)
}

// Close releases all parser pool resources. After Close(), the manager
// cannot be used.
func (pm *ParserManager) Close() error {
	pm.mutex.Lock()
	defer pm.mutex.Unlock()

	pm.logger.Info("closing ParserManager",
		"parsers_created", pm.stats.parsersCreated,
		"parses_called", pm.stats.parsesCalled)

	for key, pool := range pm.pools {
		if pool != nil {
			pool.close()
			pm.logger.Debug("closed parser pool", "language", key.lang.String())
		}
	}
	pm.pools = make(map[poolKey]*parserPool)
	return nil
}

func (pm *ParserManager) getOrCreatePool(lang Language) (*parserPool, error) {
	key := poolKey{lang: lang}

	pm.mutex.RLock()
	pool, exists := pm.pools[key]
	pm.mutex.RUnlock()
	if exists {
		return pool, nil
	}

	pm.mutex.Lock()
	defer pm.mutex.Unlock()
	if pool, exists = pm.pools[key]; exists {
		return pool, nil
	}

	langPtr, err := pm.GetLanguagePointer(lang)
	if err != nil {
		return nil, err
	}

	poolSize := getDefaultPoolSize()
	pool = newParserPool(lang, langPtr, poolSize, pm.logger)
	pm.pools[key] = pool

	pm.logger.Debug("created new parser pool", "language", lang.String(), "maxSize", poolSize)
	return pool, nil
}

// GetLanguagePointer returns the unsafe.Pointer to the tree-sitter language
// grammar for lang. Exported so pkg/tsquery can compile queries against the
// same grammar used for parsing, without any string-indexed lookup (this
// resolves Open Question (b): callers get an explicit accessor here and in
// Get, never an internal string-keyed hack).
func (pm *ParserManager) GetLanguagePointer(lang Language) (unsafe.Pointer, error) {
	switch lang {
	case LanguageTypeScript:
		return ts_typescript.LanguageTypescript(), nil
	case LanguageTSX:
		return ts_typescript.LanguageTSX(), nil
	case LanguageJavaScript, LanguageJSX:
		return ts_javascript.Language(), nil
	case LanguageJava:
		return ts_java.Language(), nil
	case LanguagePython:
		return ts_python.Language(), nil
	case LanguageGo:
		return ts_go.Language(), nil
	default:
		return nil, fmt.Errorf("tsparse: unsupported language: %s", lang.String())
	}
}

// Get returns the compiled *ts.Language wrapper for lang. This is the
// explicit accessor that replaces the source's getParser-by-string-indexing
// hack (Open Question (b)).
func (pm *ParserManager) Get(lang Language) (*ts.Language, error) {
	ptr, err := pm.GetLanguagePointer(lang)
	if err != nil {
		return nil, err
	}
	return ts.NewLanguage(ptr), nil
}

// GetStats returns parser usage statistics.
func (pm *ParserManager) GetStats() ParserStats {
	pm.mutex.RLock()
	defer pm.mutex.RUnlock()

	total := 0
	for _, pool := range pm.pools {
		total += pool.getCreatedCount()
	}
	return ParserStats{ParsersCreated: total, ParsesCalled: pm.stats.parsesCalled}
}

// ParserStats contains parser usage statistics.
type ParserStats struct {
	ParsersCreated int
	ParsesCalled   int
}
