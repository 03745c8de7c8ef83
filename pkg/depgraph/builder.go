// Package depgraph implements the Dependency Graph Builder (spec §4.8):
// a frontier/visited breadth-first walk over a project's files that
// classifies every import specifier through the Path Resolver and
// assembles a Graph, generalizing the teacher's worker-pool file-indexing
// concurrency model (pkg/indexer/worker_pool.go) from flat symbol
// extraction to graph-shaped traversal.
package depgraph

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/emirpasic/gods/sets/linkedhashset"
	"github.com/google/uuid"

	"github.com/kestrel-dev/srcmap/pkg/graphanalysis"
	"github.com/kestrel-dev/srcmap/pkg/model"
	"github.com/kestrel-dev/srcmap/pkg/resolve"
	"github.com/kestrel-dev/srcmap/pkg/srcread"
	"github.com/kestrel-dev/srcmap/pkg/symbols"
	"github.com/kestrel-dev/srcmap/pkg/tsparse"
	"github.com/kestrel-dev/srcmap/pkg/util"
)

// DefaultMaxDepth bounds how many BFS waves the builder will take from the
// seed set before stopping (spec §4.8, "within maxDepth").
const DefaultMaxDepth = 64

// DefaultFileTimeout is the per-file parse/extract budget (spec §5, "30s").
const DefaultFileTimeout = 30 * time.Second

// Options configures one Build call.
type Options struct {
	Root        string
	Aliases     []resolve.Alias
	Extensions  []string
	MaxDepth    int
	Workers     int
	FileTimeout time.Duration
}

// FileError is a per-file failure recorded in BuildResult.Errors; the run
// continues past it (spec §7 category 1).
type FileError struct {
	FilePath string
	Error    error
}

// BuildResult is everything produced by one Build call.
type BuildResult struct {
	RunID            string
	Graph            *model.Graph
	Analysis         graphanalysis.Report
	ProcessedFiles   int
	ProcessingTimeMs int64
	Errors           []FileError
}

// Builder owns the parsing/extraction machinery a Build walk needs; reuse
// one Builder across runs so parser pools and query caches stay warm.
type Builder struct {
	extractor *symbols.Extractor
}

// NewBuilder wraps a symbol Extractor for use by Build.
func NewBuilder(e *symbols.Extractor) *Builder {
	return &Builder{extractor: e}
}

type waveJob struct {
	filePath string
	depth    int
}

type waveOutcome struct {
	filePath string
	language string
	imports  []model.ImportSourceResult
	err      error
}

// Build walks outward from seeds, classifying every import specifier
// through a Path Resolver rooted at opts.Root, and returns the assembled
// graph plus its structural analysis. Parsing proceeds with bounded
// parallelism; graph mutation is serialized behind one mutex (spec §5,
// "graph state is guarded by a single mutex during build").
func (b *Builder) Build(ctx context.Context, seeds []string, opts Options) (*BuildResult, error) {
	start := time.Now()
	if opts.MaxDepth <= 0 {
		opts.MaxDepth = DefaultMaxDepth
	}
	if opts.Workers <= 0 {
		opts.Workers = util.GetOptimalPoolSize()
	}
	if opts.FileTimeout <= 0 {
		opts.FileTimeout = DefaultFileTimeout
	}

	resolver := resolve.NewResolver(opts.Root, opts.Aliases, opts.Extensions)
	graph := model.NewGraph()

	visited := linkedhashset.New()
	var mu sync.Mutex
	var errs []FileError
	processed := 0

	frontier := make([]waveJob, 0, len(seeds))
	for _, s := range seeds {
		if !visited.Contains(s) {
			visited.Add(s)
			frontier = append(frontier, waveJob{filePath: s, depth: 0})
			seedLang := ""
			if lang := tsparse.DetectLanguage(s); lang != tsparse.LanguageUnknown {
				seedLang = lang.String()
			}
			graph.AddNode(model.Node{ID: s, FilePath: s, Language: seedLang, Kind: model.NodeKindInternal, Exists: true})
		}
	}

	for depth := 0; len(frontier) > 0 && depth <= opts.MaxDepth; depth++ {
		select {
		case <-ctx.Done():
			return b.finish(graph, errs, processed, start), ctx.Err()
		default:
		}

		outcomes := b.processWave(ctx, frontier, opts)

		var next []waveJob
		for _, o := range outcomes {
			processed++
			if o.err != nil {
				mu.Lock()
				errs = append(errs, FileError{FilePath: o.filePath, Error: o.err})
				mu.Unlock()
				continue
			}

			lang := o.language
			for _, imp := range o.imports {
				res := resolver.Resolve(imp.Source, o.filePath, lang)
				targetID, kind, exists := classificationToNode(res)

				mu.Lock()
				graph.AddNode(model.Node{ID: targetID, FilePath: targetID, Language: languageForNode(res, lang), Kind: kind, Exists: exists})
				graph.AddEdge(model.Edge{From: o.filePath, To: targetID, Kind: model.GraphEdgeKindImport, Specifier: imp.Source, Line: imp.Location.Line})
				if kind == model.NodeKindMissing {
					graph.Metadata.UnresolvedSpecifiers = append(graph.Metadata.UnresolvedSpecifiers, model.UnresolvedSpecifier{From: o.filePath, Specifier: imp.Source})
				}
				mu.Unlock()

				if kind == model.NodeKindInternal && exists {
					mu.Lock()
					alreadyVisited := visited.Contains(targetID)
					if !alreadyVisited {
						visited.Add(targetID)
					}
					mu.Unlock()
					if !alreadyVisited {
						next = append(next, waveJob{filePath: targetID, depth: depth + 1})
					}
				}
			}
		}
		frontier = next
	}

	graph.Metadata.AnalyzedFileCount = processed
	report := graphanalysis.Analyze(graph)

	return &BuildResult{
		RunID:            uuid.NewString(),
		Graph:            graph,
		Analysis:         report,
		ProcessedFiles:   processed,
		ProcessingTimeMs: time.Since(start).Milliseconds(),
		Errors:           errs,
	}, nil
}

func (b *Builder) finish(graph *model.Graph, errs []FileError, processed int, start time.Time) *BuildResult {
	graph.Metadata.AnalyzedFileCount = processed
	return &BuildResult{
		Graph:            graph,
		Analysis:         graphanalysis.Analyze(graph),
		ProcessedFiles:   processed,
		ProcessingTimeMs: time.Since(start).Milliseconds(),
		Errors:           errs,
	}
}

// processWave parses and extracts every job in one BFS layer with bounded
// parallelism (opts.Workers concurrent goroutines at a time), returning
// outcomes indexed to match the input jobs regardless of completion order.
func (b *Builder) processWave(ctx context.Context, jobs []waveJob, opts Options) []waveOutcome {
	sem := make(chan struct{}, opts.Workers)
	outcomes := make([]waveOutcome, len(jobs))
	var wg sync.WaitGroup

	for i, job := range jobs {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, job waveJob) {
			defer wg.Done()
			defer func() { <-sem }()
			outcomes[i] = b.processFile(ctx, job, opts)
		}(i, job)
	}
	wg.Wait()
	return outcomes
}

func (b *Builder) processFile(ctx context.Context, job waveJob, opts Options) waveOutcome {
	done := make(chan waveOutcome, 1)
	go func() {
		source, err := srcread.ReadFile(job.filePath, 0)
		if err != nil {
			done <- waveOutcome{filePath: job.filePath, err: err}
			return
		}
		result, err := b.extractor.ExtractFile(job.filePath, source)
		if err != nil {
			done <- waveOutcome{filePath: job.filePath, err: err}
			return
		}
		done <- waveOutcome{filePath: job.filePath, language: result.Language, imports: result.Imports}
	}()

	select {
	case o := <-done:
		return o
	case <-time.After(opts.FileTimeout):
		return waveOutcome{filePath: job.filePath, err: fmt.Errorf("depgraph: timed out extracting %s after %s", job.filePath, opts.FileTimeout)}
	case <-ctx.Done():
		return waveOutcome{filePath: job.filePath, err: ctx.Err()}
	}
}

func classificationToNode(res resolve.Result) (id string, kind model.NodeKind, exists bool) {
	switch res.Classification {
	case resolve.ClassificationBuiltin:
		return res.TargetPath, model.NodeKindBuiltin, true
	case resolve.ClassificationExternal:
		return res.TargetPath, model.NodeKindExternal, true
	default:
		if res.Exists {
			return res.TargetPath, model.NodeKindInternal, true
		}
		return res.TargetPath, model.NodeKindMissing, false
	}
}

func languageForNode(res resolve.Result, fallback string) string {
	if res.Classification == resolve.ClassificationBuiltin || res.Classification == resolve.ClassificationExternal {
		return ""
	}
	lang := tsparse.DetectLanguage(res.TargetPath)
	if lang == tsparse.LanguageUnknown {
		return fallback
	}
	return lang.String()
}
