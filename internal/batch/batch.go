// Package batch drives translate.Translator over many scenario files
// concurrently, reporting progress as a Stage/Status event stream a UI or a
// plain line printer can both consume.
package batch

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"

	"tstranslate/internal/aliasscope"
	"tstranslate/internal/cache"
	"tstranslate/internal/config"
	"tstranslate/internal/diag"
	"tstranslate/internal/mangle"
	"tstranslate/internal/scenario"
	"tstranslate/internal/symbols"
	"tstranslate/internal/translate"
)

// Stage describes a high-level phase of translating one scenario file.
type Stage string

const (
	StageLoad      Stage = "load"
	StageBuild     Stage = "build"
	StageTranslate Stage = "translate"
)

// Status captures progress state within a stage.
type Status string

const (
	StatusQueued  Status = "queued"
	StatusWorking Status = "working"
	StatusDone    Status = "done"
	StatusError   Status = "error"
)

// Event reports progress for a file (or for the overall run when File is
// empty).
type Event struct {
	File    string
	Stage   Stage
	Status  Status
	Err     error
	Elapsed time.Duration
}

// ProgressSink consumes progress events.
type ProgressSink interface {
	OnEvent(Event)
}

// ChannelSink forwards events into a channel, dropping them silently if the
// channel is nil.
type ChannelSink struct {
	Ch chan<- Event
}

func (s ChannelSink) OnEvent(evt Event) {
	if s.Ch == nil {
		return
	}
	s.Ch <- evt
}

// RootResult is one named type's translation within a scenario file.
type RootResult struct {
	Name string
	Text string
}

// FileResult is the outcome of translating every root in one scenario file.
type FileResult struct {
	Path        string
	Roots       []RootResult
	Diagnostics []diag.Diagnostic
	Err         error
}

// Options configures a Run.
type Options struct {
	Progress    ProgressSink
	Concurrency int
	ExternsMode *bool // overrides the scenario file's own [project] externs flag when non-nil
	MaxDiag     int

	// Manifest supplies externs/path-blacklist/builtin-lib defaults for a
	// scenario file that omits its own [project] table entirely. A file
	// that does declare [project] is never touched by this fallback.
	Manifest *config.Manifest

	// Cache, when non-nil, is consulted before translating a root and
	// updated after a miss. A nil Cache (the zero value) disables
	// caching; every method on a nil *cache.Disk is itself a safe no-op.
	Cache *cache.Disk
}

// Run translates every scenario file in paths, one goroutine per file
// (bounded by Options.Concurrency), and returns a result per file in input
// order.
func Run(ctx context.Context, paths []string, opts Options) ([]FileResult, error) {
	results := make([]FileResult, len(paths))
	sink := opts.Progress

	emitQueued(sink, paths)

	g, gctx := errgroup.WithContext(ctx)
	if opts.Concurrency > 0 {
		g.SetLimit(opts.Concurrency)
	}

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			results[i] = translateFile(path, opts)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}

func translateFile(path string, opts Options) FileResult {
	start := time.Now()
	emit(opts.Progress, path, StageLoad, StatusWorking, nil, 0)

	w, err := scenario.Load(path)
	if err != nil {
		emit(opts.Progress, path, StageLoad, StatusError, err, time.Since(start))
		return FileResult{Path: path, Err: fmt.Errorf("load: %w", err)}
	}
	emit(opts.Progress, path, StageBuild, StatusWorking, nil, time.Since(start))

	if !w.ProjectSectionPresent && opts.Manifest != nil {
		applyManifestDefaults(w, opts.Manifest)
	}

	externs := w.Externs
	if opts.ExternsMode != nil {
		externs = *opts.ExternsMode
	}

	var raw []byte
	if opts.Cache != nil {
		raw, _ = os.ReadFile(path) // best-effort; a read failure just disables caching for this file
	}

	maxDiag := opts.MaxDiag
	if maxDiag <= 0 {
		maxDiag = 100
	}
	bag := diag.NewBag(maxDiag)

	emit(opts.Progress, path, StageTranslate, StatusWorking, nil, time.Since(start))

	// One Alias Scope is shared across every root in this file — a
	// scenario file stands in for one compilation unit.
	scope := aliasscope.New()
	refNode := symbols.NoDeclID
	if w.Decls.Len() > 0 {
		refNode = symbols.DeclID(1)
	}

	// Roots in the same file often share subexpressions (a common field
	// type, a shared base interface); dedup keeps repeated roots from
	// flooding the bag with the same approximation at the same span.
	reporter := diag.NewDedupReporter(diag.BagReporter{Bag: bag})

	result := FileResult{Path: path}
	for _, root := range w.Roots {
		var key cache.Digest
		if opts.Cache != nil && raw != nil {
			key = cache.Sum(string(raw), root.Name, strconv.FormatBool(externs))
			if entry, ok, _ := opts.Cache.Get(key); ok {
				result.Roots = append(result.Roots, RootResult{Name: root.Name, Text: entry.Text})
				continue
			}
		}

		before := bag.Len()
		tr := translate.New(w.Types, w.Symbols, w.Decls, w.Strings, w.Checker, mangle.Mangle,
			refNode,
			translate.WithExternsMode(externs),
			translate.WithPathBlacklist(w.PathBlacklist),
			translate.WithBuiltinLibPaths(w.BuiltinLibs),
			translate.WithReporter(reporter),
			translate.WithAliasScope(scope),
		)
		text := tr.Translate(root.Type)
		result.Roots = append(result.Roots, RootResult{Name: root.Name, Text: text})

		if opts.Cache != nil && raw != nil {
			warnings := collectMessages(bag.Items()[before:])
			_ = opts.Cache.Put(key, cache.Entry{Text: text, Warnings: warnings})
		}
	}
	result.Diagnostics = bag.Items()

	status := StatusDone
	if bag.HasErrors() {
		status = StatusError
	}
	emit(opts.Progress, path, StageTranslate, status, nil, time.Since(start))
	return result
}

// applyManifestDefaults fills w's externs/path-blacklist/builtin-lib
// settings from m, for a scenario file whose own [project] table was
// omitted. PathBlacklistGlobs and BuiltinLibGlobs are glob patterns, so
// they're expanded against every path registered in w.Files before
// replacing w's literal path lists.
func applyManifestDefaults(w *scenario.World, m *config.Manifest) {
	w.Externs = m.Translate.Externs
	paths := w.Files.Paths()
	if blacklist, err := m.ResolvePathBlacklist(paths); err == nil {
		w.PathBlacklist = blacklist
	}
	if builtin, err := m.ResolveBuiltinLibs(paths); err == nil {
		w.BuiltinLibs = builtin
	}
}

// collectMessages extracts the plain message text from diags, the shape
// cache.Entry.Warnings stores. On a cache hit Run records only the cached
// Text for the root; the stored warnings are not added to its Diagnostics.
func collectMessages(diags []diag.Diagnostic) []string {
	if len(diags) == 0 {
		return nil
	}
	msgs := make([]string, len(diags))
	for i, d := range diags {
		msgs[i] = d.Message
	}
	return msgs
}

func emitQueued(sink ProgressSink, paths []string) {
	if sink == nil {
		return
	}
	for _, p := range paths {
		sink.OnEvent(Event{File: p, Stage: StageLoad, Status: StatusQueued})
	}
}

func emit(sink ProgressSink, file string, stage Stage, status Status, err error, elapsed time.Duration) {
	if sink == nil {
		return
	}
	sink.OnEvent(Event{File: file, Stage: stage, Status: status, Err: err, Elapsed: elapsed})
}
