package transformer

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/kmayhew2020/kinda-lang-sub002/pkg/reporting"
	"github.com/kmayhew2020/kinda-lang-sub002/pkg/runtimegen"
)

// BatchCoordinator transforms a set of source files and keeps an audit log
// of every file it touches, adapted from the teacher's cleanup.Coordinator:
// the same logAudit-before-and-after-each-item pattern and GetSummary
// rollup, run over file transforms instead of sidecar teardown.
type BatchCoordinator struct {
	xform     *Transformer
	preflight *Preflight
	logger    *reporting.Logger

	useComposition          bool
	maxEventuallyIterations int

	mu       sync.Mutex
	auditLog []reporting.AuditEntry
}

// NewBatchCoordinator creates a new batch coordinator. useComposition and
// maxEventuallyIterations are threaded straight through to
// runtimegen.EmitRuntime for every kinda_runtime.py this coordinator writes.
func NewBatchCoordinator(logger *reporting.Logger, useComposition bool, maxEventuallyIterations int) *BatchCoordinator {
	if logger == nil {
		logger = reporting.NewLogger(reporting.LoggerConfig{})
	}
	return &BatchCoordinator{
		xform:                   New(),
		preflight:               NewPreflight(),
		logger:                  logger,
		useComposition:          useComposition,
		maxEventuallyIterations: maxEventuallyIterations,
		auditLog:                make([]reporting.AuditEntry, 0),
	}
}

// TransformAll transforms every path in paths, writing each file's output
// to outDir as the source's base name with a .py extension (outDir is flat:
// source directories are not mirrored). It honors stop: if
// stop closes mid-run, in-flight files finish but no new ones start.
// maxConcurrent bounds how many files are transformed at once; values <= 1
// run sequentially.
func (b *BatchCoordinator) TransformAll(paths []string, outDir string, maxConcurrent int, stop <-chan struct{}) []reporting.FileResult {
	if maxConcurrent < 1 {
		maxConcurrent = 1
	}

	results := make([]reporting.FileResult, len(paths))
	sem := make(chan struct{}, maxConcurrent)
	var wg sync.WaitGroup

	for i, path := range paths {
		select {
		case <-stop:
			results[i] = reporting.FileResult{Path: path, Success: false, Error: "batch stopped before this file started"}
			b.logAudit("transform_file", path, false, fmt.Errorf("batch stopped"), "skipped: stop requested")
			continue
		default:
		}

		sem <- struct{}{}
		wg.Add(1)
		go func(i int, path string) {
			defer wg.Done()
			defer func() { <-sem }()
			results[i] = b.transformOne(path, outDir)
		}(i, path)
	}

	wg.Wait()
	b.emitRuntime(results, outDir)
	return results
}

// emitRuntime writes kinda_runtime.py once for the whole batch, covering the
// union of helpers every successfully transformed file actually imports.
// Without this, an emitted program reaching for a fuzzy construct like
// sometimes() has nothing to import it from. A failure here demotes every
// successful, helper-using result, since none of those files' output is
// runnable without the runtime module sitting next to it.
func (b *BatchCoordinator) emitRuntime(results []reporting.FileResult, outDir string) {
	seen := make(map[string]struct{})
	for _, r := range results {
		if !r.Success {
			continue
		}
		for _, h := range r.HelpersUsed {
			seen[h] = struct{}{}
		}
	}
	if len(seen) == 0 {
		return
	}

	helpers := make([]string, 0, len(seen))
	for h := range seen {
		helpers = append(helpers, h)
	}
	sort.Strings(helpers)

	runtimePath, err := runtimegen.EmitRuntime(helpers, outDir, b.useComposition, b.maxEventuallyIterations)
	if err != nil {
		b.logAudit("emit_runtime", outDir, false, err, "")
		for i := range results {
			if results[i].Success && len(results[i].HelpersUsed) > 0 {
				results[i].Success = false
				results[i].Error = fmt.Sprintf("runtime emission failed: %s", err)
			}
		}
		return
	}
	b.logAudit("emit_runtime", outDir, true, nil, fmt.Sprintf("wrote %s", runtimePath))
}

func (b *BatchCoordinator) transformOne(path, outDir string) reporting.FileResult {
	b.logAudit("preflight", path, true, nil, "running preflight checks")

	source, err := os.ReadFile(path)
	if err != nil {
		b.logAudit("read_file", path, false, err, "failed to read source")
		return reporting.FileResult{Path: path, Success: false, Error: err.Error()}
	}

	b.preflight.Check(path, string(source))
	if b.preflight.HasErrors() {
		err := fmt.Errorf("preflight failed: %s", strings.Join(b.preflight.Errors, "; "))
		b.logAudit("preflight", path, false, err, "")
		return reporting.FileResult{Path: path, Success: false, Error: err.Error()}
	}

	output, helpers, err := b.xform.TransformSource(path, string(source))
	if err != nil {
		b.logAudit("transform_file", path, false, err, "")
		return reporting.FileResult{Path: path, Success: false, Error: err.Error()}
	}

	outPath := outputPathFor(path, outDir)
	if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
		b.logAudit("write_output", path, false, err, "")
		return reporting.FileResult{Path: path, Success: false, Error: err.Error()}
	}
	if err := os.WriteFile(outPath, []byte(output), 0644); err != nil {
		b.logAudit("write_output", path, false, err, "")
		return reporting.FileResult{Path: path, Success: false, Error: err.Error()}
	}

	b.logAudit("transform_file", path, true, nil, fmt.Sprintf("wrote %s", outPath))
	return reporting.FileResult{
		Path:        path,
		OutputPath:  outPath,
		HelpersUsed: helpers,
		Bytes:       len(output),
		Success:     true,
	}
}

func outputPathFor(sourcePath, outDir string) string {
	base := filepath.Base(sourcePath)
	ext := filepath.Ext(base)
	name := strings.TrimSuffix(base, ext) + ".py"
	return filepath.Join(outDir, name)
}

func (b *BatchCoordinator) logAudit(action, target string, success bool, err error, details string) {
	entry := reporting.AuditEntry{
		Timestamp: time.Now(),
		Action:    action,
		Target:    target,
		Success:   success,
		Details:   details,
	}
	if err != nil {
		entry.Error = err.Error()
	}

	b.mu.Lock()
	b.auditLog = append(b.auditLog, entry)
	b.mu.Unlock()
}

// AuditLog returns a copy of the actions recorded so far.
func (b *BatchCoordinator) AuditLog() []reporting.AuditEntry {
	b.mu.Lock()
	defer b.mu.Unlock()
	log := make([]reporting.AuditEntry, len(b.auditLog))
	copy(log, b.auditLog)
	return log
}

// GetSummary returns a summary of audit actions, adapted from the teacher's
// cleanup.Coordinator.GetSummary.
func (b *BatchCoordinator) GetSummary() reporting.BatchSummary {
	b.mu.Lock()
	defer b.mu.Unlock()

	summary := reporting.BatchSummary{TotalActions: len(b.auditLog)}
	for _, entry := range b.auditLog {
		if entry.Success {
			summary.Succeeded++
		} else {
			summary.Failed++
		}
	}
	return summary
}
