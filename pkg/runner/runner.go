package runner

import (
	"context"
	"fmt"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/yaklabco/htmldiff/internal/logging"
	"github.com/yaklabco/htmldiff/pkg/config"
	"github.com/yaklabco/htmldiff/pkg/document"
	"github.com/yaklabco/htmldiff/pkg/fsutil"
	"github.com/yaklabco/htmldiff/pkg/htmldiff"
)

// DiffFunc compares two HTML documents.
type DiffFunc func(oldDoc, newDoc string, opts htmldiff.Options) (*htmldiff.Result, error)

// Runner orchestrates a comparison of two trees.
type Runner struct {
	// Diff compares each pair. Defaults to htmldiff.Diff.
	Diff DiffFunc
}

// New creates a Runner that uses htmldiff.Diff.
func New() *Runner {
	return &Runner{Diff: htmldiff.Diff}
}

// Run pairs the files of opts.OldDir and opts.NewDir and compares every pair
// present in both concurrently. It returns one FileOutcome per relative path,
// ordered by path, and aggregate stats.
//
// A pair that fails is recorded with StatusFailed and does not stop the run.
// Cancelling ctx stops the run between pairs; the partial result is returned
// together with the context error.
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	pairs, err := PairTrees(ctx, opts)
	if err != nil {
		return nil, err
	}

	var work []Pair
	for _, pair := range pairs {
		if pair.InBoth() {
			work = append(work, pair)
		}
	}

	logging.FromContext(ctx).Debug("paired trees",
		logging.FieldOld, opts.OldDir,
		logging.FieldNew, opts.NewDir,
		logging.FieldPairs, len(pairs),
	)

	outcomes := r.compareAll(ctx, work, opts)

	// Build result in deterministic order.
	result := &Result{Files: make([]FileOutcome, 0, len(pairs))}
	for _, pair := range pairs {
		switch {
		case pair.New == "":
			result.accumulate(FileOutcome{Pair: pair, Status: StatusRemoved})
		case pair.Old == "":
			result.accumulate(FileOutcome{Pair: pair, Status: StatusAdded})
		default:
			if outcome, ok := outcomes[pair.Rel]; ok {
				result.accumulate(outcome)
			}
		}
	}

	// Check for context error.
	if ctx.Err() != nil {
		return result, fmt.Errorf("run cancelled: %w", ctx.Err())
	}

	return result, nil
}

// compareAll runs compare over work on a worker pool and returns the
// outcomes keyed by relative path.
func (r *Runner) compareAll(ctx context.Context, work []Pair, opts Options) map[string]FileOutcome {
	outcomes := make(map[string]FileOutcome, len(work))
	if len(work) == 0 {
		return outcomes
	}

	// Determine job count.
	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	// Don't use more workers than pairs.
	if jobs > len(work) {
		jobs = len(work)
	}

	workCh := make(chan Pair)
	outCh := make(chan FileOutcome)

	var wg sync.WaitGroup

	// Start workers.
	for range jobs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.worker(ctx, workCh, outCh, opts)
		}()
	}

	// Feed work in a separate goroutine.
	go func() {
		defer close(workCh)
		for _, pair := range work {
			select {
			case <-ctx.Done():
				return
			case workCh <- pair:
			}
		}
	}()

	// Close outCh when all workers are done.
	go func() {
		wg.Wait()
		close(outCh)
	}()

	for outcome := range outCh {
		outcomes[outcome.Rel] = outcome
	}
	return outcomes
}

// worker compares pairs from workCh and sends outcomes to outCh.
func (r *Runner) worker(ctx context.Context, workCh <-chan Pair, outCh chan<- FileOutcome, opts Options) {
	for pair := range workCh {
		select {
		case <-ctx.Done():
			return
		default:
		}

		outcome := r.compare(ctx, pair, opts)

		select {
		case <-ctx.Done():
			return
		case outCh <- outcome:
		}
	}
}

// compare loads, diffs and writes one pair.
func (r *Runner) compare(ctx context.Context, pair Pair, opts Options) FileOutcome {
	ctx = logging.WithFields(ctx, logging.FieldPath, pair.Rel)
	outcome := FileOutcome{Pair: pair}
	fail := func(err error) FileOutcome {
		outcome.Status = StatusFailed
		outcome.Error = fmt.Errorf("%s: %w", pair.Rel, err)
		return outcome
	}

	oldDoc, err := document.Load(ctx, pair.Old, opts.Document)
	if err != nil {
		return fail(fmt.Errorf("load old: %w", err))
	}
	newDoc, err := document.Load(ctx, pair.New, opts.Document)
	if err != nil {
		return fail(fmt.Errorf("load new: %w", err))
	}
	outcome.Identical = fsutil.SameContent(oldDoc.Info, newDoc.Info)

	var content string
	if opts.Format == config.FormatUnified {
		a, b, opcodes := htmldiff.Compare(oldDoc.HTML, newDoc.HTML, opts.Diff)
		outcome.Stats = htmldiff.Summarize(a, b, opcodes)
		content = htmldiff.NewUnified(pair.Old, pair.New, oldDoc.Source, newDoc.Source, opts.Diff.AccurateMode).String()
	} else {
		diffFn := r.Diff
		if diffFn == nil {
			diffFn = htmldiff.Diff
		}
		res, err := diffFn(oldDoc.HTML, newDoc.HTML, opts.Diff)
		if err != nil {
			return fail(fmt.Errorf("diff: %w", err))
		}
		outcome.Stats = res.Stats
		content = res.HTML
	}

	outcome.Status = StatusUnchanged
	if outcome.Stats.Changed() {
		outcome.Status = StatusChanged
	}

	if opts.OutDir != "" {
		outcome.Output = filepath.Join(opts.OutDir, filepath.FromSlash(pair.Rel)+opts.outputSuffix())
		if opts.Backup {
			outcome.BackedUp, err = fsutil.CreateBackup(ctx, outcome.Output)
			if err != nil {
				return fail(err)
			}
		}
		outcome.Written, err = fsutil.WriteAtomicIfChanged(ctx, outcome.Output, []byte(content), fsutil.DefaultFileMode)
		if err != nil {
			return fail(fmt.Errorf("write output: %w", err))
		}
	}

	logging.FromContext(ctx).Debug("compared pair",
		logging.FieldRatio, outcome.Stats.Ratio,
		logging.FieldChanged, outcome.Status == StatusChanged,
		logging.FieldOutput, outcome.Output,
	)
	return outcome
}
