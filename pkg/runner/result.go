package runner

import "github.com/yaklabco/htmldiff/pkg/htmldiff"

// Status classifies a compared path.
type Status string

const (
	// StatusChanged is a file in both trees with visible changes.
	StatusChanged Status = "changed"

	// StatusUnchanged is a file in both trees with no visible change. It may
	// still differ in attributes or whitespace.
	StatusUnchanged Status = "unchanged"

	// StatusAdded is a file only in the new tree.
	StatusAdded Status = "added"

	// StatusRemoved is a file only in the old tree.
	StatusRemoved Status = "removed"

	// StatusFailed is a pair that could not be compared or written.
	StatusFailed Status = "failed"
)

// FileOutcome is the result for one relative path.
type FileOutcome struct {
	Pair

	Status Status

	// Identical is set when both files have the same bytes.
	Identical bool

	// Stats is the diff summary. Zero for added and removed files.
	Stats htmldiff.Stats

	// Output is the path the annotated document was written to, if any.
	Output string

	// Written is false when Output already held the same content.
	Written bool

	// BackedUp is set when a previous Output was copied aside.
	BackedUp bool

	// Error is set if the pair could not be processed.
	Error error
}

// Stats captures aggregate information about a run.
type Stats struct {
	// Pairs is the number of distinct relative paths across both trees.
	Pairs int

	Changed   int
	Unchanged int
	Added     int
	Removed   int
	Failed    int

	// Written is the number of output files created or updated.
	Written int

	// TokensInserted and TokensDeleted total the changed tokens.
	TokensInserted int
	TokensDeleted  int
}

// Result is the overall runner result.
type Result struct {
	// Files contains the outcome for each path, ordered by path.
	Files []FileOutcome

	// Stats contains aggregate statistics for the run.
	Stats Stats
}

// HasFailures reports whether any pair failed.
func (r *Result) HasFailures() bool {
	if r == nil {
		return false
	}
	return r.Stats.Failed > 0
}

// HasChanges reports whether the trees differ: a changed, added or removed file.
func (r *Result) HasChanges() bool {
	if r == nil {
		return false
	}
	return r.Stats.Changed+r.Stats.Added+r.Stats.Removed > 0
}

// accumulate updates the result with a file outcome.
func (r *Result) accumulate(outcome FileOutcome) {
	r.Files = append(r.Files, outcome)
	r.Stats.Pairs++

	switch outcome.Status {
	case StatusChanged:
		r.Stats.Changed++
	case StatusUnchanged:
		r.Stats.Unchanged++
	case StatusAdded:
		r.Stats.Added++
	case StatusRemoved:
		r.Stats.Removed++
	case StatusFailed:
		r.Stats.Failed++
	}

	if outcome.Written {
		r.Stats.Written++
	}
	r.Stats.TokensInserted += outcome.Stats.TokensInserted
	r.Stats.TokensDeleted += outcome.Stats.TokensDeleted
}
