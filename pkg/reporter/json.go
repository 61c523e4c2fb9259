package reporter

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"

	"github.com/yaklabco/htmldiff/pkg/htmldiff"
	"github.com/yaklabco/htmldiff/pkg/runner"
)

// JSONOutput is the top-level JSON structure.
type JSONOutput struct {
	Version string           `json:"version"`
	Files   []JSONFileResult `json:"files"`
	Summary JSONSummary      `json:"summary"`
}

// JSONFileResult represents a single path's result.
type JSONFileResult struct {
	Path      string          `json:"path"`
	Status    runner.Status   `json:"status"`
	Old       string          `json:"old,omitempty"`
	New       string          `json:"new,omitempty"`
	Identical bool            `json:"identical,omitempty"`
	Stats     *htmldiff.Stats `json:"stats,omitempty"`
	Output    string          `json:"output,omitempty"`
	Written   bool            `json:"written,omitempty"`
	BackedUp  bool            `json:"backedUp,omitempty"`
	Error     string          `json:"error,omitempty"`
}

// JSONSummary contains aggregate statistics.
type JSONSummary struct {
	FilesCompared  int `json:"filesCompared"`
	Changed        int `json:"changed"`
	Unchanged      int `json:"unchanged"`
	Added          int `json:"added"`
	Removed        int `json:"removed"`
	Failed         int `json:"failed"`
	Written        int `json:"written"`
	TokensInserted int `json:"tokensInserted"`
	TokensDeleted  int `json:"tokensDeleted"`
}

// JSONReporter formats results as JSON.
type JSONReporter struct {
	opts Options
	bw   *bufio.Writer
}

// NewJSONReporter creates a new JSON reporter.
func NewJSONReporter(opts Options) *JSONReporter {
	return &JSONReporter{
		opts: opts,
		bw:   bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *JSONReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	output := buildJSONOutput(result)

	encoder := json.NewEncoder(r.bw)
	if !r.opts.Compact {
		encoder.SetIndent("", "  ")
	}

	if err := encoder.Encode(output); err != nil {
		return 0, fmt.Errorf("encode JSON: %w", err)
	}

	return differing(result), nil
}

func buildJSONOutput(result *runner.Result) *JSONOutput {
	output := &JSONOutput{
		Version: "1.0.0",
		Files:   make([]JSONFileResult, 0),
	}

	if result == nil {
		return output
	}

	// Pre-allocate if we have files
	if len(result.Files) > 0 {
		output.Files = make([]JSONFileResult, 0, len(result.Files))
	}

	for _, file := range result.Files {
		fileResult := JSONFileResult{
			Path:      file.Rel,
			Status:    file.Status,
			Old:       file.Old,
			New:       file.New,
			Identical: file.Identical,
			Output:    file.Output,
			Written:   file.Written,
			BackedUp:  file.BackedUp,
		}
		if file.Status == runner.StatusChanged || file.Status == runner.StatusUnchanged {
			stats := file.Stats
			fileResult.Stats = &stats
		}
		if file.Error != nil {
			fileResult.Error = file.Error.Error()
		}
		output.Files = append(output.Files, fileResult)
	}

	stats := result.Stats
	output.Summary = JSONSummary{
		FilesCompared:  stats.Pairs,
		Changed:        stats.Changed,
		Unchanged:      stats.Unchanged,
		Added:          stats.Added,
		Removed:        stats.Removed,
		Failed:         stats.Failed,
		Written:        stats.Written,
		TokensInserted: stats.TokensInserted,
		TokensDeleted:  stats.TokensDeleted,
	}

	return output
}
