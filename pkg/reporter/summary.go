package reporter

import (
	"context"
	"fmt"
	"io"

	"github.com/yaklabco/htmldiff/internal/ui/pretty"
	"github.com/yaklabco/htmldiff/pkg/runner"
)

// SummaryReporter prints only the totals of a run.
type SummaryReporter struct {
	opts   Options
	styles *pretty.Styles
	out    io.Writer
}

// NewSummaryReporter creates a new summary reporter.
func NewSummaryReporter(opts Options) *SummaryReporter {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &SummaryReporter{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
		out:    opts.Writer,
	}
}

// Report implements Reporter.
func (r *SummaryReporter) Report(_ context.Context, result *runner.Result) (int, error) {
	var stats runner.Stats
	if result != nil {
		stats = result.Stats
	}

	if _, err := fmt.Fprint(r.out, r.styles.FormatSummary(stats)); err != nil {
		return 0, fmt.Errorf("write summary: %w", err)
	}
	if r.opts.Duration != "" {
		if _, err := fmt.Fprintln(r.out, r.styles.Dim.Render("Completed in "+r.opts.Duration)); err != nil {
			return 0, fmt.Errorf("write summary: %w", err)
		}
	}

	return differing(result), nil
}
