// Package reporter writes the result of a batch comparison.
package reporter

import (
	"context"
	"fmt"

	"github.com/yaklabco/htmldiff/pkg/runner"
)

// Reporter formats and writes batch results.
type Reporter interface {
	// Report writes formatted output for the given result.
	// It returns the number of paths that differ between the trees and
	// any write error.
	Report(ctx context.Context, result *runner.Result) (int, error)
}

// New creates a Reporter for the specified options.
func New(opts Options) (Reporter, error) {
	// Default writer to stdout if not specified
	if opts.Writer == nil {
		opts.Writer = DefaultOptions().Writer
	}

	format := opts.Format
	if format == "" {
		format = FormatText
	}

	switch format {
	case FormatText:
		return NewTextReporter(opts), nil
	case FormatTable:
		return NewTableReporter(opts), nil
	case FormatJSON:
		return NewJSONReporter(opts), nil
	case FormatSummary:
		return NewSummaryReporter(opts), nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}

// differing counts changed, added and removed paths.
func differing(result *runner.Result) int {
	if result == nil {
		return 0
	}
	return result.Stats.Changed + result.Stats.Added + result.Stats.Removed
}
