package reporter

import (
	"bufio"
	"context"
	"fmt"

	"github.com/yaklabco/htmldiff/internal/ui/pretty"
	"github.com/yaklabco/htmldiff/pkg/runner"
)

// TextReporter writes one styled line per path.
type TextReporter struct {
	opts   Options
	styles *pretty.Styles
	bw     *bufio.Writer
}

// NewTextReporter creates a new text reporter.
func NewTextReporter(opts Options) *TextReporter {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &TextReporter{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
		bw:     bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *TextReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if result == nil || len(result.Files) == 0 {
		if r.opts.ShowSummary {
			fmt.Fprintln(r.bw, r.styles.Success.Render("No files to compare."))
		}
		return 0, nil
	}

	for _, file := range result.Files {
		if file.Status == runner.StatusUnchanged && !r.opts.ShowUnchanged {
			continue
		}
		fmt.Fprint(r.bw, r.styles.FormatOutcome(file))
	}

	if r.opts.ShowSummary {
		fmt.Fprint(r.bw, r.styles.FormatSummaryOneLine(result.Stats))
	}

	return differing(result), nil
}
