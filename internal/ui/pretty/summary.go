package pretty

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/yaklabco/htmldiff/pkg/htmldiff"
	"github.com/yaklabco/htmldiff/pkg/runner"
)

const (
	summaryDividerWidth = 40
	wordFile            = "file"
	wordFiles           = "files"
)

// FormatSummaryOneLine formats batch statistics as a single line.
// Example: "2 changed, 1 added, 1 removed, 3 unchanged (7 files compared)".
func (s *Styles) FormatSummaryOneLine(stats runner.Stats) string {
	fileWord := wordFiles
	if stats.Pairs == 1 {
		fileWord = wordFile
	}
	compared := s.Dim.Render(fmt.Sprintf(" (%d %s compared)", stats.Pairs, fileWord))

	if stats.Changed+stats.Added+stats.Removed+stats.Failed == 0 {
		return s.Success.Render("No differences") + compared + "\n"
	}

	var parts []string
	if stats.Changed > 0 {
		parts = append(parts, s.Changed.Render(fmt.Sprintf("%d changed", stats.Changed)))
	}
	if stats.Added > 0 {
		parts = append(parts, s.Added.Render(fmt.Sprintf("%d added", stats.Added)))
	}
	if stats.Removed > 0 {
		parts = append(parts, s.Removed.Render(fmt.Sprintf("%d removed", stats.Removed)))
	}
	if stats.Unchanged > 0 {
		parts = append(parts, fmt.Sprintf("%d unchanged", stats.Unchanged))
	}
	if stats.Failed > 0 {
		parts = append(parts, s.Failure.Render(fmt.Sprintf("%d failed", stats.Failed)))
	}

	return strings.Join(parts, ", ") + compared + "\n"
}

// FormatSummary formats batch statistics as a summary block.
func (s *Styles) FormatSummary(stats runner.Stats) string {
	var builder strings.Builder

	builder.WriteString("\n")
	builder.WriteString(s.SummaryTitle.Render("Summary"))
	builder.WriteString("\n")
	builder.WriteString(strings.Repeat("-", summaryDividerWidth))
	builder.WriteString("\n")

	builder.WriteString("  Files compared:    " +
		s.SummaryValue.Render(strconv.Itoa(stats.Pairs)) + "\n")
	builder.WriteString("    Changed:         " +
		s.Changed.Render(strconv.Itoa(stats.Changed)) + "\n")
	builder.WriteString("    Unchanged:       " +
		s.Unchanged.Render(strconv.Itoa(stats.Unchanged)) + "\n")
	builder.WriteString("    Added:           " +
		s.Added.Render(strconv.Itoa(stats.Added)) + "\n")
	builder.WriteString("    Removed:         " +
		s.Removed.Render(strconv.Itoa(stats.Removed)) + "\n")
	if stats.Failed > 0 {
		builder.WriteString("    Failed:          " +
			s.Failure.Render(strconv.Itoa(stats.Failed)) + "\n")
	}

	builder.WriteString("\n")
	builder.WriteString("  Tokens inserted:   " +
		s.DiffAdd.Render(strconv.Itoa(stats.TokensInserted)) + "\n")
	builder.WriteString("  Tokens deleted:    " +
		s.DiffRemove.Render(strconv.Itoa(stats.TokensDeleted)) + "\n")
	if stats.Written > 0 {
		builder.WriteString("  Outputs written:   " +
			s.SummaryValue.Render(strconv.Itoa(stats.Written)) + "\n")
	}

	builder.WriteString("\n")

	// Overall status
	switch {
	case stats.Failed > 0:
		builder.WriteString(s.Failure.Render("Comparison failed for some files"))
	case stats.Changed+stats.Added+stats.Removed > 0:
		builder.WriteString(s.Warning.Render("Trees differ"))
	default:
		builder.WriteString(s.Success.Render("Trees match"))
	}
	builder.WriteString("\n")

	return builder.String()
}

// FormatDiffStats formats the statistics of a single diff as one line.
// Example: "3 changes (+4 -2 tokens), 91% similar".
func (s *Styles) FormatDiffStats(stats htmldiff.Stats) string {
	if !stats.Changed() {
		msg := s.Success.Render("No visible differences")
		if stats.Invisible > 0 {
			msg += s.Dim.Render(" (markup only)")
		}
		return msg + "\n"
	}

	changes := stats.Inserts + stats.Deletes + stats.Replaces
	changeWord := "changes"
	if changes == 1 {
		changeWord = "change"
	}

	return fmt.Sprintf("%d %s (%s %s), %s similar\n",
		changes, changeWord,
		s.DiffAdd.Render(fmt.Sprintf("+%d", stats.TokensInserted)),
		s.DiffRemove.Render(fmt.Sprintf("-%d tokens", stats.TokensDeleted)),
		percent(stats.Ratio),
	)
}
