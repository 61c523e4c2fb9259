package pretty

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/yaklabco/htmldiff/pkg/runner"
)

// Table formatting constants.
const (
	tablePadding     = 2
	tableColumnCount = 5 // FILE, STATUS, SIMILAR, +TOKENS, -TOKENS
	minFileWidth     = 20
	statusColWidth   = statusWidth
	ratioColWidth    = 7
	countColWidth    = 7
	heavySeparator   = "="
	defaultTermWidth = 100
)

// TableRow represents a single row in the batch table.
type TableRow struct {
	File     string
	Status   runner.Status
	Ratio    string
	Inserted string
	Deleted  string
}

// TableFormatter formats batch results as a styled table.
type TableFormatter struct {
	styles       *Styles
	colorEnabled bool
	termWidth    int
}

// NewTableFormatter creates a new table formatter.
func NewTableFormatter(styles *Styles, colorEnabled bool, termWidth int) *TableFormatter {
	if termWidth <= 0 {
		termWidth = defaultTermWidth
	}
	return &TableFormatter{
		styles:       styles,
		colorEnabled: colorEnabled,
		termWidth:    termWidth,
	}
}

// FormatTable formats runner results as a styled table, one row per path.
// Unchanged paths are left out unless showUnchanged is set.
func (t *TableFormatter) FormatTable(result *runner.Result, showUnchanged bool) string {
	if result == nil {
		return ""
	}

	rows := make([]TableRow, 0, len(result.Files))
	for _, file := range result.Files {
		if file.Status == runner.StatusUnchanged && !showUnchanged {
			continue
		}
		rows = append(rows, OutcomeToTableRow(file))
	}
	if len(rows) == 0 {
		return ""
	}

	fileWidth := t.calculateFileWidth(rows)

	var builder strings.Builder

	builder.WriteString(t.formatHeader(fileWidth))
	builder.WriteString("\n")
	builder.WriteString(t.formatSeparator(fileWidth, heavySeparator))
	builder.WriteString("\n")

	for _, row := range rows {
		builder.WriteString(t.formatRow(row, fileWidth))
		builder.WriteString("\n")
	}

	builder.WriteString(t.formatSeparator(fileWidth, heavySeparator))
	builder.WriteString("\n")

	builder.WriteString(t.formatLegend())
	builder.WriteString("\n")

	return builder.String()
}

// OutcomeToTableRow converts a runner outcome to a table row.
func OutcomeToTableRow(file runner.FileOutcome) TableRow {
	row := TableRow{File: file.Rel, Status: file.Status}
	if file.Pair.InBoth() && file.Status != runner.StatusFailed {
		row.Ratio = percent(file.Stats.Ratio)
		row.Inserted = strconv.Itoa(file.Stats.TokensInserted)
		row.Deleted = strconv.Itoa(file.Stats.TokensDeleted)
	}
	return row
}

// calculateFileWidth sizes the FILE column to its content within the
// terminal width.
func (t *TableFormatter) calculateFileWidth(rows []TableRow) int {
	width := minFileWidth
	for _, row := range rows {
		width = max(width, len(row.File))
	}

	fixed := statusColWidth + ratioColWidth + 2*countColWidth + tablePadding*tableColumnCount
	if width+fixed > t.termWidth {
		width = max(minFileWidth, t.termWidth-fixed)
	}
	return width
}

// totalWidth calculates the total table width.
func (t *TableFormatter) totalWidth(fileWidth int) int {
	return fileWidth + statusColWidth + ratioColWidth + 2*countColWidth + tablePadding*tableColumnCount
}

// formatHeader formats the table header row.
func (t *TableFormatter) formatHeader(fileWidth int) string {
	header := fmt.Sprintf(" %-*s  %-*s  %*s  %*s  %*s ",
		fileWidth, "FILE",
		statusColWidth, "STATUS",
		ratioColWidth, "SIMILAR",
		countColWidth, "+TOKENS",
		countColWidth, "-TOKENS",
	)
	return t.styles.TableHeader.Render(header)
}

// formatSeparator formats a separator line.
func (t *TableFormatter) formatSeparator(fileWidth int, char string) string {
	return t.styles.TableSeparator.Render(strings.Repeat(char, t.totalWidth(fileWidth)))
}

// formatRow formats a single table row styled by status.
func (t *TableFormatter) formatRow(row TableRow, fileWidth int) string {
	content := fmt.Sprintf(" %-*s  %-*s  %*s  %*s  %*s ",
		fileWidth, truncateFilePath(row.File, fileWidth),
		statusColWidth, row.Status,
		ratioColWidth, row.Ratio,
		countColWidth, row.Inserted,
		countColWidth, row.Deleted,
	)
	return t.getRowStyle(row.Status).Render(content)
}

// getRowStyle returns the appropriate style for a status.
func (t *TableFormatter) getRowStyle(status runner.Status) lipgloss.Style {
	switch status {
	case runner.StatusChanged:
		return t.styles.Changed
	case runner.StatusUnchanged:
		return t.styles.Unchanged
	case runner.StatusAdded:
		return t.styles.Added
	case runner.StatusRemoved:
		return t.styles.Removed
	case runner.StatusFailed:
		return t.styles.Error
	default:
		return lipgloss.NewStyle()
	}
}

// formatLegend formats the legend explaining the table columns and colors.
func (t *TableFormatter) formatLegend() string {
	if !t.colorEnabled {
		return t.styles.TableLegend.Render(" Legend: SIMILAR = shared tokens | +/-TOKENS = inserted/deleted tokens")
	}

	return t.styles.TableLegend.Render(
		fmt.Sprintf(" Legend: %s  %s  %s  %s",
			t.styles.Changed.Render(" changed "),
			t.styles.Added.Render(" added "),
			t.styles.Removed.Render(" removed "),
			t.styles.Error.Render(" failed "),
		),
	)
}

// FormatTableSummary formats a summary line for table output.
func (t *TableFormatter) FormatTableSummary(stats runner.Stats, duration string) string {
	parts := []string{fmt.Sprintf("%d files compared", stats.Pairs)}

	if stats.Changed > 0 {
		parts = append(parts, t.styles.Changed.Render(fmt.Sprintf("%d changed", stats.Changed)))
	}
	if stats.Added > 0 {
		parts = append(parts, t.styles.Added.Render(fmt.Sprintf("%d added", stats.Added)))
	}
	if stats.Removed > 0 {
		parts = append(parts, t.styles.Removed.Render(fmt.Sprintf("%d removed", stats.Removed)))
	}
	if stats.Failed > 0 {
		parts = append(parts, t.styles.Error.Render(fmt.Sprintf("%d failed", stats.Failed)))
	}

	if duration != "" {
		parts = append(parts, t.styles.Dim.Render(duration))
	}

	return " " + strings.Join(parts, " | ")
}

// truncateFilePath truncates a file path, preserving the end (filename) rather than beginning.
func truncateFilePath(path string, maxLen int) string {
	if len(path) <= maxLen {
		return path
	}
	if maxLen <= 3 {
		return path[len(path)-maxLen:]
	}
	return "..." + path[len(path)-maxLen+3:]
}
