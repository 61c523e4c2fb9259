package pretty

import "strings"

// FormatUnified colors the lines of a unified diff.
func (s *Styles) FormatUnified(diff string) string {
	if diff == "" {
		return ""
	}

	var builder strings.Builder
	for _, line := range strings.SplitAfter(diff, "\n") {
		if line == "" {
			continue
		}
		text := strings.TrimSuffix(line, "\n")
		builder.WriteString(s.formatDiffLine(text))
		builder.WriteString("\n")
	}
	return builder.String()
}

// formatDiffLine styles a single diff line.
func (s *Styles) formatDiffLine(line string) string {
	switch {
	case strings.HasPrefix(line, "---"), strings.HasPrefix(line, "+++"):
		return s.DiffHeader.Render(line)
	case strings.HasPrefix(line, "@@"):
		return s.DiffHunk.Render(line)
	case strings.HasPrefix(line, "+"):
		return s.DiffAdd.Render(line)
	case strings.HasPrefix(line, "-"):
		return s.DiffRemove.Render(line)
	default:
		return s.DiffContext.Render(line)
	}
}
