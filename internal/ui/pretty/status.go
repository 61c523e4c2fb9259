package pretty

import (
	"fmt"

	"github.com/yaklabco/htmldiff/pkg/runner"
)

// statusWidth is the width of the longest status label.
const statusWidth = 9

// FormatStatus returns a padded, styled status label.
func (s *Styles) FormatStatus(status runner.Status) string {
	label := fmt.Sprintf("%-*s", statusWidth, status)
	switch status {
	case runner.StatusChanged:
		return s.Changed.Render(label)
	case runner.StatusUnchanged:
		return s.Unchanged.Render(label)
	case runner.StatusAdded:
		return s.Added.Render(label)
	case runner.StatusRemoved:
		return s.Removed.Render(label)
	case runner.StatusFailed:
		return s.Error.Render(label)
	default:
		return label
	}
}

// FormatOutcome formats one compared path as a single line.
func (s *Styles) FormatOutcome(outcome runner.FileOutcome) string {
	if outcome.Status == runner.StatusFailed && outcome.Error != nil {
		// The error already names the path.
		return s.FormatStatus(outcome.Status) + " " + s.Error.Render(outcome.Error.Error()) + "\n"
	}

	line := s.FormatStatus(outcome.Status) + " " + s.FilePath.Render(outcome.Rel)
	switch outcome.Status {
	case runner.StatusChanged:
		line += s.Dim.Render(fmt.Sprintf(" (+%d -%d tokens, %s similar)",
			outcome.Stats.TokensInserted, outcome.Stats.TokensDeleted, percent(outcome.Stats.Ratio)))
	case runner.StatusUnchanged:
		if !outcome.Identical {
			line += s.Dim.Render(" (markup only)")
		}
	}
	return line + "\n"
}

// percent formats a ratio in [0, 1] as a whole percentage.
func percent(ratio float64) string {
	return fmt.Sprintf("%.0f%%", ratio*100)
}
