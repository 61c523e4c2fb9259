package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/htmldiff/pkg/config"
	"github.com/yaklabco/htmldiff/pkg/fontmetric"
)

func newFontsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "fonts",
		Short: "List the fonts available for side-by-side padding",
		Long: `List the fonts with a character width table. Side-by-side output uses the
table to blank out changed text with whitespace of about the same width.`,
		Args: exactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			for _, name := range fontmetric.Fonts() {
				if name == config.DefaultFont {
					if _, err := fmt.Fprintf(out, "%s (default)\n", name); err != nil {
						return err
					}
					continue
				}
				if _, err := fmt.Fprintln(out, name); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
