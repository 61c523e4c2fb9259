package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/yaklabco/htmldiff/internal/configloader"
	"github.com/yaklabco/htmldiff/internal/logging"
	"github.com/yaklabco/htmldiff/pkg/config"
)

// initFlags holds the flags for the init command.
type initFlags struct {
	force  bool
	format string
	output string
}

func newInitCommand() *cobra.Command {
	flags := &initFlags{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new htmldiff configuration file",
		Long: `Create a new .htmldiff.yml configuration file in the current directory
with every option at its default and a comment describing it.

A JSON file is not discovered automatically; pass it with --config.`,
		Example: `  htmldiff init                      # create .htmldiff.yml
  htmldiff init --format json        # create .htmldiff.json instead
  htmldiff init --output custom.yml  # write to a custom file path`,
		Args: exactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInit(cmd, flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.force, "force", "f", false, "Overwrite existing configuration file")
	cmd.Flags().StringVar(&flags.format, "format", "yaml", "Output format: yaml or json")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "",
		"Output file path (default: .htmldiff.yml or .htmldiff.json)")

	return cmd
}

func runInit(cmd *cobra.Command, flags *initFlags) error {
	logger := logging.FromContext(commandContext(cmd))

	if flags.format != "yaml" && flags.format != "json" {
		return usageErrorf("invalid format %q: must be yaml or json", flags.format)
	}

	outputPath := flags.output
	if outputPath == "" {
		if flags.format == "json" {
			outputPath = ".htmldiff.json"
		} else {
			outputPath = ".htmldiff.yml"
		}
	}

	absPath, err := filepath.Abs(outputPath)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	if _, err := os.Stat(absPath); err == nil && flags.force {
		logger.Warn("overwriting existing file", logging.FieldPath, outputPath)
	}

	content, err := config.GenerateTemplate(config.TemplateOptions{Format: flags.format})
	if err != nil {
		return fmt.Errorf("generate template: %w", err)
	}

	if err := configloader.WriteConfig(absPath, content, flags.force); err != nil {
		return errors.Join(ErrWrite, err)
	}

	logger.Info("created configuration file", logging.FieldPath, outputPath)
	return nil
}
