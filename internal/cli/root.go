// Package cli provides the Cobra command structure for htmldiff.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/htmldiff/internal/logging"
	"github.com/yaklabco/htmldiff/internal/ui/pretty"
	"github.com/yaklabco/htmldiff/pkg/config"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// globalFlags holds the persistent flags and the logger they configure.
type globalFlags struct {
	debug      bool
	logLevel   string
	logFile    string
	configPath string
	color      string

	activeLevel string
	activeFile  string
	closeLog    func() error
}

// NewRootCommand creates the root htmldiff command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	global := &globalFlags{}

	rootCmd := &cobra.Command{
		Use:   "htmldiff",
		Short: "Compare two HTML documents and mark up what changed",
		Long: `htmldiff compares two versions of an HTML (or Markdown) document and
writes a single HTML document in which inserted and deleted text is marked up.

Changes that only touch tag attributes or whitespace are carried over without
markup. The result can be rendered inline or as two side-by-side columns, and
whole directory trees can be compared in one run.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return usageErrorf("unknown command %q for %q", args[0], cmd.CommandPath())
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if !pretty.ValidColorMode(global.color) {
				return usageErrorf("invalid --color %q: must be auto, always or never", global.color)
			}
			if !logging.ValidLevel(global.logLevel) {
				return usageErrorf("invalid --log-level %q: must be debug, info, warn or error", global.logLevel)
			}
			return global.setupLogging(cmd, global.level(global.logLevel), global.logFile)
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			return global.close()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&global.debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&global.logLevel, "log-level", config.DefaultLogLevel,
		"log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&global.logFile, "log-file", "", "append log records to this file")
	rootCmd.PersistentFlags().StringVar(&global.configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&global.color, "color", "auto",
		"colorize output: auto, always, never")

	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &UsageError{Err: err}
	})

	// Add subcommands.
	rootCmd.AddCommand(newDiffCommand(global))
	rootCmd.AddCommand(newBatchCommand(global))
	rootCmd.AddCommand(newFontsCommand())
	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	// Apply styled help formatting.
	helpFormatter := NewHelpFormatter(global.color, os.Stdout)
	helpFormatter.ApplyToCommand(rootCmd)

	return rootCmd
}

// level returns the effective level, letting --debug win.
func (g *globalFlags) level(configured string) string {
	if g.debug {
		return "debug"
	}
	if configured == "" {
		return config.DefaultLogLevel
	}
	return configured
}

// setupLogging installs a logger for level and logFile in the command
// context. It is a no-op when the logger in use already matches.
func (g *globalFlags) setupLogging(cmd *cobra.Command, level, logFile string) error {
	if g.closeLog != nil && level == g.activeLevel && logFile == g.activeFile {
		return nil
	}

	logger, closer, err := logging.Setup(level, logFile)
	if err != nil {
		return fmt.Errorf("set up logging: %w", err)
	}
	if err := g.close(); err != nil {
		logger.Warn("close previous log file", logging.FieldError, err)
	}

	g.activeLevel = level
	g.activeFile = logFile
	g.closeLog = closer

	cmd.SetContext(logging.WithLogger(commandContext(cmd), logger))
	return nil
}

// applyConfig switches logging to the level and file of the resolved
// configuration, which already includes the flag values.
func (g *globalFlags) applyConfig(cmd *cobra.Command, cfg *config.Config) error {
	return g.setupLogging(cmd, g.level(cfg.LogLevel), cfg.LogFile)
}

func (g *globalFlags) close() error {
	if g.closeLog == nil {
		return nil
	}
	closer := g.closeLog
	g.closeLog = nil
	return closer()
}
