package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/htmldiff/internal/configloader"
	"github.com/yaklabco/htmldiff/internal/logging"
	"github.com/yaklabco/htmldiff/pkg/config"
	"github.com/yaklabco/htmldiff/pkg/document"
	"github.com/yaklabco/htmldiff/pkg/htmldiff"
)

// diffFlags holds the comparison flags shared by diff and batch.
type diffFlags struct {
	accurate     bool
	sideBySide   bool
	font         string
	markers      string
	granularity  string
	format       string
	autoJunk     bool
	noStylesheet bool
	input        string
	encodings    []string
	backup       bool
	exitCode     bool
}

func addDiffFlags(cmd *cobra.Command, flags *diffFlags) {
	cmd.Flags().BoolVarP(&flags.accurate, "accurate", "a", false,
		"compare every token, including stopwords and whitespace (slower)")
	cmd.Flags().BoolVarP(&flags.sideBySide, "side-by-side", "s", false, "render old and new in two columns")
	cmd.Flags().StringVar(&flags.font, "font", config.DefaultFont, "font used to size side-by-side padding")
	cmd.Flags().StringVar(&flags.markers, "markers", config.DefaultMarkers, "change markup: span, bracket, notags")
	cmd.Flags().StringVar(&flags.granularity, "granularity", config.DefaultGranularity,
		"unit of comparison: word, line")
	cmd.Flags().StringVar(&flags.format, "format", string(config.FormatHTML), "output format: html, unified")
	cmd.Flags().BoolVar(&flags.autoJunk, "autojunk", false, "ignore very frequent tokens when aligning")
	cmd.Flags().BoolVar(&flags.noStylesheet, "no-stylesheet", false, "do not insert the marker stylesheet")
	cmd.Flags().StringVar(&flags.input, "input", config.DefaultInput, "input kind: auto, html, markdown")
	cmd.Flags().StringSliceVar(&flags.encodings, "encoding", nil,
		"fallback encodings tried after UTF-8 (repeatable)")
	cmd.Flags().BoolVar(&flags.backup, "backup", false, "keep an existing output file as <file>.htmldiff.bak")
	cmd.Flags().BoolVar(&flags.exitCode, "exit-code", false, "exit with status 1 when the inputs differ")
}

// toConfig returns a configuration layer holding only the flags that were
// set explicitly, so unset flags do not mask config files.
func (f *diffFlags) toConfig(cmd *cobra.Command, global *globalFlags) *config.Config {
	cfg := &config.Config{}
	changed := cmd.Flags().Changed

	if changed("accurate") {
		cfg.Accurate = config.Bool(f.accurate)
	}
	if changed("side-by-side") {
		cfg.SideBySide = config.Bool(f.sideBySide)
	}
	if changed("font") {
		cfg.Font = f.font
	}
	if changed("markers") {
		cfg.Markers = f.markers
	}
	if changed("granularity") {
		cfg.Granularity = f.granularity
	}
	if changed("format") {
		cfg.Format = config.OutputFormat(f.format)
	}
	if changed("autojunk") {
		cfg.AutoJunk = config.Bool(f.autoJunk)
	}
	if changed("no-stylesheet") {
		cfg.Stylesheet = config.Bool(!f.noStylesheet)
	}
	if changed("input") {
		cfg.Input = f.input
	}
	if changed("encoding") {
		cfg.Encodings = f.encodings
	}
	if changed("backup") {
		cfg.Backup = config.Bool(f.backup)
	}
	if changed("log-level") {
		cfg.LogLevel = global.logLevel
	}
	if changed("log-file") {
		cfg.LogFile = global.logFile
	}
	return cfg
}

// loadConfig resolves the layered configuration with cliCfg on top and
// switches logging to the resolved level.
func loadConfig(cmd *cobra.Command, global *globalFlags, cliCfg *config.Config) (*config.Config, error) {
	ctx := commandContext(cmd)

	workDir, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("get working directory: %w", err)
	}

	loadResult, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: global.configPath,
		CLIConfig:    cliCfg,
	})
	if err != nil {
		return nil, errors.Join(ErrConfig, err)
	}

	cfg := loadResult.Config
	if err := global.applyConfig(cmd, cfg); err != nil {
		return nil, err
	}

	logger := logging.FromContext(cmd.Context())
	for _, warning := range loadResult.Warnings {
		logger.Warn(warning)
	}
	if len(loadResult.LoadedFrom) > 0 {
		logger.Debug("loaded configuration from", "files", loadResult.LoadedFrom)
	}
	logger.Debug("configuration loaded",
		logging.FieldAccurate, config.BoolValue(cfg.Accurate),
		logging.FieldSideBySide, config.BoolValue(cfg.SideBySide),
		logging.FieldFont, cfg.Font,
		logging.FieldMarkers, cfg.Markers,
		logging.FieldGranularity, cfg.Granularity,
	)

	return cfg, nil
}

// diffOptions converts the resolved configuration into diff options.
func diffOptions(cfg *config.Config) (htmldiff.Options, error) {
	markers, ok := htmldiff.MarkersFor(htmldiff.MarkerStyle(cfg.Markers))
	if !ok {
		return htmldiff.Options{}, fmt.Errorf("unknown markers %q", cfg.Markers)
	}

	return htmldiff.Options{
		AccurateMode:     config.BoolValue(cfg.Accurate),
		SideBySide:       config.BoolValue(cfg.SideBySide),
		Font:             cfg.Font,
		Markers:          &markers,
		Granularity:      htmldiff.Granularity(cfg.Granularity),
		AutoJunk:         config.BoolValue(cfg.AutoJunk),
		InsertStylesheet: config.BoolValue(cfg.Stylesheet),
	}, nil
}

// documentOptions converts the resolved configuration into load options.
func documentOptions(cfg *config.Config) document.Options {
	return document.Options{
		Kind:      document.Kind(cfg.Input),
		Encodings: cfg.Encodings,
	}
}

// exactArgs is cobra.ExactArgs reporting a usage error.
func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.ExactArgs(n)(cmd, args); err != nil {
			return &UsageError{Err: err}
		}
		return nil
	}
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
