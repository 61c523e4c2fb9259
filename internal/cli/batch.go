package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/yaklabco/htmldiff/internal/logging"
	"github.com/yaklabco/htmldiff/pkg/config"
	"github.com/yaklabco/htmldiff/pkg/reporter"
	"github.com/yaklabco/htmldiff/pkg/runner"
)

type batchFlags struct {
	diffFlags

	outDir         string
	jobs           int
	ignore         []string
	extensions     []string
	report         string
	showUnchanged  bool
	compact        bool
	followSymlinks bool
}

func newBatchCommand(global *globalFlags) *cobra.Command {
	flags := &batchFlags{}

	cmd := &cobra.Command{
		Use:   "batch OLD_DIR NEW_DIR",
		Short: "Compare two directory trees",
		Long:  batchLongDescription,
		Example: `  htmldiff batch site-v1/ site-v2/ -O diffs/
  htmldiff batch old/ new/ --report table --show-unchanged
  htmldiff batch old/ new/ --report json --ignore 'drafts/**'`,
		Args: exactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBatch(cmd, global, flags, args[0], args[1])
		},
	}

	addDiffFlags(cmd, &flags.diffFlags)
	cmd.Flags().StringVarP(&flags.outDir, "out-dir", "O", "",
		"write one annotated file per pair under this directory")
	cmd.Flags().IntVarP(&flags.jobs, "jobs", "j", 0, "number of parallel workers (0 = one per CPU)")
	cmd.Flags().StringSliceVar(&flags.ignore, "ignore", nil, "glob patterns to skip (repeatable)")
	cmd.Flags().StringSliceVar(&flags.extensions, "extensions", nil,
		"file extensions to compare (default .html,.htm,.md,.markdown)")
	cmd.Flags().StringVar(&flags.report, "report", string(config.ReportText),
		"report format: text, table, json, summary")
	cmd.Flags().BoolVar(&flags.showUnchanged, "show-unchanged", false, "list pairs without visible changes")
	cmd.Flags().BoolVar(&flags.compact, "compact", false, "compact output where the report format supports it")
	cmd.Flags().BoolVar(&flags.followSymlinks, "follow-symlinks", false, "descend into symlinked directories")

	return cmd
}

const batchLongDescription = `Compare every document in OLD_DIR with the file at the same relative
path in NEW_DIR.

Files present on one side only are reported as added or removed. With
--out-dir, each compared pair is written to OUT_DIR/<path>.html (or .diff
with --format unified), mirroring the input trees.`

func (f *batchFlags) toConfig(cmd *cobra.Command, global *globalFlags) *config.Config {
	cfg := f.diffFlags.toConfig(cmd, global)
	changed := cmd.Flags().Changed

	if changed("jobs") {
		cfg.Jobs = f.jobs
	}
	if changed("ignore") {
		cfg.Ignore = f.ignore
	}
	if changed("extensions") {
		cfg.Extensions = f.extensions
	}
	if changed("report") {
		cfg.Report = config.ReportFormat(f.report)
	}
	return cfg
}

func runBatch(cmd *cobra.Command, global *globalFlags, flags *batchFlags, oldDir, newDir string) error {
	cfg, err := loadConfig(cmd, global, flags.toConfig(cmd, global))
	if err != nil {
		return err
	}
	diffOpts, err := diffOptions(cfg)
	if err != nil {
		return errors.Join(ErrConfig, err)
	}
	format, err := reporter.ParseFormat(string(cfg.Report))
	if err != nil {
		return errors.Join(ErrConfig, err)
	}

	ctx := commandContext(cmd)
	logger := logging.FromContext(ctx)

	runOpts := runner.Options{
		OldDir:         oldDir,
		NewDir:         newDir,
		OutDir:         flags.outDir,
		Extensions:     cfg.Extensions,
		ExcludeGlobs:   cfg.Ignore,
		FollowSymlinks: flags.followSymlinks,
		Jobs:           cfg.Jobs,
		Format:         cfg.Format,
		Backup:         config.BoolValue(cfg.Backup),
		Diff:           diffOpts,
		Document:       documentOptions(cfg),
	}

	logger.Debug("starting batch run",
		logging.FieldOld, oldDir,
		logging.FieldNew, newDir,
		logging.FieldOutput, flags.outDir,
		logging.FieldJobs, runOpts.Jobs,
	)

	start := time.Now()
	result, err := runner.New().Run(ctx, runOpts)
	if err != nil {
		return fmt.Errorf("batch run failed: %w", err)
	}
	elapsed := time.Since(start)

	logger.Debug("batch run complete",
		logging.FieldPairs, result.Stats.Pairs,
		logging.FieldChanged, result.Stats.Changed,
		logging.FieldUnchanged, result.Stats.Unchanged,
		logging.FieldAdded, result.Stats.Added,
		logging.FieldRemoved, result.Stats.Removed,
		logging.FieldFailed, result.Stats.Failed,
		logging.FieldElapsed, elapsed,
	)

	rep, err := reporter.New(reporter.Options{
		Writer:        cmd.OutOrStdout(),
		Format:        format,
		Color:         global.color,
		ShowSummary:   true,
		ShowUnchanged: flags.showUnchanged,
		Compact:       flags.compact,
		Duration:      elapsed.Round(time.Millisecond).String(),
	})
	if err != nil {
		return fmt.Errorf("create reporter: %w", err)
	}

	differing, err := rep.Report(ctx, result)
	if err != nil {
		return errors.Join(ErrWrite, err)
	}

	for _, file := range result.Files {
		if file.Error != nil {
			logger.Error("comparison failed", logging.FieldPath, file.Rel, logging.FieldError, file.Error)
		}
	}

	if result.HasFailures() {
		return fmt.Errorf("%d of %d files could not be compared", result.Stats.Failed, result.Stats.Pairs)
	}
	if flags.exitCode && differing > 0 {
		return ErrDifferencesFound
	}
	return nil
}
