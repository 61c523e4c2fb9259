package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/yaklabco/htmldiff/internal/logging"
	"github.com/yaklabco/htmldiff/internal/ui/pretty"
	"github.com/yaklabco/htmldiff/pkg/config"
	"github.com/yaklabco/htmldiff/pkg/document"
	"github.com/yaklabco/htmldiff/pkg/fsutil"
	"github.com/yaklabco/htmldiff/pkg/htmldiff"
)

type diffCommandFlags struct {
	diffFlags

	output string
	stats  bool
}

func newDiffCommand(global *globalFlags) *cobra.Command {
	flags := &diffCommandFlags{}

	cmd := &cobra.Command{
		Use:   "diff OLD NEW",
		Short: "Compare two documents",
		Long:  diffLongDescription,
		Example: `  htmldiff diff old.html new.html > diff.html
  htmldiff diff -s old.html new.html -o diff.html   # side by side
  htmldiff diff -a --markers bracket old.html new.html
  htmldiff diff --format unified old.md new.md
  htmldiff diff --exit-code old.html new.html       # exit 1 on differences`,
		Args: exactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDiff(cmd, global, flags, args[0], args[1])
		},
	}

	addDiffFlags(cmd, &flags.diffFlags)
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "write the result to FILE instead of stdout")
	cmd.Flags().BoolVar(&flags.stats, "stats", false, "print change statistics to stderr")

	return cmd
}

const diffLongDescription = `Compare two versions of a document and write the annotated result.

Inserted text is wrapped in <span class="insert">, deleted text in
<span class="delete">. Markdown inputs are rendered to HTML first.`

func runDiff(cmd *cobra.Command, global *globalFlags, flags *diffCommandFlags, oldPath, newPath string) error {
	cfg, err := loadConfig(cmd, global, flags.toConfig(cmd, global))
	if err != nil {
		return err
	}
	opts, err := diffOptions(cfg)
	if err != nil {
		return errors.Join(ErrConfig, err)
	}

	ctx := commandContext(cmd)
	logger := logging.FromContext(ctx)
	docOpts := documentOptions(cfg)

	oldDoc, err := document.Load(ctx, oldPath, docOpts)
	if err != nil {
		return fmt.Errorf("load old: %w", err)
	}
	newDoc, err := document.Load(ctx, newPath, docOpts)
	if err != nil {
		return fmt.Errorf("load new: %w", err)
	}

	start := time.Now()
	var content string
	var stats htmldiff.Stats
	if cfg.Format == config.FormatUnified {
		a, b, opcodes := htmldiff.Compare(oldDoc.HTML, newDoc.HTML, opts)
		stats = htmldiff.Summarize(a, b, opcodes)
		content = htmldiff.NewUnified(oldPath, newPath, oldDoc.Source, newDoc.Source, opts.AccurateMode).String()
	} else {
		res, err := htmldiff.Diff(oldDoc.HTML, newDoc.HTML, opts)
		if err != nil {
			return fmt.Errorf("diff: %w", err)
		}
		stats = res.Stats
		content = res.HTML
	}

	logger.Debug("diff complete",
		logging.FieldOld, oldPath,
		logging.FieldNew, newPath,
		logging.FieldTokensOld, stats.TokensOld,
		logging.FieldTokensNew, stats.TokensNew,
		logging.FieldRatio, stats.Ratio,
		logging.FieldElapsed, time.Since(start),
	)

	if err := writeDiff(cmd, global, cfg, flags.output, content); err != nil {
		return err
	}

	if flags.stats {
		styles := pretty.NewStyles(pretty.IsColorEnabled(global.color, cmd.ErrOrStderr()))
		fmt.Fprintln(cmd.ErrOrStderr(), styles.FormatDiffStats(stats))
	}

	if flags.exitCode && stats.Changed() {
		return ErrDifferencesFound
	}
	return nil
}

// writeDiff writes content to output, or to the command's stdout when
// output is empty.
func writeDiff(cmd *cobra.Command, global *globalFlags, cfg *config.Config, output, content string) error {
	ctx := commandContext(cmd)
	logger := logging.FromContext(ctx)

	if output == "" {
		out := cmd.OutOrStdout()
		if cfg.Format == config.FormatUnified {
			if pretty.IsColorEnabled(global.color, out) {
				content = pretty.NewStyles(true).FormatUnified(content)
			}
		} else if isTerminal(out) {
			logger.Warn("writing HTML to a terminal; use -o FILE to save it")
		}
		if _, err := io.WriteString(out, content); err != nil {
			return errors.Join(ErrWrite, err)
		}
		return nil
	}

	if config.BoolValue(cfg.Backup) {
		if _, err := fsutil.CreateBackup(ctx, output); err != nil {
			return errors.Join(ErrWrite, err)
		}
	}
	if err := fsutil.WriteAtomic(ctx, output, []byte(content), fsutil.DefaultFileMode); err != nil {
		return errors.Join(ErrWrite, err)
	}

	logger.Info("wrote diff", logging.FieldOutput, output)
	return nil
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
