package cli_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/htmldiff/internal/cli"
	"github.com/yaklabco/htmldiff/pkg/fsutil"
	"github.com/yaklabco/htmldiff/pkg/htmldiff"
	"github.com/yaklabco/htmldiff/pkg/reporter"
)

const (
	oldPage = "<html><body><p>Hello world</p></body></html>\n"
	newPage = "<html><body><p>Hello there world</p></body></html>\n"
)

// execute runs the root command with an isolated config file appended to
// args and returns what it wrote.
func execute(t *testing.T, configYAML string, args ...string) (string, string, error) {
	t.Helper()

	cfgFile := filepath.Join(t.TempDir(), ".htmldiff.yml")
	require.NoError(t, os.WriteFile(cfgFile, []byte(configYAML), 0o644))

	cmd := cli.NewRootCommand(testInfo())

	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append(args, "--config", cfgFile))

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

const quiet = "log_level: error\n"

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, filepath.FromSlash(name))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func pagePair(t *testing.T) (string, string) {
	t.Helper()

	dir := t.TempDir()
	return writeFile(t, dir, "old.html", oldPage), writeFile(t, dir, "new.html", newPage)
}

func TestIntegration_DiffToStdout(t *testing.T) {
	t.Parallel()

	oldPath, newPath := pagePair(t)

	stdout, _, err := execute(t, quiet, "diff", oldPath, newPath)
	require.NoError(t, err)

	assert.Contains(t, stdout, `<span class="insert">`)
	assert.Contains(t, stdout, "there")
	assert.Contains(t, stdout, "<style")
}

func TestIntegration_DiffNoStylesheet(t *testing.T) {
	t.Parallel()

	oldPath, newPath := pagePair(t)

	stdout, _, err := execute(t, quiet, "diff", "--no-stylesheet", oldPath, newPath)
	require.NoError(t, err)

	assert.NotContains(t, stdout, "<style")
}

func TestIntegration_DiffBracketMarkers(t *testing.T) {
	t.Parallel()

	oldPath, newPath := pagePair(t)

	stdout, _, err := execute(t, quiet, "diff", "--markers", "bracket", oldPath, newPath)
	require.NoError(t, err)

	assert.Contains(t, stdout, "[+")
	assert.NotContains(t, stdout, `<span class="insert">`)
}

func TestIntegration_DiffConfigFileSetsMarkers(t *testing.T) {
	t.Parallel()

	oldPath, newPath := pagePair(t)

	stdout, _, err := execute(t, quiet+"markers: bracket\n", "diff", oldPath, newPath)
	require.NoError(t, err)
	assert.Contains(t, stdout, "[+")

	// Flags override the config file.
	stdout, _, err = execute(t, quiet+"markers: bracket\n", "diff", "--markers", "span", oldPath, newPath)
	require.NoError(t, err)
	assert.Contains(t, stdout, `<span class="insert">`)
}

func TestIntegration_DiffOutputFile(t *testing.T) {
	t.Parallel()

	oldPath, newPath := pagePair(t)
	output := filepath.Join(t.TempDir(), "out", "diff.html")

	stdout, _, err := execute(t, quiet, "diff", "-o", output, oldPath, newPath)
	require.NoError(t, err)
	assert.Empty(t, stdout)

	content, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(content), `<span class="insert">`)

	// A second run with --backup keeps the previous result aside.
	_, _, err = execute(t, quiet, "diff", "--backup", "-o", output, oldPath, oldPath)
	require.NoError(t, err)

	backup, err := os.ReadFile(fsutil.BackupPath(output))
	require.NoError(t, err)
	assert.Equal(t, string(content), string(backup))
}

func TestIntegration_DiffUnified(t *testing.T) {
	t.Parallel()

	oldPath, newPath := pagePair(t)

	stdout, _, err := execute(t, quiet, "diff", "--format", "unified", oldPath, newPath)
	require.NoError(t, err)

	assert.Contains(t, stdout, "--- "+oldPath)
	assert.Contains(t, stdout, "+++ "+newPath)
	assert.Contains(t, stdout, "-"+oldPage)
	assert.Contains(t, stdout, "+"+newPage)
}

func TestIntegration_DiffMarkdown(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	oldPath := writeFile(t, dir, "old.md", "# Title\n\nHello world.\n")
	newPath := writeFile(t, dir, "new.md", "# Title\n\nHello brave world.\n")

	stdout, _, err := execute(t, quiet, "diff", oldPath, newPath)
	require.NoError(t, err)

	assert.Contains(t, stdout, "<body")
	assert.Contains(t, stdout, `<span class="insert">`)
	assert.Contains(t, stdout, "brave")
}

func TestIntegration_DiffSideBySide(t *testing.T) {
	t.Parallel()

	oldPath, newPath := pagePair(t)

	stdout, _, err := execute(t, quiet, "diff", "-s", oldPath, newPath)
	require.NoError(t, err)

	assert.Contains(t, stdout, `<div id="left"`)
	assert.Contains(t, stdout, `<div id="right"`)
}

func TestIntegration_DiffSideBySideNeedsBody(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	oldPath := writeFile(t, dir, "old.html", "<p>one</p>")
	newPath := writeFile(t, dir, "new.html", "<p>two</p>")

	_, _, err := execute(t, quiet, "diff", "-s", oldPath, newPath)
	require.Error(t, err)

	var structural *htmldiff.StructuralError
	require.ErrorAs(t, err, &structural)
	assert.Equal(t, cli.ExitDiffFailed, cli.ExitCode(err))
}

func TestIntegration_DiffMissingInput(t *testing.T) {
	t.Parallel()

	oldPath, _ := pagePair(t)

	_, _, err := execute(t, quiet, "diff", oldPath, filepath.Join(t.TempDir(), "missing.html"))
	require.Error(t, err)

	assert.ErrorIs(t, err, fsutil.ErrNotFound)
	assert.Equal(t, cli.ExitNoInput, cli.ExitCode(err))
}

func TestIntegration_DiffExitCode(t *testing.T) {
	t.Parallel()

	oldPath, newPath := pagePair(t)

	_, _, err := execute(t, quiet, "diff", "--exit-code", oldPath, newPath)
	require.ErrorIs(t, err, cli.ErrDifferencesFound)
	assert.Equal(t, cli.ExitDiffFailed, cli.ExitCode(err))

	_, _, err = execute(t, quiet, "diff", "--exit-code", oldPath, oldPath)
	require.NoError(t, err)
}

func TestIntegration_DiffStats(t *testing.T) {
	t.Parallel()

	oldPath, newPath := pagePair(t)

	_, stderr, err := execute(t, quiet, "diff", "--stats", oldPath, newPath)
	require.NoError(t, err)

	assert.Contains(t, stderr, "similar")
}

func TestIntegration_InvalidConfig(t *testing.T) {
	t.Parallel()

	oldPath, newPath := pagePair(t)

	_, _, err := execute(t, quiet+"markers: fancy\n", "diff", oldPath, newPath)
	require.Error(t, err)
	assert.Equal(t, cli.ExitConfigError, cli.ExitCode(err))

	_, _, err = execute(t, quiet, "diff", "--granularity", "line", "-s", oldPath, newPath)
	require.Error(t, err)
	assert.Equal(t, cli.ExitConfigError, cli.ExitCode(err))
}

func TestIntegration_InvalidUsage(t *testing.T) {
	t.Parallel()

	oldPath, newPath := pagePair(t)

	tests := []struct {
		name string
		args []string
	}{
		{"unknown flag", []string{"diff", "--no-such-flag", oldPath, newPath}},
		{"missing argument", []string{"diff", oldPath}},
		{"bad color", []string{"diff", "--color", "rainbow", oldPath, newPath}},
		{"bad log level", []string{"diff", "--log-level", "loud", oldPath, newPath}},
		{"unknown command", []string{"merge"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, _, err := execute(t, quiet, tt.args...)
			require.Error(t, err)
			assert.Equal(t, cli.ExitInvalidUsage, cli.ExitCode(err))
		})
	}
}

func TestIntegration_LogFile(t *testing.T) {
	t.Parallel()

	oldPath, newPath := pagePair(t)
	logFile := filepath.Join(t.TempDir(), "logs", "htmldiff.log")

	_, _, err := execute(t, quiet, "diff", "--debug", "--log-file", logFile, oldPath, newPath)
	require.NoError(t, err)

	content, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(content), "diff complete")
}

func newTrees(t *testing.T) (string, string) {
	t.Helper()

	root := t.TempDir()
	oldDir := filepath.Join(root, "old")
	newDir := filepath.Join(root, "new")

	writeFile(t, oldDir, "index.html", oldPage)
	writeFile(t, newDir, "index.html", newPage)
	writeFile(t, oldDir, "same.html", oldPage)
	writeFile(t, newDir, "same.html", oldPage)
	writeFile(t, oldDir, "gone.html", oldPage)
	writeFile(t, newDir, "docs/fresh.html", newPage)

	return oldDir, newDir
}

func TestIntegration_BatchJSON(t *testing.T) {
	t.Parallel()

	oldDir, newDir := newTrees(t)
	outDir := filepath.Join(t.TempDir(), "diffs")

	stdout, _, err := execute(t, quiet, "batch", oldDir, newDir, "-O", outDir, "--report", "json")
	require.NoError(t, err)

	var report reporter.JSONOutput
	require.NoError(t, json.Unmarshal([]byte(stdout), &report))

	assert.Equal(t, 4, report.Summary.FilesCompared)
	assert.Equal(t, 1, report.Summary.Changed)
	assert.Equal(t, 1, report.Summary.Unchanged)
	assert.Equal(t, 1, report.Summary.Added)
	assert.Equal(t, 1, report.Summary.Removed)

	content, err := os.ReadFile(filepath.Join(outDir, "index.html.html"))
	require.NoError(t, err)
	assert.Contains(t, string(content), `<span class="insert">`)

	assert.FileExists(t, filepath.Join(outDir, "same.html.html"))
	assert.NoFileExists(t, filepath.Join(outDir, "gone.html.html"))
}

func TestIntegration_BatchText(t *testing.T) {
	t.Parallel()

	oldDir, newDir := newTrees(t)

	stdout, _, err := execute(t, quiet, "batch", oldDir, newDir)
	require.NoError(t, err)

	assert.Contains(t, stdout, "index.html")
	assert.Contains(t, stdout, "docs/fresh.html")
	assert.Contains(t, stdout, "gone.html")
	assert.Contains(t, stdout, "4 files compared")
}

func TestIntegration_BatchTable(t *testing.T) {
	t.Parallel()

	oldDir, newDir := newTrees(t)

	stdout, _, err := execute(t, quiet, "batch", oldDir, newDir, "--report", "table")
	require.NoError(t, err)

	assert.Contains(t, stdout, "index.html")
}

func TestIntegration_BatchIgnoreAndExitCode(t *testing.T) {
	t.Parallel()

	oldDir, newDir := newTrees(t)

	_, _, err := execute(t, quiet, "batch", oldDir, newDir, "--exit-code")
	require.ErrorIs(t, err, cli.ErrDifferencesFound)

	// With every differing path ignored the trees match.
	_, _, err = execute(t, quiet, "batch", oldDir, newDir, "--exit-code",
		"--ignore", "index.html", "--ignore", "gone.html", "--ignore", "docs/**")
	require.NoError(t, err)
}

func TestIntegration_BatchMissingTree(t *testing.T) {
	t.Parallel()

	oldDir, _ := newTrees(t)

	_, _, err := execute(t, quiet, "batch", oldDir, filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)
	assert.Equal(t, cli.ExitNoInput, cli.ExitCode(err))
}

func TestIntegration_Fonts(t *testing.T) {
	t.Parallel()

	stdout, _, err := execute(t, quiet, "fonts")
	require.NoError(t, err)

	assert.Contains(t, stdout, "times new roman (default)")
}

func TestIntegration_Init(t *testing.T) {
	t.Parallel()

	output := filepath.Join(t.TempDir(), ".htmldiff.yml")

	_, _, err := execute(t, quiet, "init", "--output", output)
	require.NoError(t, err)

	content, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(content), "side_by_side:")

	_, _, err = execute(t, quiet, "init", "--output", output)
	require.Error(t, err)
	assert.Equal(t, cli.ExitIOError, cli.ExitCode(err))

	_, _, err = execute(t, quiet, "init", "--output", output, "--force")
	require.NoError(t, err)

	// The generated file is a valid configuration.
	oldPath, newPath := pagePair(t)
	_, _, err = execute(t, string(content), "diff", oldPath, newPath)
	require.NoError(t, err)
}

func TestIntegration_InitJSON(t *testing.T) {
	t.Parallel()

	output := filepath.Join(t.TempDir(), "htmldiff.json")

	_, _, err := execute(t, quiet, "init", "--format", "json", "--output", output)
	require.NoError(t, err)

	content, err := os.ReadFile(output)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(content, &decoded))
	assert.Equal(t, "times new roman", decoded["font"])

	_, _, err = execute(t, quiet, "init", "--format", "toml", "--output", output)
	var usageErr *cli.UsageError
	assert.True(t, errors.As(err, &usageErr))
}
