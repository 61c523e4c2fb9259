package reporter_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/htmldiff/pkg/htmldiff"
	"github.com/yaklabco/htmldiff/pkg/reporter"
	"github.com/yaklabco/htmldiff/pkg/runner"
)

func sampleResult() *runner.Result {
	return &runner.Result{
		Files: []runner.FileOutcome{
			{
				Pair:    runner.Pair{Rel: "a.html", Old: "old/a.html", New: "new/a.html"},
				Status:  runner.StatusChanged,
				Stats:   htmldiff.Stats{Replaces: 1, TokensInserted: 1, TokensDeleted: 1, Ratio: 0.8},
				Output:  "out/a.html.html",
				Written: true,
			},
			{
				Pair:   runner.Pair{Rel: "b.html", New: "new/b.html"},
				Status: runner.StatusAdded,
			},
			{
				Pair:   runner.Pair{Rel: "c.html", Old: "old/c.html", New: "new/c.html"},
				Status: runner.StatusFailed,
				Error:  errors.New("c.html: load old: boom"),
			},
			{
				Pair:      runner.Pair{Rel: "d.html", Old: "old/d.html", New: "new/d.html"},
				Status:    runner.StatusUnchanged,
				Identical: true,
				Stats:     htmldiff.Stats{Equal: 1, Ratio: 1},
			},
			{
				Pair:   runner.Pair{Rel: "e.html", Old: "old/e.html"},
				Status: runner.StatusRemoved,
			},
		},
		Stats: runner.Stats{
			Pairs: 5, Changed: 1, Added: 1, Failed: 1, Unchanged: 1, Removed: 1,
			Written: 1, TokensInserted: 1, TokensDeleted: 1,
		},
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    reporter.Format
		wantErr bool
	}{
		{name: "empty defaults to text", input: "", want: reporter.FormatText},
		{name: "text", input: "text", want: reporter.FormatText},
		{name: "table", input: "table", want: reporter.FormatTable},
		{name: "json", input: "json", want: reporter.FormatJSON},
		{name: "summary", input: "summary", want: reporter.FormatSummary},
		{name: "unknown format", input: "sarif", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := reporter.ParseFormat(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.True(t, got.IsValid())
			assert.Equal(t, tt.want.String(), string(got))
		})
	}

	assert.False(t, reporter.Format("").IsValid())
}

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		format  reporter.Format
		wantErr bool
	}{
		{name: "text reporter", format: reporter.FormatText},
		{name: "table reporter", format: reporter.FormatTable},
		{name: "json reporter", format: reporter.FormatJSON},
		{name: "summary reporter", format: reporter.FormatSummary},
		{name: "empty defaults to text", format: ""},
		{name: "unknown format", format: "xml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rep, err := reporter.New(reporter.Options{Writer: &bytes.Buffer{}, Format: tt.format})
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, rep)
		})
	}
}

func TestTextReporter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	rep := reporter.NewTextReporter(reporter.Options{Writer: &buf, Color: "never", ShowSummary: true})

	count, err := rep.Report(context.Background(), sampleResult())
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	want := "changed   a.html (+1 -1 tokens, 80% similar)\n" +
		"added     b.html\n" +
		"failed    c.html: load old: boom\n" +
		"removed   e.html\n" +
		"1 changed, 1 added, 1 removed, 1 unchanged, 1 failed (5 files compared)\n"
	assert.Equal(t, want, buf.String())
}

func TestTextReporter_ShowUnchanged(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	rep := reporter.NewTextReporter(reporter.Options{Writer: &buf, Color: "never", ShowUnchanged: true})

	_, err := rep.Report(context.Background(), sampleResult())
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "unchanged d.html\n")
	assert.NotContains(t, buf.String(), "files compared")
}

func TestTextReporter_Empty(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	rep := reporter.NewTextReporter(reporter.Options{Writer: &buf, Color: "never", ShowSummary: true})

	count, err := rep.Report(context.Background(), &runner.Result{})
	require.NoError(t, err)
	assert.Zero(t, count)
	assert.Equal(t, "No files to compare.\n", buf.String())
}

func TestJSONReporter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	rep := reporter.NewJSONReporter(reporter.Options{Writer: &buf})

	count, err := rep.Report(context.Background(), sampleResult())
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	var output reporter.JSONOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &output))

	assert.Equal(t, "1.0.0", output.Version)
	require.Len(t, output.Files, 5)

	changed := output.Files[0]
	assert.Equal(t, "a.html", changed.Path)
	assert.Equal(t, runner.StatusChanged, changed.Status)
	require.NotNil(t, changed.Stats)
	assert.InDelta(t, 0.8, changed.Stats.Ratio, 1e-9)
	assert.Equal(t, "out/a.html.html", changed.Output)
	assert.True(t, changed.Written)

	added := output.Files[1]
	assert.Nil(t, added.Stats)
	assert.Empty(t, added.Old)
	assert.Equal(t, "new/b.html", added.New)

	assert.Equal(t, "c.html: load old: boom", output.Files[2].Error)
	assert.True(t, output.Files[3].Identical)

	assert.Equal(t, reporter.JSONSummary{
		FilesCompared: 5, Changed: 1, Unchanged: 1, Added: 1, Removed: 1, Failed: 1,
		Written: 1, TokensInserted: 1, TokensDeleted: 1,
	}, output.Summary)
}

func TestJSONReporter_CompactAndNil(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	rep := reporter.NewJSONReporter(reporter.Options{Writer: &buf, Compact: true})

	count, err := rep.Report(context.Background(), nil)
	require.NoError(t, err)
	assert.Zero(t, count)

	out := strings.TrimSpace(buf.String())
	assert.NotContains(t, out, "\n")
	assert.Contains(t, out, `"files":[]`)
}

func TestTableReporter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	rep := reporter.NewTableReporter(reporter.Options{
		Writer:      &buf,
		Color:       "never",
		ShowSummary: true,
		Duration:    "5ms",
	})

	count, err := rep.Report(context.Background(), sampleResult())
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	out := buf.String()
	assert.Contains(t, out, "FILE")
	assert.Contains(t, out, "a.html")
	assert.Contains(t, out, "80%")
	assert.NotContains(t, out, "d.html")
	assert.Contains(t, out, " 5 files compared | 1 changed | 1 added | 1 removed | 1 failed | 5ms")
}

func TestTableReporter_AllMatch(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	rep := reporter.NewTableReporter(reporter.Options{Writer: &buf, Color: "never", ShowSummary: true})

	result := &runner.Result{
		Files: []runner.FileOutcome{{Pair: runner.Pair{Rel: "a.html", Old: "a", New: "b"}, Status: runner.StatusUnchanged}},
		Stats: runner.Stats{Pairs: 1, Unchanged: 1},
	}
	count, err := rep.Report(context.Background(), result)
	require.NoError(t, err)
	assert.Zero(t, count)
	assert.Equal(t, "All files match!\n1 files compared\n", buf.String())
}

func TestSummaryReporter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	rep, err := reporter.New(reporter.Options{
		Writer:   &buf,
		Format:   reporter.FormatSummary,
		Color:    "never",
		Duration: "1.2s",
	})
	require.NoError(t, err)

	count, err := rep.Report(context.Background(), sampleResult())
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	out := buf.String()
	assert.Contains(t, out, "Files compared:    5")
	assert.Contains(t, out, "Comparison failed for some files")
	assert.Contains(t, out, "Completed in 1.2s")
	assert.NotContains(t, out, "a.html")
}
