package htmldiff_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/htmldiff/pkg/htmldiff"
)

func render(t *testing.T, oldDoc, newDoc string, accurate bool, markers htmldiff.Markers) string {
	t.Helper()

	a, b := htmldiff.Tokenize(oldDoc), htmldiff.Tokenize(newDoc)
	opcodes := htmldiff.NewMatcher(htmldiff.Texts(a), htmldiff.Texts(b), htmldiff.JunkFor(accurate), false).Opcodes()
	return htmldiff.NewRenderer(markers).Render(a, b, opcodes)
}

func TestRender(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		oldDoc   string
		newDoc   string
		accurate bool
		markers  htmldiff.Markers
		want     string
	}{
		{
			name:     "word replaced",
			oldDoc:   "test1",
			newDoc:   "test2",
			accurate: true,
			markers:  htmldiff.SpanMarkers(),
			want:     `<span class="delete">test1</span><span class="insert">test2</span>`,
		},
		{
			name:    "fast mode anchors on trailing whitespace",
			oldDoc:  "test1 ",
			newDoc:  "test2 ",
			markers: htmldiff.SpanMarkers(),
			want:    `<span class="delete">test1</span><span class="insert">test2</span> `,
		},
		{
			name:    "identical input is copied",
			oldDoc:  "test1 ",
			newDoc:  "test1 ",
			markers: htmldiff.SpanMarkers(),
			want:    "test1 ",
		},
		{
			name:     "middle word replaced",
			oldDoc:   "a b c",
			newDoc:   "a x c",
			accurate: true,
			markers:  htmldiff.SpanMarkers(),
			want:     `a <span class="delete">b</span><span class="insert">x</span> c`,
		},
		{
			name:     "appended text",
			oldDoc:   "a",
			newDoc:   "a b",
			accurate: true,
			markers:  htmldiff.SpanMarkers(),
			want:     `a<span class="insert"> b</span>`,
		},
		{
			name:     "whitespace insert is not marked",
			oldDoc:   "a",
			newDoc:   "a ",
			accurate: true,
			markers:  htmldiff.SpanMarkers(),
			want:     "a ",
		},
		{
			name:     "element changed",
			oldDoc:   "<b>test1</b>",
			newDoc:   "<i>test1</i>",
			accurate: true,
			markers:  htmldiff.SpanMarkers(),
			want: `<span class="tagDelete">delete: <tt>&lt;b&gt;</tt></span>` +
				`<span class="tagInsert">insert: <tt>&lt;i&gt;</tt></span><i>test1` +
				`<span class="tagDelete">delete: <tt>&lt;/b&gt;</tt></span>` +
				`<span class="tagInsert">insert: <tt>&lt;/i&gt;</tt></span></i>`,
		},
		{
			name:     "deleted tag is announced and dropped",
			oldDoc:   "x <br>y",
			newDoc:   "x y",
			accurate: true,
			markers:  htmldiff.SpanMarkers(),
			want:     `x <span class="tagDelete">delete: <tt>&lt;br&gt;</tt></span>y`,
		},
		{
			name:     "attribute change is invisible",
			oldDoc:   `<p class="a">x</p>`,
			newDoc:   `<p class="b">x</p>`,
			accurate: true,
			markers:  htmldiff.SpanMarkers(),
			want:     `<p class="b">x</p>`,
		},
		{
			name:     "bracket markers",
			oldDoc:   "test1",
			newDoc:   "test2",
			accurate: true,
			markers:  htmldiff.BracketMarkers(),
			want:     "[-test1-][+test2+]",
		},
		{
			name:     "no tag markers keep inserted tags",
			oldDoc:   "<b>test1</b>",
			newDoc:   "<i>test1</i>",
			accurate: true,
			markers:  htmldiff.NoTagMarkers(),
			want:     "<i>test1</i>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, render(t, tt.oldDoc, tt.newDoc, tt.accurate, tt.markers))
		})
	}
}

func TestRenderLines(t *testing.T) {
	t.Parallel()

	opts := htmldiff.DefaultOptions()
	opts.AccurateMode = true
	opts.Granularity = htmldiff.GranularityLine
	opts.InsertStylesheet = false

	res, err := htmldiff.Diff("a\nb", "a\nc", opts)
	assert.NoError(t, err)
	assert.Equal(t,
		"<tt>a</tt><br>\n"+
			`<span class="delete"><tt>b</tt><br>`+"\n</span>"+
			`<span class="insert"><tt>c</tt><br>`+"\n</span>",
		res.HTML)

	res, err = htmldiff.Diff("\tx\n  y\n a<b", "\tx\n  y\n a<b", opts)
	assert.NoError(t, err)
	assert.Equal(t,
		"<tt>&nbsp; &nbsp; &nbsp; &nbsp; x</tt><br>\n"+
			"<tt>&nbsp; y</tt><br>\n"+
			"<tt>&nbsp;a&lt;b</tt><br>\n",
		res.HTML)
}

func TestMarkersFor(t *testing.T) {
	t.Parallel()

	for _, style := range htmldiff.MarkerStyles() {
		markers, ok := htmldiff.MarkersFor(style)
		assert.True(t, ok, style)
		assert.NotEmpty(t, markers.InsertStart)
		assert.NotNil(t, markers.InsertTag)
	}

	markers, ok := htmldiff.MarkersFor("")
	assert.True(t, ok)
	assert.Equal(t, `<span class="insert">`, markers.InsertStart)

	_, ok = htmldiff.MarkersFor("fancy")
	assert.False(t, ok)

	assert.Equal(t, `<span class="tagInsert">insert: <tt>&lt;p class=&#34;x&#34;&gt;</tt></span>`,
		htmldiff.SpanMarkers().InsertTag(`<p class="x">`))
	assert.Empty(t, htmldiff.NoTagMarkers().DeleteTag("<p>"))
}

func TestInsertStylesheet(t *testing.T) {
	t.Parallel()

	assert.Equal(t,
		"<html><head>\n<style type=\"text/css\">\nX</style><title>t</title></head></html>",
		htmldiff.InsertStylesheet("<html><head><title>t</title></head></html>", "X"))
	assert.Equal(t,
		"<HTML>< HEAD >\n<style type=\"text/css\">\nX</style></HEAD>",
		htmldiff.InsertStylesheet("<HTML>< HEAD ></HEAD>", "X"))
	assert.Equal(t,
		"\n<style type=\"text/css\">\nX</style>abc",
		htmldiff.InsertStylesheet("abc", "X"))
	assert.Contains(t, htmldiff.Stylesheet, ".tagInsert")
}
