package htmldiff_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/htmldiff/pkg/htmldiff"
)

func TestIsInvisibleChange(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a, b string
		want bool
	}{
		{name: "attribute change", a: `<p class="a">`, b: `<p class="b">`, want: true},
		{name: "tag name case", a: `<P>`, b: `<p id="x">`, want: true},
		{name: "closing tags", a: `</div>`, b: `</DIV >`, want: true},
		{name: "self closing attribute change", a: `<br/>`, b: `<br class="x" />`, want: true},
		{name: "whitespace change", a: " ", b: "&nbsp;\n", want: true},
		{name: "mixed sequence", a: `<a href="1">x</a> y`, b: `<a href="2">x</a>` + "\ty", want: true},
		{name: "different element", a: `<b>`, b: `<i>`, want: false},
		{name: "open versus close", a: `<p>`, b: `</p>`, want: false},
		{name: "word change", a: "cat", b: "dog", want: false},
		{name: "tag versus word", a: "<p>", b: "p", want: false},
		{name: "length mismatch", a: "a b", b: "a", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := htmldiff.IsInvisibleChange(htmldiff.Tokenize(tt.a), htmldiff.Tokenize(tt.b))
			assert.Equal(t, tt.want, got)
		})
	}
}
