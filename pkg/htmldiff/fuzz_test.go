package htmldiff_test

import (
	"testing"

	"github.com/yaklabco/htmldiff/pkg/htmldiff"
)

func FuzzTokenize(f *testing.F) {
	seeds := []string{
		"",
		"<p>Hello, world</p>",
		"<!-- c -->text",
		"<script>1 < 2</script>",
		"a &nbsp; b",
		"<unterminated",
	}
	for _, seed := range seeds {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, input string) {
		want := htmldiff.StripComments(input)
		if got := htmldiff.Join(htmldiff.Tokenize(input)); got != want {
			t.Fatalf("Join(Tokenize(%q)) = %q, want %q", input, got, want)
		}
	})
}

func FuzzOpcodesPartition(f *testing.F) {
	f.Add("<p>a b c</p>", "<p>a c d</p>", true)
	f.Add("the cat", "a dog", false)
	f.Add("", "x", true)

	f.Fuzz(func(t *testing.T, oldDoc, newDoc string, accurate bool) {
		opts := htmldiff.DefaultOptions()
		opts.AccurateMode = accurate
		a, b, opcodes := htmldiff.Compare(oldDoc, newDoc, opts)
		if err := checkPartition(opcodes, len(a), len(b)); err != "" {
			t.Fatal(err)
		}
	})
}
