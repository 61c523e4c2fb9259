// Package htmldiff compares two versions of an HTML document and renders a
// single document in which insertions and deletions are marked up.
//
// Documents are split into tags, words, whitespace and punctuation, aligned
// with a longest-matching-block algorithm, and rendered with configurable
// markers. Changes that only touch tag attributes or whitespace are shown
// without markup. The result can be rearranged into two side-by-side columns.
//
// All functions are safe for concurrent use; no state is shared between calls
// other than read-only tables.
package htmldiff

import (
	"fmt"

	"github.com/yaklabco/htmldiff/pkg/fontmetric"
)

// Granularity selects the unit of comparison.
type Granularity string

const (
	// GranularityWord compares tags, words, whitespace and punctuation.
	GranularityWord Granularity = "word"

	// GranularityLine compares whole lines and renders them as escaped text.
	GranularityLine Granularity = "line"
)

// Options controls a diff.
type Options struct {
	// AccurateMode disables the junk heuristic. Slower, but every token can
	// anchor an alignment.
	AccurateMode bool

	// SideBySide renders the two versions in separate columns.
	SideBySide bool

	// Font is the width table used to pad side-by-side columns.
	// Defaults to fontmetric.TimesNewRoman.
	Font string

	// Markers decorates changes. The zero value means SpanMarkers.
	Markers *Markers

	// Granularity defaults to GranularityWord.
	Granularity Granularity

	// AutoJunk ignores tokens that are very frequent in the new document
	// when choosing alignment anchors.
	AutoJunk bool

	// InsertStylesheet adds the marker CSS to the document head.
	InsertStylesheet bool
}

// DefaultOptions returns word-granularity, fast-mode, inline options with
// the stylesheet enabled.
func DefaultOptions() Options {
	return Options{
		Font:             fontmetric.TimesNewRoman,
		Granularity:      GranularityWord,
		InsertStylesheet: true,
	}
}

// Stats counts what a diff found.
type Stats struct {
	Equal     int `json:"equal"`
	Inserts   int `json:"inserts"`
	Deletes   int `json:"deletes"`
	Replaces  int `json:"replaces"`
	Invisible int `json:"invisible"`

	TokensOld      int `json:"tokens_old"`
	TokensNew      int `json:"tokens_new"`
	TokensInserted int `json:"tokens_inserted"`
	TokensDeleted  int `json:"tokens_deleted"`

	// Ratio is the similarity of the two token sequences in [0, 1]:
	// twice the unchanged tokens over the total of both sequences.
	Ratio float64 `json:"ratio"`
}

// Changed reports whether any visible change was found.
func (s Stats) Changed() bool {
	return s.Inserts+s.Deletes+s.Replaces > 0
}

// Result is the outcome of a diff.
type Result struct {
	// HTML is the rendered document.
	HTML string

	// Opcodes is the edit script over the compared tokens.
	Opcodes []Opcode

	// Stats summarizes Opcodes.
	Stats Stats
}

// Diff compares oldDoc against newDoc and renders the annotated document.
// It fails only for side-by-side output, when the annotated document has no
// <body> or the font is not registered.
func Diff(oldDoc, newDoc string, opts Options) (*Result, error) {
	markers := opts.markers()
	font := opts.Font
	if font == "" {
		font = fontmetric.TimesNewRoman
	}
	if opts.SideBySide && !fontmetric.Supported(font) {
		return nil, &fontmetric.UnsupportedFontError{Font: font}
	}

	res := inline(oldDoc, newDoc, opts, markers)
	if opts.SideBySide {
		doc, err := SideBySide(res.HTML, markers, font)
		if err != nil {
			return nil, fmt.Errorf("side-by-side: %w", err)
		}
		res.HTML = doc
	}
	return res, nil
}

// Strings is the inline shortcut: word granularity, span markers and the
// stylesheet.
func Strings(oldDoc, newDoc string, accurate bool) string {
	opts := DefaultOptions()
	opts.AccurateMode = accurate
	return inline(oldDoc, newDoc, opts, opts.markers()).HTML
}

// Compare tokenizes both documents and returns their edit script.
func Compare(oldDoc, newDoc string, opts Options) (a, b []Token, opcodes []Opcode) {
	if opts.Granularity == GranularityLine {
		a, b = SplitLines(oldDoc), SplitLines(newDoc)
	} else {
		a, b = Tokenize(oldDoc), Tokenize(newDoc)
	}
	matcher := NewMatcher(Texts(a), Texts(b), JunkFor(opts.AccurateMode), opts.AutoJunk)
	return a, b, matcher.Opcodes()
}

// inline renders the annotated document without the side-by-side step.
func inline(oldDoc, newDoc string, opts Options, markers Markers) *Result {
	a, b, opcodes := Compare(oldDoc, newDoc, opts)

	renderer := NewRenderer(markers)
	var doc string
	if opts.Granularity == GranularityLine {
		doc = renderer.RenderLines(a, b, opcodes)
	} else {
		doc = renderer.Render(a, b, opcodes)
	}
	if opts.InsertStylesheet {
		doc = InsertStylesheet(doc, Stylesheet)
	}

	return &Result{HTML: doc, Opcodes: opcodes, Stats: Summarize(a, b, opcodes)}
}

func (o Options) markers() Markers {
	if o.Markers != nil {
		return *o.Markers
	}
	return SpanMarkers()
}

// Summarize counts opcodes and changed tokens.
func Summarize(a, b []Token, opcodes []Opcode) Stats {
	stats := Stats{TokensOld: len(a), TokensNew: len(b)}
	for _, op := range opcodes {
		switch op.Tag {
		case OpEqual:
			stats.Equal++
		case OpDelete:
			stats.Deletes++
			stats.TokensDeleted += op.I2 - op.I1
		case OpInsert:
			stats.Inserts++
			stats.TokensInserted += op.J2 - op.J1
		case OpReplace:
			if op.I2-op.I1 == op.J2-op.J1 && IsInvisibleChange(a[op.I1:op.I2], b[op.J1:op.J2]) {
				stats.Invisible++
				continue
			}
			stats.Replaces++
			stats.TokensDeleted += op.I2 - op.I1
			stats.TokensInserted += op.J2 - op.J1
		}
	}
	stats.Ratio = Ratio(opcodes, len(a), len(b))
	return stats
}
