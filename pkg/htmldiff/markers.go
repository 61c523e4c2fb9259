package htmldiff

import (
	"fmt"
	"html"
)

// MarkerStyle names a Markers preset.
type MarkerStyle string

const (
	// MarkerSpan wraps changes in classed spans (default).
	MarkerSpan MarkerStyle = "span"

	// MarkerBracket wraps changed text in [+ +] and [- -].
	MarkerBracket MarkerStyle = "bracket"

	// MarkerNoTags uses span markers for text and hides changed tags.
	MarkerNoTags MarkerStyle = "notags"
)

// Span marker strings. The side-by-side transform searches for these.
const (
	insertSpanOpen = `<span class="insert">`
	deleteSpanOpen = `<span class="delete">`
	spanClose      = `</span>`
)

// Markers controls how the renderer decorates changes.
type Markers struct {
	InsertStart string
	InsertEnd   string
	DeleteStart string
	DeleteEnd   string

	// InsertTag and DeleteTag render the notice shown for an added or
	// removed tag. They receive the raw tag text.
	InsertTag func(tag string) string
	DeleteTag func(tag string) string
}

// SpanMarkers returns the default span-based markers.
func SpanMarkers() Markers {
	return Markers{
		InsertStart: insertSpanOpen,
		InsertEnd:   spanClose,
		DeleteStart: deleteSpanOpen,
		DeleteEnd:   spanClose,
		InsertTag:   tagNotice("tagInsert", "insert"),
		DeleteTag:   tagNotice("tagDelete", "delete"),
	}
}

// BracketMarkers returns plain-text markers for renderers without CSS.
func BracketMarkers() Markers {
	markers := SpanMarkers()
	markers.InsertStart, markers.InsertEnd = "[+", "+]"
	markers.DeleteStart, markers.DeleteEnd = "[-", "-]"
	return markers
}

// NoTagMarkers returns span markers that do not announce tag changes.
func NoTagMarkers() Markers {
	markers := SpanMarkers()
	markers.InsertTag = func(string) string { return "" }
	markers.DeleteTag = func(string) string { return "" }
	return markers
}

// MarkersFor returns the preset for style. Unknown styles return false.
func MarkersFor(style MarkerStyle) (Markers, bool) {
	switch style {
	case MarkerSpan, "":
		return SpanMarkers(), true
	case MarkerBracket:
		return BracketMarkers(), true
	case MarkerNoTags:
		return NoTagMarkers(), true
	default:
		return Markers{}, false
	}
}

// MarkerStyles lists the preset names.
func MarkerStyles() []MarkerStyle {
	return []MarkerStyle{MarkerSpan, MarkerBracket, MarkerNoTags}
}

func tagNotice(class, verb string) func(string) string {
	return func(tag string) string {
		return fmt.Sprintf(`<span class="%s">%s: <tt>%s</tt></span>`, class, verb, html.EscapeString(tag))
	}
}
