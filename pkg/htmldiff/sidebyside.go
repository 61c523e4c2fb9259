package htmldiff

import (
	"html"
	"strings"

	"github.com/yaklabco/htmldiff/pkg/fontmetric"
)

// Column markup for side-by-side output.
const (
	containerOpen = `<div id="container" style="width: 100%;">`
	leftOpen      = `<div id="left" style="clear: left; display: inline; float: left; width: 47%; ` +
		`border-right: 1px solid black; padding: 10px;">`
	rightOpen = `<div id="right" style="float: right; width: 47%; display: inline; padding: 10px;">`
	divClose  = `</div>`
)

// StructuralError reports a document that lacks the structure an operation needs.
type StructuralError struct {
	Reason string
}

// Error implements the error interface.
func (e *StructuralError) Error() string {
	return "not a full html document: " + e.Reason
}

// SplitBody divides doc into everything through the <body ...> open tag,
// the body content, and everything from </body on. The tail is empty when
// the closing tag is missing.
func SplitBody(doc string) (head, body, tail string, err error) {
	open := strings.Index(doc, "<body")
	if open < 0 {
		return "", "", "", &StructuralError{Reason: "no <body> tag"}
	}
	gt := strings.IndexByte(doc[open:], '>')
	if gt < 0 {
		return "", "", "", &StructuralError{Reason: "unterminated <body> tag"}
	}
	start := open + gt + 1

	end := len(doc)
	if closeIdx := strings.Index(doc[start:], "</body"); closeIdx >= 0 {
		end = start + closeIdx
	}
	return doc[:start], doc[start:end], doc[end:], nil
}

// SideBySide rearranges an annotated document into two floated columns. The
// left column shows the old version, with inserted text replaced by blank
// space of similar width in font; the right column shows the new version,
// with deleted text blanked the same way.
func SideBySide(doc string, markers Markers, font string) (string, error) {
	head, body, tail, err := SplitBody(doc)
	if err != nil {
		return "", err
	}

	left, err := blankMarked(body, markers.InsertStart, markers.InsertEnd, font)
	if err != nil {
		return "", err
	}
	right, err := blankMarked(body, markers.DeleteStart, markers.DeleteEnd, font)
	if err != nil {
		return "", err
	}

	var out strings.Builder
	out.Grow(len(head) + len(left) + len(right) + len(tail) + 512)
	out.WriteString(head)
	out.WriteString(containerOpen)
	out.WriteString(leftOpen)
	out.WriteString(left)
	out.WriteString(divClose)
	out.WriteString(rightOpen)
	out.WriteString(right)
	out.WriteString(divClose)
	out.WriteString(divClose)
	out.WriteString(tail)
	return out.String(), nil
}

// blankMarked replaces every start...end region of body with whitespace as
// wide as its visible text.
func blankMarked(body, start, end, font string) (string, error) {
	if start == "" {
		return body, nil
	}

	var out strings.Builder
	rest := body
	for {
		open := strings.Index(rest, start)
		if open < 0 {
			break
		}
		closeIdx := strings.Index(rest[open+len(start):], end)
		if closeIdx < 0 {
			break
		}
		stop := open + len(start) + closeIdx + len(end)

		text := visibleText(rest[open+len(start) : open+len(start)+closeIdx])
		pad, err := fontmetric.Pad(text, font)
		if err != nil {
			return "", err
		}

		out.WriteString(rest[:open])
		out.WriteString(pad)
		rest = rest[stop:]
	}
	out.WriteString(rest)
	return out.String(), nil
}

// visibleText drops tags and decodes entities.
func visibleText(fragment string) string {
	return html.UnescapeString(tagRE.ReplaceAllString(fragment, ""))
}
