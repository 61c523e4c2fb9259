package htmldiff

import "strings"

// IsInvisibleChange reports whether replacing a with b changes nothing a
// reader would see: both slices have the same length and, position by
// position, the tokens are the same element with different attributes,
// both whitespace, or identical.
func IsInvisibleChange(a, b []Token) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].IsTag() && b[i].IsTag() && sameElement(a[i].Text, b[i].Text) {
			continue
		}
		if a[i].IsWhitespace() && b[i].IsWhitespace() {
			continue
		}
		if a[i].Text != b[i].Text {
			return false
		}
	}
	return true
}

// sameElement reports whether two tags open (or close) the same element.
func sameElement(a, b string) bool {
	nameA, closingA := tagName(a)
	nameB, closingB := tagName(b)
	return closingA == closingB && strings.EqualFold(nameA, nameB)
}

// tagName returns the element name of a tag and whether it is a closing tag.
// Declarations such as <!DOCTYPE html> yield "!doctype".
func tagName(tag string) (string, bool) {
	name := strings.TrimPrefix(tag, "<")
	name = strings.TrimLeft(name, " \t\r\n")
	closing := strings.HasPrefix(name, "/")
	if closing {
		name = strings.TrimLeft(name[1:], " \t\r\n")
	}
	if end := strings.IndexAny(name, " \t\r\n/>"); end >= 0 {
		name = name[:end]
	}
	return name, closing
}
