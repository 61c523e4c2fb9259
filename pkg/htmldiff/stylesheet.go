package htmldiff

import "strings"

// Stylesheet is the CSS injected into every rendered document.
const Stylesheet = `.insert {
	background-color: #AFA
}
.delete {
	background-color: #F88;
	text-decoration: line-through;
}
.tagInsert {
	background-color: #070;
	color: #FFF
}
.tagDelete {
	background-color: #700;
	color: #FFF
}
`

// InsertStylesheet places a <style> element holding css right after the first
// <head> tag of doc, or at the start of doc when it has no head.
func InsertStylesheet(doc, css string) string {
	pos := 0
	if loc := headRE.FindStringIndex(doc); loc != nil {
		pos = loc[1]
	}

	var builder strings.Builder
	builder.Grow(len(doc) + len(css) + 40)
	builder.WriteString(doc[:pos])
	builder.WriteString("\n<style type=\"text/css\">\n")
	builder.WriteString(css)
	builder.WriteString("</style>")
	builder.WriteString(doc[pos:])
	return builder.String()
}
