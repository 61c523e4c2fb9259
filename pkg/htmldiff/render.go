package htmldiff

import (
	"html"
	"strings"
)

// Renderer turns opcodes into annotated HTML.
type Renderer struct {
	Markers Markers
}

// NewRenderer returns a Renderer using markers.
func NewRenderer(markers Markers) *Renderer {
	return &Renderer{Markers: markers}
}

// Render walks opcodes over a and b and writes the annotated document.
// Equal runs are copied from a byte for byte.
func (r *Renderer) Render(a, b []Token, opcodes []Opcode) string {
	var out strings.Builder
	for _, op := range opcodes {
		switch op.Tag {
		case OpEqual:
			writeTokens(&out, a[op.I1:op.I2])
		case OpDelete:
			r.writeDelete(&out, a[op.I1:op.I2])
		case OpInsert:
			r.writeInsert(&out, b[op.J1:op.J2])
		case OpReplace:
			if IsInvisibleChange(a[op.I1:op.I2], b[op.J1:op.J2]) {
				writeTokens(&out, b[op.J1:op.J2])
				continue
			}
			r.writeDelete(&out, a[op.I1:op.I2])
			r.writeInsert(&out, b[op.J1:op.J2])
		}
	}
	return out.String()
}

// writeDelete renders removed tokens. Removed tags are announced but not
// emitted, so the output may lose a closing or opening tag.
func (r *Renderer) writeDelete(out *strings.Builder, tokens []Token) {
	var text strings.Builder
	for _, tok := range tokens {
		if tok.IsTag() {
			r.wrap(out, text.String(), r.Markers.DeleteStart, r.Markers.DeleteEnd)
			text.Reset()
			out.WriteString(r.Markers.DeleteTag(tok.Text))
			continue
		}
		text.WriteString(tok.Text)
	}
	r.wrap(out, text.String(), r.Markers.DeleteStart, r.Markers.DeleteEnd)
}

// writeInsert renders added tokens. Added tags are announced and kept.
func (r *Renderer) writeInsert(out *strings.Builder, tokens []Token) {
	var text strings.Builder
	for _, tok := range tokens {
		if tok.IsTag() {
			r.wrap(out, text.String(), r.Markers.InsertStart, r.Markers.InsertEnd)
			text.Reset()
			out.WriteString(r.Markers.InsertTag(tok.Text))
			out.WriteString(tok.Text)
			continue
		}
		text.WriteString(tok.Text)
	}
	r.wrap(out, text.String(), r.Markers.InsertStart, r.Markers.InsertEnd)
}

// wrap writes text between start and end unless it is blank.
func (r *Renderer) wrap(out *strings.Builder, text, start, end string) {
	if strings.TrimSpace(text) == "" || IsWhitespace(text) {
		out.WriteString(text)
		return
	}
	out.WriteString(start)
	out.WriteString(text)
	out.WriteString(end)
}

// RenderLines renders a line-granularity diff. Every line is escaped and
// set in a <tt> block; changed regions are wrapped whole.
func (r *Renderer) RenderLines(a, b []Token, opcodes []Opcode) string {
	var out strings.Builder
	for _, op := range opcodes {
		if op.Tag == OpEqual {
			writeLines(&out, a[op.I1:op.I2])
			continue
		}
		if op.Tag == OpDelete || op.Tag == OpReplace {
			out.WriteString(r.Markers.DeleteStart)
			writeLines(&out, a[op.I1:op.I2])
			out.WriteString(r.Markers.DeleteEnd)
		}
		if op.Tag == OpInsert || op.Tag == OpReplace {
			out.WriteString(r.Markers.InsertStart)
			writeLines(&out, b[op.J1:op.J2])
			out.WriteString(r.Markers.InsertEnd)
		}
	}
	return out.String()
}

func writeTokens(out *strings.Builder, tokens []Token) {
	for _, tok := range tokens {
		out.WriteString(tok.Text)
	}
}

func writeLines(out *strings.Builder, lines []Token) {
	for _, line := range lines {
		text := html.EscapeString(line.Text)
		text = strings.ReplaceAll(text, "  ", "&nbsp; ")
		text = strings.ReplaceAll(text, "\t", "&nbsp; &nbsp; &nbsp; &nbsp; ")
		if strings.HasPrefix(text, " ") {
			text = "&nbsp;" + text[1:]
		}
		out.WriteString("<tt>")
		out.WriteString(text)
		out.WriteString("</tt><br>\n")
	}
}
