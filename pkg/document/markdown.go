package document

import (
	"bytes"
	"fmt"
	"html"
	"path/filepath"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	gmhtml "github.com/yuin/goldmark/renderer/html"
)

// newMarkdown returns a GFM goldmark instance that passes raw HTML through.
func newMarkdown() goldmark.Markdown {
	return goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		goldmark.WithRendererOptions(gmhtml.WithUnsafe()),
	)
}

// RenderMarkdown converts Markdown source into a complete HTML page titled
// after the file name.
func RenderMarkdown(path string, source []byte) (string, error) {
	var body bytes.Buffer
	if err := newMarkdown().Convert(source, &body); err != nil {
		return "", fmt.Errorf("convert markdown: %w", err)
	}

	title := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	var page strings.Builder
	page.WriteString("<html>\n<head>\n<meta charset=\"utf-8\">\n<title>")
	page.WriteString(html.EscapeString(title))
	page.WriteString("</title>\n</head>\n<body>\n")
	page.Write(body.Bytes())
	page.WriteString("</body>\n</html>\n")
	return page.String(), nil
}
