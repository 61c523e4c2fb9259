// Package document loads the two sides of a comparison from disk.
//
// A document is read through fsutil, decoded to UTF-8 with an encoding
// fallback chain, classified as HTML or Markdown, and, for Markdown,
// rendered to a complete HTML page so that every downstream step sees
// HTML with a <body>.
package document

import (
	"context"
	"errors"
	"fmt"

	"github.com/yaklabco/htmldiff/internal/logging"
	"github.com/yaklabco/htmldiff/pkg/fsutil"
)

// Kind is the markup language of an input.
type Kind string

const (
	// KindAuto detects the kind from the file name and content.
	KindAuto Kind = "auto"

	// KindHTML is HTML, used as is.
	KindHTML Kind = "html"

	// KindMarkdown is Markdown, rendered to HTML before comparison.
	KindMarkdown Kind = "markdown"
)

// ValidKind reports whether k names an input kind.
func ValidKind(k Kind) bool {
	switch k {
	case KindAuto, KindHTML, KindMarkdown, "":
		return true
	default:
		return false
	}
}

// Options controls how documents are loaded.
type Options struct {
	// Kind forces the input kind. Empty or KindAuto detects it.
	Kind Kind

	// Encodings lists the fallback encodings tried after UTF-8, by
	// WHATWG label. Nil means DefaultEncodings.
	Encodings []string
}

// Document is a loaded input.
type Document struct {
	Path string
	Kind Kind

	// Encoding is the name of the encoding the source was decoded from.
	Encoding string

	// Source is the decoded file content.
	Source string

	// HTML is the content to compare: Source for HTML inputs, the rendered
	// page for Markdown inputs.
	HTML string

	Info *fsutil.FileInfo
}

// Load reads, decodes and, if needed, renders the file at path.
func Load(ctx context.Context, path string, opts Options) (*Document, error) {
	content, info, err := fsutil.ReadFile(ctx, path)
	if err != nil {
		return nil, err
	}

	doc, err := FromBytes(path, content, opts)
	if err != nil {
		return nil, err
	}
	doc.Info = info

	logging.FromContext(ctx).Debug("loaded document",
		logging.FieldPath, path,
		logging.FieldKind, doc.Kind,
		logging.FieldEncoding, doc.Encoding,
		logging.FieldBytes, len(content),
	)
	return doc, nil
}

// FromBytes builds a Document from content already in memory. The path is
// used for kind detection, error messages and the Markdown page title.
func FromBytes(path string, content []byte, opts Options) (*Document, error) {
	source, encoding, err := Decode(content, opts.Encodings)
	if err != nil {
		var encErr *EncodingError
		if errors.As(err, &encErr) {
			encErr.Path = path
		}
		return nil, err
	}

	kind := opts.Kind
	if kind == "" || kind == KindAuto {
		kind = DetectKind(path, content)
	}

	doc := &Document{Path: path, Kind: kind, Encoding: encoding, Source: source, HTML: source}
	if kind == KindMarkdown {
		rendered, err := RenderMarkdown(path, []byte(source))
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", path, err)
		}
		doc.HTML = rendered
	}
	return doc, nil
}
