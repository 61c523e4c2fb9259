package document

import (
	"bytes"
	"slices"

	"github.com/go-enry/go-enry/v2"
)

// Language names as reported by go-enry.
const (
	enryHTML     = "HTML"
	enryMarkdown = "Markdown"
)

// DetectKind classifies an input as HTML or Markdown. The file extension is
// consulted first, then markup patterns, then the go-enry classifier.
// Anything undecided is HTML.
func DetectKind(path string, content []byte) Kind {
	// Strategy 1: extension.
	langs := enry.GetLanguagesByExtension(path, content, nil)
	switch {
	case slices.Contains(langs, enryHTML):
		return KindHTML
	case slices.Contains(langs, enryMarkdown):
		return KindMarkdown
	}

	trimmed := bytes.TrimSpace(content)
	if len(trimmed) == 0 {
		return KindHTML
	}

	// Strategy 2: patterns.
	if looksLikeHTML(trimmed) {
		return KindHTML
	}
	if looksLikeMarkdown(content) {
		return KindMarkdown
	}

	// Strategy 3: classifier.
	if lang, _ := enry.GetLanguageByClassifier(content, []string{enryHTML, enryMarkdown}); lang == enryMarkdown {
		return KindMarkdown
	}
	return KindHTML
}

func looksLikeHTML(trimmed []byte) bool {
	lower := bytes.ToLower(trimmed)
	return bytes.HasPrefix(lower, []byte("<!doctype html")) ||
		bytes.Contains(lower, []byte("<html")) ||
		bytes.Contains(lower, []byte("<head")) ||
		bytes.Contains(lower, []byte("<body"))
}

// looksLikeMarkdown counts lines that only make sense as Markdown.
func looksLikeMarkdown(content []byte) bool {
	score := 0
	for line := range bytes.Lines(content) {
		line = bytes.TrimRight(line, "\r\n")
		switch {
		case bytes.HasPrefix(line, []byte("# ")), bytes.HasPrefix(line, []byte("## ")),
			bytes.HasPrefix(line, []byte("### ")):
			score++
		case bytes.HasPrefix(line, []byte("```")), bytes.HasPrefix(line, []byte("~~~")):
			score++
		case bytes.HasPrefix(line, []byte("- ")), bytes.HasPrefix(line, []byte("* ")),
			bytes.HasPrefix(line, []byte("> ")):
			score++
		case bytes.Contains(line, []byte("](")):
			score++
		}
		if score >= 2 {
			return true
		}
	}
	return false
}
