// Package runner compares two directory trees of documents.
//
// Files are discovered in both trees, paired by relative path, and every
// pair present on both sides is diffed on a worker pool. The annotated
// output is written under an output directory that mirrors the trees.
package runner

import (
	"github.com/yaklabco/htmldiff/pkg/config"
	"github.com/yaklabco/htmldiff/pkg/document"
	"github.com/yaklabco/htmldiff/pkg/htmldiff"
)

// Options controls a batch comparison.
type Options struct {
	// OldDir and NewDir are the roots of the two trees.
	OldDir string
	NewDir string

	// OutDir receives one output file per compared pair, at the pair's
	// relative path plus the format's extension. Empty means no output is
	// written; pairs are still compared and reported.
	OutDir string

	// Extensions is the set of file extensions (lowercase, with leading dot)
	// considered documents. Defaults to DefaultExtensions().
	Extensions []string

	// ExcludeGlobs are glob patterns, relative to each tree root, used to
	// skip files or directories.
	ExcludeGlobs []string

	// FollowSymlinks controls whether directory symlinks are traversed.
	FollowSymlinks bool

	// Jobs controls the maximum number of concurrent workers.
	// 0 or negative means "auto" (runtime.NumCPU()).
	Jobs int

	// Format selects annotated HTML or a unified text diff per pair.
	// Empty means config.FormatHTML.
	Format config.OutputFormat

	// Backup keeps a copy of an output file before it is overwritten.
	Backup bool

	// Diff configures the comparison of each pair.
	Diff htmldiff.Options

	// Document configures how both sides are loaded.
	Document document.Options
}

// DefaultExtensions returns the default set of document file extensions.
func DefaultExtensions() []string {
	return append([]string(nil), config.DefaultExtensions...)
}

// effectiveExtensions returns the extensions to use, defaulting if empty.
func (o Options) effectiveExtensions() []string {
	if len(o.Extensions) == 0 {
		return DefaultExtensions()
	}
	return o.Extensions
}

// outputSuffix is appended to a pair's relative path to name its output.
func (o Options) outputSuffix() string {
	if o.Format == config.FormatUnified {
		return ".diff"
	}
	return ".html"
}
