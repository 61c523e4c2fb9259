package runner

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
)

// Pair is a relative path and where it exists in the two trees.
type Pair struct {
	// Rel is the slash-separated path relative to both tree roots.
	Rel string

	// Old and New are the file paths in each tree, empty when the file is
	// missing on that side.
	Old string
	New string
}

// InBoth reports whether the file exists in both trees.
func (p Pair) InBoth() bool {
	return p.Old != "" && p.New != ""
}

// PairTrees discovers documents in opts.OldDir and opts.NewDir and pairs
// them by relative path. Pairs are sorted by Rel. An OutDir nested inside
// either tree is skipped.
func PairTrees(ctx context.Context, opts Options) ([]Pair, error) {
	oldFiles, err := Discover(ctx, opts.OldDir, withOutDirExcluded(opts, opts.OldDir))
	if err != nil {
		return nil, fmt.Errorf("discover old tree: %w", err)
	}
	newFiles, err := Discover(ctx, opts.NewDir, withOutDirExcluded(opts, opts.NewDir))
	if err != nil {
		return nil, fmt.Errorf("discover new tree: %w", err)
	}

	pairs := make([]Pair, 0, max(len(oldFiles), len(newFiles)))
	oldIdx, newIdx := 0, 0
	for oldIdx < len(oldFiles) || newIdx < len(newFiles) {
		switch {
		case newIdx == len(newFiles) || (oldIdx < len(oldFiles) && oldFiles[oldIdx] < newFiles[newIdx]):
			rel := oldFiles[oldIdx]
			pairs = append(pairs, Pair{Rel: rel, Old: join(opts.OldDir, rel)})
			oldIdx++
		case oldIdx == len(oldFiles) || newFiles[newIdx] < oldFiles[oldIdx]:
			rel := newFiles[newIdx]
			pairs = append(pairs, Pair{Rel: rel, New: join(opts.NewDir, rel)})
			newIdx++
		default:
			rel := oldFiles[oldIdx]
			pairs = append(pairs, Pair{Rel: rel, Old: join(opts.OldDir, rel), New: join(opts.NewDir, rel)})
			oldIdx++
			newIdx++
		}
	}
	return pairs, nil
}

func join(root, rel string) string {
	return filepath.Join(root, filepath.FromSlash(rel))
}

// withOutDirExcluded adds an exclude pattern for OutDir when it lies
// inside root, so earlier outputs are never compared.
func withOutDirExcluded(opts Options, root string) Options {
	if opts.OutDir == "" {
		return opts
	}
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return opts
	}
	absOut, err := filepath.Abs(opts.OutDir)
	if err != nil {
		return opts
	}
	rel, err := filepath.Rel(absRoot, absOut)
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return opts
	}

	excludes := make([]string, 0, len(opts.ExcludeGlobs)+1)
	excludes = append(excludes, opts.ExcludeGlobs...)
	opts.ExcludeGlobs = append(excludes, filepath.ToSlash(rel)+"/**")
	return opts
}
