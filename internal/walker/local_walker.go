// Package walker implements the FileWalker interface (C12) over a local
// directory (local_walker.go) and a remote GitHub repository
// (github_walker.go).
package walker

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/ternarybob/codescribe/internal/interfaces"
)

// LocalWalker walks an on-disk directory tree, honoring configured
// directory-name and filename-prefix ignore sets.
type LocalWalker struct {
	ignoreDirs           map[string]bool
	ignoreFilenamePrefix []string
}

// NewLocalWalker builds a LocalWalker from the capture config's ignore lists.
func NewLocalWalker(ignoreDirs, ignoreFilenamePrefix []string) *LocalWalker {
	dirs := make(map[string]bool, len(ignoreDirs))
	for _, d := range ignoreDirs {
		dirs[d] = true
	}
	return &LocalWalker{ignoreDirs: dirs, ignoreFilenamePrefix: ignoreFilenamePrefix}
}

// Walk implements interfaces.FileWalker over the local filesystem. The file
// tree is consumed on demand via filepath.WalkDir — never materialized into
// an unbounded in-memory queue (spec.md §5 backpressure model).
func (w *LocalWalker) Walk(ctx context.Context, root string, visit interfaces.FileVisitor) error {
	return filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}

		if d.IsDir() {
			if path != root && w.ignoreDirs[d.Name()] {
				return filepath.SkipDir
			}
			return nil
		}

		if w.hasIgnoredPrefix(d.Name()) {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		return visit(ctx, interfaces.WalkedFile{Filepath: rel}, func() (string, error) {
			data, err := os.ReadFile(path)
			if err != nil {
				return "", err
			}
			return string(data), nil
		})
	})
}

func (w *LocalWalker) hasIgnoredPrefix(name string) bool {
	for _, prefix := range w.ignoreFilenamePrefix {
		if prefix != "" && strings.HasPrefix(name, prefix) {
			return true
		}
	}
	return false
}
