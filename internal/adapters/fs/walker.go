// Package fs provides file system adapters for walking, hashing and resolving files.
package fs

import (
	"io/fs"
	"iter"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
)

// DefaultIgnores are directory names never descended into.
var DefaultIgnores = []string{".git", ".jj", "node_modules", ".breeze"}

// Walker provides file walking functionality.
type Walker struct{}

// NewWalker creates a new Walker.
func NewWalker() *Walker {
	return &Walker{}
}

// WalkFiles yields every file below root. Directories and files whose base name
// matches one of ignores are skipped; ignores are doublestar patterns.
func (w *Walker) WalkFiles(root string, ignores []string) iter.Seq[string] {
	return func(yield func(string) bool) {
		_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				if path == root {
					return err
				}
				return nil
			}

			if path != root && w.ignored(d.Name(), ignores) {
				if d.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}

			if d.IsDir() {
				return nil
			}

			if !yield(path) {
				return filepath.SkipAll
			}

			return nil
		})
	}
}

func (w *Walker) ignored(name string, ignores []string) bool {
	for _, ignore := range ignores {
		if matched, _ := doublestar.Match(ignore, name); matched {
			return true
		}
	}
	return false
}
