// Package fs derives content-addressed source tree snapshots from fileset
// declarations.
package fs

import (
	"io/fs"
	"iter"
	"path/filepath"
	"strings"
)

// Walker provides file walking functionality.
type Walker struct{}

// NewWalker creates a new Walker.
func NewWalker() *Walker {
	return &Walker{}
}

// WalkFiles yields all files under root that are not covered by an excluded
// path. Excluded entries must be absolute, cleaned paths. VCS bookkeeping
// directories are always skipped. A walk failure (e.g. an unreadable
// subdirectory) is yielded as the final pair; the walk never silently
// truncates.
func (w *Walker) WalkFiles(root string, excluded []string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		stopped := false
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if d.IsDir() {
				if w.skipDir(d.Name()) || isExcluded(path, excluded) {
					return filepath.SkipDir
				}
				return nil
			}

			if isExcluded(path, excluded) {
				return nil
			}

			if !yield(path, nil) {
				stopped = true
				return filepath.SkipAll
			}

			return nil
		})
		if err != nil && !stopped {
			yield("", err)
		}
	}
}

// skipDir reports whether a directory is VCS bookkeeping.
func (w *Walker) skipDir(name string) bool {
	return name == ".git" || name == ".jj"
}

// isExcluded reports whether path equals or lies under any excluded path.
func isExcluded(path string, excluded []string) bool {
	for _, ex := range excluded {
		if path == ex || strings.HasPrefix(path, ex+string(filepath.Separator)) {
			return true
		}
	}
	return false
}
