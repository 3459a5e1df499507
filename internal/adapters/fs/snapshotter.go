package fs

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/forge/internal/core/domain"
	"go.trai.ch/forge/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.FilesetSnapshotter = (*Snapshotter)(nil)

// Snapshotter implements ports.FilesetSnapshotter by walking the root,
// filtering exclusions, and content-hashing every kept file.
type Snapshotter struct {
	walker *Walker
}

// NewSnapshotter creates a new Snapshotter.
func NewSnapshotter(walker *Walker) *Snapshotter {
	return &Snapshotter{walker: walker}
}

// Snapshot derives the source tree for the given fileset declaration.
// The result is independent of filesystem enumeration order: entries are
// sorted by relative path before the combined digest is computed.
func (s *Snapshotter) Snapshot(spec domain.FilesetSpec) (*domain.SourceTree, error) {
	root, err := filepath.Abs(spec.Root)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrFileset, err.Error()), "root", spec.Root)
	}

	info, err := os.Stat(root)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrFileset, "root does not exist"), "root", root)
	}
	if !info.IsDir() {
		return nil, zerr.With(zerr.Wrap(domain.ErrFileset, "root is not a directory"), "root", root)
	}

	excluded := s.resolveExclusions(root, spec.Exclude)

	var entries []domain.FileEntry
	for path, walkErr := range s.walker.WalkFiles(root, excluded) {
		if walkErr != nil {
			return nil, zerr.With(zerr.Wrap(domain.ErrFileset, walkErr.Error()), "root", root)
		}
		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			return nil, zerr.With(zerr.Wrap(relErr, "failed to relativize path"), "path", path)
		}

		hash, hashErr := computeFileHash(path)
		if hashErr != nil {
			return nil, hashErr
		}

		entries = append(entries, domain.FileEntry{RelPath: filepath.ToSlash(rel), Hash: hash})
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].RelPath < entries[j].RelPath })

	return &domain.SourceTree{
		Root:  root,
		Files: entries,
		Hash:  combineEntries(entries),
	}, nil
}

// resolveExclusions cleans the exclusion paths against the root. Exclusions
// apply only within the covered tree: a path escaping the root is dropped,
// not an error.
func (s *Snapshotter) resolveExclusions(root string, exclude []string) []string {
	var excluded []string
	for _, ex := range exclude {
		abs := ex
		if !filepath.IsAbs(abs) {
			abs = filepath.Join(root, ex)
		}
		abs = filepath.Clean(abs)

		if abs != root && !strings.HasPrefix(abs, root+string(filepath.Separator)) {
			continue
		}
		excluded = append(excluded, abs)
	}
	return excluded
}

// computeFileHash computes the xxhash of a file's content.
func computeFileHash(path string) (uint64, error) {
	f, err := os.Open(path) //nolint:gosec // Path comes from walking the declared root
	if err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to open file"), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	hasher := xxhash.New()
	if _, err := io.Copy(hasher, f); err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to hash file content"), "path", path)
	}

	return hasher.Sum64(), nil
}

// combineEntries folds the sorted entries into one digest. Relative paths
// (not absolute ones) go into the digest so the snapshot is portable across
// checkouts.
func combineEntries(entries []domain.FileEntry) string {
	hasher := xxhash.New()
	for _, e := range entries {
		_, _ = hasher.WriteString(e.RelPath)
		_, _ = hasher.Write([]byte{0})
		_ = binary.Write(hasher, binary.LittleEndian, e.Hash)
	}
	return fmt.Sprintf("%016x", hasher.Sum64())
}
