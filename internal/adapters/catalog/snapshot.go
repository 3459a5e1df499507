// Package catalog implements the dependency catalog lookup against a pinned
// snapshot file.
package catalog

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"go.trai.ch/forge/internal/core/domain"
	"go.trai.ch/forge/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/singleflight"
)

var _ ports.DependencyCatalog = (*Snapshot)(nil)

// Snapshot implements ports.DependencyCatalog by looking names up in a
// pinned JSON snapshot document. The snapshot is loaded once and is
// immutable afterwards, so every lookup is deterministic.
type Snapshot struct {
	path string

	loadGroup singleflight.Group

	mu  sync.RWMutex
	doc *snapshotDocument
}

// NewSnapshot creates a catalog backed by the snapshot file at path.
// The file is not read until the first lookup.
func NewSnapshot(path string) *Snapshot {
	return &Snapshot{path: filepath.Clean(path)}
}

// Resolve looks up the artifact for name on the given platform.
func (s *Snapshot) Resolve(ctx context.Context, name string, platform domain.Platform) (domain.Artifact, error) {
	doc, err := s.load()
	if err != nil {
		return domain.Artifact{}, err
	}

	pkg, ok := doc.Packages[name]
	if !ok {
		return domain.Artifact{}, s.notFound(name, platform)
	}

	entry, ok := pkg.Platforms[platform.String()]
	if !ok {
		return domain.Artifact{}, s.notFound(name, platform)
	}

	return domain.Artifact{
		Name:    domain.NewInternedString(name),
		Version: domain.NewInternedString(entry.Version),
		Path:    entry.Path,
	}, nil
}

func (s *Snapshot) notFound(name string, platform domain.Platform) error {
	err := zerr.With(domain.ErrDependencyNotFound, "name", name)
	err = zerr.With(err, "platform", platform.String())
	return zerr.With(err, "snapshot", s.path)
}

// load reads and decodes the snapshot file once. Concurrent first lookups
// collapse into a single read.
func (s *Snapshot) load() (*snapshotDocument, error) {
	s.mu.RLock()
	if s.doc != nil {
		doc := s.doc
		s.mu.RUnlock()
		return doc, nil
	}
	s.mu.RUnlock()

	result, err, _ := s.loadGroup.Do(s.path, func() (any, error) {
		//nolint:gosec // Path is cleaned and provided by trusted caller
		data, readErr := os.ReadFile(s.path)
		if readErr != nil {
			return nil, zerr.With(zerr.Wrap(readErr, "failed to read catalog snapshot"), "path", s.path)
		}

		var doc snapshotDocument
		if jsonErr := json.Unmarshal(data, &doc); jsonErr != nil {
			return nil, zerr.With(zerr.Wrap(jsonErr, "failed to parse catalog snapshot"), "path", s.path)
		}

		s.mu.Lock()
		s.doc = &doc
		s.mu.Unlock()

		return &doc, nil
	})
	if err != nil {
		return nil, err
	}

	return result.(*snapshotDocument), nil
}
