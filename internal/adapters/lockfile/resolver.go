// Package lockfile resolves pinned dependency lockfile documents.
package lockfile

import (
	"encoding/json"
	"os"
	"path/filepath"
	"slices"

	"go.trai.ch/forge/internal/core/domain"
	"go.trai.ch/forge/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.LockfileResolver = (*Resolver)(nil)

// lockDocument is the on-disk schema of a forge.lock file.
type lockDocument struct {
	Version  int                             `json:"version"`
	Packages map[string]domain.LockedPackage `json:"packages"`
}

// Resolver implements ports.LockfileResolver for JSON lock documents.
type Resolver struct{}

// NewResolver creates a new Resolver.
func NewResolver() *Resolver {
	return &Resolver{}
}

// Resolve parses the lockfile at path and verifies that every entry is
// fully pinned. Resolution is pure: the same document always yields a
// value-equal Lockfile.
func (r *Resolver) Resolve(path string) (*domain.Lockfile, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrLockfileParse, err.Error()), "path", path)
	}

	var doc lockDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrLockfileParse, err.Error()), "path", path)
	}

	if err := verifyPins(&doc, path); err != nil {
		return nil, err
	}

	packages := make(map[string]domain.LockedPackage, len(doc.Packages))
	for name, pkg := range doc.Packages {
		packages[name] = pkg
	}

	return &domain.Lockfile{
		Version:  doc.Version,
		Packages: packages,
	}, nil
}

// verifyPins checks internal consistency: every referenced package carries
// an exact version and a content hash. Names are checked in sorted order so
// the reported offender is deterministic.
func verifyPins(doc *lockDocument, path string) error {
	names := make([]string, 0, len(doc.Packages))
	for name := range doc.Packages {
		names = append(names, name)
	}
	slices.Sort(names)

	for _, name := range names {
		if !doc.Packages[name].Pinned() {
			err := zerr.With(domain.ErrLockfileIntegrity, "package", name)
			return zerr.With(err, "path", path)
		}
	}
	return nil
}
