package domain

import (
	"fmt"
	"slices"

	"github.com/cespare/xxhash/v2"
)

// LockedPackage is one fully pinned entry of a lockfile: an exact version
// plus a content hash for the package's source.
type LockedPackage struct {
	Version string `json:"version"`
	Hash    string `json:"hash"`
}

// Pinned reports whether the entry carries both its version and content hash.
func (p LockedPackage) Pinned() bool {
	return p.Version != "" && p.Hash != ""
}

// Lockfile is an immutable record of the exact transitive dependency set of
// the package being built. Resolution from a lockfile is a pure function:
// the same document always yields a value-equal Lockfile.
type Lockfile struct {
	// Version is the lockfile format version.
	Version int

	// Packages maps package names to their pinned entries.
	Packages map[string]LockedPackage
}

// ContentHash returns a deterministic digest of the lockfile contents.
// Entries are hashed in sorted name order so the digest does not depend on
// map iteration order.
func (l *Lockfile) ContentHash() string {
	names := make([]string, 0, len(l.Packages))
	for name := range l.Packages {
		names = append(names, name)
	}
	slices.Sort(names)

	h := xxhash.New()
	_, _ = h.WriteString(fmt.Sprintf("v%d", l.Version))
	_, _ = h.Write([]byte{0})
	for _, name := range names {
		pkg := l.Packages[name]
		_, _ = h.WriteString(name)
		_, _ = h.Write([]byte{0})
		_, _ = h.WriteString(pkg.Version)
		_, _ = h.Write([]byte{0})
		_, _ = h.WriteString(pkg.Hash)
		_, _ = h.Write([]byte{0})
	}
	return fmt.Sprintf("%016x", h.Sum64())
}
