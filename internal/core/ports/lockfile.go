package ports

import "go.trai.ch/forge/internal/core/domain"

// LockfileResolver reads a pinned dependency lockfile and produces the exact
// dependency record it describes. Resolution is a pure function: two
// resolutions of the identical document yield value-equal results.
//
//go:generate go run go.uber.org/mock/mockgen -source=lockfile.go -destination=mocks/mock_lockfile.go -package=mocks
type LockfileResolver interface {
	// Resolve parses and verifies the lockfile at path. Returns
	// domain.ErrLockfileParse for malformed documents and
	// domain.ErrLockfileIntegrity when an entry is missing its pin.
	Resolve(path string) (*domain.Lockfile, error)
}
