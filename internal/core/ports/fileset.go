package ports

import "go.trai.ch/forge/internal/core/domain"

// FilesetSnapshotter derives a content-addressed source tree from a fileset
// declaration. The snapshot must be independent of filesystem enumeration
// order so it can serve as a reproducible build input.
//
//go:generate go run go.uber.org/mock/mockgen -source=fileset.go -destination=mocks/mock_fileset.go -package=mocks
type FilesetSnapshotter interface {
	// Snapshot walks spec.Root minus spec.Exclude and returns the resulting
	// source tree. Returns domain.ErrFileset if the root is not usable.
	Snapshot(spec domain.FilesetSpec) (*domain.SourceTree, error)
}
