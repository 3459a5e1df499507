// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/forge/internal/core/domain"
)

// DependencyCatalog resolves symbolic dependency names to concrete installed
// artifacts for a target platform.
//
// Implementations must be deterministic for a pinned catalog snapshot: the
// same (name, platform) pair always resolves to the same artifact, and a
// miss is reported as domain.ErrDependencyNotFound. No side effects beyond
// cache reads are permitted.
//
//go:generate go run go.uber.org/mock/mockgen -source=catalog.go -destination=mocks/mock_catalog.go -package=mocks
type DependencyCatalog interface {
	// Resolve looks up the artifact for name on the given platform.
	Resolve(ctx context.Context, name string, platform domain.Platform) (domain.Artifact, error)
}
