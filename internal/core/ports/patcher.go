package ports

import "context"

// Patcher rewrites a produced binary's dynamic-library search metadata to
// include runtime-only library paths not needed at compile time.
//
// Patching is additive and idempotent: existing entries are never replaced,
// and re-applying the same paths is a no-op. Implementations must serialize
// concurrent patches of the same artifact path.
//
//go:generate go run go.uber.org/mock/mockgen -source=patcher.go -destination=mocks/mock_patcher.go -package=mocks
type Patcher interface {
	// Patch appends searchPaths to the search metadata of the binary at
	// outputPath. Returns domain.ErrPatch if the artifact does not exist or
	// is not a recognized dynamically linked binary.
	Patch(ctx context.Context, outputPath string, searchPaths []string) error
}
