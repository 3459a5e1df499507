// Package domain contains the core domain models for the build-plan evaluator.
package domain

import "path/filepath"

// DependencyKind classifies when a dependency is needed.
type DependencyKind string

const (
	// KindBuildTime marks a dependency whose paths are injected into the
	// compile environment.
	KindBuildTime DependencyKind = "build-time"

	// KindRuntime marks a dependency whose library directory is appended to
	// the produced binary's search metadata after the build.
	KindRuntime DependencyKind = "runtime"
)

// DependencySpec represents a user's intent to declare an external dependency.
// This is the input representation before catalog resolution.
type DependencySpec struct {
	// Name is the symbolic package name as requested (e.g., "vulkan-loader").
	Name InternedString

	// Kind determines whether the dependency reaches the compile environment,
	// the post-build patch step, or both.
	Kind DependencyKind
}

// Artifact is a concrete catalog entry: an installed dependency on disk for
// one platform.
type Artifact struct {
	// Name is the canonical package name.
	Name InternedString

	// Version is the pinned version present in the catalog snapshot.
	Version InternedString

	// Path is the root of the installed artifact.
	Path string
}

// LibDir returns the artifact's runtime library directory.
func (a Artifact) LibDir() string {
	return filepath.Join(a.Path, "lib")
}

// BinDir returns the artifact's executable directory.
func (a Artifact) BinDir() string {
	return filepath.Join(a.Path, "bin")
}

// ResolvedDependency pairs a declared dependency with the artifact the
// catalog resolved it to. Declaration order is preserved wherever sequences
// of these appear.
type ResolvedDependency struct {
	Spec     DependencySpec
	Artifact Artifact
}
