package domain

import "go.trai.ch/zerr"

var (
	// ErrDependencyNotFound is returned when the catalog has no entry for a
	// dependency name on the requested platform.
	ErrDependencyNotFound = zerr.New("dependency not found in catalog")

	// ErrLockfileParse is returned when the lockfile document cannot be decoded.
	ErrLockfileParse = zerr.New("lockfile parse failed")

	// ErrLockfileIntegrity is returned when a lockfile entry is missing its
	// exact version or content hash pin.
	ErrLockfileIntegrity = zerr.New("lockfile entry is not fully pinned")

	// ErrFileset is returned when the fileset root does not exist or cannot be read.
	ErrFileset = zerr.New("fileset root is not usable")

	// ErrUnresolvedDependency is returned when a declared dependency cannot be
	// resolved for the target platform. No partial plan is produced.
	ErrUnresolvedDependency = zerr.New("unresolved dependency")

	// ErrBuildExecution is returned when the external build command exits non-zero.
	ErrBuildExecution = zerr.New("build execution failed")

	// ErrPatch is returned when the post-build patch step fails, including when
	// the artifact is missing or is not a dynamically linked binary.
	ErrPatch = zerr.New("post-build patch failed")

	// ErrConflict is returned when two sources of an environment resolve the
	// same dependency name to different artifacts.
	ErrConflict = zerr.New("conflicting dependency resolution")

	// ErrUnsupportedPlatform is returned when the current platform has no
	// recognized identifier.
	ErrUnsupportedPlatform = zerr.New("unsupported platform")
)
