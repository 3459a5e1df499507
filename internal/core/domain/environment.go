package domain

// DevEnvironment is an interactive shell environment composed from a build
// plan's dependency closure plus extra declared dependencies. It is never
// mutated; every compose recomputes the whole value.
type DevEnvironment struct {
	// Name identifies the shell (e.g., "default").
	Name string

	// Platform the environment was composed for.
	Platform Platform

	// Deps is the merged dependency closure in declaration order, inherited
	// dependencies first.
	Deps []ResolvedDependency

	// Env maps environment variable names to composed values. It contains at
	// minimum the runtime library search path variable.
	Env map[string]string
}
