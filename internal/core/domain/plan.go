package domain

// BuildPlan is an immutable, content-addressed description of how to produce
// one build artifact: the filtered source tree, the pinned lockfile, and the
// resolved dependency set for a single (platform, package) pair. It is
// constructed once by the planner and consumed read-only by the build
// executor and the post-build patcher.
type BuildPlan struct {
	Name     string
	Version  string
	Platform Platform

	// Source is the content-addressed snapshot of the build input tree.
	Source *SourceTree

	// Lock is the resolved lockfile the external build consumes.
	Lock *Lockfile

	// BuildDeps and RuntimeDeps hold the resolved dependencies in declaration
	// order.
	BuildDeps   []ResolvedDependency
	RuntimeDeps []ResolvedDependency

	// Command is the opaque external build invocation that realizes the plan.
	Command []string

	// PatchPaths are the library directories appended to the produced
	// binary's search metadata after the build.
	PatchPaths []string

	// OutputPath is a pure function of the plan's inputs: identical inputs
	// always address the identical path.
	OutputPath string
}

// BuildTimeBinPaths returns the executable directories of the build-time
// dependencies, in declaration order.
func (p *BuildPlan) BuildTimeBinPaths() []string {
	paths := make([]string, 0, len(p.BuildDeps))
	for _, dep := range p.BuildDeps {
		paths = append(paths, dep.Artifact.BinDir())
	}
	return paths
}

// RuntimeLibPaths returns the library directories of the runtime
// dependencies, in declaration order.
func (p *BuildPlan) RuntimeLibPaths() []string {
	paths := make([]string, 0, len(p.RuntimeDeps))
	for _, dep := range p.RuntimeDeps {
		paths = append(paths, dep.Artifact.LibDir())
	}
	return paths
}

// Dependencies returns the full resolved closure, build-time deps first,
// declaration order preserved within each kind.
func (p *BuildPlan) Dependencies() []ResolvedDependency {
	deps := make([]ResolvedDependency, 0, len(p.BuildDeps)+len(p.RuntimeDeps))
	deps = append(deps, p.BuildDeps...)
	deps = append(deps, p.RuntimeDeps...)
	return deps
}
