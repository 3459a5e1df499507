package domain

// PackageDecl is the domain representation of a forge.yaml document: the
// declarative inputs from which per-platform build plans and dev
// environments are evaluated.
type PackageDecl struct {
	Name    string
	Version string

	// Source declares the build-input tree.
	Source FilesetSpec

	// LockPath locates the pinned dependency lockfile, relative to the
	// source root.
	LockPath string

	// CatalogPath locates the pinned catalog snapshot.
	CatalogPath string

	// StoreDir is where output paths are addressed under.
	StoreDir string

	// Platforms are the candidate targets; only Linux-family entries are
	// enumerated at evaluation time.
	Platforms []Platform

	// BuildDeps and RuntimeDeps in declaration order.
	BuildDeps   []DependencySpec
	RuntimeDeps []DependencySpec

	// BuildCommand is the opaque external build invocation.
	BuildCommand []string

	// Packaged layers the evaluated artifact back into the catalog under the
	// package's own name.
	Packaged bool

	// Shells declares the interactive dev environments, in declaration order.
	Shells []ShellDecl
}

// ShellDecl declares one interactive dev environment.
type ShellDecl struct {
	Name string

	// InheritPlan unions the package's resolved dependency closure into the
	// shell.
	InheritPlan bool

	// ExtraBuild and ExtraRuntime extend the closure, declaration order
	// preserved.
	ExtraBuild   []DependencySpec
	ExtraRuntime []DependencySpec
}

// Shell returns the declared shell with the given name, or nil.
func (d *PackageDecl) Shell(name string) *ShellDecl {
	for i := range d.Shells {
		if d.Shells[i].Name == name {
			return &d.Shells[i]
		}
	}
	return nil
}
