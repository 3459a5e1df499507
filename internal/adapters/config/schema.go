package config

// Forgefile represents the structure of the forge.yaml declaration.
type Forgefile struct {
	Version   string              `yaml:"version"`
	Package   PackageDTO          `yaml:"package"`
	Source    SourceDTO           `yaml:"source"`
	Lockfile  string              `yaml:"lockfile"`
	Catalog   string              `yaml:"catalog"`
	Store     string              `yaml:"store"`
	Platforms []string            `yaml:"platforms"`
	Packaged  bool                `yaml:"packaged"`
	Build     BuildDTO            `yaml:"build"`
	Runtime   RuntimeDTO          `yaml:"runtime"`
	Shells    map[string]ShellDTO `yaml:"shells"`
}

// PackageDTO identifies the package being built.
type PackageDTO struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version"`
}

// SourceDTO declares the build-input tree.
type SourceDTO struct {
	Root    string   `yaml:"root"`
	Exclude []string `yaml:"exclude"`
}

// BuildDTO declares the external build command and its dependencies.
type BuildDTO struct {
	Cmd          []string `yaml:"cmd"`
	Dependencies []string `yaml:"dependencies"`
}

// RuntimeDTO declares the runtime-only dependencies.
type RuntimeDTO struct {
	Dependencies []string `yaml:"dependencies"`
}

// ShellDTO declares one interactive dev environment.
type ShellDTO struct {
	Inherit bool     `yaml:"inherit"`
	Build   []string `yaml:"build"`
	Runtime []string `yaml:"runtime"`
}
