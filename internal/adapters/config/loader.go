// Package config provides the configuration loader for forge.
package config

import (
	"os"
	"path/filepath"
	"slices"

	"go.trai.ch/forge/internal/core/domain"
	"go.trai.ch/forge/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Filename is the default declaration file name.
const Filename = "forge.yaml"

var _ ports.ConfigLoader = (*FileConfigLoader)(nil)

// FileConfigLoader implements ports.ConfigLoader using a YAML file.
type FileConfigLoader struct {
	Filename string
}

// Load reads the declaration from the given working directory.
func (l *FileConfigLoader) Load(cwd string) (*domain.PackageDecl, error) {
	name := l.Filename
	if name == "" {
		name = Filename
	}
	return Load(filepath.Join(cwd, name))
}

// Load reads a declaration file from the given path and returns a
// domain.PackageDecl with relative paths anchored at the file's directory.
func Load(path string) (*domain.PackageDecl, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read declaration file")
	}

	var forgefile Forgefile
	if err := yaml.Unmarshal(data, &forgefile); err != nil {
		return nil, zerr.Wrap(err, "failed to parse declaration file")
	}

	if forgefile.Package.Name == "" {
		return nil, zerr.With(zerr.New("package name is required"), "path", path)
	}
	if forgefile.Package.Version == "" {
		return nil, zerr.With(zerr.New("package version is required"), "path", path)
	}

	applyDefaults(&forgefile)

	base := filepath.Dir(path)
	root := anchor(base, forgefile.Source.Root)

	decl := &domain.PackageDecl{
		Name:    forgefile.Package.Name,
		Version: forgefile.Package.Version,
		Source: domain.FilesetSpec{
			Root:    root,
			Exclude: forgefile.Source.Exclude,
		},
		// The lockfile lives alongside the source tree.
		LockPath:     filepath.Join(root, forgefile.Lockfile),
		CatalogPath:  anchor(base, forgefile.Catalog),
		StoreDir:     anchor(base, forgefile.Store),
		Platforms:    toPlatforms(forgefile.Platforms),
		BuildDeps:    toDependencySpecs(forgefile.Build.Dependencies, domain.KindBuildTime),
		RuntimeDeps:  toDependencySpecs(forgefile.Runtime.Dependencies, domain.KindRuntime),
		BuildCommand: forgefile.Build.Cmd,
		Packaged:     forgefile.Packaged,
		Shells:       toShellDecls(forgefile.Shells),
	}

	return decl, nil
}

func applyDefaults(f *Forgefile) {
	if f.Source.Root == "" {
		f.Source.Root = "."
	}
	if f.Lockfile == "" {
		f.Lockfile = "forge.lock"
	}
	if f.Catalog == "" {
		f.Catalog = "catalog.json"
	}
	if f.Store == "" {
		f.Store = filepath.Join(".forge", "store")
	}
}

func anchor(base, path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(base, path)
}

func toPlatforms(strs []string) []domain.Platform {
	res := make([]domain.Platform, len(strs))
	for i, s := range strs {
		res[i] = domain.Platform(s)
	}
	return res
}

func toDependencySpecs(names []string, kind domain.DependencyKind) []domain.DependencySpec {
	res := make([]domain.DependencySpec, len(names))
	for i, name := range names {
		res[i] = domain.DependencySpec{
			Name: domain.NewInternedString(name),
			Kind: kind,
		}
	}
	return res
}

// toShellDecls converts the shell map into a deterministic declaration
// order, sorted by name.
func toShellDecls(shells map[string]ShellDTO) []domain.ShellDecl {
	names := make([]string, 0, len(shells))
	for name := range shells {
		names = append(names, name)
	}
	slices.Sort(names)

	res := make([]domain.ShellDecl, 0, len(names))
	for _, name := range names {
		dto := shells[name]
		res = append(res, domain.ShellDecl{
			Name:         name,
			InheritPlan:  dto.Inherit,
			ExtraBuild:   toDependencySpecs(dto.Build, domain.KindBuildTime),
			ExtraRuntime: toDependencySpecs(dto.Runtime, domain.KindRuntime),
		})
	}
	return res
}
