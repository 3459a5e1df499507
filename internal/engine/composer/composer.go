// Package composer builds interactive dev environments from dependency
// closures.
package composer

import (
	"context"
	"slices"
	"strings"

	"go.trai.ch/forge/internal/core/domain"
	"go.trai.ch/forge/internal/core/ports"
	"go.trai.ch/zerr"
)

// Request carries the declarative inputs of one environment composition.
type Request struct {
	Name string

	// InputsFrom optionally inherits a build plan's resolved closure.
	InputsFrom *domain.BuildPlan

	// ExtraBuild and ExtraRuntime extend the closure, declaration order
	// preserved.
	ExtraBuild   []domain.DependencySpec
	ExtraRuntime []domain.DependencySpec

	Platform domain.Platform
}

// Composer builds dev environments. Every Compose recomputes the whole
// value; nothing is cached or mutated across invocations.
type Composer struct{}

// New creates a new Composer.
func New() *Composer {
	return &Composer{}
}

// Compose unions the inherited closure with the extras, each resolved via
// the catalog for the request's platform. A dependency name must resolve
// identically regardless of origin; disagreement is a conflict, not a
// silent override.
func (c *Composer) Compose(ctx context.Context, catalog ports.DependencyCatalog, req Request) (*domain.DevEnvironment, error) {
	var merged []domain.ResolvedDependency
	seen := make(map[string]domain.Artifact)

	add := func(dep domain.ResolvedDependency) error {
		name := dep.Spec.Name.String()
		if prior, ok := seen[name]; ok {
			if prior.Path != dep.Artifact.Path {
				conflict := zerr.With(domain.ErrConflict, "name", name)
				conflict = zerr.With(conflict, "first", prior.Path)
				return zerr.With(conflict, "second", dep.Artifact.Path)
			}
			// Identical resolution collapses.
			return nil
		}
		seen[name] = dep.Artifact
		merged = append(merged, dep)
		return nil
	}

	if req.InputsFrom != nil {
		for _, dep := range req.InputsFrom.Dependencies() {
			if err := add(dep); err != nil {
				return nil, err
			}
		}
	}

	for _, specs := range [][]domain.DependencySpec{req.ExtraBuild, req.ExtraRuntime} {
		for _, spec := range specs {
			artifact, err := catalog.Resolve(ctx, spec.Name.String(), req.Platform)
			if err != nil {
				unresolved := zerr.With(zerr.Wrap(domain.ErrUnresolvedDependency, err.Error()), "name", spec.Name.String())
				return nil, zerr.With(unresolved, "platform", req.Platform.String())
			}
			if err := add(domain.ResolvedDependency{Spec: spec, Artifact: artifact}); err != nil {
				return nil, err
			}
		}
	}

	return &domain.DevEnvironment{
		Name:     req.Name,
		Platform: req.Platform,
		Deps:     merged,
		Env:      composeEnv(merged),
	}, nil
}

// composeEnv derives the environment variable set. Paths are joined in
// declaration order, not resolution order, to keep output reproducible.
func composeEnv(deps []domain.ResolvedDependency) map[string]string {
	var libDirs, binDirs []string
	for _, dep := range deps {
		switch dep.Spec.Kind {
		case domain.KindRuntime:
			libDirs = append(libDirs, dep.Artifact.LibDir())
		case domain.KindBuildTime:
			binDirs = append(binDirs, dep.Artifact.BinDir())
		}
	}

	env := make(map[string]string)
	if len(libDirs) > 0 {
		env["LD_LIBRARY_PATH"] = strings.Join(libDirs, ":")
	}
	if len(binDirs) > 0 {
		env["PATH"] = strings.Join(binDirs, ":")
	}
	return env
}

// Environ renders an environment as sorted "KEY=VALUE" pairs suitable for
// process execution.
func Environ(env *domain.DevEnvironment) []string {
	keys := make([]string, 0, len(env.Env))
	for k := range env.Env {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, k+"="+env.Env[k])
	}
	return pairs
}
