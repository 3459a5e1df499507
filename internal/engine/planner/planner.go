// Package planner composes catalog lookups, the filtered fileset, and the
// resolved lockfile into immutable build plans.
package planner

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/forge/internal/core/domain"
	"go.trai.ch/forge/internal/core/ports"
	"go.trai.ch/zerr"
)

// Request carries the declarative inputs of one (platform, package) build.
type Request struct {
	Name    string
	Version string

	Source   domain.FilesetSpec
	LockPath string

	BuildDeps   []domain.DependencySpec
	RuntimeDeps []domain.DependencySpec

	Command  []string
	Platform domain.Platform
	StoreDir string
}

// Planner assembles build plans. It holds no mutable state; every Build is
// a pure function from the request, the catalog snapshot, and the files on
// disk to an immutable plan or an error.
type Planner struct {
	snapshotter ports.FilesetSnapshotter
	lockfiles   ports.LockfileResolver
}

// New creates a new Planner.
func New(snapshotter ports.FilesetSnapshotter, lockfiles ports.LockfileResolver) *Planner {
	return &Planner{
		snapshotter: snapshotter,
		lockfiles:   lockfiles,
	}
}

// Build evaluates the request against the given catalog. Any unresolvable
// dependency fails the whole build; partial plans are never returned.
//
// The plan's output path is a pure function of (name, version, source tree
// hash, lockfile hash, resolved dependency set): identical inputs always
// address the identical path.
func (p *Planner) Build(ctx context.Context, catalog ports.DependencyCatalog, req Request) (*domain.BuildPlan, error) {
	tree, err := p.snapshotter.Snapshot(req.Source)
	if err != nil {
		return nil, err
	}

	lock, err := p.lockfiles.Resolve(req.LockPath)
	if err != nil {
		return nil, err
	}

	buildDeps, err := p.resolveAll(ctx, catalog, req.BuildDeps, req.Platform)
	if err != nil {
		return nil, err
	}

	runtimeDeps, err := p.resolveAll(ctx, catalog, req.RuntimeDeps, req.Platform)
	if err != nil {
		return nil, err
	}

	plan := &domain.BuildPlan{
		Name:        req.Name,
		Version:     req.Version,
		Platform:    req.Platform,
		Source:      tree,
		Lock:        lock,
		BuildDeps:   buildDeps,
		RuntimeDeps: runtimeDeps,
		Command:     req.Command,
	}
	plan.PatchPaths = plan.RuntimeLibPaths()
	plan.OutputPath = outputPath(req, tree, lock, buildDeps, runtimeDeps)

	return plan, nil
}

// resolveAll resolves every declared dependency in declaration order. The
// first miss fails the whole resolution, naming the missing dependency.
func (p *Planner) resolveAll(
	ctx context.Context,
	catalog ports.DependencyCatalog,
	specs []domain.DependencySpec,
	platform domain.Platform,
) ([]domain.ResolvedDependency, error) {
	resolved := make([]domain.ResolvedDependency, 0, len(specs))
	for _, spec := range specs {
		artifact, err := catalog.Resolve(ctx, spec.Name.String(), platform)
		if err != nil {
			unresolved := zerr.With(zerr.Wrap(domain.ErrUnresolvedDependency, err.Error()), "name", spec.Name.String())
			unresolved = zerr.With(unresolved, "kind", string(spec.Kind))
			return nil, zerr.With(unresolved, "platform", platform.String())
		}
		resolved = append(resolved, domain.ResolvedDependency{Spec: spec, Artifact: artifact})
	}
	return resolved, nil
}

// outputPath derives the content-addressed output location.
func outputPath(
	req Request,
	tree *domain.SourceTree,
	lock *domain.Lockfile,
	buildDeps, runtimeDeps []domain.ResolvedDependency,
) string {
	h := xxhash.New()

	_, _ = h.WriteString(req.Name)
	_, _ = h.Write([]byte{0})
	_, _ = h.WriteString(req.Version)
	_, _ = h.Write([]byte{0})
	_, _ = h.WriteString(req.Platform.String())
	_, _ = h.Write([]byte{0})
	_, _ = h.WriteString(tree.Hash)
	_, _ = h.Write([]byte{0})
	_, _ = h.WriteString(lock.ContentHash())
	_, _ = h.Write([]byte{0})

	for _, dep := range buildDeps {
		_, _ = h.WriteString(dep.Artifact.Path)
		_, _ = h.Write([]byte{0})
	}
	_, _ = h.Write([]byte{0})
	for _, dep := range runtimeDeps {
		_, _ = h.WriteString(dep.Artifact.Path)
		_, _ = h.Write([]byte{0})
	}

	digest := fmt.Sprintf("%016x", h.Sum64())
	return filepath.Join(req.StoreDir, fmt.Sprintf("%s-%s-%s", digest, req.Name, req.Version))
}
