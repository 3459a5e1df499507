package catalog

import (
	"context"

	"go.trai.ch/forge/internal/core/domain"
	"go.trai.ch/forge/internal/core/ports"
)

var _ ports.DependencyCatalog = (*Overlay)(nil)

// Overlay layers extra artifacts over a base catalog without mutating it.
// It realizes the packaged-output variant: an evaluated artifact becomes
// resolvable under its package name, shadowing the base on hits and falling
// through on misses.
type Overlay struct {
	base  ports.DependencyCatalog
	extra map[overlayKey]domain.Artifact
}

type overlayKey struct {
	name     string
	platform domain.Platform
}

// NewOverlay creates an overlay over base with no extra entries.
func NewOverlay(base ports.DependencyCatalog) *Overlay {
	return &Overlay{
		base:  base,
		extra: make(map[overlayKey]domain.Artifact),
	}
}

// With returns a new overlay that additionally resolves name on platform to
// the given artifact. The receiver is not modified.
func (o *Overlay) With(name string, platform domain.Platform, artifact domain.Artifact) *Overlay {
	next := &Overlay{
		base:  o.base,
		extra: make(map[overlayKey]domain.Artifact, len(o.extra)+1),
	}
	for k, v := range o.extra {
		next.extra[k] = v
	}
	next.extra[overlayKey{name: name, platform: platform}] = artifact
	return next
}

// Resolve checks the overlay entries first, then falls back to the base.
func (o *Overlay) Resolve(ctx context.Context, name string, platform domain.Platform) (domain.Artifact, error) {
	if artifact, ok := o.extra[overlayKey{name: name, platform: platform}]; ok {
		return artifact, nil
	}
	return o.base.Resolve(ctx, name, platform)
}
