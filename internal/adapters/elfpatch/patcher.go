// Package elfpatch rewrites the dynamic-library search metadata of built
// binaries.
package elfpatch

import (
	"context"
	"debug/elf"
	"os"
	"os/exec"
	"slices"
	"strings"
	"sync"

	"go.trai.ch/forge/internal/core/domain"
	"go.trai.ch/forge/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Patcher = (*Patcher)(nil)

// Patcher implements ports.Patcher for ELF binaries. Reading the existing
// search metadata happens in-process via debug/elf; the rewrite is delegated
// to the external patchelf tool, the same way the build itself is delegated
// to an external executor.
type Patcher struct {
	patchelfBin string

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewPatcher creates a Patcher that shells out to "patchelf".
func NewPatcher() *Patcher {
	return &Patcher{
		patchelfBin: "patchelf",
		locks:       make(map[string]*sync.Mutex),
	}
}

// Patch appends searchPaths to the binary's existing search metadata.
// Existing entries are never replaced and duplicates are dropped, so
// applying the same paths twice is a no-op. Concurrent patches of the same
// artifact are serialized on a per-path lock since the file is rewritten in
// place.
func (p *Patcher) Patch(ctx context.Context, outputPath string, searchPaths []string) error {
	lock := p.pathLock(outputPath)
	lock.Lock()
	defer lock.Unlock()

	existing, err := readSearchPaths(outputPath)
	if err != nil {
		return err
	}

	merged := MergeSearchPaths(existing, searchPaths)
	if slices.Equal(merged, existing) {
		return nil
	}

	//nolint:gosec // outputPath addresses an artifact this process planned
	cmd := exec.CommandContext(ctx, p.patchelfBin, "--set-rpath", strings.Join(merged, ":"), outputPath)
	if output, runErr := cmd.CombinedOutput(); runErr != nil {
		patchErr := zerr.Wrap(runErr, domain.ErrPatch.Error())
		patchErr = zerr.With(patchErr, "path", outputPath)
		return zerr.With(patchErr, "output", strings.TrimSpace(string(output)))
	}

	return nil
}

// pathLock returns the lock guarding one artifact path.
func (p *Patcher) pathLock(path string) *sync.Mutex {
	p.mu.Lock()
	defer p.mu.Unlock()

	lock, ok := p.locks[path]
	if !ok {
		lock = &sync.Mutex{}
		p.locks[path] = lock
	}
	return lock
}

// MergeSearchPaths unions extra into existing, preserving existing order and
// appending unseen entries in their given order. Duplicate insertion is a
// no-op, which makes patching idempotent.
func MergeSearchPaths(existing, extra []string) []string {
	seen := make(map[string]struct{}, len(existing)+len(extra))
	merged := make([]string, 0, len(existing)+len(extra))

	for _, path := range existing {
		if path == "" {
			continue
		}
		if _, ok := seen[path]; ok {
			continue
		}
		seen[path] = struct{}{}
		merged = append(merged, path)
	}
	for _, path := range extra {
		if path == "" {
			continue
		}
		if _, ok := seen[path]; ok {
			continue
		}
		seen[path] = struct{}{}
		merged = append(merged, path)
	}

	return merged
}

// readSearchPaths reads the binary's current runpath entries. A missing
// artifact or one that is not a dynamically linked ELF binary fails with
// the patch error.
func readSearchPaths(path string) ([]string, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrPatch, "artifact does not exist"), "path", path)
	}

	f, err := elf.Open(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrPatch, "artifact is not an ELF binary"), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	if f.Section(".dynamic") == nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrPatch, "artifact is not dynamically linked"), "path", path)
	}

	entries, err := f.DynString(elf.DT_RUNPATH)
	if err != nil || len(entries) == 0 {
		// Older binaries carry DT_RPATH instead.
		entries, _ = f.DynString(elf.DT_RPATH)
	}

	var paths []string
	for _, entry := range entries {
		for _, p := range strings.Split(entry, ":") {
			if p != "" {
				paths = append(paths, p)
			}
		}
	}
	return paths, nil
}
