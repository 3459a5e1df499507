package catalog_test

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/forge/internal/adapters/catalog"
	"go.trai.ch/forge/internal/core/domain"
)

const snapshotJSON = `{
  "rev": "5c2ec3a2c1f8",
  "packages": {
    "libxkbcommon": {
      "platforms": {
        "x86_64-linux": {"version": "1.6.0", "path": "/store/aaa-libxkbcommon-1.6.0"},
        "aarch64-linux": {"version": "1.6.0", "path": "/store/bbb-libxkbcommon-1.6.0"}
      }
    },
    "vulkan-loader": {
      "platforms": {
        "x86_64-linux": {"version": "1.3.280", "path": "/store/ccc-vulkan-loader-1.3.280"}
      }
    }
  }
}`

func writeSnapshot(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, os.WriteFile(path, []byte(snapshotJSON), 0o600))
	return path
}

func TestSnapshot_Resolve(t *testing.T) {
	cat := catalog.NewSnapshot(writeSnapshot(t))

	art, err := cat.Resolve(context.Background(), "libxkbcommon", "x86_64-linux")
	require.NoError(t, err)

	assert.Equal(t, "libxkbcommon", art.Name.String())
	assert.Equal(t, "1.6.0", art.Version.String())
	assert.Equal(t, "/store/aaa-libxkbcommon-1.6.0", art.Path)
}

func TestSnapshot_Deterministic(t *testing.T) {
	cat := catalog.NewSnapshot(writeSnapshot(t))
	ctx := context.Background()

	first, err := cat.Resolve(ctx, "vulkan-loader", "x86_64-linux")
	require.NoError(t, err)
	second, err := cat.Resolve(ctx, "vulkan-loader", "x86_64-linux")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestSnapshot_MissingName(t *testing.T) {
	cat := catalog.NewSnapshot(writeSnapshot(t))

	_, err := cat.Resolve(context.Background(), "ghost-lib", "x86_64-linux")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDependencyNotFound)
}

func TestSnapshot_MissingPlatform(t *testing.T) {
	cat := catalog.NewSnapshot(writeSnapshot(t))

	// vulkan-loader exists, but not for this platform.
	_, err := cat.Resolve(context.Background(), "vulkan-loader", "aarch64-linux")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDependencyNotFound)
}

func TestSnapshot_MissingFile(t *testing.T) {
	cat := catalog.NewSnapshot(filepath.Join(t.TempDir(), "absent.json"))

	_, err := cat.Resolve(context.Background(), "libxkbcommon", "x86_64-linux")

	require.Error(t, err)
}

func TestSnapshot_ConcurrentLookups(t *testing.T) {
	cat := catalog.NewSnapshot(writeSnapshot(t))
	ctx := context.Background()

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			art, err := cat.Resolve(ctx, "libxkbcommon", "aarch64-linux")
			assert.NoError(t, err)
			assert.Equal(t, "/store/bbb-libxkbcommon-1.6.0", art.Path)
		}()
	}
	wg.Wait()
}

func TestOverlay_ShadowsAndFallsThrough(t *testing.T) {
	base := catalog.NewSnapshot(writeSnapshot(t))
	ctx := context.Background()

	packaged := domain.Artifact{
		Name:    domain.NewInternedString("viewer"),
		Version: domain.NewInternedString("0.4.2"),
		Path:    "/store/ddd-viewer-0.4.2",
	}
	over := catalog.NewOverlay(base).With("viewer", "x86_64-linux", packaged)

	// Overlay entry resolves.
	art, err := over.Resolve(ctx, "viewer", "x86_64-linux")
	require.NoError(t, err)
	assert.Equal(t, packaged, art)

	// Base entries still resolve through the overlay.
	art, err = over.Resolve(ctx, "libxkbcommon", "x86_64-linux")
	require.NoError(t, err)
	assert.Equal(t, "/store/aaa-libxkbcommon-1.6.0", art.Path)

	// Overlay entry is platform scoped.
	_, err = over.Resolve(ctx, "viewer", "aarch64-linux")
	assert.ErrorIs(t, err, domain.ErrDependencyNotFound)
}

func TestOverlay_WithDoesNotMutateReceiver(t *testing.T) {
	base := catalog.NewSnapshot(writeSnapshot(t))
	ctx := context.Background()

	empty := catalog.NewOverlay(base)
	_ = empty.With("viewer", "x86_64-linux", domain.Artifact{Path: "/store/ddd"})

	_, err := empty.Resolve(ctx, "viewer", "x86_64-linux")
	assert.ErrorIs(t, err, domain.ErrDependencyNotFound)
}
