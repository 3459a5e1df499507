package domain_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/forge/internal/core/domain"
)

func TestFilterLinux(t *testing.T) {
	candidates := []domain.Platform{"x86_64-linux", "aarch64-linux", "x86_64-darwin"}

	kept := domain.FilterLinux(candidates)

	require.Len(t, kept, 2)
	assert.Equal(t, domain.Platform("x86_64-linux"), kept[0])
	assert.Equal(t, domain.Platform("aarch64-linux"), kept[1])
}

func TestFilterLinux_Empty(t *testing.T) {
	kept := domain.FilterLinux([]domain.Platform{"x86_64-darwin", "aarch64-darwin"})
	assert.Empty(t, kept)
}

func TestArtifactDirs(t *testing.T) {
	art := domain.Artifact{
		Name: domain.NewInternedString("vulkan-loader"),
		Path: filepath.Join("/", "store", "abc-vulkan-loader"),
	}

	assert.Equal(t, filepath.Join("/", "store", "abc-vulkan-loader", "lib"), art.LibDir())
	assert.Equal(t, filepath.Join("/", "store", "abc-vulkan-loader", "bin"), art.BinDir())
}

func TestLockfileContentHash_Deterministic(t *testing.T) {
	a := &domain.Lockfile{
		Version: 1,
		Packages: map[string]domain.LockedPackage{
			"serde": {Version: "1.0.200", Hash: "sha256-aaa"},
			"wgpu":  {Version: "0.19.3", Hash: "sha256-bbb"},
		},
	}
	b := &domain.Lockfile{
		Version: 1,
		Packages: map[string]domain.LockedPackage{
			"wgpu":  {Version: "0.19.3", Hash: "sha256-bbb"},
			"serde": {Version: "1.0.200", Hash: "sha256-aaa"},
		},
	}

	assert.Equal(t, a.ContentHash(), b.ContentHash())
}

func TestLockfileContentHash_SensitiveToPins(t *testing.T) {
	base := &domain.Lockfile{
		Version: 1,
		Packages: map[string]domain.LockedPackage{
			"serde": {Version: "1.0.200", Hash: "sha256-aaa"},
		},
	}
	changed := &domain.Lockfile{
		Version: 1,
		Packages: map[string]domain.LockedPackage{
			"serde": {Version: "1.0.201", Hash: "sha256-aaa"},
		},
	}

	assert.NotEqual(t, base.ContentHash(), changed.ContentHash())
}

func TestBuildPlanPaths(t *testing.T) {
	plan := &domain.BuildPlan{
		BuildDeps: []domain.ResolvedDependency{
			{
				Spec:     domain.DependencySpec{Name: domain.NewInternedString("pkg-config"), Kind: domain.KindBuildTime},
				Artifact: domain.Artifact{Name: domain.NewInternedString("pkg-config"), Path: "/store/a"},
			},
		},
		RuntimeDeps: []domain.ResolvedDependency{
			{
				Spec:     domain.DependencySpec{Name: domain.NewInternedString("libxkbcommon"), Kind: domain.KindRuntime},
				Artifact: domain.Artifact{Name: domain.NewInternedString("libxkbcommon"), Path: "/store/b"},
			},
			{
				Spec:     domain.DependencySpec{Name: domain.NewInternedString("vulkan-loader"), Kind: domain.KindRuntime},
				Artifact: domain.Artifact{Name: domain.NewInternedString("vulkan-loader"), Path: "/store/c"},
			},
		},
	}

	assert.Equal(t, []string{filepath.Join("/store/a", "bin")}, plan.BuildTimeBinPaths())
	assert.Equal(t,
		[]string{filepath.Join("/store/b", "lib"), filepath.Join("/store/c", "lib")},
		plan.RuntimeLibPaths(),
	)
	require.Len(t, plan.Dependencies(), 3)
	assert.Equal(t, "pkg-config", plan.Dependencies()[0].Spec.Name.String())
}
