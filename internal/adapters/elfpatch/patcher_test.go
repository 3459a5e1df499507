package elfpatch_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/forge/internal/adapters/elfpatch"
	"go.trai.ch/forge/internal/core/domain"
)

func TestMergeSearchPaths_Appends(t *testing.T) {
	merged := elfpatch.MergeSearchPaths(
		[]string{"/store/a/lib"},
		[]string{"/store/xkb/lib", "/store/vulkan/lib"},
	)

	assert.Equal(t, []string{"/store/a/lib", "/store/xkb/lib", "/store/vulkan/lib"}, merged)
}

func TestMergeSearchPaths_Idempotent(t *testing.T) {
	extra := []string{"/store/xkb/lib", "/store/vulkan/lib"}

	once := elfpatch.MergeSearchPaths(nil, extra)
	twice := elfpatch.MergeSearchPaths(once, extra)

	assert.Equal(t, once, twice)
}

func TestMergeSearchPaths_NeverReplacesExisting(t *testing.T) {
	existing := []string{"/store/old/lib", "/store/other/lib"}

	merged := elfpatch.MergeSearchPaths(existing, []string{"/store/other/lib", "/store/new/lib"})

	assert.Equal(t, []string{"/store/old/lib", "/store/other/lib", "/store/new/lib"}, merged)
}

func TestMergeSearchPaths_DropsEmptyEntries(t *testing.T) {
	merged := elfpatch.MergeSearchPaths([]string{"", "/store/a/lib"}, []string{""})

	assert.Equal(t, []string{"/store/a/lib"}, merged)
}

func TestPatch_MissingArtifact(t *testing.T) {
	patcher := elfpatch.NewPatcher()

	err := patcher.Patch(context.Background(), filepath.Join(t.TempDir(), "absent"), []string{"/store/xkb/lib"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrPatch)
}

func TestPatch_NotAnELFBinary(t *testing.T) {
	patcher := elfpatch.NewPatcher()

	path := filepath.Join(t.TempDir(), "script.sh")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\necho hi\n"), 0o700)) //nolint:gosec // Test fixture must be executable

	err := patcher.Patch(context.Background(), path, []string{"/store/xkb/lib"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrPatch)
}
