package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/forge/internal/adapters/fs"
	"go.trai.ch/forge/internal/core/domain"
)

func writeFile(t *testing.T, dir, rel, content string) {
	t.Helper()
	path := filepath.Join(dir, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestSnapshot_HashIndependentOfCreationOrder(t *testing.T) {
	snap := fs.NewSnapshotter(fs.NewWalker())

	// Same content written in opposite orders into two roots.
	a := t.TempDir()
	writeFile(t, a, "src/main.rs", "fn main() {}")
	writeFile(t, a, "src/render.rs", "pub fn draw() {}")
	writeFile(t, a, "Cargo.toml", "[package]")

	b := t.TempDir()
	writeFile(t, b, "Cargo.toml", "[package]")
	writeFile(t, b, "src/render.rs", "pub fn draw() {}")
	writeFile(t, b, "src/main.rs", "fn main() {}")

	treeA, err := snap.Snapshot(domain.FilesetSpec{Root: a})
	require.NoError(t, err)
	treeB, err := snap.Snapshot(domain.FilesetSpec{Root: b})
	require.NoError(t, err)

	assert.Equal(t, treeA.Hash, treeB.Hash)
	assert.Equal(t, 3, treeA.Len())
}

func TestSnapshot_HashChangesWithContent(t *testing.T) {
	snap := fs.NewSnapshotter(fs.NewWalker())

	root := t.TempDir()
	writeFile(t, root, "main.go", "package main")

	before, err := snap.Snapshot(domain.FilesetSpec{Root: root})
	require.NoError(t, err)

	writeFile(t, root, "main.go", "package main\n// changed")

	after, err := snap.Snapshot(domain.FilesetSpec{Root: root})
	require.NoError(t, err)

	assert.NotEqual(t, before.Hash, after.Hash)
}

func TestSnapshot_Exclusions(t *testing.T) {
	snap := fs.NewSnapshotter(fs.NewWalker())

	root := t.TempDir()
	writeFile(t, root, "src/main.rs", "fn main() {}")
	writeFile(t, root, "target/debug/app", "binary junk")
	writeFile(t, root, "result", "out link")

	tree, err := snap.Snapshot(domain.FilesetSpec{
		Root:    root,
		Exclude: []string{"target", "result"},
	})
	require.NoError(t, err)

	require.Equal(t, 1, tree.Len())
	assert.Equal(t, "src/main.rs", tree.Files[0].RelPath)
}

func TestSnapshot_ExclusionOutsideRootIgnored(t *testing.T) {
	snap := fs.NewSnapshotter(fs.NewWalker())

	root := t.TempDir()
	outside := t.TempDir()
	writeFile(t, root, "main.go", "package main")

	withOutside, err := snap.Snapshot(domain.FilesetSpec{
		Root:    root,
		Exclude: []string{outside, "../elsewhere"},
	})
	require.NoError(t, err)

	plain, err := snap.Snapshot(domain.FilesetSpec{Root: root})
	require.NoError(t, err)

	assert.Equal(t, plain.Hash, withOutside.Hash)
	assert.Equal(t, plain.Len(), withOutside.Len())
}

func TestSnapshot_GitDirectorySkipped(t *testing.T) {
	snap := fs.NewSnapshotter(fs.NewWalker())

	root := t.TempDir()
	writeFile(t, root, "main.go", "package main")
	writeFile(t, root, ".git/HEAD", "ref: refs/heads/main")

	tree, err := snap.Snapshot(domain.FilesetSpec{Root: root})
	require.NoError(t, err)

	require.Equal(t, 1, tree.Len())
	assert.Equal(t, "main.go", tree.Files[0].RelPath)
}

func TestSnapshot_UnreadableSubdirFails(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permission checks do not apply to root")
	}

	snap := fs.NewSnapshotter(fs.NewWalker())

	root := t.TempDir()
	writeFile(t, root, "main.go", "package main")
	writeFile(t, root, "locked/hidden.go", "package hidden")

	locked := filepath.Join(root, "locked")
	require.NoError(t, os.Chmod(locked, 0o000))
	t.Cleanup(func() { _ = os.Chmod(locked, 0o750) })

	// A tree that cannot be read in full must fail, not hash a subset.
	tree, err := snap.Snapshot(domain.FilesetSpec{Root: root})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrFileset)
	assert.Nil(t, tree)
}

func TestSnapshot_MissingRoot(t *testing.T) {
	snap := fs.NewSnapshotter(fs.NewWalker())

	_, err := snap.Snapshot(domain.FilesetSpec{Root: filepath.Join(t.TempDir(), "nope")})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrFileset)
}

func TestSnapshot_RootIsFile(t *testing.T) {
	snap := fs.NewSnapshotter(fs.NewWalker())

	dir := t.TempDir()
	writeFile(t, dir, "file", "not a dir")

	_, err := snap.Snapshot(domain.FilesetSpec{Root: filepath.Join(dir, "file")})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrFileset)
}
