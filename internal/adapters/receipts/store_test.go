package receipts_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/forge/internal/adapters/receipts"
	"go.trai.ch/forge/internal/core/domain"
)

func receipt(outputPath string) domain.BuildReceipt {
	return domain.BuildReceipt{
		Name:       "render-service",
		Version:    "0.4.1",
		Platform:   "x86_64-linux",
		SourceHash: "a1b2c3d4e5f60718",
		LockHash:   "1122334455667788",
		OutputPath: outputPath,
		BuiltAt:    time.Date(2026, 8, 14, 10, 0, 0, 0, time.UTC),
	}
}

func TestStore_RecordAndLookup(t *testing.T) {
	store := receipts.NewStore()
	outputPath := filepath.Join(t.TempDir(), "abc123-render-service-0.4.1")

	want := receipt(outputPath)
	require.NoError(t, store.Record(want))

	got, err := store.Lookup(outputPath)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, want, *got)
}

func TestStore_LookupMissing(t *testing.T) {
	store := receipts.NewStore()

	got, err := store.Lookup(filepath.Join(t.TempDir(), "no-such-artifact"))
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStore_RecordReplacesPrevious(t *testing.T) {
	store := receipts.NewStore()
	outputPath := filepath.Join(t.TempDir(), "abc123-render-service-0.4.1")

	first := receipt(outputPath)
	require.NoError(t, store.Record(first))

	second := first
	second.SourceHash = "ffffffffffffffff"
	require.NoError(t, store.Record(second))

	got, err := store.Lookup(outputPath)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "ffffffffffffffff", got.SourceHash)
}

func TestStore_IndexSharedPerStoreDir(t *testing.T) {
	store := receipts.NewStore()
	dir := t.TempDir()

	one := receipt(filepath.Join(dir, "aaa-render-service-0.4.1"))
	two := receipt(filepath.Join(dir, "bbb-render-service-0.4.2"))
	two.Version = "0.4.2"

	require.NoError(t, store.Record(one))
	require.NoError(t, store.Record(two))

	// Both land in one index file next to the artifacts.
	data, err := os.ReadFile(filepath.Join(dir, receipts.Filename))
	require.NoError(t, err)
	assert.Contains(t, string(data), "0.4.1")
	assert.Contains(t, string(data), "0.4.2")

	got, err := store.Lookup(one.OutputPath)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "0.4.1", got.Version)
}

func TestStore_CorruptIndexFails(t *testing.T) {
	store := receipts.NewStore()
	dir := t.TempDir()

	require.NoError(t, os.WriteFile(filepath.Join(dir, receipts.Filename), []byte("{not json"), 0o600))

	_, err := store.Lookup(filepath.Join(dir, "abc123-render-service-0.4.1"))
	require.Error(t, err)
}

func TestReceipt_MatchesPlan(t *testing.T) {
	plan := &domain.BuildPlan{
		Name:     "render-service",
		Version:  "0.4.1",
		Platform: "x86_64-linux",
		Source:   &domain.SourceTree{Hash: "a1b2c3d4e5f60718"},
		Lock:     &domain.Lockfile{Version: 1},
		OutputPath: filepath.Join("/store",
			"abc123-render-service-0.4.1"),
	}

	got := domain.NewReceipt(plan, time.Now())
	assert.True(t, got.Matches(plan))

	stale := got
	stale.SourceHash = "ffffffffffffffff"
	assert.False(t, stale.Matches(plan))
}
