package catalog

// snapshotDocument is the on-disk schema of a pinned catalog snapshot.
type snapshotDocument struct {
	// Rev identifies the catalog snapshot this file was taken from.
	Rev string `json:"rev,omitempty"`

	// Packages maps package names to their per-platform entries.
	Packages map[string]packageEntry `json:"packages"`
}

// packageEntry holds the per-platform artifacts of one package.
type packageEntry struct {
	Platforms map[string]artifactEntry `json:"platforms"`
}

// artifactEntry is one installed artifact in the snapshot.
type artifactEntry struct {
	Version string `json:"version"`
	Path    string `json:"path"`
}
