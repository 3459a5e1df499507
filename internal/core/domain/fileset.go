package domain

// FilesetSpec declares a build-input source tree as a root directory minus a
// set of excluded paths. Exclusions are interpreted relative to the root;
// paths outside the root are ignored.
type FilesetSpec struct {
	Root    string
	Exclude []string
}

// FileEntry is one file inside a SourceTree, addressed by its path relative
// to the root and the xxhash of its content.
type FileEntry struct {
	RelPath string
	Hash    uint64
}

// SourceTree is the deterministic, content-addressed snapshot derived from a
// FilesetSpec. Files are held in sorted relative-path order so the snapshot
// is independent of filesystem enumeration order.
type SourceTree struct {
	// Root is the absolute root the snapshot was taken from.
	Root string

	// Files lists every included file, sorted by RelPath.
	Files []FileEntry

	// Hash is the combined content digest of the sorted entries.
	Hash string
}

// Len returns the number of files in the snapshot.
func (t *SourceTree) Len() int {
	return len(t.Files)
}
