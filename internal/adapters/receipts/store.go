// Package receipts implements the flat-file build receipt store that sits
// next to packaged artifacts.
package receipts

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"go.trai.ch/forge/internal/core/domain"
	"go.trai.ch/forge/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ReceiptStore = (*Store)(nil)

// Filename is the receipt index kept in each store directory.
const Filename = "receipts.json"

// Store implements ports.ReceiptStore using one JSON document per store
// directory, keyed by output path. The store directory is derived from the
// output path, so one Store serves any number of store roots.
type Store struct {
	mu sync.Mutex
}

// NewStore creates a new Store.
func NewStore() *Store {
	return &Store{}
}

// Record persists the receipt for its output path, replacing any previous
// receipt recorded there.
func (s *Store) Record(receipt domain.BuildReceipt) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	path := indexPath(receipt.OutputPath)

	index, err := loadIndex(path)
	if err != nil {
		return err
	}
	index[receipt.OutputPath] = receipt

	data, err := json.MarshalIndent(index, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to marshal receipt index")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return zerr.Wrap(err, "failed to create store directory")
	}

	//nolint:gosec // Path is cleaned and provided by trusted caller
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return zerr.Wrap(err, "failed to write receipt index")
	}

	return nil
}

// Lookup returns the receipt recorded for outputPath, or nil if none exists.
func (s *Store) Lookup(outputPath string) (*domain.BuildReceipt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	index, err := loadIndex(indexPath(outputPath))
	if err != nil {
		return nil, err
	}

	receipt, ok := index[outputPath]
	if !ok {
		return nil, nil
	}
	return &receipt, nil
}

// indexPath locates the receipt index of the store directory that owns
// outputPath.
func indexPath(outputPath string) string {
	return filepath.Join(filepath.Dir(filepath.Clean(outputPath)), Filename)
}

func loadIndex(path string) (map[string]domain.BuildReceipt, error) {
	index := make(map[string]domain.BuildReceipt)

	//nolint:gosec // Path is cleaned and provided by trusted caller
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return index, nil
		}
		return nil, zerr.Wrap(err, "failed to read receipt index")
	}

	if len(data) == 0 {
		return index, nil
	}

	if err := json.Unmarshal(data, &index); err != nil {
		return nil, zerr.Wrap(err, "failed to unmarshal receipt index")
	}

	return index, nil
}
