package ports

import "go.trai.ch/forge/internal/core/domain"

// ReceiptStore persists build receipts alongside packaged artifacts.
//
//go:generate go run go.uber.org/mock/mockgen -source=receipts.go -destination=mocks/mock_receipts.go -package=mocks
type ReceiptStore interface {
	// Record persists the receipt for its output path, replacing any
	// previous receipt recorded there.
	Record(receipt domain.BuildReceipt) error

	// Lookup returns the receipt recorded for outputPath, or nil if none
	// exists.
	Lookup(outputPath string) (*domain.BuildReceipt, error)
}
