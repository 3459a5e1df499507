package domain

import "time"

// BuildReceipt records the inputs a packaged artifact was produced from.
// Receipts make a store directory self-describing: given an output path,
// the exact source tree, lockfile, and platform can be recovered.
type BuildReceipt struct {
	Name     string   `json:"name"`
	Version  string   `json:"version"`
	Platform Platform `json:"platform"`

	SourceHash string `json:"source_hash"`
	LockHash   string `json:"lock_hash"`

	OutputPath string    `json:"output_path"`
	BuiltAt    time.Time `json:"built_at"`
}

// NewReceipt derives a receipt from an evaluated plan.
func NewReceipt(plan *BuildPlan, builtAt time.Time) BuildReceipt {
	return BuildReceipt{
		Name:       plan.Name,
		Version:    plan.Version,
		Platform:   plan.Platform,
		SourceHash: plan.Source.Hash,
		LockHash:   plan.Lock.ContentHash(),
		OutputPath: plan.OutputPath,
		BuiltAt:    builtAt,
	}
}

// Matches reports whether the receipt describes the given plan's inputs.
func (r BuildReceipt) Matches(plan *BuildPlan) bool {
	return r.Name == plan.Name &&
		r.Version == plan.Version &&
		r.Platform == plan.Platform &&
		r.SourceHash == plan.Source.Hash &&
		r.LockHash == plan.Lock.ContentHash() &&
		r.OutputPath == plan.OutputPath
}
