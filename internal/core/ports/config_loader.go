package ports

import "go.trai.ch/forge/internal/core/domain"

// ConfigLoader reads the package declaration for a working directory.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the declaration from the given working directory.
	Load(cwd string) (*domain.PackageDecl, error)
}
