package ports

import "go.trai.ch/nbuild/internal/core/domain"

// ConfigLoader defines the interface for loading the builder configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration at path. If path is a directory, the loader
	// looks for nbuild.yaml, then nbuild.toml, inside it.
	Load(path string) (*domain.BuilderConfig, error)
}
