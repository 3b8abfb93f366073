package ports

import "go.trai.ch/breeze/internal/core/domain"

// ConfigLoader defines the interface for loading the build configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load discovers breeze.yaml walking up from cwd and returns the resolved configuration.
	// It returns domain.ErrConfigNotFound when no file exists.
	Load(cwd string) (*domain.Config, error)
}
