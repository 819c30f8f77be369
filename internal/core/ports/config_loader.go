package ports

import "go.trai.ch/recent/internal/core/domain"

// ConfigLoader defines the interface for loading the runtime settings.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load returns the settings from defaults, the config file and the environment.
	Load() (*domain.Settings, error)
}
