package entities

import (
	"go.uber.org/dig"
)

// ConfigPath is the config file path requested on the command line, empty
// when auto-detection should be used.
type ConfigPath string

// RegisterProviders registers all entity providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	return container.Provide(func(path ConfigPath) (*Settings, error) {
		return LoadSettings(string(path))
	})
}
