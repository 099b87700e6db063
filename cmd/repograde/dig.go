package main

import (
	"go.uber.org/dig"

	"github.com/rios0rios0/repograde/internal"
	"github.com/rios0rios0/repograde/internal/domain/entities"
)

func injectAppContext(configPath string) (*internal.AppInternal, error) {
	container := dig.New()

	// The config path comes from the command line and must be known before settings resolve
	if err := container.Provide(func() entities.ConfigPath {
		return entities.ConfigPath(configPath)
	}); err != nil {
		return nil, err
	}

	// Register all providers
	if err := internal.RegisterProviders(container); err != nil {
		return nil, err
	}

	// Invoke to get AppInternal
	var appInternal *internal.AppInternal
	if err := container.Invoke(func(ai *internal.AppInternal) {
		appInternal = ai
	}); err != nil {
		return nil, err
	}

	return appInternal, nil
}
