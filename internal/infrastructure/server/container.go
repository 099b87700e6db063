package server

import (
	"go.uber.org/dig"
)

// RegisterProviders registers the HTTP server components with the DIG container.
func RegisterProviders(container *dig.Container) error {
	if err := container.Provide(NewAnalysisHandler); err != nil {
		return err
	}
	if err := container.Provide(NewRouter); err != nil {
		return err
	}
	if err := container.Provide(NewServer); err != nil {
		return err
	}
	return nil
}
