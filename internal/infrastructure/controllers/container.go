package controllers

import (
	"go.uber.org/dig"

	"github.com/rios0rios0/repograde/internal/domain/entities"
)

// RegisterProviders registers all controller providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register controller constructors
	if err := container.Provide(NewServeController); err != nil {
		return err
	}
	if err := container.Provide(NewAnalyzeController); err != nil {
		return err
	}
	if err := container.Provide(NewHistoryController); err != nil {
		return err
	}
	if err := container.Provide(NewControllers); err != nil {
		return err
	}

	return nil
}

// NewControllers aggregates all controllers into a slice for the AppInternal.
func NewControllers(
	serveController *ServeController,
	analyzeController *AnalyzeController,
	historyController *HistoryController,
) *[]entities.Controller {
	return &[]entities.Controller{
		serveController,
		analyzeController,
		historyController,
	}
}
