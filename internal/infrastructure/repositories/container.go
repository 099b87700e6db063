package repositories

import (
	"net/http"
	"time"

	logger "github.com/sirupsen/logrus"
	"go.uber.org/dig"

	"github.com/rios0rios0/repograde/internal/domain/entities"
	"github.com/rios0rios0/repograde/internal/domain/repositories"
	"github.com/rios0rios0/repograde/internal/infrastructure/repositories/cached"
	"github.com/rios0rios0/repograde/internal/infrastructure/repositories/github"
	"github.com/rios0rios0/repograde/internal/infrastructure/repositories/memory"
	"github.com/rios0rios0/repograde/internal/infrastructure/repositories/postgres"
)

const httpTimeout = 30 * time.Second

// RegisterProviders registers all repository implementations with the DIG container.
func RegisterProviders(container *dig.Container) error {
	if err := container.Provide(NewRepositorySource); err != nil {
		return err
	}
	if err := container.Provide(NewHistoryRepository); err != nil {
		return err
	}
	return nil
}

// NewRepositorySource builds the GitHub source, wrapped in a snapshot cache
// unless caching is disabled.
func NewRepositorySource(settings *entities.Settings) (repositories.RepositorySource, error) {
	//nolint:exhaustruct // Minimal Client initialization with required fields only
	httpClient := &http.Client{Timeout: httpTimeout}
	source, err := github.NewGitHubRepositorySource(httpClient, settings.GitHub)
	if err != nil {
		return nil, err
	}
	if settings.Cache.Size <= 0 {
		logger.Debugf("Snapshot cache disabled")
		return source, nil
	}
	return cached.NewCachedRepositorySource(source, settings.Cache.Size, settings.Cache.TTL), nil
}

// NewHistoryRepository picks PostgreSQL when a database URL is configured and
// falls back to process memory otherwise. The database is not contacted here,
// so commands that never touch history work while it is down.
func NewHistoryRepository(settings *entities.Settings) (repositories.HistoryRepository, error) {
	if settings.Storage.DatabaseURL == "" {
		logger.Infof("No database configured, keeping analysis history in memory")
		return memory.NewMemoryHistoryRepository(), nil
	}

	repo, err := postgres.NewPostgresHistoryRepository(settings.Storage.DatabaseURL)
	if err != nil {
		return nil, err
	}
	logger.Infof("Storing analysis history in PostgreSQL")
	return repo, nil
}
