//go:build unit

package repositories_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/dig"

	"github.com/rios0rios0/repograde/internal/domain/entities"
	domainRepos "github.com/rios0rios0/repograde/internal/domain/repositories"
	"github.com/rios0rios0/repograde/internal/infrastructure/repositories"
	"github.com/rios0rios0/repograde/internal/infrastructure/repositories/cached"
	"github.com/rios0rios0/repograde/internal/infrastructure/repositories/github"
	"github.com/rios0rios0/repograde/internal/infrastructure/repositories/memory"
	"github.com/rios0rios0/repograde/internal/infrastructure/repositories/postgres"
)

func TestNewRepositorySource(t *testing.T) {
	t.Parallel()

	t.Run("should wrap the GitHub source in a cache by default", func(t *testing.T) {
		t.Parallel()

		// given
		settings := &entities.Settings{Cache: entities.CacheSettings{Size: 8, TTL: time.Minute}}

		// when
		source, err := repositories.NewRepositorySource(settings)

		// then
		require.NoError(t, err)
		assert.IsType(t, &cached.CachedRepositorySource{}, source)
		assert.Equal(t, "github", source.Name())
	})

	t.Run("should return the bare GitHub source when caching is disabled", func(t *testing.T) {
		t.Parallel()

		// given
		settings := &entities.Settings{Cache: entities.CacheSettings{Size: -1}}

		// when
		source, err := repositories.NewRepositorySource(settings)

		// then
		require.NoError(t, err)
		assert.IsType(t, &github.GitHubRepositorySource{}, source)
	})
}

func TestNewHistoryRepository(t *testing.T) {
	t.Parallel()

	t.Run("should keep history in memory without a database URL", func(t *testing.T) {
		t.Parallel()

		// given
		settings := &entities.Settings{}

		// when
		history, err := repositories.NewHistoryRepository(settings)

		// then
		require.NoError(t, err)
		assert.IsType(t, &memory.MemoryHistoryRepository{}, history)
	})

	t.Run("should not contact an unreachable database while wiring", func(t *testing.T) {
		t.Parallel()

		// given
		settings := &entities.Settings{Storage: entities.StorageSettings{
			DatabaseURL: "postgres://nobody@127.0.0.1:1/absent?connect_timeout=1",
		}}

		// when
		history, err := repositories.NewHistoryRepository(settings)

		// then
		require.NoError(t, err)
		assert.IsType(t, &postgres.PostgresHistoryRepository{}, history)
	})
}

func TestRegisterProviders(t *testing.T) {
	t.Parallel()

	t.Run("should resolve both repositories from settings", func(t *testing.T) {
		t.Parallel()

		// given
		container := dig.New()
		require.NoError(t, container.Provide(func() *entities.Settings {
			return &entities.Settings{Cache: entities.CacheSettings{Size: 4, TTL: time.Minute}}
		}))

		// when
		err := repositories.RegisterProviders(container)

		// then
		require.NoError(t, err)
		require.NoError(t, container.Invoke(func(
			source domainRepos.RepositorySource,
			history domainRepos.HistoryRepository,
		) {
			assert.NotNil(t, source)
			assert.NotNil(t, history)
		}))
	})
}
