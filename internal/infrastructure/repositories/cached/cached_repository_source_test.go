//go:build unit

package cached_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/repograde/internal/domain/entities"
	"github.com/rios0rios0/repograde/internal/infrastructure/repositories/cached"
	"github.com/rios0rios0/repograde/test/domain/entitybuilders"
	"github.com/rios0rios0/repograde/test/infrastructure/repositorydoubles"
)

func TestCachedRepositorySource(t *testing.T) {
	t.Parallel()

	repo := entities.Repository{Organization: "octocat", Name: "hello"}

	t.Run("should serve a repeated fetch from the cache", func(t *testing.T) {
		t.Parallel()

		// given
		snapshot := entitybuilders.NewSnapshotBuilder().BuildSnapshot()
		origin := &repositorydoubles.SpyRepositorySource{Snapshot: &snapshot}
		source := cached.NewCachedRepositorySource(origin, 8, time.Minute)

		// when
		first, firstErr := source.Fetch(context.Background(), repo)
		second, secondErr := source.Fetch(context.Background(), repo)

		// then
		require.NoError(t, firstErr)
		require.NoError(t, secondErr)
		assert.Equal(t, first, second)
		assert.Equal(t, 1, origin.FetchCount())
		assert.Equal(t, 1, source.Len())
	})

	t.Run("should share entries across owner and name casing", func(t *testing.T) {
		t.Parallel()

		// given
		snapshot := entitybuilders.NewSnapshotBuilder().BuildSnapshot()
		origin := &repositorydoubles.SpyRepositorySource{Snapshot: &snapshot}
		source := cached.NewCachedRepositorySource(origin, 8, time.Minute)

		// when
		_, _ = source.Fetch(context.Background(), repo)
		_, err := source.Fetch(context.Background(), entities.Repository{Organization: "OctoCat", Name: "Hello"})

		// then
		require.NoError(t, err)
		assert.Equal(t, 1, origin.FetchCount())
	})

	t.Run("should not cache failures", func(t *testing.T) {
		t.Parallel()

		// given
		origin := &repositorydoubles.SpyRepositorySource{FetchErr: errors.New("502 Bad Gateway")}
		source := cached.NewCachedRepositorySource(origin, 8, time.Minute)

		// when
		_, firstErr := source.Fetch(context.Background(), repo)
		_, secondErr := source.Fetch(context.Background(), repo)

		// then
		require.Error(t, firstErr)
		require.Error(t, secondErr)
		assert.Equal(t, 2, origin.FetchCount())
		assert.Equal(t, 0, source.Len())
	})

	t.Run("should refetch after the entry expires", func(t *testing.T) {
		t.Parallel()

		// given
		snapshot := entitybuilders.NewSnapshotBuilder().BuildSnapshot()
		origin := &repositorydoubles.SpyRepositorySource{Snapshot: &snapshot}
		source := cached.NewCachedRepositorySource(origin, 8, 20*time.Millisecond)
		_, _ = source.Fetch(context.Background(), repo)

		// when
		time.Sleep(60 * time.Millisecond)
		_, err := source.Fetch(context.Background(), repo)

		// then
		require.NoError(t, err)
		assert.Equal(t, 2, origin.FetchCount())
	})

	t.Run("should keep the origin name", func(t *testing.T) {
		t.Parallel()

		// given
		origin := &repositorydoubles.SpyRepositorySource{SourceName: "github"}
		source := cached.NewCachedRepositorySource(origin, 8, time.Minute)

		// when
		name := source.Name()

		// then
		assert.Equal(t, "github", name)
	})
}
