package cached

import (
	"context"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/repograde/internal/domain/entities"
	"github.com/rios0rios0/repograde/internal/domain/repositories"
)

// CachedRepositorySource keeps successful snapshots of an origin source for
// a limited time, so repeated analyses of one repository do not hit the API.
type CachedRepositorySource struct {
	origin repositories.RepositorySource
	cache  *expirable.LRU[string, entities.RepositorySnapshot]
}

// NewCachedRepositorySource wraps origin with an LRU of the given size whose
// entries expire after ttl.
func NewCachedRepositorySource(
	origin repositories.RepositorySource,
	size int,
	ttl time.Duration,
) *CachedRepositorySource {
	return &CachedRepositorySource{
		origin: origin,
		cache:  expirable.NewLRU[string, entities.RepositorySnapshot](size, nil, ttl),
	}
}

var _ repositories.RepositorySource = (*CachedRepositorySource)(nil)

func (s *CachedRepositorySource) Name() string { return s.origin.Name() }

// Fetch serves from the cache when possible. Failures are never cached.
func (s *CachedRepositorySource) Fetch(
	ctx context.Context,
	repo entities.Repository,
) (*entities.RepositorySnapshot, error) {
	key := cacheKey(repo)
	if snapshot, ok := s.cache.Get(key); ok {
		logger.Debugf("Snapshot cache hit for %s", key)
		return &snapshot, nil
	}

	snapshot, err := s.origin.Fetch(ctx, repo)
	if err != nil {
		return nil, err
	}

	s.cache.Add(key, *snapshot)
	return snapshot, nil
}

// Len returns the number of live cache entries.
func (s *CachedRepositorySource) Len() int {
	return s.cache.Len()
}

// GitHub owner and repository names are case-insensitive.
func cacheKey(repo entities.Repository) string {
	return strings.ToLower(repo.Organization + "/" + repo.Name)
}
