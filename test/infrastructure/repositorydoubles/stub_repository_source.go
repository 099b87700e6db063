//go:build integration || unit || test

// Package repositorydoubles provides test doubles (spies, stubs, dummies) for
// repository interfaces. These are hand-crafted implementations, no mock frameworks.
package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"
	"sync"

	"github.com/rios0rios0/repograde/internal/domain/entities"
	"github.com/rios0rios0/repograde/internal/domain/repositories"
)

// SpyRepositorySource implements repositories.RepositorySource as a configurable spy.
type SpyRepositorySource struct {
	// --- identity ---
	SourceName string

	// --- Fetch ---
	Snapshot *entities.RepositorySnapshot
	FetchErr error
	// spy: repositories that were requested
	FetchedRepos []entities.Repository

	mu sync.Mutex
}

var _ repositories.RepositorySource = (*SpyRepositorySource)(nil)

func (s *SpyRepositorySource) Name() string {
	if s.SourceName == "" {
		return "spy"
	}
	return s.SourceName
}

func (s *SpyRepositorySource) Fetch(
	_ context.Context, repo entities.Repository,
) (*entities.RepositorySnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.FetchedRepos = append(s.FetchedRepos, repo)
	if s.FetchErr != nil {
		return nil, s.FetchErr
	}
	if s.Snapshot == nil {
		return &entities.RepositorySnapshot{}, nil
	}
	snapshot := *s.Snapshot
	return &snapshot, nil
}

// FetchCount returns how many times Fetch was called.
func (s *SpyRepositorySource) FetchCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.FetchedRepos)
}

// DummyRepositorySource is a no-op implementation of repositories.RepositorySource.
type DummyRepositorySource struct{}

var _ repositories.RepositorySource = (*DummyRepositorySource)(nil)

func (d *DummyRepositorySource) Name() string { return "dummy" }

func (d *DummyRepositorySource) Fetch(
	_ context.Context, _ entities.Repository,
) (*entities.RepositorySnapshot, error) {
	return &entities.RepositorySnapshot{}, nil
}
