package repositories

import (
	"context"

	"github.com/rios0rios0/repograde/internal/domain/entities"
)

// RepositorySource fetches the metadata, top-level file listing and recent
// commit history of a hosted repository. Implementations may fail for
// network errors, missing or private repositories and rate limiting.
type RepositorySource interface {
	// Name returns the source identifier (e.g. "github").
	Name() string

	// Fetch returns a snapshot of the given repository.
	Fetch(ctx context.Context, repo entities.Repository) (*entities.RepositorySnapshot, error)
}
