package repositories

import (
	"context"

	"github.com/rios0rios0/repograde/internal/domain/entities"
)

// HistoryRepository is an append-only store of past analyses.
type HistoryRepository interface {
	// Insert appends a record. Records are never updated afterwards.
	Insert(ctx context.Context, analysis entities.Analysis) error

	// ListRecent returns at most limit records, newest first.
	ListRecent(ctx context.Context, limit int) ([]entities.Analysis, error)
}
