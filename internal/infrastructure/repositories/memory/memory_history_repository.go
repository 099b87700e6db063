package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/rios0rios0/repograde/internal/domain/entities"
	"github.com/rios0rios0/repograde/internal/domain/repositories"
)

// MemoryHistoryRepository keeps analyses in process memory. Records are lost
// on restart.
type MemoryHistoryRepository struct {
	mu      sync.RWMutex
	records []entities.Analysis
}

// NewMemoryHistoryRepository creates an empty in-memory history.
func NewMemoryHistoryRepository() *MemoryHistoryRepository {
	return &MemoryHistoryRepository{}
}

var _ repositories.HistoryRepository = (*MemoryHistoryRepository)(nil)

func (r *MemoryHistoryRepository) Insert(_ context.Context, analysis entities.Analysis) error {
	analysis.Roadmap = slices.Clone(analysis.Roadmap)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = append(r.records, analysis)
	return nil
}

// ListRecent returns copies ordered by creation time, newest first. Records
// with equal timestamps keep reverse insertion order.
func (r *MemoryHistoryRepository) ListRecent(_ context.Context, limit int) ([]entities.Analysis, error) {
	if limit <= 0 {
		return []entities.Analysis{}, nil
	}

	r.mu.RLock()
	out := make([]entities.Analysis, 0, len(r.records))
	for i := len(r.records) - 1; i >= 0; i-- {
		record := r.records[i]
		record.Roadmap = slices.Clone(record.Roadmap)
		out = append(out, record)
	}
	r.mu.RUnlock()

	slices.SortStableFunc(out, func(a, b entities.Analysis) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})

	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
