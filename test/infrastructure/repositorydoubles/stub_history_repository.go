//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/repograde/internal/domain/entities"
	"github.com/rios0rios0/repograde/internal/domain/repositories"
)

// SpyHistoryRepository implements repositories.HistoryRepository as a configurable spy.
type SpyHistoryRepository struct {
	// --- Insert ---
	InsertErr error
	// spy: records received
	Inserted []entities.Analysis

	// --- ListRecent ---
	Recent  []entities.Analysis
	ListErr error
	// spy: limits requested
	RequestedLimits []int

	// --- Close ---
	CloseErr   error
	CloseCount int
}

var _ repositories.HistoryRepository = (*SpyHistoryRepository)(nil)

func (s *SpyHistoryRepository) Insert(_ context.Context, analysis entities.Analysis) error {
	s.Inserted = append(s.Inserted, analysis)
	return s.InsertErr
}

func (s *SpyHistoryRepository) ListRecent(_ context.Context, limit int) ([]entities.Analysis, error) {
	s.RequestedLimits = append(s.RequestedLimits, limit)
	if s.ListErr != nil {
		return nil, s.ListErr
	}
	return s.Recent, nil
}

func (s *SpyHistoryRepository) Close() error {
	s.CloseCount++
	return s.CloseErr
}
