package commands

import (
	"context"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/repograde/internal/domain/entities"
	"github.com/rios0rios0/repograde/internal/domain/repositories"
)

// History is the interface for the history command.
type History interface {
	Execute(ctx context.Context, opts HistoryOptions) ([]entities.Analysis, error)
}

// HistoryOptions holds the listing options. Limit <= 0 uses the configured default.
type HistoryOptions struct {
	Limit int
}

// HistoryCommand lists the most recent analyses, newest first.
type HistoryCommand struct {
	history      repositories.HistoryRepository
	defaultLimit int
}

// NewHistoryCommand creates a new HistoryCommand.
func NewHistoryCommand(
	history repositories.HistoryRepository,
	settings *entities.Settings,
) *HistoryCommand {
	return &HistoryCommand{
		history:      history,
		defaultLimit: settings.History.Limit,
	}
}

// Execute returns at most opts.Limit records.
func (it *HistoryCommand) Execute(ctx context.Context, opts HistoryOptions) ([]entities.Analysis, error) {
	limit := opts.Limit
	if limit <= 0 {
		limit = it.defaultLimit
	}

	records, err := it.history.ListRecent(ctx, limit)
	if err != nil {
		logger.Errorf("Failed to list %d recent analyses: %v", limit, err)
		return nil, ErrHistoryReadFailed
	}

	logger.Debugf("Listed %d recent analyses", len(records))
	return records, nil
}
