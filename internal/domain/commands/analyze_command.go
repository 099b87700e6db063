package commands

import (
	"context"
	"fmt"
	"time"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/repograde/internal/domain/entities"
	"github.com/rios0rios0/repograde/internal/domain/repositories"
	"github.com/rios0rios0/repograde/internal/domain/scoring"
)

// Analyze is the interface for the analyze command.
type Analyze interface {
	Execute(ctx context.Context, opts AnalyzeOptions) (*entities.Analysis, error)
}

// AnalyzeOptions holds the input of a single analysis. When LocalPath is set
// the URL is read from that checkout's origin remote.
type AnalyzeOptions struct {
	URL       string
	LocalPath string
}

// AnalyzeCommand resolves a repository, fetches it, scores it and records
// the result: parse URL -> fetch snapshot -> score -> persist.
type AnalyzeCommand struct {
	source  repositories.RepositorySource
	history repositories.HistoryRepository
	now     func() time.Time
}

// NewAnalyzeCommand creates a new AnalyzeCommand.
func NewAnalyzeCommand(
	source repositories.RepositorySource,
	history repositories.HistoryRepository,
) *AnalyzeCommand {
	return &AnalyzeCommand{
		source:  source,
		history: history,
		now:     time.Now,
	}
}

// Execute runs one analysis. On ErrHistoryWriteFailed the returned analysis
// is still valid, only not persisted.
func (it *AnalyzeCommand) Execute(ctx context.Context, opts AnalyzeOptions) (*entities.Analysis, error) {
	rawURL := opts.URL
	if opts.LocalPath != "" {
		remoteURL, err := resolveLocalRemote(opts.LocalPath)
		if err != nil {
			logger.Errorf("Failed to resolve remote of %q: %v", opts.LocalPath, err)
			return nil, fmt.Errorf("%w: %w", ErrInvalidRepositoryURL, err)
		}
		logger.Debugf("Resolved %q to remote %s", opts.LocalPath, remoteURL)
		rawURL = remoteURL
	}

	repo, err := parseRepositoryURL(rawURL)
	if err != nil {
		return nil, err
	}
	if opts.LocalPath != "" {
		rawURL = repo.RemoteURL
	}

	logger.Infof("Fetching data for %s/%s...", repo.Organization, repo.Name)

	snapshot, err := it.source.Fetch(ctx, repo)
	if err != nil {
		logger.Errorf("Failed to fetch %s/%s from %s: %v", repo.Organization, repo.Name, it.source.Name(), err)
		return nil, ErrRepositoryFetchFailed
	}

	result := scoring.ScoreSnapshot(*snapshot)

	repoName := snapshot.Metadata.FullName
	if repoName == "" {
		repoName = repo.ID
	}
	analysis := entities.NewAnalysis(repoName, rawURL, result, it.now())

	logger.Infof("Scored %s: %d/100 (%d roadmap items)", repoName, result.Score, len(result.Roadmap))

	if insertErr := it.history.Insert(ctx, analysis); insertErr != nil {
		logger.Errorf("Failed to save analysis of %s: %v", repoName, insertErr)
		return &analysis, ErrHistoryWriteFailed
	}

	return &analysis, nil
}
