package github

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	gh "github.com/google/go-github/v66/github"
	"golang.org/x/sync/errgroup"

	"github.com/rios0rios0/repograde/internal/domain/entities"
	"github.com/rios0rios0/repograde/internal/domain/repositories"
)

const (
	sourceName         = "github"
	defaultCommitLimit = 10
)

// GitHubRepositorySource implements repositories.RepositorySource for GitHub.
type GitHubRepositorySource struct {
	client      *gh.Client
	commitLimit int
}

// NewGitHubRepositorySource creates a GitHub source. An empty token uses
// anonymous access; a non-empty baseURL points the client at another API root.
func NewGitHubRepositorySource(
	httpClient *http.Client,
	settings entities.GitHubSettings,
) (*GitHubRepositorySource, error) {
	client := gh.NewClient(httpClient)
	if settings.Token != "" {
		client = client.WithAuthToken(settings.Token)
	}

	if settings.BaseURL != "" {
		baseURL, err := url.Parse(strings.TrimSuffix(settings.BaseURL, "/") + "/")
		if err != nil {
			return nil, fmt.Errorf("invalid GitHub API URL %q: %w", settings.BaseURL, err)
		}
		client.BaseURL = baseURL
	}

	commitLimit := settings.CommitLimit
	if commitLimit <= 0 {
		commitLimit = defaultCommitLimit
	}

	return &GitHubRepositorySource{
		client:      client,
		commitLimit: commitLimit,
	}, nil
}

var _ repositories.RepositorySource = (*GitHubRepositorySource)(nil)

func (s *GitHubRepositorySource) Name() string { return sourceName }

// Fetch reads the repository metadata, its root directory listing and the
// most recent commits. The three requests run concurrently; the first failure
// cancels the others.
func (s *GitHubRepositorySource) Fetch(
	ctx context.Context,
	repo entities.Repository,
) (*entities.RepositorySnapshot, error) {
	owner, name := repo.Organization, repo.Name
	snapshot := &entities.RepositorySnapshot{}

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		metadata, err := s.getMetadata(groupCtx, owner, name)
		if err != nil {
			return err
		}
		snapshot.Metadata = metadata
		return nil
	})

	group.Go(func() error {
		files, err := s.listRootFiles(groupCtx, owner, name)
		if err != nil {
			return err
		}
		snapshot.Files = files
		return nil
	})

	group.Go(func() error {
		commits, err := s.listRecentCommits(groupCtx, owner, name)
		if err != nil {
			return err
		}
		snapshot.Commits = entities.AvailableCommits(commits)
		return nil
	})

	if err := group.Wait(); err != nil {
		return nil, err
	}
	return snapshot, nil
}

func (s *GitHubRepositorySource) getMetadata(
	ctx context.Context,
	owner, name string,
) (entities.RepositoryMetadata, error) {
	r, _, err := s.client.Repositories.Get(ctx, owner, name)
	if err != nil {
		return entities.RepositoryMetadata{}, fmt.Errorf(
			"failed to get repository %q: %w", owner+"/"+name, describe(err),
		)
	}

	return entities.RepositoryMetadata{
		FullName:    r.GetFullName(),
		Description: r.GetDescription(),
		HTMLURL:     r.GetHTMLURL(),
	}, nil
}

func (s *GitHubRepositorySource) listRootFiles(
	ctx context.Context,
	owner, name string,
) (entities.FileListing, error) {
	_, directory, _, err := s.client.Repositories.GetContents(
		ctx, owner, name, "",
		&gh.RepositoryContentGetOptions{},
	)
	if err != nil {
		return nil, fmt.Errorf(
			"failed to list contents of %q: %w", owner+"/"+name, describe(err),
		)
	}

	files := make(entities.FileListing, 0, len(directory))
	for _, entry := range directory {
		files = append(files, entities.FileEntry{
			Name: entry.GetName(),
			Size: entry.GetSize(),
			Type: entry.GetType(),
		})
	}
	return files, nil
}

func (s *GitHubRepositorySource) listRecentCommits(
	ctx context.Context,
	owner, name string,
) ([]entities.Commit, error) {
	list, _, err := s.client.Repositories.ListCommits(
		ctx, owner, name,
		&gh.CommitsListOptions{ListOptions: gh.ListOptions{PerPage: s.commitLimit}},
	)
	if err != nil {
		return nil, fmt.Errorf(
			"failed to list commits of %q: %w", owner+"/"+name, describe(err),
		)
	}

	commits := make([]entities.Commit, 0, len(list))
	for _, c := range list {
		commits = append(commits, entities.Commit{
			SHA:     c.GetSHA(),
			Message: c.GetCommit().GetMessage(),
			Author:  c.GetCommit().GetAuthor().GetName(),
			Date:    c.GetCommit().GetAuthor().GetDate().Time,
		})
	}
	return commits, nil
}

// describe adds the rate-limit reset time to rate-limit errors; other errors
// pass through unchanged.
func describe(err error) error {
	var rateErr *gh.RateLimitError
	if errors.As(err, &rateErr) {
		return fmt.Errorf("rate limit exceeded until %s: %w", rateErr.Rate.Reset.Time, err)
	}
	return err
}
