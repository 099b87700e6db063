package commands

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/go-git/go-git/v5"

	"github.com/rios0rios0/repograde/internal/domain/entities"
)

const (
	providerGitHub = "github"
	originRemote   = "origin"
)

// githubURLPattern accepts HTTPS (github.com/owner/repo) and SSH
// (git@github.com:owner/repo) forms anywhere in the input.
var githubURLPattern = regexp.MustCompile(`github\.com[/:]([^/]+)/([^/]+)`)

// parseRepositoryURL extracts the owner and repository name from a GitHub URL.
func parseRepositoryURL(rawURL string) (entities.Repository, error) {
	match := githubURLPattern.FindStringSubmatch(strings.TrimSpace(rawURL))
	if match == nil {
		return entities.Repository{}, fmt.Errorf("%w: %q", ErrInvalidRepositoryURL, rawURL)
	}

	owner := trimURLSuffixes(match[1])
	name := strings.TrimSuffix(trimURLSuffixes(match[2]), ".git")
	if owner == "" || name == "" {
		return entities.Repository{}, fmt.Errorf("%w: %q", ErrInvalidRepositoryURL, rawURL)
	}

	return entities.Repository{
		ID:           owner + "/" + name,
		Name:         name,
		Organization: owner,
		RemoteURL:    fmt.Sprintf("https://github.com/%s/%s", owner, name),
		ProviderName: providerGitHub,
	}, nil
}

// trimURLSuffixes cuts a path segment at the first query or fragment marker.
func trimURLSuffixes(segment string) string {
	if i := strings.IndexAny(segment, "?#"); i >= 0 {
		return segment[:i]
	}
	return segment
}

// resolveLocalRemote reads the origin remote URL of the Git repository that
// contains dir.
func resolveLocalRemote(dir string) (string, error) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return "", fmt.Errorf("failed to open git repository at %q: %w", dir, err)
	}

	remote, err := repo.Remote(originRemote)
	if err != nil {
		if errors.Is(err, git.ErrRemoteNotFound) {
			return "", fmt.Errorf("repository at %q has no %q remote", dir, originRemote)
		}
		return "", fmt.Errorf("failed to read %q remote: %w", originRemote, err)
	}

	urls := remote.Config().URLs
	if len(urls) == 0 {
		return "", fmt.Errorf("remote %q has no URL configured", originRemote)
	}
	return urls[0], nil
}
