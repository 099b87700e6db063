package entities

import (
	"time"

	gitforgeEntities "github.com/rios0rios0/gitforge/pkg/global/domain/entities"
)

// Repository is re-exported from gitforge. Organization holds the owner and
// Name the repository, as resolved from a submitted URL.
type Repository = gitforgeEntities.Repository

// RepositoryMetadata holds the repository fields consulted during analysis.
type RepositoryMetadata struct {
	FullName    string
	Description string // empty means absent
	HTMLURL     string
}

// FileEntry is one top-level file or directory of a repository.
type FileEntry struct {
	Name string
	Size int
	Type string // "file", "dir", "symlink", "submodule"
}

// FileListing is the top-level listing of a repository. Order is irrelevant
// to scoring; a nil listing is equivalent to an empty one.
type FileListing []FileEntry

// Commit is a single entry of the recent commit history.
type Commit struct {
	SHA     string
	Message string
	Author  string
	Date    time.Time
}

// CommitList is either an available list of recent commits or unavailable.
// The zero value is unavailable.
type CommitList struct {
	commits   []Commit
	available bool
}

// AvailableCommits wraps a fetched commit history. A nil slice is an
// available, empty history.
func AvailableCommits(commits []Commit) CommitList {
	return CommitList{commits: commits, available: true}
}

// UnavailableCommits marks the commit history as not fetched or malformed.
func UnavailableCommits() CommitList {
	return CommitList{}
}

// Available reports whether the history was actually fetched.
func (c CommitList) Available() bool { return c.available }

// Len returns the number of commits, zero when unavailable.
func (c CommitList) Len() int { return len(c.commits) }

// Commits returns the commits, nil when unavailable.
func (c CommitList) Commits() []Commit { return c.commits }

// RepositorySnapshot is everything a RepositorySource returns for one repository.
type RepositorySnapshot struct {
	Metadata RepositoryMetadata
	Files    FileListing
	Commits  CommitList
}
