//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"fmt"
	"slices"
	"time"

	testkit "github.com/rios0rios0/testkit/pkg/test"

	"github.com/rios0rios0/repograde/internal/domain/entities"
)

// SnapshotBuilder helps create repository snapshots with a fluent interface.
// The defaults describe a repository that passes every check.
type SnapshotBuilder struct {
	*testkit.BaseBuilder
	fullName         string
	description      string
	files            entities.FileListing
	commitCount      int
	commitsAvailable bool
}

// NewSnapshotBuilder creates a new snapshot builder with sensible defaults.
func NewSnapshotBuilder() *SnapshotBuilder {
	b := &SnapshotBuilder{BaseBuilder: testkit.NewBaseBuilder()}
	b.setDefaults()
	return b
}

func (b *SnapshotBuilder) setDefaults() {
	b.fullName = "octocat/hello-world"
	b.description = "A friendly test repository"
	b.files = entities.FileListing{
		{Name: "README.md", Size: 5000, Type: "file"},
		{Name: ".gitignore", Size: 120, Type: "file"},
		{Name: "test_app.py", Size: 900, Type: "file"},
		{Name: "package.json", Size: 450, Type: "file"},
	}
	b.commitCount = 20
	b.commitsAvailable = true
}

// WithFullName sets the owner/repo display name.
func (b *SnapshotBuilder) WithFullName(fullName string) *SnapshotBuilder {
	b.fullName = fullName
	return b
}

// WithDescription sets the repository description; empty means absent.
func (b *SnapshotBuilder) WithDescription(description string) *SnapshotBuilder {
	b.description = description
	return b
}

// WithFiles replaces the whole top-level listing.
func (b *SnapshotBuilder) WithFiles(files ...entities.FileEntry) *SnapshotBuilder {
	b.files = files
	return b
}

// WithFile appends a file entry.
func (b *SnapshotBuilder) WithFile(name string, size int) *SnapshotBuilder {
	b.files = append(slices.Clone(b.files), entities.FileEntry{Name: name, Size: size, Type: "file"})
	return b
}

// WithoutFile removes every entry with the given name.
func (b *SnapshotBuilder) WithoutFile(name string) *SnapshotBuilder {
	b.files = slices.DeleteFunc(slices.Clone(b.files), func(f entities.FileEntry) bool {
		return f.Name == name
	})
	return b
}

// WithCommitCount sets the number of fetched recent commits.
func (b *SnapshotBuilder) WithCommitCount(count int) *SnapshotBuilder {
	b.commitCount = count
	b.commitsAvailable = true
	return b
}

// WithUnavailableCommits marks the commit history as not fetched.
func (b *SnapshotBuilder) WithUnavailableCommits() *SnapshotBuilder {
	b.commitsAvailable = false
	return b
}

// Build creates the snapshot (satisfies testkit.Builder interface).
func (b *SnapshotBuilder) Build() interface{} {
	return b.BuildSnapshot()
}

// BuildSnapshot creates the snapshot with a concrete return type.
func (b *SnapshotBuilder) BuildSnapshot() entities.RepositorySnapshot {
	commits := entities.UnavailableCommits()
	if b.commitsAvailable {
		list := make([]entities.Commit, 0, b.commitCount)
		base := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
		for i := range b.commitCount {
			list = append(list, entities.Commit{
				SHA:     fmt.Sprintf("%040d", i),
				Message: fmt.Sprintf("commit %d", i),
				Author:  "octocat",
				Date:    base.Add(time.Duration(i) * time.Hour),
			})
		}
		commits = entities.AvailableCommits(list)
	}

	return entities.RepositorySnapshot{
		Metadata: entities.RepositoryMetadata{
			FullName:    b.fullName,
			Description: b.description,
			HTMLURL:     "https://github.com/" + b.fullName,
		},
		Files:   slices.Clone(b.files),
		Commits: commits,
	}
}

// Reset clears the builder state, allowing it to be reused.
func (b *SnapshotBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.setDefaults()
	return b
}

// Clone creates a deep copy of the SnapshotBuilder.
func (b *SnapshotBuilder) Clone() testkit.Builder {
	return &SnapshotBuilder{
		BaseBuilder:      b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		fullName:         b.fullName,
		description:      b.description,
		files:            slices.Clone(b.files),
		commitCount:      b.commitCount,
		commitsAvailable: b.commitsAvailable,
	}
}
