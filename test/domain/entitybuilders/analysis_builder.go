//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"slices"
	"time"

	"github.com/google/uuid"
	testkit "github.com/rios0rios0/testkit/pkg/test"

	"github.com/rios0rios0/repograde/internal/domain/entities"
)

// AnalysisBuilder helps create history records with a fluent interface.
type AnalysisBuilder struct {
	*testkit.BaseBuilder
	id        uuid.UUID
	repoName  string
	repoURL   string
	score     int
	summary   string
	roadmap   []string
	createdAt time.Time
}

// NewAnalysisBuilder creates a new analysis builder with sensible defaults.
func NewAnalysisBuilder() *AnalysisBuilder {
	b := &AnalysisBuilder{BaseBuilder: testkit.NewBaseBuilder()}
	b.setDefaults()
	return b
}

func (b *AnalysisBuilder) setDefaults() {
	b.id = uuid.New()
	b.repoName = "octocat/hello-world"
	b.repoURL = "https://github.com/octocat/hello-world"
	b.score = 85
	b.summary = "Excellent work! Your repository demonstrates strong engineering practices."
	b.roadmap = []string{"Add a .gitignore file to exclude node_modules and env files."}
	b.createdAt = time.Date(2025, time.January, 2, 15, 4, 5, 0, time.UTC)
}

// WithID sets the record identifier.
func (b *AnalysisBuilder) WithID(id uuid.UUID) *AnalysisBuilder {
	b.id = id
	return b
}

// WithRepoName sets the owner/repo display name.
func (b *AnalysisBuilder) WithRepoName(repoName string) *AnalysisBuilder {
	b.repoName = repoName
	return b
}

// WithRepoURL sets the submitted repository URL.
func (b *AnalysisBuilder) WithRepoURL(repoURL string) *AnalysisBuilder {
	b.repoURL = repoURL
	return b
}

// WithScore sets the score.
func (b *AnalysisBuilder) WithScore(score int) *AnalysisBuilder {
	b.score = score
	return b
}

// WithSummary sets the summary.
func (b *AnalysisBuilder) WithSummary(summary string) *AnalysisBuilder {
	b.summary = summary
	return b
}

// WithRoadmap sets the roadmap lines.
func (b *AnalysisBuilder) WithRoadmap(roadmap ...string) *AnalysisBuilder {
	b.roadmap = roadmap
	return b
}

// WithCreatedAt sets the creation timestamp.
func (b *AnalysisBuilder) WithCreatedAt(createdAt time.Time) *AnalysisBuilder {
	b.createdAt = createdAt
	return b
}

// Build creates the analysis (satisfies testkit.Builder interface).
func (b *AnalysisBuilder) Build() interface{} {
	return b.BuildAnalysis()
}

// BuildAnalysis creates the analysis with a concrete return type.
func (b *AnalysisBuilder) BuildAnalysis() entities.Analysis {
	roadmap := slices.Clone(b.roadmap)
	if roadmap == nil {
		roadmap = []string{}
	}
	return entities.Analysis{
		ID:        b.id,
		RepoName:  b.repoName,
		RepoURL:   b.repoURL,
		Score:     b.score,
		Summary:   b.summary,
		Roadmap:   roadmap,
		CreatedAt: b.createdAt,
	}
}

// Reset clears the builder state, allowing it to be reused.
func (b *AnalysisBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.setDefaults()
	return b
}

// Clone creates a deep copy of the AnalysisBuilder.
func (b *AnalysisBuilder) Clone() testkit.Builder {
	return &AnalysisBuilder{
		BaseBuilder: b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		id:          b.id,
		repoName:    b.repoName,
		repoURL:     b.repoURL,
		score:       b.score,
		summary:     b.summary,
		roadmap:     slices.Clone(b.roadmap),
		createdAt:   b.createdAt,
	}
}
