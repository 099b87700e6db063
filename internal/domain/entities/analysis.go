package entities

import (
	"time"

	"github.com/google/uuid"
)

// Analysis is an immutable history record of one past scoring run.
type Analysis struct {
	ID        uuid.UUID `json:"id"`
	RepoName  string    `json:"repoName"`
	RepoURL   string    `json:"repoUrl"`
	Score     int       `json:"score"`
	Summary   string    `json:"summary"`
	Roadmap   []string  `json:"roadmap"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewAnalysis builds a history record from a score result.
func NewAnalysis(repoName, repoURL string, result ScoreResult, createdAt time.Time) Analysis {
	roadmap := make([]string, len(result.Roadmap))
	copy(roadmap, result.Roadmap)
	return Analysis{
		ID:        uuid.New(),
		RepoName:  repoName,
		RepoURL:   repoURL,
		Score:     result.Score,
		Summary:   result.Summary,
		Roadmap:   roadmap,
		CreatedAt: createdAt.UTC(),
	}
}

// Result returns the score part of the record.
func (a Analysis) Result() ScoreResult {
	return ScoreResult{Score: a.Score, Summary: a.Summary, Roadmap: a.Roadmap}
}
