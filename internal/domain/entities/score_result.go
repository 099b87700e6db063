package entities

// ScoreResult is the outcome of scoring one repository snapshot.
type ScoreResult struct {
	Score   int      `json:"score"`
	Summary string   `json:"summary"`
	Roadmap []string `json:"roadmap"` // fixed check order, not severity
}
