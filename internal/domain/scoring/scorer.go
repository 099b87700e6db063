// Package scoring derives a quality score, summary and improvement roadmap
// from a repository snapshot. Everything here is pure and safe for
// concurrent use.
package scoring

import (
	"slices"
	"strings"

	"github.com/rios0rios0/repograde/internal/domain/entities"
)

const (
	maxScore        = 100
	minReadmeSize   = 300
	minCommitCount  = 5
	excellentCutoff = 80
	goodCutoff      = 50
)

const (
	summaryExcellent = "Excellent work! Your repository demonstrates strong engineering practices."
	summaryGood      = "Good start, but there is significant room for improvement in documentation and structure."
	summaryPoor      = "The project needs immediate attention regarding structure and documentation to be production-ready."
)

// finding is what a single check contributes. The zero value contributes nothing.
type finding struct {
	penalty  int
	roadmap  string
	fragment string
}

// input bundles the three scoring inputs so checks share one signature.
type input struct {
	metadata entities.RepositoryMetadata
	files    entities.FileListing
	commits  entities.CommitList
}

type check func(in input) finding

// checks is evaluated in order; roadmap and summary fragments follow it.
var checks = []check{ //nolint:gochecknoglobals // fixed evaluation order
	checkReadme,
	checkGitignore,
	checkTests,
	checkDependencyManifest,
	checkCommitActivity,
	checkDescription,
}

// Score runs every check against the snapshot inputs. It never fails: missing
// fields and unavailable commit history are tolerated.
func Score(
	metadata entities.RepositoryMetadata,
	files entities.FileListing,
	commits entities.CommitList,
) entities.ScoreResult {
	in := input{metadata: metadata, files: files, commits: commits}

	score := maxScore
	roadmap := []string{}
	var fragments []string

	for _, c := range checks {
		f := c(in)
		score -= f.penalty
		if f.roadmap != "" {
			roadmap = append(roadmap, f.roadmap)
		}
		if f.fragment != "" {
			fragments = append(fragments, f.fragment)
		}
	}

	// tier is picked before the score is clamped
	summary := tierSummary(score)
	if len(fragments) > 0 {
		summary += " Specifically, it " + strings.Join(fragments, " and ") + "."
	}

	return entities.ScoreResult{
		Score:   max(score, 0),
		Summary: summary,
		Roadmap: roadmap,
	}
}

// ScoreSnapshot is Score over a fetched snapshot.
func ScoreSnapshot(snapshot entities.RepositorySnapshot) entities.ScoreResult {
	return Score(snapshot.Metadata, snapshot.Files, snapshot.Commits)
}

func tierSummary(score int) string {
	switch {
	case score > excellentCutoff:
		return summaryExcellent
	case score > goodCutoff:
		return summaryGood
	default:
		return summaryPoor
	}
}

func checkReadme(in input) finding {
	readme, ok := findFile(in.files, containsFold("readme"))
	if !ok {
		return finding{
			penalty:  20,
			roadmap:  "Create a README.md file to explain your project.",
			fragment: "lacks documentation",
		}
	}
	if readme.Size < minReadmeSize {
		return finding{
			penalty: 5,
			roadmap: "Expand your README with setup instructions and features.",
		}
	}
	return finding{}
}

func checkGitignore(in input) finding {
	if _, ok := findFile(in.files, exactName(".gitignore")); ok {
		return finding{}
	}
	return finding{
		penalty: 10,
		roadmap: "Add a .gitignore file to exclude node_modules and env files.",
	}
}

func checkTests(in input) finding {
	if _, ok := findFile(in.files, containsFold("test", "spec")); ok {
		return finding{}
	}
	return finding{
		penalty:  15,
		roadmap:  "Implement Unit Tests (e.g., using Jest or Mocha).",
		fragment: "has no visible tests",
	}
}

func checkDependencyManifest(in input) finding {
	if _, ok := findFile(in.files, exactName("package.json", "requirements.txt")); ok {
		return finding{}
	}
	return finding{
		penalty: 10,
		roadmap: "Include dependency definitions (package.json or requirements.txt).",
	}
}

// checkCommitActivity only penalises a history that was actually fetched.
func checkCommitActivity(in input) finding {
	if !in.commits.Available() || in.commits.Len() >= minCommitCount {
		return finding{}
	}
	return finding{
		penalty:  10,
		roadmap:  "Commit more frequently. The history is very sparse.",
		fragment: "shows low development activity",
	}
}

func checkDescription(in input) finding {
	if in.metadata.Description != "" {
		return finding{}
	}
	return finding{
		penalty: 5,
		roadmap: "Add a repository description/about section on GitHub.",
	}
}

// findFile returns the first entry, in listing order, whose name matches.
func findFile(files entities.FileListing, match func(name string) bool) (entities.FileEntry, bool) {
	for _, f := range files {
		if f.Name != "" && match(f.Name) {
			return f, true
		}
	}
	return entities.FileEntry{}, false
}

func containsFold(needles ...string) func(string) bool {
	return func(name string) bool {
		lower := strings.ToLower(name)
		for _, n := range needles {
			if strings.Contains(lower, n) {
				return true
			}
		}
		return false
	}
}

func exactName(names ...string) func(string) bool {
	return func(name string) bool {
		return slices.Contains(names, name)
	}
}
