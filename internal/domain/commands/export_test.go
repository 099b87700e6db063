package commands

import "time"

// ParseRepositoryURL exports parseRepositoryURL for testing.
var ParseRepositoryURL = parseRepositoryURL //nolint:gochecknoglobals // test export

// ResolveLocalRemote exports resolveLocalRemote for testing.
var ResolveLocalRemote = resolveLocalRemote //nolint:gochecknoglobals // test export

// SetClock replaces the clock used to timestamp analyses.
func SetClock(command *AnalyzeCommand, now func() time.Time) {
	command.now = now
}
