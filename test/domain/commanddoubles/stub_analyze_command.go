//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"
	"sync"

	"github.com/rios0rios0/repograde/internal/domain/commands"
	"github.com/rios0rios0/repograde/internal/domain/entities"
)

// StubAnalyzeCommand is a stub implementation of commands.Analyze.
type StubAnalyzeCommand struct {
	Analysis   *entities.Analysis
	ExecuteErr error

	mu               sync.Mutex
	executeCallCount int
	lastOpts         commands.AnalyzeOptions
}

var _ commands.Analyze = (*StubAnalyzeCommand)(nil)

func (s *StubAnalyzeCommand) Execute(
	_ context.Context,
	opts commands.AnalyzeOptions,
) (*entities.Analysis, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.executeCallCount++
	s.lastOpts = opts
	return s.Analysis, s.ExecuteErr
}

// ExecuteCallCount returns how many times Execute ran.
func (s *StubAnalyzeCommand) ExecuteCallCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.executeCallCount
}

// LastOpts returns the options of the latest Execute call.
func (s *StubAnalyzeCommand) LastOpts() commands.AnalyzeOptions {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastOpts
}
