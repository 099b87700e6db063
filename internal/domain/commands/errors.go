package commands

import "errors"

var (
	// ErrInvalidRepositoryURL is returned when no owner/repo can be extracted.
	ErrInvalidRepositoryURL = errors.New("invalid GitHub repository URL")

	// ErrRepositoryFetchFailed hides the transport cause of a failed fetch.
	ErrRepositoryFetchFailed = errors.New("repository fetch failed")

	// ErrHistoryWriteFailed is returned alongside a computed analysis that
	// could not be persisted.
	ErrHistoryWriteFailed = errors.New("failed to save analysis")

	// ErrHistoryReadFailed is returned when recent analyses cannot be listed.
	ErrHistoryReadFailed = errors.New("failed to fetch history")
)
