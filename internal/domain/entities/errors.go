package entities

import (
	"errors"
)

// Exit codes of the cihelper binary.
const (
	ExitSuccess  = 0
	ExitFailure  = 1
	ExitNotFound = 2
)

var (
	// ErrMissingCredential is returned before any remote lookup when no GitHub token is available.
	ErrMissingCredential = errors.New("GITHUB_TOKEN is not set")

	// ErrMissingManifest is returned when a project has neither pyproject.toml nor setup.cfg.
	ErrMissingManifest = errors.New("could not find pyproject.toml or setup.cfg")

	// ErrNoArtifact is returned when no artifact survives the selection filters.
	ErrNoArtifact = errors.New("no previous artifact found on this branch")

	// ErrFileNotFound is returned when every lookup strategy was exhausted.
	ErrFileNotFound = errors.New("could not find file")

	// ErrNoPythonRelease is returned when no Python release satisfies the project's range.
	ErrNoPythonRelease = errors.New("no matching python release")

	// ErrInvalidInput wraps unreadable or malformed command input.
	ErrInvalidInput = errors.New("invalid input")
)

// ExitCode maps an error returned by a command to the process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrFileNotFound):
		return ExitNotFound
	default:
		return ExitFailure
	}
}
