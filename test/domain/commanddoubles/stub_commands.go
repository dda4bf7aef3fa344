//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/cihelper/internal/domain/commands"
	"github.com/rios0rios0/cihelper/internal/domain/entities"
)

// StubLocateFileCommand is a stub implementation of commands.LocateFile.
type StubLocateFileCommand struct {
	ExecuteCallCount int
	Result           entities.LookupResult
	ExecuteErr       error
	LastOpts         commands.LocateFileOptions
}

var _ commands.LocateFile = (*StubLocateFileCommand)(nil)

func (s *StubLocateFileCommand) Execute(
	_ context.Context,
	opts commands.LocateFileOptions,
) (entities.LookupResult, error) {
	s.ExecuteCallCount++
	s.LastOpts = opts
	return s.Result, s.ExecuteErr
}

// StubSelectArtifactCommand is a stub implementation of commands.SelectArtifact.
type StubSelectArtifactCommand struct {
	ExecuteCallCount int
	Artifact         entities.Artifact
	ExecuteErr       error
	LastOpts         commands.SelectArtifactOptions
}

var _ commands.SelectArtifact = (*StubSelectArtifactCommand)(nil)

func (s *StubSelectArtifactCommand) Execute(
	_ context.Context,
	opts commands.SelectArtifactOptions,
) (entities.Artifact, error) {
	s.ExecuteCallCount++
	s.LastOpts = opts
	return s.Artifact, s.ExecuteErr
}

// StubPackageNameCommand is a stub implementation of commands.PackageName.
type StubPackageNameCommand struct {
	Name       string
	ExecuteErr error
	LastDir    string
}

var _ commands.PackageName = (*StubPackageNameCommand)(nil)

func (s *StubPackageNameCommand) Execute(projectDir string) (string, error) {
	s.LastDir = projectDir
	return s.Name, s.ExecuteErr
}

// StubListExtrasCommand is a stub implementation of commands.ListExtras.
type StubListExtrasCommand struct {
	Extras     []string
	ExecuteErr error
	LastDir    string
}

var _ commands.ListExtras = (*StubListExtrasCommand)(nil)

func (s *StubListExtrasCommand) Execute(projectDir string) ([]string, error) {
	s.LastDir = projectDir
	return s.Extras, s.ExecuteErr
}

// StubMaxPythonCommand is a stub implementation of commands.MaxPython.
type StubMaxPythonCommand struct {
	Version    entities.PythonVersion
	ExecuteErr error
	LastDir    string
}

var _ commands.MaxPython = (*StubMaxPythonCommand)(nil)

func (s *StubMaxPythonCommand) Execute(_ context.Context, projectDir string) (entities.PythonVersion, error) {
	s.LastDir = projectDir
	return s.Version, s.ExecuteErr
}
