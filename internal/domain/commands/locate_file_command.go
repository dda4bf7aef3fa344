package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/cihelper/internal/domain/entities"
	infraRepos "github.com/rios0rios0/cihelper/internal/infrastructure/repositories"
)

const (
	providerGitHub = "github"
	destDirMode    = 0o755
	destFileMode   = 0o644
)

// LocateFile is the interface for the locate-file command.
type LocateFile interface {
	Execute(ctx context.Context, opts LocateFileOptions) (entities.LookupResult, error)
}

// LocateFileOptions holds the fully resolved inputs of one lookup.
type LocateFileOptions struct {
	Filename    string
	Branch      string
	Repository  string // owner/name
	Destination string // empty leaves writing to the caller
	RepoDir     string
	Token       string
	APIURL      string
	VCS         string
	NotFound    string
	MaxDepth    int

	LegacyPrefix   string
	LegacyFilename string
}

// LocateFileCommand wires a HistoricalFileLocator to the configured hosting
// provider and version-control backend.
type LocateFileCommand struct {
	providers *infraRepos.ProviderRegistry
	histories *infraRepos.HistoryRegistry
	log       logger.FieldLogger
}

// NewLocateFileCommand creates a new LocateFileCommand.
func NewLocateFileCommand(
	providers *infraRepos.ProviderRegistry,
	histories *infraRepos.HistoryRegistry,
	log logger.FieldLogger,
) *LocateFileCommand {
	return &LocateFileCommand{providers: providers, histories: histories, log: log}
}

// Execute looks the file up and, when a destination is set, writes it there.
// An exhausted search returns ErrFileNotFound unless the policy assumes a new file.
func (it *LocateFileCommand) Execute(ctx context.Context, opts LocateFileOptions) (entities.LookupResult, error) {
	if opts.Token == "" {
		return entities.NotFound(), entities.ErrMissingCredential
	}
	if opts.Filename == "" || opts.Branch == "" {
		return entities.NotFound(), fmt.Errorf("%w: filename and branch are required", entities.ErrInvalidInput)
	}

	repo, err := entities.ParseRepository(opts.Repository)
	if err != nil {
		return entities.NotFound(), err
	}
	policy, err := entities.ParseNotFoundPolicy(opts.NotFound)
	if err != nil {
		return entities.NotFound(), err
	}

	hosting, err := it.providers.Get(providerGitHub, opts.Token, opts.APIURL)
	if err != nil {
		return entities.NotFound(), fmt.Errorf("failed to create hosting provider: %w", err)
	}
	vcs := opts.VCS
	if vcs == "" {
		vcs = entities.DefaultVCS
	}
	history, err := it.histories.Get(vcs, opts.RepoDir, opts.Token)
	if err != nil {
		return entities.NotFound(), fmt.Errorf("failed to open repository history: %w", err)
	}

	locator := NewHistoricalFileLocator(hosting, history, LocatorOptions{
		MaxDepth:       opts.MaxDepth,
		LegacyPrefix:   opts.LegacyPrefix,
		LegacyFilename: opts.LegacyFilename,
	}, it.log)

	result := locator.Locate(ctx, entities.LocateRequest{
		Filename:   opts.Filename,
		Branch:     opts.Branch,
		Repository: repo,
	})

	if !result.IsFound() {
		if policy == entities.NotFoundAssumeNew {
			it.log.Infof("could not find file '%s'; assuming file is new", opts.Filename)
			return result, nil
		}
		it.log.Infof("could not find file '%s'", opts.Filename)
		return result, fmt.Errorf("%w: '%s'", entities.ErrFileNotFound, opts.Filename)
	}

	switch result.File.Source {
	case entities.SourceReleaseAsset:
		it.log.Infof("found file '%s' in release asset", opts.Filename)
	case entities.SourceGitHistory:
		it.log.Infof("found file '%s' in '%s'", opts.Filename, opts.Branch)
	}

	if opts.Destination != "" {
		if writeErr := writeDestination(opts.Destination, result.File.Contents); writeErr != nil {
			return result, writeErr
		}
	}
	return result, nil
}

func writeDestination(dest string, contents []byte) error {
	if err := os.MkdirAll(filepath.Dir(dest), destDirMode); err != nil {
		return fmt.Errorf("failed to create directory for %q: %w", dest, err)
	}
	if err := os.WriteFile(dest, contents, destFileMode); err != nil {
		return fmt.Errorf("failed to write %q: %w", dest, err)
	}
	return nil
}
