package commands

import (
	"context"
	"fmt"
	"time"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/cihelper/internal/domain/entities"
	"github.com/rios0rios0/cihelper/internal/domain/repositories"
	infraRepos "github.com/rios0rios0/cihelper/internal/infrastructure/repositories"
)

// artifactNameOutput is the step output consumed by the download step.
const artifactNameOutput = "artifact_name"

// SelectArtifact is the interface for the select-artifact command.
type SelectArtifact interface {
	Execute(ctx context.Context, opts SelectArtifactOptions) (entities.Artifact, error)
}

// SelectArtifactOptions holds the inputs of one selection. Exactly one of
// ArtifactsJSON and Repository must be set.
type SelectArtifactOptions struct {
	ArtifactsJSON string
	Repository    string
	Token         string
	APIURL        string
	Branch        string
	ExcludeRunID  int64
	Name          string
	GitHubOutput  string
}

// SelectArtifactCommand picks the newest artifact of a branch and publishes its name.
type SelectArtifactCommand struct {
	providers     *infraRepos.ProviderRegistry
	artifactFiles repositories.ArtifactFileRepository
	outputs       infraRepos.OutputFactory
	log           logger.FieldLogger
}

// NewSelectArtifactCommand creates a new SelectArtifactCommand.
func NewSelectArtifactCommand(
	providers *infraRepos.ProviderRegistry,
	artifactFiles repositories.ArtifactFileRepository,
	outputs infraRepos.OutputFactory,
	log logger.FieldLogger,
) *SelectArtifactCommand {
	return &SelectArtifactCommand{
		providers:     providers,
		artifactFiles: artifactFiles,
		outputs:       outputs,
		log:           log,
	}
}

// Execute loads the candidates, selects the latest one and writes artifact_name.
func (it *SelectArtifactCommand) Execute(ctx context.Context, opts SelectArtifactOptions) (entities.Artifact, error) {
	if opts.Branch == "" {
		return entities.Artifact{}, fmt.Errorf("%w: branch is required", entities.ErrInvalidInput)
	}

	artifacts, err := it.loadArtifacts(ctx, opts)
	if err != nil {
		return entities.Artifact{}, fmt.Errorf("failed to read artifacts: %w", err)
	}
	it.log.Debugf("[artifact] Loaded %d artifacts", len(artifacts))

	latest, err := entities.SelectLatestArtifact(artifacts, entities.ArtifactFilter{
		Branch:       opts.Branch,
		ExcludeRunID: opts.ExcludeRunID,
		Name:         opts.Name,
	})
	if err != nil {
		return entities.Artifact{}, fmt.Errorf("%w (branch %q, name %q)", err, opts.Branch, opts.Name)
	}

	it.log.Infof("Using artifact id=%d (run %d) created_at=%s",
		latest.ID, latest.WorkflowRun.ID, latest.CreatedAt.UTC().Format(time.RFC3339))

	if setErr := it.outputs(opts.GitHubOutput).Set(artifactNameOutput, latest.Name); setErr != nil {
		return latest, fmt.Errorf("failed to write step output: %w", setErr)
	}
	return latest, nil
}

func (it *SelectArtifactCommand) loadArtifacts(
	ctx context.Context,
	opts SelectArtifactOptions,
) ([]entities.Artifact, error) {
	switch {
	case opts.ArtifactsJSON != "" && opts.Repository != "":
		return nil, fmt.Errorf("%w: use either an artifacts JSON file or a repository, not both",
			entities.ErrInvalidInput)
	case opts.ArtifactsJSON != "":
		return it.artifactFiles.Load(opts.ArtifactsJSON)
	case opts.Repository != "":
		if opts.Token == "" {
			return nil, entities.ErrMissingCredential
		}
		repo, err := entities.ParseRepository(opts.Repository)
		if err != nil {
			return nil, err
		}
		hosting, err := it.providers.Get(providerGitHub, opts.Token, opts.APIURL)
		if err != nil {
			return nil, fmt.Errorf("failed to create hosting provider: %w", err)
		}
		return hosting.ListArtifacts(ctx, repo)
	default:
		return nil, fmt.Errorf("%w: an artifacts JSON file or a repository is required", entities.ErrInvalidInput)
	}
}
