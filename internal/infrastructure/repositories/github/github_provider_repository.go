package github

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	gh "github.com/google/go-github/v66/github"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/cihelper/internal/domain/entities"
	"github.com/rios0rios0/cihelper/internal/domain/repositories"
)

const (
	providerName = "github"
	perPage      = 100
)

// GitHubProviderRepository implements repositories.HostingRepository for GitHub.
type GitHubProviderRepository struct {
	client     *gh.Client
	downloader *http.Client
	log        logger.FieldLogger
}

// NewGitHubProviderRepository creates a GitHub provider with the given token.
// A non-empty apiURL points the client at a GitHub Enterprise Server.
func NewGitHubProviderRepository(
	token, apiURL string,
	log logger.FieldLogger,
) (repositories.HostingRepository, error) {
	client := gh.NewClient(nil).WithAuthToken(token)
	if apiURL != "" {
		var err error
		client, err = client.WithEnterpriseURLs(apiURL, apiURL)
		if err != nil {
			return nil, fmt.Errorf("invalid GitHub API URL %q: %w", apiURL, err)
		}
	}
	return newGitHubProviderRepository(client, log), nil
}

func newGitHubProviderRepository(client *gh.Client, log logger.FieldLogger) *GitHubProviderRepository {
	return &GitHubProviderRepository{
		client:     client,
		downloader: http.DefaultClient,
		log:        log,
	}
}

func (p *GitHubProviderRepository) Name() string { return providerName }

// FindLatestReleaseAsset downloads the asset called name from the latest release.
// Any non-success API response counts as "no asset".
func (p *GitHubProviderRepository) FindLatestReleaseAsset(
	ctx context.Context,
	repo entities.Repository,
	name string,
) ([]byte, bool, error) {
	release, _, err := p.client.Repositories.GetLatestRelease(ctx, repo.Organization, repo.Name)
	if err != nil {
		if isNonSuccess(err) {
			p.log.Debugf("[github] No latest release for %s/%s: %v", repo.Organization, repo.Name, err)
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to get latest release of %s/%s: %w", repo.Organization, repo.Name, err)
	}

	for _, asset := range release.Assets {
		p.log.Debugf("[github] Release %s asset: %s", release.GetTagName(), asset.GetName())
		if asset.GetName() != name {
			continue
		}

		rc, _, downloadErr := p.client.Repositories.DownloadReleaseAsset(
			ctx, repo.Organization, repo.Name, asset.GetID(), p.downloader,
		)
		if downloadErr != nil {
			if isNonSuccess(downloadErr) {
				p.log.Debugf("[github] Failed to download asset %q: %v", name, downloadErr)
				return nil, false, nil
			}
			return nil, false, fmt.Errorf("failed to download asset %q: %w", name, downloadErr)
		}

		data, readErr := readAll(rc)
		if readErr != nil {
			return nil, false, fmt.Errorf("failed to read asset %q: %w", name, readErr)
		}
		return data, true, nil
	}

	return nil, false, nil
}

// ListArtifacts pages through every workflow artifact of the repository.
func (p *GitHubProviderRepository) ListArtifacts(
	ctx context.Context,
	repo entities.Repository,
) ([]entities.Artifact, error) {
	var all []*gh.Artifact
	opts := &gh.ListOptions{PerPage: perPage}

	for {
		list, resp, err := p.client.Actions.ListArtifacts(ctx, repo.Organization, repo.Name, opts)
		if err != nil {
			return nil, fmt.Errorf("failed to list artifacts of %s/%s: %w", repo.Organization, repo.Name, err)
		}
		all = append(all, list.Artifacts...)

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return convertArtifacts(all, p.log), nil
}

// isNonSuccess reports whether err is an HTTP error response from the API
// rather than a transport failure.
func isNonSuccess(err error) bool {
	var errResp *gh.ErrorResponse
	if errors.As(err, &errResp) {
		return true
	}
	var rateErr *gh.RateLimitError
	if errors.As(err, &rateErr) {
		return true
	}
	var abuseErr *gh.AbuseRateLimitError
	return errors.As(err, &abuseErr)
}

func readAll(rc io.ReadCloser) ([]byte, error) {
	defer rc.Close()
	return io.ReadAll(rc)
}

// convertArtifacts maps API artifacts to entities, dropping the ones without a
// creation timestamp since they cannot be ranked.
func convertArtifacts(in []*gh.Artifact, log logger.FieldLogger) []entities.Artifact {
	out := make([]entities.Artifact, 0, len(in))
	for _, a := range in {
		if a == nil {
			continue
		}
		if a.CreatedAt == nil {
			log.Warnf("[artifact] Skipping artifact id=%d (%s): no created_at", a.GetID(), a.GetName())
			continue
		}
		run := a.GetWorkflowRun()
		out = append(out, entities.Artifact{
			ID:        a.GetID(),
			Name:      a.GetName(),
			CreatedAt: a.GetCreatedAt().Time,
			Expired:   a.GetExpired(),
			WorkflowRun: entities.WorkflowRun{
				ID:         run.GetID(),
				HeadBranch: run.GetHeadBranch(),
				HeadSHA:    strings.TrimSpace(run.GetHeadSHA()),
			},
		})
	}
	return out
}
