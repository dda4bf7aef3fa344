//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/cihelper/internal/domain/entities"
	"github.com/rios0rios0/cihelper/internal/domain/repositories"
)

// SpyHostingRepository implements repositories.HostingRepository as a configurable spy.
type SpyHostingRepository struct {
	// --- FindLatestReleaseAsset ---
	Assets       map[string][]byte // asset name -> contents
	ReleaseErr   error
	AssetLookups []string

	// --- ListArtifacts ---
	Artifacts   []entities.Artifact
	ListErr     error
	ListedRepos []entities.Repository
}

var _ repositories.HostingRepository = (*SpyHostingRepository)(nil)

func (p *SpyHostingRepository) Name() string { return "spy" }

func (p *SpyHostingRepository) FindLatestReleaseAsset(
	_ context.Context,
	_ entities.Repository,
	name string,
) ([]byte, bool, error) {
	p.AssetLookups = append(p.AssetLookups, name)
	if p.ReleaseErr != nil {
		return nil, false, p.ReleaseErr
	}
	contents, ok := p.Assets[name]
	return contents, ok, nil
}

func (p *SpyHostingRepository) ListArtifacts(
	_ context.Context,
	repo entities.Repository,
) ([]entities.Artifact, error) {
	p.ListedRepos = append(p.ListedRepos, repo)
	return p.Artifacts, p.ListErr
}
