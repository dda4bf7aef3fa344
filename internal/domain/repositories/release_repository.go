package repositories

import (
	"context"

	"github.com/rios0rios0/cihelper/internal/domain/entities"
)

// ReleaseRepository reads assets of published releases.
type ReleaseRepository interface {
	// FindLatestReleaseAsset downloads the asset called name from the latest
	// release. The boolean is false when the release or the asset does not exist.
	FindLatestReleaseAsset(ctx context.Context, repo entities.Repository, name string) ([]byte, bool, error)
}
