//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/cihelper/internal/domain/entities"
	"github.com/rios0rios0/cihelper/internal/domain/repositories"
)

// StubArtifactFileRepository returns a fixed artifact list for any path.
type StubArtifactFileRepository struct {
	Artifacts   []entities.Artifact
	LoadErr     error
	LoadedPaths []string
}

var _ repositories.ArtifactFileRepository = (*StubArtifactFileRepository)(nil)

func (r *StubArtifactFileRepository) Load(path string) ([]entities.Artifact, error) {
	r.LoadedPaths = append(r.LoadedPaths, path)
	return r.Artifacts, r.LoadErr
}
