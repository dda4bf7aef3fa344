package repositories

import (
	"context"

	"github.com/rios0rios0/cihelper/internal/domain/entities"
)

// ArtifactRepository lists the workflow artifacts of a repository.
type ArtifactRepository interface {
	ListArtifacts(ctx context.Context, repo entities.Repository) ([]entities.Artifact, error)
}

// ArtifactFileRepository reads an artifact listing saved from the API.
type ArtifactFileRepository interface {
	Load(path string) ([]entities.Artifact, error)
}
