//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/cihelper/internal/domain/entities"
	"github.com/rios0rios0/cihelper/internal/domain/repositories"
)

// StubManifestRepository returns fixed metadata for a manifest file name.
type StubManifestRepository struct {
	FileName string
	Metadata entities.ProjectMetadata
	ReadErr  error
	ReadDirs []string
}

var _ repositories.ManifestRepository = (*StubManifestRepository)(nil)

func (m *StubManifestRepository) Name() string { return m.FileName }

func (m *StubManifestRepository) Read(projectDir string) (entities.ProjectMetadata, error) {
	m.ReadDirs = append(m.ReadDirs, projectDir)
	return m.Metadata, m.ReadErr
}
