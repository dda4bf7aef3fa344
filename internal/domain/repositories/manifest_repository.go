package repositories

import "github.com/rios0rios0/cihelper/internal/domain/entities"

// ManifestRepository reads one project manifest format (pyproject.toml, setup.cfg).
type ManifestRepository interface {
	// Name returns the manifest file name (e.g. "pyproject.toml").
	Name() string

	// Read parses the manifest found in projectDir.
	Read(projectDir string) (entities.ProjectMetadata, error)
}
