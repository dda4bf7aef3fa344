package commands

import (
	"fmt"
	"os"
	"path/filepath"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/cihelper/internal/domain/entities"
	infraRepos "github.com/rios0rios0/cihelper/internal/infrastructure/repositories"
)

// ProjectMetadataReader reads a Python project's manifest, preferring
// pyproject.toml over setup.cfg.
type ProjectMetadataReader struct {
	manifests *infraRepos.ManifestRegistry
	log       logger.FieldLogger
}

// NewProjectMetadataReader creates a reader over the registered manifests.
func NewProjectMetadataReader(manifests *infraRepos.ManifestRegistry, log logger.FieldLogger) *ProjectMetadataReader {
	return &ProjectMetadataReader{manifests: manifests, log: log}
}

// Read returns the metadata of the first manifest present in projectDir.
func (it *ProjectMetadataReader) Read(projectDir string) (entities.ProjectMetadata, error) {
	info, err := os.Stat(projectDir)
	if err != nil {
		return entities.ProjectMetadata{}, fmt.Errorf("%w: directory not found: %s", entities.ErrInvalidInput, projectDir)
	}
	if !info.IsDir() {
		return entities.ProjectMetadata{}, fmt.Errorf("%w: not a directory: %s", entities.ErrInvalidInput, projectDir)
	}

	for _, manifest := range it.manifests.All() {
		if _, statErr := os.Stat(filepath.Join(projectDir, manifest.Name())); statErr != nil {
			continue
		}
		it.log.Debugf("[metadata] Reading %s in %s", manifest.Name(), projectDir)
		return manifest.Read(projectDir)
	}

	return entities.ProjectMetadata{}, fmt.Errorf("%w in %s", entities.ErrMissingManifest, projectDir)
}

// ReadName returns the package name, or entities.UnknownPackageName when the manifest has none.
func (it *ProjectMetadataReader) ReadName(projectDir string) (string, error) {
	metadata, err := it.Read(projectDir)
	if err != nil {
		return "", err
	}
	return metadata.PackageName(), nil
}

// ReadExtras returns the optional-dependency group names; never nil on success.
func (it *ProjectMetadataReader) ReadExtras(projectDir string) ([]string, error) {
	metadata, err := it.Read(projectDir)
	if err != nil {
		return nil, err
	}
	if metadata.Extras == nil {
		return []string{}, nil
	}
	return metadata.Extras, nil
}

// ReadRequiresPython returns the declared Python version range, possibly empty.
func (it *ProjectMetadataReader) ReadRequiresPython(projectDir string) (string, error) {
	metadata, err := it.Read(projectDir)
	if err != nil {
		return "", err
	}
	return metadata.RequiresPython, nil
}
