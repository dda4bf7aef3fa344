package manifest

import (
	"fmt"
	"path/filepath"

	"github.com/go-ini/ini"

	"github.com/rios0rios0/cihelper/internal/domain/entities"
	"github.com/rios0rios0/cihelper/internal/domain/repositories"
)

const (
	setupCfgName         = "setup.cfg"
	metadataSection      = "metadata"
	optionsSection       = "options"
	extrasRequireSection = "options.extras_require"
)

// SetupCfgManifestRepository reads the legacy setuptools setup.cfg.
type SetupCfgManifestRepository struct{}

// NewSetupCfgManifestRepository creates a new setup.cfg reader.
func NewSetupCfgManifestRepository() repositories.ManifestRepository {
	return &SetupCfgManifestRepository{}
}

func (m *SetupCfgManifestRepository) Name() string { return setupCfgName }

// Read parses setup.cfg the way configparser does: option names are
// case-insensitive, indented lines continue a value, and "#" inside a value is kept.
// Extras keep their file order.
func (m *SetupCfgManifestRepository) Read(projectDir string) (entities.ProjectMetadata, error) {
	path := filepath.Join(projectDir, setupCfgName)
	cfg, err := ini.LoadSources(ini.LoadOptions{
		AllowPythonMultilineValues: true,
		InsensitiveKeys:            true,
		IgnoreInlineComment:        true,
	}, path)
	if err != nil {
		return entities.ProjectMetadata{}, fmt.Errorf("failed to parse %s: %w", setupCfgName, err)
	}

	metadata := entities.ProjectMetadata{Manifest: path, Extras: []string{}}

	if section, sectionErr := cfg.GetSection(metadataSection); sectionErr == nil && section.HasKey("name") {
		metadata.Name = section.Key("name").String()
	}
	if section, sectionErr := cfg.GetSection(optionsSection); sectionErr == nil && section.HasKey("python_requires") {
		metadata.RequiresPython = section.Key("python_requires").String()
	}
	if section, sectionErr := cfg.GetSection(extrasRequireSection); sectionErr == nil {
		metadata.Extras = append(metadata.Extras, section.KeyStrings()...)
	}

	return metadata, nil
}
