package commands

import (
	"context"
	"fmt"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/cihelper/internal/domain/entities"
	"github.com/rios0rios0/cihelper/internal/domain/repositories"
)

// MaxPython is the interface for the max-python command.
type MaxPython interface {
	Execute(ctx context.Context, projectDir string) (entities.PythonVersion, error)
}

// MaxPythonCommand computes the newest Python 3 minor release a project supports.
type MaxPythonCommand struct {
	reader   *ProjectMetadataReader
	releases repositories.PythonReleaseRepository
	log      logger.FieldLogger
}

// NewMaxPythonCommand creates a new MaxPythonCommand.
func NewMaxPythonCommand(
	reader *ProjectMetadataReader,
	releases repositories.PythonReleaseRepository,
	log logger.FieldLogger,
) *MaxPythonCommand {
	return &MaxPythonCommand{reader: reader, releases: releases, log: log}
}

func (it *MaxPythonCommand) Execute(ctx context.Context, projectDir string) (entities.PythonVersion, error) {
	requiresPython, err := it.reader.ReadRequiresPython(projectDir)
	if err != nil {
		return entities.PythonVersion{}, err
	}
	if requiresPython == "" {
		return entities.PythonVersion{}, fmt.Errorf("%w: project declares no requires-python range", entities.ErrInvalidInput)
	}

	latest, err := it.releases.LatestPython3(ctx)
	if err != nil {
		return entities.PythonVersion{}, fmt.Errorf("failed to fetch latest Python release: %w", err)
	}
	it.log.Debugf("[python] requires-python=%q, latest release %s", requiresPython, latest)

	return entities.MaxSupportedPython(latest, requiresPython)
}
