package controllers

import (
	"github.com/rios0rios0/cihelper/internal/domain/entities"
	"go.uber.org/dig"
)

// RegisterProviders registers all controller providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register controller constructors
	for _, constructor := range []interface{}{
		NewLocateFileController,
		NewSelectArtifactController,
		NewPackageNameController,
		NewListExtrasController,
		NewMaxPythonController,
		NewControllers,
	} {
		if err := container.Provide(constructor); err != nil {
			return err
		}
	}

	return nil
}

// NewControllers aggregates all controllers into a slice for the AppInternal.
func NewControllers(
	locateFileController *LocateFileController,
	selectArtifactController *SelectArtifactController,
	packageNameController *PackageNameController,
	listExtrasController *ListExtrasController,
	maxPythonController *MaxPythonController,
) *[]entities.Controller {
	return &[]entities.Controller{
		locateFileController,
		selectArtifactController,
		packageNameController,
		listExtrasController,
		maxPythonController,
	}
}
