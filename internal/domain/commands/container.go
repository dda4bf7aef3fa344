package commands

import (
	"go.uber.org/dig"
)

// RegisterProviders registers all command providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register command constructors
	for _, constructor := range []interface{}{
		NewProjectMetadataReader,
		NewLocateFileCommand,
		NewSelectArtifactCommand,
		NewPackageNameCommand,
		NewListExtrasCommand,
		NewMaxPythonCommand,
	} {
		if err := container.Provide(constructor); err != nil {
			return err
		}
	}

	// Bind interfaces to implementations
	if err := container.Provide(func(impl *LocateFileCommand) LocateFile {
		return impl
	}); err != nil {
		return err
	}
	if err := container.Provide(func(impl *SelectArtifactCommand) SelectArtifact {
		return impl
	}); err != nil {
		return err
	}
	if err := container.Provide(func(impl *PackageNameCommand) PackageName {
		return impl
	}); err != nil {
		return err
	}
	if err := container.Provide(func(impl *ListExtrasCommand) ListExtras {
		return impl
	}); err != nil {
		return err
	}
	if err := container.Provide(func(impl *MaxPythonCommand) MaxPython {
		return impl
	}); err != nil {
		return err
	}

	return nil
}
