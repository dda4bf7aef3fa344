package controllers

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/cihelper/internal/domain/commands"
	"github.com/rios0rios0/cihelper/internal/domain/entities"
)

// PackageNameController handles the "package-name" subcommand.
type PackageNameController struct {
	command commands.PackageName
}

// NewPackageNameController creates a new PackageNameController.
func NewPackageNameController(command commands.PackageName) *PackageNameController {
	return &PackageNameController{command: command}
}

// GetBind returns the Cobra command metadata for the package-name controller.
func (it *PackageNameController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "package-name <project-dir>",
		Short: "Print the package name of a Python project",
		Long: `Print the package name declared in pyproject.toml ([project] name) or,
failing that, setup.cfg ([metadata] name). Prints UNKNOWN when the manifest
declares no name.`,
		Args: cobra.ExactArgs(1),
	}
}

func (it *PackageNameController) AddFlags(_ *cobra.Command) {}

// Execute prints the package name.
func (it *PackageNameController) Execute(cmd *cobra.Command, args []string) error {
	name, err := it.command.Execute(args[0])
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), name)
	return err
}
