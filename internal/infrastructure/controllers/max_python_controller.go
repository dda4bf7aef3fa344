package controllers

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/cihelper/internal/domain/commands"
	"github.com/rios0rios0/cihelper/internal/domain/entities"
)

// MaxPythonController handles the "max-python" subcommand.
type MaxPythonController struct {
	command commands.MaxPython
}

// NewMaxPythonController creates a new MaxPythonController.
func NewMaxPythonController(command commands.MaxPython) *MaxPythonController {
	return &MaxPythonController{command: command}
}

// GetBind returns the Cobra command metadata for the max-python controller.
func (it *MaxPythonController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "max-python [project-dir]",
		Short: "Print the newest Python 3 minor version the project supports",
		Long: `Intersect the project's requires-python range with the Python 3 releases
that have not reached end-of-life, and print the newest one as major.minor.`,
		Args: cobra.MaximumNArgs(1),
	}
}

func (it *MaxPythonController) AddFlags(_ *cobra.Command) {}

// Execute prints the version for capture by the calling shell step.
func (it *MaxPythonController) Execute(cmd *cobra.Command, args []string) error {
	projectDir := "."
	if len(args) > 0 {
		projectDir = args[0]
	}

	version, err := it.command.Execute(context.Background(), projectDir)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), version.String())
	return err
}
