package controllers

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/cihelper/internal/domain/commands"
	"github.com/rios0rios0/cihelper/internal/domain/entities"
)

// ListExtrasController handles the "list-extras" subcommand.
type ListExtrasController struct {
	command commands.ListExtras
}

// NewListExtrasController creates a new ListExtrasController.
func NewListExtrasController(command commands.ListExtras) *ListExtrasController {
	return &ListExtrasController{command: command}
}

// GetBind returns the Cobra command metadata for the list-extras controller.
func (it *ListExtrasController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "list-extras <project-dir>",
		Short: "Print the pip extras of a Python project, one per line",
		Args:  cobra.ExactArgs(1),
	}
}

func (it *ListExtrasController) AddFlags(_ *cobra.Command) {}

// Execute prints every extra on its own line.
func (it *ListExtrasController) Execute(cmd *cobra.Command, args []string) error {
	extras, err := it.command.Execute(args[0])
	if err != nil {
		return err
	}
	for _, extra := range extras {
		if _, err = fmt.Fprintln(cmd.OutOrStdout(), extra); err != nil {
			return err
		}
	}
	return nil
}
