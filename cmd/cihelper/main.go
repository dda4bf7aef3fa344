package main

import (
	"errors"
	"os"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/cihelper/internal"
	"github.com/rios0rios0/cihelper/internal/domain/entities"
)

func buildRootCommand(log *logger.Logger) *cobra.Command {
	//nolint:exhaustruct // Minimal Command initialization with required fields only
	cmd := &cobra.Command{
		Use:   "cihelper",
		Short: "Helper commands for Python CI pipelines",
		Long: `Small, single-shot helpers used inside GitHub Actions workflows:

  cihelper locate-file      Retrieve an old dependency log (release asset or git history)
  cihelper select-artifact  Pick the latest artifact of a branch, excluding the current run
  cihelper package-name     Print a Python project's package name
  cihelper list-extras      Print a Python project's pip extras
  cihelper max-python       Print the newest Python 3 minor version a project supports`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRun: func(command *cobra.Command, _ []string) {
			if verbose, _ := command.Flags().GetBool("verbose"); verbose {
				log.SetLevel(logger.DebugLevel)
			}
		},
	}

	// Global persistent flags
	cmd.PersistentFlags().StringP("config", "c", "",
		"Path to config file (default: auto-detect)")
	cmd.PersistentFlags().String("token", "",
		"GitHub token (default: config file, GITHUB_TOKEN, GH_TOKEN)")
	cmd.PersistentFlags().BoolP("verbose", "v", false,
		"Enable verbose output")

	return cmd
}

func addSubcommands(rootCmd *cobra.Command, appContext *internal.AppInternal) {
	for _, controller := range appContext.GetControllers() {
		bind := controller.GetBind()
		ctrl := controller // capture for closure
		//nolint:exhaustruct // Minimal Command initialization with required fields only
		subCmd := &cobra.Command{
			Use:   bind.Use,
			Short: bind.Short,
			Long:  bind.Long,
			Args:  bind.Args,
			RunE: func(command *cobra.Command, arguments []string) error {
				return ctrl.Execute(command, arguments)
			},
		}

		// Add controller-specific flags
		ctrl.AddFlags(subCmd)

		rootCmd.AddCommand(subCmd)
	}
}

func main() {
	appContext := injectAppContext()
	log := appContext.GetLogger()

	cobraRoot := buildRootCommand(log)
	addSubcommands(cobraRoot, appContext)

	err := cobraRoot.Execute()
	// an exhausted search was already reported as a notice
	if err != nil && !errors.Is(err, entities.ErrFileNotFound) {
		log.Error(err.Error())
	}
	os.Exit(entities.ExitCode(err))
}
