package controllers

import (
	"context"
	"fmt"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/cihelper/internal/domain/commands"
	"github.com/rios0rios0/cihelper/internal/domain/entities"
)

// LocateFileController handles the "locate-file" subcommand.
type LocateFileController struct {
	command commands.LocateFile
	log     logger.FieldLogger
}

// NewLocateFileController creates a new LocateFileController.
func NewLocateFileController(command commands.LocateFile, log logger.FieldLogger) *LocateFileController {
	return &LocateFileController{command: command, log: log}
}

// GetBind returns the Cobra command metadata for the locate-file controller.
func (it *LocateFileController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "locate-file <filename>",
		Short: "Retrieve an old dependency log from a release asset or git history",
		Long: `Look for <filename> in the latest release of --repo, then in the last
commits of --branch (deepening the local clone as needed), then under its
legacy name. The contents are written to --dest, or to stdout when --dest
is omitted.

Exit codes: 0 found (or assumed new), 1 bad input, 2 not found.`,
		Args: cobra.ExactArgs(1),
	}
}

// AddFlags registers the locate-file flags.
func (it *LocateFileController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().String("branch", "", "branch whose history is searched")
	cmd.Flags().String("repo", "", "GitHub repository (owner/name)")
	cmd.Flags().String("dest", "", "file path to write the found file to (default: stdout)")
	cmd.Flags().String("repo-dir", ".", "local clone used for the history walk")
	cmd.Flags().String("vcs", entities.DefaultVCS, `version-control backend: "git" or "gogit"`)
	cmd.Flags().String("not-found", string(entities.NotFoundFail), `not-found policy: "fail" or "assume-new"`)
	cmd.Flags().Int("max-depth", entities.DefaultMaxDepth, "number of commits probed on the branch")
	_ = cmd.MarkFlagRequired("branch")
	_ = cmd.MarkFlagRequired("repo")
}

// Execute runs the lookup.
func (it *LocateFileController) Execute(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings(cmd, it.log)
	if err != nil {
		return err
	}

	flagToken, _ := cmd.Flags().GetString("token")
	token, err := entities.ResolveGitHubToken(flagToken, settings)
	if err != nil {
		return err
	}

	branch, _ := cmd.Flags().GetString("branch")
	repo, _ := cmd.Flags().GetString("repo")
	dest, _ := cmd.Flags().GetString("dest")
	repoDir, _ := cmd.Flags().GetString("repo-dir")

	maxDepth := settings.History.MaxDepth
	if cmd.Flags().Changed("max-depth") {
		maxDepth, _ = cmd.Flags().GetInt("max-depth")
		if maxDepth <= 0 {
			return fmt.Errorf("%w: --max-depth must be positive, got %d", entities.ErrInvalidInput, maxDepth)
		}
	}

	result, err := it.command.Execute(context.Background(), commands.LocateFileOptions{
		Filename:       args[0],
		Branch:         branch,
		Repository:     repo,
		Destination:    dest,
		RepoDir:        repoDir,
		Token:          token,
		APIURL:         settings.GitHub.APIURL,
		VCS:            stringOverride(cmd, "vcs", settings.History.VCS),
		NotFound:       stringOverride(cmd, "not-found", settings.Locate.NotFound),
		MaxDepth:       maxDepth,
		LegacyPrefix:   settings.History.LegacyPrefix,
		LegacyFilename: settings.History.LegacyFilename,
	})
	if err != nil {
		return err
	}

	if dest == "" && result.IsFound() {
		_, err = cmd.OutOrStdout().Write(result.File.Contents)
	}
	return err
}
