package controllers

import (
	"context"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/cihelper/internal/domain/commands"
	"github.com/rios0rios0/cihelper/internal/domain/entities"
)

// SelectArtifactController handles the "select-artifact" subcommand.
type SelectArtifactController struct {
	command commands.SelectArtifact
	log     logger.FieldLogger
}

// NewSelectArtifactController creates a new SelectArtifactController.
func NewSelectArtifactController(command commands.SelectArtifact, log logger.FieldLogger) *SelectArtifactController {
	return &SelectArtifactController{command: command, log: log}
}

// GetBind returns the Cobra command metadata for the select-artifact controller.
func (it *SelectArtifactController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "select-artifact",
		Short: "Pick the latest branch artifact, excluding the current run",
		Long: `Select the newest non-expired artifact built on --branch by a run other
than --exclude-run-id, and write 'artifact_name=<name>' to $GITHUB_OUTPUT.

The candidates come from --artifacts-json (a saved response of the GitHub
"list artifacts" API) or are fetched live from --repo.`,
		Args: cobra.NoArgs,
	}
}

// AddFlags registers the select-artifact flags.
func (it *SelectArtifactController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().String("artifacts-json", "", "path to artifacts.json from the GitHub API")
	cmd.Flags().String("repo", "", "GitHub repository (owner/name) to list artifacts from")
	cmd.Flags().String("branch", "", "branch name to filter on")
	cmd.Flags().Int64("exclude-run-id", 0, "workflow run ID to exclude")
	cmd.Flags().String("name", "", "only consider artifacts with this name (default: any name)")
	cmd.Flags().String("github-output", "", "path to $GITHUB_OUTPUT (default: $GITHUB_OUTPUT)")
	_ = cmd.MarkFlagRequired("branch")
	_ = cmd.MarkFlagRequired("exclude-run-id")
	cmd.MarkFlagsMutuallyExclusive("artifacts-json", "repo")
	cmd.MarkFlagsOneRequired("artifacts-json", "repo")
}

// Execute runs the selection.
func (it *SelectArtifactController) Execute(cmd *cobra.Command, _ []string) error {
	settings, err := loadSettings(cmd, it.log)
	if err != nil {
		return err
	}

	artifactsJSON, _ := cmd.Flags().GetString("artifacts-json")
	repo, _ := cmd.Flags().GetString("repo")
	branch, _ := cmd.Flags().GetString("branch")
	excludeRunID, _ := cmd.Flags().GetInt64("exclude-run-id")
	githubOutput, _ := cmd.Flags().GetString("github-output")

	var token string
	if repo != "" {
		flagToken, _ := cmd.Flags().GetString("token")
		if token, err = entities.ResolveGitHubToken(flagToken, settings); err != nil {
			return err
		}
	}

	_, err = it.command.Execute(context.Background(), commands.SelectArtifactOptions{
		ArtifactsJSON: artifactsJSON,
		Repository:    repo,
		Token:         token,
		APIURL:        settings.GitHub.APIURL,
		Branch:        branch,
		ExcludeRunID:  excludeRunID,
		Name:          stringOverride(cmd, "name", settings.Artifacts.Name),
		GitHubOutput:  githubOutput,
	})
	return err
}
