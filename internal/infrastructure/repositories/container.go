package repositories

import (
	"os"

	logger "github.com/sirupsen/logrus"
	"go.uber.org/dig"

	domainRepos "github.com/rios0rios0/cihelper/internal/domain/repositories"
	actionsRepo "github.com/rios0rios0/cihelper/internal/infrastructure/repositories/actions"
	gitcliRepo "github.com/rios0rios0/cihelper/internal/infrastructure/repositories/gitcli"
	ghRepo "github.com/rios0rios0/cihelper/internal/infrastructure/repositories/github"
	gogitRepo "github.com/rios0rios0/cihelper/internal/infrastructure/repositories/gogit"
	manifestRepo "github.com/rios0rios0/cihelper/internal/infrastructure/repositories/manifest"
	pyRepo "github.com/rios0rios0/cihelper/internal/infrastructure/repositories/python"
)

// RegisterProviders registers all repository providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register the process logger, shared by every layer
	if err := container.Provide(actionsRepo.NewLogger); err != nil {
		return err
	}
	if err := container.Provide(func(log *logger.Logger) logger.FieldLogger {
		return log
	}); err != nil {
		return err
	}

	// Register provider registry with all provider factories
	if err := container.Provide(func(log logger.FieldLogger) *ProviderRegistry {
		reg := NewProviderRegistry()
		reg.Register("github", func(token, apiURL string) (domainRepos.HostingRepository, error) {
			return ghRepo.NewGitHubProviderRepository(token, apiURL, log)
		})
		return reg
	}); err != nil {
		return err
	}

	// Register history registry with both version-control backends
	if err := container.Provide(func(log logger.FieldLogger) *HistoryRegistry {
		reg := NewHistoryRegistry()
		reg.Register("git", func(repoDir, _ string) (domainRepos.HistoryRepository, error) {
			return gitcliRepo.NewGitCLIHistoryRepository(repoDir, log), nil
		})
		reg.Register("gogit", func(repoDir, token string) (domainRepos.HistoryRepository, error) {
			return gogitRepo.NewGoGitHistoryRepository(repoDir, token, log)
		})
		return reg
	}); err != nil {
		return err
	}

	// Register manifest readers in preference order
	if err := container.Provide(func() *ManifestRegistry {
		reg := NewManifestRegistry()
		reg.Register(manifestRepo.NewPyprojectManifestRepository())
		reg.Register(manifestRepo.NewSetupCfgManifestRepository())
		return reg
	}); err != nil {
		return err
	}

	if err := container.Provide(ghRepo.NewArtifactFileRepository); err != nil {
		return err
	}
	if err := container.Provide(func(log logger.FieldLogger) domainRepos.PythonReleaseRepository {
		return pyRepo.NewEndOfLifePythonReleaseRepository(pyRepo.DefaultEndOfLifeURL, log)
	}); err != nil {
		return err
	}
	if err := container.Provide(func(log logger.FieldLogger) OutputFactory {
		return func(path string) domainRepos.OutputRepository {
			if path == "" {
				path = os.Getenv("GITHUB_OUTPUT")
			}
			return actionsRepo.NewGitHubOutputRepository(path, os.Stdout, log)
		}
	}); err != nil {
		return err
	}

	return nil
}
