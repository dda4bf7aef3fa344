package repositories

import (
	domainRepos "github.com/rios0rios0/cihelper/internal/domain/repositories"
)

// OutputFactory opens the CI output channel at path; an empty path selects
// the environment's default ($GITHUB_OUTPUT), falling back to stdout.
type OutputFactory func(path string) domainRepos.OutputRepository
