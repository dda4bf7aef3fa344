package github

// NewGitHubProviderRepositoryWithClient exports newGitHubProviderRepository for testing.
var NewGitHubProviderRepositoryWithClient = newGitHubProviderRepository //nolint:gochecknoglobals // test export
