//go:build unit

package entities_test

import (
	"os"
	"path/filepath"
	"testing"

	logger "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/cihelper/internal/domain/entities"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cihelper.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

//nolint:tparallel // some subtests use t.Setenv which is incompatible with t.Parallel on parent
func TestResolveToken(t *testing.T) {
	log := logger.New()

	t.Run("should return empty string for empty input", func(t *testing.T) {
		t.Parallel()

		// given
		raw := ""

		// when
		result := entities.ResolveToken(raw, log)

		// then
		assert.Empty(t, result)
	})

	t.Run("should return inline token unchanged", func(t *testing.T) {
		t.Parallel()

		// given
		raw := "ghp_abc123xyz"

		// when
		result := entities.ResolveToken(raw, log)

		// then
		assert.Equal(t, "ghp_abc123xyz", result)
	})

	t.Run("should expand environment variable reference", func(t *testing.T) {
		// NOTE: cannot use t.Parallel() with t.Setenv()

		// given
		t.Setenv("CIHELPER_TEST_TOKEN", "my-secret-token")
		raw := "${CIHELPER_TEST_TOKEN}"

		// when
		result := entities.ResolveToken(raw, log)

		// then
		assert.Equal(t, "my-secret-token", result)
	})

	t.Run("should read token from file path", func(t *testing.T) {
		t.Parallel()

		// given
		tokenFile := filepath.Join(t.TempDir(), "token")
		require.NoError(t, os.WriteFile(tokenFile, []byte("  file-token\n"), 0o600))

		// when
		result := entities.ResolveToken(tokenFile, log)

		// then
		assert.Equal(t, "file-token", result)
	})
}

func TestNewSettings(t *testing.T) {
	t.Parallel()

	t.Run("should overlay the file on top of the defaults", func(t *testing.T) {
		t.Parallel()

		// given
		path := writeConfig(t, `
history:
  max_depth: 10
  vcs: gogit
locate:
  not_found: assume-new
`)

		// when
		settings, err := entities.NewSettings(path, logger.New())

		// then
		require.NoError(t, err)
		assert.Equal(t, 10, settings.History.MaxDepth)
		assert.Equal(t, "gogit", settings.History.VCS)
		assert.Equal(t, entities.DefaultLegacyPrefix, settings.History.LegacyPrefix)
		assert.Equal(t, entities.DefaultLegacyFilename, settings.History.LegacyFilename)
		assert.Equal(t, "assume-new", settings.Locate.NotFound)
		assert.Empty(t, settings.Artifacts.Name)
	})

	t.Run("should reject an unknown vcs backend", func(t *testing.T) {
		t.Parallel()

		// given
		path := writeConfig(t, "history:\n  vcs: svn\n")

		// when
		_, err := entities.NewSettings(path, logger.New())

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "history.vcs")
	})

	t.Run("should reject an unknown not-found policy", func(t *testing.T) {
		t.Parallel()

		// given
		path := writeConfig(t, "locate:\n  not_found: retry\n")

		// when
		_, err := entities.NewSettings(path, logger.New())

		// then
		require.ErrorIs(t, err, entities.ErrInvalidInput)
	})

	t.Run("should fail on malformed yaml", func(t *testing.T) {
		t.Parallel()

		// given
		path := writeConfig(t, "history: [unclosed\n")

		// when
		_, err := entities.NewSettings(path, logger.New())

		// then
		require.Error(t, err)
	})

	t.Run("should fail when the file does not exist", func(t *testing.T) {
		t.Parallel()

		// given
		path := filepath.Join(t.TempDir(), "missing.yaml")

		// when
		_, err := entities.NewSettings(path, logger.New())

		// then
		require.Error(t, err)
	})
}

func TestValidateSettings(t *testing.T) {
	t.Parallel()

	t.Run("should accept the defaults", func(t *testing.T) {
		t.Parallel()

		// given
		settings := entities.DefaultSettings()

		// when
		err := entities.ValidateSettings(settings)

		// then
		require.NoError(t, err)
	})

	t.Run("should reject a non-positive depth", func(t *testing.T) {
		t.Parallel()

		// given
		settings := entities.DefaultSettings()
		settings.History.MaxDepth = 0

		// when
		err := entities.ValidateSettings(settings)

		// then
		require.Error(t, err)
	})

	t.Run("should require a legacy filename alongside a legacy prefix", func(t *testing.T) {
		t.Parallel()

		// given
		settings := entities.DefaultSettings()
		settings.History.LegacyFilename = ""

		// when
		err := entities.ValidateSettings(settings)

		// then
		require.Error(t, err)
	})
}

//nolint:paralleltest // uses t.Setenv
func TestResolveGitHubToken(t *testing.T) {
	t.Run("should prefer the flag", func(t *testing.T) {
		// given
		t.Setenv("GITHUB_TOKEN", "env-token")
		settings := entities.DefaultSettings()
		settings.GitHub.Token = "config-token"

		// when
		token, err := entities.ResolveGitHubToken("flag-token", settings)

		// then
		require.NoError(t, err)
		assert.Equal(t, "flag-token", token)
	})

	t.Run("should prefer the settings over the environment", func(t *testing.T) {
		// given
		t.Setenv("GITHUB_TOKEN", "env-token")
		settings := entities.DefaultSettings()
		settings.GitHub.Token = "config-token"

		// when
		token, err := entities.ResolveGitHubToken("", settings)

		// then
		require.NoError(t, err)
		assert.Equal(t, "config-token", token)
	})

	t.Run("should fall back to GH_TOKEN", func(t *testing.T) {
		// given
		t.Setenv("GITHUB_TOKEN", "")
		t.Setenv("GH_TOKEN", "gh-token")

		// when
		token, err := entities.ResolveGitHubToken("", entities.DefaultSettings())

		// then
		require.NoError(t, err)
		assert.Equal(t, "gh-token", token)
	})

	t.Run("should return ErrMissingCredential when nothing is set", func(t *testing.T) {
		// given
		t.Setenv("GITHUB_TOKEN", "")
		t.Setenv("GH_TOKEN", "")

		// when
		_, err := entities.ResolveGitHubToken("", nil)

		// then
		require.ErrorIs(t, err, entities.ErrMissingCredential)
	})
}
