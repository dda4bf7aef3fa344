//go:build unit

package actions_test

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	logger "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/cihelper/internal/infrastructure/repositories/actions"
)

func TestGitHubOutputRepository(t *testing.T) {
	t.Parallel()

	t.Run("should append key=value lines to the output file", func(t *testing.T) {
		t.Parallel()

		// given
		path := filepath.Join(t.TempDir(), "github_output")
		require.NoError(t, os.WriteFile(path, []byte("previous=1\n"), 0o600))
		var stdout bytes.Buffer
		output := actions.NewGitHubOutputRepository(path, &stdout, logger.New())

		// when
		err := output.Set("artifact_name", "py-dependencies-logs")

		// then
		require.NoError(t, err)
		written, _ := os.ReadFile(path)
		assert.Equal(t, "previous=1\nartifact_name=py-dependencies-logs\n", string(written))
		assert.Empty(t, stdout.String())
	})

	t.Run("should print to stdout with a warning when no file is configured", func(t *testing.T) {
		t.Parallel()

		// given
		var stdout, logs bytes.Buffer
		log := logger.New()
		log.SetOutput(&logs)
		output := actions.NewGitHubOutputRepository("", &stdout, log)

		// when
		err := output.Set("artifact_name", "py-dependencies-logs")

		// then
		require.NoError(t, err)
		assert.Equal(t, "artifact_name=py-dependencies-logs\n", stdout.String())
		assert.Contains(t, logs.String(), "GITHUB_OUTPUT not set")
	})

	t.Run("should reject multi-line values", func(t *testing.T) {
		t.Parallel()

		// given
		log := logger.New()
		log.SetOutput(io.Discard)
		output := actions.NewGitHubOutputRepository("", io.Discard, log)

		// when
		err := output.Set("artifact_name", "a\nb")

		// then
		require.Error(t, err)
	})
}

func TestWorkflowCommandFormatter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		level    logger.Level
		message  string
		expected string
	}{
		{name: "should render errors as error annotations", level: logger.ErrorLevel, message: "GITHUB_TOKEN is not set", expected: "::error::GITHUB_TOKEN is not set\n"},
		{name: "should render warnings as warning annotations", level: logger.WarnLevel, message: "careful", expected: "::warning::careful\n"},
		{name: "should render info as notices", level: logger.InfoLevel, message: "found file 'a.log' in 'main'", expected: "::notice::found file 'a.log' in 'main'\n"},
		{name: "should render debug as debug messages", level: logger.DebugLevel, message: "probing", expected: "::debug::probing\n"},
		{name: "should escape newlines and percent signs", level: logger.InfoLevel, message: "100%\ndone", expected: "::notice::100%25%0Adone\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			// given
			formatter := &actions.WorkflowCommandFormatter{}
			entry := &logger.Entry{Level: tt.level, Message: tt.message}

			// when
			out, err := formatter.Format(entry)

			// then
			require.NoError(t, err)
			assert.Equal(t, tt.expected, string(out))
		})
	}
}
