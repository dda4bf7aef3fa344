package actions

import (
	"fmt"
	"io"
	"os"
	"strings"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/cihelper/internal/domain/repositories"
)

const outputFileMode = 0o644

// GitHubOutputRepository appends key=value lines to the $GITHUB_OUTPUT file.
// Without a file path it prints the lines to stdout instead.
type GitHubOutputRepository struct {
	path   string
	stdout io.Writer
	log    logger.FieldLogger
}

// NewGitHubOutputRepository creates an output channel writing to path, or to
// stdout when path is empty.
func NewGitHubOutputRepository(path string, stdout io.Writer, log logger.FieldLogger) repositories.OutputRepository {
	return &GitHubOutputRepository{path: path, stdout: stdout, log: log}
}

// Set publishes one step output.
func (r *GitHubOutputRepository) Set(key, value string) error {
	if strings.ContainsAny(key, "=\n") || strings.Contains(value, "\n") {
		return fmt.Errorf("invalid output %q: keys and values must be single-line and keys must not contain '='", key)
	}
	line := key + "=" + value + "\n"

	if r.path == "" {
		r.log.Warn("GITHUB_OUTPUT not set; printing output instead:")
		_, err := io.WriteString(r.stdout, line)
		return err
	}

	file, err := os.OpenFile(r.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, outputFileMode)
	if err != nil {
		return fmt.Errorf("failed to open output file %q: %w", r.path, err)
	}
	defer file.Close()

	if _, err = file.WriteString(line); err != nil {
		return fmt.Errorf("failed to write output file %q: %w", r.path, err)
	}
	return nil
}
