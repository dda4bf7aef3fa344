package gitcli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/cihelper/internal/domain/repositories"
)

const remoteName = "origin"

// Runner executes git with the given arguments inside dir and returns stdout.
type Runner func(ctx context.Context, dir string, args ...string) ([]byte, error)

// GitCLIHistoryRepository implements repositories.HistoryRepository by
// shelling out to the git executable. Any non-zero exit is returned as an error.
type GitCLIHistoryRepository struct {
	repoDir string
	run     Runner
	log     logger.FieldLogger
}

// NewGitCLIHistoryRepository creates a repository that runs git inside repoDir.
func NewGitCLIHistoryRepository(repoDir string, log logger.FieldLogger) repositories.HistoryRepository {
	return NewGitCLIHistoryRepositoryWithRunner(repoDir, runGit, log)
}

// NewGitCLIHistoryRepositoryWithRunner is NewGitCLIHistoryRepository with a custom runner.
func NewGitCLIHistoryRepositoryWithRunner(
	repoDir string,
	run Runner,
	log logger.FieldLogger,
) *GitCLIHistoryRepository {
	return &GitCLIHistoryRepository{repoDir: repoDir, run: run, log: log}
}

// ListFiles runs `git ls-tree -r --name-only <ref>`.
func (r *GitCLIHistoryRepository) ListFiles(ctx context.Context, ref string) ([]string, error) {
	out, err := r.git(ctx, "ls-tree", "-r", "--name-only", ref)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, line := range strings.Split(strings.TrimSpace(string(out)), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			files = append(files, line)
		}
	}
	return files, nil
}

// ShowFile runs `git show <ref>:<path>`.
func (r *GitCLIHistoryRepository) ShowFile(ctx context.Context, ref, path string) ([]byte, error) {
	return r.git(ctx, "show", ref+":"+path)
}

// ResolveCommit runs `git rev-list --max-count=1 origin/<branch> --skip=<skip>`.
func (r *GitCLIHistoryRepository) ResolveCommit(ctx context.Context, branch string, skip int) (string, error) {
	out, err := r.git(ctx,
		"rev-list", "--max-count=1", remoteName+"/"+branch, "--skip="+strconv.Itoa(skip),
	)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}

// FetchDeepen runs `git fetch origin <branch> --deepen <depth>`.
func (r *GitCLIHistoryRepository) FetchDeepen(ctx context.Context, branch string, depth int) error {
	r.log.Debugf("[git] fetching %s/%s (deepen %d)", remoteName, branch, depth)
	_, err := r.git(ctx, "fetch", remoteName, branch, "--deepen", strconv.Itoa(depth))
	return err
}

func (r *GitCLIHistoryRepository) git(ctx context.Context, args ...string) ([]byte, error) {
	r.log.Debugf("[git] subprocess: git %s", strings.Join(args, " "))
	return r.run(ctx, r.repoDir, args...)
}

func runGit(ctx context.Context, dir string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = dir

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	output, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return nil, fmt.Errorf("git %s: exit %d: %s",
				strings.Join(args, " "), exitErr.ExitCode(), strings.TrimSpace(stderr.String()))
		}
		return nil, fmt.Errorf("git %s: %w", strings.Join(args, " "), err)
	}
	return output, nil
}
