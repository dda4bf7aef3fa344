package gogit

import (
	"context"
	"errors"
	"fmt"
	"io"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/plumbing/transport"
	githttp "github.com/go-git/go-git/v5/plumbing/transport/http"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/cihelper/internal/domain/repositories"
)

const remoteName = "origin"

// GoGitHistoryRepository implements repositories.HistoryRepository in-process
// on top of go-git, without requiring a git executable.
type GoGitHistoryRepository struct {
	repo *git.Repository
	auth transport.AuthMethod
	log  logger.FieldLogger
}

// NewGoGitHistoryRepository opens the working copy that contains repoDir.
func NewGoGitHistoryRepository(
	repoDir, token string,
	log logger.FieldLogger,
) (repositories.HistoryRepository, error) {
	repo, err := git.PlainOpenWithOptions(repoDir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, fmt.Errorf("failed to open git repository at %q: %w", repoDir, err)
	}
	return NewGoGitHistoryRepositoryFromRepository(repo, token, log), nil
}

// NewGoGitHistoryRepositoryFromRepository wraps an already opened repository.
func NewGoGitHistoryRepositoryFromRepository(
	repo *git.Repository,
	token string,
	log logger.FieldLogger,
) *GoGitHistoryRepository {
	var auth transport.AuthMethod
	if token != "" {
		auth = &githttp.BasicAuth{Username: "x-access-token", Password: token}
	}
	return &GoGitHistoryRepository{repo: repo, auth: auth, log: log}
}

// ListFiles walks the tree of ref recursively.
func (r *GoGitHistoryRepository) ListFiles(_ context.Context, ref string) ([]string, error) {
	tree, err := r.tree(ref)
	if err != nil {
		return nil, err
	}

	var files []string
	err = tree.Files().ForEach(func(f *object.File) error {
		files = append(files, f.Name)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list files of %q: %w", ref, err)
	}
	return files, nil
}

// ShowFile reads path from the tree of ref.
func (r *GoGitHistoryRepository) ShowFile(_ context.Context, ref, path string) ([]byte, error) {
	tree, err := r.tree(ref)
	if err != nil {
		return nil, err
	}

	file, err := tree.File(path)
	if err != nil {
		return nil, fmt.Errorf("failed to find %q in %q: %w", path, ref, err)
	}
	contents, err := file.Contents()
	if err != nil {
		return nil, fmt.Errorf("failed to read %q in %q: %w", path, ref, err)
	}
	return []byte(contents), nil
}

// ResolveCommit walks the remote-tracking branch in committer-time order and
// returns the commit skip entries behind the tip.
func (r *GoGitHistoryRepository) ResolveCommit(_ context.Context, branch string, skip int) (string, error) {
	ref, err := r.repo.Reference(plumbing.NewRemoteReferenceName(remoteName, branch), true)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s/%s: %w", remoteName, branch, err)
	}

	iter, err := r.repo.Log(&git.LogOptions{From: ref.Hash(), Order: git.LogOrderCommitterTime})
	if err != nil {
		return "", fmt.Errorf("failed to walk %s/%s: %w", remoteName, branch, err)
	}
	defer iter.Close()

	for i := 0; ; i++ {
		commit, nextErr := iter.Next()
		if errors.Is(nextErr, io.EOF) || errors.Is(nextErr, plumbing.ErrObjectNotFound) {
			// shallow history ends before the requested depth
			return "", nil
		}
		if nextErr != nil {
			return "", fmt.Errorf("failed to walk %s/%s: %w", remoteName, branch, nextErr)
		}
		if i == skip {
			return commit.Hash.String(), nil
		}
	}
}

// FetchDeepen fetches branch from origin with the given depth.
func (r *GoGitHistoryRepository) FetchDeepen(ctx context.Context, branch string, depth int) error {
	r.log.Debugf("[gogit] fetching %s/%s (depth %d)", remoteName, branch, depth)

	refSpec := config.RefSpec(fmt.Sprintf(
		"+%s:%s", plumbing.NewBranchReferenceName(branch), plumbing.NewRemoteReferenceName(remoteName, branch),
	))
	err := r.repo.FetchContext(ctx, &git.FetchOptions{
		RemoteName: remoteName,
		RefSpecs:   []config.RefSpec{refSpec},
		Depth:      depth,
		Auth:       r.auth,
	})
	if err != nil && !errors.Is(err, git.NoErrAlreadyUpToDate) {
		return fmt.Errorf("failed to fetch %s/%s: %w", remoteName, branch, err)
	}
	return nil
}

func (r *GoGitHistoryRepository) tree(ref string) (*object.Tree, error) {
	hash, err := r.repo.ResolveRevision(plumbing.Revision(ref))
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %q: %w", ref, err)
	}
	commit, err := r.repo.CommitObject(*hash)
	if err != nil {
		return nil, fmt.Errorf("failed to read commit %s: %w", hash, err)
	}
	tree, err := commit.Tree()
	if err != nil {
		return nil, fmt.Errorf("failed to read tree of %s: %w", hash, err)
	}
	return tree, nil
}
