//go:build unit

package gogit_test

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/storage/memory"
	logger "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/cihelper/internal/infrastructure/repositories/gogit"
)

// newHistory creates an in-memory repository with one commit per snapshot and
// points refs/remotes/origin/main at the last one. It returns the commit hashes
// oldest first.
func newHistory(t *testing.T, snapshots []map[string]string) (*git.Repository, []string) {
	t.Helper()

	fs := memfs.New()
	repo, err := git.Init(memory.NewStorage(), fs)
	require.NoError(t, err)
	worktree, err := repo.Worktree()
	require.NoError(t, err)

	start := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	hashes := make([]string, 0, len(snapshots))
	for i, files := range snapshots {
		for path, contents := range files {
			require.NoError(t, util.WriteFile(fs, path, []byte(contents), 0o644))
			_, addErr := worktree.Add(path)
			require.NoError(t, addErr)
		}
		signature := &object.Signature{Name: "ci", Email: "ci@example.com", When: start.Add(time.Duration(i) * time.Hour)}
		hash, commitErr := worktree.Commit("commit", &git.CommitOptions{Author: signature, Committer: signature})
		require.NoError(t, commitErr)
		hashes = append(hashes, hash.String())
	}

	tip := plumbing.NewHash(hashes[len(hashes)-1])
	require.NoError(t, repo.Storer.SetReference(
		plumbing.NewHashReference(plumbing.NewRemoteReferenceName("origin", "main"), tip),
	))
	return repo, hashes
}

func newRepository(repo *git.Repository) *gogit.GoGitHistoryRepository {
	log := logger.New()
	log.SetOutput(io.Discard)
	return gogit.NewGoGitHistoryRepositoryFromRepository(repo, "", log)
}

func TestGoGitHistoryRepository(t *testing.T) {
	t.Parallel()

	snapshots := []map[string]string{
		{"README.md": "readme"},
		{"logs/py-foo.log": "first"},
		{"logs/py-foo.log": "second"},
	}

	t.Run("should list every file of the remote branch tip", func(t *testing.T) {
		t.Parallel()

		// given
		repo, _ := newHistory(t, snapshots)
		repository := newRepository(repo)

		// when
		files, err := repository.ListFiles(context.Background(), "origin/main")

		// then
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"README.md", "logs/py-foo.log"}, files)
	})

	t.Run("should read a file at an older commit", func(t *testing.T) {
		t.Parallel()

		// given
		repo, hashes := newHistory(t, snapshots)
		repository := newRepository(repo)

		// when
		contents, err := repository.ShowFile(context.Background(), hashes[1], "logs/py-foo.log")

		// then
		require.NoError(t, err)
		assert.Equal(t, "first", string(contents))
	})

	t.Run("should fail for a path missing from the tree", func(t *testing.T) {
		t.Parallel()

		// given
		repo, hashes := newHistory(t, snapshots)
		repository := newRepository(repo)

		// when
		_, err := repository.ShowFile(context.Background(), hashes[0], "logs/py-foo.log")

		// then
		require.Error(t, err)
	})

	t.Run("should resolve the commit n steps behind the tip", func(t *testing.T) {
		t.Parallel()

		// given
		repo, hashes := newHistory(t, snapshots)
		repository := newRepository(repo)

		// when
		tip, tipErr := repository.ResolveCommit(context.Background(), "main", 0)
		oldest, oldestErr := repository.ResolveCommit(context.Background(), "main", 2)

		// then
		require.NoError(t, tipErr)
		require.NoError(t, oldestErr)
		assert.Equal(t, hashes[2], tip)
		assert.Equal(t, hashes[0], oldest)
	})

	t.Run("should resolve to empty past the start of history", func(t *testing.T) {
		t.Parallel()

		// given
		repo, _ := newHistory(t, snapshots)
		repository := newRepository(repo)

		// when
		ref, err := repository.ResolveCommit(context.Background(), "main", 10)

		// then
		require.NoError(t, err)
		assert.Empty(t, ref)
	})

	t.Run("should fail to fetch without an origin remote", func(t *testing.T) {
		t.Parallel()

		// given
		repo, _ := newHistory(t, snapshots)
		repository := newRepository(repo)

		// when
		err := repository.FetchDeepen(context.Background(), "main", 2)

		// then
		require.Error(t, err)
	})
}
