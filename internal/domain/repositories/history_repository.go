package repositories

import "context"

// HistoryRepository abstracts the version-control history of a checked-out repository.
type HistoryRepository interface {
	// ListFiles returns every file path in the tree of ref.
	ListFiles(ctx context.Context, ref string) ([]string, error)

	// ShowFile returns the contents of path as of ref.
	ShowFile(ctx context.Context, ref, path string) ([]byte, error)

	// ResolveCommit returns the commit that is skip commits behind the tip of
	// the remote branch, or an empty string when the history is shorter.
	ResolveCommit(ctx context.Context, branch string, skip int) (string, error)

	// FetchDeepen extends the locally available history of branch to depth commits.
	FetchDeepen(ctx context.Context, branch string, depth int) error
}
