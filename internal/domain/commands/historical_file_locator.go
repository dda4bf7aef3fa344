package commands

import (
	"context"
	"strings"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/cihelper/internal/domain/entities"
	"github.com/rios0rios0/cihelper/internal/domain/repositories"
)

// LocatorOptions tunes the history walk of a HistoricalFileLocator.
type LocatorOptions struct {
	MaxDepth       int
	LegacyPrefix   string
	LegacyFilename string
}

// lookupStrategy is one step of the fallback chain. It returns nil on a miss.
type lookupStrategy struct {
	name string
	find func(ctx context.Context, req entities.LocateRequest) *entities.RemoteFile
}

// HistoricalFileLocator retrieves a file as it existed in a release asset or in
// recent branch history.
type HistoricalFileLocator struct {
	release repositories.ReleaseRepository
	history repositories.HistoryRepository
	opts    LocatorOptions
	log     logger.FieldLogger
}

// NewHistoricalFileLocator creates a locator; a non-positive MaxDepth selects the default.
func NewHistoricalFileLocator(
	release repositories.ReleaseRepository,
	history repositories.HistoryRepository,
	opts LocatorOptions,
	log logger.FieldLogger,
) *HistoricalFileLocator {
	if opts.MaxDepth <= 0 {
		opts.MaxDepth = entities.DefaultMaxDepth
	}
	return &HistoricalFileLocator{release: release, history: history, opts: opts, log: log}
}

// Locate tries each strategy in order and stops at the first one that finds the file.
func (it *HistoricalFileLocator) Locate(ctx context.Context, req entities.LocateRequest) entities.LookupResult {
	for _, strategy := range it.strategies() {
		it.log.Debugf("[locate] Trying %s for '%s'", strategy.name, req.Filename)
		if file := strategy.find(ctx, req); file != nil {
			return entities.Found(*file)
		}
	}
	return entities.NotFound()
}

func (it *HistoricalFileLocator) strategies() []lookupStrategy {
	return []lookupStrategy{
		{name: "release asset", find: it.fromRelease},
		{name: "git history", find: it.fromHistory},
		{name: "legacy git history", find: it.fromLegacyHistory},
	}
}

func (it *HistoricalFileLocator) fromRelease(ctx context.Context, req entities.LocateRequest) *entities.RemoteFile {
	contents, found, err := it.release.FindLatestReleaseAsset(ctx, req.Repository, req.Filename)
	if err != nil {
		it.log.Debugf("[locate] Release lookup failed: %v", err)
		return nil
	}
	if !found || len(contents) == 0 {
		return nil
	}
	return &entities.RemoteFile{
		Filename: req.Filename,
		Contents: contents,
		Source:   entities.SourceReleaseAsset,
		Ref:      "latest",
	}
}

func (it *HistoricalFileLocator) fromHistory(ctx context.Context, req entities.LocateRequest) *entities.RemoteFile {
	return it.walk(ctx, req.Branch, entities.NewFilenameAliases(req.Filename))
}

func (it *HistoricalFileLocator) fromLegacyHistory(ctx context.Context, req entities.LocateRequest) *entities.RemoteFile {
	legacy := it.opts.LegacyFilename
	if it.opts.LegacyPrefix == "" || legacy == "" ||
		!strings.HasPrefix(req.Filename, it.opts.LegacyPrefix) {
		return nil
	}
	// already covered by the regular walk
	if entities.NewFilenameAliases(req.Filename).Matches(legacy) {
		return nil
	}
	return it.walk(ctx, req.Branch, entities.FilenameAliases{legacy})
}

// walk probes the branch tip and then up to MaxDepth-1 older commits.
func (it *HistoricalFileLocator) walk(
	ctx context.Context,
	branch string,
	aliases entities.FilenameAliases,
) *entities.RemoteFile {
	for depth := range it.opts.MaxDepth {
		ref, ok := it.refAt(ctx, branch, depth)
		if !ok {
			continue
		}
		if file := it.findInTree(ctx, ref, aliases); file != nil {
			return file
		}
		it.log.Debugf("[locate] No match for %v at depth %d", []string(aliases), depth)
	}
	return nil
}

// refAt resolves the commit depth steps behind the tip of origin/<branch>,
// deepening the local history first when needed.
func (it *HistoricalFileLocator) refAt(ctx context.Context, branch string, depth int) (string, bool) {
	if depth == 0 {
		return "origin/" + branch, true
	}

	it.log.Debugf("[locate] Fetching origin/%s (depth=%d)", branch, depth)
	if err := it.history.FetchDeepen(ctx, branch, depth+1); err != nil {
		it.log.Debugf("[locate] Fetch failed at depth %d: %v", depth, err)
		return "", false
	}

	ref, err := it.history.ResolveCommit(ctx, branch, depth)
	if err != nil {
		it.log.Debugf("[locate] Could not resolve commit at depth %d: %v", depth, err)
		return "", false
	}
	return ref, ref != ""
}

// findInTree returns the contents of the first path in ref whose basename is an
// alias and whose contents can be read and are not empty.
func (it *HistoricalFileLocator) findInTree(
	ctx context.Context,
	ref string,
	aliases entities.FilenameAliases,
) *entities.RemoteFile {
	paths, err := it.history.ListFiles(ctx, ref)
	if err != nil {
		it.log.Debugf("[locate] Could not list files of %s: %v", ref, err)
		return nil
	}

	for _, path := range paths {
		if !aliases.Matches(path) {
			continue
		}
		contents, showErr := it.history.ShowFile(ctx, ref, path)
		if showErr != nil {
			it.log.Debugf("[locate] Could not read %s:%s: %v", ref, path, showErr)
			continue
		}
		if len(contents) == 0 {
			continue
		}
		return &entities.RemoteFile{
			Filename: path,
			Contents: contents,
			Source:   entities.SourceGitHistory,
			Ref:      ref,
		}
	}
	return nil
}
