package entities

import (
	"fmt"
	"path"
	"strings"
)

// FileSource tells where a historical file was found.
type FileSource string

const (
	SourceReleaseAsset FileSource = "release_asset"
	SourceGitHistory   FileSource = "git_history"
)

const legacyNamePrefix = "py-"

// LocateRequest identifies the file to look for.
type LocateRequest struct {
	Filename   string
	Branch     string
	Repository Repository
}

// RemoteFile is the contents of a file as it existed in the past.
type RemoteFile struct {
	Filename string
	Contents []byte
	Source   FileSource
	Ref      string // commit or release the contents were read from
}

// LookupResult is either Found (File != nil) or NotFound. A zero value is NotFound.
type LookupResult struct {
	File *RemoteFile
}

// Found wraps a located file.
func Found(file RemoteFile) LookupResult {
	return LookupResult{File: &file}
}

// NotFound is the empty result.
func NotFound() LookupResult {
	return LookupResult{}
}

// IsFound reports whether the lookup produced contents.
func (r LookupResult) IsFound() bool {
	return r.File != nil
}

// FilenameAliases is the set of basenames accepted as the same logical file.
// Older pipelines wrote the file without the "py-" prefix.
type FilenameAliases []string

// NewFilenameAliases returns the current name plus its legacy, prefix-less name.
func NewFilenameAliases(filename string) FilenameAliases {
	aliases := FilenameAliases{filename}
	if stripped := strings.TrimPrefix(filename, legacyNamePrefix); stripped != filename && stripped != "" {
		aliases = append(aliases, stripped)
	}
	return aliases
}

// Matches reports whether the basename of filePath equals one of the aliases.
func (a FilenameAliases) Matches(filePath string) bool {
	base := path.Base(filePath)
	for _, alias := range a {
		if base == alias {
			return true
		}
	}
	return false
}

// NotFoundPolicy decides how an exhausted search is reported.
type NotFoundPolicy string

const (
	// NotFoundFail reports an exhausted search with exit code 2.
	NotFoundFail NotFoundPolicy = "fail"
	// NotFoundAssumeNew treats an exhausted search as "the file is new" and exits 0.
	NotFoundAssumeNew NotFoundPolicy = "assume-new"
)

// ParseNotFoundPolicy validates a policy name; empty selects NotFoundFail.
func ParseNotFoundPolicy(raw string) (NotFoundPolicy, error) {
	switch NotFoundPolicy(raw) {
	case "", NotFoundFail:
		return NotFoundFail, nil
	case NotFoundAssumeNew:
		return NotFoundAssumeNew, nil
	default:
		return "", fmt.Errorf("%w: unknown not-found policy %q (expected %q or %q)",
			ErrInvalidInput, raw, NotFoundFail, NotFoundAssumeNew)
	}
}
