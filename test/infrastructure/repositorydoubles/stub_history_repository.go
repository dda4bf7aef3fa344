//go:build integration || unit || test

// Package repositorydoubles provides hand-written spies, stubs and dummies for
// the history, hosting, manifest, output and python release ports.
package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"
	"fmt"

	"github.com/rios0rios0/cihelper/internal/domain/repositories"
)

// SpyHistoryRepository implements repositories.HistoryRepository over an in-memory history.
type SpyHistoryRepository struct {
	// --- ResolveCommit ---
	Commits    map[int]string // skip -> commit SHA; missing entries resolve to ""
	ResolveErr error
	Skips      []int

	// --- FetchDeepen ---
	FetchErr    error
	FetchDepths []int

	// --- ListFiles ---
	Trees    map[string][]string // ref -> file paths
	ListErr  error
	ListRefs []string

	// --- ShowFile ---
	Contents  map[string]string // "ref:path" -> contents
	ShowErr   error
	ShowCalls []string
}

var _ repositories.HistoryRepository = (*SpyHistoryRepository)(nil)

func (h *SpyHistoryRepository) ListFiles(_ context.Context, ref string) ([]string, error) {
	h.ListRefs = append(h.ListRefs, ref)
	if h.ListErr != nil {
		return nil, h.ListErr
	}
	return h.Trees[ref], nil
}

func (h *SpyHistoryRepository) ShowFile(_ context.Context, ref, path string) ([]byte, error) {
	key := ref + ":" + path
	h.ShowCalls = append(h.ShowCalls, key)
	if h.ShowErr != nil {
		return nil, h.ShowErr
	}
	contents, ok := h.Contents[key]
	if !ok {
		return nil, fmt.Errorf("path '%s' does not exist in '%s'", path, ref)
	}
	return []byte(contents), nil
}

func (h *SpyHistoryRepository) ResolveCommit(_ context.Context, _ string, skip int) (string, error) {
	h.Skips = append(h.Skips, skip)
	if h.ResolveErr != nil {
		return "", h.ResolveErr
	}
	return h.Commits[skip], nil
}

func (h *SpyHistoryRepository) FetchDeepen(_ context.Context, _ string, depth int) error {
	h.FetchDepths = append(h.FetchDepths, depth)
	return h.FetchErr
}

// DummyHistoryRepository is a history with no commits and no files.
type DummyHistoryRepository struct{}

var _ repositories.HistoryRepository = (*DummyHistoryRepository)(nil)

func (d *DummyHistoryRepository) ListFiles(_ context.Context, _ string) ([]string, error) {
	return nil, nil
}

func (d *DummyHistoryRepository) ShowFile(_ context.Context, _, _ string) ([]byte, error) {
	return nil, nil
}

func (d *DummyHistoryRepository) ResolveCommit(_ context.Context, _ string, _ int) (string, error) {
	return "", nil
}

func (d *DummyHistoryRepository) FetchDeepen(_ context.Context, _ string, _ int) error {
	return nil
}
