//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/cihelper/internal/domain/entities"
	"github.com/rios0rios0/cihelper/internal/domain/repositories"
)

// StubPythonReleaseRepository returns a fixed latest Python release.
type StubPythonReleaseRepository struct {
	Latest    entities.PythonVersion
	LatestErr error
	CallCount int
}

var _ repositories.PythonReleaseRepository = (*StubPythonReleaseRepository)(nil)

func (r *StubPythonReleaseRepository) LatestPython3(_ context.Context) (entities.PythonVersion, error) {
	r.CallCount++
	return r.Latest, r.LatestErr
}
