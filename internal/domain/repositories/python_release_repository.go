package repositories

import (
	"context"

	"github.com/rios0rios0/cihelper/internal/domain/entities"
)

// PythonReleaseRepository reports the newest Python release line still supported upstream.
type PythonReleaseRepository interface {
	LatestPython3(ctx context.Context) (entities.PythonVersion, error)
}
