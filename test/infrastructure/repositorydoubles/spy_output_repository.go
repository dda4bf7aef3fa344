//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/cihelper/internal/domain/repositories"
)

// SpyOutputRepository records every step output it is given.
type SpyOutputRepository struct {
	Values map[string]string
	SetErr error
}

var _ repositories.OutputRepository = (*SpyOutputRepository)(nil)

func (o *SpyOutputRepository) Set(key, value string) error {
	if o.SetErr != nil {
		return o.SetErr
	}
	if o.Values == nil {
		o.Values = make(map[string]string)
	}
	o.Values[key] = value
	return nil
}
