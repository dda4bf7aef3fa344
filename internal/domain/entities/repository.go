package entities

import (
	"fmt"
	"strings"

	gitforgeEntities "github.com/rios0rios0/gitforge/domain/entities"
)

// Repository is re-exported from gitforge. Only Organization and Name are
// filled in by ParseRepository.
type Repository = gitforgeEntities.Repository

// ParseRepository parses an "owner/name" identifier.
func ParseRepository(raw string) (Repository, error) {
	owner, name, ok := strings.Cut(strings.TrimSpace(raw), "/")
	if !ok || owner == "" || name == "" || strings.Contains(name, "/") {
		return Repository{}, fmt.Errorf("%w: repository must look like owner/name, got %q", ErrInvalidInput, raw)
	}
	return Repository{Organization: owner, Name: strings.TrimSuffix(name, ".git")}, nil
}
