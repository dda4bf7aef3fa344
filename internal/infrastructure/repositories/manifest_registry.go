package repositories

import (
	domainRepos "github.com/rios0rios0/cihelper/internal/domain/repositories"
)

// ManifestRegistry holds the manifest readers in preference order.
type ManifestRegistry struct {
	manifests []domainRepos.ManifestRepository
}

// NewManifestRegistry creates an empty manifest registry.
func NewManifestRegistry() *ManifestRegistry {
	return &ManifestRegistry{}
}

// Register appends a reader; earlier registrations are preferred.
func (r *ManifestRegistry) Register(m domainRepos.ManifestRepository) {
	r.manifests = append(r.manifests, m)
}

// Get returns the reader for the given manifest file name, or nil if not registered.
func (r *ManifestRegistry) Get(name string) domainRepos.ManifestRepository {
	for _, m := range r.manifests {
		if m.Name() == name {
			return m
		}
	}
	return nil
}

// All returns every registered reader in preference order.
func (r *ManifestRegistry) All() []domainRepos.ManifestRepository {
	result := make([]domainRepos.ManifestRepository, len(r.manifests))
	copy(result, r.manifests)
	return result
}

// Names returns the manifest file names in preference order.
func (r *ManifestRegistry) Names() []string {
	names := make([]string, 0, len(r.manifests))
	for _, m := range r.manifests {
		names = append(names, m.Name())
	}
	return names
}
