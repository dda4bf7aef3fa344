package repositories

import (
	"fmt"
	"sort"

	domainRepos "github.com/rios0rios0/cihelper/internal/domain/repositories"
)

// ProviderFactory is a constructor function that creates a HostingRepository given
// an auth token and an optional API base URL.
type ProviderFactory func(token, apiURL string) (domainRepos.HostingRepository, error)

// ProviderRegistry manages all registered source-hosting implementations.
type ProviderRegistry struct {
	providers map[string]ProviderFactory
}

// NewProviderRegistry creates an empty provider registry.
func NewProviderRegistry() *ProviderRegistry {
	return &ProviderRegistry{
		providers: make(map[string]ProviderFactory),
	}
}

// Register adds a provider factory under the given name (e.g. "github").
func (r *ProviderRegistry) Register(name string, factory ProviderFactory) {
	r.providers[name] = factory
}

// Get returns a configured provider instance for the given name, token and API URL.
func (r *ProviderRegistry) Get(name, token, apiURL string) (domainRepos.HostingRepository, error) {
	factory, ok := r.providers[name]
	if !ok {
		return nil, fmt.Errorf("unknown provider type: %q", name)
	}
	return factory(token, apiURL)
}

// Names returns the sorted list of registered provider names.
func (r *ProviderRegistry) Names() []string {
	names := make([]string, 0, len(r.providers))
	for name := range r.providers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
