package repositories

import (
	"fmt"
	"sort"

	domainRepos "github.com/rios0rios0/cihelper/internal/domain/repositories"
)

// HistoryFactory creates a HistoryRepository for the working copy in repoDir.
// The token is used by backends that talk to the remote themselves.
type HistoryFactory func(repoDir, token string) (domainRepos.HistoryRepository, error)

// HistoryRegistry manages the version-control backends ("git", "gogit").
type HistoryRegistry struct {
	backends map[string]HistoryFactory
}

// NewHistoryRegistry creates an empty history registry.
func NewHistoryRegistry() *HistoryRegistry {
	return &HistoryRegistry{
		backends: make(map[string]HistoryFactory),
	}
}

// Register adds a backend factory under the given name.
func (r *HistoryRegistry) Register(name string, factory HistoryFactory) {
	r.backends[name] = factory
}

// Get opens the named backend on repoDir.
func (r *HistoryRegistry) Get(name, repoDir, token string) (domainRepos.HistoryRepository, error) {
	factory, ok := r.backends[name]
	if !ok {
		return nil, fmt.Errorf("unknown vcs backend: %q (available: %v)", name, r.Names())
	}
	return factory(repoDir, token)
}

// Names returns the sorted list of registered backend names.
func (r *HistoryRegistry) Names() []string {
	names := make([]string, 0, len(r.backends))
	for name := range r.backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
