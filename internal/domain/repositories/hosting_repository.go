package repositories

// HostingRepository abstracts a source-hosting service (GitHub) for a single
// authenticated session: release assets and workflow artifacts.
type HostingRepository interface {
	ReleaseRepository
	ArtifactRepository

	// Name returns the provider identifier (e.g. "github").
	Name() string
}
