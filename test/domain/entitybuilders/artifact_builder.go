//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"time"

	"github.com/rios0rios0/cihelper/internal/domain/entities"
	testkit "github.com/rios0rios0/testkit/pkg/test"
)

const defaultArtifactName = "py-dependencies-logs"

//nolint:gochecknoglobals // fixed reference time for deterministic tests
var defaultCreatedAt = time.Date(2025, time.January, 1, 12, 0, 0, 0, time.UTC)

// ArtifactBuilder helps create test artifacts with a fluent interface.
type ArtifactBuilder struct {
	*testkit.BaseBuilder
	id         int64
	name       string
	createdAt  time.Time
	expired    bool
	runID      int64
	headBranch string
}

// NewArtifactBuilder creates a new artifact builder with sensible defaults.
func NewArtifactBuilder() *ArtifactBuilder {
	return &ArtifactBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		id:          1,
		name:        defaultArtifactName,
		createdAt:   defaultCreatedAt,
		runID:       100,
		headBranch:  "main",
	}
}

// WithID sets the artifact ID.
func (b *ArtifactBuilder) WithID(id int64) *ArtifactBuilder {
	b.id = id
	return b
}

// WithName sets the artifact name.
func (b *ArtifactBuilder) WithName(name string) *ArtifactBuilder {
	b.name = name
	return b
}

// WithCreatedAt sets the creation time.
func (b *ArtifactBuilder) WithCreatedAt(createdAt time.Time) *ArtifactBuilder {
	b.createdAt = createdAt
	return b
}

// WithCreatedAtRFC3339 parses and sets the creation time; panics on malformed input.
func (b *ArtifactBuilder) WithCreatedAtRFC3339(createdAt string) *ArtifactBuilder {
	parsed, err := time.Parse(time.RFC3339, createdAt)
	if err != nil {
		panic(err)
	}
	b.createdAt = parsed
	return b
}

// WithExpired marks the artifact as expired.
func (b *ArtifactBuilder) WithExpired(expired bool) *ArtifactBuilder {
	b.expired = expired
	return b
}

// WithRunID sets the producing workflow run ID.
func (b *ArtifactBuilder) WithRunID(runID int64) *ArtifactBuilder {
	b.runID = runID
	return b
}

// WithHeadBranch sets the branch of the producing workflow run.
func (b *ArtifactBuilder) WithHeadBranch(branch string) *ArtifactBuilder {
	b.headBranch = branch
	return b
}

// Build creates the artifact (satisfies testkit.Builder interface).
func (b *ArtifactBuilder) Build() interface{} {
	return b.BuildArtifact()
}

// BuildArtifact creates the artifact with a concrete return type.
func (b *ArtifactBuilder) BuildArtifact() entities.Artifact {
	return entities.Artifact{
		ID:        b.id,
		Name:      b.name,
		CreatedAt: b.createdAt,
		Expired:   b.expired,
		WorkflowRun: entities.WorkflowRun{
			ID:         b.runID,
			HeadBranch: b.headBranch,
		},
	}
}

// Reset clears the builder state, allowing it to be reused.
func (b *ArtifactBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.id = 1
	b.name = defaultArtifactName
	b.createdAt = defaultCreatedAt
	b.expired = false
	b.runID = 100
	b.headBranch = "main"
	return b
}

// Clone creates a deep copy of the ArtifactBuilder.
func (b *ArtifactBuilder) Clone() testkit.Builder {
	return &ArtifactBuilder{
		BaseBuilder: b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		id:          b.id,
		name:        b.name,
		createdAt:   b.createdAt,
		expired:     b.expired,
		runID:       b.runID,
		headBranch:  b.headBranch,
	}
}
