//go:build unit

package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/cihelper/internal/domain/entities"
	"github.com/rios0rios0/cihelper/test/domain/entitybuilders"
)

func TestSelectLatestArtifact(t *testing.T) {
	t.Parallel()

	t.Run("should select the newest artifact of the branch excluding the current run", func(t *testing.T) {
		t.Parallel()

		// given
		artifacts := []entities.Artifact{
			entitybuilders.NewArtifactBuilder().WithID(1).WithRunID(10).
				WithCreatedAtRFC3339("2025-03-01T00:00:00Z").BuildArtifact(),
			entitybuilders.NewArtifactBuilder().WithID(2).WithRunID(99).
				WithCreatedAtRFC3339("2025-03-02T00:00:00Z").BuildArtifact(),
		}
		filter := entities.ArtifactFilter{Branch: "main", ExcludeRunID: 99}

		// when
		latest, err := entities.SelectLatestArtifact(artifacts, filter)

		// then
		require.NoError(t, err)
		assert.Equal(t, int64(1), latest.ID)
	})

	t.Run("should drop expired artifacts and artifacts of other branches", func(t *testing.T) {
		t.Parallel()

		// given
		artifacts := []entities.Artifact{
			entitybuilders.NewArtifactBuilder().WithID(1).
				WithCreatedAtRFC3339("2025-03-01T00:00:00Z").BuildArtifact(),
			entitybuilders.NewArtifactBuilder().WithID(2).WithExpired(true).
				WithCreatedAtRFC3339("2025-03-05T00:00:00Z").BuildArtifact(),
			entitybuilders.NewArtifactBuilder().WithID(3).WithHeadBranch("feature").
				WithCreatedAtRFC3339("2025-03-06T00:00:00Z").BuildArtifact(),
		}

		// when
		latest, err := entities.SelectLatestArtifact(artifacts, entities.ArtifactFilter{Branch: "main"})

		// then
		require.NoError(t, err)
		assert.Equal(t, int64(1), latest.ID)
	})

	t.Run("should keep the first artifact when creation times tie", func(t *testing.T) {
		t.Parallel()

		// given
		builder := entitybuilders.NewArtifactBuilder().WithCreatedAtRFC3339("2025-03-01T00:00:00Z")
		artifacts := []entities.Artifact{
			builder.WithID(7).BuildArtifact(),
			builder.WithID(8).BuildArtifact(),
		}

		// when
		latest, err := entities.SelectLatestArtifact(artifacts, entities.ArtifactFilter{Branch: "main"})

		// then
		require.NoError(t, err)
		assert.Equal(t, int64(7), latest.ID)
	})

	t.Run("should filter by name when one is given", func(t *testing.T) {
		t.Parallel()

		// given
		artifacts := []entities.Artifact{
			entitybuilders.NewArtifactBuilder().WithID(1).WithName("coverage").
				WithCreatedAtRFC3339("2025-03-09T00:00:00Z").BuildArtifact(),
			entitybuilders.NewArtifactBuilder().WithID(2).
				WithCreatedAtRFC3339("2025-03-01T00:00:00Z").BuildArtifact(),
		}
		filter := entities.ArtifactFilter{Branch: "main", Name: "py-dependencies-logs"}

		// when
		latest, err := entities.SelectLatestArtifact(artifacts, filter)

		// then
		require.NoError(t, err)
		assert.Equal(t, int64(2), latest.ID)
	})

	t.Run("should return ErrNoArtifact when nothing survives the filter", func(t *testing.T) {
		t.Parallel()

		// given
		artifacts := []entities.Artifact{
			entitybuilders.NewArtifactBuilder().WithRunID(5).BuildArtifact(),
		}

		// when
		_, err := entities.SelectLatestArtifact(artifacts, entities.ArtifactFilter{Branch: "main", ExcludeRunID: 5})

		// then
		require.ErrorIs(t, err, entities.ErrNoArtifact)
	})

	t.Run("should return ErrNoArtifact for an empty list", func(t *testing.T) {
		t.Parallel()

		// given
		var artifacts []entities.Artifact

		// when
		_, err := entities.SelectLatestArtifact(artifacts, entities.ArtifactFilter{Branch: "main"})

		// then
		require.ErrorIs(t, err, entities.ErrNoArtifact)
	})
}
