package github

import (
	"encoding/json"
	"fmt"
	"os"

	gh "github.com/google/go-github/v66/github"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/cihelper/internal/domain/entities"
	"github.com/rios0rios0/cihelper/internal/domain/repositories"
)

// ArtifactFileRepository reads the JSON body of
// GET /repos/{owner}/{repo}/actions/artifacts saved to disk.
type ArtifactFileRepository struct {
	log logger.FieldLogger
}

// NewArtifactFileRepository creates a new ArtifactFileRepository.
func NewArtifactFileRepository(log logger.FieldLogger) repositories.ArtifactFileRepository {
	return &ArtifactFileRepository{log: log}
}

// artifactListing is gh.ArtifactList with the entries left raw, so that one
// entry with a bad timestamp does not reject the whole file.
type artifactListing struct {
	Artifacts []json.RawMessage `json:"artifacts"`
}

// Load decodes the artifact listing at path. Entries that cannot be decoded
// are skipped with a warning.
func (r *ArtifactFileRepository) Load(path string) ([]entities.Artifact, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read artifacts JSON: %w", entities.ErrInvalidInput, err)
	}

	var listing artifactListing
	if unmarshalErr := json.Unmarshal(data, &listing); unmarshalErr != nil {
		return nil, fmt.Errorf("%w: failed to parse artifacts JSON: %w", entities.ErrInvalidInput, unmarshalErr)
	}

	decoded := make([]*gh.Artifact, 0, len(listing.Artifacts))
	for i, raw := range listing.Artifacts {
		var artifact gh.Artifact
		if entryErr := json.Unmarshal(raw, &artifact); entryErr != nil {
			r.log.Warnf("[artifact] Skipping artifact #%d: %v", i, entryErr)
			continue
		}
		decoded = append(decoded, &artifact)
	}

	return convertArtifacts(decoded, r.log), nil
}
