package entities

import "time"

// WorkflowRun is the CI run that produced an artifact.
type WorkflowRun struct {
	ID         int64
	HeadBranch string
	HeadSHA    string
}

// Artifact is a named, timestamped build output of a workflow run.
type Artifact struct {
	ID          int64
	Name        string
	CreatedAt   time.Time
	Expired     bool
	WorkflowRun WorkflowRun
}

// ArtifactFilter holds the selection criteria. An empty Name accepts every artifact name.
type ArtifactFilter struct {
	Branch       string
	ExcludeRunID int64
	Name         string
}

// Accepts reports whether the artifact survives the filter.
func (f ArtifactFilter) Accepts(artifact Artifact) bool {
	if artifact.Expired {
		return false
	}
	if artifact.WorkflowRun.HeadBranch != f.Branch {
		return false
	}
	if artifact.WorkflowRun.ID == f.ExcludeRunID {
		return false
	}
	return f.Name == "" || artifact.Name == f.Name
}

// SelectLatestArtifact returns the newest artifact accepted by the filter.
// Ties on CreatedAt keep the earliest artifact in input order.
func SelectLatestArtifact(artifacts []Artifact, filter ArtifactFilter) (Artifact, error) {
	var (
		latest Artifact
		found  bool
	)
	for _, artifact := range artifacts {
		if !filter.Accepts(artifact) {
			continue
		}
		if !found || artifact.CreatedAt.After(latest.CreatedAt) {
			latest = artifact
			found = true
		}
	}
	if !found {
		return Artifact{}, ErrNoArtifact
	}
	return latest, nil
}
