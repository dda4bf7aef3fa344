package entities

// UnknownPackageName is reported when a manifest exists but declares no name.
const UnknownPackageName = "UNKNOWN"

// ProjectMetadata is the subset of a Python project's manifest used by the pipelines.
type ProjectMetadata struct {
	Manifest       string // file the metadata was read from
	Name           string
	Extras         []string
	RequiresPython string
}

// PackageName returns the declared name or UnknownPackageName.
func (m ProjectMetadata) PackageName() string {
	if m.Name == "" {
		return UnknownPackageName
	}
	return m.Name
}
