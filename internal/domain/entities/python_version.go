package entities

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Masterminds/semver/v3"
	modsemver "golang.org/x/mod/semver"
)

// PythonVersion is a major.minor Python release line.
type PythonVersion struct {
	Major int
	Minor int
}

// ParsePythonVersion parses "3.12" or "3.12.4" into its major.minor line.
func ParsePythonVersion(raw string) (PythonVersion, error) {
	parts := strings.Split(strings.TrimSpace(raw), ".")
	if len(parts) < 2 { //nolint:mnd // major.minor
		return PythonVersion{}, fmt.Errorf("%w: python version %q is not major.minor", ErrInvalidInput, raw)
	}
	major, err := strconv.Atoi(parts[0])
	if err != nil {
		return PythonVersion{}, fmt.Errorf("%w: python version %q: %w", ErrInvalidInput, raw, err)
	}
	minor, err := strconv.Atoi(parts[1])
	if err != nil {
		return PythonVersion{}, fmt.Errorf("%w: python version %q: %w", ErrInvalidInput, raw, err)
	}
	return PythonVersion{Major: major, Minor: minor}, nil
}

func (v PythonVersion) String() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

func (v PythonVersion) semver() string {
	return "v" + v.String()
}

// ParseRequiresPython converts a PEP 440 specifier set (e.g. ">=3.9, <3.13")
// into semver constraints.
func ParseRequiresPython(specifier string) (*semver.Constraints, error) {
	specifier = strings.TrimSpace(specifier)
	if specifier == "" {
		return nil, fmt.Errorf("%w: empty requires-python", ErrInvalidInput)
	}

	clauses := make([]string, 0)
	for _, raw := range strings.Split(specifier, ",") {
		clause := strings.ReplaceAll(strings.TrimSpace(raw), " ", "")
		if clause == "" {
			continue
		}
		translated, err := translateSpecifier(clause)
		if err != nil {
			return nil, err
		}
		clauses = append(clauses, translated)
	}

	constraints, err := semver.NewConstraint(strings.Join(clauses, ", "))
	if err != nil {
		return nil, fmt.Errorf("%w: requires-python %q: %w", ErrInvalidInput, specifier, err)
	}
	return constraints, nil
}

func translateSpecifier(clause string) (string, error) {
	switch {
	case strings.HasPrefix(clause, "~="):
		return translateCompatible(strings.TrimPrefix(clause, "~="))
	case strings.HasPrefix(clause, "==="):
		return "=" + strings.TrimPrefix(clause, "==="), nil
	case strings.HasPrefix(clause, "=="):
		return "=" + wildcard(strings.TrimPrefix(clause, "==")), nil
	case strings.HasPrefix(clause, "!="):
		return "!=" + wildcard(strings.TrimPrefix(clause, "!=")), nil
	default:
		return clause, nil
	}
}

// translateCompatible expands "~=3.9" to ">=3.9, <4" and "~=3.9.1" to ">=3.9.1, <3.10".
func translateCompatible(release string) (string, error) {
	parts := strings.Split(release, ".")
	if len(parts) < 2 { //nolint:mnd // PEP 440 requires at least two components
		return "", fmt.Errorf("%w: compatible release %q needs two components", ErrInvalidInput, release)
	}
	prefix := parts[:len(parts)-1]
	last, err := strconv.Atoi(prefix[len(prefix)-1])
	if err != nil {
		return "", fmt.Errorf("%w: compatible release %q: %w", ErrInvalidInput, release, err)
	}
	upper := append(append([]string{}, prefix[:len(prefix)-1]...), strconv.Itoa(last+1))
	return fmt.Sprintf(">=%s, <%s", release, strings.Join(upper, ".")), nil
}

func wildcard(version string) string {
	return strings.ReplaceAll(version, "*", "x")
}

// MaxSupportedPython returns the highest major.minor on latest's major line,
// up to latest itself, that satisfies the requires-python specifier.
func MaxSupportedPython(latest PythonVersion, requiresPython string) (PythonVersion, error) {
	constraints, err := ParseRequiresPython(requiresPython)
	if err != nil {
		return PythonVersion{}, err
	}

	var (
		best  PythonVersion
		found bool
	)
	for minor := 0; minor <= latest.Minor; minor++ {
		candidate := PythonVersion{Major: latest.Major, Minor: minor}
		version, parseErr := semver.NewVersion(candidate.String())
		if parseErr != nil {
			continue
		}
		if !constraints.Check(version) {
			continue
		}
		if !found || modsemver.Compare(candidate.semver(), best.semver()) > 0 {
			best = candidate
			found = true
		}
	}

	if !found {
		return PythonVersion{}, fmt.Errorf(
			"%w: no python %d.x release up to %s satisfies requires-python %q",
			ErrNoPythonRelease, latest.Major, latest, requiresPython,
		)
	}
	return best, nil
}
