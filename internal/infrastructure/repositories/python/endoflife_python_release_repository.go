package python

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/cihelper/internal/domain/entities"
	"github.com/rios0rios0/cihelper/internal/domain/repositories"
)

const (
	// DefaultEndOfLifeURL lists every Python release cycle, newest first.
	DefaultEndOfLifeURL = "https://endoflife.date/api/python.json"
	pyVersionTimeout    = 15 * time.Second
	python3Major        = 3
)

// EndOfLifePythonReleaseRepository implements repositories.PythonReleaseRepository
// on top of the endoflife.date API.
type EndOfLifePythonReleaseRepository struct {
	url    string
	client *http.Client
	now    func() time.Time
	log    logger.FieldLogger
}

// NewEndOfLifePythonReleaseRepository creates a repository querying url.
func NewEndOfLifePythonReleaseRepository(url string, log logger.FieldLogger) repositories.PythonReleaseRepository {
	return &EndOfLifePythonReleaseRepository{
		url:    url,
		client: &http.Client{Timeout: pyVersionTimeout},
		now:    time.Now,
		log:    log,
	}
}

type pythonRelease struct {
	Cycle  string `json:"cycle"`
	Latest string `json:"latest"`
	EOL    any    `json:"eol"` // bool (false) or string date
}

// LatestPython3 returns the newest Python 3 release cycle that has not reached end-of-life.
func (r *EndOfLifePythonReleaseRepository) LatestPython3(ctx context.Context) (entities.PythonVersion, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.url, nil)
	if err != nil {
		return entities.PythonVersion{}, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return entities.PythonVersion{}, fmt.Errorf("failed to fetch Python versions: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return entities.PythonVersion{}, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var releases []pythonRelease
	if decodeErr := json.NewDecoder(resp.Body).Decode(&releases); decodeErr != nil {
		return entities.PythonVersion{}, fmt.Errorf("failed to parse Python versions: %w", decodeErr)
	}

	var (
		latest entities.PythonVersion
		found  bool
	)
	for _, release := range releases {
		if !r.isActiveRelease(release) {
			continue
		}
		version, parseErr := entities.ParsePythonVersion(release.Cycle)
		if parseErr != nil || version.Major != python3Major {
			continue
		}
		if !found || version.Minor > latest.Minor {
			latest = version
			found = true
		}
	}

	if !found {
		return entities.PythonVersion{}, errors.New("no active Python 3 release found")
	}
	r.log.Debugf("[python] Latest active Python 3 release: %s", latest)
	return latest, nil
}

// isActiveRelease returns true if the Python release cycle has not reached
// end-of-life. The EOL field is false when still active, or a date string
// when it has an EOL date, which must then lie in the future.
func (r *EndOfLifePythonReleaseRepository) isActiveRelease(release pythonRelease) bool {
	switch v := release.EOL.(type) {
	case bool:
		return !v
	case string:
		eolDate, err := time.Parse("2006-01-02", v)
		if err != nil {
			return false
		}
		return eolDate.After(r.now())
	default:
		return false
	}
}
