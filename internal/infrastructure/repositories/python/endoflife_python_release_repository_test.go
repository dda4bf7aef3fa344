//go:build unit

package python_test

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	logger "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/cihelper/internal/domain/entities"
	"github.com/rios0rios0/cihelper/internal/infrastructure/repositories/python"
)

func newRepository(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(status)
		fmt.Fprint(w, body)
	}))
	t.Cleanup(server.Close)
	return server
}

func discardLogger() *logger.Logger {
	log := logger.New()
	log.SetOutput(io.Discard)
	return log
}

func TestEndOfLifePythonReleaseRepository(t *testing.T) {
	t.Parallel()

	t.Run("should return the newest Python 3 cycle that is still supported", func(t *testing.T) {
		t.Parallel()

		// given
		server := newRepository(t, http.StatusOK, `[
			{"cycle":"3.15","latest":"3.15.0a1","eol":"2031-10-01"},
			{"cycle":"3.14","latest":"3.14.0","eol":"2030-10-31"},
			{"cycle":"3.8","latest":"3.8.20","eol":"2024-10-07"},
			{"cycle":"2.7","latest":"2.7.18","eol":true}
		]`)
		repository := python.NewEndOfLifePythonReleaseRepository(server.URL, discardLogger())

		// when
		latest, err := repository.LatestPython3(context.Background())

		// then
		require.NoError(t, err)
		assert.Equal(t, entities.PythonVersion{Major: 3, Minor: 15}, latest)
	})

	t.Run("should treat eol=false as active", func(t *testing.T) {
		t.Parallel()

		// given
		server := newRepository(t, http.StatusOK, `[
			{"cycle":"3.13","latest":"3.13.1","eol":false},
			{"cycle":"3.12","latest":"3.12.8","eol":"2099-10-31"}
		]`)
		repository := python.NewEndOfLifePythonReleaseRepository(server.URL, discardLogger())

		// when
		latest, err := repository.LatestPython3(context.Background())

		// then
		require.NoError(t, err)
		assert.Equal(t, "3.13", latest.String())
	})

	t.Run("should fail when every cycle reached end-of-life", func(t *testing.T) {
		t.Parallel()

		// given
		server := newRepository(t, http.StatusOK, `[{"cycle":"3.7","latest":"3.7.17","eol":"2023-06-27"}]`)
		repository := python.NewEndOfLifePythonReleaseRepository(server.URL, discardLogger())

		// when
		_, err := repository.LatestPython3(context.Background())

		// then
		require.Error(t, err)
	})

	t.Run("should fail on a non-200 response", func(t *testing.T) {
		t.Parallel()

		// given
		server := newRepository(t, http.StatusServiceUnavailable, "")
		repository := python.NewEndOfLifePythonReleaseRepository(server.URL, discardLogger())

		// when
		_, err := repository.LatestPython3(context.Background())

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "503")
	})
}
