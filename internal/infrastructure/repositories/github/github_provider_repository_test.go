//go:build unit

package github_test

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	gh "github.com/google/go-github/v66/github"
	logger "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/cihelper/internal/domain/entities"
	ghRepo "github.com/rios0rios0/cihelper/internal/infrastructure/repositories/github"
)

func newTestLogger() *logger.Logger {
	log := logger.New()
	log.SetOutput(io.Discard)
	return log
}

func newTestProvider(t *testing.T, mux *http.ServeMux) *ghRepo.GitHubProviderRepository {
	t.Helper()
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	client := gh.NewClient(nil)
	baseURL, err := url.Parse(server.URL + "/")
	require.NoError(t, err)
	client.BaseURL = baseURL

	return ghRepo.NewGitHubProviderRepositoryWithClient(client, newTestLogger())
}

var testRepo = entities.Repository{Organization: "org", Name: "repo"} //nolint:gochecknoglobals // test fixture

func TestFindLatestReleaseAsset(t *testing.T) {
	t.Parallel()

	t.Run("should download the asset with the exact name", func(t *testing.T) {
		t.Parallel()

		// given
		mux := http.NewServeMux()
		mux.HandleFunc("/repos/org/repo/releases/latest", func(w http.ResponseWriter, _ *http.Request) {
			fmt.Fprint(w, `{"tag_name":"v1.2.0","assets":[
				{"id":1,"name":"py-foo.log.bak"},
				{"id":2,"name":"py-foo.log"}
			]}`)
		})
		mux.HandleFunc("/repos/org/repo/releases/assets/2", func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "application/octet-stream", r.Header.Get("Accept"))
			fmt.Fprint(w, "pinned==1.0\n")
		})
		provider := newTestProvider(t, mux)

		// when
		contents, found, err := provider.FindLatestReleaseAsset(context.Background(), testRepo, "py-foo.log")

		// then
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, "pinned==1.0\n", string(contents))
	})

	t.Run("should report no asset when the release lacks the file", func(t *testing.T) {
		t.Parallel()

		// given
		mux := http.NewServeMux()
		mux.HandleFunc("/repos/org/repo/releases/latest", func(w http.ResponseWriter, _ *http.Request) {
			fmt.Fprint(w, `{"tag_name":"v1.2.0","assets":[{"id":1,"name":"other.log"}]}`)
		})
		provider := newTestProvider(t, mux)

		// when
		contents, found, err := provider.FindLatestReleaseAsset(context.Background(), testRepo, "py-foo.log")

		// then
		require.NoError(t, err)
		assert.False(t, found)
		assert.Nil(t, contents)
	})

	t.Run("should treat a non-success response as no asset", func(t *testing.T) {
		t.Parallel()

		// given
		mux := http.NewServeMux()
		mux.HandleFunc("/repos/org/repo/releases/latest", func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			fmt.Fprint(w, `{"message":"Not Found"}`)
		})
		provider := newTestProvider(t, mux)

		// when
		_, found, err := provider.FindLatestReleaseAsset(context.Background(), testRepo, "py-foo.log")

		// then
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("should treat a failed download as no asset", func(t *testing.T) {
		t.Parallel()

		// given
		mux := http.NewServeMux()
		mux.HandleFunc("/repos/org/repo/releases/latest", func(w http.ResponseWriter, _ *http.Request) {
			fmt.Fprint(w, `{"assets":[{"id":2,"name":"py-foo.log"}]}`)
		})
		mux.HandleFunc("/repos/org/repo/releases/assets/2", func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusForbidden)
			fmt.Fprint(w, `{"message":"Forbidden"}`)
		})
		provider := newTestProvider(t, mux)

		// when
		_, found, err := provider.FindLatestReleaseAsset(context.Background(), testRepo, "py-foo.log")

		// then
		require.NoError(t, err)
		assert.False(t, found)
	})
}

func TestListArtifacts(t *testing.T) {
	t.Parallel()

	t.Run("should follow pagination and convert every artifact", func(t *testing.T) {
		t.Parallel()

		// given
		var server *httptest.Server
		mux := http.NewServeMux()
		mux.HandleFunc("/repos/org/repo/actions/artifacts", func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Query().Get("page") == "2" {
				fmt.Fprint(w, `{"total_count":2,"artifacts":[
					{"id":2,"name":"py-dependencies-logs","expired":true,"created_at":"2025-03-02T00:00:00Z",
					 "workflow_run":{"id":20,"head_branch":"main","head_sha":"def"}}
				]}`)
				return
			}
			w.Header().Set("Link", fmt.Sprintf(`<%s/repos/org/repo/actions/artifacts?page=2>; rel="next"`, server.URL))
			fmt.Fprint(w, `{"total_count":2,"artifacts":[
				{"id":1,"name":"py-dependencies-logs","expired":false,"created_at":"2025-03-01T00:00:00Z",
				 "workflow_run":{"id":10,"head_branch":"main","head_sha":"abc"}}
			]}`)
		})
		server = httptest.NewServer(mux)
		t.Cleanup(server.Close)
		client := gh.NewClient(nil)
		client.BaseURL, _ = url.Parse(server.URL + "/")
		provider := ghRepo.NewGitHubProviderRepositoryWithClient(client, newTestLogger())

		// when
		artifacts, err := provider.ListArtifacts(context.Background(), testRepo)

		// then
		require.NoError(t, err)
		require.Len(t, artifacts, 2)
		assert.Equal(t, int64(1), artifacts[0].ID)
		assert.Equal(t, int64(10), artifacts[0].WorkflowRun.ID)
		assert.Equal(t, "main", artifacts[0].WorkflowRun.HeadBranch)
		assert.Equal(t, "abc", artifacts[0].WorkflowRun.HeadSHA)
		assert.True(t, artifacts[1].Expired)
	})

	t.Run("should return API errors", func(t *testing.T) {
		t.Parallel()

		// given
		mux := http.NewServeMux()
		mux.HandleFunc("/repos/org/repo/actions/artifacts", func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		})
		provider := newTestProvider(t, mux)

		// when
		_, err := provider.ListArtifacts(context.Background(), testRepo)

		// then
		require.Error(t, err)
	})
}
