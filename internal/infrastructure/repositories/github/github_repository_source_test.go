//go:build unit

package github_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/repograde/internal/domain/entities"
	"github.com/rios0rios0/repograde/internal/infrastructure/repositories/github"
)

func newFakeGitHub(t *testing.T, register func(mux *http.ServeMux)) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	register(mux)
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func newSource(t *testing.T, server *httptest.Server, token string) *github.GitHubRepositorySource {
	t.Helper()
	source, err := github.NewGitHubRepositorySource(server.Client(), entities.GitHubSettings{
		Token:   token,
		BaseURL: server.URL,
	})
	require.NoError(t, err)
	return source
}

func writeJSON(w http.ResponseWriter, body string) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = fmt.Fprint(w, body)
}

func TestGitHubRepositorySource(t *testing.T) {
	t.Parallel()

	repo := entities.Repository{Organization: "octocat", Name: "hello"}

	t.Run("Name", func(t *testing.T) {
		t.Parallel()

		t.Run("should return github", func(t *testing.T) {
			t.Parallel()

			// given
			source, err := github.NewGitHubRepositorySource(nil, entities.GitHubSettings{})
			require.NoError(t, err)

			// when
			name := source.Name()

			// then
			assert.Equal(t, "github", name)
		})
	})

	t.Run("Fetch", func(t *testing.T) {
		t.Parallel()

		t.Run("should map metadata, root listing and commits", func(t *testing.T) {
			t.Parallel()

			// given
			authCh := make(chan string, 1)
			perPageCh := make(chan string, 1)
			server := newFakeGitHub(t, func(mux *http.ServeMux) {
				mux.HandleFunc("/repos/octocat/hello", func(w http.ResponseWriter, r *http.Request) {
					authCh <- r.Header.Get("Authorization")
					writeJSON(w, `{"full_name":"octocat/hello","description":"Hi there","html_url":"https://github.com/octocat/hello"}`)
				})
				mux.HandleFunc("/repos/octocat/hello/contents/", func(w http.ResponseWriter, _ *http.Request) {
					writeJSON(w, `[
						{"name":"README.md","size":5000,"type":"file"},
						{"name":".gitignore","size":12,"type":"file"},
						{"name":"tests","size":0,"type":"dir"}
					]`)
				})
				mux.HandleFunc("/repos/octocat/hello/commits", func(w http.ResponseWriter, r *http.Request) {
					perPageCh <- r.URL.Query().Get("per_page")
					writeJSON(w, `[
						{"sha":"abc","commit":{"message":"feat: hello","author":{"name":"Mona","date":"2024-05-01T10:00:00Z"}}},
						{"sha":"def","commit":{"message":"chore: init","author":{"name":"Mona","date":"2024-04-30T10:00:00Z"}}}
					]`)
				})
			})
			source := newSource(t, server, "ghp_secret")

			// when
			snapshot, err := source.Fetch(context.Background(), repo)

			// then
			require.NoError(t, err)
			assert.Equal(t, "Bearer ghp_secret", <-authCh)
			assert.Equal(t, "10", <-perPageCh)
			assert.Equal(t, entities.RepositoryMetadata{
				FullName:    "octocat/hello",
				Description: "Hi there",
				HTMLURL:     "https://github.com/octocat/hello",
			}, snapshot.Metadata)
			assert.Equal(t, entities.FileListing{
				{Name: "README.md", Size: 5000, Type: "file"},
				{Name: ".gitignore", Size: 12, Type: "file"},
				{Name: "tests", Size: 0, Type: "dir"},
			}, snapshot.Files)
			require.True(t, snapshot.Commits.Available())
			require.Equal(t, 2, snapshot.Commits.Len())
			assert.Equal(t, "abc", snapshot.Commits.Commits()[0].SHA)
			assert.Equal(t, "feat: hello", snapshot.Commits.Commits()[0].Message)
			assert.Equal(t, "Mona", snapshot.Commits.Commits()[0].Author)
			assert.Equal(t, 2024, snapshot.Commits.Commits()[0].Date.Year())
		})

		t.Run("should treat a missing description as absent", func(t *testing.T) {
			t.Parallel()

			// given
			server := newFakeGitHub(t, func(mux *http.ServeMux) {
				mux.HandleFunc("/repos/octocat/hello", func(w http.ResponseWriter, _ *http.Request) {
					writeJSON(w, `{"full_name":"octocat/hello","description":null}`)
				})
				mux.HandleFunc("/repos/octocat/hello/contents/", func(w http.ResponseWriter, _ *http.Request) {
					writeJSON(w, `[]`)
				})
				mux.HandleFunc("/repos/octocat/hello/commits", func(w http.ResponseWriter, _ *http.Request) {
					writeJSON(w, `[]`)
				})
			})
			source := newSource(t, server, "")

			// when
			snapshot, err := source.Fetch(context.Background(), repo)

			// then
			require.NoError(t, err)
			assert.Empty(t, snapshot.Metadata.Description)
			assert.Empty(t, snapshot.Files)
			assert.True(t, snapshot.Commits.Available())
			assert.Equal(t, 0, snapshot.Commits.Len())
		})

		t.Run("should fail when the repository does not exist", func(t *testing.T) {
			t.Parallel()

			// given
			notFound := func(w http.ResponseWriter, _ *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusNotFound)
				_, _ = fmt.Fprint(w, `{"message":"Not Found"}`)
			}
			server := newFakeGitHub(t, func(mux *http.ServeMux) {
				mux.HandleFunc("/repos/octocat/hello", notFound)
				mux.HandleFunc("/repos/octocat/hello/contents/", notFound)
				mux.HandleFunc("/repos/octocat/hello/commits", notFound)
			})
			source := newSource(t, server, "")

			// when
			snapshot, err := source.Fetch(context.Background(), repo)

			// then
			require.Error(t, err)
			assert.Nil(t, snapshot)
			assert.Contains(t, err.Error(), "404")
		})

		t.Run("should fail when only the commit listing fails", func(t *testing.T) {
			t.Parallel()

			// given
			server := newFakeGitHub(t, func(mux *http.ServeMux) {
				mux.HandleFunc("/repos/octocat/hello", func(w http.ResponseWriter, _ *http.Request) {
					writeJSON(w, `{"full_name":"octocat/hello"}`)
				})
				mux.HandleFunc("/repos/octocat/hello/contents/", func(w http.ResponseWriter, _ *http.Request) {
					writeJSON(w, `[]`)
				})
				mux.HandleFunc("/repos/octocat/hello/commits", func(w http.ResponseWriter, _ *http.Request) {
					w.WriteHeader(http.StatusConflict)
					_, _ = fmt.Fprint(w, `{"message":"Git Repository is empty."}`)
				})
			})
			source := newSource(t, server, "")

			// when
			_, err := source.Fetch(context.Background(), repo)

			// then
			require.Error(t, err)
			assert.Contains(t, err.Error(), `failed to list commits of "octocat/hello"`)
		})
	})

	t.Run("should reject a malformed base URL", func(t *testing.T) {
		t.Parallel()

		// given
		settings := entities.GitHubSettings{BaseURL: "://bad"}

		// when
		_, err := github.NewGitHubRepositorySource(nil, settings)

		// then
		require.Error(t, err)
	})
}
