// internal/github/client_test.go
package github

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"sync/atomic"
	"testing"

	"github.com/google/go-github/v62/github"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	custom_errors "repo-showcase/internal/errors"
)

// setupTestClient creates a httptest server and a client pointing to it.
func setupTestClient(t *testing.T, handler http.Handler) *Client {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	client, err := NewClient(Config{BaseURL: server.URL, HTTPClient: server.Client()}, logger)
	require.NoError(t, err)

	return client
}

func TestClient_ListOrgRepositories(t *testing.T) {
	t.Run("requests one sorted page and decodes records", func(t *testing.T) {
		var requestCount int32
		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&requestCount, 1)
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "/orgs/acme/repos", r.URL.Path)
			assert.Equal(t, "100", r.URL.Query().Get("per_page"))
			assert.Equal(t, "full_name", r.URL.Query().Get("sort"))
			assert.Equal(t, "asc", r.URL.Query().Get("direction"))
			assert.Empty(t, r.Header.Get("Authorization"))

			w.WriteHeader(http.StatusOK)
			fmt.Fprintln(w, `[
				{"id": 1, "name": "poc-kafka", "description": "Kafka POC", "html_url": "https://github.com/acme/poc-kafka", "is_template": false, "stargazers_count": 3, "updated_at": "2024-01-01T12:00:00Z"},
				{"id": 2, "name": "template-api", "description": null, "html_url": "https://github.com/acme/template-api", "is_template": true, "stargazers_count": 0, "updated_at": "someday"}
			]`)
		})
		client := setupTestClient(t, handler)

		repos, err := client.ListOrgRepositories(context.Background(), "acme")

		require.NoError(t, err)
		assert.Equal(t, int32(1), atomic.LoadInt32(&requestCount))
		require.Len(t, repos, 2)
		assert.Equal(t, "poc-kafka", repos[0].Name)
		require.NotNil(t, repos[0].Description)
		assert.Equal(t, "Kafka POC", *repos[0].Description)
		assert.Nil(t, repos[1].Description)
		assert.True(t, repos[1].IsTemplate)
		assert.Equal(t, "someday", repos[1].UpdatedAt)
	})

	t.Run("does not retry on server error", func(t *testing.T) {
		var requestCount int32
		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&requestCount, 1)
			w.WriteHeader(http.StatusInternalServerError)
		})
		client := setupTestClient(t, handler)

		_, err := client.ListOrgRepositories(context.Background(), "acme")

		require.Error(t, err)
		var fetchErr *custom_errors.ErrFetch
		require.ErrorAs(t, err, &fetchErr)
		assert.Equal(t, "acme", fetchErr.Org)
		var ghErr *github.ErrorResponse
		require.ErrorAs(t, err, &ghErr)
		assert.Equal(t, http.StatusInternalServerError, ghErr.Response.StatusCode)
		assert.Equal(t, int32(1), atomic.LoadInt32(&requestCount))
	})

	t.Run("reports malformed payloads", func(t *testing.T) {
		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			fmt.Fprintln(w, `{"message": "not a list"}`)
		})
		client := setupTestClient(t, handler)

		_, err := client.ListOrgRepositories(context.Background(), "acme")

		var fetchErr *custom_errors.ErrFetch
		assert.ErrorAs(t, err, &fetchErr)
	})

	t.Run("honours context cancellation", func(t *testing.T) {
		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			fmt.Fprintln(w, `[]`)
		})
		client := setupTestClient(t, handler)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := client.ListOrgRepositories(ctx, "acme")

		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestNewClient_InvalidBaseURL(t *testing.T) {
	_, err := NewClient(Config{BaseURL: "://bad"}, slog.Default())

	assert.Error(t, err)
}
