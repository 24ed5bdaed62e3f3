// internal/github/client.go
package github

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/go-github/v62/github"
	"github.com/google/go-querystring/query"

	custom_errors "repo-showcase/internal/errors"
	"repo-showcase/internal/model"
)

const (
	// DefaultBaseURL is the public GitHub REST endpoint.
	DefaultBaseURL = "https://api.github.com/"
	// DefaultTimeout bounds the single listing request.
	DefaultTimeout = 30 * time.Second

	// pageSize is the largest page the listing endpoint serves.
	pageSize = 100
)

// Config configures a Client.
type Config struct {
	BaseURL    string
	Timeout    time.Duration
	HTTPClient *http.Client
}

// Client is a wrapper around the go-github client.
type Client struct {
	gh     *github.Client
	logger *slog.Logger
}

// NewClient creates an unauthenticated Client for the configured endpoint.
func NewClient(cfg Config, logger *slog.Logger) (*Client, error) {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	gh := github.NewClient(httpClient)

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base URL %q: %w", baseURL, err)
	}
	gh.BaseURL = parsed

	return &Client{
		gh:     gh,
		logger: logger,
	}, nil
}

// ListOrgRepositories fetches the first page of an organization's
// repositories, ordered by full name ascending. Records are decoded as-is so
// a malformed updated_at on one repository does not fail the whole listing.
func (c *Client) ListOrgRepositories(ctx context.Context, org string) ([]model.Repository, error) {
	opts := &github.RepositoryListByOrgOptions{
		Sort:        "full_name",
		Direction:   "asc",
		ListOptions: github.ListOptions{PerPage: pageSize},
	}
	params, err := query.Values(opts)
	if err != nil {
		return nil, &custom_errors.ErrFetch{Org: org, Err: err}
	}

	u := fmt.Sprintf("orgs/%s/repos?%s", url.PathEscape(org), params.Encode())
	req, err := c.gh.NewRequest(http.MethodGet, u, nil)
	if err != nil {
		return nil, &custom_errors.ErrFetch{Org: org, Err: err}
	}

	c.logger.Debug("Fetching organization repositories", "org", org, "url", req.URL.String())

	var repos []model.Repository
	if _, err := c.gh.Do(ctx, req, &repos); err != nil {
		return nil, &custom_errors.ErrFetch{Org: org, Err: err}
	}

	c.logger.Info("Fetched organization repositories", "org", org, "count", len(repos))
	return repos, nil
}
