// internal/loader/loader.go
package loader

import (
	"context"
	"log/slog"
	"regexp"
	"sync"
	"time"

	custom_errors "repo-showcase/internal/errors"
	"repo-showcase/internal/model"
)

// Fetcher retrieves the repository listing of an organization.
type Fetcher interface {
	ListOrgRepositories(ctx context.Context, org string) ([]model.Repository, error)
}

// Status describes where the loader is in its single fetch.
type Status int

const (
	StatusLoading Status = iota
	StatusReady
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusReady:
		return "ready"
	case StatusFailed:
		return "failed"
	default:
		return "loading"
	}
}

// Snapshot is a read-only view of the loaded listing.
type Snapshot struct {
	Status       Status
	Repositories []model.Repository
	Err          error
}

// GitHub logins: alphanumerics and single hyphens, no leading or trailing hyphen.
var orgNamePattern = regexp.MustCompile(`^[A-Za-z0-9](?:[A-Za-z0-9]|-[A-Za-z0-9])*$`)

// Loader fetches an organization's repositories exactly once and keeps the
// result for the lifetime of the process.
type Loader struct {
	fetcher Fetcher
	org     string
	logger  *slog.Logger

	once sync.Once
	mu   sync.RWMutex
	snap Snapshot
}

// NewLoader creates a Loader for org.
func NewLoader(fetcher Fetcher, org string, logger *slog.Logger) (*Loader, error) {
	if !orgNamePattern.MatchString(org) {
		return nil, &custom_errors.ErrInvalidOrgName{Org: org}
	}
	return &Loader{
		fetcher: fetcher,
		org:     org,
		logger:  logger.With("org", org),
		snap:    Snapshot{Status: StatusLoading},
	}, nil
}

// Org returns the organization the loader fetches.
func (l *Loader) Org() string {
	return l.org
}

// Load performs the fetch on first call and records its outcome. Later calls
// do not fetch again and return the first outcome.
func (l *Loader) Load(ctx context.Context) error {
	l.once.Do(func() {
		l.logger.Info("Loading repositories")
		start := time.Now()

		repos, err := l.fetcher.ListOrgRepositories(ctx, l.org)

		l.mu.Lock()
		defer l.mu.Unlock()
		if err != nil {
			l.logger.Error("Failed to load repositories", "error", err)
			l.snap = Snapshot{Status: StatusFailed, Err: err}
			return
		}
		if repos == nil {
			repos = []model.Repository{}
		}
		l.logger.Info("Repositories loaded", "count", len(repos), "elapsed", time.Since(start).String())
		l.snap = Snapshot{Status: StatusReady, Repositories: repos}
	})
	return l.Snapshot().Err
}

// Snapshot returns the current state of the listing. The repositories slice
// is shared and must not be modified.
func (l *Loader) Snapshot() Snapshot {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.snap
}
