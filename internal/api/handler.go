// internal/api/handler.go
package api

import (
	"errors"
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"repo-showcase/internal/catalog"
	custom_errors "repo-showcase/internal/errors"
	"repo-showcase/internal/loader"
	"repo-showcase/internal/model"
	"repo-showcase/internal/view"
)

const stillLoadingMessage = "Repositories are still loading."

// SnapshotSource exposes the loaded repository listing.
type SnapshotSource interface {
	Snapshot() loader.Snapshot
}

// Handler is the container for API dependencies.
type Handler struct {
	source   SnapshotSource
	engine   *catalog.Engine
	location *time.Location
	logger   *slog.Logger
	page     *template.Template
}

// NewRouter creates and configures a new chi router with all routes.
func NewRouter(source SnapshotSource, engine *catalog.Engine, location *time.Location, logger *slog.Logger) http.Handler {
	h := &Handler{
		source:   source,
		engine:   engine,
		location: location,
		logger:   logger,
		page:     template.Must(template.New("index").Parse(indexTemplate)),
	}

	r := chi.NewRouter()

	// Middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger) // Chi's default logger
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Get("/health", h.healthCheck)
	r.Get("/", h.index)
	r.Route("/v1", func(r chi.Router) {
		r.Get("/repos", h.listRepositories)
	})

	return r
}

// healthCheck is a simple health endpoint.
func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, map[string]string{
		"status":       "ok",
		"repositories": h.source.Snapshot().Status.String(),
	})
}

type reposResponse struct {
	Total        int                `json:"total"`
	Filtered     int                `json:"filtered"`
	Label        string             `json:"label"`
	State        catalog.ViewState  `json:"state"`
	Repositories []model.Repository `json:"repositories"`
}

// listRepositories returns the projection of the listing for the query's view state.
// GET /v1/repos?q=&category=&sort=&order=
func (h *Handler) listRepositories(w http.ResponseWriter, r *http.Request) {
	state, err := catalog.ParseViewState(r.URL.Query())
	if err != nil {
		respondWithError(w, http.StatusBadRequest, optionErrorMessage(err))
		return
	}

	snap := h.source.Snapshot()
	switch snap.Status {
	case loader.StatusLoading:
		respondWithError(w, http.StatusServiceUnavailable, stillLoadingMessage)
		return
	case loader.StatusFailed:
		respondWithError(w, http.StatusServiceUnavailable, view.FetchFailureMessage)
		return
	}

	projected := h.engine.Project(snap.Repositories, state)
	respondWithJSON(w, http.StatusOK, reposResponse{
		Total:        projected.Total,
		Filtered:     projected.Filtered,
		Label:        view.CountLabel(projected.Filtered, projected.Total),
		State:        state,
		Repositories: projected.Repositories,
	})
}

// index renders the repository cards page.
// GET /?q=&category=&sort=&order=
func (h *Handler) index(w http.ResponseWriter, r *http.Request) {
	state, err := catalog.ParseViewState(r.URL.Query())
	if err != nil {
		http.Error(w, optionErrorMessage(err), http.StatusBadRequest)
		return
	}

	data := newPageData(state)
	status := http.StatusOK

	snap := h.source.Snapshot()
	switch snap.Status {
	case loader.StatusLoading:
		data.Loading = true
	case loader.StatusFailed:
		data.Error = view.FetchFailureMessage
		status = http.StatusServiceUnavailable
	default:
		projected := h.engine.Project(snap.Repositories, state)
		data.Label = view.CountLabel(projected.Filtered, projected.Total)
		data.Cards = view.Cards(projected.Repositories, h.location)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := h.page.Execute(w, data); err != nil {
		h.logger.Error("Failed to render page", "error", err)
	}
}

func optionErrorMessage(err error) string {
	var optErr *custom_errors.ErrInvalidOption
	if errors.As(err, &optErr) {
		return optErr.Error()
	}
	return "Invalid query parameters"
}
