// internal/catalog/engine.go
package catalog

import (
	"cmp"
	"slices"
	"strings"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"repo-showcase/internal/model"
)

const (
	pocPrefix        = "poc-"
	helloWorldPrefix = "hello-world"
)

// View is the projection of the full listing through a ViewState.
type View struct {
	Repositories []model.Repository `json:"repositories"`
	Total        int                `json:"total"`
	Filtered     int                `json:"filtered"`
}

// Engine projects repository listings. It holds no state besides the
// collation locale and is safe for concurrent use.
type Engine struct {
	locale language.Tag
}

// NewEngine returns an Engine ordering names with the collation rules of locale.
func NewEngine(locale language.Tag) *Engine {
	return &Engine{locale: locale}
}

// Project filters all by the search text and category of state, then sorts
// the survivors stably by the selected field and order. The input slice is
// never modified; an empty input yields an empty view.
func (e *Engine) Project(all []model.Repository, state ViewState) View {
	entries := make([]entry, 0, len(all))
	for _, repo := range all {
		if !Matches(repo, state) {
			continue
		}
		ent := entry{repo: repo}
		if state.SortField == SortByUpdated {
			ent.updated, ent.known = repo.UpdatedTime()
		}
		entries = append(entries, ent)
	}

	compare := e.comparator(state.SortField)
	if state.SortOrder == Descending {
		asc := compare
		compare = func(a, b entry) int { return -asc(a, b) }
	}
	slices.SortStableFunc(entries, compare)

	visible := make([]model.Repository, len(entries))
	for i, ent := range entries {
		visible[i] = ent.repo
	}
	return View{
		Repositories: visible,
		Total:        len(all),
		Filtered:     len(visible),
	}
}

type entry struct {
	repo    model.Repository
	updated time.Time
	known   bool
}

func (e *Engine) comparator(field SortField) func(a, b entry) int {
	switch field {
	case SortByStars:
		return func(a, b entry) int {
			return cmp.Compare(a.repo.StargazersCount, b.repo.StargazersCount)
		}
	case SortByUpdated:
		return func(a, b entry) int {
			if !a.known || !b.known {
				return 0
			}
			return a.updated.Compare(b.updated)
		}
	default:
		// Collators keep scratch buffers, so each projection gets its own.
		col := collate.New(e.locale)
		return func(a, b entry) int {
			return col.CompareString(a.repo.Name, b.repo.Name)
		}
	}
}

// Matches reports whether repo passes both the search and the category
// predicate of state.
func Matches(repo model.Repository, state ViewState) bool {
	return matchesSearch(repo, state.Search) && matchesCategory(repo, state.Category)
}

func matchesSearch(repo model.Repository, search string) bool {
	if search == "" {
		return true
	}
	needle := strings.ToLower(search)
	if strings.Contains(strings.ToLower(repo.Name), needle) {
		return true
	}
	return repo.HasDescription() && strings.Contains(strings.ToLower(*repo.Description), needle)
}

func matchesCategory(repo model.Repository, c Category) bool {
	name := strings.ToLower(repo.Name)
	switch c {
	case CategoryTemplate:
		return repo.IsTemplate
	case CategoryPOC:
		return !repo.IsTemplate && strings.HasPrefix(name, pocPrefix)
	case CategoryHelloWorld:
		return !repo.IsTemplate && strings.HasPrefix(name, helloWorldPrefix)
	case CategoryMisc:
		return !repo.IsTemplate &&
			!strings.HasPrefix(name, pocPrefix) &&
			!strings.HasPrefix(name, helloWorldPrefix)
	default:
		return true
	}
}
