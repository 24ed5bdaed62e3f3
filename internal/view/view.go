// Package view holds the presentation logic shared by the web page and the
// terminal browser: card formatting, control descriptors and static content.
package view

import (
	"fmt"
	"time"

	"repo-showcase/internal/catalog"
	"repo-showcase/internal/model"
)

const (
	Title               = "GitHub Repositories"
	LoadingMessage      = "Loading..."
	FetchFailureMessage = "Failed to load repositories."
	NoDescription       = "No description provided."
	UnknownDate         = "Unknown date"
	EmptyResults        = "No repositories match the current filters."

	dateLayout = "02/01/2006 15:04"
)

// Card is the display form of one repository.
type Card struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Stars       int    `json:"stargazers_count"`
	IsTemplate  bool   `json:"is_template"`
	Description string `json:"description"`
	Updated     string `json:"updated"`
	URL         string `json:"html_url"`
}

// NewCard formats repo for display, rendering its update time in loc.
func NewCard(repo model.Repository, loc *time.Location) Card {
	desc := NoDescription
	if repo.HasDescription() {
		desc = *repo.Description
	}
	return Card{
		ID:          repo.ID,
		Name:        repo.Name,
		Stars:       repo.StargazersCount,
		IsTemplate:  repo.IsTemplate,
		Description: desc,
		Updated:     FormatUpdatedAt(repo, loc),
		URL:         repo.HTMLURL,
	}
}

// Cards formats every repository of a projection.
func Cards(repos []model.Repository, loc *time.Location) []Card {
	cards := make([]Card, len(repos))
	for i, repo := range repos {
		cards[i] = NewCard(repo, loc)
	}
	return cards
}

func FormatUpdatedAt(repo model.Repository, loc *time.Location) string {
	t, ok := repo.UpdatedTime()
	if !ok {
		return UnknownDate
	}
	if loc == nil {
		loc = time.UTC
	}
	return t.In(loc).Format(dateLayout)
}

// CountLabel renders the "filtered / total" badge.
func CountLabel(filtered, total int) string {
	return fmt.Sprintf("%d / %d Repositories", filtered, total)
}

// Control is one filter or sort toggle. Next is the state selecting the
// control leads to.
type Control struct {
	Key    string
	Title  string
	Active bool
	Next   catalog.ViewState
}

var categoryTitles = map[catalog.Category]string{
	catalog.CategoryTemplate:   "Templates",
	catalog.CategoryPOC:        "POC",
	catalog.CategoryHelloWorld: "Hello World",
	catalog.CategoryMisc:       "Miscellaneous",
}

var sortTitles = map[catalog.SortField]string{
	catalog.SortByName:    "Sort by Name",
	catalog.SortByStars:   "Sort by Stargazers",
	catalog.SortByUpdated: "Sort by Recently Updated",
}

// FilterControls returns the category toggles in display order.
func FilterControls(state catalog.ViewState) []Control {
	controls := make([]Control, 0, len(catalog.Categories))
	for _, c := range catalog.Categories {
		controls = append(controls, Control{
			Key:    string(c),
			Title:  categoryTitles[c],
			Active: state.Category == c,
			Next:   state.ToggleCategory(c),
		})
	}
	return controls
}

// SortControls returns the sort field selectors followed by the order toggle.
func SortControls(state catalog.ViewState) []Control {
	controls := make([]Control, 0, len(catalog.SortFields)+1)
	for _, f := range catalog.SortFields {
		controls = append(controls, Control{
			Key:    string(f),
			Title:  sortTitles[f],
			Active: state.SortField == f,
			Next:   state.WithSortField(f),
		})
	}
	controls = append(controls, OrderControl(state))
	return controls
}

// OrderControl toggles between ascending and descending.
func OrderControl(state catalog.ViewState) Control {
	order := state.SortOrder
	if order == "" {
		order = catalog.Ascending
	}
	return Control{
		Key:    "order",
		Title:  fmt.Sprintf("Toggle Sort Order (%s)", order.Label()),
		Active: order == catalog.Ascending,
		Next:   state.ToggleSortOrder(),
	}
}
