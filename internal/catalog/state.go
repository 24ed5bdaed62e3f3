// internal/catalog/state.go
package catalog

import (
	"net/url"
	"strings"

	custom_errors "repo-showcase/internal/errors"
)

// Category restricts the listing to one bucket of repositories.
type Category string

const (
	CategoryNone       Category = ""
	CategoryTemplate   Category = "template"
	CategoryPOC        Category = "poc"
	CategoryHelloWorld Category = "hello-world"
	CategoryMisc       Category = "misc"
)

// Categories lists the selectable categories in display order.
var Categories = []Category{CategoryTemplate, CategoryPOC, CategoryHelloWorld, CategoryMisc}

// SortField selects the comparator used to order the listing.
type SortField string

const (
	SortByName    SortField = "name"
	SortByStars   SortField = "stargazers_count"
	SortByUpdated SortField = "updated_at"
)

// SortFields lists the sort fields in display order.
var SortFields = []SortField{SortByName, SortByStars, SortByUpdated}

type SortOrder string

const (
	Ascending  SortOrder = "asc"
	Descending SortOrder = "desc"
)

// Query parameter names used by ViewState.Values and ParseViewState.
const (
	ParamSearch   = "q"
	ParamCategory = "category"
	ParamSort     = "sort"
	ParamOrder    = "order"
)

// ViewState is the user-controlled input of the projection.
type ViewState struct {
	Search    string    `json:"search"`
	Category  Category  `json:"category"`
	SortField SortField `json:"sort"`
	SortOrder SortOrder `json:"order"`
}

// DefaultViewState returns the state of a fresh page view.
func DefaultViewState() ViewState {
	return ViewState{
		Category:  CategoryNone,
		SortField: SortByName,
		SortOrder: Ascending,
	}
}

// WithSearch replaces the free-text query.
func (s ViewState) WithSearch(text string) ViewState {
	s.Search = text
	return s
}

// ToggleCategory activates c, or clears the category when c is already active.
func (s ViewState) ToggleCategory(c Category) ViewState {
	if s.Category == c {
		s.Category = CategoryNone
		return s
	}
	s.Category = c
	return s
}

// WithSortField changes the sort field and keeps the current order.
func (s ViewState) WithSortField(f SortField) ViewState {
	s.SortField = f
	return s
}

// ToggleSortOrder flips between ascending and descending.
func (s ViewState) ToggleSortOrder() ViewState {
	if s.SortOrder == Descending {
		s.SortOrder = Ascending
		return s
	}
	s.SortOrder = Descending
	return s
}

// Values encodes the state as query parameters, leaving out defaults.
func (s ViewState) Values() url.Values {
	v := url.Values{}
	if s.Search != "" {
		v.Set(ParamSearch, s.Search)
	}
	if s.Category != CategoryNone {
		v.Set(ParamCategory, string(s.Category))
	}
	if s.SortField != "" && s.SortField != SortByName {
		v.Set(ParamSort, string(s.SortField))
	}
	if s.SortOrder == Descending {
		v.Set(ParamOrder, string(s.SortOrder))
	}
	return v
}

// ParseViewState decodes query parameters produced by Values. Missing
// parameters take their default; unknown values are rejected.
func ParseViewState(v url.Values) (ViewState, error) {
	state := DefaultViewState()
	state.Search = v.Get(ParamSearch)

	if raw := strings.TrimSpace(v.Get(ParamCategory)); raw != "" {
		c, err := ParseCategory(raw)
		if err != nil {
			return ViewState{}, err
		}
		state.Category = c
	}
	if raw := strings.TrimSpace(v.Get(ParamSort)); raw != "" {
		f, err := ParseSortField(raw)
		if err != nil {
			return ViewState{}, err
		}
		state.SortField = f
	}
	if raw := strings.TrimSpace(v.Get(ParamOrder)); raw != "" {
		o, err := ParseSortOrder(raw)
		if err != nil {
			return ViewState{}, err
		}
		state.SortOrder = o
	}
	return state, nil
}

func ParseCategory(raw string) (Category, error) {
	for _, c := range Categories {
		if string(c) == raw {
			return c, nil
		}
	}
	return CategoryNone, &custom_errors.ErrInvalidOption{Field: ParamCategory, Value: raw, Allowed: stringsOf(Categories)}
}

func ParseSortField(raw string) (SortField, error) {
	for _, f := range SortFields {
		if string(f) == raw {
			return f, nil
		}
	}
	return "", &custom_errors.ErrInvalidOption{Field: ParamSort, Value: raw, Allowed: stringsOf(SortFields)}
}

func ParseSortOrder(raw string) (SortOrder, error) {
	switch SortOrder(raw) {
	case Ascending, Descending:
		return SortOrder(raw), nil
	}
	return "", &custom_errors.ErrInvalidOption{Field: ParamOrder, Value: raw, Allowed: []string{string(Ascending), string(Descending)}}
}

func stringsOf[T ~string](items []T) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = string(item)
	}
	return out
}

// Label is the upper-case form shown on the order toggle.
func (o SortOrder) Label() string {
	if o == Descending {
		return "DESC"
	}
	return "ASC"
}
