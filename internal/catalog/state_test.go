// internal/catalog/state_test.go
package catalog

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	custom_errors "repo-showcase/internal/errors"
)

func TestViewState_ToggleCategory(t *testing.T) {
	state := DefaultViewState()

	state = state.ToggleCategory(CategoryPOC)
	assert.Equal(t, CategoryPOC, state.Category)

	state = state.ToggleCategory(CategoryMisc)
	assert.Equal(t, CategoryMisc, state.Category, "selecting another category switches to it")

	state = state.ToggleCategory(CategoryMisc)
	assert.Equal(t, CategoryNone, state.Category, "selecting the active category clears it")
}

func TestViewState_ToggleSortOrder(t *testing.T) {
	state := DefaultViewState().WithSortField(SortByStars)

	state = state.ToggleSortOrder()
	assert.Equal(t, Descending, state.SortOrder)
	assert.Equal(t, SortByStars, state.SortField)

	state = state.ToggleSortOrder()
	assert.Equal(t, Ascending, state.SortOrder)
}

func TestViewState_ValuesRoundTrip(t *testing.T) {
	state := ViewState{
		Search:    "hello world",
		Category:  CategoryHelloWorld,
		SortField: SortByUpdated,
		SortOrder: Descending,
	}

	parsed, err := ParseViewState(state.Values())

	require.NoError(t, err)
	assert.Equal(t, state, parsed)
}

func TestViewState_ValuesOmitDefaults(t *testing.T) {
	assert.Empty(t, DefaultViewState().Values().Encode())
}

func TestParseViewState(t *testing.T) {
	t.Run("empty query yields defaults", func(t *testing.T) {
		state, err := ParseViewState(url.Values{})

		require.NoError(t, err)
		assert.Equal(t, DefaultViewState(), state)
	})

	tests := []struct {
		name  string
		query string
		field string
	}{
		{"unknown category", "category=forks", ParamCategory},
		{"unknown sort field", "sort=size", ParamSort},
		{"unknown order", "order=up", ParamOrder},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values, err := url.ParseQuery(tt.query)
			require.NoError(t, err)

			_, err = ParseViewState(values)

			var optErr *custom_errors.ErrInvalidOption
			require.ErrorAs(t, err, &optErr)
			assert.Equal(t, tt.field, optErr.Field)
		})
	}
}
