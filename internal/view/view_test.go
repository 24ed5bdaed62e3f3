package view

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"repo-showcase/internal/catalog"
	"repo-showcase/internal/model"
)

func TestNewCard(t *testing.T) {
	desc := "A sample repository"
	saoPaulo := time.FixedZone("BRT", -3*60*60)

	t.Run("formats a complete record", func(t *testing.T) {
		card := NewCard(model.Repository{
			ID:              1,
			Name:            "Repo 1",
			Description:     &desc,
			HTMLURL:         "https://github.com/user/repo1",
			IsTemplate:      true,
			StargazersCount: 10,
			UpdatedAt:       "2023-10-10T17:30:00Z",
		}, saoPaulo)

		assert.Equal(t, "Repo 1", card.Name)
		assert.Equal(t, desc, card.Description)
		assert.Equal(t, "10/10/2023 14:30", card.Updated)
		assert.True(t, card.IsTemplate)
		assert.Equal(t, 10, card.Stars)
	})

	t.Run("falls back for missing fields", func(t *testing.T) {
		empty := ""
		for _, d := range []*string{nil, &empty} {
			card := NewCard(model.Repository{Name: "bare", Description: d, UpdatedAt: "invalid-date-string"}, nil)

			assert.Equal(t, NoDescription, card.Description)
			assert.Equal(t, UnknownDate, card.Updated)
		}
	})
}

func TestCountLabel(t *testing.T) {
	assert.Equal(t, "0 / 0 Repositories", CountLabel(0, 0))
	assert.Equal(t, "1 / 3 Repositories", CountLabel(1, 3))
}

func TestFilterControls(t *testing.T) {
	state := catalog.DefaultViewState().ToggleCategory(catalog.CategoryPOC)

	controls := FilterControls(state)

	require.Len(t, controls, 4)
	for _, c := range controls {
		if c.Key == string(catalog.CategoryPOC) {
			assert.True(t, c.Active)
			assert.Equal(t, catalog.CategoryNone, c.Next.Category, "active control clears the filter")
			continue
		}
		assert.False(t, c.Active)
		assert.Equal(t, c.Key, string(c.Next.Category))
	}
}

func TestSortControls(t *testing.T) {
	state := catalog.DefaultViewState().WithSortField(catalog.SortByStars)

	controls := SortControls(state)

	require.Len(t, controls, 4)
	assert.False(t, controls[0].Active)
	assert.True(t, controls[1].Active)
	assert.Equal(t, catalog.SortByUpdated, controls[2].Next.SortField)

	order := controls[3]
	assert.Equal(t, "Toggle Sort Order (ASC)", order.Title)
	assert.Equal(t, catalog.Descending, order.Next.SortOrder)
	assert.Equal(t, catalog.SortByStars, order.Next.SortField)
}
