package query

import (
	"testing"

	"github.com/Chimelu/hafak-surgicals-backend/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminFilter(t *testing.T) {
	t.Run("Success - maps every parameter", func(t *testing.T) {
		id := uuid.New()

		filter := AdminFilter(AdminParams{
			Search:       "  scalpel ",
			CategoryID:   id.String(),
			Availability: "Low Stock",
		})

		assert.False(t, filter.PublicOnly)
		assert.Equal(t, "scalpel", filter.Search)
		require.NotNil(t, filter.CategoryID)
		assert.Equal(t, id, *filter.CategoryID)
		assert.Equal(t, models.AvailabilityLowStock, filter.Availability)
		assert.Equal(t, SortNewest, filter.Sort)
	})

	t.Run("Success - malformed category id is dropped", func(t *testing.T) {
		filter := AdminFilter(AdminParams{CategoryID: "not-a-uuid"})

		assert.Nil(t, filter.CategoryID)
	})
}

func TestPublicFilter(t *testing.T) {
	t.Run("Success - resolved category narrows the listing", func(t *testing.T) {
		category := &models.Category{ID: uuid.New(), Name: "Diagnostic Equipment"}

		filter := PublicFilter(PublicParams{Search: "stethoscope", Category: "Diagnostic Equipment"}, category)

		assert.True(t, filter.PublicOnly)
		assert.Equal(t, "stethoscope", filter.Search)
		require.NotNil(t, filter.CategoryID)
		assert.Equal(t, category.ID, *filter.CategoryID)
		assert.Equal(t, SortDisplayOrder, filter.Sort)
	})

	t.Run("Success - unresolved category is ignored", func(t *testing.T) {
		filter := PublicFilter(PublicParams{Category: "Nonexistent"}, nil)

		assert.True(t, filter.PublicOnly)
		assert.Nil(t, filter.CategoryID)
	})
}

func TestFeaturedFilter(t *testing.T) {
	filter := FeaturedFilter()

	assert.True(t, filter.PublicOnly)
	assert.True(t, filter.FeaturedOnly)
	assert.Equal(t, SortDisplayOrder, filter.Sort)
}

func TestSearchFilter(t *testing.T) {
	t.Run("Success - term is trimmed", func(t *testing.T) {
		filter, ok := SearchFilter("  digital stethoscope ")

		assert.True(t, ok)
		assert.True(t, filter.PublicOnly)
		assert.Equal(t, "digital stethoscope", filter.Search)
		assert.Equal(t, SortRelevance, filter.Sort)
	})

	t.Run("Failure - blank term", func(t *testing.T) {
		_, ok := SearchFilter("   ")

		assert.False(t, ok)
	})
}

func TestCategoryFilter(t *testing.T) {
	id := uuid.New()

	filter := CategoryFilter(id)

	assert.False(t, filter.PublicOnly)
	require.NotNil(t, filter.CategoryID)
	assert.Equal(t, id, *filter.CategoryID)
	assert.Equal(t, SortNewest, filter.Sort)
}
