package query

import (
	"strings"

	"github.com/Chimelu/hafak-surgicals-backend/internal/models"
	"github.com/google/uuid"
)

// Sort names an ordering the equipment store knows how to apply.
type Sort int

const (
	// SortNewest orders by createdAt descending.
	SortNewest Sort = iota
	// SortDisplayOrder orders by sortOrder ascending, newest first on ties.
	SortDisplayOrder
	// SortRelevance orders by full-text rank descending.
	SortRelevance
)

// EquipmentFilter is the storage-independent description of an equipment
// listing. The active constraint is not optional and therefore not a field.
type EquipmentFilter struct {
	PublicOnly   bool
	FeaturedOnly bool
	Search       string
	CategoryID   *uuid.UUID
	Availability models.Availability
	Sort         Sort
}

// PublicParams are the storefront listing parameters.
type PublicParams struct {
	Page     int    `schema:"page"`
	Limit    int    `schema:"limit"`
	Search   string `schema:"search"`
	Category string `schema:"category"`
}

// AdminParams are the admin-panel listing parameters.
type AdminParams struct {
	Page         int    `schema:"page"`
	Limit        int    `schema:"limit"`
	Search       string `schema:"search"`
	CategoryID   string `schema:"categoryId"`
	Availability string `schema:"availability"`
}

type SearchParams struct {
	Q     string `schema:"q"`
	Limit int    `schema:"limit"`
}

type FeaturedParams struct {
	Limit int `schema:"limit"`
}

type PageParams struct {
	Page  int `schema:"page"`
	Limit int `schema:"limit"`
}

// AdminFilter maps admin parameters directly; a categoryId that does not
// parse is dropped rather than rejected.
func AdminFilter(params AdminParams) EquipmentFilter {
	filter := EquipmentFilter{
		Search:       strings.TrimSpace(params.Search),
		Availability: models.Availability(strings.TrimSpace(params.Availability)),
		Sort:         SortNewest,
	}

	if id, err := uuid.Parse(strings.TrimSpace(params.CategoryID)); err == nil {
		filter.CategoryID = &id
	}

	return filter
}

// PublicFilter restricts to public equipment. category is the already
// resolved category, or nil when the requested name matched nothing, in which
// case the listing is not narrowed by category.
func PublicFilter(params PublicParams, category *models.Category) EquipmentFilter {
	filter := EquipmentFilter{
		PublicOnly: true,
		Search:     strings.TrimSpace(params.Search),
		Sort:       SortDisplayOrder,
	}

	if category != nil {
		id := category.ID
		filter.CategoryID = &id
	}

	return filter
}

func FeaturedFilter() EquipmentFilter {
	return EquipmentFilter{
		PublicOnly:   true,
		FeaturedOnly: true,
		Sort:         SortDisplayOrder,
	}
}

// SearchFilter returns false when the term is blank.
func SearchFilter(term string) (EquipmentFilter, bool) {
	term = strings.TrimSpace(term)
	if term == "" {
		return EquipmentFilter{}, false
	}

	return EquipmentFilter{
		PublicOnly: true,
		Search:     term,
		Sort:       SortRelevance,
	}, true
}

// CategoryFilter lists active equipment of one category, newest first.
func CategoryFilter(categoryID uuid.UUID) EquipmentFilter {
	return EquipmentFilter{
		CategoryID: &categoryID,
		Sort:       SortNewest,
	}
}
