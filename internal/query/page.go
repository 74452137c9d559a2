package query

import (
	"math"

	"github.com/Chimelu/hafak-surgicals-backend/internal/models"
)

const (
	DefaultAdminLimit    = 10
	DefaultPublicLimit   = 12
	DefaultSearchLimit   = 20
	DefaultFeaturedLimit = 6
	DefaultCategoryLimit = 10
)

// Page is a resolved page request. Page and Limit are always >= 1.
type Page struct {
	Page  int
	Limit int
}

// NewPage clamps page to 1 and replaces a missing or non-positive limit with
// defaultLimit. Page is capped so that Skip never overflows.
func NewPage(page, limit, defaultLimit int) Page {
	if page < 1 {
		page = 1
	}

	if limit < 1 {
		limit = defaultLimit
	}

	if limit > 0 && page > math.MaxInt/limit {
		page = math.MaxInt / limit
	}

	return Page{Page: page, Limit: limit}
}

func (p Page) Skip() int {
	return (p.Page - 1) * p.Limit
}

// Pagination builds the response metadata for total matching rows.
func (p Page) Pagination(total int) models.Pagination {
	return models.Pagination{
		Page:  p.Page,
		Limit: p.Limit,
		Total: total,
		Pages: TotalPages(total, p.Limit),
	}
}

// TotalPages is ceil(total/limit).
func TotalPages(total, limit int) int {
	if limit < 1 || total <= 0 {
		return 0
	}

	return (total-1)/limit + 1
}
