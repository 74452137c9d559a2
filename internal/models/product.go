package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is the legacy catalog entry with a free-text category. No route
// serves it; the maintenance tooling still seeds, counts and clears it.
type Product struct {
	ID             uuid.UUID           `json:"id"`
	Name           string              `json:"name"`
	Description    string              `json:"description"`
	Category       string              `json:"category"`
	Image          string              `json:"image"`
	Price          decimal.NullDecimal `json:"price"`
	Availability   Availability        `json:"availability"`
	Specifications []string            `json:"specifications"`
	Status         LifecycleStatus     `json:"status"`
	Slug           string              `json:"slug"`
	SortOrder      int                 `json:"sortOrder"`
	CreatedAt      time.Time           `json:"createdAt"`
	UpdatedAt      time.Time           `json:"updatedAt"`
}
