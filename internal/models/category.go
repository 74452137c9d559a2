package models

import (
	"time"

	"github.com/google/uuid"
)

type Category struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Icon        string          `json:"icon"`
	SortOrder   int             `json:"sortOrder"`
	Status      LifecycleStatus `json:"status"`
	Slug        string          `json:"slug"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// CategorySummary is the slice of a category embedded in equipment payloads.
type CategorySummary struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
}

type CreateCategoryRequest struct {
	Name        string `json:"name" mod:"trim" validate:"required,max=100"`
	Description string `json:"description" mod:"trim,strip_html" validate:"max=500"`
	Icon        string `json:"icon" mod:"trim" validate:"max=50"`
	SortOrder   int    `json:"sortOrder"`
}

type UpdateCategoryRequest struct {
	Name        *string `json:"name,omitempty" mod:"trim" validate:"omitempty,min=1,max=100"`
	Description *string `json:"description,omitempty" mod:"trim,strip_html" validate:"omitempty,max=500"`
	Icon        *string `json:"icon,omitempty" mod:"trim" validate:"omitempty,max=50"`
	SortOrder   *int    `json:"sortOrder,omitempty"`
}

// CategoryWithCount is a category row joined with the number of equipment
// items that reference it.
type CategoryWithCount struct {
	ID             uuid.UUID  `json:"id"`
	Name           string     `json:"name"`
	Description    string     `json:"description"`
	Icon           string     `json:"icon"`
	EquipmentCount int        `json:"equipmentCount"`
	CreatedAt      *time.Time `json:"createdAt,omitempty"`
	UpdatedAt      *time.Time `json:"updatedAt,omitempty"`
}

type CategoryEquipmentPage struct {
	Category  *Category     `json:"category"`
	Equipment EquipmentPage `json:"equipment"`
}

type EquipmentPage struct {
	Count      int          `json:"count"`
	Pagination Pagination   `json:"pagination"`
	Items      []*Equipment `json:"items"`
}
