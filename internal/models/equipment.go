package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Equipment struct {
	ID             uuid.UUID           `json:"id"`
	Name           string              `json:"name"`
	Description    string              `json:"description"`
	CategoryID     uuid.UUID           `json:"categoryId"`
	Category       *CategorySummary    `json:"category,omitempty"`
	Image          string              `json:"image"`
	ImagePublicID  string              `json:"imagePublicId,omitempty"`
	Price          decimal.NullDecimal `json:"price"`
	Availability   Availability        `json:"availability"`
	Specifications []string            `json:"specifications"`
	Features       []string            `json:"features"`
	Brand          string              `json:"brand"`
	Model          string              `json:"model"`
	Condition      Condition           `json:"condition"`
	Warranty       string              `json:"warranty"`
	StockQuantity  int                 `json:"stockQuantity"`
	MinStockLevel  int                 `json:"minStockLevel"`
	IsPublic       bool                `json:"isPublic"`
	IsFeatured     bool                `json:"isFeatured"`
	Rating         *float64            `json:"rating"`
	ReviewCount    int                 `json:"reviewCount"`
	SortOrder      int                 `json:"sortOrder"`
	Tags           []string            `json:"tags"`
	Status         LifecycleStatus     `json:"status"`
	Slug           string              `json:"slug"`
	CreatedAt      time.Time           `json:"createdAt"`
	UpdatedAt      time.Time           `json:"updatedAt"`
}

// CreateEquipmentRequest is decoded from either a JSON body or multipart form
// values; the json tag doubles as the form field name.
type CreateEquipmentRequest struct {
	Name           string   `json:"name" mod:"trim" validate:"required,max=200"`
	Description    string   `json:"description" mod:"trim,strip_html" validate:"required,max=1000"`
	CategoryID     string   `json:"categoryId" mod:"trim" validate:"required,uuid"`
	Image          string   `json:"image" mod:"trim"`
	Price          *float64 `json:"price" validate:"omitempty,gte=0"`
	Availability   string   `json:"availability" mod:"trim" default:"In Stock" validate:"oneof='In Stock' 'Out of Stock' 'Low Stock'"`
	Specifications []string `json:"specifications" mod:"dive,trim" validate:"dive,max=200"`
	Features       []string `json:"features" mod:"dive,trim" validate:"dive,max=200"`
	Brand          string   `json:"brand" mod:"trim" validate:"max=100"`
	Model          string   `json:"model" mod:"trim" validate:"max=100"`
	Condition      string   `json:"condition" mod:"trim" default:"New" validate:"oneof=New Used Refurbished"`
	Warranty       string   `json:"warranty" mod:"trim" validate:"max=100"`
	StockQuantity  *int     `json:"stockQuantity" default:"1" validate:"omitempty,gte=0"`
	MinStockLevel  *int     `json:"minStockLevel" default:"1" validate:"omitempty,gte=0"`
	IsPublic       *bool    `json:"isPublic" default:"true"`
	IsFeatured     *bool    `json:"isFeatured" default:"false"`
	Rating         *float64 `json:"rating" validate:"omitempty,gte=0,lte=5"`
	ReviewCount    *int     `json:"reviewCount" validate:"omitempty,gte=0"`
	SortOrder      int      `json:"sortOrder"`
	Tags           []string `json:"tags" mod:"dive,trim,lcase"`
}

type UpdateEquipmentRequest struct {
	Name           *string  `json:"name,omitempty" mod:"trim" validate:"omitempty,min=1,max=200"`
	Description    *string  `json:"description,omitempty" mod:"trim,strip_html" validate:"omitempty,min=1,max=1000"`
	CategoryID     *string  `json:"categoryId,omitempty" mod:"trim" validate:"omitempty,uuid"`
	Image          *string  `json:"image,omitempty" mod:"trim"`
	Price          *float64 `json:"price,omitempty" validate:"omitempty,gte=0"`
	Availability   *string  `json:"availability,omitempty" mod:"trim" validate:"omitempty,oneof='In Stock' 'Out of Stock' 'Low Stock'"`
	Specifications []string `json:"specifications,omitempty" mod:"dive,trim" validate:"omitempty,dive,max=200"`
	Features       []string `json:"features,omitempty" mod:"dive,trim" validate:"omitempty,dive,max=200"`
	Brand          *string  `json:"brand,omitempty" mod:"trim" validate:"omitempty,max=100"`
	Model          *string  `json:"model,omitempty" mod:"trim" validate:"omitempty,max=100"`
	Condition      *string  `json:"condition,omitempty" mod:"trim" validate:"omitempty,oneof=New Used Refurbished"`
	Warranty       *string  `json:"warranty,omitempty" mod:"trim" validate:"omitempty,max=100"`
	StockQuantity  *int     `json:"stockQuantity,omitempty" validate:"omitempty,gte=0"`
	MinStockLevel  *int     `json:"minStockLevel,omitempty" validate:"omitempty,gte=0"`
	IsPublic       *bool    `json:"isPublic,omitempty"`
	IsFeatured     *bool    `json:"isFeatured,omitempty"`
	Rating         *float64 `json:"rating,omitempty" validate:"omitempty,gte=0,lte=5"`
	ReviewCount    *int     `json:"reviewCount,omitempty" validate:"omitempty,gte=0"`
	SortOrder      *int     `json:"sortOrder,omitempty"`
	Tags           []string `json:"tags,omitempty" mod:"dive,trim,lcase"`
}

type EquipmentStats struct {
	TotalEquipment int             `json:"totalEquipment"`
	InStock        int             `json:"inStock"`
	OutOfStock     int             `json:"outOfStock"`
	LowStock       int             `json:"lowStock"`
	CategoryStats  []CategoryCount `json:"categoryStats"`
}

// CategoryCount is one row of the per-category breakdown. CategoryName is nil
// when the referenced category no longer exists.
type CategoryCount struct {
	CategoryID   uuid.UUID `json:"categoryId"`
	CategoryName *string   `json:"categoryName"`
	Count        int       `json:"count"`
}

// UploadedImage is what the test-upload endpoint reports back.
type UploadedImage struct {
	URL      string `json:"url"`
	PublicID string `json:"publicId"`
	Width    int    `json:"width,omitempty"`
	Height   int    `json:"height,omitempty"`
	Format   string `json:"format,omitempty"`
	Size     int    `json:"size,omitempty"`
}
