package validation_test

import (
	"strings"
	"testing"

	appErrors "github.com/Chimelu/hafak-surgicals-backend/internal/errors"
	"github.com/Chimelu/hafak-surgicals-backend/internal/models"
	"github.com/Chimelu/hafak-surgicals-backend/internal/validation"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func float64Ptr(f float64) *float64 { return &f }

func TestStruct(t *testing.T) {
	v := validation.New()
	ctx := t.Context()

	t.Run("Success - Trims and lowercases", func(t *testing.T) {
		// Arrange
		req := &models.CreateEquipmentRequest{
			Name:         "  Digital Stethoscope  ",
			Description:  " Advanced digital stethoscope ",
			CategoryID:   uuid.NewString(),
			Availability: "In Stock",
			Condition:    "New",
			Tags:         []string{" Cardiology ", "DIAGNOSTIC"},
		}

		// Act
		err := v.Struct(ctx, req)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "Digital Stethoscope", req.Name)
		assert.Equal(t, "Advanced digital stethoscope", req.Description)
		assert.Equal(t, []string{"cardiology", "diagnostic"}, req.Tags)
	})

	t.Run("Failure - Field messages keyed by json name", func(t *testing.T) {
		// Arrange
		req := &models.CreateEquipmentRequest{
			Name:         strings.Repeat("a", 201),
			CategoryID:   "not-a-uuid",
			Price:        float64Ptr(-1),
			Rating:       float64Ptr(6),
			Availability: "Sold Out",
			Condition:    "New",
		}
		// Act
		err := v.Struct(ctx, req)

		// Assert
		require.Error(t, err)
		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeValidation, appErr.Code)
		assert.Equal(t, "Validation failed", appErr.Message)
		assert.Equal(t, "name cannot exceed 200 characters", appErr.Fields["name"])
		assert.Equal(t, "description is required", appErr.Fields["description"])
		assert.Equal(t, "categoryId must be a valid identifier", appErr.Fields["categoryId"])
		assert.Equal(t, "price cannot be negative", appErr.Fields["price"])
		assert.Equal(t, "rating cannot exceed 5", appErr.Fields["rating"])
		assert.Contains(t, appErr.Fields["availability"], "availability must be one of")
	})

	t.Run("Failure - Specification too long", func(t *testing.T) {
		// Arrange
		req := &models.UpdateEquipmentRequest{
			Specifications: []string{"ok", strings.Repeat("x", 201)},
		}

		// Act
		err := v.Struct(ctx, req)

		// Assert
		require.Error(t, err)
		appErr, _ := appErrors.IsAppError(err)
		assert.Equal(t, "specifications[1] cannot exceed 200 characters", appErr.Fields["specifications[1]"])
	})
}

func TestApplyDefaults(t *testing.T) {
	v := validation.New()

	t.Run("Fills unset fields", func(t *testing.T) {
		req := &models.CreateEquipmentRequest{}

		require.NoError(t, v.ApplyDefaults(req))

		assert.Equal(t, "In Stock", req.Availability)
		assert.Equal(t, "New", req.Condition)
		require.NotNil(t, req.StockQuantity)
		assert.Equal(t, 1, *req.StockQuantity)
		require.NotNil(t, req.IsPublic)
		assert.True(t, *req.IsPublic)
		require.NotNil(t, req.IsFeatured)
		assert.False(t, *req.IsFeatured)
	})

	t.Run("Keeps explicit zero stock", func(t *testing.T) {
		zero := 0
		req := &models.CreateEquipmentRequest{StockQuantity: &zero, Availability: "Out of Stock"}

		require.NoError(t, v.ApplyDefaults(req))

		assert.Equal(t, 0, *req.StockQuantity)
		assert.Equal(t, "Out of Stock", req.Availability)
	})
}

func TestStripHTML(t *testing.T) {
	v := validation.New()

	assert.Equal(t, "Blades & handles", v.StripHTML("<b>Blades</b> & handles"))
	assert.Equal(t, "plain", v.StripHTML("<script>alert(1)</script>plain"))
}
