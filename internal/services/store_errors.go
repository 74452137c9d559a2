package service

import (
	"errors"

	appErrors "github.com/Chimelu/hafak-surgicals-backend/internal/errors"
	repository "github.com/Chimelu/hafak-surgicals-backend/internal/repositories"
)

// translateStoreError maps repository failures onto the response taxonomy.
// entity names the record kind in user-facing messages ("Category",
// "Equipment").
func translateStoreError(err error, entity, action string) error {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return appErrors.NotFoundError(entity + " not found").WithError(err)
	case errors.Is(err, repository.ErrDuplicate):
		return appErrors.DuplicateEntryError(entity+" with this name already exists").
			WithField("name", entity+" name must be unique").
			WithError(err)
	case errors.Is(err, repository.ErrInvalidReference):
		return invalidCategoryError().WithError(err)
	default:
		return appErrors.DatabaseError("Failed to " + action).WithError(err)
	}
}

func invalidCategoryError() *appErrors.AppError {
	return appErrors.ValidationError("Invalid category").WithField("categoryId", "Selected category does not exist")
}
