package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/Chimelu/hafak-surgicals-backend/internal/api/middleware"
	"github.com/Chimelu/hafak-surgicals-backend/internal/cache"
	appErrors "github.com/Chimelu/hafak-surgicals-backend/internal/errors"
	"github.com/Chimelu/hafak-surgicals-backend/internal/media"
	"github.com/Chimelu/hafak-surgicals-backend/internal/models"
	"github.com/Chimelu/hafak-surgicals-backend/internal/query"
	repository "github.com/Chimelu/hafak-surgicals-backend/internal/repositories"
	"github.com/Chimelu/hafak-surgicals-backend/internal/utils"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	MessageNotImage     = "Only image files are allowed!"
	MessageTooLarge     = "File too large. Maximum size is 5MB."
	MessageNoImage      = "No image file provided"
	MessageUploadFailed = "Image upload failed"
	MessageSearchEmpty  = "Search query is required"
)

type EquipmentService interface {
	ListPublicEquipment(ctx context.Context, params query.PublicParams) ([]*models.Equipment, models.Pagination, error)
	ListEquipment(ctx context.Context, params query.AdminParams) ([]*models.Equipment, models.Pagination, error)
	FeaturedEquipment(ctx context.Context, params query.FeaturedParams) ([]*models.Equipment, error)
	SearchEquipment(ctx context.Context, params query.SearchParams) ([]*models.Equipment, error)
	GetPublicEquipment(ctx context.Context, id uuid.UUID) (*models.Equipment, error)
	GetEquipment(ctx context.Context, id uuid.UUID) (*models.Equipment, error)
	PublicCategories(ctx context.Context) ([]*models.CategoryWithCount, error)
	CreateEquipment(ctx context.Context, req *models.CreateEquipmentRequest, files []*media.File) (*models.Equipment, error)
	UpdateEquipment(ctx context.Context, id uuid.UUID, req *models.UpdateEquipmentRequest, image *media.File) (*models.Equipment, error)
	DeleteEquipment(ctx context.Context, id uuid.UUID) error
	EquipmentStats(ctx context.Context) (*models.EquipmentStats, error)
	TestUpload(ctx context.Context, files []*media.File) (*models.UploadedImage, error)
}

type equipmentService struct {
	repo         repository.EquipmentRepository
	categoryRepo repository.CategoryRepository
	uploader     media.Uploader
	cache        cache.Cache
	ttl          time.Duration
}

func NewEquipmentService(repo repository.EquipmentRepository, categoryRepo repository.CategoryRepository, uploader media.Uploader, c cache.Cache, ttl time.Duration) EquipmentService {
	return &equipmentService{
		repo:         repo,
		categoryRepo: categoryRepo,
		uploader:     uploader,
		cache:        c,
		ttl:          ttl,
	}
}

// ListPublicEquipment serves the storefront. A category name that resolves to
// nothing does not narrow the listing.
func (s *equipmentService) ListPublicEquipment(ctx context.Context, params query.PublicParams) ([]*models.Equipment, models.Pagination, error) {

	var category *models.Category

	if name := strings.TrimSpace(params.Category); name != "" {
		found, err := s.categoryRepo.GetCategoryByName(ctx, name)
		switch {
		case err == nil:
			category = found
		case errors.Is(err, repository.ErrNotFound):
			middleware.LoggerFromContext(ctx).Debug("Category filter matched nothing, listing unfiltered", slog.String("category", name))
		default:
			return nil, models.Pagination{}, appErrors.DatabaseError("Failed to fetch equipment").WithError(err)
		}
	}

	page := query.NewPage(params.Page, params.Limit, query.DefaultPublicLimit)

	return s.list(ctx, query.PublicFilter(params, category), page)
}

func (s *equipmentService) ListEquipment(ctx context.Context, params query.AdminParams) ([]*models.Equipment, models.Pagination, error) {

	page := query.NewPage(params.Page, params.Limit, query.DefaultAdminLimit)

	return s.list(ctx, query.AdminFilter(params), page)
}

func (s *equipmentService) list(ctx context.Context, filter query.EquipmentFilter, page query.Page) ([]*models.Equipment, models.Pagination, error) {

	items, total, err := s.repo.ListEquipment(ctx, filter, page)
	if err != nil {
		return nil, models.Pagination{}, appErrors.DatabaseError("Failed to fetch equipment").WithError(err)
	}

	return items, page.Pagination(total), nil
}

func (s *equipmentService) FeaturedEquipment(ctx context.Context, params query.FeaturedParams) ([]*models.Equipment, error) {

	limit := query.NewPage(1, params.Limit, query.DefaultFeaturedLimit).Limit

	items, err := s.repo.FindEquipment(ctx, query.FeaturedFilter(), limit)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to fetch featured equipment").WithError(err)
	}

	return items, nil
}

func (s *equipmentService) SearchEquipment(ctx context.Context, params query.SearchParams) ([]*models.Equipment, error) {

	filter, ok := query.SearchFilter(params.Q)
	if !ok {
		return nil, appErrors.BadRequestError(MessageSearchEmpty)
	}

	limit := query.NewPage(1, params.Limit, query.DefaultSearchLimit).Limit

	items, err := s.repo.FindEquipment(ctx, filter, limit)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to search equipment").WithError(err)
	}

	return items, nil
}

func (s *equipmentService) GetPublicEquipment(ctx context.Context, id uuid.UUID) (*models.Equipment, error) {

	key := cache.Key(cache.PublicEquipmentKeyPrefix, id.String())
	logger := middleware.LoggerFromContext(ctx)

	var cached models.Equipment
	if found, err := s.cache.Get(ctx, key, &cached); err != nil {
		logger.Warn("Equipment cache read failed", slog.String("error", err.Error()))
	} else if found {
		err := s.attachCategory(ctx, &cached)
		if err == nil {
			return &cached, nil
		}

		logger.Warn("Category lookup for cached equipment failed", slog.String("error", err.Error()))
	}

	equipment, err := s.repo.GetPublicEquipmentByID(ctx, id)
	if err != nil {
		return nil, translateStoreError(err, "Equipment", "fetch equipment")
	}

	// The category summary is resolved on every read, so it is never cached.
	entry := *equipment
	entry.Category = nil

	if err := s.cache.Set(ctx, key, &entry, s.ttl); err != nil {
		logger.Warn("Equipment cache write failed", slog.String("error", err.Error()))
	}

	return equipment, nil
}

// attachCategory fills in the category summary of a cached item. A missing
// category row leaves the summary empty.
func (s *equipmentService) attachCategory(ctx context.Context, equipment *models.Equipment) error {

	equipment.Category = nil

	if equipment.CategoryID == uuid.Nil {
		return nil
	}

	category, err := s.categoryRepo.GetCategoryByID(ctx, equipment.CategoryID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	equipment.Category = summarize(category)

	return nil
}

func (s *equipmentService) GetEquipment(ctx context.Context, id uuid.UUID) (*models.Equipment, error) {

	equipment, err := s.repo.GetEquipmentByID(ctx, id)
	if err != nil {
		return nil, translateStoreError(err, "Equipment", "fetch equipment")
	}

	if !equipment.Status.IsActive() {
		return nil, appErrors.NotFoundError("Equipment not found")
	}

	return equipment, nil
}

// PublicCategories lists the categories that have at least one public item.
func (s *equipmentService) PublicCategories(ctx context.Context) ([]*models.CategoryWithCount, error) {

	logger := middleware.LoggerFromContext(ctx)

	var cached []*models.CategoryWithCount
	if found, err := s.cache.Get(ctx, cache.PublicCategoriesKey, &cached); err != nil {
		logger.Warn("Category cache read failed", slog.String("error", err.Error()))
	} else if found {
		return cached, nil
	}

	stats, err := s.categoryRepo.PublicCategoryStats(ctx)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to fetch categories").WithError(err)
	}

	if err := s.cache.Set(ctx, cache.PublicCategoriesKey, stats, s.ttl); err != nil {
		logger.Warn("Category cache write failed", slog.String("error", err.Error()))
	}

	return stats, nil
}

// CreateEquipment rejects the whole request when any attached file is not an
// acceptable image. A failed upload of an accepted image is logged and the
// item is created without one.
func (s *equipmentService) CreateEquipment(ctx context.Context, req *models.CreateEquipmentRequest, files []*media.File) (*models.Equipment, error) {

	logger := middleware.LoggerFromContext(ctx)

	if err := media.ValidateAll(files); err != nil {
		return nil, uploadRejection(err)
	}

	category, err := s.resolveCategory(ctx, req.CategoryID)
	if err != nil {
		return nil, err
	}

	equipment := &models.Equipment{
		Name:           req.Name,
		Description:    req.Description,
		CategoryID:     category.ID,
		Price:          toPrice(req.Price),
		Availability:   models.Availability(req.Availability),
		Specifications: nonNil(req.Specifications),
		Features:       nonNil(req.Features),
		Brand:          req.Brand,
		Model:          req.Model,
		Condition:      models.Condition(req.Condition),
		Warranty:       req.Warranty,
		StockQuantity:  intOr(req.StockQuantity, 1),
		MinStockLevel:  intOr(req.MinStockLevel, 1),
		IsPublic:       boolOr(req.IsPublic, true),
		IsFeatured:     boolOr(req.IsFeatured, false),
		Rating:         req.Rating,
		ReviewCount:    intOr(req.ReviewCount, 0),
		SortOrder:      req.SortOrder,
		Tags:           nonNil(req.Tags),
		Status:         models.StatusActive,
		Slug:           utils.DeriveSlug(req.Name),
	}

	if equipment.Availability == "" {
		equipment.Availability = models.AvailabilityInStock
	}
	if equipment.Condition == "" {
		equipment.Condition = models.ConditionNew
	}

	if file := media.FirstImage(files); file != nil {
		image, err := s.uploader.Upload(ctx, file)
		if err != nil {
			logger.Warn("Image upload failed, creating equipment without image",
				slog.String("filename", file.Filename),
				slog.String("error", err.Error()),
			)
		} else {
			equipment.Image = image.URL
			equipment.ImagePublicID = image.PublicID
		}
	} else if strings.HasPrefix(req.Image, "http") {
		equipment.Image = req.Image
	}

	if err := s.repo.CreateEquipment(ctx, equipment); err != nil {
		return nil, translateStoreError(err, "Equipment", "create equipment")
	}

	equipment.Category = summarize(category)

	s.invalidate(ctx, equipment.ID)

	logger.Info("Equipment created", slog.String("equipmentID", equipment.ID.String()), slog.String("slug", equipment.Slug))

	return equipment, nil
}

// UpdateEquipment applies a partial update. Unlike creation, a failed upload
// of the replacement image fails the request.
func (s *equipmentService) UpdateEquipment(ctx context.Context, id uuid.UUID, req *models.UpdateEquipmentRequest, image *media.File) (*models.Equipment, error) {

	equipment, err := s.GetEquipment(ctx, id)
	if err != nil {
		return nil, err
	}

	if image != nil {
		if err := media.Validate(image); err != nil {
			return nil, uploadRejection(err)
		}

		uploaded, err := s.uploader.Upload(ctx, image)
		if err != nil {
			return nil, appErrors.InternalError(MessageUploadFailed).WithError(err)
		}

		equipment.Image = uploaded.URL
		equipment.ImagePublicID = uploaded.PublicID
	} else if req.Image != nil {
		equipment.Image = *req.Image
		equipment.ImagePublicID = ""
	}

	if req.CategoryID != nil {
		category, err := s.resolveCategory(ctx, *req.CategoryID)
		if err != nil {
			return nil, err
		}
		equipment.CategoryID = category.ID
		equipment.Category = summarize(category)
	}

	if req.Name != nil && *req.Name != equipment.Name {
		equipment.Name = *req.Name
		equipment.Slug = utils.DeriveSlug(*req.Name)
	}
	if req.Description != nil {
		equipment.Description = *req.Description
	}
	if req.Price != nil {
		equipment.Price = toPrice(req.Price)
	}
	if req.Availability != nil {
		equipment.Availability = models.Availability(*req.Availability)
	}
	if req.Specifications != nil {
		equipment.Specifications = req.Specifications
	}
	if req.Features != nil {
		equipment.Features = req.Features
	}
	if req.Brand != nil {
		equipment.Brand = *req.Brand
	}
	if req.Model != nil {
		equipment.Model = *req.Model
	}
	if req.Condition != nil {
		equipment.Condition = models.Condition(*req.Condition)
	}
	if req.Warranty != nil {
		equipment.Warranty = *req.Warranty
	}
	if req.StockQuantity != nil {
		equipment.StockQuantity = *req.StockQuantity
	}
	if req.MinStockLevel != nil {
		equipment.MinStockLevel = *req.MinStockLevel
	}
	if req.IsPublic != nil {
		equipment.IsPublic = *req.IsPublic
	}
	if req.IsFeatured != nil {
		equipment.IsFeatured = *req.IsFeatured
	}
	if req.Rating != nil {
		equipment.Rating = req.Rating
	}
	if req.ReviewCount != nil {
		equipment.ReviewCount = *req.ReviewCount
	}
	if req.SortOrder != nil {
		equipment.SortOrder = *req.SortOrder
	}
	if req.Tags != nil {
		equipment.Tags = req.Tags
	}

	if err := s.repo.UpdateEquipment(ctx, equipment); err != nil {
		return nil, translateStoreError(err, "Equipment", "update equipment")
	}

	s.invalidate(ctx, equipment.ID)

	return equipment, nil
}

func (s *equipmentService) DeleteEquipment(ctx context.Context, id uuid.UUID) error {

	if _, err := s.GetEquipment(ctx, id); err != nil {
		return err
	}

	if err := s.repo.RetireEquipment(ctx, id); err != nil {
		return translateStoreError(err, "Equipment", "delete equipment")
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *equipmentService) EquipmentStats(ctx context.Context) (*models.EquipmentStats, error) {

	stats, err := s.repo.EquipmentStats(ctx)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to fetch equipment statistics").WithError(err)
	}

	return stats, nil
}

// TestUpload pushes the first attached image to the media host and reports
// where it landed. Nothing is persisted.
func (s *equipmentService) TestUpload(ctx context.Context, files []*media.File) (*models.UploadedImage, error) {

	file := media.FirstImage(files)
	if file == nil {
		if len(files) == 0 {
			return nil, appErrors.BadRequestError(MessageNoImage)
		}
		file = files[0]
	}

	if err := media.Validate(file); err != nil {
		return nil, uploadRejection(err)
	}

	image, err := s.uploader.Upload(ctx, file)
	if err != nil {
		return nil, appErrors.ThirdPartyError(MessageUploadFailed).WithError(err)
	}

	return image, nil
}

// resolveCategory requires an active category for the given identifier.
func (s *equipmentService) resolveCategory(ctx context.Context, rawID string) (*models.Category, error) {

	id, err := uuid.Parse(strings.TrimSpace(rawID))
	if err != nil {
		return nil, invalidCategoryError().WithError(err)
	}

	category, err := s.categoryRepo.GetCategoryByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, invalidCategoryError().WithError(err)
	}
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to verify category").WithError(err)
	}

	if !category.Status.IsActive() {
		return nil, invalidCategoryError()
	}

	return category, nil
}

func (s *equipmentService) invalidate(ctx context.Context, id uuid.UUID) {
	err := s.cache.Delete(ctx, cache.Key(cache.PublicEquipmentKeyPrefix, id.String()), cache.PublicCategoriesKey)
	if err != nil {
		middleware.LoggerFromContext(ctx).Warn("Equipment cache invalidation failed", slog.String("error", err.Error()))
	}
}

func uploadRejection(err error) error {
	switch {
	case errors.Is(err, media.ErrTooLarge):
		return appErrors.UploadRejectedError(MessageTooLarge).WithError(err)
	case errors.Is(err, media.ErrNotImage):
		return appErrors.UploadRejectedError(MessageNotImage).WithError(err)
	case errors.Is(err, media.ErrNoFile):
		return appErrors.BadRequestError(MessageNoImage).WithError(err)
	default:
		return appErrors.InternalError(MessageUploadFailed).WithError(err)
	}
}

func summarize(category *models.Category) *models.CategorySummary {
	return &models.CategorySummary{
		ID:          category.ID,
		Name:        category.Name,
		Description: category.Description,
	}
}

func toPrice(price *float64) decimal.NullDecimal {
	if price == nil {
		return decimal.NullDecimal{}
	}

	return decimal.NewNullDecimal(decimal.NewFromFloat(*price))
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}

	return values
}

func intOr(value *int, fallback int) int {
	if value == nil {
		return fallback
	}

	return *value
}

func boolOr(value *bool, fallback bool) bool {
	if value == nil {
		return fallback
	}

	return *value
}
