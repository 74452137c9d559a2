package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Chimelu/hafak-surgicals-backend/internal/api/middleware"
	"github.com/Chimelu/hafak-surgicals-backend/internal/cache"
	appErrors "github.com/Chimelu/hafak-surgicals-backend/internal/errors"
	"github.com/Chimelu/hafak-surgicals-backend/internal/models"
	"github.com/Chimelu/hafak-surgicals-backend/internal/query"
	repository "github.com/Chimelu/hafak-surgicals-backend/internal/repositories"
	"github.com/Chimelu/hafak-surgicals-backend/internal/utils"
	"github.com/google/uuid"
)

type CategoryService interface {
	CreateCategory(ctx context.Context, req *models.CreateCategoryRequest) (*models.Category, error)
	GetCategory(ctx context.Context, id uuid.UUID) (*models.Category, error)
	ListCategories(ctx context.Context) ([]*models.Category, error)
	UpdateCategory(ctx context.Context, id uuid.UUID, req *models.UpdateCategoryRequest) (*models.Category, error)
	DeleteCategory(ctx context.Context, id uuid.UUID) error
	ListCategoryEquipment(ctx context.Context, id uuid.UUID, params query.PageParams) (*models.CategoryEquipmentPage, error)
	CategoryStats(ctx context.Context) ([]*models.CategoryWithCount, error)
}

type categoryService struct {
	repo          repository.CategoryRepository
	equipmentRepo repository.EquipmentRepository
	cache         cache.Cache
	ttl           time.Duration
}

func NewCategoryService(repo repository.CategoryRepository, equipmentRepo repository.EquipmentRepository, c cache.Cache, ttl time.Duration) CategoryService {
	return &categoryService{
		repo:          repo,
		equipmentRepo: equipmentRepo,
		cache:         c,
		ttl:           ttl,
	}
}

func (s *categoryService) CreateCategory(ctx context.Context, req *models.CreateCategoryRequest) (*models.Category, error) {

	category := &models.Category{
		Name:        req.Name,
		Description: req.Description,
		Icon:        req.Icon,
		SortOrder:   req.SortOrder,
		Status:      models.StatusActive,
		Slug:        utils.DeriveSlug(req.Name),
	}

	if err := s.repo.CreateCategory(ctx, category); err != nil {
		return nil, translateStoreError(err, "Category", "create category")
	}

	s.invalidate(ctx)

	return category, nil
}

func (s *categoryService) GetCategory(ctx context.Context, id uuid.UUID) (*models.Category, error) {

	category, err := s.repo.GetCategoryByID(ctx, id)
	if err != nil {
		return nil, translateStoreError(err, "Category", "fetch category")
	}

	if !category.Status.IsActive() {
		return nil, appErrors.NotFoundError("Category not found")
	}

	return category, nil
}

func (s *categoryService) ListCategories(ctx context.Context) ([]*models.Category, error) {

	var cached []*models.Category
	if found, err := s.cache.Get(ctx, cache.CategoryListKey, &cached); err != nil {
		middleware.LoggerFromContext(ctx).Warn("Category cache read failed", slog.String("error", err.Error()))
	} else if found {
		return cached, nil
	}

	categories, err := s.repo.ListActiveCategories(ctx)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to fetch categories").WithError(err)
	}

	if err := s.cache.Set(ctx, cache.CategoryListKey, categories, s.ttl); err != nil {
		middleware.LoggerFromContext(ctx).Warn("Category cache write failed", slog.String("error", err.Error()))
	}

	return categories, nil
}

func (s *categoryService) UpdateCategory(ctx context.Context, id uuid.UUID, req *models.UpdateCategoryRequest) (*models.Category, error) {

	category, err := s.GetCategory(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil && *req.Name != category.Name {
		category.Name = *req.Name
		category.Slug = utils.DeriveSlug(*req.Name)
	}
	if req.Description != nil {
		category.Description = *req.Description
	}
	if req.Icon != nil {
		category.Icon = *req.Icon
	}
	if req.SortOrder != nil {
		category.SortOrder = *req.SortOrder
	}

	if err := s.repo.UpdateCategory(ctx, category); err != nil {
		return nil, translateStoreError(err, "Category", "update category")
	}

	s.invalidate(ctx)

	return category, nil
}

// DeleteCategory retires the category unless active equipment still points at it.
func (s *categoryService) DeleteCategory(ctx context.Context, id uuid.UUID) error {

	if _, err := s.GetCategory(ctx, id); err != nil {
		return err
	}

	count, err := s.equipmentRepo.CountActiveByCategory(ctx, id)
	if err != nil {
		return appErrors.DatabaseError("Failed to delete category").WithError(err)
	}

	if count > 0 {
		return appErrors.ReferenceConflictError(fmt.Sprintf("Cannot delete category. It has %d active equipment items.", count))
	}

	if err := s.repo.RetireCategory(ctx, id); err != nil {
		return translateStoreError(err, "Category", "delete category")
	}

	s.invalidate(ctx)

	return nil
}

func (s *categoryService) ListCategoryEquipment(ctx context.Context, id uuid.UUID, params query.PageParams) (*models.CategoryEquipmentPage, error) {

	category, err := s.GetCategory(ctx, id)
	if err != nil {
		return nil, err
	}

	page := query.NewPage(params.Page, params.Limit, query.DefaultCategoryLimit)

	items, total, err := s.equipmentRepo.ListEquipment(ctx, query.CategoryFilter(id), page)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to fetch equipment").WithError(err)
	}

	return &models.CategoryEquipmentPage{
		Category: category,
		Equipment: models.EquipmentPage{
			Count:      len(items),
			Pagination: page.Pagination(total),
			Items:      items,
		},
	}, nil
}

func (s *categoryService) CategoryStats(ctx context.Context) ([]*models.CategoryWithCount, error) {

	stats, err := s.repo.CategoryStats(ctx)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to fetch category statistics").WithError(err)
	}

	return stats, nil
}

// invalidate drops the cached category listings.
func (s *categoryService) invalidate(ctx context.Context) {
	err := s.cache.Delete(ctx, cache.CategoryListKey, cache.PublicCategoriesKey)
	if err != nil {
		middleware.LoggerFromContext(ctx).Warn("Category cache invalidation failed", slog.String("error", err.Error()))
	}
}
