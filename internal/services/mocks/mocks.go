// Package mocks holds testify mocks for the service interfaces.
package mocks

import (
	"context"

	"github.com/Chimelu/hafak-surgicals-backend/internal/media"
	"github.com/Chimelu/hafak-surgicals-backend/internal/models"
	"github.com/Chimelu/hafak-surgicals-backend/internal/query"
	service "github.com/Chimelu/hafak-surgicals-backend/internal/services"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type CategoryService struct {
	mock.Mock
}

func (m *CategoryService) CreateCategory(ctx context.Context, req *models.CreateCategoryRequest) (*models.Category, error) {
	args := m.Called(ctx, req)
	category, _ := args.Get(0).(*models.Category)
	return category, args.Error(1)
}

func (m *CategoryService) GetCategory(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	args := m.Called(ctx, id)
	category, _ := args.Get(0).(*models.Category)
	return category, args.Error(1)
}

func (m *CategoryService) ListCategories(ctx context.Context) ([]*models.Category, error) {
	args := m.Called(ctx)
	categories, _ := args.Get(0).([]*models.Category)
	return categories, args.Error(1)
}

func (m *CategoryService) UpdateCategory(ctx context.Context, id uuid.UUID, req *models.UpdateCategoryRequest) (*models.Category, error) {
	args := m.Called(ctx, id, req)
	category, _ := args.Get(0).(*models.Category)
	return category, args.Error(1)
}

func (m *CategoryService) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *CategoryService) ListCategoryEquipment(ctx context.Context, id uuid.UUID, params query.PageParams) (*models.CategoryEquipmentPage, error) {
	args := m.Called(ctx, id, params)
	page, _ := args.Get(0).(*models.CategoryEquipmentPage)
	return page, args.Error(1)
}

func (m *CategoryService) CategoryStats(ctx context.Context) ([]*models.CategoryWithCount, error) {
	args := m.Called(ctx)
	stats, _ := args.Get(0).([]*models.CategoryWithCount)
	return stats, args.Error(1)
}

type EquipmentService struct {
	mock.Mock
}

func (m *EquipmentService) ListPublicEquipment(ctx context.Context, params query.PublicParams) ([]*models.Equipment, models.Pagination, error) {
	args := m.Called(ctx, params)
	items, _ := args.Get(0).([]*models.Equipment)
	pagination, _ := args.Get(1).(models.Pagination)
	return items, pagination, args.Error(2)
}

func (m *EquipmentService) ListEquipment(ctx context.Context, params query.AdminParams) ([]*models.Equipment, models.Pagination, error) {
	args := m.Called(ctx, params)
	items, _ := args.Get(0).([]*models.Equipment)
	pagination, _ := args.Get(1).(models.Pagination)
	return items, pagination, args.Error(2)
}

func (m *EquipmentService) FeaturedEquipment(ctx context.Context, params query.FeaturedParams) ([]*models.Equipment, error) {
	args := m.Called(ctx, params)
	items, _ := args.Get(0).([]*models.Equipment)
	return items, args.Error(1)
}

func (m *EquipmentService) SearchEquipment(ctx context.Context, params query.SearchParams) ([]*models.Equipment, error) {
	args := m.Called(ctx, params)
	items, _ := args.Get(0).([]*models.Equipment)
	return items, args.Error(1)
}

func (m *EquipmentService) GetPublicEquipment(ctx context.Context, id uuid.UUID) (*models.Equipment, error) {
	args := m.Called(ctx, id)
	equipment, _ := args.Get(0).(*models.Equipment)
	return equipment, args.Error(1)
}

func (m *EquipmentService) GetEquipment(ctx context.Context, id uuid.UUID) (*models.Equipment, error) {
	args := m.Called(ctx, id)
	equipment, _ := args.Get(0).(*models.Equipment)
	return equipment, args.Error(1)
}

func (m *EquipmentService) PublicCategories(ctx context.Context) ([]*models.CategoryWithCount, error) {
	args := m.Called(ctx)
	stats, _ := args.Get(0).([]*models.CategoryWithCount)
	return stats, args.Error(1)
}

func (m *EquipmentService) CreateEquipment(ctx context.Context, req *models.CreateEquipmentRequest, files []*media.File) (*models.Equipment, error) {
	args := m.Called(ctx, req, files)
	equipment, _ := args.Get(0).(*models.Equipment)
	return equipment, args.Error(1)
}

func (m *EquipmentService) UpdateEquipment(ctx context.Context, id uuid.UUID, req *models.UpdateEquipmentRequest, image *media.File) (*models.Equipment, error) {
	args := m.Called(ctx, id, req, image)
	equipment, _ := args.Get(0).(*models.Equipment)
	return equipment, args.Error(1)
}

func (m *EquipmentService) DeleteEquipment(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *EquipmentService) EquipmentStats(ctx context.Context) (*models.EquipmentStats, error) {
	args := m.Called(ctx)
	stats, _ := args.Get(0).(*models.EquipmentStats)
	return stats, args.Error(1)
}

func (m *EquipmentService) TestUpload(ctx context.Context, files []*media.File) (*models.UploadedImage, error) {
	args := m.Called(ctx, files)
	image, _ := args.Get(0).(*models.UploadedImage)
	return image, args.Error(1)
}

type AuthService struct {
	mock.Mock
}

func (m *AuthService) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*models.LoginResponse)
	return resp, args.Error(1)
}

func (m *AuthService) Me(ctx context.Context, id uuid.UUID) (*models.User, error) {
	args := m.Called(ctx, id)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

type MaintenanceService struct {
	mock.Mock
}

func (m *MaintenanceService) Seed(ctx context.Context) (*service.SeedReport, error) {
	args := m.Called(ctx)
	report, _ := args.Get(0).(*service.SeedReport)
	return report, args.Error(1)
}

func (m *MaintenanceService) Clear(ctx context.Context) (map[string]int64, error) {
	args := m.Called(ctx)
	removed, _ := args.Get(0).(map[string]int64)
	return removed, args.Error(1)
}

func (m *MaintenanceService) Check(ctx context.Context) (*service.CheckReport, error) {
	args := m.Called(ctx)
	report, _ := args.Get(0).(*service.CheckReport)
	return report, args.Error(1)
}

func (m *MaintenanceService) CreateOwner(ctx context.Context) (*service.OwnerResult, error) {
	args := m.Called(ctx)
	result, _ := args.Get(0).(*service.OwnerResult)
	return result, args.Error(1)
}
