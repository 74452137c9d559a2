// Package mocks holds testify mocks for the repository interfaces.
package mocks

import (
	"context"

	"github.com/Chimelu/hafak-surgicals-backend/internal/models"
	"github.com/Chimelu/hafak-surgicals-backend/internal/query"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type CategoryRepository struct {
	mock.Mock
}

func (m *CategoryRepository) CreateCategory(ctx context.Context, category *models.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *CategoryRepository) GetCategoryByID(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	args := m.Called(ctx, id)
	category, _ := args.Get(0).(*models.Category)
	return category, args.Error(1)
}

func (m *CategoryRepository) GetCategoryByName(ctx context.Context, name string) (*models.Category, error) {
	args := m.Called(ctx, name)
	category, _ := args.Get(0).(*models.Category)
	return category, args.Error(1)
}

func (m *CategoryRepository) ListActiveCategories(ctx context.Context) ([]*models.Category, error) {
	args := m.Called(ctx)
	categories, _ := args.Get(0).([]*models.Category)
	return categories, args.Error(1)
}

func (m *CategoryRepository) UpdateCategory(ctx context.Context, category *models.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *CategoryRepository) RetireCategory(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *CategoryRepository) CategoryStats(ctx context.Context) ([]*models.CategoryWithCount, error) {
	args := m.Called(ctx)
	stats, _ := args.Get(0).([]*models.CategoryWithCount)
	return stats, args.Error(1)
}

func (m *CategoryRepository) PublicCategoryStats(ctx context.Context) ([]*models.CategoryWithCount, error) {
	args := m.Called(ctx)
	stats, _ := args.Get(0).([]*models.CategoryWithCount)
	return stats, args.Error(1)
}

type EquipmentRepository struct {
	mock.Mock
}

func (m *EquipmentRepository) CreateEquipment(ctx context.Context, equipment *models.Equipment) error {
	args := m.Called(ctx, equipment)
	return args.Error(0)
}

func (m *EquipmentRepository) GetEquipmentByID(ctx context.Context, id uuid.UUID) (*models.Equipment, error) {
	args := m.Called(ctx, id)
	equipment, _ := args.Get(0).(*models.Equipment)
	return equipment, args.Error(1)
}

func (m *EquipmentRepository) GetPublicEquipmentByID(ctx context.Context, id uuid.UUID) (*models.Equipment, error) {
	args := m.Called(ctx, id)
	equipment, _ := args.Get(0).(*models.Equipment)
	return equipment, args.Error(1)
}

func (m *EquipmentRepository) UpdateEquipment(ctx context.Context, equipment *models.Equipment) error {
	args := m.Called(ctx, equipment)
	return args.Error(0)
}

func (m *EquipmentRepository) RetireEquipment(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *EquipmentRepository) ListEquipment(ctx context.Context, filter query.EquipmentFilter, page query.Page) ([]*models.Equipment, int, error) {
	args := m.Called(ctx, filter, page)
	items, _ := args.Get(0).([]*models.Equipment)
	return items, args.Int(1), args.Error(2)
}

func (m *EquipmentRepository) FindEquipment(ctx context.Context, filter query.EquipmentFilter, limit int) ([]*models.Equipment, error) {
	args := m.Called(ctx, filter, limit)
	items, _ := args.Get(0).([]*models.Equipment)
	return items, args.Error(1)
}

func (m *EquipmentRepository) CountActiveByCategory(ctx context.Context, categoryID uuid.UUID) (int, error) {
	args := m.Called(ctx, categoryID)
	return args.Int(0), args.Error(1)
}

func (m *EquipmentRepository) EquipmentStats(ctx context.Context) (*models.EquipmentStats, error) {
	args := m.Called(ctx)
	stats, _ := args.Get(0).(*models.EquipmentStats)
	return stats, args.Error(1)
}

type UserRepository struct {
	mock.Mock
}

func (m *UserRepository) CreateUser(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *UserRepository) GetUserByLogin(ctx context.Context, login string) (*models.User, error) {
	args := m.Called(ctx, login)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func (m *UserRepository) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func (m *UserRepository) GetUserById(ctx context.Context, id uuid.UUID) (*models.User, error) {
	args := m.Called(ctx, id)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func (m *UserRepository) ListUsers(ctx context.Context) ([]*models.User, error) {
	args := m.Called(ctx)
	users, _ := args.Get(0).([]*models.User)
	return users, args.Error(1)
}

type ProductRepository struct {
	mock.Mock
}

func (m *ProductRepository) ListProducts(ctx context.Context) ([]*models.Product, error) {
	args := m.Called(ctx)
	products, _ := args.Get(0).([]*models.Product)
	return products, args.Error(1)
}

type MaintenanceRepository struct {
	mock.Mock
}

func (m *MaintenanceRepository) ClearAll(ctx context.Context) (map[string]int64, error) {
	args := m.Called(ctx)
	removed, _ := args.Get(0).(map[string]int64)
	return removed, args.Error(1)
}

func (m *MaintenanceRepository) ClearCatalog(ctx context.Context) (map[string]int64, error) {
	args := m.Called(ctx)
	removed, _ := args.Get(0).(map[string]int64)
	return removed, args.Error(1)
}

func (m *MaintenanceRepository) CountAll(ctx context.Context) (map[string]int, error) {
	args := m.Called(ctx)
	counts, _ := args.Get(0).(map[string]int)
	return counts, args.Error(1)
}

type RateLimitRepository struct {
	mock.Mock
}

func (m *RateLimitRepository) CheckLoginRateLimit(ctx context.Context, login string) (bool, int, int, error) {
	args := m.Called(ctx, login)
	return args.Bool(0), args.Int(1), args.Int(2), args.Error(3)
}
