package service

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Chimelu/hafak-surgicals-backend/internal/config"
	"github.com/Chimelu/hafak-surgicals-backend/internal/models"
	"github.com/Chimelu/hafak-surgicals-backend/internal/query"
	repository "github.com/Chimelu/hafak-surgicals-backend/internal/repositories"
	"github.com/Chimelu/hafak-surgicals-backend/internal/utils"
	"golang.org/x/crypto/bcrypt"
)

// checkListLimit bounds the equipment rows printed by Check.
const checkListLimit = 100

type OwnerResult struct {
	User *models.User
	// Password is only set when the account was created in this run.
	Password string
	Created  bool
}

type SeedReport struct {
	Owner      *OwnerResult
	Removed    map[string]int64
	Categories []*models.Category
	Equipment  []*models.Equipment
}

type CheckReport struct {
	Counts     map[string]int
	Users      []*models.User
	Categories []*models.Category
	Equipment  []*models.Equipment
	Products   []*models.Product
}

type MaintenanceService interface {
	Seed(ctx context.Context) (*SeedReport, error)
	Clear(ctx context.Context) (map[string]int64, error)
	Check(ctx context.Context) (*CheckReport, error)
	CreateOwner(ctx context.Context) (*OwnerResult, error)
}

type MaintenanceRepos struct {
	Users       repository.UserRepository
	Categories  repository.CategoryRepository
	Equipment   repository.EquipmentRepository
	Products    repository.ProductRepository
	Maintenance repository.MaintenanceRepository
}

type maintenanceService struct {
	repos MaintenanceRepos
	owner config.Owner
}

func NewMaintenanceService(repos MaintenanceRepos, owner config.Owner) MaintenanceService {
	return &maintenanceService{repos: repos, owner: owner}
}

// Seed makes sure the owner exists, then replaces all categories and
// equipment with the sample catalog.
func (s *maintenanceService) Seed(ctx context.Context) (*SeedReport, error) {

	owner, err := s.CreateOwner(ctx)
	if err != nil {
		return nil, err
	}

	removed, err := s.repos.Maintenance.ClearCatalog(ctx)
	if err != nil {
		return nil, fmt.Errorf("clearing catalog: %w", err)
	}

	report := &SeedReport{Owner: owner, Removed: removed}
	byName := make(map[string]*models.Category, len(sampleCategories))

	for _, sample := range sampleCategories {
		category := &models.Category{
			Name:        sample.Name,
			Description: sample.Description,
			Icon:        sample.Icon,
			SortOrder:   sample.SortOrder,
			Status:      models.StatusActive,
			Slug:        utils.DeriveSlug(sample.Name),
		}

		if err := s.repos.Categories.CreateCategory(ctx, category); err != nil {
			return nil, fmt.Errorf("creating category %q: %w", sample.Name, err)
		}

		slog.Info("Created category", slog.String("name", category.Name), slog.String("slug", category.Slug))

		byName[category.Name] = category
		report.Categories = append(report.Categories, category)
	}

	for _, sample := range sampleCategories {
		item, ok := sampleEquipment[sample.Name]
		if !ok {
			continue
		}

		category := byName[sample.Name]

		equipment := item
		equipment.CategoryID = category.ID
		equipment.IsPublic = true
		equipment.Tags = []string{}
		equipment.Status = models.StatusActive
		equipment.Slug = utils.DeriveSlug(item.Name)

		if err := s.repos.Equipment.CreateEquipment(ctx, &equipment); err != nil {
			return nil, fmt.Errorf("creating equipment %q: %w", item.Name, err)
		}

		equipment.Category = summarize(category)
		report.Equipment = append(report.Equipment, &equipment)
	}

	return report, nil
}

func (s *maintenanceService) Clear(ctx context.Context) (map[string]int64, error) {

	removed, err := s.repos.Maintenance.ClearAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("clearing database: %w", err)
	}

	return removed, nil
}

func (s *maintenanceService) Check(ctx context.Context) (*CheckReport, error) {

	counts, err := s.repos.Maintenance.CountAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("counting rows: %w", err)
	}

	users, err := s.repos.Users.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}

	categories, err := s.repos.Categories.ListActiveCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing categories: %w", err)
	}

	equipment, err := s.repos.Equipment.FindEquipment(ctx, query.EquipmentFilter{Sort: query.SortNewest}, checkListLimit)
	if err != nil {
		return nil, fmt.Errorf("listing equipment: %w", err)
	}

	products, err := s.repos.Products.ListProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing products: %w", err)
	}

	return &CheckReport{
		Counts:     counts,
		Users:      users,
		Categories: categories,
		Equipment:  equipment,
		Products:   products,
	}, nil
}

// CreateOwner returns the existing owner account untouched, or creates it as
// super_admin. Without a configured password a random one is generated.
func (s *maintenanceService) CreateOwner(ctx context.Context) (*OwnerResult, error) {

	existing, err := s.repos.Users.GetUserByUsername(ctx, s.owner.Username)
	if err == nil {
		return &OwnerResult{User: existing}, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("looking up owner: %w", err)
	}

	password := s.owner.Password
	if password == "" {
		password, err = generatePassword()
		if err != nil {
			return nil, err
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hashing owner password: %w", err)
	}

	user := &models.User{
		Username: s.owner.Username,
		Email:    s.owner.Email,
		Password: string(hash),
		Role:     models.RoleSuperAdmin,
	}

	if err := s.repos.Users.CreateUser(ctx, user); err != nil {
		return nil, fmt.Errorf("creating owner: %w", err)
	}

	return &OwnerResult{User: user, Password: password, Created: true}, nil
}

func generatePassword() (string, error) {
	buf := make([]byte, 12)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generating password: %w", err)
	}

	return base64.RawURLEncoding.EncodeToString(buf), nil
}
