package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Chimelu/hafak-surgicals-backend/internal/models"
	"github.com/Chimelu/hafak-surgicals-backend/internal/utils"
	"github.com/google/uuid"
)

type CategoryRepository interface {
	CreateCategory(ctx context.Context, category *models.Category) error
	GetCategoryByID(ctx context.Context, id uuid.UUID) (*models.Category, error)
	GetCategoryByName(ctx context.Context, name string) (*models.Category, error)
	ListActiveCategories(ctx context.Context) ([]*models.Category, error)
	UpdateCategory(ctx context.Context, category *models.Category) error
	RetireCategory(ctx context.Context, id uuid.UUID) error
	CategoryStats(ctx context.Context) ([]*models.CategoryWithCount, error)
	PublicCategoryStats(ctx context.Context) ([]*models.CategoryWithCount, error)
}

type categoryRepository struct {
	DB *sql.DB
}

func NewCategoryRepo(db *sql.DB) CategoryRepository {
	return &categoryRepository{DB: db}
}

const categoryColumns = `id, name, description, icon, sort_order, status, slug, created_at, updated_at`

func scanCategory(row interface{ Scan(dest ...any) error }) (*models.Category, error) {
	category := &models.Category{}

	err := row.Scan(&category.ID, &category.Name, &category.Description, &category.Icon, &category.SortOrder, &category.Status, &category.Slug, &category.CreatedAt, &category.UpdatedAt)
	if err != nil {
		return nil, err
	}

	return category, nil
}

func (r *categoryRepository) CreateCategory(ctx context.Context, category *models.Category) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `INSERT INTO categories (name, description, icon, sort_order, status, slug)
			  VALUES ($1, $2, $3, $4, $5, $6)
			  RETURNING id, created_at, updated_at`

	err := r.DB.QueryRowContext(dbCtx, query, category.Name, category.Description, category.Icon, category.SortOrder, category.Status, category.Slug).Scan(&category.ID, &category.CreatedAt, &category.UpdatedAt)
	if err != nil {
		return fmt.Errorf("inserting category: %w", mapError(err))
	}

	return nil
}

// GetCategoryByID returns the category whatever its lifecycle status.
func (r *categoryRepository) GetCategoryByID(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `SELECT ` + categoryColumns + ` FROM categories WHERE id = $1`

	category, err := scanCategory(r.DB.QueryRowContext(dbCtx, query, id))
	if err != nil {
		return nil, mapError(err)
	}

	return category, nil
}

func (r *categoryRepository) GetCategoryByName(ctx context.Context, name string) (*models.Category, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `SELECT ` + categoryColumns + ` FROM categories WHERE name = $1`

	category, err := scanCategory(r.DB.QueryRowContext(dbCtx, query, name))
	if err != nil {
		return nil, mapError(err)
	}

	return category, nil
}

func (r *categoryRepository) ListActiveCategories(ctx context.Context) ([]*models.Category, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `SELECT ` + categoryColumns + `
			  FROM categories
			  WHERE status = $1
			  ORDER BY sort_order ASC, name ASC, id ASC`

	rows, err := r.DB.QueryContext(dbCtx, query, models.StatusActive)
	if err != nil {
		return nil, fmt.Errorf("querying categories: %w", err)
	}
	defer rows.Close()

	categories := []*models.Category{}

	for rows.Next() {
		category, err := scanCategory(rows)
		if err != nil {
			return nil, err
		}

		categories = append(categories, category)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return categories, nil
}

func (r *categoryRepository) UpdateCategory(ctx context.Context, category *models.Category) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		UPDATE categories SET name = $1, description = $2, icon = $3, sort_order = $4, slug = $5, updated_at = NOW()
		WHERE id = $6
		RETURNING updated_at`

	err := r.DB.QueryRowContext(dbCtx, query, category.Name, category.Description, category.Icon, category.SortOrder, category.Slug, category.ID).Scan(&category.UpdatedAt)
	if err != nil {
		return mapError(err)
	}

	return nil
}

func (r *categoryRepository) RetireCategory(ctx context.Context, id uuid.UUID) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `UPDATE categories SET status = $1, updated_at = NOW() WHERE id = $2`

	result, err := r.DB.ExecContext(dbCtx, query, models.StatusRetired, id)
	if err != nil {
		return fmt.Errorf("retiring category: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if affected == 0 {
		return ErrNotFound
	}

	return nil
}

// CategoryStats counts every equipment row that references an active
// category, whatever the equipment's own status.
func (r *categoryRepository) CategoryStats(ctx context.Context) ([]*models.CategoryWithCount, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT c.id, c.name, c.description, c.icon, COUNT(e.id), c.created_at, c.updated_at
		FROM categories c
		LEFT JOIN equipment e ON e.category_id = c.id
		WHERE c.status = $1
		GROUP BY c.id
		ORDER BY c.sort_order ASC, c.name ASC, c.id ASC`

	rows, err := r.DB.QueryContext(dbCtx, query, models.StatusActive)
	if err != nil {
		return nil, fmt.Errorf("querying category stats: %w", err)
	}
	defer rows.Close()

	stats := []*models.CategoryWithCount{}

	for rows.Next() {
		stat := &models.CategoryWithCount{}
		var createdAt, updatedAt sql.NullTime

		if err := rows.Scan(&stat.ID, &stat.Name, &stat.Description, &stat.Icon, &stat.EquipmentCount, &createdAt, &updatedAt); err != nil {
			return nil, err
		}

		if createdAt.Valid {
			stat.CreatedAt = &createdAt.Time
		}

		if updatedAt.Valid {
			stat.UpdatedAt = &updatedAt.Time
		}

		stats = append(stats, stat)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return stats, nil
}

// PublicCategoryStats lists the categories that have at least one active,
// public equipment item, by name.
func (r *categoryRepository) PublicCategoryStats(ctx context.Context) ([]*models.CategoryWithCount, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT c.id, c.name, c.description, c.icon, COUNT(e.id)
		FROM categories c
		JOIN equipment e ON e.category_id = c.id AND e.status = $1 AND e.is_public = TRUE
		WHERE c.status = $1
		GROUP BY c.id
		HAVING COUNT(e.id) > 0
		ORDER BY c.name ASC, c.id ASC`

	rows, err := r.DB.QueryContext(dbCtx, query, models.StatusActive)
	if err != nil {
		return nil, fmt.Errorf("querying public category stats: %w", err)
	}
	defer rows.Close()

	stats := []*models.CategoryWithCount{}

	for rows.Next() {
		stat := &models.CategoryWithCount{}

		if err := rows.Scan(&stat.ID, &stat.Name, &stat.Description, &stat.Icon, &stat.EquipmentCount); err != nil {
			return nil, err
		}

		stats = append(stats, stat)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return stats, nil
}
