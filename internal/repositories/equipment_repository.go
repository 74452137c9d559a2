package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/Chimelu/hafak-surgicals-backend/internal/models"
	"github.com/Chimelu/hafak-surgicals-backend/internal/query"
	"github.com/Chimelu/hafak-surgicals-backend/internal/utils"
	"github.com/google/uuid"
	"github.com/lib/pq"
)

type EquipmentRepository interface {
	CreateEquipment(ctx context.Context, equipment *models.Equipment) error
	GetEquipmentByID(ctx context.Context, id uuid.UUID) (*models.Equipment, error)
	GetPublicEquipmentByID(ctx context.Context, id uuid.UUID) (*models.Equipment, error)
	UpdateEquipment(ctx context.Context, equipment *models.Equipment) error
	RetireEquipment(ctx context.Context, id uuid.UUID) error
	ListEquipment(ctx context.Context, filter query.EquipmentFilter, page query.Page) ([]*models.Equipment, int, error)
	FindEquipment(ctx context.Context, filter query.EquipmentFilter, limit int) ([]*models.Equipment, error)
	CountActiveByCategory(ctx context.Context, categoryID uuid.UUID) (int, error)
	EquipmentStats(ctx context.Context) (*models.EquipmentStats, error)
}

type equipmentRepository struct {
	DB *sql.DB
}

func NewEquipmentRepo(db *sql.DB) EquipmentRepository {
	return &equipmentRepository{DB: db}
}

const equipmentColumns = `e.id, e.name, e.description, e.category_id, e.image, e.image_public_id, e.price,
	e.availability, e.specifications, e.features, e.brand, e.model, e.condition, e.warranty,
	e.stock_quantity, e.min_stock_level, e.is_public, e.is_featured, e.rating, e.review_count,
	e.sort_order, e.tags, e.status, e.slug, e.created_at, e.updated_at,
	c.id, c.name, c.description`

const equipmentFrom = `FROM equipment e LEFT JOIN categories c ON c.id = e.category_id`

func scanEquipment(row interface{ Scan(dest ...any) error }) (*models.Equipment, error) {
	equipment := &models.Equipment{}

	var (
		rating       sql.NullFloat64
		categoryID   uuid.NullUUID
		categoryName sql.NullString
		categoryDesc sql.NullString
	)

	err := row.Scan(
		&equipment.ID, &equipment.Name, &equipment.Description, &equipment.CategoryID, &equipment.Image, &equipment.ImagePublicID, &equipment.Price,
		&equipment.Availability, pq.Array(&equipment.Specifications), pq.Array(&equipment.Features), &equipment.Brand, &equipment.Model, &equipment.Condition, &equipment.Warranty,
		&equipment.StockQuantity, &equipment.MinStockLevel, &equipment.IsPublic, &equipment.IsFeatured, &rating, &equipment.ReviewCount,
		&equipment.SortOrder, pq.Array(&equipment.Tags), &equipment.Status, &equipment.Slug, &equipment.CreatedAt, &equipment.UpdatedAt,
		&categoryID, &categoryName, &categoryDesc,
	)
	if err != nil {
		return nil, err
	}

	if rating.Valid {
		equipment.Rating = &rating.Float64
	}

	if categoryID.Valid {
		equipment.Category = &models.CategorySummary{
			ID:          categoryID.UUID,
			Name:        categoryName.String,
			Description: categoryDesc.String,
		}
	}

	return equipment, nil
}

func nullRating(rating *float64) sql.NullFloat64 {
	if rating == nil {
		return sql.NullFloat64{}
	}

	return sql.NullFloat64{Float64: *rating, Valid: true}
}

func (r *equipmentRepository) CreateEquipment(ctx context.Context, equipment *models.Equipment) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `INSERT INTO equipment (name, description, category_id, image, image_public_id, price, availability,
				specifications, features, brand, model, condition, warranty, stock_quantity, min_stock_level,
				is_public, is_featured, rating, review_count, sort_order, tags, status, slug)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23)
			  RETURNING id, created_at, updated_at`

	err := r.DB.QueryRowContext(dbCtx, query,
		equipment.Name, equipment.Description, equipment.CategoryID, equipment.Image, equipment.ImagePublicID, equipment.Price, equipment.Availability,
		textArray(equipment.Specifications), textArray(equipment.Features), equipment.Brand, equipment.Model, equipment.Condition, equipment.Warranty, equipment.StockQuantity, equipment.MinStockLevel,
		equipment.IsPublic, equipment.IsFeatured, nullRating(equipment.Rating), equipment.ReviewCount, equipment.SortOrder, textArray(equipment.Tags), equipment.Status, equipment.Slug,
	).Scan(&equipment.ID, &equipment.CreatedAt, &equipment.UpdatedAt)
	if err != nil {
		return fmt.Errorf("inserting equipment: %w", mapError(err))
	}

	return nil
}

// GetEquipmentByID returns the item whatever its lifecycle status.
func (r *equipmentRepository) GetEquipmentByID(ctx context.Context, id uuid.UUID) (*models.Equipment, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `SELECT ` + equipmentColumns + ` ` + equipmentFrom + ` WHERE e.id = $1`

	equipment, err := scanEquipment(r.DB.QueryRowContext(dbCtx, query, id))
	if err != nil {
		return nil, mapError(err)
	}

	return equipment, nil
}

func (r *equipmentRepository) GetPublicEquipmentByID(ctx context.Context, id uuid.UUID) (*models.Equipment, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `SELECT ` + equipmentColumns + ` ` + equipmentFrom + ` WHERE e.id = $1 AND e.status = $2 AND e.is_public = TRUE`

	equipment, err := scanEquipment(r.DB.QueryRowContext(dbCtx, query, id, models.StatusActive))
	if err != nil {
		return nil, mapError(err)
	}

	return equipment, nil
}

func (r *equipmentRepository) UpdateEquipment(ctx context.Context, equipment *models.Equipment) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		UPDATE equipment SET name = $1, description = $2, category_id = $3, image = $4, image_public_id = $5, price = $6,
			availability = $7, specifications = $8, features = $9, brand = $10, model = $11, condition = $12, warranty = $13,
			stock_quantity = $14, min_stock_level = $15, is_public = $16, is_featured = $17, rating = $18, review_count = $19,
			sort_order = $20, tags = $21, slug = $22, updated_at = NOW()
		WHERE id = $23
		RETURNING updated_at`

	err := r.DB.QueryRowContext(dbCtx, query,
		equipment.Name, equipment.Description, equipment.CategoryID, equipment.Image, equipment.ImagePublicID, equipment.Price,
		equipment.Availability, textArray(equipment.Specifications), textArray(equipment.Features), equipment.Brand, equipment.Model, equipment.Condition, equipment.Warranty,
		equipment.StockQuantity, equipment.MinStockLevel, equipment.IsPublic, equipment.IsFeatured, nullRating(equipment.Rating), equipment.ReviewCount,
		equipment.SortOrder, textArray(equipment.Tags), equipment.Slug, equipment.ID,
	).Scan(&equipment.UpdatedAt)
	if err != nil {
		return mapError(err)
	}

	return nil
}

func (r *equipmentRepository) RetireEquipment(ctx context.Context, id uuid.UUID) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `UPDATE equipment SET status = $1, updated_at = NOW() WHERE id = $2`

	result, err := r.DB.ExecContext(dbCtx, query, models.StatusRetired, id)
	if err != nil {
		return fmt.Errorf("retiring equipment: %w", err)
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

// whereClause renders a filter as SQL. The active constraint is always the
// first predicate.
func whereClause(filter query.EquipmentFilter) (string, []any, int) {
	conditions := []string{"e.status = $1"}
	args := []any{models.StatusActive}
	searchArg := 0

	if filter.PublicOnly {
		conditions = append(conditions, "e.is_public = TRUE")
	}

	if filter.FeaturedOnly {
		conditions = append(conditions, "e.is_featured = TRUE")
	}

	if filter.Search != "" {
		args = append(args, filter.Search)
		searchArg = len(args)
		conditions = append(conditions, fmt.Sprintf("e.search @@ websearch_to_tsquery('english', $%d)", searchArg))
	}

	if filter.CategoryID != nil {
		args = append(args, *filter.CategoryID)
		conditions = append(conditions, fmt.Sprintf("e.category_id = $%d", len(args)))
	}

	if filter.Availability != "" {
		args = append(args, filter.Availability)
		conditions = append(conditions, fmt.Sprintf("e.availability = $%d", len(args)))
	}

	return "WHERE " + strings.Join(conditions, " AND "), args, searchArg
}

func orderClause(sort query.Sort, searchArg int) string {
	switch sort {
	case query.SortDisplayOrder:
		return "ORDER BY e.sort_order ASC, e.created_at DESC, e.id ASC"
	case query.SortRelevance:
		if searchArg > 0 {
			return fmt.Sprintf("ORDER BY ts_rank(e.search, websearch_to_tsquery('english', $%d)) DESC, e.created_at DESC, e.id ASC", searchArg)
		}
	}

	return "ORDER BY e.created_at DESC, e.id ASC"
}

func (r *equipmentRepository) ListEquipment(ctx context.Context, filter query.EquipmentFilter, page query.Page) ([]*models.Equipment, int, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	where, args, searchArg := whereClause(filter)

	var total int

	countQuery := `SELECT COUNT(*) FROM equipment e ` + where

	if err := r.DB.QueryRowContext(dbCtx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("counting equipment: %w", err)
	}

	args = append(args, page.Limit, page.Skip())

	listQuery := fmt.Sprintf(`SELECT %s %s %s %s LIMIT $%d OFFSET $%d`,
		equipmentColumns, equipmentFrom, where, orderClause(filter.Sort, searchArg), len(args)-1, len(args))

	items, err := r.queryEquipment(dbCtx, listQuery, args...)
	if err != nil {
		return nil, 0, err
	}

	return items, total, nil
}

func (r *equipmentRepository) FindEquipment(ctx context.Context, filter query.EquipmentFilter, limit int) ([]*models.Equipment, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	where, args, searchArg := whereClause(filter)
	args = append(args, limit)

	findQuery := fmt.Sprintf(`SELECT %s %s %s %s LIMIT $%d`,
		equipmentColumns, equipmentFrom, where, orderClause(filter.Sort, searchArg), len(args))

	return r.queryEquipment(dbCtx, findQuery, args...)
}

func (r *equipmentRepository) queryEquipment(ctx context.Context, stmt string, args ...any) ([]*models.Equipment, error) {
	rows, err := r.DB.QueryContext(ctx, stmt, args...)
	if err != nil {
		return nil, fmt.Errorf("querying equipment: %w", err)
	}
	defer rows.Close()

	items := []*models.Equipment{}

	for rows.Next() {
		equipment, err := scanEquipment(rows)
		if err != nil {
			return nil, err
		}

		items = append(items, equipment)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

func (r *equipmentRepository) CountActiveByCategory(ctx context.Context, categoryID uuid.UUID) (int, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	var count int

	query := `SELECT COUNT(*) FROM equipment WHERE category_id = $1 AND status = $2`

	if err := r.DB.QueryRowContext(dbCtx, query, categoryID, models.StatusActive).Scan(&count); err != nil {
		return 0, fmt.Errorf("counting category equipment: %w", err)
	}

	return count, nil
}

func (r *equipmentRepository) EquipmentStats(ctx context.Context) (*models.EquipmentStats, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	stats := &models.EquipmentStats{CategoryStats: []models.CategoryCount{}}

	totalsQuery := `
		SELECT COUNT(*),
			COUNT(*) FILTER (WHERE availability = $2),
			COUNT(*) FILTER (WHERE availability = $3),
			COUNT(*) FILTER (WHERE availability = $4)
		FROM equipment
		WHERE status = $1`

	err := r.DB.QueryRowContext(dbCtx, totalsQuery, models.StatusActive, models.AvailabilityInStock, models.AvailabilityOutOfStock, models.AvailabilityLowStock).
		Scan(&stats.TotalEquipment, &stats.InStock, &stats.OutOfStock, &stats.LowStock)
	if err != nil {
		return nil, fmt.Errorf("counting equipment stats: %w", err)
	}

	breakdownQuery := `
		SELECT e.category_id, c.name, COUNT(*)
		FROM equipment e
		LEFT JOIN categories c ON c.id = e.category_id
		WHERE e.status = $1
		GROUP BY e.category_id, c.name
		ORDER BY COUNT(*) DESC`

	rows, err := r.DB.QueryContext(dbCtx, breakdownQuery, models.StatusActive)
	if err != nil {
		return nil, fmt.Errorf("querying category breakdown: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			count models.CategoryCount
			name  sql.NullString
		)

		if err := rows.Scan(&count.CategoryID, &name, &count.Count); err != nil {
			return nil, err
		}

		if name.Valid {
			count.CategoryName = &name.String
		}

		stats.CategoryStats = append(stats.CategoryStats, count)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return stats, nil
}
