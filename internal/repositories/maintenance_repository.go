package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Chimelu/hafak-surgicals-backend/internal/utils"
)

// Tables in the order they are emptied.
var (
	catalogTables = []string{"equipment", "products", "categories", "users"}
	seededTables  = []string{"equipment", "categories"}
)

type MaintenanceRepository interface {
	// ClearAll empties every catalog table in one transaction and reports the
	// rows removed per table.
	ClearAll(ctx context.Context) (map[string]int64, error)
	// ClearCatalog empties equipment and categories, leaving users and the
	// legacy products table alone.
	ClearCatalog(ctx context.Context) (map[string]int64, error)
	CountAll(ctx context.Context) (map[string]int, error)
}

type maintenanceRepository struct {
	DB *sql.DB
}

func NewMaintenanceRepo(db *sql.DB) MaintenanceRepository {
	return &maintenanceRepository{DB: db}
}

func (r *maintenanceRepository) ClearAll(ctx context.Context) (map[string]int64, error) {
	return r.clear(ctx, catalogTables)
}

func (r *maintenanceRepository) ClearCatalog(ctx context.Context) (map[string]int64, error) {
	return r.clear(ctx, seededTables)
}

func (r *maintenanceRepository) clear(ctx context.Context, tables []string) (map[string]int64, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	tx, err := r.DB.BeginTx(dbCtx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	removed := make(map[string]int64, len(tables))

	for _, table := range tables {
		result, err := tx.ExecContext(dbCtx, "DELETE FROM "+table)
		if err != nil {
			return nil, fmt.Errorf("clearing %s: %w", table, err)
		}

		affected, err := result.RowsAffected()
		if err != nil {
			return nil, err
		}

		removed[table] = affected
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing clear: %w", err)
	}

	return removed, nil
}

func (r *maintenanceRepository) CountAll(ctx context.Context) (map[string]int, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	counts := make(map[string]int, len(catalogTables))

	for _, table := range catalogTables {
		var count int

		if err := r.DB.QueryRowContext(dbCtx, "SELECT COUNT(*) FROM "+table).Scan(&count); err != nil {
			return nil, fmt.Errorf("counting %s: %w", table, err)
		}

		counts[table] = count
	}

	return counts, nil
}
