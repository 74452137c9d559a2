package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/Chimelu/hafak-surgicals-backend/internal/config"
	"github.com/Chimelu/hafak-surgicals-backend/internal/utils"
	"github.com/XSAM/otelsql"
	"go.opentelemetry.io/otel/attribute"

	_ "github.com/lib/pq"
)

type Repository struct {
	DB *sql.DB
}

// New opens the traced connection pool, checks that Postgres is reachable and
// makes sure the catalog tables exist.
func New(ctx context.Context, cfg *config.Config) (*Repository, error) {

	db, err := otelsql.Open("postgres", cfg.Database.GetDSN(),
		otelsql.WithAttributes(attribute.String("db.system", "postgresql")),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)
	db.SetConnMaxIdleTime(cfg.Database.ConnMaxIdleTime)

	pingCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	// Test the connection to make sure DB is reachable
	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	repo := &Repository{DB: db}

	if err := repo.InitSchema(ctx); err != nil {
		db.Close()
		return nil, err
	}

	slog.Info("✅ Successfully connected to Postgres")

	return repo, nil
}

const schema = `
CREATE TABLE IF NOT EXISTS users (
	id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	username VARCHAR(100) UNIQUE NOT NULL,
	email VARCHAR(255) UNIQUE NOT NULL,
	password VARCHAR(255) NOT NULL,
	role VARCHAR(20) NOT NULL DEFAULT 'staff',
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS categories (
	id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	name VARCHAR(100) UNIQUE NOT NULL,
	description VARCHAR(500) NOT NULL DEFAULT '',
	icon VARCHAR(50) NOT NULL DEFAULT '',
	sort_order INTEGER NOT NULL DEFAULT 0,
	status VARCHAR(20) NOT NULL DEFAULT 'active',
	slug VARCHAR(120) UNIQUE NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS equipment (
	id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	name VARCHAR(200) NOT NULL,
	description VARCHAR(1000) NOT NULL,
	category_id UUID NOT NULL,
	image TEXT NOT NULL DEFAULT '',
	image_public_id TEXT NOT NULL DEFAULT '',
	price NUMERIC(12, 2),
	availability VARCHAR(20) NOT NULL DEFAULT 'In Stock',
	specifications TEXT[] NOT NULL DEFAULT '{}',
	features TEXT[] NOT NULL DEFAULT '{}',
	brand VARCHAR(100) NOT NULL DEFAULT '',
	model VARCHAR(100) NOT NULL DEFAULT '',
	condition VARCHAR(20) NOT NULL DEFAULT 'New',
	warranty VARCHAR(100) NOT NULL DEFAULT '',
	stock_quantity INTEGER NOT NULL DEFAULT 1,
	min_stock_level INTEGER NOT NULL DEFAULT 1,
	is_public BOOLEAN NOT NULL DEFAULT TRUE,
	is_featured BOOLEAN NOT NULL DEFAULT FALSE,
	rating DOUBLE PRECISION,
	review_count INTEGER NOT NULL DEFAULT 0,
	sort_order INTEGER NOT NULL DEFAULT 0,
	tags TEXT[] NOT NULL DEFAULT '{}',
	status VARCHAR(20) NOT NULL DEFAULT 'active',
	slug VARCHAR(250) UNIQUE NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	search TSVECTOR GENERATED ALWAYS AS (
		to_tsvector('english'::regconfig,
			coalesce(name, '') || ' ' || coalesce(description, '') || ' ' ||
			coalesce(brand, '') || ' ' || coalesce(model, ''))
	) STORED
);

CREATE INDEX IF NOT EXISTS equipment_search_idx ON equipment USING GIN (search);
CREATE INDEX IF NOT EXISTS equipment_category_idx ON equipment (category_id);
CREATE INDEX IF NOT EXISTS equipment_listing_idx ON equipment (status, is_public, sort_order, created_at DESC);

CREATE TABLE IF NOT EXISTS products (
	id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	name VARCHAR(200) NOT NULL,
	description VARCHAR(1000) NOT NULL,
	category VARCHAR(100) NOT NULL,
	image TEXT NOT NULL DEFAULT '',
	price NUMERIC(12, 2),
	availability VARCHAR(20) NOT NULL DEFAULT 'In Stock',
	specifications TEXT[] NOT NULL DEFAULT '{}',
	status VARCHAR(20) NOT NULL DEFAULT 'active',
	slug VARCHAR(250) UNIQUE NOT NULL,
	sort_order INTEGER NOT NULL DEFAULT 0,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
`

func (p *Repository) InitSchema(ctx context.Context) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	if _, err := p.DB.ExecContext(dbCtx, schema); err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}

	return nil
}

func (p *Repository) Ping(ctx context.Context) error {
	return p.DB.PingContext(ctx)
}

func (p *Repository) Close() error {
	return p.DB.Close()
}
