package cache

import (
	"context"
	"time"
)

type Cache interface {
	// Get decodes the cached value into value and reports whether it was found.
	Get(ctx context.Context, key string, value any) (bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
	Close() error
}

func Key(prefix string, id string) string {
	return prefix + ":" + id
}

const (
	PublicEquipmentKeyPrefix = "equipment:public"
	PublicCategoriesKey      = "equipment:public-categories"
	CategoryListKey          = "categories:active"
)
