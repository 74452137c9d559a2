package cache

import (
	"context"
	"time"
)

// noopCache is used when no redis server is configured. Every lookup misses.
type noopCache struct{}

func NewNoopCache() Cache {
	return noopCache{}
}

func (noopCache) Get(context.Context, string, any) (bool, error) {
	return false, nil
}

func (noopCache) Set(context.Context, string, any, time.Duration) error {
	return nil
}

func (noopCache) Delete(context.Context, ...string) error {
	return nil
}

func (noopCache) Close() error {
	return nil
}
