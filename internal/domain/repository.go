package domain

import (
	"context"
	"time"
)

// CacheRepository defines the interface for caching operations
type CacheRepository interface {
	Get(ctx context.Context, key string) (interface{}, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}

// CatalogRepository is the persistent search-key → catalog entry store.
// Lookups return ErrNotFound when nothing matches.
type CatalogRepository interface {
	Upsert(ctx context.Context, entry *CatalogEntry) error
	LookupExact(ctx context.Context, searchKey string) (*CatalogEntry, error)
	// LookupPrefix matches any entry whose key starts with prefix, ignoring size.
	// Ties resolve to the lowest variant id.
	LookupPrefix(ctx context.Context, prefix string) (*CatalogEntry, error)
	Close() error
}
