package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mrdwine/catalog-engine/internal/domain"
)

// Source columns of a storefront catalog export
var (
	variantIDChain = FieldChain{Columns: []string{ColVariantID, "ID"}}
	catalogSKU     = FieldChain{Columns: []string{ColSKU, "SKU"}}
)

// CatalogServiceConfig holds configuration for the catalog service
type CatalogServiceConfig struct {
	CacheTTL           time.Duration
	EnableDebugLogging bool
}

// CatalogService syncs storefront exports into the catalog store and answers
// search-key lookups with an exact-then-prefix strategy.
type CatalogService struct {
	store              domain.CatalogRepository
	cache              domain.CacheRepository
	cacheTTL           time.Duration
	enableDebugLogging bool
}

// NewCatalogService creates a catalog service. cache may be nil.
func NewCatalogService(
	store domain.CatalogRepository,
	cache domain.CacheRepository,
	config CatalogServiceConfig,
) *CatalogService {
	cacheTTL := config.CacheTTL
	if cacheTTL == 0 {
		cacheTTL = time.Hour
	}

	return &CatalogService{
		store:              store,
		cache:              cache,
		cacheTTL:           cacheTTL,
		enableDebugLogging: config.EnableDebugLogging,
	}
}

// SyncBatch upserts every row of a catalog export. Each row is applied on its
// own: rows without a variant id are skipped, rows the store rejects are
// counted as failed, and nothing is rolled back. On cancellation the counts
// so far are returned together with ctx.Err().
func (s *CatalogService) SyncBatch(ctx context.Context, table *domain.Table) (*domain.SyncResult, error) {
	if table == nil {
		return nil, domain.ErrInvalidRequest
	}

	result := &domain.SyncResult{RunID: uuid.NewString()}
	log.Printf("[SYNC] run=%s rows=%d", result.RunID, len(table.Rows))

	for i, row := range table.Rows {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		entry, err := entryFromRow(row)
		if err != nil {
			result.Skipped++
			continue
		}

		if err := s.store.Upsert(ctx, entry); err != nil {
			log.Printf("[SYNC] run=%s row %d (%s) rejected: %v", result.RunID, i+1, entry.SearchKey, err)
			result.Failed++
			continue
		}
		s.invalidate(ctx, entry)
		result.Applied++
	}

	log.Printf("[SYNC] run=%s applied=%d skipped=%d failed=%d",
		result.RunID, result.Applied, result.Skipped, result.Failed)
	return result, nil
}

// Lookup finds the catalog entry for a feed variant. It tries the full
// handle|vintage|size key first and then any size of the same vintage.
func (s *CatalogService) Lookup(ctx context.Context, handle, vintage, size string) (*domain.CatalogEntry, domain.MatchKind, error) {
	key := MakeSearchKey(handle, vintage, size)
	entry, err := s.cachedLookup(ctx, "catalog:exact:"+key, func() (*domain.CatalogEntry, error) {
		return s.store.LookupExact(ctx, key)
	})
	if err == nil {
		return entry, domain.MatchExact, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, domain.MatchNone, err
	}

	prefix := SearchKeyPrefix(handle, vintage)
	entry, err = s.cachedLookup(ctx, "catalog:prefix:"+prefix, func() (*domain.CatalogEntry, error) {
		return s.store.LookupPrefix(ctx, prefix)
	})
	if err != nil {
		return nil, domain.MatchNone, err
	}

	if s.enableDebugLogging {
		log.Printf("[LOOKUP] %q matched by prefix %q -> %s", key, prefix, entry.SearchKey)
	}
	return entry, domain.MatchPrefix, nil
}

// cachedLookup serves positive results from the cache; misses are not cached
func (s *CatalogService) cachedLookup(
	ctx context.Context,
	cacheKey string,
	load func() (*domain.CatalogEntry, error),
) (*domain.CatalogEntry, error) {
	if s.cache != nil {
		if value, err := s.cache.Get(ctx, cacheKey); err == nil {
			if entry, ok := entryFromCache(value); ok {
				return entry, nil
			}
		}
	}

	entry, err := load()
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, cacheKey, entry, s.cacheTTL); err != nil && s.enableDebugLogging {
			log.Printf("[LOOKUP] cache set %q failed: %v", cacheKey, err)
		}
	}
	return entry, nil
}

// invalidate drops cached lookups an upserted entry could change
func (s *CatalogService) invalidate(ctx context.Context, entry *domain.CatalogEntry) {
	if s.cache == nil {
		return
	}
	_ = s.cache.Delete(ctx, "catalog:exact:"+entry.SearchKey)
	_ = s.cache.Delete(ctx, "catalog:prefix:"+SearchKeyPrefix(entry.Handle, entry.Vintage))
}

// entryFromRow maps a storefront export row onto a catalog entry
func entryFromRow(row domain.Row) (*domain.CatalogEntry, error) {
	id := normalizeVariantID(variantIDChain.Resolve(row))
	if id == "" {
		return nil, domain.ErrMissingIdentifier
	}

	handle := cell(row, ColHandle)
	vintage := cell(row, ColOption1Value)
	size := cell(row, ColOption2Value)

	return &domain.CatalogEntry{
		VariantID: id,
		Handle:    handle,
		SKU:       catalogSKU.Resolve(row),
		Title:     cell(row, ColTitle),
		Vendor:    cell(row, ColVendor),
		Vintage:   vintage,
		Size:      size,
		SearchKey: MakeSearchKey(handle, vintage, size),
	}, nil
}

// normalizeVariantID undoes spreadsheet float formatting (4455667788.0)
func normalizeVariantID(id string) string {
	id = strings.TrimSpace(id)
	return strings.TrimSuffix(id, ".0")
}

// entryFromCache decodes a cached lookup. Both cache backends return JSON
// strings; other shapes are re-encoded first.
func entryFromCache(value interface{}) (*domain.CatalogEntry, bool) {
	var raw []byte
	switch v := value.(type) {
	case *domain.CatalogEntry:
		return v, v != nil
	case string:
		raw = []byte(v)
	default:
		b, err := json.Marshal(v)
		if err != nil {
			return nil, false
		}
		raw = b
	}

	var entry domain.CatalogEntry
	if err := json.Unmarshal(raw, &entry); err != nil || entry.SearchKey == "" {
		return nil, false
	}
	return &entry, true
}

