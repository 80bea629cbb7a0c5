package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/mrdwine/catalog-engine/internal/domain"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// Supported database/sql drivers
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

const schema = `CREATE TABLE IF NOT EXISTS products (
	variant_id TEXT,
	handle TEXT,
	sku TEXT,
	title TEXT,
	vendor TEXT,
	option1_value TEXT,
	option2_value TEXT,
	search_key TEXT PRIMARY KEY
)`

const upsertQuery = `INSERT INTO products (variant_id, handle, sku, title, vendor, option1_value, option2_value, search_key)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(search_key) DO UPDATE SET
	variant_id = excluded.variant_id,
	handle = excluded.handle,
	sku = excluded.sku,
	title = excluded.title,
	vendor = excluded.vendor,
	option1_value = excluded.option1_value,
	option2_value = excluded.option2_value`

const selectColumns = `SELECT variant_id, handle, sku, title, vendor, option1_value, option2_value, search_key FROM products`

// SQLStore is the catalog store on top of database/sql. SQLite is the
// default; Postgres takes the same schema and queries.
type SQLStore struct {
	db     *sql.DB
	driver string
}

// Open connects to the catalog database and creates the schema if needed
func Open(ctx context.Context, driver, dsn string) (*SQLStore, error) {
	if driver != DriverSQLite && driver != DriverPostgres {
		return nil, fmt.Errorf("unsupported store driver %q", driver)
	}
	if dsn == "" {
		return nil, fmt.Errorf("store dsn is required")
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", driver, err)
	}
	if driver == DriverSQLite {
		// single writer; also keeps ":memory:" databases on one connection
		db.SetMaxOpenConns(1)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping %s: %w", driver, err)
	}

	s := &SQLStore{db: db, driver: driver}
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	log.Printf("[STORE] %s catalog ready", driver)
	return s, nil
}

// Upsert inserts an entry or overwrites every non-key field of the entry
// already stored under the same search key.
func (s *SQLStore) Upsert(ctx context.Context, e *domain.CatalogEntry) error {
	if e == nil || e.SearchKey == "" {
		return domain.ErrInvalidRequest
	}
	_, err := s.db.ExecContext(ctx, s.rebind(upsertQuery),
		e.VariantID, e.Handle, e.SKU, e.Title, e.Vendor, e.Vintage, e.Size, e.SearchKey)
	if err != nil {
		return fmt.Errorf("%w: upsert %q: %v", domain.ErrStoreFailure, e.SearchKey, err)
	}
	return nil
}

// LookupExact returns the entry stored under searchKey
func (s *SQLStore) LookupExact(ctx context.Context, searchKey string) (*domain.CatalogEntry, error) {
	row := s.db.QueryRowContext(ctx, s.rebind(selectColumns+` WHERE search_key = ?`), searchKey)
	return scanEntry(row)
}

// LookupPrefix returns the entry with the lowest variant id among those whose
// search key starts with prefix.
func (s *SQLStore) LookupPrefix(ctx context.Context, prefix string) (*domain.CatalogEntry, error) {
	q := selectColumns + ` WHERE search_key LIKE ? ESCAPE '\' ORDER BY variant_id, search_key LIMIT 1`
	row := s.db.QueryRowContext(ctx, s.rebind(q), escapeLike(prefix)+"%")
	return scanEntry(row)
}

// Count returns the number of stored entries
func (s *SQLStore) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM products`).Scan(&n); err != nil {
		return 0, fmt.Errorf("%w: count: %v", domain.ErrStoreFailure, err)
	}
	return n, nil
}

// Close closes the underlying database
func (s *SQLStore) Close() error {
	return s.db.Close()
}

func scanEntry(row *sql.Row) (*domain.CatalogEntry, error) {
	var e domain.CatalogEntry
	var variantID, handle, sku, title, vendor, vintage, size sql.NullString
	err := row.Scan(&variantID, &handle, &sku, &title, &vendor, &vintage, &size, &e.SearchKey)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrStoreFailure, err)
	}
	e.VariantID = variantID.String
	e.Handle = handle.String
	e.SKU = sku.String
	e.Title = title.String
	e.Vendor = vendor.String
	e.Vintage = vintage.String
	e.Size = size.String
	return &e, nil
}

// rebind rewrites ? placeholders as $1, $2, ... for postgres
func (s *SQLStore) rebind(q string) string {
	if s.driver != DriverPostgres {
		return q
	}
	var b strings.Builder
	n := 0
	for _, r := range q {
		if r == '?' {
			n++
			b.WriteString("$" + strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
