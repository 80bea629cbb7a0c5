package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotFound is returned when no catalog entry matches a search key
	ErrNotFound = errors.New("catalog entry not found")

	// ErrMissingColumns is returned when a feed lacks columns required by a flow
	ErrMissingColumns = errors.New("missing required columns")

	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrMissingIdentifier is returned when a catalog row has no variant id
	ErrMissingIdentifier = errors.New("row has no variant identifier")

	// ErrUnsupportedFormat is returned for feed files that are neither CSV nor XLSX
	ErrUnsupportedFormat = errors.New("unsupported feed format")

	// ErrCacheMiss is returned when data is not found in cache
	ErrCacheMiss = errors.New("cache miss")

	// ErrStoreFailure is returned when the catalog store rejects an operation
	ErrStoreFailure = errors.New("catalog store failure")
)

// MissingColumnsError lists the required columns a feed did not provide.
type MissingColumnsError struct {
	Columns []string
}

func (e *MissingColumnsError) Error() string {
	return fmt.Sprintf("missing required columns: %s", strings.Join(e.Columns, ", "))
}

func (e *MissingColumnsError) Unwrap() error {
	return ErrMissingColumns
}
