package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/mrdwine/catalog-engine/internal/domain"
)

// requiredUpdateColumns must be present (after header normalization) for the update flow
var requiredUpdateColumns = []string{ColTitle, ColOption1Value, ColPrice, ColInventoryQty}

// CatalogLookup resolves a feed variant to its catalog entry
type CatalogLookup interface {
	Lookup(ctx context.Context, handle, vintage, size string) (*domain.CatalogEntry, domain.MatchKind, error)
}

// Reconciler matches vendor update feeds against the catalog so that price
// and stock changes can be imported onto existing variants.
type Reconciler struct {
	catalog CatalogLookup
}

// NewReconciler creates a reconciler backed by a catalog lookup
func NewReconciler(catalog CatalogLookup) *Reconciler {
	return &Reconciler{catalog: catalog}
}

// Process runs the update flow. Rows without a catalog match are left out of
// the result and reported once each in Warnings.
func (r *Reconciler) Process(ctx context.Context, table *domain.Table) (*domain.UpdateResult, error) {
	if table == nil {
		return nil, domain.ErrInvalidRequest
	}

	NormalizeHeaders(table)

	var missing []string
	for _, col := range requiredUpdateColumns {
		if !table.HasColumn(col) {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, &domain.MissingColumnsError{Columns: missing}
	}

	result := &domain.UpdateResult{
		Columns:  domain.UpdateColumns,
		Rows:     [][]string{},
		Warnings: []string{},
		RunID:    uuid.NewString(),
	}
	log.Printf("[UPDATE] run=%s rows=%d", result.RunID, len(table.Rows))

	for _, row := range table.Rows {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		title := cell(row, ColTitle)
		vintage := cell(row, ColOption1Value)
		size := LookupSizeChain.Resolve(row)

		entry, _, err := r.catalog.Lookup(ctx, Slugify(title), vintage, size)
		if err != nil {
			result.Unmatched++
			if errors.Is(err, domain.ErrNotFound) {
				result.Warnings = append(result.Warnings,
					fmt.Sprintf("Not found in catalog: %s (%s). Skipped.", title, vintage))
			} else {
				log.Printf("[UPDATE] run=%s lookup failed for %q: %v", result.RunID, title, err)
				result.Warnings = append(result.Warnings,
					fmt.Sprintf("Catalog lookup failed: %s (%s). Skipped.", title, vintage))
			}
			continue
		}

		result.Matched++
		result.Rows = append(result.Rows, []string{
			entry.VariantID,
			entry.Handle,
			SKUChain.Resolve(row),
			cell(row, ColPrice),
			cell(row, ColInventoryQty),
			vintage,
			cell(row, ColOption2Value),
		})
	}

	if result.Unmatched > 0 {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("%d products not found in catalog.", result.Unmatched))
	}

	log.Printf("[UPDATE] run=%s matched=%d unmatched=%d", result.RunID, result.Matched, result.Unmatched)
	return result, nil
}
