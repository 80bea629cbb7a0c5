package usecase

import "github.com/mrdwine/catalog-engine/internal/domain"

// Metafield columns exported by the storefront for bottle format and size
const (
	ColSizeMetafield         = "Size (product.metafields.pundit.format_size)"
	ColPresentationMetafield = "Presentation (product.metafields.pundit.format)"
)

// DefaultSize is used when no size column yields a value
const DefaultSize = "750ml"

// FieldChain resolves one logical field from several candidate columns,
// tried in order; the first non-missing value wins.
type FieldChain struct {
	Columns  []string
	Fallback string
}

// Resolve returns the first usable value of the chain for a row
func (f FieldChain) Resolve(row domain.Row) string {
	for _, col := range f.Columns {
		if v, ok := row.Get(col); ok {
			return v
		}
	}
	return f.Fallback
}

// Fallback chains for vendor columns that go by several names
var (
	SizeChain = FieldChain{
		Columns:  []string{ColSizeMetafield, ColOption2Value, "Sz", "sz", "Pack/Sz"},
		Fallback: DefaultSize,
	}
	PresentationChain = FieldChain{
		Columns:  []string{ColPresentationMetafield, "Format"},
		Fallback: "Presentation",
	}
	// LookupSizeChain is the size used to build update-flow search keys
	LookupSizeChain = FieldChain{
		Columns:  []string{ColSizeMetafield, ColPresentationMetafield, ColOption2Value},
		Fallback: DefaultSize,
	}
	SKUChain     = FieldChain{Columns: []string{ColSKU, "Item #"}}
	PriceChain   = FieldChain{Columns: []string{ColPrice, "Reg Price"}}
	BarcodeChain = FieldChain{Columns: []string{"Variant Barcode", "UPC", "upc"}}
	RegionChain  = FieldChain{Columns: []string{ColTags, ColRegion, ColAppellation}}
)

// cell returns a column value, or "" when it is missing
func cell(row domain.Row, column string) string {
	v, _ := row.Get(column)
	return v
}

// cellOr returns a column value, or def when the column is absent from the row.
// A present but empty column stays empty.
func cellOr(row domain.Row, column, def string) string {
	if !row.Has(column) {
		return def
	}
	return cell(row, column)
}
