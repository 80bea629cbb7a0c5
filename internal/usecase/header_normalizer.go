package usecase

import (
	"log"
	"strings"

	"github.com/mrdwine/catalog-engine/internal/domain"
)

// Canonical column names used by the update and create flows
const (
	ColVendor       = "Vendor"
	ColTitle        = "Title"
	ColOption1Value = "Option1 Value"
	ColOption2Value = "Option2 Value"
	ColPrice        = "Variant Price"
	ColInventoryQty = "Variant Inventory Qty"
	ColSKU          = "Variant SKU"
	ColVarietal     = "Varietal"
	ColRegion       = "Region"
	ColDescription  = "Description"
	ColHandle       = "Handle"
	ColVariantID    = "Variant ID"
	ColBodyHTML     = "Body (HTML)"
	ColTags         = "Tags"
	ColAppellation  = "Appellation"
)

// headerSynonyms lists, per canonical column, the vendor spellings seen in
// supplier sheets (Spanish and English).
var headerSynonyms = []struct {
	Canonical string
	Aliases   []string
}{
	{ColVendor, []string{"marca", "producer", "brand", "bodega", "proveedor"}},
	{ColTitle, []string{"nombre_vino", "nombre vino", "product name", "wine_name", "nombre", "producto"}},
	{ColOption1Value, []string{"añada", "vintage", "año", "anio", "year"}},
	{ColOption2Value, []string{"presentacion", "size", "formato", "tamaño", "volumen", "capacity", "ml"}},
	{ColPrice, []string{"precio", "price", "precio venta", "costo", "pvp"}},
	{ColInventoryQty, []string{"inventario", "stock", "cantidad", "qty", "existencia"}},
	{ColSKU, []string{"sku", "referencia", "codigo"}},
	{ColVarietal, []string{"varietal", "uva", "tipo de uva", "grape"}},
	{ColRegion, []string{"region", "zona", "denominacion", "appellation"}},
}

// headerIndex maps a folded header key to its canonical column
var headerIndex = func() map[string]string {
	idx := make(map[string]string)
	for _, s := range headerSynonyms {
		idx[headerKey(s.Canonical)] = s.Canonical
		for _, a := range s.Aliases {
			idx[headerKey(a)] = s.Canonical
		}
	}
	return idx
}()

// headerKey folds case, accents, spaces, underscores and hyphens:
// "Nombre_Vino", "nombre vino" and "NOMBRE-VINO" share one key.
func headerKey(h string) string {
	s := FoldASCII(strings.ToLower(strings.TrimSpace(h)))
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '_', '-', '\t':
			return -1
		}
		return r
	}, s)
}

// CanonicalHeader returns the canonical name for a vendor header
func CanonicalHeader(header string) (string, bool) {
	c, ok := headerIndex[headerKey(header)]
	return c, ok
}

// NormalizeHeaders renames vendor-specific columns onto the canonical schema
// in place. When several source columns map to one canonical name the first
// in header order wins, except that a column already spelled exactly like the
// canonical name always keeps it. Losing columns keep their original names.
func NormalizeHeaders(table *domain.Table) {
	taken := make(map[string]bool, len(table.Columns))
	for _, c := range table.Columns {
		if canonical, ok := CanonicalHeader(c); !ok || canonical == c {
			taken[c] = true
		}
	}

	renames := make(map[string]string)
	for _, col := range table.Columns {
		canonical, ok := CanonicalHeader(col)
		if !ok || canonical == col {
			continue
		}
		if taken[canonical] {
			log.Printf("[HEADERS] Column %q also maps to %q, keeping original name", col, canonical)
			continue
		}
		taken[canonical] = true
		renames[col] = canonical
	}

	for from, to := range renames {
		table.RenameColumn(from, to)
	}
}
