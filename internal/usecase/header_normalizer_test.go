package usecase

import (
	"testing"

	"github.com/mrdwine/catalog-engine/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestCanonicalHeader(t *testing.T) {
	tests := []struct {
		header string
		want   string
		wantOK bool
	}{
		{"Nombre_Vino", ColTitle, true},
		{"NOMBRE-VINO", ColTitle, true},
		{" nombre vino ", ColTitle, true},
		{"Añada", ColOption1Value, true},
		{"anada", ColOption1Value, true},
		{"Precio", ColPrice, true},
		{"Stock", ColInventoryQty, true},
		{"Marca", ColVendor, true},
		{"Tamaño", ColOption2Value, true},
		{"Appellation", ColRegion, true},
		{"Variant Price", ColPrice, true},
		{"Color", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			got, ok := CanonicalHeader(tt.header)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("CanonicalHeader(%q) = (%q, %v), want (%q, %v)", tt.header, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestNormalizeHeaders(t *testing.T) {
	t.Run("renames vendor spellings and moves values", func(t *testing.T) {
		table := &domain.Table{
			Columns: []string{"Nombre Vino", "Añada", "Precio", "Stock", "Color"},
			Rows: []domain.Row{
				{"Nombre Vino": "Catena Malbec", "Añada": "2020", "Precio": "19.99", "Stock": "24", "Color": "Tinto"},
			},
		}

		NormalizeHeaders(table)

		assert.Equal(t, []string{ColTitle, ColOption1Value, ColPrice, ColInventoryQty, "Color"}, table.Columns)
		row := table.Rows[0]
		assert.Equal(t, "Catena Malbec", row[ColTitle])
		assert.Equal(t, "2020", row[ColOption1Value])
		assert.Equal(t, "Tinto", row["Color"])
		assert.False(t, row.Has("Nombre Vino"))
	})

	t.Run("first synonym wins", func(t *testing.T) {
		table := &domain.Table{
			Columns: []string{"producto", "nombre"},
			Rows:    []domain.Row{{"producto": "Opus One", "nombre": "Opus"}},
		}

		NormalizeHeaders(table)

		assert.Equal(t, []string{ColTitle, "nombre"}, table.Columns)
		assert.Equal(t, "Opus One", table.Rows[0][ColTitle])
		assert.Equal(t, "Opus", table.Rows[0]["nombre"])
	})

	t.Run("exact canonical column keeps its name", func(t *testing.T) {
		table := &domain.Table{
			Columns: []string{"title", "Title"},
			Rows:    []domain.Row{{"title": "lower", "Title": "Upper"}},
		}

		NormalizeHeaders(table)

		assert.Equal(t, []string{"title", "Title"}, table.Columns)
		assert.Equal(t, "Upper", table.Rows[0][ColTitle])
		assert.Equal(t, "lower", table.Rows[0]["title"])
	})

	t.Run("canonical headers untouched", func(t *testing.T) {
		cols := []string{ColTitle, ColOption1Value, ColPrice}
		table := &domain.Table{Columns: append([]string(nil), cols...)}

		NormalizeHeaders(table)

		assert.Equal(t, cols, table.Columns)
	})
}
