package feed

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/mrdwine/catalog-engine/internal/domain"
)

// WriteCSV writes a header and records as UTF-8 CSV
func WriteCSV(w io.Writer, columns []string, records [][]string) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(columns); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	if err := writer.WriteAll(records); err != nil {
		return fmt.Errorf("write records: %w", err)
	}
	return nil
}

// OutputRecords renders import rows in domain.OutputColumns order
func OutputRecords(rows []domain.OutputRow) [][]string {
	records := make([][]string, len(rows))
	for i := range rows {
		records[i] = rows[i].Record()
	}
	return records
}
