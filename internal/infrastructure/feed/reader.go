package feed

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/mrdwine/catalog-engine/internal/domain"
	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/charmap"
)

// Supported feed formats
const (
	FormatCSV  = "csv"
	FormatXLSX = "xlsx"
)

// FormatFromFilename picks the parser from a file extension
func FormatFromFilename(name string) (string, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".csv", ".txt":
		return FormatCSV, nil
	case ".xlsx", ".xlsm":
		return FormatXLSX, nil
	default:
		return "", fmt.Errorf("%w: %q", domain.ErrUnsupportedFormat, name)
	}
}

// Read parses a feed in the given format into a table
func Read(r io.Reader, format string) (*domain.Table, error) {
	switch format {
	case FormatCSV:
		return ReadCSV(r)
	case FormatXLSX:
		return ReadXLSX(r)
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedFormat, format)
	}
}

// ReadCSV parses a CSV feed. Files that are not valid UTF-8 are decoded as
// Latin-1, which is what vendor exports from older spreadsheet tools use.
func ReadCSV(r io.Reader) (*domain.Table, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	if !utf8.Valid(data) {
		data, err = charmap.ISO8859_1.NewDecoder().Bytes(data)
		if err != nil {
			return nil, fmt.Errorf("decode latin-1: %w", err)
		}
	}
	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))

	reader := csv.NewReader(bytes.NewReader(data))
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}
	return buildTable(records), nil
}

// ReadXLSX parses the first sheet of a workbook
func ReadXLSX(r io.Reader) (*domain.Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open xlsx: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return &domain.Table{}, nil
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}
	return buildTable(rows), nil
}

// buildTable turns raw records into a table. The first record is the header;
// blank headers become "Unnamed: i" and repeated ones get a ".n" suffix.
// Short records are padded so every row carries every column.
func buildTable(records [][]string) *domain.Table {
	table := &domain.Table{Columns: []string{}, Rows: []domain.Row{}}
	if len(records) == 0 {
		return table
	}

	seen := make(map[string]int)
	for i, h := range records[0] {
		name := strings.TrimSpace(h)
		if name == "" {
			name = "Unnamed: " + strconv.Itoa(i)
		}
		if n, dup := seen[name]; dup {
			seen[name] = n + 1
			name = name + "." + strconv.Itoa(n+1)
		} else {
			seen[name] = 0
		}
		table.Columns = append(table.Columns, name)
	}

	for _, rec := range records[1:] {
		if isBlankRecord(rec) {
			continue
		}
		row := make(domain.Row, len(table.Columns))
		for i, col := range table.Columns {
			if i < len(rec) {
				row[col] = strings.TrimSpace(rec[i])
			} else {
				row[col] = ""
			}
		}
		table.Rows = append(table.Rows, row)
	}
	return table
}

func isBlankRecord(rec []string) bool {
	for _, v := range rec {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
