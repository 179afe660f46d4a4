package importer

import (
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
)

// Row is one spreadsheet row keyed by column header.
type Row map[string]string

var questionTextColumns = []string{"Question", "question", "text"}

// Text returns the question text of a row, checking the recognized column
// names in order.
func (r Row) Text() string {
	for _, col := range questionTextColumns {
		if v := strings.TrimSpace(r[col]); v != "" {
			return v
		}
	}
	return ""
}

// ParseFile reads a .csv, .xlsx or .xls spreadsheet into rows, keeping only
// rows with a non-empty question-text column. A malformed file yields an
// error and no rows; it never panics.
func ParseFile(path string) ([]Row, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		file, err := os.Open(path)
		if err != nil {
			return nil, errors.Wrap(err, "failed to open file")
		}
		defer file.Close()
		return ParseCSV(file)
	case ".xlsx", ".xls":
		return parseWorkbook(path)
	default:
		return nil, errors.Errorf("unsupported file type %q, expected .csv, .xlsx or .xls", filepath.Ext(path))
	}
}

// ParseCSV reads a header-row CSV into rows.
func ParseCSV(r io.Reader) ([]Row, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse CSV")
	}
	if len(records) == 0 {
		return nil, nil
	}
	return rowsFromRecords(records), nil
}

// parseWorkbook reads the first sheet of an Excel workbook into rows.
func parseWorkbook(path string) ([]Row, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse workbook")
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil
	}
	records, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, errors.Wrap(err, "failed to read worksheet")
	}
	if len(records) == 0 {
		return nil, nil
	}
	return rowsFromRecords(records), nil
}

func rowsFromRecords(records [][]string) []Row {
	headers := records[0]
	rows := make([]Row, 0, len(records)-1)
	for _, record := range records[1:] {
		row := make(Row, len(headers))
		for i, header := range headers {
			header = strings.TrimSpace(header)
			if header == "" || i >= len(record) {
				continue
			}
			row[header] = record[i]
		}
		if row.Text() == "" {
			continue
		}
		rows = append(rows, row)
	}
	return rows
}
