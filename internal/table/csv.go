package table

import (
	"encoding/csv"
	"fmt"
	"os"
)

// Load reads a CSV file into a table. The first record is the header, which
// is sanitized before any rows are keyed by it. Blank cells load as Missing.
func Load(path string) (*Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%s: no header record", path)
	}

	t := New(SanitizeHeaders(records[0]))
	for _, record := range records[1:] {
		row := make(Row, len(t.Columns))
		for i, col := range t.Columns {
			if i >= len(record) {
				break
			}
			if v := NewValue(record[i]); !v.IsMissing() {
				row[col] = v
			}
		}
		t.Rows = append(t.Rows, row)
	}
	return t, nil
}

// Write dumps the table to a CSV file. Missing cells are written empty.
func (t *Table) Write(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(t.Columns); err != nil {
		return err
	}

	record := make([]string, len(t.Columns))
	for _, row := range t.Rows {
		for i, col := range t.Columns {
			record[i] = row.Get(col).String()
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}
