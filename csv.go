package xlgrab

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
)

// WriteCSV writes the table to w: one header row, then one row per record,
// escaped per RFC 4180.
func (t *Table) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.headers); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i, row := range t.Rows() {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write row %d: %w", i+1, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteCSVFile writes the table to the file at path, replacing any existing
// content.
func (t *Table) WriteCSVFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %q: %w", path, err)
	}
	defer f.Close()

	if err := t.WriteCSV(f); err != nil {
		return err
	}
	return f.Close()
}

// ReadTable reads CSV data into a Table. The first row is the header; field
// values stay strings, empty fields become empty cells.
func ReadTable(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return &Table{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	var records []*Record
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		rec := NewRecord()
		for i, col := range header {
			if i < len(row) && row[i] != "" {
				rec.Set(col, StringValue(row[i]))
			} else {
				rec.Set(col, EmptyValue())
			}
		}
		records = append(records, rec)
	}

	headers := make([]string, len(header))
	copy(headers, header)
	return &Table{columns: header, headers: headers, records: records}, nil
}

// ReadTableFile reads the CSV file at path into a Table.
func ReadTableFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %q: %w", path, err)
	}
	defer f.Close()
	return ReadTable(f)
}

// AppendCSV appends one record to the CSV table at path. A missing file is
// not an error: it is the defined way to create a new table. Columns of the
// new record are aligned against the existing table's columns with the same
// union rule projection uses; columns the record adds extend the header.
//
// AppendCSV is a read-modify-write over the whole file and assumes a single
// writer. Concurrent appenders targeting the same path can lose updates.
func AppendCSV(path string, rec *Record) error {
	var (
		records []*Record
		columns []string
	)
	if existing, err := ReadTableFile(path); err == nil {
		records = existing.Records()
		columns = existing.Columns()
	} else if !errors.Is(err, os.ErrNotExist) {
		return err
	}

	records = append(records, rec)
	// Seed with the existing header so its columns survive even when the
	// table holds no data rows yet.
	table, err := Project(records, withSeedColumns(columns))
	if err != nil {
		return err
	}
	return table.WriteCSVFile(path)
}
