package xlgrab

import "fmt"

// Table is an ordered sequence of Records with a resolved column order.
// Every row renders a value, possibly blank, for every column.
type Table struct {
	columns []string // original column names, resolution order
	headers []string // output header names after renames
	records []*Record
}

// Columns returns the resolved original column names.
func (t *Table) Columns() []string {
	out := make([]string, len(t.columns))
	copy(out, t.columns)
	return out
}

// Headers returns the output header row.
func (t *Table) Headers() []string {
	out := make([]string, len(t.headers))
	copy(out, t.headers)
	return out
}

// Len returns the number of data rows.
func (t *Table) Len() int { return len(t.records) }

// Records returns the underlying records in row order.
func (t *Table) Records() []*Record { return t.records }

// Rows renders every record against the resolved column order. Fields a
// record lacks render as empty strings.
func (t *Table) Rows() [][]string {
	rows := make([][]string, len(t.records))
	for i, rec := range t.records {
		row := make([]string, len(t.columns))
		for j, col := range t.columns {
			row[j] = rec.Value(col).String()
		}
		rows[i] = row
	}
	return rows
}

type projectOptions struct {
	customHeaders []string
	headerMapping map[string]string
	columnOrder   []string
	seedColumns   []string
}

// ProjectOption configures projection.
type ProjectOption func(*projectOptions)

// WithCustomHeaders replaces the output header names positionally. The count
// must match the resolved column count.
func WithCustomHeaders(headers ...string) ProjectOption {
	return func(o *projectOptions) { o.customHeaders = headers }
}

// WithHeaderMapping renames output headers. Columns absent from the mapping
// pass through unchanged; the column order is unaffected.
func WithHeaderMapping(mapping map[string]string) ProjectOption {
	return func(o *projectOptions) { o.headerMapping = mapping }
}

// WithColumnOrder puts the requested columns first, in the requested order.
// Requested columns absent from the data are dropped; data columns not
// requested follow in first-seen order.
func WithColumnOrder(columns ...string) ProjectOption {
	return func(o *projectOptions) { o.columnOrder = columns }
}

// withSeedColumns puts the given columns at the front of the resolved order
// even when no record carries them. Appending uses this to keep an existing
// table's header intact.
func withSeedColumns(columns []string) ProjectOption {
	return func(o *projectOptions) { o.seedColumns = columns }
}

// Project flattens records into a Table. The default column order is the
// union of record keys in first-seen order.
func Project(records []*Record, opts ...ProjectOption) (*Table, error) {
	var o projectOptions
	for _, opt := range opts {
		opt(&o)
	}

	columns := unionColumns(o.seedColumns, records)

	if len(o.columnOrder) > 0 {
		columns = reorderColumns(columns, o.columnOrder)
	}

	headers := make([]string, len(columns))
	copy(headers, columns)
	for i, col := range columns {
		if renamed, ok := o.headerMapping[col]; ok {
			headers[i] = renamed
		}
	}

	if o.customHeaders != nil {
		if len(o.customHeaders) != len(columns) {
			return nil, fmt.Errorf("%w: %d headers for %d columns",
				ErrHeaderCountMismatch, len(o.customHeaders), len(columns))
		}
		headers = o.customHeaders
	}

	return &Table{columns: columns, headers: headers, records: records}, nil
}

// ProjectTransposed renders a single record as a two-column Field/Value
// table, one row per field.
func ProjectTransposed(rec *Record) *Table {
	records := make([]*Record, 0, rec.Len())
	for _, key := range rec.Keys() {
		row := NewRecord()
		row.Set("Field", StringValue(key))
		row.Set("Value", rec.Value(key))
		records = append(records, row)
	}
	return &Table{
		columns: []string{"Field", "Value"},
		headers: []string{"Field", "Value"},
		records: records,
	}
}

// unionColumns collects record keys in first-seen order, scanning records top
// to bottom and fields left to right within each record. Seed columns come
// first regardless of whether any record carries them.
func unionColumns(seed []string, records []*Record) []string {
	var columns []string
	seen := make(map[string]bool)
	for _, key := range seed {
		if !seen[key] {
			seen[key] = true
			columns = append(columns, key)
		}
	}
	for _, rec := range records {
		for _, key := range rec.Keys() {
			if !seen[key] {
				seen[key] = true
				columns = append(columns, key)
			}
		}
	}
	return columns
}

// reorderColumns applies a requested ordering: requested columns present in
// the data come first, remaining data columns keep their first-seen order.
func reorderColumns(columns, requested []string) []string {
	present := make(map[string]bool, len(columns))
	for _, c := range columns {
		present[c] = true
	}

	out := make([]string, 0, len(columns))
	picked := make(map[string]bool, len(requested))
	for _, c := range requested {
		if present[c] && !picked[c] {
			picked[c] = true
			out = append(out, c)
		}
	}
	for _, c := range columns {
		if !picked[c] {
			out = append(out, c)
		}
	}
	return out
}
