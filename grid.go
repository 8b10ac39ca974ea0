package xlgrab

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// Grid is a header-less two-dimensional array of cell values loaded from one
// sheet of one workbook. A Grid is read-only after loading.
type Grid struct {
	rows [][]CellValue
}

// NewGrid creates a Grid from pre-built rows. Rows may be ragged; lookups
// past the end of a short row report absent.
func NewGrid(rows [][]CellValue) *Grid {
	return &Grid{rows: rows}
}

// RowCount returns the number of rows in the grid.
func (g *Grid) RowCount() int { return len(g.rows) }

// ColCount returns the width of the widest row.
func (g *Grid) ColCount() int {
	max := 0
	for _, row := range g.rows {
		if len(row) > max {
			max = len(row)
		}
	}
	return max
}

// Lookup returns the value at ref. The second return is false when the
// position lies outside the grid; out-of-range is an expected condition for
// sparse or short sheets, not an error.
func (g *Grid) Lookup(ref CellRef) (CellValue, bool) {
	if ref.Row < 0 || ref.Row >= len(g.rows) {
		return EmptyValue(), false
	}
	row := g.rows[ref.Row]
	if ref.Col < 0 || ref.Col >= len(row) {
		return EmptyValue(), false
	}
	return row[ref.Col], true
}

// Cell resolves an address string like "B12" and returns the value there.
// An out-of-range address yields an empty value; a malformed address is an
// error.
func (g *Grid) Cell(address string) (CellValue, error) {
	ref, err := ParseCellRef(address)
	if err != nil {
		return EmptyValue(), err
	}
	v, _ := g.Lookup(ref)
	return v, nil
}

// Row returns a copy of the row at the given 0-based index, or nil when the
// index is out of range.
func (g *Grid) Row(index int) []CellValue {
	if index < 0 || index >= len(g.rows) {
		return nil
	}
	row := make([]CellValue, len(g.rows[index]))
	copy(row, g.rows[index])
	return row
}

// Column returns the column with the given name ("A", "B", ...) padded to the
// grid's row count. Short rows contribute empty values.
func (g *Grid) Column(name string) ([]CellValue, error) {
	col, err := NameToCol(name)
	if err != nil {
		return nil, err
	}
	out := make([]CellValue, len(g.rows))
	for i := range g.rows {
		v, _ := g.Lookup(CellRef{Row: i, Col: col})
		out[i] = v
	}
	return out, nil
}

// SheetSelector selects a sheet by name or 0-based index. Name takes
// precedence when both are set; the zero value selects the first sheet.
type SheetSelector struct {
	Name  string
	Index int
}

// SheetByName selects a sheet by its name.
func SheetByName(name string) SheetSelector { return SheetSelector{Name: name} }

// SheetByIndex selects a sheet by its 0-based position in the workbook.
func SheetByIndex(index int) SheetSelector { return SheetSelector{Index: index} }

// LoadGrid opens the workbook at path and reads the selected sheet into a
// Grid. Missing files and missing sheets report ErrSourceUnavailable.
func LoadGrid(path string, sheet SheetSelector) (*Grid, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: open %q: %v", ErrSourceUnavailable, path, err)
	}
	defer f.Close()

	name := sheet.Name
	if name == "" {
		list := f.GetSheetList()
		if sheet.Index < 0 || sheet.Index >= len(list) {
			return nil, fmt.Errorf("%w: %q has no sheet at index %d", ErrSourceUnavailable, path, sheet.Index)
		}
		name = list[sheet.Index]
	}

	raw, err := f.GetRows(name)
	if err != nil {
		return nil, fmt.Errorf("%w: read sheet %q of %q: %v", ErrSourceUnavailable, name, path, err)
	}

	rows := make([][]CellValue, len(raw))
	for i, r := range raw {
		row := make([]CellValue, len(r))
		for j, s := range r {
			row[j] = ParseScalar(s)
		}
		rows[i] = row
	}
	return &Grid{rows: rows}, nil
}
