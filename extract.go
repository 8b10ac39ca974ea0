package xlgrab

import (
	"encoding/json"
	"fmt"
)

// Field binds a logical field name to a cell address.
type Field struct {
	Name    string `mapstructure:"name"`
	Address string `mapstructure:"address"`
}

// FieldMapping is an ordered list of field-to-address bindings. Extraction
// preserves its order in the resulting Record.
type FieldMapping []Field

// FieldDef describes one form-style field: a required value cell and an
// optional label cell. When LabelAddress is set, extraction yields a
// LabeledValue instead of the bare value.
type FieldDef struct {
	Key          string
	LabelAddress string
	ValueAddress string
}

// ExtractMapped looks up every field of the mapping in declared order.
// Fields whose address falls outside the grid are included with an empty
// value; a malformed address aborts the extraction, since it indicates a
// configuration bug rather than bad sheet data.
func ExtractMapped(g *Grid, mapping FieldMapping) (*Record, error) {
	rec := NewRecord()
	for _, f := range mapping {
		v, err := g.Cell(f.Address)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", f.Name, err)
		}
		rec.Set(f.Name, v)
	}
	return rec, nil
}

// ExtractLabeled extracts form-style fields. Fields with a label address
// yield a LabeledValue pairing the label cell with the value cell.
func ExtractLabeled(g *Grid, defs []FieldDef) (*Record, error) {
	rec := NewRecord()
	for _, def := range defs {
		value, err := g.Cell(def.ValueAddress)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", def.Key, err)
		}
		if def.LabelAddress == "" {
			rec.Set(def.Key, value)
			continue
		}
		label, err := g.Cell(def.LabelAddress)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", def.Key, err)
		}
		rec.Set(def.Key, LabeledValue{Label: label, Value: value})
	}
	return rec, nil
}

// ExtractColumnPairs walks rows startRow through endRow (1-based, inclusive)
// and collects keyColumn→valueColumn pairs. endRow ≤ 0 means the grid's last
// row. Rows whose key cell is absent or blank are skipped; duplicate keys
// overwrite earlier ones (last write wins) while keeping the key's first
// position.
func ExtractColumnPairs(g *Grid, keyColumn, valueColumn string, startRow, endRow int) (*Record, error) {
	keyCol, err := NameToCol(keyColumn)
	if err != nil {
		return nil, fmt.Errorf("key column: %w", err)
	}
	valueCol, err := NameToCol(valueColumn)
	if err != nil {
		return nil, fmt.Errorf("value column: %w", err)
	}
	if startRow < 1 {
		return nil, fmt.Errorf("%w: start row %d must be positive", ErrInvalidRange, startRow)
	}
	if endRow <= 0 {
		endRow = g.RowCount()
	}

	rec := NewRecord()
	for row := startRow; row <= endRow; row++ {
		key, _ := g.Lookup(CellRef{Row: row - 1, Col: keyCol})
		if key.IsEmpty() {
			continue
		}
		value, _ := g.Lookup(CellRef{Row: row - 1, Col: valueCol})
		rec.Set(key.String(), value)
	}
	return rec, nil
}

// ExtractRange returns the rectangular block of cells between the two corner
// addresses, both inclusive, rows top to bottom and columns left to right.
// Cells outside the grid yield empty placeholders rather than truncating the
// row. An end corner above or left of the start corner is rejected with
// ErrInvalidRange.
func ExtractRange(g *Grid, start, end string) ([][]CellValue, error) {
	first, err := ParseCellRef(start)
	if err != nil {
		return nil, err
	}
	last, err := ParseCellRef(end)
	if err != nil {
		return nil, err
	}
	if last.Row < first.Row || last.Col < first.Col {
		return nil, fmt.Errorf("%w: end %q precedes start %q", ErrInvalidRange, end, start)
	}

	out := make([][]CellValue, 0, last.Row-first.Row+1)
	for row := first.Row; row <= last.Row; row++ {
		line := make([]CellValue, 0, last.Col-first.Col+1)
		for col := first.Col; col <= last.Col; col++ {
			v, _ := g.Lookup(CellRef{Row: row, Col: col})
			line = append(line, v)
		}
		out = append(out, line)
	}
	return out, nil
}

// ExtractToJSON performs a mapped extraction and serializes the record to
// JSON, keys in mapping order.
func ExtractToJSON(g *Grid, mapping FieldMapping, pretty bool) ([]byte, error) {
	rec, err := ExtractMapped(g, mapping)
	if err != nil {
		return nil, err
	}
	if pretty {
		return json.MarshalIndent(rec, "", "  ")
	}
	return json.Marshal(rec)
}
