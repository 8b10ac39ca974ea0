package xlgrab

import (
	"fmt"
	"strings"
)

// maxRowNumber bounds the 1-based row accepted by ParseCellRef, far beyond
// any real sheet. It keeps the digit accumulation from wrapping around on
// absurdly long digit runs.
const maxRowNumber = 1 << 30

// CellRef represents a single cell position in a sheet.
type CellRef struct {
	Row int // 0-based row index
	Col int // 0-based column index
}

// NewCellRef creates a CellRef with explicit row and col.
func NewCellRef(row, col int) CellRef {
	return CellRef{Row: row, Col: col}
}

// ParseCellRef parses a cell reference string like "A1" or "b12".
// The reference must be a run of column letters immediately followed by a
// 1-based row number, with no other characters.
func ParseCellRef(s string) (CellRef, error) {
	if s == "" {
		return CellRef{}, fmt.Errorf("%w: empty reference", ErrInvalidAddress)
	}

	i := 0
	for i < len(s) && isAlpha(s[i]) {
		i++
	}
	if i == 0 || i == len(s) {
		return CellRef{}, fmt.Errorf("%w: %q", ErrInvalidAddress, s)
	}

	col, err := NameToCol(s[:i])
	if err != nil {
		return CellRef{}, err
	}

	rowNum := 0
	for _, ch := range s[i:] {
		if ch < '0' || ch > '9' {
			return CellRef{}, fmt.Errorf("%w: %q", ErrInvalidAddress, s)
		}
		rowNum = rowNum*10 + int(ch-'0')
		if rowNum > maxRowNumber {
			return CellRef{}, fmt.Errorf("%w: row number in %q too large", ErrInvalidAddress, s)
		}
	}
	if rowNum < 1 {
		return CellRef{}, fmt.Errorf("%w: row number in %q must be positive", ErrInvalidAddress, s)
	}

	return CellRef{Row: rowNum - 1, Col: col}, nil
}

func isAlpha(b byte) bool {
	return (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}

// String formats the CellRef as "A1". It is the inverse of ParseCellRef.
func (c CellRef) String() string {
	return ColToName(c.Col) + fmt.Sprintf("%d", c.Row+1)
}

// ColToName converts a 0-based column index to a column name.
// 0→"A", 25→"Z", 26→"AA", 702→"AAA"
func ColToName(col int) string {
	result := ""
	col++ // convert to 1-based for algorithm
	for col > 0 {
		col-- // adjust for 0-indexed letter
		result = string(rune('A'+col%26)) + result
		col /= 26
	}
	return result
}

// NameToCol converts a column name to a 0-based column index.
// "A"→0, "Z"→25, "AA"→26
func NameToCol(name string) (int, error) {
	name = strings.ToUpper(name)
	if name == "" {
		return 0, fmt.Errorf("%w: empty column name", ErrInvalidAddress)
	}
	col := 0
	for _, ch := range name {
		if ch < 'A' || ch > 'Z' {
			return 0, fmt.Errorf("%w: column name %q", ErrInvalidAddress, name)
		}
		col = col*26 + int(ch-'A') + 1
	}
	return col - 1, nil
}

// RangeRef represents a rectangular range defined by two cell references.
type RangeRef struct {
	First CellRef
	Last  CellRef
}

// ParseRangeRef parses a range reference string like "A1:C5".
func ParseRangeRef(s string) (RangeRef, error) {
	parts := strings.SplitN(strings.TrimSpace(s), ":", 2)
	if len(parts) != 2 {
		return RangeRef{}, fmt.Errorf("%w: missing ':' in %q", ErrInvalidAddress, s)
	}

	first, err := ParseCellRef(parts[0])
	if err != nil {
		return RangeRef{}, err
	}
	last, err := ParseCellRef(parts[1])
	if err != nil {
		return RangeRef{}, err
	}

	return RangeRef{First: first, Last: last}, nil
}

// String formats the RangeRef as "A1:C5".
func (r RangeRef) String() string {
	return r.First.String() + ":" + r.Last.String()
}

// Size returns the dimensions of the range as (rows, cols).
func (r RangeRef) Size() (rows, cols int) {
	return r.Last.Row - r.First.Row + 1, r.Last.Col - r.First.Col + 1
}

// Contains returns true if the given cell reference is within this range.
func (r RangeRef) Contains(ref CellRef) bool {
	return ref.Row >= r.First.Row && ref.Row <= r.Last.Row &&
		ref.Col >= r.First.Col && ref.Col <= r.Last.Col
}
