package xlgrab

import (
	"fmt"
	"strings"

	"github.com/expr-lang/expr"
)

// Match is one cell located by a grid scan.
type Match struct {
	Ref   CellRef
	Value CellValue
}

// FindText scans the grid for cells whose textual rendering contains the
// given substring, case-insensitively. Results follow row-major scan order.
func FindText(g *Grid, text string) []Match {
	needle := strings.ToLower(text)
	var matches []Match
	scan(g, func(ref CellRef, v CellValue) {
		if v.IsEmpty() {
			return
		}
		if strings.Contains(strings.ToLower(v.String()), needle) {
			matches = append(matches, Match{Ref: ref, Value: v})
		}
	})
	return matches
}

// NonEmptyCells returns every non-empty cell in row-major scan order.
func NonEmptyCells(g *Grid) []Match {
	var matches []Match
	scan(g, func(ref CellRef, v CellValue) {
		if !v.IsEmpty() && strings.TrimSpace(v.String()) != "" {
			matches = append(matches, Match{Ref: ref, Value: v})
		}
	})
	return matches
}

// FindCells scans the grid for cells matching a boolean predicate expression.
// The expression is evaluated per cell with this environment:
//
//	value  the cell's scalar value (nil, string, float64, bool, or time.Time)
//	text   the cell's textual rendering
//	number the cell's numeric value, 0 when not a number
//	empty  whether the cell is empty
//	row    0-based row index
//	col    0-based column index
//	ref    the address string, e.g. "B12"
//
// Example: FindCells(g, `number > 100`) or FindCells(g, `text startsWith "Q"`).
func FindCells(g *Grid, predicate string) ([]Match, error) {
	program, err := expr.Compile(predicate, expr.AllowUndefinedVariables(), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("compile predicate %q: %w", predicate, err)
	}

	var matches []Match
	var evalErr error
	scan(g, func(ref CellRef, v CellValue) {
		if evalErr != nil {
			return
		}
		env := map[string]any{
			"value":  v.Interface(),
			"text":   v.String(),
			"number": v.Float64(),
			"empty":  v.IsEmpty(),
			"row":    ref.Row,
			"col":    ref.Col,
			"ref":    ref.String(),
		}
		result, err := expr.Run(program, env)
		if err != nil {
			evalErr = fmt.Errorf("evaluate predicate %q at %s: %w", predicate, ref, err)
			return
		}
		if ok, _ := result.(bool); ok {
			matches = append(matches, Match{Ref: ref, Value: v})
		}
	})
	if evalErr != nil {
		return nil, evalErr
	}
	return matches, nil
}

// FilterRows returns the grid rows whose cell in the named column renders
// equal to the given text. Empty cells never match, so short or sparse rows
// are simply filtered out.
func FilterRows(g *Grid, column, value string) ([][]CellValue, error) {
	col, err := NameToCol(column)
	if err != nil {
		return nil, err
	}
	var rows [][]CellValue
	for i := 0; i < g.RowCount(); i++ {
		v, _ := g.Lookup(CellRef{Row: i, Col: col})
		if v.IsEmpty() || v.String() != value {
			continue
		}
		rows = append(rows, g.Row(i))
	}
	return rows, nil
}

// scan visits every cell position in row-major order.
func scan(g *Grid, visit func(CellRef, CellValue)) {
	for row := 0; row < g.RowCount(); row++ {
		for col, v := range g.rows[row] {
			visit(CellRef{Row: row, Col: col}, v)
		}
	}
}
