package xlgrab

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// gridOf builds a Grid from raw strings the way the loader would.
func gridOf(rows ...[]string) *Grid {
	parsed := make([][]CellValue, len(rows))
	for i, row := range rows {
		parsed[i] = make([]CellValue, len(row))
		for j, s := range row {
			parsed[i][j] = ParseScalar(s)
		}
	}
	return NewGrid(parsed)
}

// createOrderSheet writes a small fixed-layout workbook:
//
//	A1: "Customer"  B1: "ACME Corp"
//	A2: "Amount"    B2: 1234.5
//	A3: "Paid"      B3: true
//	A4: (blank)     B4: "orphan"
//	A5: "Amount"    B5: 99
func createOrderSheet(t *testing.T) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Sheet1"
	f.SetCellValue(sheet, "A1", "Customer")
	f.SetCellValue(sheet, "B1", "ACME Corp")
	f.SetCellValue(sheet, "A2", "Amount")
	f.SetCellValue(sheet, "B2", 1234.5)
	f.SetCellValue(sheet, "A3", "Paid")
	f.SetCellBool(sheet, "B3", true)
	f.SetCellValue(sheet, "B4", "orphan")
	f.SetCellValue(sheet, "A5", "Amount")
	f.SetCellValue(sheet, "B5", 99)

	path := filepath.Join(t.TempDir(), "orders.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

// createSecondSheet writes a workbook whose data lives on a named second sheet.
func createSecondSheet(t *testing.T) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	_, err := f.NewSheet("Totals")
	require.NoError(t, err)
	f.SetCellValue("Totals", "A1", "total")
	f.SetCellValue("Totals", "B1", 42)

	path := filepath.Join(t.TempDir(), "totals.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}
