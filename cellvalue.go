package xlgrab

import (
	"encoding/json"
	"math"
	"strconv"
	"time"
)

// CellType represents the type of data in a cell.
type CellType int

const (
	CellEmpty CellType = iota
	CellString
	CellNumber
	CellBool
	CellDate
)

// String returns a human-readable name for the CellType.
func (ct CellType) String() string {
	switch ct {
	case CellEmpty:
		return "Empty"
	case CellString:
		return "String"
	case CellNumber:
		return "Number"
	case CellBool:
		return "Bool"
	case CellDate:
		return "Date"
	default:
		return "Unknown"
	}
}

// CellValue holds a single scalar cell value. The zero value is an empty cell.
type CellValue struct {
	typ CellType
	str string
	num float64
	b   bool
	t   time.Time
}

// EmptyValue returns an empty (absent) cell value.
func EmptyValue() CellValue { return CellValue{} }

// StringValue returns a string cell value.
func StringValue(s string) CellValue { return CellValue{typ: CellString, str: s} }

// NumberValue returns a numeric cell value.
func NumberValue(f float64) CellValue { return CellValue{typ: CellNumber, num: f} }

// BoolValue returns a boolean cell value.
func BoolValue(b bool) CellValue { return CellValue{typ: CellBool, b: b} }

// DateValue returns a date cell value.
func DateValue(t time.Time) CellValue { return CellValue{typ: CellDate, t: t} }

// Type returns the variant of this cell value.
func (v CellValue) Type() CellType { return v.typ }

// IsEmpty reports whether the cell is empty or absent.
func (v CellValue) IsEmpty() bool { return v.typ == CellEmpty }

// Text returns the underlying string for CellString values, "" otherwise.
func (v CellValue) Text() string { return v.str }

// Float64 returns the underlying number for CellNumber values, 0 otherwise.
func (v CellValue) Float64() float64 { return v.num }

// Bool returns the underlying bool for CellBool values, false otherwise.
func (v CellValue) Bool() bool { return v.b }

// Time returns the underlying time for CellDate values, zero otherwise.
func (v CellValue) Time() time.Time { return v.t }

// String renders the value as it appears in a CSV field: empty cells render
// as "", numbers with minimal decimals, dates in ISO form.
func (v CellValue) String() string {
	switch v.typ {
	case CellEmpty:
		return ""
	case CellString:
		return v.str
	case CellNumber:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	case CellBool:
		return strconv.FormatBool(v.b)
	case CellDate:
		if v.t.Hour() == 0 && v.t.Minute() == 0 && v.t.Second() == 0 {
			return v.t.Format("2006-01-02")
		}
		return v.t.Format("2006-01-02 15:04:05")
	default:
		return ""
	}
}

// Interface returns the value as a plain Go scalar (nil, string, float64,
// bool, or time.Time). Useful for expression environments.
func (v CellValue) Interface() any {
	switch v.typ {
	case CellString:
		return v.str
	case CellNumber:
		return v.num
	case CellBool:
		return v.b
	case CellDate:
		return v.t
	default:
		return nil
	}
}

// MarshalJSON serializes each variant to its natural JSON form.
// Empty cells serialize as null; dates serialize via their textual form.
func (v CellValue) MarshalJSON() ([]byte, error) {
	switch v.typ {
	case CellEmpty:
		return []byte("null"), nil
	case CellString:
		return json.Marshal(v.str)
	case CellNumber:
		return []byte(strconv.FormatFloat(v.num, 'f', -1, 64)), nil
	case CellBool:
		return []byte(strconv.FormatBool(v.b)), nil
	case CellDate:
		return json.Marshal(v.String())
	default:
		return []byte("null"), nil
	}
}

// dateLayouts are the textual date forms recognized when parsing loader output.
// excelize formats date cells with the workbook number format, which for the
// common builtin formats produces one of these.
var dateLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02",
	"2006/01/02",
	"01-02-06",
	time.RFC3339,
}

// ParseScalar converts a raw cell string from the spreadsheet loader into a
// typed CellValue. Integers and decimals become numbers, TRUE/FALSE become
// booleans, recognized date forms become dates, anything else stays a string.
func ParseScalar(s string) CellValue {
	if s == "" {
		return EmptyValue()
	}
	// NaN and the infinities parse as floats but have no JSON number form;
	// they stay strings so records containing them still serialize.
	if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
		return NumberValue(f)
	}
	switch s {
	case "TRUE", "true":
		return BoolValue(true)
	case "FALSE", "false":
		return BoolValue(false)
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return DateValue(t)
		}
	}
	return StringValue(s)
}

// LabeledValue pairs a value cell with its label cell, produced by labeled
// extraction of form-style sheets.
type LabeledValue struct {
	Label CellValue `json:"label"`
	Value CellValue `json:"value"`
}
