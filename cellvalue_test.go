package xlgrab

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseScalar(t *testing.T) {
	tests := map[string]CellType{
		"":           CellEmpty,
		"hello":      CellString,
		"42":         CellNumber,
		"-3.5":       CellNumber,
		"TRUE":       CellBool,
		"false":      CellBool,
		"2024-01-15": CellDate,
		"01-02-06":   CellDate,
		"x 42":       CellString,
	}
	for input, expected := range tests {
		assert.Equal(t, expected, ParseScalar(input).Type(), "parse %q", input)
	}
}

func TestParseScalar_Values(t *testing.T) {
	assert.Equal(t, 42.0, ParseScalar("42").Float64())
	assert.Equal(t, true, ParseScalar("TRUE").Bool())
	assert.Equal(t, "hello", ParseScalar("hello").Text())

	d := ParseScalar("2024-01-15")
	assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), d.Time())
}

func TestParseScalar_NonFiniteStaysString(t *testing.T) {
	for _, input := range []string{"NaN", "nan", "Inf", "+Inf", "-Inf", "Infinity"} {
		v := ParseScalar(input)
		assert.Equal(t, CellString, v.Type(), "parse %q", input)

		// Must serialize via the textual form, not as a raw JSON number.
		data, err := json.Marshal(v)
		require.NoError(t, err, "marshal %q", input)
		assert.Equal(t, `"`+input+`"`, string(data))
	}
}

func TestCellValue_String(t *testing.T) {
	assert.Equal(t, "", EmptyValue().String())
	assert.Equal(t, "hi", StringValue("hi").String())
	assert.Equal(t, "1234.5", NumberValue(1234.5).String())
	assert.Equal(t, "99", NumberValue(99).String())
	assert.Equal(t, "true", BoolValue(true).String())
	assert.Equal(t, "2024-01-15",
		DateValue(time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)).String())
	assert.Equal(t, "2024-01-15 09:30:00",
		DateValue(time.Date(2024, 1, 15, 9, 30, 0, 0, time.UTC)).String())
}

func TestCellValue_MarshalJSON(t *testing.T) {
	tests := map[string]CellValue{
		`null`:         EmptyValue(),
		`"hi"`:         StringValue("hi"),
		`1234.5`:       NumberValue(1234.5),
		`99`:           NumberValue(99),
		`true`:         BoolValue(true),
		`"2024-01-15"`: DateValue(time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)),
	}
	for expected, value := range tests {
		data, err := json.Marshal(value)
		require.NoError(t, err)
		assert.Equal(t, expected, string(data))
	}
}

func TestCellValue_Interface(t *testing.T) {
	assert.Nil(t, EmptyValue().Interface())
	assert.Equal(t, "hi", StringValue("hi").Interface())
	assert.Equal(t, 4.0, NumberValue(4).Interface())
	assert.Equal(t, false, BoolValue(false).Interface())
}

func TestLabeledValue_MarshalJSON(t *testing.T) {
	lv := LabeledValue{Label: StringValue("Customer"), Value: StringValue("ACME")}
	data, err := json.Marshal(lv)
	require.NoError(t, err)
	assert.JSONEq(t, `{"label":"Customer","value":"ACME"}`, string(data))
}
