package xlgrab

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func orderMapping() FieldMapping {
	return FieldMapping{
		{Name: "customer", Address: "B1"},
		{Name: "amount", Address: "B2"},
	}
}

func TestExtractBatch_PartialSuccess(t *testing.T) {
	good1 := createOrderSheet(t)
	good2 := createOrderSheet(t)

	configs := []BatchConfig{
		{File: good1, Sheet: "Sheet1", Mapping: orderMapping()},
		{File: "missing.xlsx", Sheet: "Sheet1", Mapping: orderMapping()},
		{File: good2, Sheet: "Sheet1", Mapping: orderMapping()},
	}

	records, diags := ExtractBatch(configs)

	// Two successes in original relative order, one diagnostic for the failure.
	require.Len(t, records, 2)
	assert.Equal(t, "ACME Corp", records[0].Value("customer").Text())
	assert.Equal(t, "ACME Corp", records[1].Value("customer").Text())

	require.Len(t, diags, 1)
	assert.Equal(t, "missing.xlsx", diags[0].File)
	assert.ErrorIs(t, diags[0].Err, ErrSourceUnavailable)
}

func TestExtractBatch_MissingSheetIsDiagnosed(t *testing.T) {
	path := createOrderSheet(t)
	records, diags := ExtractBatch([]BatchConfig{
		{File: path, Sheet: "Nope", Mapping: orderMapping()},
	})
	assert.Empty(t, records)
	require.Len(t, diags, 1)
	assert.ErrorIs(t, diags[0].Err, ErrSourceUnavailable)
}

func TestExtractBatch_MalformedMappingIsDiagnosed(t *testing.T) {
	path := createOrderSheet(t)
	records, diags := ExtractBatch([]BatchConfig{
		{File: path, Sheet: "Sheet1", Mapping: FieldMapping{{Name: "bad", Address: "1A"}}},
	})
	assert.Empty(t, records)
	require.Len(t, diags, 1)
	assert.ErrorIs(t, diags[0].Err, ErrInvalidAddress)
}

func TestExtractBatch_IncludeSource(t *testing.T) {
	path := createOrderSheet(t)
	records, diags := ExtractBatch([]BatchConfig{
		{File: path, Sheet: "Sheet1", Mapping: orderMapping(), IncludeSource: true},
	})
	require.Empty(t, diags)
	require.Len(t, records, 1)
	assert.Equal(t, path, records[0].Value("source_file").Text())
	// source_file comes after the mapped fields.
	assert.Equal(t, []string{"customer", "amount", "source_file"}, records[0].Keys())
}

func TestBatchToCSV(t *testing.T) {
	path := createOrderSheet(t)
	out := filepath.Join(t.TempDir(), "combined.csv")

	n, diags, err := BatchToCSV([]BatchConfig{
		{File: path, Sheet: "Sheet1", Mapping: orderMapping()},
		{File: "missing.xlsx", Sheet: "Sheet1", Mapping: orderMapping()},
	}, out)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Len(t, diags, 1)

	assert.Equal(t, "customer,amount\nACME Corp,1234.5\n", readFile(t, out))
}

func TestBatchToCSV_AllFail(t *testing.T) {
	out := filepath.Join(t.TempDir(), "combined.csv")

	n, diags, err := BatchToCSV([]BatchConfig{
		{File: "nope1.xlsx", Sheet: "Sheet1", Mapping: orderMapping()},
		{File: "nope2.xlsx", Sheet: "Sheet1", Mapping: orderMapping()},
	}, out)

	// Nothing to save is a non-fatal terminal condition: no error, no file.
	require.NoError(t, err)
	assert.Equal(t, 0, n)
	assert.Len(t, diags, 2)
	_, statErr := os.Stat(out)
	assert.True(t, os.IsNotExist(statErr))
}
