package xlgrab

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindText(t *testing.T) {
	g := gridOf(
		[]string{"Total Revenue", "100"},
		[]string{"subtotal", "50"},
		[]string{"Other", "7"},
	)

	matches := FindText(g, "total")
	require.Len(t, matches, 2)
	assert.Equal(t, NewCellRef(0, 0), matches[0].Ref)
	assert.Equal(t, NewCellRef(1, 0), matches[1].Ref)
}

func TestFindText_NoMatch(t *testing.T) {
	g := gridOf([]string{"abc"})
	assert.Empty(t, FindText(g, "zzz"))
}

func TestNonEmptyCells(t *testing.T) {
	g := gridOf(
		[]string{"a", "", "b"},
		[]string{"", "  ", "c"},
	)

	matches := NonEmptyCells(g)
	require.Len(t, matches, 3)
	assert.Equal(t, NewCellRef(0, 0), matches[0].Ref)
	assert.Equal(t, NewCellRef(0, 2), matches[1].Ref)
	assert.Equal(t, NewCellRef(1, 2), matches[2].Ref)
}

func TestFindCells_NumberPredicate(t *testing.T) {
	g := gridOf(
		[]string{"label", "50"},
		[]string{"other", "150"},
		[]string{"more", "200"},
	)

	matches, err := FindCells(g, `number > 100`)
	require.NoError(t, err)
	require.Len(t, matches, 2)
	assert.Equal(t, 150.0, matches[0].Value.Float64())
	assert.Equal(t, 200.0, matches[1].Value.Float64())
}

func TestFindCells_TextAndPosition(t *testing.T) {
	g := gridOf(
		[]string{"Q1", "Q2"},
		[]string{"Q3", "x"},
	)

	matches, err := FindCells(g, `text startsWith "Q" and row > 0`)
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "A2", matches[0].Ref.String())
}

func TestFindCells_EmptyPredicate(t *testing.T) {
	g := gridOf([]string{"a", ""})

	matches, err := FindCells(g, `empty`)
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, NewCellRef(0, 1), matches[0].Ref)
}

func TestFilterRows(t *testing.T) {
	g := gridOf(
		[]string{"John", "Active"},
		[]string{"Jane", "Inactive"},
		[]string{"Bob", "Active"},
		[]string{"Short"},
	)

	rows, err := FilterRows(g, "B", "Active")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "John", rows[0][0].Text())
	assert.Equal(t, "Bob", rows[1][0].Text())
}

func TestFilterRows_NoMatch(t *testing.T) {
	g := gridOf([]string{"a", "b"})

	rows, err := FilterRows(g, "B", "zzz")
	require.NoError(t, err)
	assert.Empty(t, rows)

	_, err = FilterRows(g, "9", "x")
	assert.ErrorIs(t, err, ErrInvalidAddress)
}

func TestFindCells_BadPredicate(t *testing.T) {
	g := gridOf([]string{"a"})
	_, err := FindCells(g, `number >`)
	assert.Error(t, err)
}
