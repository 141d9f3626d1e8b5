package ingest

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func utcTurkish() Locale {
	return Turkish().WithLocation(time.UTC)
}

func TestNormalizeDropsBlankRowsAndFormatsDates(t *testing.T) {
	grid := Grid{
		{Text("Date"), Text("Val")},
		{Text("2024-01-01"), Number(10)},
		{Text(""), Text("")},
		{Text("2024-01-02"), Number(20)},
	}

	ds, err := Normalize(grid, utcTurkish())
	require.NoError(t, err)

	assert.Equal(t, []string{"Date", "Val"}, ds.Headers())
	require.Equal(t, 2, ds.Len())
	assert.Equal(t, "01.01.2024", ds.Record(0).Label())
	assert.Equal(t, "02.01.2024", ds.Record(1).Label())

	v, ok := ds.Value(1, "Val")
	require.True(t, ok)
	assert.Equal(t, Number(20), v)
}

func TestNormalizeHeaderOnlyIsEmptyFile(t *testing.T) {
	_, err := Normalize(Grid{{Text("A"), Text("B")}}, utcTurkish())
	assert.ErrorIs(t, err, ErrEmptyFile)

	_, err = Normalize(nil, utcTurkish())
	assert.ErrorIs(t, err, ErrEmptyFile)
}

func TestNormalizeAllBlankRowsIsNoDataRows(t *testing.T) {
	grid := Grid{
		{Text("A"), Text("B")},
		{Null(), Text("")},
		{},
	}
	_, err := Normalize(grid, utcTurkish())
	assert.ErrorIs(t, err, ErrNoDataRows)
}

func TestNormalizeWhitespaceRowIsKept(t *testing.T) {
	grid := Grid{
		{Text("A")},
		{Text(" ")},
	}
	ds, err := Normalize(grid, utcTurkish())
	require.NoError(t, err)
	assert.Equal(t, 1, ds.Len())
}

func TestNormalizePlaceholderHeaders(t *testing.T) {
	grid := Grid{
		{Text("Zaman"), Text(""), Null()},
		{Text("x"), Number(1), Number(2)},
	}
	ds, err := Normalize(grid, utcTurkish())
	require.NoError(t, err)
	assert.Equal(t, []string{"Zaman", "Sütun 2", "Sütun 3"}, ds.Headers())

	ds, err = Normalize(grid, English().WithLocation(time.UTC))
	require.NoError(t, err)
	assert.Equal(t, []string{"Zaman", "Column 2", "Column 3"}, ds.Headers())
}

func TestNormalizeDuplicateHeadersAreSuffixed(t *testing.T) {
	grid := Grid{
		{Text("Date"), Text("Temp"), Text("Temp"), Text("Temp")},
		{Text("x"), Number(1), Number(2), Number(3)},
	}
	ds, err := Normalize(grid, utcTurkish())
	require.NoError(t, err)
	assert.Equal(t, []string{"Date", "Temp", "Temp (2)", "Temp (3)"}, ds.Headers())

	v, _ := ds.Value(0, "Temp (3)")
	assert.Equal(t, Number(3), v)
}

func TestNormalizePadsShortRowsAndExtendsHeaders(t *testing.T) {
	grid := Grid{
		{Text("Date"), Text("A")},
		{Text("x")},
		{Text("y"), Number(1), Number(9)},
	}
	ds, err := Normalize(grid, utcTurkish())
	require.NoError(t, err)
	assert.Equal(t, []string{"Date", "A", "Sütun 3"}, ds.Headers())

	for i := 0; i < ds.Len(); i++ {
		assert.Len(t, ds.Record(i), 3)
	}
	v, _ := ds.Value(0, "A")
	assert.Equal(t, KindNull, v.Kind)
	v, _ = ds.Value(1, "Sütun 3")
	assert.Equal(t, Number(9), v)
}

func TestNormalizeNullIndexBecomesEmptyText(t *testing.T) {
	grid := Grid{
		{Text("Date"), Text("A")},
		{Null(), Number(4)},
	}
	ds, err := Normalize(grid, utcTurkish())
	require.NoError(t, err)
	assert.Equal(t, Text(""), ds.Record(0)[0])
}

func TestDatasetSliceClamps(t *testing.T) {
	grid := Grid{{Text("i"), Text("v")}}
	for i := 0; i < 5; i++ {
		grid = append(grid, []Cell{Text("r"), Number(float64(i))})
	}
	ds, err := Normalize(grid, utcTurkish())
	require.NoError(t, err)

	assert.Len(t, ds.Slice(1, 3), 3)
	assert.Len(t, ds.Slice(-4, 99), 5)
	assert.Empty(t, ds.Slice(3, 1))
	assert.Equal(t, "i", ds.IndexHeader())
	assert.Equal(t, []string{"v"}, ds.ValueHeaders())
	assert.Equal(t, -1, ds.Column("missing"))
}
