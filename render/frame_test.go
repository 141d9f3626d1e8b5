package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/andareed/siftly-sheetchart/ingest"
	"github.com/andareed/siftly-sheetchart/viewport"
	"github.com/andareed/siftly-sheetchart/visibility"
)

func sample(t *testing.T) *ingest.Dataset {
	t.Helper()
	grid := ingest.Grid{
		{ingest.Text("Date"), ingest.Text("Level"), ingest.Text("Alarm"), ingest.Text("Note")},
		{ingest.Text("d1"), ingest.Number(10), ingest.Number(0), ingest.Null()},
		{ingest.Text("d2"), ingest.Number(12), ingest.Number(1), ingest.Text("")},
		{ingest.Text("d3"), ingest.Null(), ingest.Number(3), ingest.Text("x")},
		{ingest.Text("d4"), ingest.Number(1234.5), ingest.Number(2), ingest.Text("y")},
	}
	ds, err := ingest.Normalize(grid, ingest.English())
	require.NoError(t, err)
	return ds
}

func fullRange(ds *ingest.Dataset) viewport.Range {
	return viewport.Range{Start: 0, End: ds.Len() - 1}
}

func TestNewFrameSlicesRange(t *testing.T) {
	ds := sample(t)
	f := NewFrame(ds, viewport.Range{Start: 1, End: 2}, nil, nil)

	require.Len(t, f.Records, 2)
	assert.Equal(t, "d2", f.Label(0))
	assert.Equal(t, 4, f.Total)
	assert.Equal(t, "Showing 2 - 3 / 4 records", f.Status())
	assert.Equal(t, DefaultPalette, f.Palette)
}

func TestLinePointsSkipNulls(t *testing.T) {
	f := NewFrame(sample(t), fullRange(sample(t)), nil, nil)
	assert.Equal(t, []Point{{0, 10}, {1, 12}, {3, 1234.5}}, f.LinePoints())

	lo, hi, ok := f.YRange()
	require.True(t, ok)
	assert.Equal(t, 10.0, lo)
	assert.Equal(t, 1234.5, hi)
}

func TestSignalsSitOnTheLine(t *testing.T) {
	ds := sample(t)
	f := NewFrame(ds, fullRange(ds), nil, nil)

	sigs := f.Signals()
	require.Len(t, sigs, 2)

	assert.Equal(t, "Alarm", sigs[0].Name)
	assert.Equal(t, DefaultPalette[1], sigs[0].Color)
	// d1 is zero, d3 has no line value
	assert.Equal(t, []Point{{1, 12}, {3, 1234.5}}, sigs[0].Points)

	assert.Equal(t, "Note", sigs[1].Name)
	assert.Equal(t, DefaultPalette[2], sigs[1].Color)
	assert.Equal(t, []Point{{3, 1234.5}}, sigs[1].Points)
}

func TestHiddenSeries(t *testing.T) {
	ds := sample(t)
	hidden := visibility.Set{"Level": {}, "Note": {}}
	f := NewFrame(ds, fullRange(ds), hidden, nil)

	line, ok := f.LineSeries()
	require.True(t, ok)
	assert.True(t, line.Hidden)

	_, _, ok = f.YRange()
	assert.True(t, ok, "a hidden line still defines the axis")

	sigs := f.Signals()
	require.Len(t, sigs, 1)
	assert.Equal(t, "Alarm", sigs[0].Name)

	legend := f.Legend()
	require.Len(t, legend, 3)
	assert.True(t, legend[0].Line)
	assert.True(t, legend[0].Hidden)
	assert.False(t, legend[1].Hidden)
	assert.True(t, legend[2].Hidden)
}

func TestPaletteWraps(t *testing.T) {
	f := Frame{Palette: []string{"#000000", "#ffffff"}}
	assert.Equal(t, "#000000", f.Color(2))
	assert.Equal(t, "#ffffff", f.Color(3))
}

func TestEmptyFrame(t *testing.T) {
	assert.True(t, Frame{}.Empty())
	assert.Equal(t, "No records", Frame{}.Status())
	assert.Nil(t, Frame{}.Signals())
	_, ok := Frame{}.LineSeries()
	assert.False(t, ok)
}

func TestReadout(t *testing.T) {
	ds := sample(t)
	f := NewFrame(ds, fullRange(ds), visibility.Set{"Note": {}}, nil)
	nf := NewNumberFormat(language.English)

	r, ok := f.Readout(3, nf)
	require.True(t, ok)
	assert.Equal(t, "d4", r.Label)
	require.Len(t, r.Values, 2)
	assert.Equal(t, "1,234.5", r.Values[0].Text)
	assert.Equal(t, "d4 | Level: 1,234.5 | Alarm: 2", r.String())

	r, _ = f.Readout(2, nf)
	assert.Equal(t, "-", r.Values[0].Text)

	_, ok = f.Readout(9, nf)
	assert.False(t, ok)
}

func TestNumberFormat(t *testing.T) {
	tr := NewNumberFormat(language.Turkish)
	assert.Equal(t, "1.234,5", tr.Format(1234.5))
	assert.Equal(t, "12", tr.Format(12))

	en := NewNumberFormat(language.English)
	assert.Equal(t, "1,234.57", en.Format(1234.567))
	assert.Equal(t, "1,235", en.Axis(1234.567))
	assert.Equal(t, "3.5", en.Axis(3.54))
	assert.Equal(t, "-", en.Cell(ingest.Null()))
	assert.Equal(t, "abc", en.Cell(ingest.Text("abc")))
}
