package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/andareed/siftly-sheetchart/visibility"
)

func TestTerminalDraw(t *testing.T) {
	ds := sample(t)
	f := NewFrame(ds, fullRange(ds), nil, nil)
	term := Terminal{Numbers: NewNumberFormat(language.English)}

	out, geom := term.Draw(f, 60, 14)
	require.NotEmpty(t, out)

	assert.Greater(t, geom.PlotLeft, 0)
	assert.Greater(t, geom.PlotWidth, 0)
	assert.LessOrEqual(t, geom.PlotLeft+geom.PlotWidth, 60)
	assert.True(t, geom.InPlot(geom.PlotLeft))
	assert.False(t, geom.InPlot(geom.PlotLeft-1))
	assert.Equal(t, 0.0, geom.PlotOffset(geom.PlotLeft))

	assert.Contains(t, out, string(signalRune))
	assert.Contains(t, out, "d1")
}

func TestTerminalDrawHiddenSignals(t *testing.T) {
	ds := sample(t)
	f := NewFrame(ds, fullRange(ds), visibility.Set{"Alarm": {}, "Note": {}}, nil)

	out, _ := Terminal{}.Draw(f, 60, 14)
	assert.NotContains(t, out, string(signalRune))
}

func TestTerminalDrawTooSmall(t *testing.T) {
	ds := sample(t)
	f := NewFrame(ds, fullRange(ds), nil, nil)

	_, geom := Terminal{}.Draw(f, 8, 3)
	assert.Equal(t, 0, geom.PlotWidth)

	out, geom := Terminal{}.Draw(Frame{}, 40, 10)
	assert.Equal(t, 0, geom.PlotWidth)
	assert.Contains(t, out, "No data to show")
}

func TestWritePNG(t *testing.T) {
	ds := sample(t)
	f := NewFrame(ds, fullRange(ds), nil, nil)

	var buf bytes.Buffer
	err := WritePNG(&buf, f, PNGOptions{Width: 640, Height: 320, Title: "levels", Numbers: NewNumberFormat(language.Turkish)})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(buf.String(), "\x89PNG"))
}

func TestWritePNGAllHidden(t *testing.T) {
	ds := sample(t)
	f := NewFrame(ds, fullRange(ds), visibility.Set{"Level": {}, "Alarm": {}, "Note": {}}, nil)

	var buf bytes.Buffer
	require.NoError(t, WritePNG(&buf, f, PNGOptions{Width: 320, Height: 200}))
	assert.NotZero(t, buf.Len())
}

func TestWritePNGNothingToPlot(t *testing.T) {
	var buf bytes.Buffer
	assert.ErrorIs(t, WritePNG(&buf, Frame{}, PNGOptions{}), ErrNothingToPlot)
}
