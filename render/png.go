package render

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// ErrNothingToPlot is returned when the frame has no numeric line values.
var ErrNothingToPlot = errors.New("nothing to plot in the visible range")

const maxXTicks = 8

// PNGOptions size the exported image.
type PNGOptions struct {
	Width   int
	Height  int
	Title   string
	Numbers NumberFormat
}

// pointStyle renders markers only, without a connecting line.
func pointStyle(col drawing.Color) chart.Style {
	return chart.Style{
		StrokeWidth: 0,
		StrokeColor: drawing.ColorTransparent,
		DotWidth:    4,
		DotColor:    col,
	}
}

func hexColor(s string) drawing.Color {
	return drawing.ColorFromHex(strings.TrimPrefix(s, "#"))
}

// WritePNG renders f with go-chart and writes the image to w.
func WritePNG(w io.Writer, f Frame, opts PNGOptions) error {
	if f.Empty() {
		return ErrNothingToPlot
	}
	pts := f.LinePoints()
	if len(pts) == 0 {
		return ErrNothingToPlot
	}

	xs := make([]float64, len(pts))
	ys := make([]float64, len(pts))
	for i, p := range pts {
		xs[i] = float64(p.Offset)
		ys[i] = p.Value
	}
	if len(xs) == 1 {
		// go-chart needs a non-empty x range
		xs = append(xs, xs[0]+1)
		ys = append(ys, ys[0])
	}

	line, _ := f.LineSeries()
	lineStyle := chart.Style{StrokeWidth: 2, StrokeColor: hexColor(line.Color)}
	name := line.Name
	if line.Hidden {
		// still drawn, transparent, so the chart keeps its axes
		lineStyle = chart.Style{StrokeWidth: 1, StrokeColor: drawing.ColorTransparent}
		name = ""
	}
	series := []chart.Series{
		chart.ContinuousSeries{Name: name, XValues: xs, YValues: ys, Style: lineStyle},
	}
	for _, sig := range f.Signals() {
		if len(sig.Points) == 0 {
			continue
		}
		sx := make([]float64, len(sig.Points))
		sy := make([]float64, len(sig.Points))
		for i, p := range sig.Points {
			sx[i] = float64(p.Offset)
			sy[i] = p.Value
		}
		series = append(series, chart.ContinuousSeries{
			Name:    sig.Name,
			XValues: sx,
			YValues: sy,
			Style:   pointStyle(hexColor(sig.Color)),
		})
	}

	lo, hi, _ := f.YRange()
	if lo == hi {
		lo, hi = lo-1, hi+1
	}
	nf := opts.Numbers

	ch := chart.Chart{
		Title:      opts.Title,
		Width:      opts.Width,
		Height:     opts.Height,
		Background: chart.Style{Padding: chart.Box{Top: 24, Left: 16, Right: 24, Bottom: 24}},
		XAxis: chart.XAxis{
			Name:  f.IndexHeader,
			Range: &chart.ContinuousRange{Min: 0, Max: max(float64(len(f.Records)-1), xs[len(xs)-1])},
			Ticks: xTicks(f),
		},
		YAxis: chart.YAxis{
			Range: &chart.ContinuousRange{Min: lo, Max: hi},
			ValueFormatter: func(v any) string {
				if fv, ok := v.(float64); ok {
					return nf.Axis(fv)
				}
				return fmt.Sprint(v)
			},
		},
		Series: series,
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}

	if err := ch.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}
	return nil
}

// xTicks labels up to maxXTicks evenly spaced records.
func xTicks(f Frame) []chart.Tick {
	n := len(f.Records)
	if n == 0 {
		return nil
	}
	step := max(1, (n+maxXTicks-1)/maxXTicks)
	var ticks []chart.Tick
	for i := 0; i < n; i += step {
		ticks = append(ticks, chart.Tick{Value: float64(i), Label: f.Label(i)})
	}
	return ticks
}
