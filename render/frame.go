// Package render draws the visible window of a chart, either into the
// terminal or as a PNG image.
package render

import (
	"fmt"

	"github.com/andareed/siftly-sheetchart/ingest"
	"github.com/andareed/siftly-sheetchart/viewport"
	"github.com/andareed/siftly-sheetchart/visibility"
)

// DefaultPalette is the series colour cycle.
var DefaultPalette = []string{
	"#3B82F6",
	"#10B981",
	"#8B5CF6",
	"#F59E0B",
	"#EF4444",
	"#06B6D4",
	"#EC4899",
	"#6366F1",
}

// Frame is everything a renderer needs to draw one chart.
// The first value header is drawn as the line; the remaining value headers
// are signals, drawn as markers on the line wherever they are set.
type Frame struct {
	Records      []ingest.Record
	IndexHeader  string
	ValueHeaders []string
	Hidden       visibility.Set
	Palette      []string
	Range        viewport.Range
	Total        int
}

// NewFrame slices ds to r.
func NewFrame(ds *ingest.Dataset, r viewport.Range, hidden visibility.Set, palette []string) Frame {
	if len(palette) == 0 {
		palette = DefaultPalette
	}
	return Frame{
		Records:      ds.Slice(r.Start, r.End),
		IndexHeader:  ds.IndexHeader(),
		ValueHeaders: ds.ValueHeaders(),
		Hidden:       hidden,
		Palette:      palette,
		Range:        r,
		Total:        ds.Len(),
	}
}

// Series describes one value column for legends.
type Series struct {
	Name   string
	Color  string
	Hidden bool
	Line   bool
}

// Point is a value at a record offset inside the frame.
type Point struct {
	Offset int
	Value  float64
}

// Signal is a set of markers to place on the line.
type Signal struct {
	Series
	Points []Point
}

func (f Frame) Empty() bool {
	return len(f.Records) == 0 || len(f.ValueHeaders) == 0
}

// Color returns the colour of value header k.
func (f Frame) Color(k int) string {
	palette := f.Palette
	if len(palette) == 0 {
		palette = DefaultPalette
	}
	return palette[k%len(palette)]
}

func (f Frame) hidden(name string) bool {
	return f.Hidden.Has(name)
}

// Legend lists every value series with its colour and state.
func (f Frame) Legend() []Series {
	out := make([]Series, len(f.ValueHeaders))
	for k, name := range f.ValueHeaders {
		out[k] = Series{Name: name, Color: f.Color(k), Hidden: f.hidden(name), Line: k == 0}
	}
	return out
}

// LineSeries is the series drawn as the line, if any.
func (f Frame) LineSeries() (Series, bool) {
	if len(f.ValueHeaders) == 0 {
		return Series{}, false
	}
	name := f.ValueHeaders[0]
	return Series{Name: name, Color: f.Color(0), Hidden: f.hidden(name), Line: true}, true
}

// LinePoints are the numeric values of the line series. Records without a
// number are skipped and the line connects across them.
func (f Frame) LinePoints() []Point {
	if len(f.ValueHeaders) == 0 {
		return nil
	}
	var out []Point
	for i, rec := range f.Records {
		if v, ok := numberAt(rec, 1); ok {
			out = append(out, Point{Offset: i, Value: v})
		}
	}
	return out
}

// Signals returns the visible signal series. A marker sits at the line
// value of every record whose signal cell is set and non-zero.
func (f Frame) Signals() []Signal {
	if len(f.ValueHeaders) < 2 {
		return nil
	}
	var out []Signal
	for k := 1; k < len(f.ValueHeaders); k++ {
		name := f.ValueHeaders[k]
		if f.hidden(name) {
			continue
		}
		sig := Signal{Series: Series{Name: name, Color: f.Color(k)}}
		for i, rec := range f.Records {
			if !active(cellAt(rec, k+1)) {
				continue
			}
			if y, ok := numberAt(rec, 1); ok {
				sig.Points = append(sig.Points, Point{Offset: i, Value: y})
			}
		}
		out = append(out, sig)
	}
	return out
}

// YRange is the value range of the line. Hidden or not, the line defines
// the axis.
func (f Frame) YRange() (lo, hi float64, ok bool) {
	for _, p := range f.LinePoints() {
		if !ok {
			lo, hi, ok = p.Value, p.Value, true
			continue
		}
		lo = min(lo, p.Value)
		hi = max(hi, p.Value)
	}
	return lo, hi, ok
}

// Label is the index text of the record at offset.
func (f Frame) Label(offset int) string {
	if offset < 0 || offset >= len(f.Records) {
		return ""
	}
	return f.Records[offset].Label()
}

// Status is the "Showing a - b / N records" line, 1-based.
func (f Frame) Status() string {
	if f.Total == 0 {
		return "No records"
	}
	return fmt.Sprintf("Showing %d - %d / %d records", f.Range.Start+1, f.Range.End+1, f.Total)
}

func cellAt(rec ingest.Record, col int) ingest.Cell {
	if col < 0 || col >= len(rec) {
		return ingest.Null()
	}
	return rec[col]
}

func numberAt(rec ingest.Record, col int) (float64, bool) {
	c := cellAt(rec, col)
	if !c.IsNumber() {
		return 0, false
	}
	return c.Number, true
}

func active(c ingest.Cell) bool {
	switch c.Kind {
	case ingest.KindNumber:
		return c.Number != 0
	case ingest.KindText:
		return c.Text != ""
	case ingest.KindTime:
		return true
	}
	return false
}
