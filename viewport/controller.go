// Package viewport keeps the visible index window of a dataset and moves it
// in response to zoom and pan gestures.
package viewport

import (
	"math"
)

const (
	DefaultMinSpan = 10
	DefaultZoomIn  = 0.9
	DefaultZoomOut = 1.1
)

// Options tune the zoom behaviour. Zero values fall back to the defaults.
type Options struct {
	// MinSpan is the smallest number of records a zoom may show.
	MinSpan int
	ZoomIn  float64
	ZoomOut float64
}

func DefaultOptions() Options {
	return Options{MinSpan: DefaultMinSpan, ZoomIn: DefaultZoomIn, ZoomOut: DefaultZoomOut}
}

func (o Options) normalized() Options {
	if o.MinSpan < 1 {
		o.MinSpan = DefaultMinSpan
	}
	if o.ZoomIn <= 0 || o.ZoomIn >= 1 {
		o.ZoomIn = DefaultZoomIn
	}
	if o.ZoomOut <= 1 {
		o.ZoomOut = DefaultZoomOut
	}
	return o
}

// Range is an inclusive record window. An empty dataset has Range{0, -1}.
type Range struct {
	Start int
	End   int
}

// Count is the number of records in the window.
func (r Range) Count() int {
	if r.End < r.Start {
		return 0
	}
	return r.End - r.Start + 1
}

// Span is End-Start.
func (r Range) Span() int { return r.End - r.Start }

func (r Range) Contains(i int) bool { return i >= r.Start && i <= r.End }

// State is a snapshot of the controller.
type State struct {
	Range    Range
	Len      int
	Dragging bool
	Zoomed   bool
}

// Controller owns the visible window over a dataset of n records.
// Degenerate input (no records, zero width) leaves it unchanged.
type Controller struct {
	opts     Options
	n        int
	r        Range
	dragging bool
	anchor   float64
}

func New(n int, opts Options) *Controller {
	c := &Controller{opts: opts.normalized()}
	c.OnDatasetReplaced(n)
	return c
}

func (c *Controller) Options() Options { return c.opts }

func (c *Controller) Len() int { return c.n }

func (c *Controller) Range() Range { return c.r }

func (c *Controller) Dragging() bool { return c.dragging }

func (c *Controller) State() State {
	return State{Range: c.r, Len: c.n, Dragging: c.dragging, Zoomed: c.IsZoomed()}
}

func (c *Controller) full() Range {
	return Range{Start: 0, End: c.n - 1}
}

func (c *Controller) minCount() int {
	return min(c.opts.MinSpan, c.n)
}

// IsZoomed reports whether the window differs from the full range.
func (c *Controller) IsZoomed() bool {
	return c.n > 0 && c.r != c.full()
}

// Zoom scales the window around the record under the pointer. offsetX is
// measured from the left edge of a plot area width units wide. A positive
// deltaY zooms out, a negative one zooms in, and zero leaves the window as is.
func (c *Controller) Zoom(offsetX, width, deltaY float64) State {
	if c.n == 0 || !(width > 0) || deltaY == 0 || math.IsNaN(offsetX) || math.IsNaN(deltaY) {
		return c.State()
	}

	count := c.r.Count()
	factor := c.opts.ZoomIn
	if deltaY > 0 {
		factor = c.opts.ZoomOut
	}
	newCount := clampInt(int(math.Round(float64(count)*factor)), c.minCount(), c.n)

	ratio := clampFloat(offsetX/width, 0, 1)
	center := c.r.Start + int(math.Round(float64(count-1)*ratio))
	start := int(math.Round(float64(center) - float64(newCount-1)*ratio))

	c.r = c.place(start, newCount)
	return c.State()
}

// BeginPan starts a drag at offsetX.
func (c *Controller) BeginPan(offsetX float64) State {
	if c.n == 0 || math.IsNaN(offsetX) {
		return c.State()
	}
	c.dragging = true
	c.anchor = offsetX
	return c.State()
}

// ContinuePan moves the window by the records covered since the last
// applied motion. Dragging right reveals earlier records. Motion smaller
// than one record accumulates until it amounts to a shift.
func (c *Controller) ContinuePan(offsetX, width float64) State {
	if !c.dragging || c.n == 0 || !(width > 0) || math.IsNaN(offsetX) {
		return c.State()
	}

	count := c.r.Count()
	shift := int(math.Round((offsetX - c.anchor) / width * float64(count)))
	if shift == 0 {
		return c.State()
	}
	c.anchor = offsetX
	c.r = c.place(c.r.Start-shift, count)
	return c.State()
}

// EndPan finishes the drag on release.
func (c *Controller) EndPan() State {
	c.dragging = false
	c.anchor = 0
	return c.State()
}

// CancelPan finishes the drag when the pointer leaves the plot.
func (c *Controller) CancelPan() State {
	return c.EndPan()
}

// ResetZoom shows every record.
func (c *Controller) ResetZoom() State {
	c.r = c.full()
	return c.State()
}

// OnDatasetReplaced resets the window for a new dataset of n records and
// discards any drag in progress.
func (c *Controller) OnDatasetReplaced(n int) State {
	if n < 0 {
		n = 0
	}
	c.n = n
	c.r = c.full()
	c.dragging = false
	c.anchor = 0
	return c.State()
}

// SetRange shows the inclusive window [start, end], widened to the minimum
// span and shifted inside the dataset when needed.
func (c *Controller) SetRange(start, end int) State {
	if c.n == 0 {
		return c.State()
	}
	if start > end {
		start, end = end, start
	}
	count := clampInt(end-start+1, c.minCount(), c.n)
	c.r = c.place(start, count)
	return c.State()
}

// CenterOn keeps the window size and centres it on record i.
func (c *Controller) CenterOn(i int) State {
	if c.n == 0 {
		return c.State()
	}
	i = clampInt(i, 0, c.n-1)
	count := c.r.Count()
	c.r = c.place(i-(count-1)/2, count)
	return c.State()
}

// Pan shifts the window by delta records without a drag gesture.
func (c *Controller) Pan(delta int) State {
	if c.n == 0 || delta == 0 {
		return c.State()
	}
	c.r = c.place(c.r.Start+delta, c.r.Count())
	return c.State()
}

// IndexAt maps a pointer offset to the record under it.
func (c *Controller) IndexAt(offsetX, width float64) (int, bool) {
	if c.n == 0 || !(width > 0) || math.IsNaN(offsetX) {
		return 0, false
	}
	ratio := clampFloat(offsetX/width, 0, 1)
	return c.r.Start + int(math.Round(float64(c.r.Count()-1)*ratio)), true
}

// place positions a window of count records at start, shifting it back
// inside [0, n-1] without changing its size.
func (c *Controller) place(start, count int) Range {
	if start < 0 {
		start = 0
	}
	end := start + count - 1
	if end > c.n-1 {
		end = c.n - 1
		start = max(0, end-count+1)
	}
	return Range{Start: start, End: end}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
