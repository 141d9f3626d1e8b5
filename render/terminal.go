package render

import (
	"math"

	"github.com/NimbleMarkets/ntcharts/canvas"
	"github.com/NimbleMarkets/ntcharts/canvas/graph"
	"github.com/NimbleMarkets/ntcharts/linechart"
	"github.com/charmbracelet/lipgloss"
)

const signalRune = '●'

// Geometry locates the plot area inside a drawn chart, in cells.
type Geometry struct {
	Width      int
	Height     int
	PlotLeft   int
	PlotWidth  int
	PlotHeight int
}

// PlotOffset converts a column inside the drawn chart into an offset from
// the left edge of the plot area.
func (g Geometry) PlotOffset(x int) float64 {
	return float64(x - g.PlotLeft)
}

// InPlot reports whether column x falls inside the plot area.
func (g Geometry) InPlot(x int) bool {
	return x >= g.PlotLeft && x < g.PlotLeft+g.PlotWidth
}

// Terminal draws frames as braille line charts.
type Terminal struct {
	AxisStyle  lipgloss.Style
	LabelStyle lipgloss.Style
	EmptyStyle lipgloss.Style
	Numbers    NumberFormat
}

// Draw renders f into a w x h block of text.
func (t Terminal) Draw(f Frame, w, h int) (string, Geometry) {
	geom := Geometry{Width: w, Height: h}
	if w < 12 || h < 5 {
		return t.placeholder("", w, h), geom
	}
	if f.Empty() {
		return t.placeholder("No data to show", w, h), geom
	}

	lo, hi, ok := f.YRange()
	if !ok {
		lo, hi = 0, 1
	}
	if lo == hi {
		lo, hi = lo-1, hi+1
	}
	maxX := float64(max(len(f.Records)-1, 1))

	lc := linechart.New(w, h, 0, maxX, lo, hi)
	lc.AxisStyle = t.AxisStyle
	lc.LabelStyle = t.LabelStyle
	lc.XLabelFormatter = func(_ int, v float64) string {
		return f.Label(int(math.Round(v)))
	}
	lc.YLabelFormatter = func(_ int, v float64) string {
		return t.Numbers.Axis(v)
	}
	lc.SetYStep(2)
	lc.SetXStep(labelStep(f))

	if lc.GraphWidth() <= 0 || lc.GraphHeight() <= 0 {
		return t.placeholder("", w, h), geom
	}
	lc.DrawXYAxisAndLabel()

	if line, ok := f.LineSeries(); ok && !line.Hidden {
		t.drawLine(&lc, f.LinePoints(), maxX, lo, hi, lipgloss.NewStyle().Foreground(lipgloss.Color(line.Color)))
	}
	for _, sig := range f.Signals() {
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(sig.Color))
		for _, p := range sig.Points {
			lc.DrawRuneWithStyle(canvas.Float64Point{X: float64(p.Offset), Y: p.Value}, signalRune, style)
		}
	}

	geom.PlotLeft = lc.Origin().X + 1
	geom.PlotWidth = lc.GraphWidth()
	geom.PlotHeight = lc.GraphHeight()
	return lc.View(), geom
}

// drawLine draws all points into one braille grid so neighbouring segments
// share cells.
func (t Terminal) drawLine(lc *linechart.Model, pts []Point, maxX, lo, hi float64, style lipgloss.Style) {
	if len(pts) == 0 {
		return
	}
	grid := graph.NewBrailleGrid(lc.GraphWidth(), lc.GraphHeight(), 0, maxX, lo, hi)
	prev := grid.GridPoint(canvas.Float64Point{X: float64(pts[0].Offset), Y: pts[0].Value})
	grid.Set(prev)
	for _, p := range pts[1:] {
		next := grid.GridPoint(canvas.Float64Point{X: float64(p.Offset), Y: p.Value})
		for _, gp := range graph.GetLinePoints(prev, next) {
			grid.Set(gp)
		}
		prev = next
	}
	graph.DrawBraillePatterns(&lc.Canvas, canvas.Point{X: lc.Origin().X + 1, Y: 0}, grid.BraillePatterns(), style)
}

func (t Terminal) placeholder(msg string, w, h int) string {
	if w <= 0 || h <= 0 {
		return ""
	}
	return t.EmptyStyle.
		Width(w).
		Height(h).
		Align(lipgloss.Center, lipgloss.Center).
		Render(msg)
}

// labelStep spaces x labels by the widest label plus a gap.
func labelStep(f Frame) int {
	widest := 0
	for _, i := range []int{0, len(f.Records) / 2, len(f.Records) - 1} {
		widest = max(widest, len([]rune(f.Label(i))))
	}
	return max(widest+2, 6)
}
