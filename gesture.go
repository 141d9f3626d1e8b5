package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/andareed/siftly-sheetchart/charts"
	"github.com/andareed/siftly-sheetchart/logging"
)

const wheelDelta = 100

func chartZoneID(key string) string { return "chart-" + key }

func legendZoneID(key string, k int) string { return fmt.Sprintf("legend-%s-%d", key, k) }

// handleMouse routes pointer events: legend clicks toggle series, the wheel
// zooms around the pointer, a left drag pans, and plain motion updates the
// hover readout.
func (m *model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if m.ui.dragKey != "" {
		m.continueDrag(msg)
		return nil
	}

	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		if cmd, ok := m.legendClick(msg); ok {
			return cmd
		}
	}

	for i, c := range m.data.charts.All() {
		key := chartKey(c)
		z := m.zones.Get(chartZoneID(key))
		if !z.InBounds(msg) {
			continue
		}
		lay, ok := m.ui.layouts[key]
		if !ok || lay.geom.PlotWidth <= 0 {
			return nil
		}
		x, _ := z.Pos(msg)
		offset := lay.geom.PlotOffset(x)
		width := float64(lay.geom.PlotWidth)
		vp := c.Viewport()

		switch {
		case msg.Button == tea.MouseButtonWheelUp:
			vp.Zoom(offset, width, -wheelDelta)
		case msg.Button == tea.MouseButtonWheelDown:
			vp.Zoom(offset, width, wheelDelta)
		case msg.Button == tea.MouseButtonLeft && msg.Action == tea.MouseActionPress:
			m.ui.focus = i
			if lay.geom.InPlot(x) {
				vp.BeginPan(offset)
				m.ui.dragKey = key
				logging.Debugf("drag start chart=%s x=%d", key, x)
			}
		}
		m.updateHover(key, c, offset, width, lay.geom.InPlot(x))
		return nil
	}

	m.ui.hover = hoverState{}
	return nil
}

func (m *model) continueDrag(msg tea.MouseMsg) {
	key := m.ui.dragKey
	c := m.chartByKey(key)
	if c == nil {
		m.ui.dragKey = ""
		return
	}
	vp := c.Viewport()
	z := m.zones.Get(chartZoneID(key))
	lay := m.ui.layouts[key]

	switch {
	case msg.Action == tea.MouseActionRelease:
		vp.EndPan()
		m.ui.dragKey = ""
	case !z.InBounds(msg):
		// leaving the chart ends the drag
		vp.CancelPan()
		m.ui.dragKey = ""
		m.ui.hover = hoverState{}
		logging.Debugf("drag cancelled chart=%s", key)
	case msg.Action == tea.MouseActionMotion && lay.geom.PlotWidth > 0:
		x, _ := z.Pos(msg)
		offset := lay.geom.PlotOffset(x)
		width := float64(lay.geom.PlotWidth)
		vp.ContinuePan(offset, width)
		m.updateHover(key, c, offset, width, lay.geom.InPlot(x))
	}
}

func (m *model) legendClick(msg tea.MouseMsg) (tea.Cmd, bool) {
	for _, c := range m.data.charts.All() {
		key := chartKey(c)
		for k := range c.Dataset().ValueHeaders() {
			if m.zones.Get(legendZoneID(key, k)).InBounds(msg) {
				return m.toggleSeries(c, k), true
			}
		}
	}
	return nil, false
}

func (m *model) updateHover(key string, c *charts.Chart, offset, width float64, inPlot bool) {
	if !inPlot {
		m.ui.hover = hoverState{}
		return
	}
	idx, ok := c.Viewport().IndexAt(offset, width)
	m.ui.hover = hoverState{key: key, index: idx, ok: ok}
}
