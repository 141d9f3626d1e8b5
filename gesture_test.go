package main

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scanned renders the view and waits for the zone worker to record id.
func scanned(t *testing.T, m *model, ids ...string) {
	t.Helper()
	m.View()
	require.Eventually(t, func() bool {
		for _, id := range ids {
			if m.zones.Get(id).IsZero() {
				return false
			}
		}
		return true
	}, time.Second, 5*time.Millisecond)
}

func mouse(m *model, x, y int, button tea.MouseButton, action tea.MouseAction) {
	m.Update(tea.MouseMsg{X: x, Y: y, Button: button, Action: action})
}

// plotCentre returns screen coordinates in the middle of the draft plot.
func plotCentre(t *testing.T, m *model) (*zone.ZoneInfo, int, int) {
	t.Helper()
	z := m.zones.Get(chartZoneID("draft"))
	lay, ok := m.ui.layouts["draft"]
	require.True(t, ok)
	require.Greater(t, lay.geom.PlotWidth, 0)
	return z, z.StartX + lay.geom.PlotLeft + lay.geom.PlotWidth/2, z.StartY
}

func TestWheelZoomsAroundPointer(t *testing.T) {
	m := newTestModel(t)
	loaded(t, m, 200)
	scanned(t, m, chartZoneID("draft"))
	_, x, y := plotCentre(t, m)
	vp := m.focused().Viewport()

	mouse(m, x, y, tea.MouseButtonWheelUp, tea.MouseActionPress)
	require.True(t, vp.IsZoomed())
	r := vp.Range()
	assert.Equal(t, 180, r.Count())
	assert.Greater(t, r.Start, 0)
	assert.Less(t, r.End, 199)

	mouse(m, x, y, tea.MouseButtonWheelDown, tea.MouseActionPress)
	assert.Greater(t, vp.Range().Count(), 180)
}

func TestDragPansAndReleaseEnds(t *testing.T) {
	m := newTestModel(t)
	loaded(t, m, 200)
	scanned(t, m, chartZoneID("draft"))
	z, x, y := plotCentre(t, m)
	vp := m.focused().Viewport()

	mouse(m, x, y, tea.MouseButtonWheelUp, tea.MouseActionPress)
	before := vp.Range()
	require.Greater(t, before.Start, 0)

	mouse(m, x, y, tea.MouseButtonLeft, tea.MouseActionPress)
	assert.Equal(t, "draft", m.ui.dragKey)
	assert.True(t, vp.Dragging())

	right := min(x+m.ui.layouts["draft"].geom.PlotWidth/4, z.EndX)
	mouse(m, right, y, tea.MouseButtonLeft, tea.MouseActionMotion)
	after := vp.Range()
	assert.Less(t, after.Start, before.Start)
	assert.Equal(t, before.Count(), after.Count())

	mouse(m, right, y, tea.MouseButtonLeft, tea.MouseActionRelease)
	assert.Empty(t, m.ui.dragKey)
	assert.False(t, vp.Dragging())
	assert.Equal(t, after, vp.Range())
}

func TestDragLeavingChartCancels(t *testing.T) {
	m := newTestModel(t)
	loaded(t, m, 200)
	scanned(t, m, chartZoneID("draft"))
	z, x, y := plotCentre(t, m)
	vp := m.focused().Viewport()

	mouse(m, x, y, tea.MouseButtonWheelUp, tea.MouseActionPress)
	mouse(m, x, y, tea.MouseButtonLeft, tea.MouseActionPress)
	require.True(t, vp.Dragging())
	held := vp.Range()

	mouse(m, x, z.EndY+1, tea.MouseButtonLeft, tea.MouseActionMotion)
	assert.Empty(t, m.ui.dragKey)
	assert.False(t, vp.Dragging())
	assert.Equal(t, held, vp.Range())
	assert.False(t, m.ui.hover.ok)

	// later motion back inside does not resume the pan
	mouse(m, x+5, y, tea.MouseButtonLeft, tea.MouseActionMotion)
	assert.Equal(t, held, vp.Range())
}

func TestHoverTracksRecordUnderPointer(t *testing.T) {
	m := newTestModel(t)
	loaded(t, m, 200)
	scanned(t, m, chartZoneID("draft"))
	z, x, y := plotCentre(t, m)

	mouse(m, x, y, tea.MouseButtonNone, tea.MouseActionMotion)
	require.True(t, m.ui.hover.ok)
	assert.Equal(t, "draft", m.ui.hover.key)
	assert.InDelta(t, 100, m.ui.hover.index, 5)

	mouse(m, x, z.EndY+1, tea.MouseButtonNone, tea.MouseActionMotion)
	assert.False(t, m.ui.hover.ok)
}

func TestLegendClickTogglesSeries(t *testing.T) {
	m := newTestModel(t)
	loaded(t, m, 30)
	id := legendZoneID("draft", 1)
	scanned(t, m, id)
	z := m.zones.Get(id)
	series := m.focused().Series()

	mouse(m, z.StartX, z.StartY, tea.MouseButtonLeft, tea.MouseActionPress)
	assert.True(t, series.IsHidden("Alarm"))
	assert.Equal(t, "Alarm hidden", m.ui.noticeMsg)
	assert.Empty(t, m.ui.dragKey)

	mouse(m, z.StartX, z.StartY, tea.MouseButtonLeft, tea.MouseActionPress)
	assert.False(t, series.IsHidden("Alarm"))
	assert.Equal(t, "Alarm shown", m.ui.noticeMsg)
}
