package main

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/andareed/siftly-sheetchart/clipboard"
	"github.com/andareed/siftly-sheetchart/logging"
	"github.com/andareed/siftly-sheetchart/render"
)

// hoverReadout is the readout for the record under the pointer on the chart
// drawn under key, if the pointer is over it.
func (m *model) hoverReadout(key string, f render.Frame) (render.Readout, bool) {
	h := m.ui.hover
	if !h.ok || h.key != key {
		return render.Readout{}, false
	}
	return f.Readout(h.index-f.Range.Start, m.numbers)
}

func renderReadout(r render.Readout) string {
	parts := make([]string, 0, len(r.Values)+1)
	parts = append(parts, readoutStyle.Bold(true).Render(r.Label))
	for _, v := range r.Values {
		swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(v.Color)).Render(eyeOpen)
		parts = append(parts, swatch+" "+readoutStyle.Render(v.Name+": "+v.Text))
	}
	return strings.Join(parts, statusStyle.Render("  │  "))
}

func (m *model) copyReadout() tea.Cmd {
	c := m.chartByKey(m.ui.hover.key)
	if c == nil || !m.ui.hover.ok {
		return m.startNotice("Point at a record to copy its values", "warn", noticeDuration)
	}
	r, ok := m.hoverReadout(m.ui.hover.key, m.frameFor(c))
	if !ok {
		return m.startNotice("Point at a record to copy its values", "warn", noticeDuration)
	}
	if err := clipboard.Copy(r.String()); err != nil {
		logging.Warnf("copyReadout: %v", err)
		return m.startNotice("Copy failed: "+err.Error(), "error", noticeDuration)
	}
	return m.startNotice("Copied "+r.Label, "success", noticeDuration)
}
