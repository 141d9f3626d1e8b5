package main

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func (m *model) openRangeWindow() {
	c := m.focused()
	if c == nil {
		return
	}
	rw := &m.ui.rangeWindow
	r := c.Viewport().Range()
	rw.open = true
	rw.errorMsg = ""
	rw.chartKey = chartKey(c)
	rw.total = c.Viewport().Len()
	rw.draftStart, rw.draftEnd = r.Start, r.End
	rw.step = defaultRecordStep(rw.total)

	m.updateRangeWindowInputsFromDraft()
	m.setRangeWindowFocus(rangeWindowFocusStart)
	m.ui.mode = modeRangeWindow
}

func (m *model) closeRangeWindow() {
	m.ui.rangeWindow.open = false
	m.ui.rangeWindow.errorMsg = ""
	m.ui.mode = modeView
}

func (m *model) handleRangeWindowKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	rw := &m.ui.rangeWindow

	switch {
	case msg.Type == tea.KeyEsc:
		m.closeRangeWindow()
		return m, nil
	case msg.Type == tea.KeyEnter:
		return m, m.applyRangeWindowFromInputs()
	case rw.focus == rangeWindowFocusScrubber && msg.String() == "r":
		m.resetRangeWindowDraft()
		return m, nil
	case msg.Type == tea.KeyTab:
		m.setRangeWindowFocus((rw.focus + 1) % 3)
		return m, nil
	case msg.Type == tea.KeyShiftTab:
		m.setRangeWindowFocus((rw.focus + 2) % 3)
		return m, nil
	case rw.focus == rangeWindowFocusScrubber && msg.Type == tea.KeyLeft:
		m.shiftRangeWindow(-rw.step)
		return m, nil
	case rw.focus == rangeWindowFocusScrubber && msg.Type == tea.KeyRight:
		m.shiftRangeWindow(rw.step)
		return m, nil
	case rw.focus == rangeWindowFocusScrubber && msg.Type == tea.KeyShiftLeft:
		m.expandRangeWindow(-rw.step)
		return m, nil
	case rw.focus == rangeWindowFocusScrubber && msg.Type == tea.KeyShiftRight:
		m.expandRangeWindow(rw.step)
		return m, nil
	case rw.focus == rangeWindowFocusScrubber && msg.String() == "-":
		m.adjustRangeWindowStep(false)
		return m, nil
	case rw.focus == rangeWindowFocusScrubber && (msg.String() == "+" || msg.String() == "="):
		m.adjustRangeWindowStep(true)
		return m, nil
	}

	var cmd tea.Cmd
	switch rw.focus {
	case rangeWindowFocusStart:
		rw.startInput, cmd = rw.startInput.Update(msg)
	case rangeWindowFocusEnd:
		rw.endInput, cmd = rw.endInput.Update(msg)
	}
	return m, cmd
}

func (m *model) setRangeWindowFocus(focus int) {
	rw := &m.ui.rangeWindow
	m.syncRangeDraftFromInputs()
	rw.focus = focus
	switch focus {
	case rangeWindowFocusStart:
		rw.startInput.Focus()
		rw.endInput.Blur()
	case rangeWindowFocusEnd:
		rw.startInput.Blur()
		rw.endInput.Focus()
	default:
		rw.startInput.Blur()
		rw.endInput.Blur()
	}
}

func (m *model) updateRangeWindowInputsFromDraft() {
	rw := &m.ui.rangeWindow
	rw.startInput.SetValue(strconv.Itoa(rw.draftStart + 1))
	rw.endInput.SetValue(strconv.Itoa(rw.draftEnd + 1))
}

func (m *model) syncRangeDraftFromInputs() {
	rw := &m.ui.rangeWindow
	if rw.total == 0 {
		return
	}
	start, end, err := parseRecordBounds(rw.startInput.Value(), rw.endInput.Value(), rw.total)
	if err == nil {
		rw.draftStart, rw.draftEnd = start, end
	}
}

func (m *model) resetRangeWindowDraft() {
	rw := &m.ui.rangeWindow
	rw.errorMsg = ""
	rw.draftStart, rw.draftEnd = 0, max(0, rw.total-1)
	m.updateRangeWindowInputsFromDraft()
}

func (m *model) applyRangeWindowFromInputs() tea.Cmd {
	rw := &m.ui.rangeWindow
	rw.errorMsg = ""

	c := m.chartByKey(rw.chartKey)
	if c == nil {
		m.closeRangeWindow()
		return m.startNotice("Chart was removed", "warn", noticeDuration)
	}
	start, end, err := parseRecordBounds(rw.startInput.Value(), rw.endInput.Value(), rw.total)
	if err != nil {
		rw.errorMsg = err.Error()
		return nil
	}

	st := c.Viewport().SetRange(start, end)
	m.closeRangeWindow()
	if st.Range.Start != start || st.Range.End != end {
		return m.startNotice(fmt.Sprintf("Window widened to records %d - %d", st.Range.Start+1, st.Range.End+1), "info", noticeDuration)
	}
	return nil
}

func (m *model) shiftRangeWindow(delta int) {
	rw := &m.ui.rangeWindow
	rw.errorMsg = ""
	if rw.total == 0 {
		return
	}
	m.syncRangeDraftFromInputs()
	rw.draftStart, rw.draftEnd = shiftRecordWindow(rw.draftStart, rw.draftEnd, delta, rw.total)
	m.updateRangeWindowInputsFromDraft()
}

func (m *model) expandRangeWindow(delta int) {
	rw := &m.ui.rangeWindow
	rw.errorMsg = ""
	if rw.total == 0 {
		return
	}
	m.syncRangeDraftFromInputs()
	rw.draftStart, rw.draftEnd = expandRecordWindow(rw.draftStart, rw.draftEnd, delta, rw.total)
	m.updateRangeWindowInputsFromDraft()
}

func (m *model) adjustRangeWindowStep(increase bool) {
	rw := &m.ui.rangeWindow
	step := rw.step
	if increase {
		step *= 2
	} else {
		step /= 2
	}
	rw.step = clamp(step, rangeWindowStepMin, max(rangeWindowStepMin, rw.total))
}

func (m *model) rangeWindowDrawerView(width int) string {
	rw := &m.ui.rangeWindow
	innerWidth := max(0, width-2)
	lineStyle := lipgloss.NewStyle().Width(innerWidth)

	startLine := fmt.Sprintf("Start: %s", rw.startInput.View())
	endLine := fmt.Sprintf("End:   %s", rw.endInput.View())
	scrubber := recordScrubberLine(rw.draftStart, rw.draftEnd, rw.total, innerWidth)
	if rw.focus == rangeWindowFocusScrubber {
		scrubber = chartTitleFocusStyle.Render(scrubber)
	}
	helpLine := fmt.Sprintf("tab: next  enter: apply  esc: cancel  scrubber: ←/→ move %d  shift+←/→ expand  -/+ step  r reset", rw.step)
	errorLine := ""
	if rw.errorMsg != "" {
		errorLine = errorStyle.Render("Error: " + rw.errorMsg)
	}

	lines := []string{
		lineStyle.Render(startLine),
		lineStyle.Render(endLine),
		lineStyle.Render(scrubber),
		lineStyle.Render(hintStyle.Render(helpLine)),
		lineStyle.Render(errorLine),
	}
	return rangeWindowArea.Width(width).Render(strings.Join(lines, "\n"))
}
