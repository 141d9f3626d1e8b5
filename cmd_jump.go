package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/andareed/siftly-sheetchart/logging"
)

// jumpToRecord centres the focused chart on record n, counted from 1.
func (m *model) jumpToRecord(n int) tea.Cmd {
	c := m.focused()
	if c == nil {
		return nil
	}
	vp := c.Viewport()
	if n <= 0 || n > vp.Len() {
		return m.startNotice(fmt.Sprintf("Record %d out of bounds", n), "warn", noticeDuration)
	}
	st := vp.CenterOn(n - 1)
	logging.Debugf("jumpToRecord %d -> %d-%d", n, st.Range.Start, st.Range.End)
	return nil
}
