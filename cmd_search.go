package main

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/andareed/siftly-sheetchart/ingest"
)

// findLabel returns the first record after from whose index label contains
// query, ignoring case and wrapping past the end.
func findLabel(ds *ingest.Dataset, query string, from int) (int, bool) {
	n := ds.Len()
	q := strings.ToLower(strings.TrimSpace(query))
	if n == 0 || q == "" {
		return 0, false
	}
	for step := 1; step <= n; step++ {
		i := ((from+step)%n + n) % n
		if strings.Contains(strings.ToLower(ds.Record(i).Label()), q) {
			return i, true
		}
	}
	return 0, false
}

func (m *model) searchOnce(query string) tea.Cmd {
	m.ui.searchQuery = strings.TrimSpace(query)
	m.ui.searchFrom = -1
	if m.ui.searchQuery == "" {
		return nil
	}
	return m.searchNext()
}

// searchNext moves the focused chart to the next match after the previous
// one, or after the window centre for a fresh search.
func (m *model) searchNext() tea.Cmd {
	c := m.focused()
	if c == nil || m.ui.searchQuery == "" {
		return nil
	}
	from := m.ui.searchFrom
	if from < 0 || from >= c.Viewport().Len() {
		r := c.Viewport().Range()
		from = r.Start + (r.Count()-1)/2
	}
	i, ok := findLabel(c.Dataset(), m.ui.searchQuery, from)
	if !ok {
		return m.startNotice(fmt.Sprintf("No label matches %q", m.ui.searchQuery), "warn", noticeDuration)
	}
	m.ui.searchFrom = i
	c.Viewport().CenterOn(i)
	return m.startNotice(fmt.Sprintf("%q at record %d", m.ui.searchQuery, i+1), "info", noticeDuration)
}
