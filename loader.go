package main

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/andareed/siftly-sheetchart/ingest"
	"github.com/andareed/siftly-sheetchart/logging"
)

type fileLoadedMsg struct {
	path  string
	ds    *ingest.Dataset
	empty bool // zero-byte file, nothing to chart
	err   error
}

// loadFileCmd reads and normalizes path off the update loop.
func loadFileCmd(path string, loc ingest.Locale) tea.Cmd {
	return func() tea.Msg {
		if _, err := ingest.DetectFormat(path); err != nil {
			return fileLoadedMsg{path: path, err: err}
		}
		if info, err := os.Stat(path); err == nil && info.Size() == 0 {
			return fileLoadedMsg{path: path, empty: true}
		}
		ds, err := ingest.LoadFile(path, loc)
		return fileLoadedMsg{path: path, ds: ds, err: err}
	}
}

// openFile starts loading path unless a load is already running.
func (m *model) openFile(path string) tea.Cmd {
	if m.data.loading {
		logging.Debugf("openFile: ignoring %s, still loading %s", path, m.data.path)
		return nil
	}
	logging.Infof("openFile: %s", path)
	m.data.loading = true
	m.data.loadErr = ""
	m.data.path = path
	m.data.lastDir = filepath.Dir(path)
	return tea.Batch(m.spinner.Tick, loadFileCmd(path, m.data.locale))
}

func (m *model) handleFileLoaded(msg fileLoadedMsg) tea.Cmd {
	m.data.loading = false
	name := filepath.Base(msg.path)

	switch {
	case msg.err != nil:
		m.data.loadErr = ingest.UserMessage(msg.err)
		logging.Warnf("load %s failed: %v", msg.path, msg.err)
		return m.startNotice(m.data.loadErr, "error", 2*noticeDuration)

	case msg.empty:
		logging.Infof("load %s: empty file, draft cleared", msg.path)
		m.data.charts.ClearDraft()
		m.clampFocus()
		return m.startNotice(name+" is empty", "warn", noticeDuration)
	}

	c := m.data.charts.SetDraft(msg.ds)
	m.focusKey(chartKey(c))
	m.ui.hover = hoverState{}
	logging.Infof("load %s: %d records, headers %v", msg.path, msg.ds.Len(), msg.ds.Headers())
	return m.startNotice(fmt.Sprintf("Loaded %d records from %s", msg.ds.Len(), name), "success", noticeDuration)
}
