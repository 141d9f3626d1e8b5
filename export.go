package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/andareed/siftly-sheetchart/charts"
	"github.com/andareed/siftly-sheetchart/dialogs"
	"github.com/andareed/siftly-sheetchart/logging"
	"github.com/andareed/siftly-sheetchart/render"
)

type exportDoneMsg struct {
	kind dialogs.ExportKind
	path string
	err  error
}

// WriteFrameCSV writes the records of f with the index column first and
// every visible series after it.
func WriteFrameCSV(w io.Writer, f render.Frame) error {
	cw := csv.NewWriter(w)

	header := []string{f.IndexHeader}
	var cols []int
	for k, name := range f.ValueHeaders {
		if f.Hidden.Has(name) {
			continue
		}
		header = append(header, name)
		cols = append(cols, k+1)
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for i, rec := range f.Records {
		out := make([]string, 0, len(header))
		out = append(out, rec.Label())
		for _, col := range cols {
			if col < len(rec) {
				out = append(out, rec[col].String())
			} else {
				out = append(out, "")
			}
		}
		if err := cw.Write(out); err != nil {
			return fmt.Errorf("write record %d: %w", f.Range.Start+i+1, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}

func writeExportFile(kind dialogs.ExportKind, path string, f render.Frame, opts render.PNGOptions) (err error) {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("open export file: %w", err)
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close export file: %w", cerr)
		}
		if err != nil {
			os.Remove(path)
		}
	}()

	if kind == dialogs.ExportCSV {
		return WriteFrameCSV(out, f)
	}
	return render.WritePNG(out, f, opts)
}

func (m *model) pngOptions(title string) render.PNGOptions {
	return render.PNGOptions{
		Width:   m.data.exportWH[0],
		Height:  m.data.exportWH[1],
		Title:   title,
		Numbers: m.numbers,
	}
}

// exportName suggests a file name for the focused chart.
func (m *model) exportName(c *charts.Chart, kind dialogs.ExportKind) string {
	base := strings.TrimSuffix(c.Dataset().Source(), filepath.Ext(c.Dataset().Source()))
	if base == "" {
		base = "chart"
	}
	suffix := "draft"
	if c.Pinned() {
		suffix = charts.ShortID(c.ID())
	}
	r := c.Viewport().Range()
	return fmt.Sprintf("%s-%s-%d-%d%s", base, suffix, r.Start+1, r.End+1, kind.Ext())
}

// exportFocused writes the visible window of the focused chart. The frame is
// taken now so later gestures do not change what gets written.
func (m *model) exportFocused(kind dialogs.ExportKind, path string) tea.Cmd {
	c := m.focused()
	if c == nil {
		return m.startNotice("Nothing to export", "warn", noticeDuration)
	}
	f := m.frameFor(c)
	opts := m.pngOptions(c.Dataset().Source())
	m.data.lastDir = filepath.Dir(path)
	return func() tea.Msg {
		err := writeExportFile(kind, path, f, opts)
		return exportDoneMsg{kind: kind, path: path, err: err}
	}
}

func (m *model) handleExportDone(msg exportDoneMsg) tea.Cmd {
	if msg.err != nil {
		logging.Errorf("export %s to %s: %v", msg.kind, msg.path, msg.err)
		return m.startNotice(fmt.Sprintf("Export failed: %v", msg.err), "error", 2*noticeDuration)
	}
	logging.Infof("exported %s to %s", msg.kind, msg.path)
	return m.startNotice(fmt.Sprintf("Exported %s to %s", msg.kind, msg.path), "success", noticeDuration)
}
