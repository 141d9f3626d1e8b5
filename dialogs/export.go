package dialogs

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/andareed/siftly-sheetchart/logging"
)

// ExportKind selects what gets written.
type ExportKind int

const (
	ExportPNG ExportKind = iota
	ExportCSV
)

func (k ExportKind) String() string {
	if k == ExportCSV {
		return "CSV"
	}
	return "PNG"
}

// Ext is the file extension for the kind, with the dot.
func (k ExportKind) Ext() string {
	return "." + strings.ToLower(k.String())
}

// --- Messages ---------------------------------------------------------------

type (
	ExportConfirmedMsg struct {
		Kind ExportKind
		Path string
	}
	ExportCanceledMsg struct{}
)

type Export struct {
	kind    ExportKind
	input   textinput.Model
	visible bool
	// names without a directory land here
	lastDir string
}

func (d Export) Init() tea.Cmd { return d.input.Focus() }

// NewExportDialog asks for a file name, prefilled with defaultName.
func NewExportDialog(kind ExportKind, defaultName, lastDir string) *Export {
	ti := textinput.New()
	ti.Placeholder = defaultName
	ti.Prompt = fmt.Sprintf("Export %s as: ", kind)
	ti.CharLimit = 256
	ti.Width = 40
	if defaultName != "" {
		ti.SetValue(defaultName)
	}
	return &Export{kind: kind, input: ti, visible: true, lastDir: lastDir}
}

// Kind is the export format this dialog was opened for.
func (d Export) Kind() ExportKind { return d.kind }

// resolve turns the typed value into the final path.
func (d Export) resolve(val string) string {
	val = strings.TrimSpace(val)
	if val == "" {
		val = d.input.Placeholder
	}
	if val == "" {
		return ""
	}
	if filepath.Ext(val) == "" {
		val += d.kind.Ext()
	}
	if d.lastDir != "" && !filepath.IsAbs(val) && filepath.Dir(val) == "." {
		val = filepath.Join(d.lastDir, filepath.Base(val))
	}
	return val
}

func (d *Export) Update(msg tea.Msg) (Dialog, tea.Cmd) {
	if !d.visible {
		return d, nil
	}
	if m, ok := msg.(tea.KeyMsg); ok {
		switch m.String() {
		case "enter":
			path := d.resolve(d.input.Value())
			if path == "" {
				return d, nil
			}
			logging.Debugf("ExportDialog: confirmed %s to %s", d.kind, path)
			kind := d.kind
			return d, func() tea.Msg { return ExportConfirmedMsg{Kind: kind, Path: path} }
		case "esc":
			logging.Debug("ExportDialog: canceled")
			return d, func() tea.Msg { return ExportCanceledMsg{} }
		}
	}
	var cmd tea.Cmd
	d.input, cmd = d.input.Update(msg)
	return d, cmd
}

func (d Export) View() string {
	if !d.visible {
		return ""
	}
	content := fmt.Sprintf("%s\n\n%s", d.input.View(), hint("enter to export • esc to cancel"))
	return boxStyle().Render(content)
}

func (d *Export) Show() {
	d.visible = true
	d.input.Focus()
}

func (d *Export) Hide() {
	d.visible = false
	d.input.Blur()
}

func (d *Export) Focus() tea.Cmd { return d.input.Focus() }
func (d *Export) Blur()          { d.input.Blur() }
func (d Export) IsVisible() bool { return d.visible }
