package dialogs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/andareed/siftly-sheetchart/logging"
)

// --- Messages ---------------------------------------------------------------

type (
	OpenConfirmedMsg struct{ Path string }
	OpenCanceledMsg  struct{}
)

// Open picks a spreadsheet, either by browsing or by typing a path.
// Tab switches between the two.
type Open struct {
	picker  filepicker.Model
	input   textinput.Model
	typing  bool
	visible bool
	errMsg  string
}

// pickerRows is the number of directory entries shown at once.
const pickerRows = 12

// NewOpenDialog browses dir, listing only files with an allowed extension.
func NewOpenDialog(dir string, allowed []string) *Open {
	fp := filepicker.New()
	fp.AllowedTypes = append([]string(nil), allowed...)
	fp.ShowPermissions = false
	if dir == "" {
		dir, _ = os.Getwd()
	}
	fp.CurrentDirectory = dir

	ti := textinput.New()
	ti.Prompt = "Open: "
	ti.Placeholder = filepath.Join(dir, "data.xlsx")
	ti.CharLimit = 512
	ti.Width = 44

	d := &Open{picker: fp, input: ti, visible: true}
	// Size the list to the box once; later terminal resizes must not grow it.
	d.picker, _ = d.picker.Update(tea.WindowSizeMsg{Width: boxWidth, Height: pickerRows + 5})
	d.picker.AutoHeight = false
	return d
}

func (d *Open) Init() tea.Cmd { return d.picker.Init() }

// Typing reports whether the path input is active.
func (d Open) Typing() bool { return d.typing }

func (d *Open) toggle() tea.Cmd {
	d.typing = !d.typing
	d.errMsg = ""
	if d.typing {
		return d.input.Focus()
	}
	d.input.Blur()
	return nil
}

func (d *Open) confirm(path string) tea.Cmd {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil
	}
	if !filepath.IsAbs(path) && !strings.HasPrefix(path, "~") {
		path = filepath.Join(d.picker.CurrentDirectory, path)
	}
	if strings.HasPrefix(path, "~") {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	logging.Debugf("OpenDialog: confirmed %s", path)
	return func() tea.Msg { return OpenConfirmedMsg{Path: path} }
}

func (d *Open) Update(msg tea.Msg) (Dialog, tea.Cmd) {
	if !d.visible {
		return d, nil
	}
	if m, ok := msg.(tea.KeyMsg); ok {
		switch m.String() {
		case "esc":
			logging.Debug("OpenDialog: canceled")
			return d, func() tea.Msg { return OpenCanceledMsg{} }
		case "tab":
			return d, d.toggle()
		case "enter":
			if d.typing {
				return d, d.confirm(d.input.Value())
			}
		}
		if d.typing {
			var cmd tea.Cmd
			d.input, cmd = d.input.Update(msg)
			return d, cmd
		}
	}

	var cmd tea.Cmd
	d.picker, cmd = d.picker.Update(msg)
	if ok, path := d.picker.DidSelectFile(msg); ok {
		return d, tea.Batch(cmd, d.confirm(path))
	}
	if ok, path := d.picker.DidSelectDisabledFile(msg); ok {
		d.errMsg = fmt.Sprintf("%s is not a supported spreadsheet", filepath.Base(path))
	}
	return d, cmd
}

func (d Open) View() string {
	if !d.visible {
		return ""
	}
	title := lipgloss.NewStyle().Bold(true).Render("Open spreadsheet")

	var body, help string
	if d.typing {
		body = d.input.View()
		help = "enter to open • tab to browse • esc to cancel"
	} else {
		body = d.picker.CurrentDirectory + "\n\n" + d.picker.View()
		help = "enter to open • tab to type a path • esc to cancel"
	}
	parts := []string{title, body}
	if d.errMsg != "" {
		parts = append(parts, lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Render(d.errMsg))
	}
	parts = append(parts, hint(help))
	return boxStyle().Render(strings.Join(parts, "\n\n"))
}

func (d *Open) Show() { d.visible = true }

func (d *Open) Hide() {
	d.visible = false
	d.input.Blur()
}

func (d *Open) Focus() tea.Cmd {
	if d.typing {
		return d.input.Focus()
	}
	return nil
}

func (d *Open) Blur()          { d.input.Blur() }
func (d Open) IsVisible() bool { return d.visible }
