package dialogs

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/andareed/siftly-sheetchart/logging"
)

// HelpClosedMsg is sent when the help dialog is dismissed.
type HelpClosedMsg struct{}

// MouseHelp describes the pointer gestures shown under the key bindings.
var MouseHelp = []key.Binding{
	key.NewBinding(key.WithHelp("wheel", "zoom in/out around the pointer")),
	key.NewBinding(key.WithHelp("drag", "pan the visible window")),
	key.NewBinding(key.WithHelp("click legend", "show or hide a series")),
	key.NewBinding(key.WithHelp("hover", "read the values under the pointer")),
}

// Help lists key bindings and mouse gestures.
type Help struct {
	visible  bool
	bindings []key.Binding
	mouse    []key.Binding
}

func (d Help) Init() tea.Cmd { return nil }

// NewHelpDialog creates a new help dialog showing the given bindings.
func NewHelpDialog(bindings, mouse []key.Binding) *Help {
	return &Help{
		visible:  true,
		bindings: bindings,
		mouse:    mouse,
	}
}

func (d *Help) Update(msg tea.Msg) (Dialog, tea.Cmd) {
	if m, ok := msg.(tea.KeyMsg); ok {
		switch m.String() {
		case "enter", "esc", "?", "q":
			logging.Debug("HelpDialog: closed")
			d.visible = false
			return d, func() tea.Msg { return HelpClosedMsg{} }
		}
	}
	return d, nil
}

func helpLines(bindings []key.Binding, width int) []string {
	lines := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		if h.Key == "" {
			continue
		}
		desc := wordwrap.String(h.Desc, max(10, width-15))
		desc = strings.ReplaceAll(desc, "\n", "\n"+strings.Repeat(" ", 15))
		lines = append(lines, fmt.Sprintf("%-14s %s", h.Key, desc))
	}
	return lines
}

func (d Help) View() string {
	if !d.visible {
		return ""
	}
	inner := boxWidth - 4
	title := lipgloss.NewStyle().Bold(true)

	var b strings.Builder
	b.WriteString(title.Render("Keys"))
	b.WriteString("\n")
	b.WriteString(strings.Join(helpLines(d.bindings, inner), "\n"))
	if len(d.mouse) > 0 {
		b.WriteString("\n\n")
		b.WriteString(title.Render("Mouse"))
		b.WriteString("\n")
		b.WriteString(strings.Join(helpLines(d.mouse, inner), "\n"))
	}

	content := fmt.Sprintf("%s\n\n%s", b.String(), hint("enter/esc to return"))
	return boxStyle().Render(content)
}

func (d *Help) Show() { d.visible = true }

func (d *Help) Hide() { d.visible = false }

func (d *Help) Focus() tea.Cmd { return nil }
func (d *Help) Blur()          {}
func (d Help) IsVisible() bool { return d.visible }
