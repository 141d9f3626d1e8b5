package dialogs

import tea "github.com/charmbracelet/bubbletea"

// Dialog is the common interface all modal dialogs (Open, Export, Help)
// implement so the model can route messages to whichever one is active.
type Dialog interface {
	Init() tea.Cmd // optional, can return nil
	Update(msg tea.Msg) (Dialog, tea.Cmd)
	View() string

	Focus() tea.Cmd
	Blur()
	IsVisible() bool
	Show()
	Hide()
}
