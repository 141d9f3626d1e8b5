package dialogs

import "github.com/charmbracelet/lipgloss"

// boxStyle is the frame shared by every dialog. The border background
// matches the overlay whitespace so the box sits cleanly on it.
func boxStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("252")).
		BorderBackground(lipgloss.Color("236")).
		Padding(1, 2).
		Width(boxWidth)
}

const boxWidth = 60

func hint(s string) string {
	return lipgloss.NewStyle().Faint(true).Render(s)
}

// Center places s in the middle of a width x height block.
func Center(s string, width, height int) string {
	box := lipgloss.NewStyle().Width(width).Height(height).Align(lipgloss.Center, lipgloss.Center)
	return box.Render(s)
}
