package dialogs

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestExportResolve(t *testing.T) {
	d := NewExportDialog(ExportPNG, "chart.png", "/tmp/out")
	assert.Equal(t, filepath.Join("/tmp/out", "chart.png"), d.resolve(""))
	assert.Equal(t, filepath.Join("/tmp/out", "levels.png"), d.resolve("levels"))
	assert.Equal(t, "/abs/levels.csv", d.resolve("/abs/levels.csv"))

	csv := NewExportDialog(ExportCSV, "", "")
	assert.Equal(t, "", csv.resolve("  "))
	assert.Equal(t, "window.csv", csv.resolve("window"))
}

func TestExportConfirm(t *testing.T) {
	d := NewExportDialog(ExportCSV, "window.csv", "")
	_, cmd := d.Update(keyMsg("enter"))
	require.NotNil(t, cmd)
	assert.Equal(t, ExportConfirmedMsg{Kind: ExportCSV, Path: "window.csv"}, cmd())

	_, cmd = d.Update(keyMsg("esc"))
	require.NotNil(t, cmd)
	assert.Equal(t, ExportCanceledMsg{}, cmd())
}

func TestExportKind(t *testing.T) {
	assert.Equal(t, ".png", ExportPNG.Ext())
	assert.Equal(t, ".csv", ExportCSV.Ext())
	assert.Equal(t, "CSV", ExportCSV.String())
}

func TestHelpCloses(t *testing.T) {
	d := NewHelpDialog(nil, MouseHelp)
	assert.True(t, d.IsVisible())
	assert.Contains(t, d.View(), "Mouse")
	assert.Contains(t, d.View(), "wheel")

	_, cmd := d.Update(keyMsg("esc"))
	require.NotNil(t, cmd)
	assert.Equal(t, HelpClosedMsg{}, cmd())
	assert.False(t, d.IsVisible())
	assert.Empty(t, d.View())
}

func TestOpenTypedPath(t *testing.T) {
	dir := t.TempDir()
	d := NewOpenDialog(dir, []string{".csv"})
	assert.False(t, d.Typing())

	d.Update(keyMsg("tab"))
	assert.True(t, d.Typing())
	for _, r := range "data.csv" {
		d.Update(keyMsg(string(r)))
	}
	_, cmd := d.Update(keyMsg("enter"))
	require.NotNil(t, cmd)
	assert.Equal(t, OpenConfirmedMsg{Path: filepath.Join(dir, "data.csv")}, cmd())

	_, cmd = d.Update(keyMsg("esc"))
	require.NotNil(t, cmd)
	assert.Equal(t, OpenCanceledMsg{}, cmd())
}

func TestCenter(t *testing.T) {
	out := Center("x", 5, 3)
	assert.Contains(t, out, "x")
	assert.Len(t, strings.Split(out, "\n"), 3)
}
