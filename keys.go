package main

import (
	"github.com/charmbracelet/bubbles/key"
)

type Keymap struct {
	Quit         key.Binding
	Open         key.Binding
	Pin          key.Binding
	Remove       key.Binding
	NextChart    key.Binding
	PrevChart    key.Binding
	ZoomIn       key.Binding
	ZoomOut      key.Binding
	PanLeft      key.Binding
	PanRight     key.Binding
	PageLeft     key.Binding
	PageRight    key.Binding
	ResetZoom    key.Binding
	ToggleSeries key.Binding
	RangeWindow  key.Binding
	Jump         key.Binding
	Search       key.Binding
	SearchNext   key.Binding
	ExportPNG    key.Binding
	ExportCSV    key.Binding
	CopyReadout  key.Binding
	OpenHelp     key.Binding
}

var Keys = Keymap{
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	Open: key.NewBinding(
		key.WithKeys("o"),
		key.WithHelp("o", "open a spreadsheet"),
	),
	Pin: key.NewBinding(
		key.WithKeys("p"),
		key.WithHelp("p", "pin the draft chart"),
	),
	Remove: key.NewBinding(
		key.WithKeys("x"),
		key.WithHelp("x", "remove the focused chart"),
	),
	NextChart: key.NewBinding(
		key.WithKeys("tab", "j", "down"),
		key.WithHelp("tab/j", "focus next chart"),
	),
	PrevChart: key.NewBinding(
		key.WithKeys("shift+tab", "k", "up"),
		key.WithHelp("shift+tab/k", "focus previous chart"),
	),
	ZoomIn: key.NewBinding(
		key.WithKeys("+", "="),
		key.WithHelp("+", "zoom in"),
	),
	ZoomOut: key.NewBinding(
		key.WithKeys("-", "_"),
		key.WithHelp("-", "zoom out"),
	),
	PanLeft: key.NewBinding(
		key.WithKeys("h", "left"),
		key.WithHelp("h/←", "pan left"),
	),
	PanRight: key.NewBinding(
		key.WithKeys("l", "right"),
		key.WithHelp("l/→", "pan right"),
	),
	PageLeft: key.NewBinding(
		key.WithKeys("H", "pgup"),
		key.WithHelp("H/pgup", "pan left one window"),
	),
	PageRight: key.NewBinding(
		key.WithKeys("L", "pgdown"),
		key.WithHelp("L/pgdown", "pan right one window"),
	),
	ResetZoom: key.NewBinding(
		key.WithKeys("r", "0"),
		key.WithHelp("r", "show all records"),
	),
	ToggleSeries: key.NewBinding(
		key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
		key.WithHelp("1-9", "show/hide series"),
	),
	RangeWindow: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "set the record window"),
	),
	Jump: key.NewBinding(
		key.WithKeys(":"),
		key.WithHelp(":", "jump to record"),
	),
	Search: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "search index labels"),
	),
	SearchNext: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "next search match"),
	),
	ExportPNG: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "export chart as PNG"),
	),
	ExportCSV: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "export visible records as CSV"),
	),
	CopyReadout: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy hovered values"),
	),
	OpenHelp: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help / keys"),
	),
}

func (k Keymap) Legend() []key.Binding {
	return []key.Binding{
		k.Open,
		k.Pin,
		k.Remove,
		k.NextChart,
		k.PrevChart,
		k.ZoomIn,
		k.ZoomOut,
		k.PanLeft,
		k.PanRight,
		k.PageLeft,
		k.PageRight,
		k.ResetZoom,
		k.ToggleSeries,
		k.RangeWindow,
		k.Jump,
		k.Search,
		k.SearchNext,
		k.ExportPNG,
		k.ExportCSV,
		k.CopyReadout,
		k.Quit,
	}
}
