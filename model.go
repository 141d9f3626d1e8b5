package main

import (
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"github.com/andareed/siftly-sheetchart/charts"
	"github.com/andareed/siftly-sheetchart/config"
	"github.com/andareed/siftly-sheetchart/dialogs"
	"github.com/andareed/siftly-sheetchart/ingest"
	"github.com/andareed/siftly-sheetchart/logging"
	"github.com/andareed/siftly-sheetchart/render"
)

type mode int

const (
	modeView mode = iota
	modeCommand
	modeRangeWindow
)

type model struct {
	data dataState
	ui   uiState

	keys         Keymap
	zones        *zone.Manager
	term         render.Terminal
	numbers      render.NumberFormat
	spinner      spinner.Model
	activeDialog dialogs.Dialog

	initialPath    string
	ready          bool
	terminalWidth  int
	terminalHeight int
}

func newModel(cfg *config.Config, initialPath string) (*model, error) {
	loc, err := cfg.IngestLocale()
	if err != nil {
		return nil, err
	}
	ids, err := cfg.IDGenerator()
	if err != nil {
		return nil, err
	}

	nf := render.NewNumberFormat(loc.Language)
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := &model{
		data: dataState{
			charts:   charts.NewManager(ids, cfg.ViewportOptions()),
			locale:   loc,
			palette:  cfg.Chart.Palette,
			exportWH: [2]int{cfg.Export.Width, cfg.Export.Height},
		},
		ui: uiState{
			mode:        modeView,
			layouts:     make(map[string]chartLayout),
			rangeWindow: newRangeWindowUI(),
		},
		keys:  Keys,
		zones: zone.New(),
		term: render.Terminal{
			AxisStyle:  axisStyle,
			LabelStyle: labelStyle,
			EmptyStyle: hintStyle,
			Numbers:    nf,
		},
		numbers:     nf,
		spinner:     sp,
		initialPath: initialPath,
	}
	if initialPath != "" {
		m.data.lastDir = filepath.Dir(initialPath)
	}
	return m, nil
}

func (m *model) Init() tea.Cmd {
	logging.Infof("sheetchart: Initialised")
	if m.initialPath != "" {
		return m.openFile(m.initialPath)
	}
	return nil
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.terminalWidth = msg.Width
		m.terminalHeight = msg.Height
		m.ready = true
		return m, nil

	case clearNoticeMsg:
		m.clearNotice(msg.id)
		return m, nil

	case spinner.TickMsg:
		if !m.data.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case fileLoadedMsg:
		return m, m.handleFileLoaded(msg)

	case exportDoneMsg:
		return m, m.handleExportDone(msg)

	case dialogs.OpenConfirmedMsg:
		m.closeDialog()
		return m, m.openFile(msg.Path)

	case dialogs.ExportConfirmedMsg:
		m.closeDialog()
		return m, m.exportFocused(msg.Kind, msg.Path)

	case dialogs.OpenCanceledMsg, dialogs.ExportCanceledMsg, dialogs.HelpClosedMsg:
		m.closeDialog()
		return m, nil

	case tea.MouseMsg:
		if m.dialogVisible() {
			return m.updateDialog(msg)
		}
		return m, m.handleMouse(msg)

	case tea.KeyMsg:
		if m.dialogVisible() {
			return m.updateDialog(msg)
		}
		return m.updateKey(msg)
	}

	// directory listings and cursor blinks for the active dialog
	if m.activeDialog != nil {
		return m.updateDialog(msg)
	}
	return m, nil
}

func (m *model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.ui.mode {
	case modeCommand:
		return m.handleCommandKey(msg)
	case modeRangeWindow:
		return m.handleRangeWindowKey(msg)
	}
	return m.handleViewModeKey(msg)
}

func (m *model) handleViewModeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if len(msg.Runes) == 1 {
		if cmd := CommandFromPrefix(msg.Runes[0]); cmd != CmdNone {
			if m.focused() == nil {
				return m, m.startNotice("Open a spreadsheet first", "warn", noticeDuration)
			}
			m.ui.mode = modeCommand
			m.ui.command = CommandInput{cmd: cmd}
			return m, nil
		}
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.OpenHelp):
		return m, m.openDialog(dialogs.NewHelpDialog(m.keys.Legend(), dialogs.MouseHelp))
	case key.Matches(msg, m.keys.Open):
		if m.data.loading {
			return m, nil
		}
		return m, m.openDialog(dialogs.NewOpenDialog(m.data.lastDir, ingest.Extensions))
	case key.Matches(msg, m.keys.Pin):
		return m, m.pinDraft()
	case key.Matches(msg, m.keys.Remove):
		return m, m.removeFocused()
	case key.Matches(msg, m.keys.NextChart):
		m.moveFocus(1)
		return m, nil
	case key.Matches(msg, m.keys.PrevChart):
		m.moveFocus(-1)
		return m, nil
	}

	c := m.focused()
	if c == nil {
		return m, nil
	}
	vp := c.Viewport()
	count := vp.Range().Count()

	switch {
	case key.Matches(msg, m.keys.ZoomIn):
		m.zoomAtCentre(c, -1)
	case key.Matches(msg, m.keys.ZoomOut):
		m.zoomAtCentre(c, 1)
	case key.Matches(msg, m.keys.PanLeft):
		vp.Pan(-max(1, count/10))
	case key.Matches(msg, m.keys.PanRight):
		vp.Pan(max(1, count/10))
	case key.Matches(msg, m.keys.PageLeft):
		vp.Pan(-count)
	case key.Matches(msg, m.keys.PageRight):
		vp.Pan(count)
	case key.Matches(msg, m.keys.ResetZoom):
		vp.ResetZoom()
	case key.Matches(msg, m.keys.ToggleSeries):
		return m, m.toggleSeries(c, int(msg.Runes[0]-'1'))
	case key.Matches(msg, m.keys.RangeWindow):
		m.openRangeWindow()
	case key.Matches(msg, m.keys.SearchNext):
		return m, m.searchNext()
	case key.Matches(msg, m.keys.ExportPNG):
		return m, m.openDialog(dialogs.NewExportDialog(dialogs.ExportPNG, m.exportName(c, dialogs.ExportPNG), m.data.lastDir))
	case key.Matches(msg, m.keys.ExportCSV):
		return m, m.openDialog(dialogs.NewExportDialog(dialogs.ExportCSV, m.exportName(c, dialogs.ExportCSV), m.data.lastDir))
	case key.Matches(msg, m.keys.CopyReadout):
		return m, m.copyReadout()
	}
	return m, nil
}

// --- dialogs ----------------------------------------------------------------

func (m *model) dialogVisible() bool {
	return m.activeDialog != nil && m.activeDialog.IsVisible()
}

func (m *model) openDialog(d dialogs.Dialog) tea.Cmd {
	m.activeDialog = d
	d.Show()
	return tea.Batch(d.Init(), d.Focus())
}

func (m *model) closeDialog() {
	if m.activeDialog != nil {
		m.activeDialog.Hide()
	}
	m.activeDialog = nil
}

func (m *model) updateDialog(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.activeDialog, cmd = m.activeDialog.Update(msg)
	return m, cmd
}

// --- charts -----------------------------------------------------------------

// chartKey names a chart in zone ids and layouts.
func chartKey(c *charts.Chart) string {
	if c.Pinned() {
		return string(c.ID())
	}
	return "draft"
}

func (m *model) chartByKey(k string) *charts.Chart {
	for _, c := range m.data.charts.All() {
		if chartKey(c) == k {
			return c
		}
	}
	return nil
}

func (m *model) focused() *charts.Chart {
	all := m.data.charts.All()
	if len(all) == 0 {
		return nil
	}
	m.ui.focus = clamp(m.ui.focus, 0, len(all)-1)
	return all[m.ui.focus]
}

func (m *model) moveFocus(delta int) {
	n := len(m.data.charts.All())
	if n == 0 {
		m.ui.focus = 0
		return
	}
	m.ui.focus = ((m.ui.focus+delta)%n + n) % n
}

func (m *model) clampFocus() {
	m.ui.focus = clamp(m.ui.focus, 0, max(0, len(m.data.charts.All())-1))
}

func (m *model) focusKey(k string) {
	for i, c := range m.data.charts.All() {
		if chartKey(c) == k {
			m.ui.focus = i
			return
		}
	}
}

func (m *model) frameFor(c *charts.Chart) render.Frame {
	return render.NewFrame(c.Dataset(), c.Viewport().Range(), c.Series().Snapshot(), m.data.palette)
}

func (m *model) plotWidth(c *charts.Chart) float64 {
	if lay, ok := m.ui.layouts[chartKey(c)]; ok && lay.geom.PlotWidth > 0 {
		return float64(lay.geom.PlotWidth)
	}
	return 100
}

func (m *model) zoomAtCentre(c *charts.Chart, deltaY float64) {
	w := m.plotWidth(c)
	st := c.Viewport().Zoom(w/2, w, deltaY)
	logging.Debugf("zoom key chart=%s range=%d-%d", chartKey(c), st.Range.Start, st.Range.End)
}

func (m *model) toggleSeries(c *charts.Chart, k int) tea.Cmd {
	headers := c.Dataset().ValueHeaders()
	if k < 0 || k >= len(headers) {
		return m.startNotice(fmt.Sprintf("No series %d", k+1), "warn", noticeDuration)
	}
	m.data.charts.ToggleSeries(c.ID(), headers[k])
	state := "shown"
	if c.Series().IsHidden(headers[k]) {
		state = "hidden"
	}
	return m.startNotice(fmt.Sprintf("%s %s", headers[k], state), "info", noticeDuration)
}

func (m *model) pinDraft() tea.Cmd {
	id, ok := m.data.charts.PinDraft()
	if !ok {
		return m.startNotice("No draft chart to pin", "warn", noticeDuration)
	}
	m.focusKey(string(id))
	logging.Infof("pinned chart %s", id)
	return m.startNotice("Pinned chart "+charts.ShortID(id), "success", noticeDuration)
}

func (m *model) removeFocused() tea.Cmd {
	c := m.focused()
	if c == nil {
		return nil
	}
	if !c.Pinned() {
		m.data.charts.ClearDraft()
		m.clampFocus()
		return m.startNotice("Draft chart closed", "info", noticeDuration)
	}
	m.data.charts.Remove(c.ID())
	m.clampFocus()
	logging.Infof("removed chart %s", c.ID())
	return m.startNotice("Removed chart "+charts.ShortID(c.ID()), "info", noticeDuration)
}
