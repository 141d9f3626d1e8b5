package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/termenv"

	"github.com/andareed/siftly-sheetchart/charts"
	"github.com/andareed/siftly-sheetchart/dialogs"
	"github.com/andareed/siftly-sheetchart/logging"
	"github.com/andareed/siftly-sheetchart/render"
)

const (
	minChartHeight = 9
	chartChrome    = 3 // title, legend and status lines
)

// footerView renders the 2-line footer.
func (m *model) footerView(width int) string {
	st := footerState{
		Mode:   "NORMAL",
		Charts: m.data.charts.Len(),
		Legend: "(? help · o open · p pin · x remove · tab focus · t window · e png · s csv)",
	}
	switch m.ui.mode {
	case modeCommand:
		st.Mode = strings.Trim(m.commandBadge(m.ui.command.cmd), "[]")
		st.ModeInput = m.activeCommandLine()
	case modeRangeWindow:
		st.Mode = "WINDOW"
	}
	if m.data.loading {
		st.Mode = "LOADING"
	}

	if c := m.focused(); c != nil {
		r := c.Viewport().Range()
		st.FileName = c.Dataset().Source()
		st.Zoomed = c.Viewport().IsZoomed()
		st.RangeStart, st.RangeEnd, st.Total = r.Start, r.End, c.Viewport().Len()
	} else if m.data.path != "" {
		st.FileName = filepath.Base(m.data.path)
	}

	if m.ui.noticeMsg != "" {
		st.StatusMessage = noticeText(m.ui.noticeMsg, m.ui.noticeType)
	} else {
		st.StatusMessage = m.commandHintsLine(m.ui.command.cmd)
	}

	if logging.IsDebugMode() {
		st.Legend += fmt.Sprintf(" | dbg term=%dx%d focus=%d drag=%q hover=%v",
			m.terminalWidth, m.terminalHeight, m.ui.focus, m.ui.dragKey, m.ui.hover.ok)
	}

	return renderFooter(width, st, defaultFooterStyles())
}

func (m *model) View() string {
	if !m.ready {
		return "loading..."
	}

	if m.dialogVisible() {
		w, h := m.terminalWidth, m.terminalHeight
		return lipgloss.Place(
			w, h,
			lipgloss.Center, lipgloss.Center,
			m.activeDialog.View(),
			lipgloss.WithWhitespaceChars(" "),
			lipgloss.WithWhitespaceBackground(lipgloss.Color("236")),
		)
	}

	contentW := max(0, m.terminalWidth-appstyle.GetHorizontalMargins())
	contentH := max(0, m.terminalHeight-appstyle.GetVerticalMargins())

	footer := m.footerView(contentW)
	avail := contentH - lipgloss.Height(footer)

	var drawer string
	if m.ui.rangeWindow.open {
		drawer = m.rangeWindowDrawerView(contentW - 1)
		avail -= lipgloss.Height(drawer)
	}

	var body string
	if all := m.data.charts.All(); len(all) == 0 {
		body = m.dropzoneView(contentW, max(1, avail))
	} else {
		body = m.chartsView(all, contentW, max(1, avail))
	}

	parts := []string{body}
	if drawer != "" {
		parts = append(parts, drawer)
	}
	parts = append(parts, footer) // always
	return m.zones.Scan(appstyle.Render(lipgloss.JoinVertical(lipgloss.Left, parts...)))
}

// visibleCharts picks the run of charts that fits in avail rows and
// contains the focused one.
func visibleCharts(n, focus, avail int) (first, last, per int) {
	if n == 0 {
		return 0, 0, 0
	}
	per = max(minChartHeight, avail/n)
	fit := clamp(avail/per, 1, n)
	first = clamp(focus-fit+1, 0, n-fit)
	return first, first + fit, per
}

func (m *model) chartsView(all []*charts.Chart, width, avail int) string {
	m.ui.layouts = make(map[string]chartLayout, len(all))
	focus := clamp(m.ui.focus, 0, len(all)-1)
	first, last, per := visibleCharts(len(all), focus, avail)

	blocks := make([]string, 0, last-first)
	for i := first; i < last; i++ {
		h := per
		if i == last-1 {
			h = max(per, avail-per*(last-first-1))
		}
		blocks = append(blocks, m.chartView(all[i], i == focus, width, h))
	}
	return lipgloss.NewStyle().Height(avail).MaxHeight(avail).Render(lipgloss.JoinVertical(lipgloss.Left, blocks...))
}

func chartTitle(c *charts.Chart) string {
	if c.Pinned() {
		return "Chart " + charts.ShortID(c.ID())
	}
	return "Draft"
}

func (m *model) chartView(c *charts.Chart, focused bool, width, height int) string {
	key := chartKey(c)
	innerW := max(0, width-1)
	frame := m.frameFor(c)

	titleStyle, block := chartTitleStyle, chartBlock
	if focused {
		titleStyle, block = chartTitleFocusStyle, chartFocusBlock
	}
	title := titleStyle.Render(chartTitle(c)) + statusStyle.Render(" · "+c.Dataset().Source())
	if c.Viewport().IsZoomed() {
		title += hintStyle.Render("  [zoomed · r show all]")
	}

	canvas, geom := m.term.Draw(frame, innerW, max(1, height-chartChrome))
	m.ui.layouts[key] = chartLayout{geom: geom}

	status := statusStyle.Render(frame.Status())
	if r, ok := m.hoverReadout(key, frame); ok {
		status += statusStyle.Render("  │  ") + renderReadout(r)
	}

	lines := []string{
		truncate.String(title, uint(innerW)),
		m.legendView(key, frame),
		m.zones.Mark(chartZoneID(key), canvas),
		truncate.String(status, uint(innerW)),
	}
	return block.Render(strings.Join(lines, "\n"))
}

func (m *model) legendView(key string, f render.Frame) string {
	items := make([]string, 0, len(f.ValueHeaders))
	for k, s := range f.Legend() {
		eye, style := eyeOpen, lipgloss.NewStyle().Foreground(lipgloss.Color(s.Color))
		if s.Hidden {
			eye, style = eyeClosed, legendHiddenStyle
		}
		label := fmt.Sprintf("%s %s", eye, s.Name)
		if k < 9 {
			label = fmt.Sprintf("%d %s", k+1, label)
		}
		items = append(items, m.zones.Mark(legendZoneID(key, k), style.Render(label)))
	}
	return strings.Join(items, "  ")
}

func (m *model) dropzoneView(width, height int) string {
	var content string
	switch {
	case m.data.loading:
		content = m.spinner.View() + " Reading " + filepath.Base(m.data.path) + "…"
	case m.data.loadErr != "":
		content = errorStyle.Render(wordwrap.String(m.data.loadErr, 48)) +
			"\n\n" + hintStyle.Render("press o to choose another file")
	default:
		content = "No spreadsheet loaded\n\n" +
			hintStyle.Render("press o to open an .xlsx, .xls or .csv file")
	}
	return dialogs.Center(dropzoneStyle.Render(content), width, height)
}

func fgSeq(c lipgloss.Color) string {
	return colorSeq(c, false)
}

func bgSeq(c lipgloss.Color) string {
	return colorSeq(c, true)
}

var resetSeq = termenv.CSI + termenv.ResetSeq + "m"

func colorSeq(c lipgloss.Color, bg bool) string {
	value := string(c)
	if value == "" {
		if bg {
			return termenv.CSI + "49m"
		}
		return termenv.CSI + "39m"
	}
	profile := lipgloss.ColorProfile()
	tc := profile.Color(value)
	if tc == nil {
		return ""
	}
	return termenv.CSI + tc.Sequence(bg) + "m"
}
