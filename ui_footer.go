package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type footerState struct {
	Mode      string
	ModeInput string

	FileName string

	Charts int
	Zoomed bool

	RangeStart int
	RangeEnd   int
	Total      int

	StatusMessage string
	Legend        string
}

type footerStyles struct {
	BarBG      lipgloss.Color
	StatusBG   lipgloss.Color
	ModePillBG lipgloss.Color
	ModePillFG lipgloss.Color
	FileNameFG lipgloss.Color
	TextFG     lipgloss.Color
	DimFG      lipgloss.Color
	StatusFG   lipgloss.Color
	LegendFG   lipgloss.Color
}

func defaultFooterStyles() footerStyles {
	return footerStyles{
		BarBG:      lipgloss.Color("#2b2b2b"),
		StatusBG:   lipgloss.Color("#000000"),
		ModePillBG: lipgloss.Color("#ff9f1c"),
		ModePillFG: lipgloss.Color("#000000"),
		FileNameFG: lipgloss.Color("#e0e0e0"),
		TextFG:     lipgloss.Color("#cfcfcf"),
		DimFG:      lipgloss.Color("#a0a0a0"),
		StatusFG:   lipgloss.Color("#9a9a9a"),
		LegendFG:   lipgloss.Color("#b0b0b0"),
	}
}

func renderFooter(width int, st footerState, styles footerStyles) string {
	if width <= 0 {
		return ""
	}
	if st.Mode == "" {
		st.Mode = "NORMAL"
	}
	if st.Legend == "" {
		st.Legend = "(? help · o open · p pin)"
	}
	st.Charts = max(0, st.Charts)
	st.Total = max(0, st.Total)

	line1 := renderControlBar(width, st, styles)
	line2 := renderStatusBar(width, st, styles)
	return line1 + "\n" + line2
}

func recordsLabel(st footerState) string {
	if st.Total == 0 {
		return " Records 0/0"
	}
	return fmt.Sprintf(" Records %d-%d/%d", st.RangeStart+1, st.RangeEnd+1, st.Total)
}

func chartsLabel(st footerState) string {
	zoomed := "no"
	if st.Zoomed {
		zoomed = "yes"
	}
	return fmt.Sprintf("[CHARTS: %d] · [ZOOMED: %s]", st.Charts, zoomed)
}

func renderControlBar(width int, st footerState, styles footerStyles) string {
	gapW := 1

	rightPlain := truncatePlain(recordsLabel(st), width)
	rightW := runeWidth(rightPlain)

	leftW := max(0, width-rightW)

	modeColW := clamp(leftW/4, 10, 24)
	statusColW := runeWidth(chartsLabel(st))
	fileColW := leftW - modeColW - statusColW - 2*gapW
	if fileColW < 0 {
		deficit := -fileColW
		if statusColW > 10 {
			shrink := min(deficit, statusColW-10)
			statusColW -= shrink
			deficit -= shrink
		}
		if deficit > 0 && modeColW > 6 {
			shrink := min(deficit, modeColW-6)
			modeColW -= shrink
		}
		fileColW = leftW - modeColW - statusColW - 2*gapW
		if fileColW < 0 {
			modeColW = max(0, modeColW+fileColW)
			fileColW = 0
		}
	}

	// shrink the pill to its text and give the rest to the file segment
	if pillW := runeWidth(st.Mode) + 2; pillW < modeColW {
		fileColW += modeColW - pillW
		modeColW = pillW
	}

	modeSeg := renderModeSegment(modeColW, st, styles)
	fileSeg := renderFileSegment(fileColW, st, styles)
	statusSeg := renderChartsSegment(statusColW, st, styles)

	left := modeSeg + strings.Repeat(" ", gapW) + fileSeg + strings.Repeat(" ", gapW) + statusSeg
	if actual := modeColW + fileColW + statusColW + 2*gapW; actual < leftW {
		left += strings.Repeat(" ", leftW-actual)
	}

	return applyBar(left+rightPlain, styles.BarBG, styles.TextFG)
}

func renderStatusBar(width int, st footerState, styles footerStyles) string {
	legendPlain := truncatePlain(st.Legend, width)
	leftW := max(0, width-runeWidth(legendPlain))

	msgPlain := padRightPlain(truncatePlain(st.StatusMessage, leftW), leftW)

	line := applyFG(msgPlain, styles.StatusFG, styles.StatusFG) + applyFG(legendPlain, styles.LegendFG, styles.StatusFG)
	return applyBar(line, styles.StatusBG, styles.StatusFG)
}

func renderModeSegment(colW int, st footerState, styles footerStyles) string {
	if colW <= 0 {
		return ""
	}
	content := truncatePlain(st.Mode, max(0, colW-2))
	pillPlain := truncatePlain(" "+content+" ", colW)
	pad := strings.Repeat(" ", colW-runeWidth(pillPlain))

	pill := bgSeq(styles.ModePillBG) + fgSeq(styles.ModePillFG) + pillPlain
	pill += bgSeq(styles.BarBG) + fgSeq(styles.TextFG) + pad
	return pill
}

func renderFileSegment(colW int, st footerState, styles footerStyles) string {
	if colW <= 0 {
		return ""
	}
	name := strings.TrimSpace(st.FileName)
	if name == "" {
		name = "(no file)"
	}
	filePlain := truncatePlain("▸ "+name, colW)
	remaining := colW - runeWidth(filePlain)

	inputPlain := ""
	if input := strings.TrimSpace(st.ModeInput); input != "" && remaining > 0 {
		inputPlain = truncatePlain(" ▸ "+input, remaining)
		remaining -= runeWidth(inputPlain)
	}

	pad := strings.Repeat(" ", max(0, remaining))
	return applyFG(filePlain, styles.FileNameFG, styles.TextFG) + inputPlain + pad
}

func renderChartsSegment(colW int, st footerState, styles footerStyles) string {
	if colW <= 0 {
		return ""
	}
	plain := padRightPlain(truncatePlain(chartsLabel(st), colW), colW)
	return applyFG(plain, styles.DimFG, styles.TextFG)
}

func applyBar(s string, bg lipgloss.Color, baseFG lipgloss.Color) string {
	return bgSeq(bg) + fgSeq(baseFG) + s + resetSeq
}

func applyFG(s string, fg lipgloss.Color, resetFG lipgloss.Color) string {
	return fgSeq(fg) + s + fgSeq(resetFG)
}

func padRightPlain(s string, w int) string {
	if w <= 0 {
		return ""
	}
	cur := runeWidth(s)
	if cur >= w {
		return s
	}
	return s + strings.Repeat(" ", w-cur)
}

func truncatePlain(s string, w int) string {
	if w <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= w {
		return s
	}
	return string(r[:w])
}

func runeWidth(s string) int {
	return len([]rune(s))
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
