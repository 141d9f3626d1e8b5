package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
)

const (
	rangeWindowFocusStart = iota
	rangeWindowFocusEnd
	rangeWindowFocusScrubber
)

const (
	rangeWindowStepMin     = 1
	rangeWindowStepDivisor = 20 // default step is a twentieth of the records
)

var (
	errInvalidStart = errors.New("invalid start record")
	errInvalidEnd   = errors.New("invalid end record")
	errStartAfter   = errors.New("start is after end")
)

// rangeWindowUI is the drawer that sets a chart's visible records by number.
// Drafts are 0-based record indices; the inputs show them 1-based.
type rangeWindowUI struct {
	open       bool
	focus      int
	startInput textinput.Model
	endInput   textinput.Model
	errorMsg   string
	chartKey   string
	draftStart int
	draftEnd   int
	total      int
	step       int
}

func newRangeWindowUI() rangeWindowUI {
	return rangeWindowUI{
		startInput: initRangeWindowInput(),
		endInput:   initRangeWindowInput(),
	}
}

func initRangeWindowInput() textinput.Model {
	ti := textinput.New()
	ti.Placeholder = "record"
	ti.CharLimit = 10
	ti.Width = 10
	ti.Prompt = ""
	return ti
}

// parseRecordBounds reads 1-based record numbers and returns 0-based
// indices clamped to n records.
func parseRecordBounds(startStr, endStr string, n int) (int, int, error) {
	start, err := strconv.Atoi(strings.TrimSpace(startStr))
	if err != nil {
		return 0, 0, errInvalidStart
	}
	end, err := strconv.Atoi(strings.TrimSpace(endStr))
	if err != nil {
		return 0, 0, errInvalidEnd
	}
	if start > end {
		return 0, 0, errStartAfter
	}
	start = clamp(start, 1, n)
	end = clamp(end, 1, n)
	return start - 1, end - 1, nil
}

// shiftRecordWindow moves [start, end] by delta without changing its width
// and without leaving [0, n-1].
func shiftRecordWindow(start, end, delta, n int) (int, int) {
	width := end - start
	if width >= n-1 {
		return 0, n - 1
	}
	start += delta
	end += delta
	if start < 0 {
		start, end = 0, width
	}
	if end > n-1 {
		start, end = n-1-width, n-1
	}
	return start, end
}

// expandRecordWindow grows the window: a negative delta moves the start
// left, a positive one moves the end right.
func expandRecordWindow(start, end, delta, n int) (int, int) {
	switch {
	case delta < 0:
		start = max(0, start+delta)
	case delta > 0:
		end = min(n-1, end+delta)
	}
	return start, end
}

func defaultRecordStep(n int) int {
	return max(rangeWindowStepMin, n/rangeWindowStepDivisor)
}

func recordScrubberLine(start, end, n, width int) string {
	if n <= 0 {
		return "Scrubber: n/a"
	}
	minLabel := "1"
	maxLabel := strconv.Itoa(n)
	padding := 2
	barWidth := width - len(minLabel) - len(maxLabel) - padding*2
	if barWidth < 10 {
		return fmt.Sprintf("Window: %d - %d", start+1, end+1)
	}

	bar := []rune(strings.Repeat("-", barWidth))
	span := max(1, n-1)
	startPos := (barWidth - 1) * clamp(start, 0, n-1) / span
	endPos := (barWidth - 1) * clamp(end, 0, n-1) / span
	for i := startPos; i <= endPos; i++ {
		bar[i] = '='
	}
	bar[startPos] = '['
	bar[endPos] = ']'

	return fmt.Sprintf("%s  %s  %s", minLabel, string(bar), maxLabel)
}
