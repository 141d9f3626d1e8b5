package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRecordBounds(t *testing.T) {
	start, end, err := parseRecordBounds(" 3 ", "7", 10)
	require.NoError(t, err)
	assert.Equal(t, 2, start)
	assert.Equal(t, 6, end)

	start, end, err = parseRecordBounds("0", "99", 10)
	require.NoError(t, err)
	assert.Equal(t, 0, start)
	assert.Equal(t, 9, end)

	_, _, err = parseRecordBounds("a", "7", 10)
	assert.ErrorIs(t, err, errInvalidStart)
	_, _, err = parseRecordBounds("1", "", 10)
	assert.ErrorIs(t, err, errInvalidEnd)
	_, _, err = parseRecordBounds("8", "7", 10)
	assert.ErrorIs(t, err, errStartAfter)
}

func TestShiftRecordWindowKeepsWidth(t *testing.T) {
	start, end := shiftRecordWindow(10, 19, 5, 100)
	assert.Equal(t, []int{15, 24}, []int{start, end})

	start, end = shiftRecordWindow(10, 19, -50, 100)
	assert.Equal(t, []int{0, 9}, []int{start, end})

	start, end = shiftRecordWindow(80, 89, 50, 100)
	assert.Equal(t, []int{90, 99}, []int{start, end})

	start, end = shiftRecordWindow(0, 99, 5, 100)
	assert.Equal(t, []int{0, 99}, []int{start, end})
}

func TestExpandRecordWindow(t *testing.T) {
	start, end := expandRecordWindow(10, 19, -5, 100)
	assert.Equal(t, []int{5, 19}, []int{start, end})

	start, end = expandRecordWindow(10, 19, 100, 100)
	assert.Equal(t, []int{10, 99}, []int{start, end})

	start, end = expandRecordWindow(2, 19, -5, 100)
	assert.Equal(t, []int{0, 19}, []int{start, end})
}

func TestDefaultRecordStep(t *testing.T) {
	assert.Equal(t, 1, defaultRecordStep(5))
	assert.Equal(t, 5, defaultRecordStep(100))
}

func TestRecordScrubberLine(t *testing.T) {
	assert.Equal(t, "Scrubber: n/a", recordScrubberLine(0, 0, 0, 80))
	assert.Equal(t, "Window: 3 - 8", recordScrubberLine(2, 7, 10, 12))

	line := recordScrubberLine(0, 99, 100, 40)
	assert.Contains(t, line, "[")
	assert.Contains(t, line, "]")
	assert.Equal(t, 40, runeWidth(line))
}
