// Package ingest turns spreadsheet files into normalised, column-oriented
// datasets ready for charting.
package ingest

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// Kind identifies what a Cell holds.
type Kind int

const (
	KindNull Kind = iota
	KindText
	KindNumber
	KindTime
)

// Cell is a single raw or normalised spreadsheet value.
// KindTime only appears in raw grids; normalised records hold text,
// numbers or nulls.
type Cell struct {
	Kind   Kind
	Text   string
	Number float64
	Time   time.Time
}

// Grid is a raw 2-D cell grid as read from the first sheet of a file.
type Grid [][]Cell

func Null() Cell { return Cell{Kind: KindNull} }

func Text(s string) Cell { return Cell{Kind: KindText, Text: s} }

func Number(f float64) Cell { return Cell{Kind: KindNumber, Number: f} }

func TimeValue(t time.Time) Cell { return Cell{Kind: KindTime, Time: t} }

// IsBlank reports whether the cell is absent or empty text.
// Whitespace-only text is not blank.
func (c Cell) IsBlank() bool {
	switch c.Kind {
	case KindNull:
		return true
	case KindText:
		return c.Text == ""
	default:
		return false
	}
}

// IsNumber reports whether the cell holds a number.
func (c Cell) IsNumber() bool { return c.Kind == KindNumber }

// String stringifies the raw value. Nulls become empty text.
func (c Cell) String() string {
	switch c.Kind {
	case KindText:
		return c.Text
	case KindNumber:
		return formatNumber(c.Number)
	case KindTime:
		return c.Time.Format(time.RFC3339)
	default:
		return ""
	}
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// parseValue attempts to parse a string value as a number.
// Empty strings are nulls, numeric strings are numbers, the rest is text.
func parseValue(s string) Cell {
	if s == "" {
		return Null()
	}
	trimmed := strings.TrimSpace(s)
	if i, err := strconv.ParseInt(trimmed, 10, 64); err == nil {
		return Number(float64(i))
	}
	if f, err := strconv.ParseFloat(trimmed, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
		if looksNumeric(trimmed) {
			return Number(f)
		}
	}
	return Text(s)
}

// looksNumeric rejects the spellings ParseFloat accepts that a spreadsheet
// would keep as text ("inf", "0x1p3", "1e").
func looksNumeric(s string) bool {
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
		case r == '.' || r == '-' || r == '+' || r == 'e' || r == 'E':
		default:
			return false
		}
	}
	return true
}
