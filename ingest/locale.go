package ingest

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"golang.org/x/text/language"
)

// Spreadsheet serial dates: values strictly between SerialDateMin and
// SerialDateMax are read as days since 1899-12-30, i.e. value-SerialEpochOffset
// days since the Unix epoch.
const (
	SerialDateMin     = 1
	SerialDateMax     = 47483
	SerialEpochOffset = 25569
)

const msPerDay = 24 * 60 * 60 * 1000

// Locale holds the formatting rules used while normalising a grid.
type Locale struct {
	Name           string
	Language       language.Tag
	DateLayout     string
	DateTimeLayout string
	Location       *time.Location
	// ColumnLabel is a fmt pattern taking the 1-based column position.
	ColumnLabel string
}

func Turkish() Locale {
	return Locale{
		Name:           "tr",
		Language:       language.Turkish,
		DateLayout:     "02.01.2006",
		DateTimeLayout: "02.01.2006 15:04",
		Location:       time.Local,
		ColumnLabel:    "Sütun %d",
	}
}

func English() Locale {
	return Locale{
		Name:           "en",
		Language:       language.English,
		DateLayout:     "01/02/2006",
		DateTimeLayout: "01/02/2006 15:04",
		Location:       time.Local,
		ColumnLabel:    "Column %d",
	}
}

// LocaleByName resolves "tr" or "en" (case-insensitive).
func LocaleByName(name string) (Locale, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "tr", "tr-tr", "turkish":
		return Turkish(), true
	case "en", "en-us", "en-gb", "english":
		return English(), true
	}
	return Locale{}, false
}

// WithLocation returns a copy of l using loc for text dates and time values.
func (l Locale) WithLocation(loc *time.Location) Locale {
	l.Location = loc
	return l
}

// Placeholder is the label for an unnamed column at 0-based position i.
func (l Locale) Placeholder(i int) string {
	pattern := l.ColumnLabel
	if pattern == "" {
		pattern = "Column %d"
	}
	return fmt.Sprintf(pattern, i+1)
}

func (l Locale) location() *time.Location {
	if l.Location == nil {
		return time.UTC
	}
	return l.Location
}

// FormatDate renders an index cell as date text. It never fails: anything
// that is not recognisably a date comes back stringified.
func (l Locale) FormatDate(c Cell) (out string) {
	defer func() {
		if r := recover(); r != nil {
			out = c.String()
		}
	}()

	switch c.Kind {
	case KindTime:
		return l.stamp(c.Time.In(l.location()))
	case KindNumber:
		if c.Number > SerialDateMin && c.Number < SerialDateMax {
			if t, ok := serialToTime(c.Number); ok {
				return l.stamp(t)
			}
		}
	case KindText:
		if c.Text == "" {
			return ""
		}
		if t, err := dateparse.ParseIn(strings.TrimSpace(c.Text), l.location()); err == nil {
			return l.stamp(t)
		}
	}
	return c.String()
}

// stamp formats t on its own wall clock.
func (l Locale) stamp(t time.Time) string {
	if t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 {
		return t.Format(l.DateLayout)
	}
	return t.Format(l.DateTimeLayout)
}

// serialToTime converts a spreadsheet serial to a UTC instant, rounded to
// the millisecond.
func serialToTime(v float64) (time.Time, bool) {
	ms := math.Round((v - SerialEpochOffset) * msPerDay)
	if math.IsNaN(ms) || math.IsInf(ms, 0) {
		return time.Time{}, false
	}
	return time.UnixMilli(int64(ms)).UTC(), true
}
