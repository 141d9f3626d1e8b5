package render

import (
	"math"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/andareed/siftly-sheetchart/ingest"
)

// NumberFormat prints numbers with the grouping and decimal marks of a
// language.
type NumberFormat struct {
	p *message.Printer
}

func NewNumberFormat(tag language.Tag) NumberFormat {
	return NumberFormat{p: message.NewPrinter(tag)}
}

func (n NumberFormat) printer() *message.Printer {
	if n.p == nil {
		return message.NewPrinter(language.Turkish)
	}
	return n.p
}

// Format prints v with at most two fraction digits.
func (n NumberFormat) Format(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return n.printer().Sprint(number.Decimal(v, number.MaxFractionDigits(2)))
}

// Axis prints an axis tick. Large magnitudes drop the fraction.
func (n NumberFormat) Axis(v float64) string {
	if math.Abs(v) >= 100 {
		return n.printer().Sprint(number.Decimal(math.Round(v), number.MaxFractionDigits(0)))
	}
	return n.printer().Sprint(number.Decimal(v, number.MaxFractionDigits(1)))
}

// Cell prints a record value: numbers localised, text as is, null as "-".
func (n NumberFormat) Cell(c ingest.Cell) string {
	switch c.Kind {
	case ingest.KindNumber:
		return n.Format(c.Number)
	case ingest.KindNull:
		return "-"
	}
	return c.String()
}
