package render

import (
	"strings"
)

// Readout is the hover tooltip: the index label and every visible value of
// one record.
type Readout struct {
	Label  string
	Values []ReadoutValue
}

type ReadoutValue struct {
	Series
	Text string
}

// Readout describes the record at offset. Hidden series are left out.
func (f Frame) Readout(offset int, nf NumberFormat) (Readout, bool) {
	if offset < 0 || offset >= len(f.Records) {
		return Readout{}, false
	}
	rec := f.Records[offset]
	out := Readout{Label: rec.Label()}
	for _, s := range f.Legend() {
		if s.Hidden {
			continue
		}
		k := 0
		for i, name := range f.ValueHeaders {
			if name == s.Name {
				k = i
				break
			}
		}
		out.Values = append(out.Values, ReadoutValue{Series: s, Text: nf.Cell(cellAt(rec, k+1))})
	}
	return out, true
}

// String is the plain one-line form used for the clipboard.
func (r Readout) String() string {
	var b strings.Builder
	b.WriteString(r.Label)
	for _, v := range r.Values {
		b.WriteString(" | ")
		b.WriteString(v.Name)
		b.WriteString(": ")
		b.WriteString(v.Text)
	}
	return b.String()
}
