package ingest

import (
	"fmt"
	"strings"
)

// Record is one data row with exactly one Cell per dataset header.
type Record []Cell

// Label is the formatted index value of the record.
func (r Record) Label() string {
	if len(r) == 0 {
		return ""
	}
	return r[0].Text
}

// Dataset is an immutable, ordered set of records sharing one header list.
// The first header is the index column.
type Dataset struct {
	source  string
	headers []string
	columns map[string]int
	records []Record
}

// Source is the base name of the file the dataset was loaded from.
func (d *Dataset) Source() string { return d.source }

// Len is the number of records.
func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.records)
}

// Headers returns a copy of the header list.
func (d *Dataset) Headers() []string {
	out := make([]string, len(d.headers))
	copy(out, d.headers)
	return out
}

func (d *Dataset) IndexHeader() string {
	if len(d.headers) == 0 {
		return ""
	}
	return d.headers[0]
}

// ValueHeaders are all headers after the index column.
func (d *Dataset) ValueHeaders() []string {
	if len(d.headers) < 2 {
		return nil
	}
	out := make([]string, len(d.headers)-1)
	copy(out, d.headers[1:])
	return out
}

// Column returns the position of header name, or -1.
func (d *Dataset) Column(name string) int {
	if i, ok := d.columns[name]; ok {
		return i
	}
	return -1
}

func (d *Dataset) Record(i int) Record {
	return d.records[i]
}

// Value looks a cell up by record position and header name.
func (d *Dataset) Value(i int, header string) (Cell, bool) {
	col := d.Column(header)
	if col < 0 || i < 0 || i >= len(d.records) {
		return Cell{}, false
	}
	return d.records[i][col], true
}

// Slice returns the records in the inclusive range [start, end], clamped
// to the dataset. Callers must not modify the returned records.
func (d *Dataset) Slice(start, end int) []Record {
	if d.Len() == 0 {
		return nil
	}
	if start < 0 {
		start = 0
	}
	if end > len(d.records)-1 {
		end = len(d.records) - 1
	}
	if start > end {
		return nil
	}
	return d.records[start : end+1]
}

// Normalize converts a raw grid into a Dataset. Row 0 holds the headers.
func Normalize(grid Grid, loc Locale) (*Dataset, error) {
	if len(grid) < 2 {
		return nil, ErrEmptyFile
	}

	rows := make([][]Cell, 0, len(grid)-1)
	width := len(grid[0])
	for _, row := range grid[1:] {
		if blankRow(row) {
			continue
		}
		rows = append(rows, row)
		if len(row) > width {
			width = len(row)
		}
	}
	if len(rows) == 0 {
		return nil, ErrNoDataRows
	}

	headers := buildHeaders(grid[0], width, loc)
	ds := &Dataset{
		headers: headers,
		columns: make(map[string]int, len(headers)),
		records: make([]Record, 0, len(rows)),
	}
	for i, h := range headers {
		ds.columns[h] = i
	}

	for _, row := range rows {
		rec := make(Record, width)
		for i := range rec {
			if i >= len(row) {
				rec[i] = Null()
				continue
			}
			rec[i] = row[i]
		}
		rec[0] = Text(loc.FormatDate(rec[0]))
		ds.records = append(ds.records, rec)
	}
	return ds, nil
}

func blankRow(row []Cell) bool {
	for _, c := range row {
		if !c.IsBlank() {
			return false
		}
	}
	return true
}

// buildHeaders coerces header cells to text, names blank ones by position
// and suffixes repeats so that every header is unique.
func buildHeaders(row []Cell, width int, loc Locale) []string {
	headers := make([]string, width)
	used := make(map[string]bool, width)
	for i := 0; i < width; i++ {
		name := ""
		if i < len(row) {
			name = headerText(row[i], loc)
		}
		if strings.TrimSpace(name) == "" {
			name = loc.Placeholder(i)
		}
		if used[name] {
			base := name
			for n := 2; used[name]; n++ {
				name = fmt.Sprintf("%s (%d)", base, n)
			}
		}
		used[name] = true
		headers[i] = name
	}
	return headers
}

func headerText(c Cell, loc Locale) string {
	if c.Kind == KindTime {
		return loc.stamp(c.Time.In(loc.location()))
	}
	return c.String()
}
