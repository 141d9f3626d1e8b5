package ingest

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"
)

func extractCSV(data []byte) (Grid, error) {
	data = bytes.TrimPrefix(data, []byte("\ufeff"))

	r := csv.NewReader(bytes.NewReader(data))
	r.Comma = sniffDelimiter(data)
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv: %w", err)
	}

	grid := make(Grid, 0, len(rows))
	for _, row := range rows {
		cells := make([]Cell, len(row))
		for i, v := range row {
			cells[i] = parseValue(v)
		}
		grid = append(grid, cells)
	}
	return grid, nil
}

// sniffDelimiter picks ';' or tab over ',' when the first line uses it more.
func sniffDelimiter(data []byte) rune {
	line := string(data)
	if i := strings.IndexAny(line, "\r\n"); i >= 0 {
		line = line[:i]
	}
	best, bestCount := ',', strings.Count(line, ",")
	for _, d := range []rune{';', '\t'} {
		if n := strings.Count(line, string(d)); n > bestCount {
			best, bestCount = d, n
		}
	}
	return best
}
