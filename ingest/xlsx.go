package ingest

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// extractXLSX reads the first worksheet with raw cell values, so date cells
// arrive as serial numbers.
func extractXLSX(data []byte) (Grid, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil
	}

	rows, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("failed to read rows from sheet %q: %w", sheets[0], err)
	}

	grid := make(Grid, 0, len(rows))
	for r, row := range rows {
		cells := make([]Cell, len(row))
		for i, v := range row {
			if v != "" && stringCell(f, sheets[0], i+1, r+1) {
				cells[i] = Text(v)
				continue
			}
			cells[i] = parseValue(v)
		}
		grid = append(grid, cells)
	}
	return grid, nil
}

// stringCell reports whether the cell is stored as text, so "007" stays text.
func stringCell(f *excelize.File, sheet string, col, row int) bool {
	ref, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return false
	}
	typ, err := f.GetCellType(sheet, ref)
	if err != nil {
		return false
	}
	return typ == excelize.CellTypeSharedString || typ == excelize.CellTypeInlineString
}
