package ingest

import (
	"bytes"
	"fmt"

	"github.com/extrame/xls"
)

// extractXLS reads the first sheet of a legacy BIFF workbook.
func extractXLS(data []byte) (Grid, error) {
	wb, err := xls.OpenReader(bytes.NewReader(data), "utf-8")
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	sheet := wb.GetSheet(0)
	if sheet == nil {
		return nil, nil
	}

	grid := make(Grid, 0, int(sheet.MaxRow)+1)
	for i := 0; i <= int(sheet.MaxRow); i++ {
		row := sheet.Row(i)
		if row == nil {
			grid = append(grid, nil)
			continue
		}
		cells := make([]Cell, row.LastCol())
		for c := range cells {
			cells[c] = parseValue(row.Col(c))
		}
		grid = append(grid, cells)
	}
	return grid, nil
}
