package fileio

import (
	"bytes"
	"errors"
	"io"
	"strings"

	xls "github.com/extrame/xls"
)

// old warehouse exports are usually windows-1252; some tools re-save UTF-8
var xlsCharsets = []string{"windows-1252", "utf-8", "windows-1251"}

// readXLS loads a legacy workbook. The library under-reports row width, so
// the grid width is fixed by probing every row before reading.
func readXLS(r io.Reader) (*Workbook, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var book *xls.WorkBook
	var lastErr error
	for _, cs := range xlsCharsets {
		book, err = xls.OpenReader(bytes.NewReader(b), cs)
		if err == nil && book != nil {
			lastErr = nil
			break
		}
		lastErr = err
	}
	if book == nil {
		if lastErr == nil {
			lastErr = errors.New("xls: failed to open workbook")
		}
		return nil, lastErr
	}

	wb := newWorkbook()
	for i := 0; i < book.NumSheets(); i++ {
		sheet := book.GetSheet(i)
		if sheet == nil {
			continue
		}
		wb.addSheet(sheet.Name, sheetGrid(sheet))
	}
	return wb, nil
}

func sheetGrid(sheet *xls.WorkSheet) [][]string {
	width := maxCols(sheet)
	grid := make([][]string, 0, int(sheet.MaxRow)+1)
	for i := 0; i <= int(sheet.MaxRow); i++ {
		cols := make([]string, width)
		if row := sheet.Row(i); row != nil {
			for j := 0; j < width; j++ {
				cols[j] = strings.TrimSpace(row.Col(j))
			}
		}
		grid = append(grid, cols)
	}
	return grid
}

// maxCols probes a bounded column range on every row; Row.LastCol is not
// reliable for sparse sheets.
func maxCols(sheet *xls.WorkSheet) int {
	const probeMax = 256
	width := 1
	for i := 0; i <= int(sheet.MaxRow); i++ {
		row := sheet.Row(i)
		if row == nil {
			continue
		}
		for j := 0; j < probeMax; j++ {
			if strings.TrimSpace(row.Col(j)) != "" && j+1 > width {
				width = j + 1
			}
		}
	}
	return width
}
