package fileio

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// Workbook is an uploaded spreadsheet fully parsed into memory: sheet names
// in file order, each sheet an untyped grid of cell strings. One workbook
// per request; nothing is shared or streamed.
type Workbook struct {
	sheets []string
	grids  map[string][][]string
}

var ErrNoSheets = errors.New("workbook has no sheets")

// OpenWorkbook picks a parser by file extension and loads every sheet.
func OpenWorkbook(r io.Reader, filename string) (*Workbook, error) {
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".xlsx", ".xlsm":
		return readXLSX(r)
	case ".xls":
		return readXLS(r)
	case ".csv":
		return readCSV(r, filename)
	default:
		return nil, fmt.Errorf("unsupported file: %s", filename)
	}
}

// SheetNames lists sheets in workbook order.
func (w *Workbook) SheetNames() []string { return w.sheets }

// Grid returns the raw grid of a named sheet.
func (w *Workbook) Grid(name string) ([][]string, bool) {
	g, ok := w.grids[name]
	return g, ok
}

// ResolveSheet returns the named sheet, falling back to the first sheet when
// no name is given or the name is not present. An empty workbook is the only
// hard failure.
func (w *Workbook) ResolveSheet(name string) (string, [][]string, error) {
	if name != "" {
		if g, ok := w.grids[name]; ok {
			return name, g, nil
		}
	}
	if len(w.sheets) == 0 {
		return "", nil, ErrNoSheets
	}
	first := w.sheets[0]
	return first, w.grids[first], nil
}

func newWorkbook() *Workbook {
	return &Workbook{grids: map[string][][]string{}}
}

func (w *Workbook) addSheet(name string, grid [][]string) {
	w.sheets = append(w.sheets, name)
	w.grids[name] = grid
}
