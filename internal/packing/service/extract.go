package service

import (
	"fmt"
	"strings"
)

// DefaultHeaderWindow bounds the header scan: warehouse exports put title
// banners in at most the first few rows.
const DefaultHeaderWindow = 5

// Structural keywords that mark the header row. Spanish first (the exports
// this targets), English variants for translated templates.
var headerKeywords = []string{
	"pallet", "lote", "fecha", "cantidad", "cajas", "parte",
	"lot", "date", "quantity", "boxes", "part",
}

// DefaultStopKeywords end the data region; everything at and below the first
// matching row is a summary block, not line items.
var DefaultStopKeywords = []string{"TOTAL GENERAL", "TOTAL"}

// Table is a cleaned data sheet: unique non-empty column labels plus the data
// rows below the detected header, all rows padded to the same width.
type Table struct {
	Headers   []string
	Rows      [][]string
	HeaderRow int // index of the header row in the raw grid
}

// Cell returns the trimmed value of a row under a header label, "" when the
// label is unknown or the cell is blank.
func (t *Table) Cell(row []string, header string) string {
	for i, h := range t.Headers {
		if h == header {
			if i < len(row) {
				return strings.TrimSpace(row[i])
			}
			return ""
		}
	}
	return ""
}

// ExtractOptions tune the sheet extraction; zero values mean defaults.
type ExtractOptions struct {
	HeaderWindow int
	StopKeywords []string
}

// ExtractTable turns a raw grid into a clean record table: locate the header
// row by keyword scan, repair blank/duplicate labels, drop everything at and
// above the header, drop fully empty rows, truncate at the first stop-keyword
// row. Heuristics never fail; with no keyword match row 0 is the header and
// with no stop-keyword nothing is truncated.
func ExtractTable(grid [][]string, opt ExtractOptions) *Table {
	window := opt.HeaderWindow
	if window <= 0 {
		window = DefaultHeaderWindow
	}
	stop := opt.StopKeywords
	if len(stop) == 0 {
		stop = DefaultStopKeywords
	}

	grid = padGrid(grid)
	hdr := findHeaderRow(grid, window)

	var headers []string
	if hdr < len(grid) {
		headers = cleanHeaders(grid[hdr])
	}

	t := &Table{Headers: headers, HeaderRow: hdr}
	for _, row := range grid[min(hdr+1, len(grid)):] {
		if rowEmpty(row) {
			continue
		}
		if rowHasKeyword(row, stop) {
			break
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}

// findHeaderRow picks the first row within the window whose concatenated text
// contains a structural keyword, defaulting to row 0.
func findHeaderRow(grid [][]string, window int) int {
	for idx := 0; idx < window && idx < len(grid); idx++ {
		text := rowText(grid[idx])
		for _, kw := range headerKeywords {
			if strings.Contains(text, kw) {
				return idx
			}
		}
	}
	return 0
}

// cleanHeaders repairs the raw header row: blank cells become positional
// placeholders, repeated labels get an occurrence suffix. The result is
// unique and non-empty throughout.
func cleanHeaders(raw []string) []string {
	out := make([]string, len(raw))
	seen := make(map[string]int, len(raw))
	for i, h := range raw {
		h = strings.TrimSpace(h)
		if h == "" {
			out[i] = fmt.Sprintf("col_vacia_%d", i)
			continue
		}
		if n, dup := seen[h]; dup {
			seen[h] = n + 1
			out[i] = fmt.Sprintf("%s_%d", h, n+1)
		} else {
			seen[h] = 0
			out[i] = h
		}
	}
	return out
}

// padGrid normalizes a ragged grid (excelize trims trailing blanks per row)
// to a fixed width.
func padGrid(grid [][]string) [][]string {
	width := 0
	for _, row := range grid {
		if len(row) > width {
			width = len(row)
		}
	}
	out := make([][]string, len(grid))
	for i, row := range grid {
		if len(row) == width {
			out[i] = row
			continue
		}
		padded := make([]string, width)
		copy(padded, row)
		out[i] = padded
	}
	return out
}

func rowText(row []string) string {
	var b strings.Builder
	for _, c := range row {
		if c = strings.TrimSpace(c); c != "" {
			b.WriteString(strings.ToLower(c))
			b.WriteByte(' ')
		}
	}
	return b.String()
}

func rowEmpty(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

func rowHasKeyword(row []string, keywords []string) bool {
	text := rowText(row)
	for _, kw := range keywords {
		if strings.Contains(text, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}
