package service

import (
	"packing-service/internal/packing/model"
)

// ExtractRecords walks the clean table and emits one Record per data row,
// resolving every logical field of the alias map exactly once up front.
// A row whose pallet and quantity cells are both blank (with both columns
// actually resolved) is decorative and skipped; otherwise blanks stay as ""
// so the operator can inspect partial rows. Output order equals table order:
// the PDF groups consecutive rows of the same pallet.
func ExtractRecords(t *Table, columns map[string][]string) ([]model.Record, model.ColumnReport) {
	report := make(model.ColumnReport, len(columns))
	for field, aliases := range columns {
		report[field] = FindColumn(t.Headers, aliases)
	}

	palletCol := report[model.FieldPallet]
	qtyCol := report[model.FieldQuantity]

	records := make([]model.Record, 0, len(t.Rows))
	for _, row := range t.Rows {
		if palletCol != "" && qtyCol != "" &&
			t.Cell(row, palletCol) == "" && t.Cell(row, qtyCol) == "" {
			continue
		}
		rec := make(model.Record, len(columns))
		for field, col := range report {
			if col == "" {
				rec[field] = ""
				continue
			}
			rec[field] = t.Cell(row, col)
		}
		records = append(records, rec)
	}
	return records, report
}
