package service

import (
	"strings"

	"packing-service/internal/models"
	"packing-service/internal/packing/model"
)

// ExtractCalc pulls the shipment scalars (net/gross weight, dimensions) from
// the calculations sheet. Best-effort by contract: a nil config, an unknown
// method or out-of-range coordinates leave fields at "" and never fail the
// request.
func ExtractCalc(grid [][]string, cfg *models.CalcConfig) model.CalcResult {
	var res model.CalcResult
	if cfg == nil || len(grid) == 0 {
		return res
	}

	switch cfg.Metodo {
	case "celda_fija":
		res.NetWeight = cellAt(grid, cfg.PesoNeto)
		res.GrossWeight = cellAt(grid, cfg.PesoBruto)
		res.Dimensions = cellAt(grid, cfg.Dimensiones)
	case "busqueda", "":
		for field, keywords := range cfg.Keywords {
			v := searchByKeyword(grid, keywords)
			if v == "" {
				continue
			}
			switch field {
			case "net_weight":
				res.NetWeight = v
			case "gross_weight":
				res.GrossWeight = v
			case "dimensions":
				res.Dimensions = v
			}
		}
	}
	return res
}

// cellAt reads a fixed coordinate, bounds-checked against the grid.
func cellAt(grid [][]string, ref *models.CellRef) string {
	if ref == nil || ref.Fila < 0 || ref.Fila >= len(grid) {
		return ""
	}
	row := grid[ref.Fila]
	if ref.Columna < 0 || ref.Columna >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[ref.Columna])
}

// searchByKeyword scans the grid for a cell containing any keyword and takes
// the adjacent value: same row next column first, then same column next row.
// First satisfying keyword/cell pair wins.
func searchByKeyword(grid [][]string, keywords []string) string {
	for _, kw := range keywords {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw == "" {
			continue
		}
		for i, row := range grid {
			for j, cell := range row {
				if cell == "" || !strings.Contains(strings.ToLower(cell), kw) {
					continue
				}
				if j+1 < len(row) {
					if v := strings.TrimSpace(row[j+1]); v != "" {
						return v
					}
				}
				if i+1 < len(grid) && j < len(grid[i+1]) {
					if v := strings.TrimSpace(grid[i+1][j]); v != "" {
						return v
					}
				}
			}
		}
	}
	return ""
}
