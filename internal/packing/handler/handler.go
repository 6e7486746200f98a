package handler

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"packing-service/internal/config"
	"packing-service/internal/fileio"
	"packing-service/internal/middleware"
	"packing-service/internal/models"
	"packing-service/internal/packing/model"
	"packing-service/internal/packing/service"
	"packing-service/internal/pdf"
)

// Extract handles POST /extract: multipart upload (file, model) -> extracted
// records, column report, pallet totals and calc values as JSON. This is the
// preview step; the operator verifies the column report before generating.
func Extract(cfg config.Config, reg *models.Registry, logger zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log := requestLogger(logger, r)

		f, filename, mc, ok := uploadAndModel(w, r, reg, int64(cfg.MaxUploadMB)<<20)
		if !ok {
			return
		}
		defer f.Close()

		res, err := runExtraction(f, filename, mc)
		if err != nil {
			log.Warn().Err(err).Str("model", r.FormValue("model")).Msg("extraction failed")
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		res.Model = r.FormValue("model")

		writeJSON(w, http.StatusOK, res)
		log.Info().
			Str("model", res.Model).
			Str("sheet", res.Sheet).
			Int("records", len(res.Records)).
			Int("pallets", res.Summary.Pallets).
			Dur("elapsed", time.Since(start)).
			Msg("extract done")
	}
}

// PackingSlip handles POST /packing-slip: same upload plus the foreign-trade
// form fields, streaming back the rendered PDF. Stateless: extraction is
// re-run against the uploaded file, nothing is kept between steps.
func PackingSlip(cfg config.Config, reg *models.Registry, logger zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log := requestLogger(logger, r)

		f, filename, mc, ok := uploadAndModel(w, r, reg, int64(cfg.MaxUploadMB)<<20)
		if !ok {
			return
		}
		defer f.Close()

		res, err := runExtraction(f, filename, mc)
		if err != nil {
			log.Warn().Err(err).Str("model", r.FormValue("model")).Msg("extraction failed")
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}

		trade := tradeFromForm(r)
		// calc sheet values back-fill weights/dimensions the operator left blank
		if trade.NetWeight == "" {
			trade.NetWeight = res.Calc.NetWeight
		}
		if trade.GrossWeight == "" {
			trade.GrossWeight = res.Calc.GrossWeight
		}
		if trade.Dimensions == "" {
			trade.Dimensions = res.Calc.Dimensions
		}

		out, err := pdf.PackingSlip(res.Records, trade, mc.PDF)
		if err != nil {
			log.Error().Err(err).Msg("pdf render failed")
			writeError(w, http.StatusInternalServerError, "pdf render failed")
			return
		}

		name := formValue(r, "filename", fmt.Sprintf("PackingList_%s", time.Now().Format("20060102_1504")))
		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s.pdf"`, name))
		_, _ = w.Write(out)

		log.Info().
			Str("model", r.FormValue("model")).
			Int("records", len(res.Records)).
			Int("bytes", len(out)).
			Dur("elapsed", time.Since(start)).
			Msg("packing slip done")
	}
}

func requestLogger(logger zerolog.Logger, r *http.Request) zerolog.Logger {
	if rid := middleware.GetRequestID(r); rid != "" {
		return logger.With().Str("rid", rid).Logger()
	}
	return logger
}

// uploadAndModel parses the multipart form and resolves the model config.
// On failure it writes the error response and returns ok=false. maxMem only
// bounds in-memory buffering; the request size cap lives in the router.
func uploadAndModel(w http.ResponseWriter, r *http.Request, reg *models.Registry, maxMem int64) (io.ReadCloser, string, models.ModelConfig, bool) {
	if maxMem <= 0 {
		maxMem = 64 << 20
	}
	if err := r.ParseMultipartForm(maxMem); err != nil {
		writeError(w, http.StatusBadRequest, "bad multipart form: "+err.Error())
		return nil, "", models.ModelConfig{}, false
	}
	f, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "missing file: "+err.Error())
		return nil, "", models.ModelConfig{}, false
	}
	id := r.FormValue("model")
	mc, ok := reg.Get(id)
	if !ok {
		f.Close()
		writeError(w, http.StatusBadRequest, fmt.Sprintf("unknown model %q", id))
		return nil, "", models.ModelConfig{}, false
	}
	return f, header.Filename, mc, true
}

// runExtraction is the full pipeline for one upload: open workbook,
// extract the clean table, records, pallet aggregates and calc values.
// Only the workbook/sheet open path can fail; everything downstream degrades.
func runExtraction(f io.Reader, filename string, mc models.ModelConfig) (*model.ExtractResult, error) {
	wb, err := fileio.OpenWorkbook(f, filename)
	if err != nil {
		return nil, fmt.Errorf("read workbook: %w", err)
	}

	excel := mc.Excel
	sheetName, grid, err := wb.ResolveSheet(excel.HojaDatos)
	if err != nil {
		return nil, fmt.Errorf("sheet %q: %w", excel.HojaDatos, err)
	}

	table := service.ExtractTable(grid, service.ExtractOptions{
		HeaderWindow: excel.BuscarHeaderEnFilas,
		StopKeywords: excel.DetenerEn,
	})
	records, report := service.ExtractRecords(table, excel.Columnas)
	pallets := service.AggregatePallets(records, service.WeightFields{
		Net:   excel.CampoPesoNeto,
		Gross: excel.CampoPesoBruto,
	})

	var calc model.CalcResult
	if excel.HojaCalculos != "" {
		if calcGrid, ok := wb.Grid(excel.HojaCalculos); ok {
			calc = service.ExtractCalc(calcGrid, excel.Calculos)
		}
	}

	return &model.ExtractResult{
		Sheet:     sheetName,
		HeaderRow: table.HeaderRow,
		Records:   records,
		Columns:   report,
		Pallets:   pallets,
		Calc:      calc,
		Summary:   summarize(records),
	}, nil
}

func summarize(records []model.Record) model.Summary {
	s := model.Summary{Registros: len(records)}
	seen := map[string]bool{}
	for _, rec := range records {
		if p := rec[model.FieldPallet]; p != "" && !seen[p] {
			seen[p] = true
			s.Pallets++
		}
		s.TotalPiezas += service.ParseInt(rec[model.FieldQuantity], 0)
		s.TotalCajas += service.ParseInt(rec[model.FieldBoxes], 0)
	}
	return s
}
