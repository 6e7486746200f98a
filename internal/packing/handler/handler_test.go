package handler

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	excelize "github.com/xuri/excelize/v2"

	"packing-service/internal/config"
	"packing-service/internal/models"
	"packing-service/internal/packing/model"
)

const testModelsJSON = `{
  "hsps": {
    "excel": {
      "hoja_datos": "ZF",
      "hoja_calculos": "CALCULOS",
      "detener_en": ["TOTAL GENERAL"],
      "columnas": {
        "numero_pallet": ["numero de pallet", "pallet"],
        "n_lote": ["n. de lote", "lote"],
        "fecha": ["fecha"],
        "n_parte": ["n. parte", "parte"],
        "cantidad": ["cantidad", "qty"],
        "total_cajas": ["cajas"],
        "peso_lote": ["peso del lote"],
        "peso_acumulado": ["peso acumulado"]
      },
      "calculos": {
        "metodo": "busqueda",
        "keywords": {"net_weight": ["peso neto"]}
      }
    },
    "pdf": {"descripcion_producto": "SEATBELT RETURN SPRING UNIT"}
  }
}`

func testRegistry(t *testing.T) *models.Registry {
	t.Helper()
	path := filepath.Join(t.TempDir(), "models.json")
	require.NoError(t, os.WriteFile(path, []byte(testModelsJSON), 0o644))
	reg, err := models.Load(path)
	require.NoError(t, err)
	return reg
}

// testUpload builds a realistic warehouse export: title banner, header at
// row 2, a blank decorative row, and a trailing TOTAL GENERAL summary.
func testUpload(t *testing.T) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	require.NoError(t, f.SetSheetName("Sheet1", "ZF"))
	rows := [][]any{
		{"SALIDA DE MATERIAL HSPS-ALM"},
		{},
		{"Numero de Pallet", "N. de Lote", "Fecha", "N. Parte", "Cantidad", "Cajas", "Peso del Lote", "Peso Acumulado"},
		{"1", "L-100", "01/02/2025", "P-900", "500", "10", "2.5", "3.0"},
		{"1", "L-101", "01/02/2025", "P-900", "250", "5", "3.5", "4.0"},
		{},
		{"2", "L-102", "02/02/2025", "P-900", "1,000", "20", "1.0", "1.5"},
		{"TOTAL GENERAL", "", "", "", "1750", "35"},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("ZF", cell, &row))
	}

	_, err := f.NewSheet("CALCULOS")
	require.NoError(t, err)
	require.NoError(t, f.SetSheetRow("CALCULOS", "A1", &[]any{"PESO NETO (KG)", "850.5"}))

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf
}

func multipartUpload(t *testing.T, filename string, content []byte, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fw, err := mw.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	require.NoError(t, mw.Close())
	return &body, mw.FormDataContentType()
}

func TestExtractEndToEnd(t *testing.T) {
	t.Parallel()

	reg := testRegistry(t)
	h := Extract(config.Config{MaxUploadMB: 8}, reg, zerolog.Nop())

	body, ctype := multipartUpload(t, "export.xlsx", testUpload(t).Bytes(), map[string]string{"model": "hsps"})
	req := httptest.NewRequest(http.MethodPost, "/extract", body)
	req.Header.Set("Content-Type", ctype)
	rr := httptest.NewRecorder()
	h(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var res model.ExtractResult
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &res))

	require.Equal(t, "hsps", res.Model)
	require.Equal(t, "ZF", res.Sheet)
	require.Equal(t, 2, res.HeaderRow)
	require.Len(t, res.Records, 3)
	require.Equal(t, "Cantidad", res.Columns["cantidad"])
	require.Equal(t, "1,000", res.Records[2]["cantidad"])

	require.Equal(t, 3, res.Summary.Registros)
	require.Equal(t, 2, res.Summary.Pallets)
	require.Equal(t, 1750, res.Summary.TotalPiezas)
	require.Equal(t, 35, res.Summary.TotalCajas)

	require.Equal(t, []string{"1", "2"}, res.Pallets.Keys)
	require.Equal(t, []string{"6.00", "1.00"}, res.Pallets.Net)
	require.Equal(t, "850.5", res.Calc.NetWeight)
}

func TestExtractUnknownModel(t *testing.T) {
	t.Parallel()

	reg := testRegistry(t)
	h := Extract(config.Config{}, reg, zerolog.Nop())

	body, ctype := multipartUpload(t, "export.xlsx", testUpload(t).Bytes(), map[string]string{"model": "nope"})
	req := httptest.NewRequest(http.MethodPost, "/extract", body)
	req.Header.Set("Content-Type", ctype)
	rr := httptest.NewRecorder()
	h(rr, req)

	require.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestExtractRejectsUnreadableFile(t *testing.T) {
	t.Parallel()

	reg := testRegistry(t)
	h := Extract(config.Config{}, reg, zerolog.Nop())

	body, ctype := multipartUpload(t, "export.xlsx", []byte("not a workbook"), map[string]string{"model": "hsps"})
	req := httptest.NewRequest(http.MethodPost, "/extract", body)
	req.Header.Set("Content-Type", ctype)
	rr := httptest.NewRecorder()
	h(rr, req)

	require.Equal(t, http.StatusUnprocessableEntity, rr.Code)
}

func TestPackingSlipEndToEnd(t *testing.T) {
	t.Parallel()

	reg := testRegistry(t)
	h := PackingSlip(config.Config{}, reg, zerolog.Nop())

	body, ctype := multipartUpload(t, "export.xlsx", testUpload(t).Bytes(), map[string]string{
		"model":           "hsps",
		"shipping_date":   "05/02/2025",
		"packing_slip_no": "PL-001",
	})
	req := httptest.NewRequest(http.MethodPost, "/packing-slip", body)
	req.Header.Set("Content-Type", ctype)
	rr := httptest.NewRecorder()
	h(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	require.Equal(t, "application/pdf", rr.Header().Get("Content-Type"))
	require.Equal(t, "%PDF", rr.Body.String()[:4])
}
