// Package pdf renders the fixed-layout Packing Slip document. The layout is
// a vertical stack of bordered grids on A4 portrait; all values arrive
// pre-extracted, nothing here re-reads the workbook.
package pdf

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"

	"packing-service/internal/models"
	"packing-service/internal/packing/model"
	"packing-service/internal/packing/service"
)

const (
	pageWidth  = 210.0
	marginSide = 12.0
	usable     = pageWidth - 2*marginSide
)

var (
	navy   = [3]int{0, 0, 128}
	grey   = [3]int{224, 224, 224}
	yellow = [3]int{255, 255, 0}
)

// PackingSlip renders the document for one shipment. Trade fields left blank
// by the operator fall back to the model's pdf config.
func PackingSlip(records []model.Record, trade model.TradeData, cfg models.PDFConfig) ([]byte, error) {
	applyDefaults(&trade, cfg.Defaults)

	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetMargins(marginSide, 10, marginSide)
	doc.SetAutoPageBreak(true, 12)
	doc.AddPage()

	titleBlock(doc, cfg.Shipper)
	shippingInfo(doc, trade)
	partyColumns(doc, trade, cfg)
	shipmentDetails(doc, trade)
	totalQty := productTable(doc, records, cfg.DescripcionProducto)
	totalsRow(doc, records, trade, totalQty)
	transportRow(doc, trade)
	signatures(doc, trade, cfg)

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("render packing slip: %w", err)
	}
	return buf.Bytes(), nil
}

// applyDefaults back-fills trade fields the operator left blank from the
// model's pdf defaults. Operator input always wins; the autoriza keys are
// read directly at the signature block.
func applyDefaults(t *model.TradeData, d map[string]string) {
	if t.Linea == "" {
		t.Linea = d["linea"]
	}
	if t.Dimensions == "" {
		t.Dimensions = d["dimensions"]
	}
}

func titleBlock(doc *fpdf.Fpdf, shipper models.Party) {
	tr := doc.UnicodeTranslatorFromDescriptor("")
	doc.SetTextColor(navy[0], navy[1], navy[2])
	doc.SetFont("Helvetica", "B", 16)
	doc.CellFormat(usable, 8, "PACKING SLIP", "", 1, "C", false, 0, "")
	doc.SetTextColor(0, 0, 0)
	doc.SetFont("Helvetica", "B", 9)
	doc.CellFormat(usable, 4.5, tr(shipper.Nombre), "", 1, "C", false, 0, "")
	doc.SetFont("Helvetica", "", 8)
	for _, line := range []string{shipper.Direccion, shipper.Ciudad + " " + shipper.Estado, shipper.CP} {
		doc.CellFormat(usable, 4, tr(line), "", 1, "C", false, 0, "")
	}
	doc.Ln(3)
}

// grid draws one header row (grey fill, bold) and one value row.
func grid(doc *fpdf.Fpdf, widths []float64, headers, values []string) {
	tr := doc.UnicodeTranslatorFromDescriptor("")
	doc.SetFillColor(grey[0], grey[1], grey[2])
	doc.SetFont("Helvetica", "B", 8)
	for i, h := range headers {
		doc.CellFormat(widths[i], 5.5, tr(h), "1", 0, "C", true, 0, "")
	}
	doc.Ln(-1)
	doc.SetFont("Helvetica", "", 8)
	for i, v := range values {
		doc.CellFormat(widths[i], 5.5, tr(v), "1", 0, "C", false, 0, "")
	}
	doc.Ln(-1)
}

func shippingInfo(doc *fpdf.Fpdf, t model.TradeData) {
	w := usable / 3
	grid(doc, []float64{w, w, w},
		[]string{"Shipping date", "Seal No.", "PACKING LIST NO."},
		[]string{t.ShippingDate, t.SealNo, t.PackingSlipNo})
	doc.Ln(2.5)
}

func partyColumns(doc *fpdf.Fpdf, t model.TradeData, cfg models.PDFConfig) {
	tr := doc.UnicodeTranslatorFromDescriptor("")
	colW := usable / 3

	shipper := cfg.Shipper
	shipperTxt := fmt.Sprintf("Shipper / Exporter:\n%s\n%s\n%s\n%s\n%s",
		shipper.Nombre, shipper.Direccion, shipper.Ciudad, shipper.Estado, shipper.CP)
	shipToTxt := fmt.Sprintf("Ship to:\n%s\n%s\n%s\nTAX ID: %s",
		fallback(t.ShipToName, cfg.ShipTo.Nombre),
		fallback(t.ShipToAddress, cfg.ShipTo.Direccion),
		fallback(t.ShipToCity, cfg.ShipTo.Ciudad),
		fallback(t.ShipToTax, cfg.ShipTo.TaxID))
	billToTxt := fmt.Sprintf("Bill to:\n%s\n%s\n%s\n%s",
		fallback(t.BillToName, cfg.BillTo.Nombre),
		fallback(t.BillToAddress, cfg.BillTo.Direccion),
		fallback(t.BillToCity, cfg.BillTo.Ciudad),
		fallback(t.BillToState, cfg.BillTo.Estado))

	doc.SetFont("Helvetica", "", 8)
	y := doc.GetY()
	maxY := y
	for i, txt := range []string{shipperTxt, shipToTxt, billToTxt} {
		doc.SetXY(marginSide+float64(i)*colW, y)
		doc.MultiCell(colW, 3.8, tr(txt), "", "L", false)
		if doc.GetY() > maxY {
			maxY = doc.GetY()
		}
	}
	doc.SetXY(marginSide, maxY+3)
}

func shipmentDetails(doc *fpdf.Fpdf, t model.TradeData) {
	w := usable / 5
	grid(doc, []float64{w, w, w, w, w},
		[]string{"Shipping method", "Incoterm:", "Commercial Invoice No.", "Country of Origin", "Country of Destination"},
		[]string{t.ShippingMethod, t.Incoterm, t.CommercialInvoice, t.CountryOrigin, t.CountryDestination})
	doc.Ln(2.5)
}

// productTable writes the line items; the pallet number shows only on the
// first row of its group, and the Excel-sourced columns get the yellow fill
// the operators proof against. Returns the summed quantity.
func productTable(doc *fpdf.Fpdf, records []model.Record, description string) int {
	tr := doc.UnicodeTranslatorFromDescriptor("")
	widths := []float64{20, 22, 17, 30, 53, 20, 24}
	headers := []string{"Pallets No.", "Quantity", "Boxes", "Product No.", "Description", "Lot", "Manufacturing date"}
	if description == "" {
		description = "PRODUCTO"
	}

	doc.SetFillColor(navy[0], navy[1], navy[2])
	doc.SetTextColor(255, 255, 255)
	doc.SetFont("Helvetica", "B", 8)
	for i, h := range headers {
		doc.CellFormat(widths[i], 5.5, h, "1", 0, "C", true, 0, "")
	}
	doc.Ln(-1)

	doc.SetTextColor(0, 0, 0)
	doc.SetFont("Helvetica", "", 7)
	doc.SetFillColor(yellow[0], yellow[1], yellow[2])

	totalQty := 0
	lastPallet := ""
	for _, rec := range records {
		pallet := rec[model.FieldPallet]
		display := pallet
		if pallet == lastPallet {
			display = ""
		}
		lastPallet = pallet

		cells := []string{
			display,
			rec[model.FieldQuantity],
			rec[model.FieldBoxes],
			rec["n_parte"],
			description,
			rec["n_lote"],
			rec["fecha"],
		}
		for i, v := range cells {
			fill := i != 4 // description is the only column not sourced from the sheet
			doc.CellFormat(widths[i], 5, tr(v), "1", 0, "C", fill, 0, "")
		}
		doc.Ln(-1)
		totalQty += service.ParseInt(rec[model.FieldQuantity], 0)
	}
	doc.Ln(2.5)
	return totalQty
}

func totalsRow(doc *fpdf.Fpdf, records []model.Record, t model.TradeData, totalQty int) {
	unique := map[string]bool{}
	for _, rec := range records {
		if p := rec[model.FieldPallet]; p != "" {
			unique[p] = true
		}
	}
	w := usable / 5
	grid(doc, []float64{w, w, w, w, w},
		[]string{"Total Pallets", "Dimensions (cm)", "Net weight (Kg)", "Gross weight (Kg)", "Total parts"},
		[]string{fmt.Sprint(len(unique)), t.Dimensions, t.NetWeight, t.GrossWeight, fmt.Sprint(totalQty)})
	doc.Ln(3)
}

func transportRow(doc *fpdf.Fpdf, t model.TradeData) {
	tr := doc.UnicodeTranslatorFromDescriptor("")
	doc.SetFont("Helvetica", "B", 9)
	doc.CellFormat(usable, 5, tr("Información del transporte:"), "", 1, "L", false, 0, "")
	doc.Ln(1)
	w := usable / 5
	grid(doc, []float64{w, w, w, w, w},
		[]string{"BL/AWB", "Linea", "No. De Placa", "No. De Sello", "Nombre del Conductor"},
		[]string{t.BLAWB, t.Linea, t.Placa, t.SelloTransporte, t.Conductor})
	doc.Ln(4)
}

func signatures(doc *fpdf.Fpdf, t model.TradeData, cfg models.PDFConfig) {
	tr := doc.UnicodeTranslatorFromDescriptor("")
	date := t.Fecha
	if date == "" {
		date = time.Now().Format("02/01/2006")
	}
	colW := usable / 3
	doc.SetFont("Helvetica", "", 8)
	doc.CellFormat(colW, 5, "Firma Conductor:", "", 0, "L", false, 0, "")
	doc.CellFormat(colW, 5, "", "", 0, "C", false, 0, "")
	doc.CellFormat(colW, 5, "Fecha: "+date, "", 1, "R", false, 0, "")
	doc.Ln(5)
	doc.CellFormat(colW, 5, tr("Autoriza: "+cfg.Defaults["autoriza"]), "", 0, "L", false, 0, "")
	doc.CellFormat(colW, 5, "", "", 0, "C", false, 0, "")
	doc.CellFormat(colW, 5, "Fecha:", "", 1, "R", false, 0, "")
	doc.CellFormat(usable, 5, tr(cfg.Defaults["cargo_autoriza"]), "", 1, "L", false, 0, "")
}

func fallback(v, def string) string {
	if v != "" {
		return v
	}
	return def
}
