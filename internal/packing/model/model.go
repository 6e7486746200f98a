package model

// Logical field names with special meaning during extraction. They are keys
// of the per-model alias map (columnas) and of the emitted records.
const (
	FieldPallet   = "numero_pallet"
	FieldQuantity = "cantidad"
	FieldBoxes    = "total_cajas"
)

// Record is one shipment line item. Keys are the logical field names of the
// model's alias map; values are trimmed cell strings ("" for blank cells and
// unresolved columns).
type Record map[string]string

// ColumnReport maps every logical field to the sheet header it resolved to.
// An unresolved field is present with an empty value, never omitted: the
// operator checks this report before generating a PDF.
type ColumnReport map[string]string

// WeightSums holds the running per-pallet weight sums.
type WeightSums struct {
	Net   float64 `json:"net"`
	Gross float64 `json:"gross"`
}

// PalletTotals is the per-pallet aggregation result. Keys is display order:
// pallet identifiers sorted by numeric value, non-numeric identifiers first
// (rank 0). Net and Gross are aligned with Keys and formatted to 2 decimals.
type PalletTotals struct {
	Sums       map[string]WeightSums `json:"sums"`
	Keys       []string              `json:"keys"`
	Net        []string              `json:"net"`
	Gross      []string              `json:"gross"`
	NetTotal   string                `json:"net_total"`
	GrossTotal string                `json:"gross_total"`
}

// CalcResult carries the scalar values pulled from the calculations sheet.
// Every field defaults to ""; this extraction is best-effort.
type CalcResult struct {
	NetWeight   string `json:"net_weight"`
	GrossWeight string `json:"gross_weight"`
	Dimensions  string `json:"dimensions"`
}

// Summary mirrors the counters the operator sees before generating a PDF.
type Summary struct {
	Registros   int `json:"registros"`
	Pallets     int `json:"pallets"`
	TotalPiezas int `json:"total_piezas"`
	TotalCajas  int `json:"total_cajas"`
}

// ExtractResult is the JSON payload of POST /extract.
type ExtractResult struct {
	Model     string       `json:"model"`
	Sheet     string       `json:"sheet"`
	HeaderRow int          `json:"header_row"`
	Records   []Record     `json:"records"`
	Columns   ColumnReport `json:"columns"`
	Pallets   PalletTotals `json:"pallets"`
	Calc      CalcResult   `json:"calc"`
	Summary   Summary      `json:"summary"`
}

// TradeData is the operator-entered foreign trade form. Blank fields fall
// back to the model's pdf defaults at render time.
type TradeData struct {
	ShippingDate       string `json:"shipping_date"`
	SealNo             string `json:"seal_no"`
	PackingSlipNo      string `json:"packing_slip_no"`
	CommercialInvoice  string `json:"commercial_invoice"`
	ShipToName         string `json:"ship_to_name"`
	ShipToAddress      string `json:"ship_to_address"`
	ShipToCity         string `json:"ship_to_city"`
	ShipToTax          string `json:"ship_to_tax"`
	BillToName         string `json:"bill_to_name"`
	BillToAddress      string `json:"bill_to_address"`
	BillToCity         string `json:"bill_to_city"`
	BillToState        string `json:"bill_to_state"`
	ShippingMethod     string `json:"shipping_method"`
	Incoterm           string `json:"incoterm"`
	CountryOrigin      string `json:"country_origin"`
	CountryDestination string `json:"country_destination"`
	Dimensions         string `json:"dimensions"`
	NetWeight          string `json:"net_weight"`
	GrossWeight        string `json:"gross_weight"`
	BLAWB              string `json:"bl_awb"`
	Linea              string `json:"linea"`
	Placa              string `json:"placa"`
	SelloTransporte    string `json:"sello_transporte"`
	Conductor          string `json:"conductor"`
	Fecha              string `json:"fecha"`
}
