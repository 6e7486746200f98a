package models

// Per-model configuration document. The JSON shape follows the warehouse
// templates this service was built around, so the field names stay Spanish.

// ModelConfig is one entry of the registry file.
type ModelConfig struct {
	Activo         *bool       `json:"activo,omitempty"` // nil means active
	NombreCompleto string      `json:"nombre_completo,omitempty"`
	Excel          ExcelConfig `json:"excel" validate:"required"`
	PDF            PDFConfig   `json:"pdf" validate:"required"`
}

// Active reports whether the model should be offered to operators.
func (m ModelConfig) Active() bool { return m.Activo == nil || *m.Activo }

// ExcelConfig drives the extraction pipeline for one model.
type ExcelConfig struct {
	// HojaDatos is the data sheet name; empty means first sheet. A named
	// sheet that is missing also falls back to the first sheet.
	HojaDatos    string `json:"hoja_datos,omitempty"`
	HojaCalculos string `json:"hoja_calculos,omitempty"`

	// BuscarHeaderEnFilas bounds the header-row scan (default 5).
	BuscarHeaderEnFilas int      `json:"buscar_header_en_filas,omitempty" validate:"omitempty,min=1,max=50"`
	DetenerEn           []string `json:"detener_en,omitempty"`

	// Columnas maps logical field names to ordered header aliases.
	Columnas map[string][]string `json:"columnas" validate:"required,min=1"`

	// Record fields summed per pallet; defaults peso_lote / peso_acumulado.
	CampoPesoNeto  string `json:"campo_peso_neto,omitempty"`
	CampoPesoBruto string `json:"campo_peso_bruto,omitempty"`

	Calculos *CalcConfig `json:"calculos,omitempty"`
}

// CalcConfig selects how the calculations sheet is read.
type CalcConfig struct {
	Metodo string `json:"metodo" validate:"omitempty,oneof=celda_fija busqueda"`

	// celda_fija: literal coordinates per output field.
	PesoNeto    *CellRef `json:"peso_neto,omitempty"`
	PesoBruto   *CellRef `json:"peso_bruto,omitempty"`
	Dimensiones *CellRef `json:"dimensiones,omitempty"`

	// busqueda: keywords per output field (net_weight, gross_weight,
	// dimensions), matched case-insensitively anywhere in the sheet.
	Keywords map[string][]string `json:"keywords,omitempty"`
}

// CellRef is a zero-based grid coordinate.
type CellRef struct {
	Fila    int `json:"fila" validate:"min=0"`
	Columna int `json:"columna" validate:"min=0"`
}

// PDFConfig holds the fixed parties and defaults printed on the slip.
type PDFConfig struct {
	DescripcionProducto string            `json:"descripcion_producto,omitempty"`
	Shipper             Party             `json:"shipper"`
	ShipTo              Party             `json:"ship_to"`
	BillTo              Party             `json:"bill_to"`
	Defaults            map[string]string `json:"defaults,omitempty"`
}

// Party is one address block on the slip.
type Party struct {
	Nombre    string `json:"nombre,omitempty"`
	Direccion string `json:"direccion,omitempty"`
	Ciudad    string `json:"ciudad,omitempty"`
	Estado    string `json:"estado,omitempty"`
	CP        string `json:"cp,omitempty"`
	TaxID     string `json:"tax_id,omitempty"`
}
