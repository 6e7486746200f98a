package handler

import (
	"encoding/json"
	"net/http"

	"packing-service/internal/packing/model"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func formValue(r *http.Request, key, def string) string {
	if v := r.FormValue(key); v != "" {
		return v
	}
	return def
}

// tradeFromForm collects the foreign-trade form of the generate step. Blank
// fields stay blank here; model defaults apply at render time.
func tradeFromForm(r *http.Request) model.TradeData {
	t := model.TradeData{
		ShippingDate:       r.FormValue("shipping_date"),
		SealNo:             formValue(r, "seal_no", "N/A"),
		PackingSlipNo:      r.FormValue("packing_slip_no"),
		CommercialInvoice:  r.FormValue("commercial_invoice"),
		ShipToName:         r.FormValue("ship_to_name"),
		ShipToAddress:      r.FormValue("ship_to_address"),
		ShipToCity:         r.FormValue("ship_to_city"),
		ShipToTax:          r.FormValue("ship_to_tax"),
		BillToName:         r.FormValue("bill_to_name"),
		BillToAddress:      r.FormValue("bill_to_address"),
		BillToCity:         r.FormValue("bill_to_city"),
		BillToState:        r.FormValue("bill_to_state"),
		ShippingMethod:     formValue(r, "shipping_method", "LTL"),
		Incoterm:           formValue(r, "incoterm", "FCA"),
		CountryOrigin:      formValue(r, "country_origin", "México"),
		CountryDestination: formValue(r, "country_destination", "Mexico"),
		Dimensions:         r.FormValue("dimensions"),
		NetWeight:          r.FormValue("net_weight"),
		GrossWeight:        r.FormValue("gross_weight"),
		BLAWB:              formValue(r, "bl_awb", "-"),
		Linea:              r.FormValue("linea"),
		Placa:              r.FormValue("placa"),
		SelloTransporte:    formValue(r, "sello_transporte", "-"),
		Conductor:          r.FormValue("conductor"),
	}
	t.Fecha = formValue(r, "fecha", t.ShippingDate)
	return t
}
