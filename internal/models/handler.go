package models

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// HTTP surface of the registry: list ids, export one config, replace one
// config. The PUT path is how operators import new warehouse templates
// without redeploying.

func ListHandler(reg *Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		activeOnly := r.URL.Query().Get("all") == ""
		writeJSON(w, http.StatusOK, map[string]any{"models": reg.Models(activeOnly)})
	}
}

func GetHandler(reg *Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		mc, ok := reg.Get(id)
		if !ok {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "unknown model " + id})
			return
		}
		writeJSON(w, http.StatusOK, mc)
	}
}

func PutHandler(reg *Registry, logger zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		var mc ModelConfig
		if err := json.NewDecoder(r.Body).Decode(&mc); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "bad model config: " + err.Error()})
			return
		}
		if err := reg.Put(id, mc); err != nil {
			writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
			return
		}
		logger.Info().Str("model", id).Msg("model config updated")
		writeJSON(w, http.StatusOK, map[string]string{"status": "saved", "model": id})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}
