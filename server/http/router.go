package serverhttp

import (
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"packing-service/internal/config"
	"packing-service/internal/middleware"
	"packing-service/internal/models"
	packHnd "packing-service/internal/packing/handler"
	"packing-service/server/http/handlers"
)

func NewRouter(cfg config.Config, reg *models.Registry, logger zerolog.Logger) *chi.Mux {
	r := chi.NewRouter()

	// order matters: recover -> requestID -> logging -> cors -> limit
	r.Use(middleware.Recover(logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.Logging(logger))
	r.Use(middleware.CORS(cfg.AllowOrigins))
	r.Use(middleware.LimitBytes(int64(cfg.MaxUploadMB) * 1024 * 1024))

	r.Get("/health", handlers.Health)

	// model registry (per-warehouse-template configuration)
	r.Get("/models", models.ListHandler(reg))
	r.Get("/models/{id}", models.GetHandler(reg))
	r.Put("/models/{id}", models.PutHandler(reg, logger))

	// extraction preview and PDF generation
	r.Post("/extract", packHnd.Extract(cfg, reg, logger))
	r.Post("/packing-slip", packHnd.PackingSlip(cfg, reg, logger))

	return r
}
