package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"packing-service/internal/config"
	"packing-service/internal/models"
	serverhttp "packing-service/server/http"
)

func main() {
	cfg := config.Load()
	logger := config.SetupLogger(cfg)

	reg, err := models.Load(cfg.ModelsFile)
	if err != nil {
		logger.Fatal().Err(err).Str("file", cfg.ModelsFile).Msg("load model registry")
	}
	if n := len(reg.Models(false)); n == 0 {
		logger.Warn().Str("file", cfg.ModelsFile).Msg("model registry is empty")
	} else {
		logger.Info().Int("models", n).Msg("model registry loaded")
	}

	r := serverhttp.NewRouter(cfg, reg, logger)

	srv := &http.Server{Addr: cfg.Addr(), Handler: r}
	logger.Info().Str("addr", cfg.Addr()).Msg("server starting")

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("listen")
		}
	}()

	// graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	logger.Info().Msg("server shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctx)
	logger.Info().Msg("bye")
}
