package main

import (
	"fmt"
	"os"

	"ukpostcodes/internal/config"
	httphandler "ukpostcodes/internal/http"
	"ukpostcodes/internal/logger"
	"ukpostcodes/internal/postcode"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	appLogger := logger.New(cfg.Environment, cfg.LogLevel)

	checker := postcode.NewChecker(appLogger)
	handler := httphandler.NewHandler(checker, appLogger)
	router := httphandler.NewRouter(handler, appLogger, cfg.Environment)

	addr := fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
	appLogger.Info().Str("addr", addr).Msg("starting postcode service")

	if err := router.Run(addr); err != nil {
		appLogger.Error().Err(err).Msg("failed to start server")
		os.Exit(1)
	}
}
