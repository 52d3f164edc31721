package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"

	"ukpostcodes/internal/config"
	"ukpostcodes/internal/db"
	"ukpostcodes/internal/logger"
	"ukpostcodes/internal/postcode"
	"ukpostcodes/internal/report"
	"ukpostcodes/internal/repository"
	"ukpostcodes/internal/service"
)

func main() {
	history := pflag.IntP("history", "n", 0, "print the N most recent runs for this source after validating")
	pflag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	appLogger := logger.NewCLI(cfg.Environment, cfg.LogLevel)

	database, err := db.New(cfg, appLogger)
	if err != nil {
		appLogger.Fatal().Err(err).Msg("failed to connect database")
	}

	postcodeRepo, err := repository.NewPostcodeRepository(database, cfg.Import.DBTable, cfg.Import.DBColumn)
	if err != nil {
		appLogger.Fatal().Err(err).Msg("invalid import source")
	}
	runRepo := repository.NewImportRunRepository(database)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	importer := service.NewImportService(postcode.NewChecker(appLogger), runRepo, appLogger)

	result, err := importer.Run(ctx, service.NewDBSource(postcodeRepo))
	if result != nil {
		report.Write(os.Stdout, result, "Row")
	}
	if err != nil {
		appLogger.Error().Err(err).Msg("database validation failed")
		os.Exit(1)
	}

	if *history > 0 {
		runs, err := importer.History(ctx, postcodeRepo.Name(), *history)
		if err != nil {
			appLogger.Error().Err(err).Msg("failed to load run history")
			os.Exit(1)
		}
		report.WriteHistory(os.Stdout, postcodeRepo.Name(), runs)
	}
}
