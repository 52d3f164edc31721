package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/pflag"

	"ukpostcodes/internal/config"
	"ukpostcodes/internal/logger"
	"ukpostcodes/internal/postcode"
	"ukpostcodes/internal/report"
	"ukpostcodes/internal/service"
)

func main() {
	file := pflag.StringP("file", "f", "", "CSV file to validate (defaults to IMPORT_CSV_PATH)")
	column := pflag.IntP("column", "c", -1, "zero-based column holding the postcode (defaults to IMPORT_CSV_COLUMN)")
	pflag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *file != "" {
		cfg.Import.CSVPath = *file
	}
	if *column >= 0 {
		cfg.Import.CSVColumn = *column
	}
	if cfg.Import.CSVPath == "" {
		fmt.Fprintln(os.Stderr, "no CSV file given: use --file or IMPORT_CSV_PATH")
		os.Exit(2)
	}

	appLogger := logger.NewCLI(cfg.Environment, cfg.LogLevel)

	f, err := os.Open(cfg.Import.CSVPath)
	if err != nil {
		appLogger.Fatal().Err(err).Str("path", cfg.Import.CSVPath).Msg("failed to open csv")
	}
	defer f.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	importer := service.NewImportService(postcode.NewChecker(appLogger), nil, appLogger)
	src := service.NewCSVSource(filepath.Base(cfg.Import.CSVPath), f, cfg.Import.CSVColumn)

	fmt.Printf("Processing file: %s\n", filepath.Base(cfg.Import.CSVPath))
	result, err := importer.Run(ctx, src)
	if result != nil {
		report.Write(os.Stdout, result, "Line")
	}
	if err != nil {
		appLogger.Error().Err(err).Msg("csv validation failed")
		os.Exit(1)
	}
}
