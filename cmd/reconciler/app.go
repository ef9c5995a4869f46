package main

import (
	"flag"
	"log/slog"
	"os"

	"customs-reconciliation/internal/config"
	"customs-reconciliation/internal/gateway"
	"customs-reconciliation/internal/usecase"
)

var envFile = flag.String("env", ".env", "Path to an optional .env file with RECON_* settings")

// app is the wired application shared by the subcommands.
type app struct {
	cfg     config.Config
	logger  *slog.Logger
	usecase *usecase.ReconciliationUseCase
}

func newApp() (*app, error) {
	cfg, err := config.Load(*envFile)
	if err != nil {
		return nil, err
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))

	// --- Dependency Injection (Wiring the application) ---
	extractor := gateway.NewPDFTextExtractor()
	sheets := gateway.NewSpreadsheetRepository(cfg.Columns)
	uc := usecase.NewReconciliationUseCase(extractor, sheets, sheets, cfg.Options(logger))

	return &app{cfg: cfg, logger: logger, usecase: uc}, nil
}
