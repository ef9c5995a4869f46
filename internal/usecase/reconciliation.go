package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"customs-reconciliation/internal/domain"
)

// Options configures a ReconciliationUseCase.
type Options struct {
	Match  MatchOptions
	Layout ReportLayout
	Logger *slog.Logger
}

// DefaultOptions returns the accounting department's settings with the default logger.
func DefaultOptions() Options {
	return Options{
		Match:  DefaultMatchOptions(),
		Layout: DefaultReportLayout(),
		Logger: slog.Default(),
	}
}

// ReconciliationUseCase orchestrates the reconciliation process.
type ReconciliationUseCase struct {
	extractor TextExtractor
	reader    TableReader
	writer    TableWriter
	opts      Options
}

// NewReconciliationUseCase creates a new instance of the usecase.
func NewReconciliationUseCase(extractor TextExtractor, reader TableReader, writer TableWriter, opts Options) *ReconciliationUseCase {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return &ReconciliationUseCase{
		extractor: extractor,
		reader:    reader,
		writer:    writer,
		opts:      opts,
	}
}

// Reconcile reads both inputs, matches them and writes the merged report to outputPath.
// Nothing is written when an input is missing.
func (uc *ReconciliationUseCase) Reconcile(ctx context.Context, ledgerPath, sheetPath, outputPath string) (*domain.ReconciliationReport, error) {
	// Step 1: Data Ingestion
	text, err := uc.extractor.ExtractText(ctx, ledgerPath)
	if err != nil {
		return nil, fmt.Errorf("could not extract ledger text: %w", err)
	}

	rows, err := uc.reader.ReadRows(ctx, sheetPath)
	if err != nil {
		return nil, fmt.Errorf("could not read spreadsheet rows: %w", err)
	}

	// Step 2: Matching
	report, err := uc.Run(text, rows)
	if err != nil {
		return nil, err
	}

	// Step 3: Output
	if err := uc.writer.WriteSheet(ctx, outputPath, report.Sheet); err != nil {
		return nil, fmt.Errorf("could not write report: %w", err)
	}
	report.Output = outputPath

	uc.opts.Logger.Info("reconciliation finished",
		"output", outputPath,
		"rows", report.Summary.ValidRows,
		"exact", report.Summary.ExactMatches,
		"tolerance", report.Summary.ToleranceMatches,
		"unmatched", report.Summary.UnmatchedRows,
		"residual", report.Summary.ResidualKept)
	return report, nil
}

// Run reconciles already loaded inputs in memory. Every call works on fresh state.
func (uc *ReconciliationUseCase) Run(text string, rows domain.SheetRows) (*domain.ReconciliationReport, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("ledger text: %w", domain.ErrMissingInput)
	}
	if rows.Empty() {
		return nil, fmt.Errorf("spreadsheet rows: %w", domain.ErrMissingInput)
	}

	ledger := ParseLedger(text)
	ledgerSize := ledger.Len()
	valid, invalid := NormalizeRows(rows)
	uc.opts.Logger.Debug("inputs parsed", "ledger_entries", ledgerSize, "valid_rows", len(valid), "invalid_rows", invalid)

	results := NewMatcher(ledger, uc.opts.Match, uc.opts.Logger).Match(valid)

	month, ok := ReportingMonth(valid)
	residual := SplitResidual(ledger, month, ok)
	if !ok && ledger.Len() > 0 {
		uc.opts.Logger.Warn("no reporting month, leftover ledger entries dropped", "count", ledger.Len())
	}

	report := &domain.ReconciliationReport{
		Summary:  summarize(results, residual, ledgerSize, invalid),
		Matches:  results,
		Residual: residual,
		Sheet:    AssembleReport(uc.opts.Layout, results, residual),
	}
	if ok {
		report.Summary.ReportingMonth = month
	}
	return report, nil
}

// Ledger extracts and parses the ledger text alone.
func (uc *ReconciliationUseCase) Ledger(ctx context.Context, ledgerPath string) ([]domain.LedgerEntry, error) {
	text, err := uc.extractor.ExtractText(ctx, ledgerPath)
	if err != nil {
		return nil, fmt.Errorf("could not extract ledger text: %w", err)
	}
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("ledger text: %w", domain.ErrMissingInput)
	}
	return ParseLedger(text).Entries(), nil
}

func summarize(results []domain.MatchResult, residual domain.Residual, ledgerSize, invalid int) domain.Summary {
	s := domain.Summary{
		TotalRowsProcessed: len(results) + invalid,
		ValidRows:          len(results),
		InvalidRows:        invalid,
		LedgerEntries:      ledgerSize,
		ResidualKept:       len(residual.Kept),
		ResidualDropped:    len(residual.Dropped),
	}
	for _, r := range results {
		switch r.Phase {
		case domain.PhaseExact:
			s.ExactMatches++
		case domain.PhaseTolerance:
			s.ToleranceMatches++
		default:
			s.UnmatchedRows++
			continue
		}
		if diff := r.Difference(); !diff.IsZero() {
			s.DiscrepantMatches++
			s.TotalDiscrepancyValue = s.TotalDiscrepancyValue.Add(diff.Abs())
		}
	}
	return s
}

// ReportFileName derives the report name from the spreadsheet name: the prefix is
// prepended and the extension is forced to .xlsx.
func ReportFileName(sheetPath, prefix string) string {
	dir, base := filepath.Split(sheetPath)
	lower := strings.ToLower(base)
	switch {
	case strings.HasSuffix(lower, ".xlsx"):
	case strings.HasSuffix(lower, ".xls"):
		base += "x"
	default:
		base += ".xlsx"
	}
	return filepath.Join(dir, prefix+base)
}
