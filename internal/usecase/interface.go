package usecase

import (
	"context"

	"customs-reconciliation/internal/domain"
)

// TextExtractor returns the plain text of a ledger export.
//
//go:generate mockgen -destination=mocks/mock_interface.go -source=interface.go
type TextExtractor interface {
	ExtractText(ctx context.Context, path string) (string, error)
}

// TableReader reads the first sheet of a spreadsheet as parallel display and raw rows.
type TableReader interface {
	ReadRows(ctx context.Context, path string) (domain.SheetRows, error)
}

// TableWriter stores a worksheet as a workbook file.
type TableWriter interface {
	WriteSheet(ctx context.Context, path string, sheet domain.Sheet) error
}
