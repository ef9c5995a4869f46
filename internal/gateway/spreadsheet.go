package gateway

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"customs-reconciliation/internal/domain"

	"github.com/xuri/excelize/v2"
)

// SpreadsheetRepository reads accounting exports and writes reconciliation reports.
// It implements both usecase.TableReader and usecase.TableWriter.
type SpreadsheetRepository struct {
	columns domain.ColumnMap
}

// NewSpreadsheetRepository creates a repository that reads fields from the given columns.
func NewSpreadsheetRepository(columns domain.ColumnMap) *SpreadsheetRepository {
	return &SpreadsheetRepository{columns: columns}
}

// ReadRows reads the first sheet of an .xlsx or .xls workbook, or a CSV export.
func (r *SpreadsheetRepository) ReadRows(ctx context.Context, path string) (domain.SheetRows, error) {
	if err := ctx.Err(); err != nil {
		return domain.SheetRows{}, err
	}
	idx, err := resolveColumns(r.columns)
	if err != nil {
		return domain.SheetRows{}, err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xls":
		return readXLS(path, idx)
	case ".csv":
		return readCSV(path, idx)
	default:
		return readXLSX(path, idx)
	}
}

func readXLSX(path string, idx columnIndex) (domain.SheetRows, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return domain.SheetRows{}, fmt.Errorf("failed to open workbook %s: %w", path, err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	display, err := f.GetRows(sheet)
	if err != nil {
		return domain.SheetRows{}, fmt.Errorf("failed to read sheet %q of %s: %w", sheet, path, err)
	}
	raw, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return domain.SheetRows{}, fmt.Errorf("failed to read raw values of sheet %q of %s: %w", sheet, path, err)
	}

	var rows domain.SheetRows
	for _, record := range display {
		rows.Display = append(rows.Display, idx.cells(record))
	}
	for _, record := range raw {
		rows.Raw = append(rows.Raw, idx.cells(record))
	}
	return rows, nil
}
