package gateway

import (
	"context"
	"fmt"

	"customs-reconciliation/internal/domain"

	"github.com/xuri/excelize/v2"
)

const defaultSheetName = "Sheet1"

// WriteSheet stores the sheet as a single-sheet .xlsx workbook. The file is only
// created once the whole grid has been laid out.
func (r *SpreadsheetRepository) WriteSheet(ctx context.Context, path string, sheet domain.Sheet) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	f := excelize.NewFile()
	defer f.Close()

	name := sheet.Name
	if name == "" {
		name = defaultSheetName
	}
	if name != defaultSheetName {
		if err := f.SetSheetName(defaultSheetName, name); err != nil {
			return fmt.Errorf("failed to name sheet %q: %w", name, err)
		}
	}

	for ri, row := range sheet.Rows {
		for ci, cell := range row {
			if cell.Kind == domain.CellBlank {
				continue
			}
			axis, err := excelize.CoordinatesToCellName(ci+1, ri+1)
			if err != nil {
				return err
			}
			if err := setCell(f, name, axis, cell); err != nil {
				return fmt.Errorf("failed to set cell %s: %w", axis, err)
			}
		}
	}

	for _, m := range sheet.Merges {
		from, err := excelize.CoordinatesToCellName(m.FromCol+1, m.Row+1)
		if err != nil {
			return err
		}
		to, err := excelize.CoordinatesToCellName(m.ToCol+1, m.Row+1)
		if err != nil {
			return err
		}
		if err := f.MergeCell(name, from, to); err != nil {
			return fmt.Errorf("failed to merge %s:%s: %w", from, to, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save report %s: %w", path, err)
	}
	return nil
}

func setCell(f *excelize.File, sheet, axis string, cell domain.Cell) error {
	switch cell.Kind {
	case domain.CellText:
		return f.SetCellStr(sheet, axis, cell.Text)
	case domain.CellNumber:
		return f.SetCellValue(sheet, axis, cell.Number.InexactFloat64())
	case domain.CellFormula:
		return f.SetCellFormula(sheet, axis, cell.Formula)
	}
	return nil
}
