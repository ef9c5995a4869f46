package gateway

import (
	"fmt"
	"strconv"
	"strings"

	"customs-reconciliation/internal/domain"

	"github.com/shakinm/xlsReader/xls"
	"github.com/xuri/excelize/v2"
)

const displayDateLayout = "02.01.2006"

// readXLS reads a legacy binary workbook. The format keeps no display formatting we can
// rely on, so the display reading differs from the raw one only in the date column,
// where serial dates are rendered as DD.MM.YYYY.
func readXLS(path string, idx columnIndex) (domain.SheetRows, error) {
	workbook, err := xls.OpenFile(path)
	if err != nil {
		return domain.SheetRows{}, fmt.Errorf("failed to open workbook %s: %w", path, err)
	}
	sheet, err := workbook.GetSheet(0)
	if err != nil || sheet == nil {
		return domain.SheetRows{}, fmt.Errorf("failed to read first sheet of %s: %v", path, err)
	}

	var rows domain.SheetRows
	for i := 0; i <= int(sheet.GetNumberRows()); i++ {
		var record []string
		if row, err := sheet.GetRow(i); err == nil && row != nil {
			for _, col := range row.GetCols() {
				if col == nil {
					record = append(record, "")
					continue
				}
				record = append(record, col.GetString())
			}
		}
		raw := idx.cells(record)
		display := raw
		display.Date = serialDateToText(raw.Date)
		rows.Display = append(rows.Display, display)
		rows.Raw = append(rows.Raw, raw)
	}
	return rows, nil
}

// serialDateToText converts an Excel serial date to DD.MM.YYYY; other text is returned
// unchanged.
func serialDateToText(s string) string {
	serial, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || serial <= 0 {
		return s
	}
	t, err := excelize.ExcelDateToTime(serial, false)
	if err != nil {
		return s
	}
	return t.Format(displayDateLayout)
}
