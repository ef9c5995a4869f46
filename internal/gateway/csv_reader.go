package gateway

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"customs-reconciliation/internal/domain"
)

// readCSV reads a CSV export of the accounting sheet. CSV carries no formatting, so
// the display and raw readings are the same records.
func readCSV(path string, idx columnIndex) (domain.SheetRows, error) {
	file, err := os.Open(path)
	if err != nil {
		return domain.SheetRows{}, fmt.Errorf("failed to open spreadsheet file %s: %w", path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	var rows domain.SheetRows
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return domain.SheetRows{}, fmt.Errorf("error reading record from %s: %w", path, err)
		}
		cells := idx.cells(record)
		rows.Display = append(rows.Display, cells)
		rows.Raw = append(rows.Raw, cells)
	}
	return rows, nil
}
