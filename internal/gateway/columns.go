package gateway

import (
	"fmt"

	"customs-reconciliation/internal/domain"

	"github.com/xuri/excelize/v2"
)

// columnIndex holds zero-based positions resolved from a domain.ColumnMap.
type columnIndex struct {
	ordinal, date, docType, docNumber, debit, credit int
}

func resolveColumns(m domain.ColumnMap) (columnIndex, error) {
	var idx columnIndex
	for _, c := range []struct {
		letter string
		dst    *int
	}{
		{m.Ordinal, &idx.ordinal},
		{m.Date, &idx.date},
		{m.DocumentType, &idx.docType},
		{m.DocumentNumber, &idx.docNumber},
		{m.Debit, &idx.debit},
		{m.Credit, &idx.credit},
	} {
		n, err := excelize.ColumnNameToNumber(c.letter)
		if err != nil {
			return columnIndex{}, fmt.Errorf("invalid column %q: %w", c.letter, err)
		}
		*c.dst = n - 1
	}
	return idx, nil
}

// cells picks the mapped fields out of one record. Short records yield empty strings.
func (c columnIndex) cells(record []string) domain.RowCells {
	at := func(i int) string {
		if i < len(record) {
			return record[i]
		}
		return ""
	}
	return domain.RowCells{
		Ordinal:        at(c.ordinal),
		Date:           at(c.date),
		DocumentType:   at(c.docType),
		DocumentNumber: at(c.docNumber),
		Debit:          at(c.debit),
		Credit:         at(c.credit),
	}
}
