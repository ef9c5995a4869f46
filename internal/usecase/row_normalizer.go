package usecase

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"customs-reconciliation/internal/domain"

	"github.com/shopspring/decimal"
)

var rowDatePattern = regexp.MustCompile(`^\d{1,2}\.\d{1,2}\.\d{2,4}$`)

// NormalizeRow builds an ExcelRow from the display and raw readings of the same source
// row. It returns false when the row is not a reconcilable transaction: no finite
// amount, a malformed date, an unknown document type or an empty document number.
func NormalizeRow(index int, display, raw domain.RowCells) (domain.ExcelRow, bool) {
	row := domain.ExcelRow{
		Index:          index,
		Ordinal:        strings.TrimSpace(raw.Ordinal),
		Date:           strings.TrimSpace(display.Date),
		DocumentType:   domain.RowType(strings.TrimSpace(display.DocumentType)),
		DocumentNumber: strings.TrimSpace(display.DocumentNumber),
		Debit:          parseRawNumber(raw.Debit),
		Credit:         parseRawNumber(raw.Credit),
	}

	amount := row.Debit
	if strings.TrimSpace(raw.Debit) == "" {
		amount = row.Credit
	}
	if !amount.Valid ||
		!rowDatePattern.MatchString(row.Date) ||
		!row.DocumentType.Valid() ||
		row.DocumentNumber == "" {
		return domain.ExcelRow{}, false
	}
	return row, true
}

// NormalizeRows projects every parallel pair of rows and keeps the valid ones in order.
// The second result is the number of rows dropped.
func NormalizeRows(rows domain.SheetRows) ([]domain.ExcelRow, int) {
	n := len(rows.Display)
	if len(rows.Raw) < n {
		n = len(rows.Raw)
	}
	valid := make([]domain.ExcelRow, 0, n)
	for i := 0; i < n; i++ {
		if row, ok := NormalizeRow(i+1, rows.Display[i], rows.Raw[i]); ok {
			valid = append(valid, row)
		}
	}
	return valid, n - len(valid)
}

// parseRawNumber accepts finite numbers only.
func parseRawNumber(s string) decimal.NullDecimal {
	s = strings.TrimSpace(s)
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return decimal.NullDecimal{}
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		d = decimal.NewFromFloat(f)
	}
	return decimal.NullDecimal{Decimal: d, Valid: true}
}
