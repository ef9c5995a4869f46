package usecase_test

import (
	"testing"

	"customs-reconciliation/internal/domain"
	"customs-reconciliation/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func customsCells(date, number, credit string) (domain.RowCells, domain.RowCells) {
	display := domain.RowCells{
		Ordinal:        "1",
		Date:           date,
		DocumentType:   string(domain.RowCustomsDeclaration),
		DocumentNumber: number,
		Credit:         credit,
	}
	raw := display
	return display, raw
}

func TestNormalizeRow(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(display, raw *domain.RowCells)
		wantOK bool
	}{
		{
			name:   "valid customs declaration with credit only",
			mutate: func(display, raw *domain.RowCells) {},
			wantOK: true,
		},
		{
			name: "valid bank operation with debit",
			mutate: func(display, raw *domain.RowCells) {
				display.DocumentType = string(domain.RowBankOperationExpense)
				raw.Credit = ""
				raw.Debit = "250"
			},
			wantOK: true,
		},
		{
			name: "short year",
			mutate: func(display, raw *domain.RowCells) {
				display.Date = "5.3.24"
			},
			wantOK: true,
		},
		{
			name: "padded display values are trimmed",
			mutate: func(display, raw *domain.RowCells) {
				display.Date = " 15.03.2024 "
				display.DocumentType = " " + string(domain.RowDebtCorrection) + " "
				display.DocumentNumber = " A0123 "
			},
			wantOK: true,
		},
		{
			name: "no amount",
			mutate: func(display, raw *domain.RowCells) {
				raw.Credit = ""
			},
		},
		{
			name: "debit is not a number",
			mutate: func(display, raw *domain.RowCells) {
				raw.Debit = "n/a"
			},
		},
		{
			name: "debit is not finite",
			mutate: func(display, raw *domain.RowCells) {
				raw.Debit = "Inf"
			},
		},
		{
			name: "iso date",
			mutate: func(display, raw *domain.RowCells) {
				display.Date = "2024-03-15"
			},
		},
		{
			name: "unknown document type",
			mutate: func(display, raw *domain.RowCells) {
				display.DocumentType = "Invoice"
			},
		},
		{
			name: "empty document number",
			mutate: func(display, raw *domain.RowCells) {
				display.DocumentNumber = "   "
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			display, raw := customsCells("15.03.2024", "A0123", "1000.00")
			tt.mutate(&display, &raw)

			row, ok := usecase.NormalizeRow(7, display, raw)
			assert.Equal(t, tt.wantOK, ok)
			if !ok {
				assert.Equal(t, domain.ExcelRow{}, row)
				return
			}
			assert.Equal(t, 7, row.Index)
			assert.NotContains(t, row.Date, " ")
			assert.True(t, row.DocumentType.Valid())
			assert.Equal(t, "A0123", row.DocumentNumber)
		})
	}
}

func TestNormalizeRow_Amounts(t *testing.T) {
	display, raw := customsCells("15.03.2024", "A0123", "1000.50")
	raw.Debit = "12"

	row, ok := usecase.NormalizeRow(1, display, raw)
	require.True(t, ok)
	require.True(t, row.Credit.Valid)
	require.True(t, row.Debit.Valid)
	assert.Equal(t, "1000.5", row.Credit.Decimal.String())
	assert.Equal(t, "12", row.Debit.Decimal.String())
	assert.Equal(t, "1", row.Ordinal)
}

func TestNormalizeRows_DropsInvalidRows(t *testing.T) {
	header := domain.RowCells{Ordinal: "No.", Date: "Date", DocumentType: "Document", DocumentNumber: "Number", Debit: "Debit", Credit: "Credit"}
	d1, r1 := customsCells("15.03.2024", "A0123", "1000")
	d2, r2 := customsCells("16.03.2024", "", "1000")
	d3, r3 := customsCells("17.03.2024", "A0125", "30")

	rows, invalid := usecase.NormalizeRows(domain.SheetRows{
		Display: []domain.RowCells{header, d1, d2, d3},
		Raw:     []domain.RowCells{header, r1, r2, r3},
	})

	assert.Equal(t, 2, invalid)
	require.Len(t, rows, 2)
	assert.Equal(t, 2, rows[0].Index)
	assert.Equal(t, 4, rows[1].Index)
}
