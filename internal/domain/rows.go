package domain

import "github.com/shopspring/decimal"

// RowType is the document category of a spreadsheet row. The values are the literal
// strings used by the accounting export.
type RowType string

const (
	RowCustomsDeclaration   RowType = "Таможенная декларация"
	RowBankOperationExpense RowType = "Банковская операция (расход)"
	RowDebtCorrection       RowType = "Корректировка долга"
)

// Valid reports whether t is one of the recognized categories.
func (t RowType) Valid() bool {
	switch t {
	case RowCustomsDeclaration, RowBankOperationExpense, RowDebtCorrection:
		return true
	}
	return false
}

// RowCells holds the cells of one spreadsheet row that reconciliation looks at,
// addressed by meaning rather than by column letter. A sheet is read twice into
// RowCells: once with display-formatted values and once with raw values.
type RowCells struct {
	Ordinal        string
	Date           string
	DocumentType   string
	DocumentNumber string
	Debit          string
	Credit         string
}

// SheetRows is the parallel display/raw reading of a spreadsheet. Display[i] and Raw[i]
// describe the same source row.
type SheetRows struct {
	Display []RowCells
	Raw     []RowCells
}

// Empty reports whether either representation is missing.
func (s SheetRows) Empty() bool {
	return len(s.Display) == 0 || len(s.Raw) == 0
}

// ColumnMap declares which spreadsheet column holds each field.
type ColumnMap struct {
	Ordinal        string `json:"ordinal"`
	Date           string `json:"date"`
	DocumentType   string `json:"document_type"`
	DocumentNumber string `json:"document_number"`
	Debit          string `json:"debit"`
	Credit         string `json:"credit"`
}

// DefaultColumns is the layout of the accounting export.
var DefaultColumns = ColumnMap{
	Ordinal:        "A",
	Date:           "B",
	DocumentType:   "D",
	DocumentNumber: "J",
	Debit:          "AA",
	Credit:         "AE",
}

// ExcelRow is a validated spreadsheet row.
type ExcelRow struct {
	Index          int                 `json:"index"` // 1-based position in the source sheet
	Ordinal        string              `json:"ordinal"`
	Date           string              `json:"date"`
	DocumentType   RowType             `json:"document_type"`
	DocumentNumber string              `json:"document_number"`
	Debit          decimal.NullDecimal `json:"debit"`
	Credit         decimal.NullDecimal `json:"credit"`
}

// IsCustomsDeclaration reports whether the row is a customs declaration.
func (r ExcelRow) IsCustomsDeclaration() bool {
	return r.DocumentType == RowCustomsDeclaration
}

// HasCredit reports whether the row carries a non-zero credit amount.
func (r ExcelRow) HasCredit() bool {
	return r.Credit.Valid && !r.Credit.Decimal.IsZero()
}

// ComparisonAmount is the amount compared against ledger sums: credit for customs
// declarations, debit otherwise.
func (r ExcelRow) ComparisonAmount() decimal.NullDecimal {
	if r.IsCustomsDeclaration() {
		return r.Credit
	}
	return r.Debit
}
