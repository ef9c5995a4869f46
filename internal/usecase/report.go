package usecase

import (
	"fmt"

	"customs-reconciliation/internal/domain"

	"github.com/shopspring/decimal"
)

// Report columns by zero-based index. Column A stays empty.
const (
	colOrdinal = iota + 1
	colDate
	colDocumentType
	colDocumentNumber
	colRowDebit
	colRowCredit
	colLedgerDebit
	colLedgerCredit
	colGap
	colDifference
	colNote
	reportWidth
)

const (
	headerRows         = 3 // running total, titles, labels
	residualGap        = 3
	letterDebit        = "F"
	letterCredit       = "G"
	letterLedgerDebit  = "H"
	letterLedgerCredit = "I"
)

// ReportLayout holds the texts printed in the report header.
type ReportLayout struct {
	SheetName        string
	CompanyTitle     string
	CounterpartTitle string
}

// DefaultReportLayout returns the header used by the accounting department.
func DefaultReportLayout() ReportLayout {
	return ReportLayout{
		SheetName:        "Vama",
		CompanyTitle:     "FORWARD INTERNATIONAL SRL",
		CounterpartTitle: "Vama Chisinau",
	}
}

var columnLabels = []string{
	colOrdinal:        "No.",
	colDate:           "Date",
	colDocumentType:   "Document",
	colDocumentNumber: "Document No.",
	colRowDebit:       "Debit",
	colRowCredit:      "Credit",
	colLedgerDebit:    "Debit",
	colLedgerCredit:   "Credit",
	colGap:            "",
	colDifference:     "Difference",
	colNote:           "Note",
}

// AssembleReport lays out the match results and the residual ledger entries as a
// single worksheet.
func AssembleReport(layout ReportLayout, results []domain.MatchResult, residual domain.Residual) domain.Sheet {
	sheet := domain.Sheet{Name: layout.SheetName}

	firstData := headerRows + 1
	lastData := headerRows + len(results)
	if lastData < firstData {
		lastData = firstData
	}
	total := newReportRow()
	total[colLedgerDebit] = domain.FormulaCell(fmt.Sprintf("SUM(%s%d:%s%d)",
		letterLedgerDebit, firstData, letterLedgerDebit, lastData))
	sheet.Rows = append(sheet.Rows, total)

	titles := newReportRow()
	titles[colRowDebit] = domain.TextCell(layout.CompanyTitle)
	titles[colLedgerDebit] = domain.TextCell(layout.CounterpartTitle)
	sheet.Rows = append(sheet.Rows, titles)
	sheet.Merges = append(sheet.Merges,
		domain.Merge{Row: 1, FromCol: colRowDebit, ToCol: colRowCredit},
		domain.Merge{Row: 1, FromCol: colLedgerDebit, ToCol: colLedgerCredit},
	)

	labels := newReportRow()
	for i, l := range columnLabels {
		if l != "" {
			labels[i] = domain.TextCell(l)
		}
	}
	sheet.Rows = append(sheet.Rows, labels)

	for _, res := range results {
		sheet.Rows = append(sheet.Rows, matchRow(res, len(sheet.Rows)+1))
	}

	if !residual.Leftover() {
		return sheet
	}
	for i := 0; i < residualGap; i++ {
		sheet.Rows = append(sheet.Rows, []domain.Cell{})
	}
	for _, e := range residual.Kept {
		sheet.Rows = append(sheet.Rows, residualRow(e))
	}
	return sheet
}

func newReportRow() []domain.Cell {
	return make([]domain.Cell, reportWidth)
}

// matchRow renders one result; line is the 1-based sheet row it will occupy.
func matchRow(res domain.MatchResult, line int) []domain.Cell {
	row := newReportRow()
	row[colOrdinal] = ordinalCell(res.Row.Ordinal)
	row[colDate] = domain.TextCell(res.Row.Date)
	row[colDocumentType] = domain.TextCell(string(res.Row.DocumentType))
	row[colDocumentNumber] = domain.TextCell(res.Row.DocumentNumber)
	row[colRowDebit] = domain.AmountCell(res.Row.Debit)
	row[colRowCredit] = domain.AmountCell(res.Row.Credit)
	if res.Entry != nil {
		if res.LedgerInDebit() {
			row[colLedgerDebit] = domain.NumberCell(res.Entry.Sum)
		} else {
			row[colLedgerCredit] = domain.NumberCell(res.Entry.Sum)
		}
	}
	if res.Row.HasCredit() {
		row[colDifference] = domain.FormulaCell(fmt.Sprintf("%s%d-%s%d", letterCredit, line, letterLedgerDebit, line))
	} else {
		row[colDifference] = domain.FormulaCell(fmt.Sprintf("%s%d-%s%d", letterLedgerCredit, line, letterDebit, line))
	}
	if res.Note != "" {
		row[colNote] = domain.TextCell(res.Note)
	}
	return row
}

func residualRow(e domain.LedgerEntry) []domain.Cell {
	row := newReportRow()
	row[colDate] = domain.TextCell(e.Date)
	row[colDocumentType] = domain.TextCell(string(e.DocumentType))
	row[colDocumentNumber] = domain.TextCell(e.DocumentNumber)
	if e.DocumentType == domain.DocumentCalculated {
		row[colLedgerDebit] = domain.NumberCell(e.Sum)
	} else {
		row[colLedgerCredit] = domain.NumberCell(e.Sum)
	}
	return row
}

func ordinalCell(s string) domain.Cell {
	if s == "" {
		return domain.Cell{}
	}
	if d, err := decimal.NewFromString(s); err == nil {
		return domain.NumberCell(d)
	}
	return domain.TextCell(s)
}
