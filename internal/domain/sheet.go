package domain

import "github.com/shopspring/decimal"

// CellKind tells a table writer how to store a cell.
type CellKind int

const (
	CellBlank CellKind = iota
	CellText
	CellNumber
	CellFormula
)

// Cell is one cell of an output grid.
type Cell struct {
	Kind    CellKind
	Text    string
	Number  decimal.Decimal
	Formula string
}

func TextCell(s string) Cell { return Cell{Kind: CellText, Text: s} }

func NumberCell(d decimal.Decimal) Cell { return Cell{Kind: CellNumber, Number: d} }

func FormulaCell(f string) Cell { return Cell{Kind: CellFormula, Formula: f} }

// AmountCell is a number cell when the amount is present and a blank cell otherwise.
func AmountCell(d decimal.NullDecimal) Cell {
	if !d.Valid {
		return Cell{}
	}
	return NumberCell(d.Decimal)
}

// Merge spans a range of columns on one row. Coordinates are zero-based.
type Merge struct {
	Row     int
	FromCol int
	ToCol   int
}

// Sheet is a single worksheet as an ordered grid of rows.
type Sheet struct {
	Name   string
	Rows   [][]Cell
	Merges []Merge
}
