package domain

import "github.com/shopspring/decimal"

// MatchPhase records which matching pass paired a row with a ledger entry.
type MatchPhase string

const (
	PhaseNone      MatchPhase = "none"
	PhaseExact     MatchPhase = "exact"
	PhaseTolerance MatchPhase = "tolerance"
)

// MatchResult associates a valid spreadsheet row with at most one ledger entry.
type MatchResult struct {
	Row   ExcelRow     `json:"row"`
	Entry *LedgerEntry `json:"entry,omitempty"`
	Phase MatchPhase   `json:"phase"`
	Note  string       `json:"note,omitempty"`
}

// Matched reports whether a ledger entry was found for the row.
func (m MatchResult) Matched() bool {
	return m.Entry != nil
}

// LedgerInDebit reports whether the ledger amount belongs in the ledger-debit column of
// the report. Exact matches and matches of rows carrying a credit go there; the rest go
// to the ledger-credit column.
func (m MatchResult) LedgerInDebit() bool {
	return m.Phase == PhaseExact || m.Row.HasCredit()
}

// Difference mirrors the report's difference column: row credit minus ledger debit when
// the row carries a credit, otherwise ledger credit minus row debit. Missing amounts
// count as zero.
func (m MatchResult) Difference() decimal.Decimal {
	var ledgerDebit, ledgerCredit decimal.Decimal
	if m.Entry != nil {
		if m.LedgerInDebit() {
			ledgerDebit = m.Entry.Sum
		} else {
			ledgerCredit = m.Entry.Sum
		}
	}
	if m.Row.HasCredit() {
		return m.Row.Credit.Decimal.Sub(ledgerDebit)
	}
	return ledgerCredit.Sub(m.Row.Debit.Decimal)
}

// Residual splits the ledger entries that no row consumed.
type Residual struct {
	Kept    []LedgerEntry `json:"kept"`    // dated in the reporting month
	Dropped []LedgerEntry `json:"dropped"` // dated in another month
}

// Leftover reports whether any ledger entry was left unconsumed.
func (r Residual) Leftover() bool {
	return len(r.Kept)+len(r.Dropped) > 0
}

// Summary provides high-level statistics of the reconciliation run.
type Summary struct {
	ReportingMonth        int             `json:"reporting_month,omitempty"`
	TotalRowsProcessed    int             `json:"total_rows_processed"`
	ValidRows             int             `json:"valid_rows"`
	InvalidRows           int             `json:"invalid_rows"`
	LedgerEntries         int             `json:"ledger_entries"`
	ExactMatches          int             `json:"exact_matches"`
	ToleranceMatches      int             `json:"tolerance_matches"`
	UnmatchedRows         int             `json:"unmatched_rows"`
	DiscrepantMatches     int             `json:"discrepant_matches"`
	TotalDiscrepancyValue decimal.Decimal `json:"total_discrepancy_value"`
	ResidualKept          int             `json:"residual_kept"`
	ResidualDropped       int             `json:"residual_dropped"`
}

// ReconciliationReport is the outcome of one run. Sheet is what gets written to disk.
type ReconciliationReport struct {
	Summary  Summary       `json:"reconciliation_summary"`
	Matches  []MatchResult `json:"matches"`
	Residual Residual      `json:"residual"`
	Output   string        `json:"output,omitempty"`
	Sheet    Sheet         `json:"-"`
}
