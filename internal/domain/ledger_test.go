package domain_test

import (
	"testing"

	"customs-reconciliation/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entry(number string, typ domain.DocumentType, date, sum string) domain.LedgerEntry {
	return domain.LedgerEntry{
		DocumentNumber: number,
		DocumentType:   typ,
		Date:           date,
		Sum:            decimal.RequireFromString(sum),
	}
}

func documentNumbers(entries []domain.LedgerEntry) []string {
	var out []string
	for _, e := range entries {
		out = append(out, e.DocumentNumber)
	}
	return out
}

func TestLedger_AddAggregatesDuplicates(t *testing.T) {
	l := domain.NewLedger()
	l.Add(entry("A1", domain.DocumentCalculated, "01.03.2024", "100.25"))
	l.Add(entry("B2", domain.DocumentPaymentOrder, "02.03.2024", "50"))
	l.Add(entry("A1", domain.DocumentPaymentOrder, "09.03.2024", "0.75"))

	require.Equal(t, 2, l.Len())
	got, ok := l.Get("A1")
	require.True(t, ok)
	assert.Equal(t, "101", got.Sum.String())
	assert.Equal(t, domain.DocumentCalculated, got.DocumentType)
	assert.Equal(t, "01.03.2024", got.Date)
	assert.Equal(t, []string{"A1", "B2"}, documentNumbers(l.Entries()))
}

func TestLedger_Take(t *testing.T) {
	l := domain.NewLedger()
	l.Add(entry("A1", domain.DocumentCalculated, "01.03.2024", "1"))
	l.Add(entry("B2", domain.DocumentCalculated, "01.03.2024", "2"))
	l.Add(entry("C3", domain.DocumentCalculated, "01.03.2024", "3"))

	got, ok := l.Take("B2")
	require.True(t, ok)
	assert.Equal(t, "B2", got.DocumentNumber)
	assert.Equal(t, []string{"A1", "C3"}, documentNumbers(l.Entries()))

	_, ok = l.Take("B2")
	assert.False(t, ok, "an entry can only be taken once")
	_, ok = l.Get("B2")
	assert.False(t, ok)
	assert.Equal(t, 2, l.Len())
}

func TestLedger_FindUsesInsertionOrder(t *testing.T) {
	l := domain.NewLedger()
	l.Add(entry("X10", domain.DocumentCalculated, "01.03.2024", "1"))
	l.Add(entry("Y10", domain.DocumentCalculated, "01.03.2024", "2"))

	got, ok := l.Find(func(e domain.LedgerEntry) bool { return e.Date == "01.03.2024" })
	require.True(t, ok)
	assert.Equal(t, "X10", got.DocumentNumber)

	_, ok = l.Find(func(e domain.LedgerEntry) bool { return e.Date == "02.03.2024" })
	assert.False(t, ok)
}

func TestMatchResult_Difference(t *testing.T) {
	ledgerEntry := entry("A1", domain.DocumentCalculated, "01.03.2024", "950")
	credit := decimal.NewNullDecimal(decimal.NewFromInt(1000))
	debit := decimal.NewNullDecimal(decimal.NewFromInt(300))

	tests := []struct {
		name   string
		result domain.MatchResult
		want   string
	}{
		{
			name: "credit row against ledger debit",
			result: domain.MatchResult{
				Row:   domain.ExcelRow{DocumentType: domain.RowCustomsDeclaration, Credit: credit},
				Entry: &ledgerEntry,
				Phase: domain.PhaseExact,
			},
			want: "50",
		},
		{
			name: "debit row against ledger credit",
			result: domain.MatchResult{
				Row:   domain.ExcelRow{DocumentType: domain.RowBankOperationExpense, Debit: debit},
				Entry: &ledgerEntry,
				Phase: domain.PhaseTolerance,
			},
			want: "650",
		},
		{
			name: "unmatched debit row",
			result: domain.MatchResult{
				Row:   domain.ExcelRow{DocumentType: domain.RowBankOperationExpense, Debit: debit},
				Phase: domain.PhaseNone,
			},
			want: "-300",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.result.Difference().String())
		})
	}
}
