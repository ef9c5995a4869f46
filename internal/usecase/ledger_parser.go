package usecase

import (
	"regexp"
	"strings"

	"customs-reconciliation/internal/domain"

	"github.com/shopspring/decimal"
)

// Ledger lines in the customs export follow this grammar, where every element is a
// whitespace-delimited token:
//
//	entry  = type number date skip skip [skip] amount
//	type   = token ending with "Calculat" or "Pl.Virament"
//	amount = token starting with digits "." digits
//
// The longer form is tried first. Matches never overlap: scanning resumes after the
// amount token of the previous entry.

var amountPrefix = regexp.MustCompile(`^\d+\.\d+`)

// ledgerToken is one grammar match.
type ledgerToken struct {
	docType domain.DocumentType
	number  string
	date    string
	amount  decimal.Decimal
}

// ParseLedger extracts ledger entries from raw export text. Repeated document numbers
// are merged by adding their amounts. Text without any entry yields an empty ledger.
func ParseLedger(text string) *domain.Ledger {
	ledger := domain.NewLedger()
	for _, tok := range scanLedger(text) {
		ledger.Add(domain.LedgerEntry{
			DocumentNumber: tok.number,
			DocumentType:   tok.docType,
			Date:           tok.date,
			Sum:            tok.amount,
		})
	}
	return ledger
}

func scanLedger(text string) []ledgerToken {
	fields := strings.Fields(text)
	var out []ledgerToken
	for i := 0; i < len(fields); {
		tok, next, ok := matchEntryAt(fields, i)
		if !ok {
			i++
			continue
		}
		out = append(out, tok)
		i = next
	}
	return out
}

func matchEntryAt(fields []string, i int) (ledgerToken, int, bool) {
	docType, ok := documentTypeOf(fields[i])
	if !ok {
		return ledgerToken{}, 0, false
	}
	for _, skips := range []int{3, 2} {
		at := i + 3 + skips
		if at >= len(fields) {
			continue
		}
		amount, ok := parseAmount(fields[at])
		if !ok {
			continue
		}
		return ledgerToken{
			docType: docType,
			number:  fields[i+1],
			date:    fields[i+2],
			amount:  amount,
		}, at + 1, true
	}
	return ledgerToken{}, 0, false
}

func documentTypeOf(field string) (domain.DocumentType, bool) {
	for _, t := range []domain.DocumentType{domain.DocumentCalculated, domain.DocumentPaymentOrder} {
		if strings.HasSuffix(field, string(t)) {
			return t, true
		}
	}
	return "", false
}

func parseAmount(field string) (decimal.Decimal, bool) {
	s := amountPrefix.FindString(field)
	if s == "" {
		return decimal.Decimal{}, false
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, false
	}
	return d, true
}
