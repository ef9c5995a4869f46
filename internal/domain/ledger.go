package domain

import "github.com/shopspring/decimal"

// DocumentType is the kind of document a ledger line refers to, as printed in the customs export.
type DocumentType string

const (
	// DocumentCalculated is an assessed customs charge.
	DocumentCalculated DocumentType = "Calculat"
	// DocumentPaymentOrder is an actual payment transfer.
	DocumentPaymentOrder DocumentType = "Pl.Virament"
)

// LedgerEntry represents a document extracted from the customs ledger text.
type LedgerEntry struct {
	DocumentNumber string          `json:"document_number"`
	DocumentType   DocumentType    `json:"document_type"`
	Date           string          `json:"date"` // DD.MM.YYYY, compared textually
	Sum            decimal.Decimal `json:"sum"`
}

// Ledger is an insertion-ordered store of ledger entries keyed by document number.
// It is owned by a single reconciliation run and is not safe for concurrent use.
type Ledger struct {
	order   []string
	entries map[string]LedgerEntry
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{entries: make(map[string]LedgerEntry)}
}

// Add stores the entry. If the document number is already present only the sum is
// accumulated; type and date of the first occurrence are kept.
func (l *Ledger) Add(e LedgerEntry) {
	if existing, ok := l.entries[e.DocumentNumber]; ok {
		existing.Sum = existing.Sum.Add(e.Sum)
		l.entries[e.DocumentNumber] = existing
		return
	}
	l.order = append(l.order, e.DocumentNumber)
	l.entries[e.DocumentNumber] = e
}

// Get returns the entry for a document number without consuming it.
func (l *Ledger) Get(number string) (LedgerEntry, bool) {
	e, ok := l.entries[number]
	return e, ok
}

// Take removes and returns the entry for a document number.
func (l *Ledger) Take(number string) (LedgerEntry, bool) {
	e, ok := l.entries[number]
	if !ok {
		return LedgerEntry{}, false
	}
	delete(l.entries, number)
	for i, n := range l.order {
		if n == number {
			l.order = append(l.order[:i], l.order[i+1:]...)
			break
		}
	}
	return e, true
}

// Find returns the first entry, in insertion order, accepted by match.
func (l *Ledger) Find(match func(LedgerEntry) bool) (LedgerEntry, bool) {
	for _, n := range l.order {
		if e := l.entries[n]; match(e) {
			return e, true
		}
	}
	return LedgerEntry{}, false
}

// Entries returns a snapshot of the remaining entries in insertion order.
func (l *Ledger) Entries() []LedgerEntry {
	out := make([]LedgerEntry, 0, len(l.order))
	for _, n := range l.order {
		out = append(out, l.entries[n])
	}
	return out
}

// Len reports how many entries are left.
func (l *Ledger) Len() int {
	return len(l.order)
}
