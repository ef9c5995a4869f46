package usecase

import (
	"log/slog"
	"regexp"
	"strconv"
	"strings"

	"customs-reconciliation/internal/domain"

	"github.com/shopspring/decimal"
)

const (
	// DefaultSuffixPattern extracts the numeric tail of a customs declaration number,
	// e.g. A0123 -> 123.
	DefaultSuffixPattern = `^[A-Z]0?(\d+)$`
	// DefaultNotFoundNote annotates rows without a ledger counterpart.
	DefaultNotFoundNote = "* not found"
)

// DefaultTolerance is the largest amount difference accepted by the date+amount pass.
var DefaultTolerance = decimal.NewFromInt(400)

var monthPattern = regexp.MustCompile(`\d+\.(\d+)\.\d+`)

// MatchOptions configures the Matcher.
type MatchOptions struct {
	Tolerance     decimal.Decimal
	SuffixPattern *regexp.Regexp
	NotFoundNote  string
}

// DefaultMatchOptions returns the options used by the accounting department.
func DefaultMatchOptions() MatchOptions {
	return MatchOptions{
		Tolerance:     DefaultTolerance,
		SuffixPattern: regexp.MustCompile(DefaultSuffixPattern),
		NotFoundNote:  DefaultNotFoundNote,
	}
}

// Matcher pairs spreadsheet rows with ledger entries. Every entry it pairs is taken
// out of the ledger, so an entry is used at most once.
type Matcher struct {
	ledger *domain.Ledger
	opts   MatchOptions
	logger *slog.Logger
}

// NewMatcher creates a matcher that consumes entries from ledger.
func NewMatcher(ledger *domain.Ledger, opts MatchOptions, logger *slog.Logger) *Matcher {
	if opts.SuffixPattern == nil {
		opts.SuffixPattern = regexp.MustCompile(DefaultSuffixPattern)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Matcher{ledger: ledger, opts: opts, logger: logger}
}

// Match runs the document-number pass and then the date+amount pass over rows.
// Results keep the order of rows.
func (m *Matcher) Match(rows []domain.ExcelRow) []domain.MatchResult {
	results := make([]domain.MatchResult, len(rows))
	for i, row := range rows {
		results[i] = domain.MatchResult{Row: row, Phase: domain.PhaseNone}
	}

	// Pass 1: numeric suffix of the declaration number + same date
	for i := range results {
		row := results[i].Row
		if !row.IsCustomsDeclaration() {
			continue
		}
		suffix, ok := m.suffixOf(row.DocumentNumber)
		if !ok {
			continue
		}
		found, ok := m.ledger.Find(func(e domain.LedgerEntry) bool {
			return strings.HasSuffix(e.DocumentNumber, suffix) && e.Date == row.Date
		})
		if !ok {
			continue
		}
		m.take(&results[i], found.DocumentNumber, domain.PhaseExact)
	}

	// Pass 2: same date + amount within tolerance, closest amount wins
	for i := range results {
		if results[i].Matched() {
			continue
		}
		if number, ok := m.closestByAmount(results[i].Row); ok {
			m.take(&results[i], number, domain.PhaseTolerance)
			continue
		}
		results[i].Note = m.opts.NotFoundNote
		m.logger.Debug("row has no ledger counterpart",
			"row", results[i].Row.Index, "document", results[i].Row.DocumentNumber)
	}
	return results
}

func (m *Matcher) take(result *domain.MatchResult, number string, phase domain.MatchPhase) {
	entry, ok := m.ledger.Take(number)
	if !ok {
		return
	}
	result.Entry = &entry
	result.Phase = phase
	m.logger.Debug("row matched",
		"row", result.Row.Index, "document", result.Row.DocumentNumber,
		"ledger_document", entry.DocumentNumber, "phase", string(phase))
}

func (m *Matcher) suffixOf(number string) (string, bool) {
	sub := m.opts.SuffixPattern.FindStringSubmatch(number)
	switch {
	case sub == nil:
		return "", false
	case len(sub) > 1:
		return sub[1], sub[1] != ""
	default:
		return sub[0], sub[0] != ""
	}
}

func (m *Matcher) closestByAmount(row domain.ExcelRow) (string, bool) {
	amount := row.ComparisonAmount()
	if !amount.Valid {
		return "", false
	}
	var (
		best     string
		bestDiff decimal.Decimal
		found    bool
	)
	for _, e := range m.ledger.Entries() {
		if e.Date != row.Date {
			continue
		}
		diff := e.Sum.Sub(amount.Decimal).Abs()
		if diff.GreaterThan(m.opts.Tolerance) {
			continue
		}
		if !found || diff.LessThan(bestDiff) {
			best, bestDiff, found = e.DocumentNumber, diff, true
		}
	}
	return best, found
}

// ReportingMonth returns the month of the first row's date.
func ReportingMonth(rows []domain.ExcelRow) (int, bool) {
	if len(rows) == 0 {
		return 0, false
	}
	return monthOf(rows[0].Date)
}

// SplitResidual divides what is left in the ledger into entries dated in month and the
// rest. With no reporting month every leftover is dropped.
func SplitResidual(ledger *domain.Ledger, month int, ok bool) domain.Residual {
	var res domain.Residual
	for _, e := range ledger.Entries() {
		if m, known := monthOf(e.Date); ok && known && m == month {
			res.Kept = append(res.Kept, e)
			continue
		}
		res.Dropped = append(res.Dropped, e)
	}
	return res
}

func monthOf(date string) (int, bool) {
	sub := monthPattern.FindStringSubmatch(date)
	if sub == nil {
		return 0, false
	}
	m, err := strconv.Atoi(sub[1])
	if err != nil {
		return 0, false
	}
	return m, true
}
