package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"regexp"
	"strings"

	"customs-reconciliation/internal/domain"
	"customs-reconciliation/internal/usecase"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

// Environment variables read by Load.
const (
	EnvTolerance        = "RECON_AMOUNT_TOLERANCE"
	EnvSuffixPattern    = "RECON_SUFFIX_PATTERN"
	EnvNotFoundNote     = "RECON_NOT_FOUND_NOTE"
	EnvSheetName        = "RECON_SHEET_NAME"
	EnvCompanyTitle     = "RECON_COMPANY_TITLE"
	EnvCounterpartTitle = "RECON_COUNTERPART_TITLE"
	EnvReportPrefix     = "RECON_REPORT_PREFIX"
	EnvColumns          = "RECON_COLUMNS"
	EnvLogLevel         = "RECON_LOG_LEVEL"
)

// Config holds the organization specific settings of a reconciliation.
type Config struct {
	Tolerance     decimal.Decimal
	SuffixPattern *regexp.Regexp
	NotFoundNote  string
	Layout        usecase.ReportLayout
	ReportPrefix  string
	Columns       domain.ColumnMap
	LogLevel      slog.Level
}

// Default returns the built-in settings.
func Default() Config {
	match := usecase.DefaultMatchOptions()
	return Config{
		Tolerance:     match.Tolerance,
		SuffixPattern: match.SuffixPattern,
		NotFoundNote:  match.NotFoundNote,
		Layout:        usecase.DefaultReportLayout(),
		ReportPrefix:  "vama-",
		Columns:       domain.DefaultColumns,
		LogLevel:      slog.LevelInfo,
	}
}

// Load reads the given .env files (a missing file is not an error) and then applies
// RECON_* environment variables over the defaults. Variables already set in the
// environment win over .env values.
func Load(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("failed to load %s: %w", f, err)
		}
	}

	cfg := Default()
	if v := os.Getenv(EnvTolerance); v != "" {
		d, err := decimal.NewFromString(strings.TrimSpace(v))
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvTolerance, err)
		}
		if d.IsNegative() {
			return Config{}, fmt.Errorf("%s: tolerance must not be negative", EnvTolerance)
		}
		cfg.Tolerance = d
	}
	if v := os.Getenv(EnvSuffixPattern); v != "" {
		re, err := regexp.Compile(v)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvSuffixPattern, err)
		}
		cfg.SuffixPattern = re
	}
	if v, ok := os.LookupEnv(EnvNotFoundNote); ok {
		cfg.NotFoundNote = v
	}
	if v := os.Getenv(EnvSheetName); v != "" {
		cfg.Layout.SheetName = v
	}
	if v := os.Getenv(EnvCompanyTitle); v != "" {
		cfg.Layout.CompanyTitle = v
	}
	if v := os.Getenv(EnvCounterpartTitle); v != "" {
		cfg.Layout.CounterpartTitle = v
	}
	if v, ok := os.LookupEnv(EnvReportPrefix); ok {
		cfg.ReportPrefix = v
	}
	if v := os.Getenv(EnvColumns); v != "" {
		cols, err := ParseColumns(v, cfg.Columns)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvColumns, err)
		}
		cfg.Columns = cols
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(v)); err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvLogLevel, err)
		}
	}
	return cfg, nil
}

// ParseColumns overrides entries of base from a list such as "date=C,debit=AB".
func ParseColumns(s string, base domain.ColumnMap) (domain.ColumnMap, error) {
	cols := base
	for _, pair := range strings.Split(s, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		field, letter, ok := strings.Cut(pair, "=")
		if !ok {
			return domain.ColumnMap{}, fmt.Errorf("expected field=column, got %q", pair)
		}
		letter = strings.ToUpper(strings.TrimSpace(letter))
		switch strings.ToLower(strings.TrimSpace(field)) {
		case "ordinal":
			cols.Ordinal = letter
		case "date":
			cols.Date = letter
		case "document_type", "type":
			cols.DocumentType = letter
		case "document_number", "number":
			cols.DocumentNumber = letter
		case "debit":
			cols.Debit = letter
		case "credit":
			cols.Credit = letter
		default:
			return domain.ColumnMap{}, fmt.Errorf("unknown column field %q", field)
		}
	}
	return cols, nil
}

// Options converts the configuration into use case options.
func (c Config) Options(logger *slog.Logger) usecase.Options {
	return usecase.Options{
		Match: usecase.MatchOptions{
			Tolerance:     c.Tolerance,
			SuffixPattern: c.SuffixPattern,
			NotFoundNote:  c.NotFoundNote,
		},
		Layout: c.Layout,
		Logger: logger,
	}
}
