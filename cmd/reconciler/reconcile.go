package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"

	"customs-reconciliation/internal/domain"
	"customs-reconciliation/internal/usecase"

	"github.com/google/subcommands"
)

// reconcileCmd holds the flags for the 'reconcile' subcommand.
type reconcileCmd struct {
	ledgerFile string
	sheetFile  string
	outputFile string
	details    bool
}

func (*reconcileCmd) Name() string { return "reconcile" }

func (*reconcileCmd) Synopsis() string {
	return "match a customs ledger against the accounting export and write the report"
}

func (*reconcileCmd) Usage() string {
	return `reconciler reconcile -pdf <ledger.pdf|ledger.txt> -sheet <export.xlsx|.xls|.csv> [-o <report.xlsx>]

  Pair every transaction of the accounting export with its customs ledger entry and
  write the merged report. A JSON summary is printed to stdout.
`
}

func (c *reconcileCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ledgerFile, "pdf", "", "Path to the customs ledger PDF (or extracted .txt) (required)")
	f.StringVar(&c.sheetFile, "sheet", "", "Path to the accounting export spreadsheet (required)")
	f.StringVar(&c.outputFile, "o", "", "Path of the report to write. Defaults to a name derived from -sheet.")
	f.BoolVar(&c.details, "details", false, "Include every match and residual entry in the JSON output")
}

func (c *reconcileCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.ledgerFile == "" || c.sheetFile == "" {
		fmt.Fprintln(os.Stderr, "Error: flags -pdf and -sheet are required.")
		return subcommands.ExitUsageError
	}

	a, err := newApp()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	output := c.outputFile
	if output == "" {
		output = usecase.ReportFileName(c.sheetFile, a.cfg.ReportPrefix)
	}

	report, err := a.usecase.Reconcile(ctx, c.ledgerFile, c.sheetFile, output)
	if errors.Is(err, domain.ErrMissingInput) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Reconciliation failed: %v\n", err)
		return subcommands.ExitFailure
	}

	var v interface{} = struct {
		Summary domain.Summary `json:"reconciliation_summary"`
		Output  string         `json:"output"`
	}{report.Summary, report.Output}
	if c.details {
		v = report
	}
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to generate JSON report: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Println(string(out))
	return subcommands.ExitSuccess
}
