package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

// ledgerCmd prints the entries parsed from a customs ledger.
type ledgerCmd struct {
	ledgerFile string
}

func (*ledgerCmd) Name() string     { return "ledger" }
func (*ledgerCmd) Synopsis() string { return "print the entries parsed from a customs ledger" }
func (*ledgerCmd) Usage() string {
	return `reconciler ledger -pdf <ledger.pdf|ledger.txt>

  Print the ledger entries as JSON, in the order they first appear.
`
}

func (c *ledgerCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ledgerFile, "pdf", "", "Path to the customs ledger PDF (or extracted .txt) (required)")
}

func (c *ledgerCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.ledgerFile == "" {
		fmt.Fprintln(os.Stderr, "Error: flag -pdf is required.")
		return subcommands.ExitUsageError
	}
	a, err := newApp()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	entries, err := a.usecase.Ledger(ctx, c.ledgerFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	a.logger.Debug("ledger parsed", "entries", len(entries))

	out, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to generate JSON: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Println(string(out))
	return subcommands.ExitSuccess
}
