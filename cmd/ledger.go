package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/varadier/wealthsheet"
	"github.com/varadier/wealthsheet/renderer"
)

// ledgerCmd holds the flags for the 'ledger' subcommand.
type ledgerCmd struct {
	file     string
	mode     string
	currency string
	jsonl    bool
}

func (*ledgerCmd) Name() string     { return "ledger" }
func (*ledgerCmd) Synopsis() string { return "parse and render an income or expense matrix" }
func (*ledgerCmd) Usage() string {
	return `wsh ledger -f <ledger.csv> [-m income|expense] [-c <currency>] [-jsonl]

  Parses a category×month ledger matrix and renders it, with per-category
  and grand totals.
`
}

func (c *ledgerCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "f", "ledger.csv", "Ledger sheet export")
	f.StringVar(&c.mode, "m", "expense", "Which matrix to look for: income or expense")
	f.StringVar(&c.currency, "c", "CAD", "Currency amounts are displayed in")
	f.BoolVar(&c.jsonl, "jsonl", false, "write the parsed matrix as JSON instead of a report")
}

func (c *ledgerCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	mode := wealthsheet.LedgerExpense
	switch c.mode {
	case "income":
		mode = wealthsheet.LedgerIncome
	case "expense":
	default:
		fmt.Fprintf(os.Stderr, "Unknown mode %q, want income or expense\n", c.mode)
		return subcommands.ExitUsageError
	}

	rows, err := readRows(c.file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	data := wealthsheet.ParseLedgerMatrix(rows, mode)

	if c.jsonl {
		if err := wealthsheet.ExportLedger(os.Stdout, data); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing ledger: %v\n", err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}

	printMarkdown(renderer.RenderLedger(renderer.NewLedger(mode, data, c.currency)))
	return subcommands.ExitSuccess
}
