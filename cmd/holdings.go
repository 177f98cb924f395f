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

// holdingsCmd holds the flags for the 'holdings' subcommand.
type holdingsCmd struct {
	investments string
	trades      string
	quotes      string
	rates       string
	currency    string
	jsonl       bool
}

func (*holdingsCmd) Name() string     { return "holdings" }
func (*holdingsCmd) Synopsis() string { return "reconcile and value the portfolio holdings" }
func (*holdingsCmd) Usage() string {
	return `wsh holdings -i <investments.csv> [-t <trades.csv>] [-q <quotes.json>] [-r <rates.json>] [-c <currency>] [-jsonl]

  Parses the investments snapshot and the trade log, reconciles quantities,
  values every position, and renders the holdings report.
`
}

func (c *holdingsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.investments, "i", "investments.csv", "Investments snapshot export")
	f.StringVar(&c.trades, "t", "", "Trade log export")
	f.StringVar(&c.quotes, "q", "", "Live quotes JSON payload")
	f.StringVar(&c.rates, "r", "", "Exchange rates JSON payload")
	f.StringVar(&c.currency, "c", "CAD", "Base currency for market values")
	f.BoolVar(&c.jsonl, "jsonl", false, "write the holdings as JSONL instead of a report")
}

func (c *holdingsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	rows, err := readRows(c.investments)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading investments: %v\n", err)
		return subcommands.ExitFailure
	}
	investments := wealthsheet.ParseInvestments(rows)

	var trades []wealthsheet.Trade
	if c.trades != "" {
		tradeRows, err := readRows(c.trades)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading trades: %v\n", err)
			return subcommands.ExitFailure
		}
		trades = wealthsheet.ParseTrades(tradeRows)
	}

	quotes, err := loadQuotes(c.quotes)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading quotes: %v\n", err)
		return subcommands.ExitFailure
	}
	rates, err := loadRates(c.rates)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading rates: %v\n", err)
		return subcommands.ExitFailure
	}

	positions := wealthsheet.Reconcile(investments, trades)
	valued := wealthsheet.Value(positions, quotes, trades, c.currency, rates)

	if c.jsonl {
		if err := wealthsheet.ExportHoldings(os.Stdout, valued); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing holdings: %v\n", err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}

	report := renderer.NewHoldings(wealthsheet.Today(), c.currency, valued)
	printMarkdown(renderer.RenderHoldings(report))
	return subcommands.ExitSuccess
}
