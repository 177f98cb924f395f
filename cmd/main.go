// Package cmd implements the wsh subcommands.
package cmd

import (
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/varadier/wealthsheet"
)

// Register the subcommands.
func Register(c *subcommands.Commander) {
	c.Register(&holdingsCmd{}, "portfolio")
	c.Register(&ledgerCmd{}, "ledgers")
	c.Register(&entitiesCmd{}, "registries")
	c.Register(&topicCmd{}, "documentation")
}

// CommandNames lists every registered subcommand, for shell completion.
func CommandNames() []string {
	return []string{"holdings", "ledger", "entities", "topic"}
}

// readRows reads a spreadsheet export file and splits it into rows.
func readRows(path string) ([][]string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read %q: %w", path, err)
	}
	return wealthsheet.SplitRows(string(raw)), nil
}

// loadQuotes loads a live-quote map from a provider JSON file, or an empty
// map when no path is given.
func loadQuotes(path string) (map[string]float64, error) {
	if path == "" {
		return map[string]float64{}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open quotes %q: %w", path, err)
	}
	defer f.Close()
	return wealthsheet.LoadQuotes(f, "", "", "")
}

// loadRates loads an exchange-rate map from a provider JSON file, or an
// empty map when no path is given.
func loadRates(path string) (map[string]float64, error) {
	if path == "" {
		return map[string]float64{}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open rates %q: %w", path, err)
	}
	defer f.Close()
	return wealthsheet.LoadRates(f, "")
}
