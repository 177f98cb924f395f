package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"sort"

	"github.com/google/subcommands"
	"github.com/varadier/wealthsheet"
)

// entitiesCmd holds the flags for the 'entities' subcommand.
type entitiesCmd struct {
	kind string
}

func (*entitiesCmd) Name() string     { return "entities" }
func (*entitiesCmd) Synopsis() string { return "parse a flat registry and dump the typed entities" }
func (*entitiesCmd) Usage() string {
	return `wsh entities -k <kind> <file.csv>

  Parses a flat registry export against its schema and writes the typed
  entities as JSONL. Kinds: the built-in schema ids, plus "portfoliolog" and
  "debts" for the special-shaped tables.
`
}

func (c *entitiesCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.kind, "k", "assets", "Entity kind to parse the file as")
}

func (c *entitiesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprint(os.Stderr, c.Usage())
		return subcommands.ExitUsageError
	}

	rows, err := readRows(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading registry: %v\n", err)
		return subcommands.ExitFailure
	}

	enc := json.NewEncoder(os.Stdout)

	switch c.kind {
	case "portfoliolog":
		for _, e := range wealthsheet.ParsePortfolioLog(rows) {
			enc.Encode(e)
		}
	case "debts":
		for _, e := range wealthsheet.ParseDebtSchedule(rows) {
			enc.Encode(e)
		}
	default:
		schema, ok := wealthsheet.Schemas[c.kind]
		if !ok {
			fmt.Fprintf(os.Stderr, "Unknown kind %q, want one of %v, portfoliolog, debts\n", c.kind, schemaIDs())
			return subcommands.ExitUsageError
		}
		header := wealthsheet.FindHeaderRow(rows, schema, 0)
		for _, rec := range wealthsheet.ParseRows(rows, header, schema) {
			enc.Encode(rec)
		}
	}
	return subcommands.ExitSuccess
}

func schemaIDs() []string {
	ids := make([]string, 0, len(wealthsheet.Schemas))
	for id := range wealthsheet.Schemas {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
