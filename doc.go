// Package wealthsheet converts loosely structured spreadsheet exports
// (asset registries, trade logs, account registries and category×month
// income/expense ledgers) into a typed data model, reconciles snapshot
// holdings against the trade log, and values the resulting positions in a
// base currency.
//
// The package is a pure transformation layer: it performs no I/O, never
// raises on malformed input, and consumes live prices and exchange rates as
// plain maps handed in by the caller.
package wealthsheet
