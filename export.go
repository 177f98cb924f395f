package wealthsheet

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// this file contains functions to hand parsed results to the layers outside
// this package (presentation, simulation, export). The format is JSONL:
// human readable, single file, easy to diff and merge.

// ExportHoldings writes valued positions to 'w', one JSON object per line.
func ExportHoldings(w io.Writer, positions []ValuedPosition) error {
	for _, pos := range positions {
		data, err := json.Marshal(pos)
		if err != nil {
			return fmt.Errorf("cannot marshal position %q: %w", pos.Ticker, err)
		}
		if _, err := w.Write(append(data, '\n')); err != nil {
			return fmt.Errorf("cannot write holdings export: %w", err)
		}
	}
	return nil
}

// ImportHoldings reads valued positions from 'r' in the export format. Blank
// lines are ignored.
func ImportHoldings(r io.Reader) ([]ValuedPosition, error) {
	var positions []ValuedPosition
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		var pos ValuedPosition
		if err := json.Unmarshal([]byte(line), &pos); err != nil {
			return nil, fmt.Errorf("cannot parse line of holdings export: %q: %w", line, err)
		}
		positions = append(positions, pos)
	}
	return positions, scanner.Err()
}

// ExportLedger writes a parsed ledger matrix to 'w' as a single JSON object.
func ExportLedger(w io.Writer, data LedgerData) error {
	enc := json.NewEncoder(w)
	if err := enc.Encode(data); err != nil {
		return fmt.Errorf("cannot write ledger export: %w", err)
	}
	return nil
}
