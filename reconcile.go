package wealthsheet

import (
	"math"
	"slices"
	"strings"
)

// DerivedAccount is the sentinel account label for positions that exist only
// because of trade activity, with no corresponding snapshot row.
const DerivedAccount = "derived"

// quantityEpsilon is the threshold below which a quantity is considered a
// floating-point residue of a fully closed position.
const quantityEpsilon = 1e-6

// ReconciledPosition is a snapshot position whose quantity has been adjusted
// by the net trade volume of its ticker.
type ReconciledPosition struct {
	Investment
	// TradeDelta is the share of the ticker's net traded quantity applied to
	// this position.
	TradeDelta float64 `json:"tradeDelta"`
}

// NetTradeDeltas sums the signed quantity per normalized ticker across
// trades: BUY adds, SELL subtracts.
func NetTradeDeltas(trades []Trade) map[string]float64 {
	deltas := make(map[string]float64)
	for _, t := range trades {
		ticker := NormalizeTicker(t.Ticker)
		if ticker == "" {
			continue
		}
		if t.Side == Sell {
			deltas[ticker] -= t.Quantity
		} else {
			deltas[ticker] += t.Quantity
		}
	}
	return deltas
}

// Reconcile merges snapshot positions with the trade log into final
// quantities, without double counting. The snapshot is authoritative for what
// it covers; each ticker's net traded quantity is distributed across the
// ticker's accounts proportionally to their share of the snapshot quantity.
// A ticker that appears only in trades becomes a single derived position,
// unless its net quantity is a rounding residue of zero, in which case it is
// omitted entirely.
//
// Invariant: per ticker, the sum of reconciled quantities equals the sum of
// snapshot quantities plus the ticker's net trade delta, exactly.
func Reconcile(snapshot []Investment, trades []Trade) []ReconciledPosition {
	deltas := NetTradeDeltas(trades)

	// Group snapshot positions by ticker, preserving input order.
	groups := make(map[string][]int)
	var order []string
	for i, inv := range snapshot {
		ticker := NormalizeTicker(inv.Ticker)
		if _, seen := groups[ticker]; !seen {
			order = append(order, ticker)
		}
		groups[ticker] = append(groups[ticker], i)
	}

	var out []ReconciledPosition
	for _, ticker := range order {
		indices := groups[ticker]
		delta := deltas[ticker]

		var groupTotal float64
		for _, i := range indices {
			groupTotal += snapshot[i].Quantity
		}

		for n, i := range indices {
			pos := ReconciledPosition{Investment: snapshot[i]}
			switch {
			case delta == 0:
				// nothing traded, snapshot stands
			case groupTotal != 0:
				pos.TradeDelta = delta * (snapshot[i].Quantity / groupTotal)
			case n == 0:
				// Placeholder rows: the whole group holds zero, so the first
				// account takes the entire traded quantity.
				pos.TradeDelta = delta
			}
			pos.Quantity += pos.TradeDelta
			out = append(out, pos)
		}
	}

	// Tickers traded but never snapshotted become derived positions.
	var derived []string
	for ticker, delta := range deltas {
		if _, present := groups[ticker]; present {
			continue
		}
		if math.Abs(delta) < quantityEpsilon {
			continue // opened and fully closed before any snapshot
		}
		derived = append(derived, ticker)
	}
	slices.SortFunc(derived, strings.Compare)
	for _, ticker := range derived {
		out = append(out, ReconciledPosition{
			Investment: Investment{
				Meta:     Meta{ID: newID(), Row: -1},
				Ticker:   ticker,
				Quantity: deltas[ticker],
				Account:  DerivedAccount,
				Currency: CurrencyForTicker(ticker),
			},
			TradeDelta: deltas[ticker],
		})
	}
	return out
}
