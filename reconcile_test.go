package wealthsheet

import (
	"math"
	"testing"
)

func inv(ticker, account string, qty float64) Investment {
	return Investment{Ticker: ticker, Account: account, Quantity: qty}
}

func trade(ticker string, side TradeSide, qty float64) Trade {
	return Trade{Ticker: ticker, Side: side, Quantity: qty}
}

func TestNetTradeDeltas(t *testing.T) {
	trades := []Trade{
		trade("AAPL", Buy, 10),
		trade("aapl", Buy, 5),
		trade("AAPL", Sell, 3),
		trade("SHOP.TO", Buy, 2),
		trade("", Buy, 99),
	}
	got := NetTradeDeltas(trades)
	if got["AAPL"] != 12 {
		t.Errorf("AAPL delta = %v, want 12", got["AAPL"])
	}
	if got["SHOP"] != 2 {
		t.Errorf("SHOP delta = %v, want 2 (exchange suffix stripped)", got["SHOP"])
	}
	if len(got) != 2 {
		t.Errorf("got %d tickers, want 2 (blank ticker ignored)", len(got))
	}
}

func TestReconcileProportional(t *testing.T) {
	snapshot := []Investment{
		inv("AAPL", "Questrade", 10),
		inv("AAPL", "Wealthsimple", 5),
	}
	trades := []Trade{trade("AAPL", Buy, 30)}

	got := Reconcile(snapshot, trades)
	if len(got) != 2 {
		t.Fatalf("got %d positions, want 2", len(got))
	}
	// 30 shares split 10:5 across the two accounts.
	if got[0].Quantity != 30 || got[0].TradeDelta != 20 {
		t.Errorf("Questrade = %v (delta %v), want 30 (delta 20)", got[0].Quantity, got[0].TradeDelta)
	}
	if got[1].Quantity != 15 || got[1].TradeDelta != 10 {
		t.Errorf("Wealthsimple = %v (delta %v), want 15 (delta 10)", got[1].Quantity, got[1].TradeDelta)
	}
}

func TestReconcileUntraded(t *testing.T) {
	snapshot := []Investment{inv("VTI", "Questrade", 42)}
	got := Reconcile(snapshot, nil)
	if len(got) != 1 || got[0].Quantity != 42 || got[0].TradeDelta != 0 {
		t.Errorf("untraded position changed: %+v", got)
	}
}

func TestReconcileZeroTotalGroup(t *testing.T) {
	snapshot := []Investment{
		inv("GME", "Questrade", 0),
		inv("GME", "Wealthsimple", 0),
	}
	trades := []Trade{trade("GME", Buy, 7)}

	got := Reconcile(snapshot, trades)
	if len(got) != 2 {
		t.Fatalf("got %d positions, want 2", len(got))
	}
	if got[0].Quantity != 7 {
		t.Errorf("first account quantity = %v, want the full 7", got[0].Quantity)
	}
	if got[1].Quantity != 0 {
		t.Errorf("second account quantity = %v, want 0", got[1].Quantity)
	}
}

func TestReconcileDerived(t *testing.T) {
	trades := []Trade{
		trade("TSLA", Buy, 10),
		trade("ZZZ", Buy, 5),
	}
	got := Reconcile(nil, trades)
	if len(got) != 2 {
		t.Fatalf("got %d positions, want 2", len(got))
	}
	// Derived positions come out in ticker order.
	tsla := got[0]
	if tsla.Ticker != "TSLA" || tsla.Quantity != 10 {
		t.Fatalf("unexpected derived position: %+v", tsla)
	}
	if tsla.Account != DerivedAccount {
		t.Errorf("account = %q, want %q", tsla.Account, DerivedAccount)
	}
	if tsla.Row != -1 {
		t.Errorf("derived position row = %d, want -1", tsla.Row)
	}
	if tsla.ID == "" {
		t.Error("derived position has no id")
	}
	if tsla.Currency != "USD" {
		t.Errorf("currency = %q, want USD", tsla.Currency)
	}
}

func TestReconcileClosedBeforeSnapshot(t *testing.T) {
	trades := []Trade{
		trade("MSFT", Buy, 10),
		trade("MSFT", Sell, 10),
	}
	got := Reconcile(nil, trades)
	if len(got) != 0 {
		t.Errorf("fully closed never-snapshotted ticker should be omitted, got %+v", got)
	}
}

// Per ticker, reconciled quantities must sum to snapshot quantities plus the
// net trade delta.
func TestReconcileQuantityInvariant(t *testing.T) {
	snapshot := []Investment{
		inv("AAPL", "Questrade", 10),
		inv("AAPL", "Wealthsimple", 5),
		inv("VTI", "Questrade", 100),
		inv("GME", "Questrade", 0),
	}
	trades := []Trade{
		trade("AAPL", Buy, 30),
		trade("AAPL", Sell, 12),
		trade("VTI", Sell, 25),
		trade("GME", Buy, 3),
		trade("TSLA", Buy, 8),
	}

	want := map[string]float64{
		"AAPL": 10 + 5 + 18,
		"VTI":  100 - 25,
		"GME":  3,
		"TSLA": 8,
	}
	sums := make(map[string]float64)
	for _, pos := range Reconcile(snapshot, trades) {
		sums[NormalizeTicker(pos.Ticker)] += pos.Quantity
	}
	for ticker, w := range want {
		if math.Abs(sums[ticker]-w) > 1e-9 {
			t.Errorf("%s reconciled sum = %v, want %v", ticker, sums[ticker], w)
		}
	}
}
