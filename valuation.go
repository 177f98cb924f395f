package wealthsheet

import (
	"math"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// FallbackUSDRate is the hardcoded USD conversion multiplier applied when the
// supplied rate map has no USD entry. This is a deliberate product
// approximation, not a placeholder: missing rates degrade to a plausible
// value instead of failing.
const FallbackUSDRate = 1.35

// Valuation is the valued view of one position. Recomputed on demand, never
// persisted.
type Valuation struct {
	Native   float64 `json:"nativeValue"`
	Base     float64 `json:"baseValue"`
	Price    float64 `json:"price"`
	IsLive   bool    `json:"isLive"`
	Currency string  `json:"currency"`
}

// ResolvePrice picks the authoritative price for a ticker from the priority
// chain: a live quote; the most recent trade carrying a non-zero market
// price; the most recent trade's fill price; the caller-supplied fallback
// (typically the spreadsheet-entered price). Absence at any tier simply falls
// through, terminating at the fallback.
func ResolvePrice(ticker string, livePrices map[string]float64, trades []Trade, fallbackPrice float64) (price float64, isLive bool) {
	ticker = NormalizeTicker(ticker)

	if p, ok := livePrices[ticker]; ok && p != 0 {
		return p, true
	}

	var latest, latestMarket *Trade
	for i := range trades {
		t := &trades[i]
		if NormalizeTicker(t.Ticker) != ticker {
			continue
		}
		if latest == nil || !t.Date.Before(latest.Date) {
			latest = t
		}
		if t.MarketPrice != 0 && (latestMarket == nil || !t.Date.Before(latestMarket.Date)) {
			latestMarket = t
		}
	}
	if latestMarket != nil {
		return latestMarket.MarketPrice, false
	}
	if latest != nil {
		return math.Abs(latest.Price), false
	}
	return fallbackPrice, false
}

// ConvertToBase converts an amount from its native currency into the base
// currency using the supplied rate map (currency code -> rate to base). A
// missing USD rate falls back to FallbackUSDRate; any other missing currency
// converts 1:1 rather than failing. This is product policy, not an error.
func ConvertToBase(amount float64, currency, base string, rates map[string]float64) float64 {
	if currency == base || currency == "" {
		return amount
	}
	if rate, ok := rates[currency]; ok {
		return amount * rate
	}
	if currency == "USD" {
		return amount * FallbackUSDRate
	}
	return amount
}

// CalculateValuation values a quantity at a price in its native currency and
// converts it to the base currency. Quantities within epsilon of zero value
// to exactly zero regardless of price, so fully closed positions carry no
// phantom residue.
func CalculateValuation(quantity, price float64, currency, base string, rates map[string]float64) Valuation {
	v := Valuation{Price: price, Currency: currency}
	if math.Abs(quantity) < quantityEpsilon {
		return v
	}
	v.Native = quantity * price
	v.Base = ConvertToBase(v.Native, currency, base, rates)
	return v
}

// ValuedPosition is a reconciled position together with its valuation.
type ValuedPosition struct {
	ReconciledPosition
	Valuation
}

// Value resolves a price for every reconciled position and values it in the
// base currency. The position's spreadsheet price is the terminal fallback of
// the price chain.
func Value(positions []ReconciledPosition, livePrices map[string]float64, trades []Trade, base string, rates map[string]float64) []ValuedPosition {
	var out []ValuedPosition
	for _, pos := range positions {
		price, isLive := ResolvePrice(pos.Ticker, livePrices, trades, pos.CurrentPrice)
		valuation := CalculateValuation(pos.Quantity, price, pos.Currency, base, rates)
		valuation.IsLive = isLive
		out = append(out, ValuedPosition{ReconciledPosition: pos, Valuation: valuation})
	}
	return out
}

// FormatAmount renders an amount with its currency's symbol and fraction
// rules, e.g. FormatAmount(1234.5, "USD") == "$1,234.50".
func FormatAmount(amount float64, code string) string {
	if code == "" {
		code = "USD"
	}
	cur := *money.New(0, code).Currency()
	dec := decimal.NewFromFloat(amount).Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.IntPart())
}
