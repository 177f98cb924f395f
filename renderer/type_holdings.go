package renderer

import (
	"github.com/varadier/wealthsheet"
)

// Holdings is the view model of a valued-holdings report.
type Holdings struct {
	// Date of the report.
	Date wealthsheet.Date `json:"date"`
	// BaseCurrency is the currency all base values are expressed in.
	BaseCurrency string `json:"baseCurrency"`
	// TotalBaseValue is the portfolio total in the base currency.
	TotalBaseValue string `json:"totalBaseValue"`
	// Positions lists every reconciled, valued position.
	Positions []HoldingsPosition `json:"positions"`
}

// HoldingsPosition is one row of the report.
type HoldingsPosition struct {
	Ticker     string  `json:"ticker"`
	Account    string  `json:"account"`
	Quantity   float64 `json:"quantity"`
	Price      string  `json:"price"`
	BaseValue  string  `json:"baseValue"`
	Live       string  `json:"live"`
	Derived    bool    `json:"derived"`
	TradeDelta float64 `json:"tradeDelta"`
}

// NewHoldings builds the report view from valued positions.
func NewHoldings(on wealthsheet.Date, base string, positions []wealthsheet.ValuedPosition) *Holdings {
	h := &Holdings{Date: on, BaseCurrency: base}

	var total float64
	for _, pos := range positions {
		live := ""
		if pos.IsLive {
			live = "live"
		}
		h.Positions = append(h.Positions, HoldingsPosition{
			Ticker:     pos.Ticker,
			Account:    pos.Account,
			Quantity:   pos.Investment.Quantity,
			Price:      wealthsheet.FormatAmount(pos.Valuation.Price, pos.Investment.Currency),
			BaseValue:  wealthsheet.FormatAmount(pos.Base, base),
			Live:       live,
			Derived:    pos.Account == wealthsheet.DerivedAccount,
			TradeDelta: pos.TradeDelta,
		})
		total += pos.Base
	}
	h.TotalBaseValue = wealthsheet.FormatAmount(total, base)
	return h
}

// RenderHoldings renders the Holdings struct to a markdown string.
func RenderHoldings(h *Holdings) string {
	partials := map[string]string{
		"holdings_title":     "holdings_title.md",
		"holdings_positions": "holdings_positions.md",
	}
	return renderTemplate("holdings", "holdings.md", partials, h)
}
