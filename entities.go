package wealthsheet

import (
	"crypto/rand"
	"encoding/hex"
)

// newID returns a fresh opaque entity id. Ids only need to be unique within
// a parse pass; collections are replaced wholesale on re-parse.
func newID() string {
	var b [8]byte
	rand.Read(b[:])
	return hex.EncodeToString(b[:])
}

// Meta carries the bookkeeping every parsed entity gets: a generated id and
// the physical index of the source row, so edit flows can write back to the
// exact line of the spreadsheet.
type Meta struct {
	ID  string `json:"id"`
	Row int    `json:"row"`
}

// Asset is one line of a flat asset registry.
type Asset struct {
	Meta
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Value    float64 `json:"value"`
	Currency string  `json:"currency"`
	Notes    string  `json:"notes,omitempty"`
}

// Investment is a snapshot position: the quantity a spreadsheet says an
// account held at export time. The snapshot is the source of truth; trades
// adjust it during reconciliation.
type Investment struct {
	Meta
	Ticker       string  `json:"ticker"`
	Name         string  `json:"name,omitempty"`
	Quantity     float64 `json:"quantity"`
	AvgPrice     float64 `json:"avgPrice"`
	CurrentPrice float64 `json:"currentPrice"`
	BookValue    float64 `json:"bookValue,omitempty"`
	Account      string  `json:"account"`
	AssetClass   string  `json:"assetClass"`
	Currency     string  `json:"currency"`
}

// TradeSide is the direction of a trade.
type TradeSide string

const (
	Buy  TradeSide = "BUY"
	Sell TradeSide = "SELL"
)

// Trade is one event of the append-only trade log. Quantity is always
// non-negative after normalization; the side carries the sign.
type Trade struct {
	Meta
	Date        Date      `json:"date"`
	Ticker      string    `json:"ticker"`
	Side        TradeSide `json:"side"`
	Quantity    float64   `json:"quantity"`
	Price       float64   `json:"price"`
	Total       float64   `json:"total"`
	Fee         float64   `json:"fee"`
	MarketPrice float64   `json:"marketPrice,omitempty"`
	Account     string    `json:"account"`
}

// Subscription is one recurring payment.
type Subscription struct {
	Meta
	Name        string  `json:"name"`
	Amount      float64 `json:"amount"`
	Cycle       string  `json:"cycle"`
	RenewalDate Date    `json:"renewalDate,omitzero"`
	Active      bool    `json:"active"`
	Category    string  `json:"category"`
}

// Account is one line of the account registry.
type Account struct {
	Meta
	Name        string  `json:"name"`
	Institution string  `json:"institution,omitempty"`
	Kind        string  `json:"kind"`
	Currency    string  `json:"currency"`
	Balance     float64 `json:"balance"`
}

// JournalEntry is a dated free-form note.
type JournalEntry struct {
	Meta
	Date Date   `json:"date"`
	Text string `json:"text"`
	Tag  string `json:"tag,omitempty"`
}

// NetWorthEntry is one line of the dated net-worth log.
type NetWorthEntry struct {
	Meta
	Date        Date    `json:"date"`
	Assets      float64 `json:"assets"`
	Liabilities float64 `json:"liabilities"`
	NetWorth    float64 `json:"netWorth"`
}

// PortfolioLogEntry is one line of the portfolio log: a date plus one value
// per account column discovered at parse time.
type PortfolioLogEntry struct {
	Meta
	Date   Date               `json:"date"`
	Values map[string]float64 `json:"values"`
}

// DebtPayment is one line of the fixed-layout debt schedule.
type DebtPayment struct {
	Meta
	Date      Date    `json:"date,omitzero"`
	Payment   float64 `json:"payment"`
	Principal float64 `json:"principal"`
	Interest  float64 `json:"interest"`
	Balance   float64 `json:"balance"`
}
