package renderer

import (
	"github.com/varadier/wealthsheet"
)

// Ledger is the view model of a category×month ledger report.
type Ledger struct {
	// Mode is "income" or "expense".
	Mode string `json:"mode"`
	// Months are the column labels, as found in the sheet.
	Months []string `json:"months"`
	// Categories are the parent categories with their sub-items.
	Categories []LedgerCategory `json:"categories"`
	// GrandTotal is the sum of all category totals.
	GrandTotal string `json:"grandTotal"`
}

// LedgerCategory is one parent category of the report.
type LedgerCategory struct {
	Name  string       `json:"name"`
	Total string       `json:"total"`
	Items []LedgerItem `json:"items"`
}

// LedgerItem is one sub-category row.
type LedgerItem struct {
	Name   string   `json:"name"`
	Values []string `json:"values"`
	Total  string   `json:"total"`
}

// NewLedger builds the report view from a parsed matrix. Amounts are
// formatted in the given currency.
func NewLedger(mode wealthsheet.LedgerMode, data wealthsheet.LedgerData, currency string) *Ledger {
	l := &Ledger{Mode: mode.String(), Months: data.Months}
	for _, cat := range data.Categories {
		c := LedgerCategory{
			Name:  cat.Name,
			Total: wealthsheet.FormatAmount(cat.Total, currency),
		}
		for _, sub := range cat.SubCategories {
			item := LedgerItem{
				Name:  sub.Name,
				Total: wealthsheet.FormatAmount(sub.Total, currency),
			}
			for _, v := range sub.MonthlyValues {
				item.Values = append(item.Values, wealthsheet.FormatAmount(v, currency))
			}
			c.Items = append(c.Items, item)
		}
		l.Categories = append(l.Categories, c)
	}
	l.GrandTotal = wealthsheet.FormatAmount(data.GrandTotal(), currency)
	return l
}

// RenderLedger renders the Ledger struct to a markdown string.
func RenderLedger(l *Ledger) string {
	partials := map[string]string{
		"ledger_title":      "ledger_title.md",
		"ledger_categories": "ledger_categories.md",
	}
	return renderTemplate("ledger", "ledger.md", partials, l)
}
