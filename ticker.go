package wealthsheet

import (
	"regexp"
	"strings"
)

// parentheticalRE captures an aliased symbol, e.g. "Meta Platforms (META)".
var parentheticalRE = regexp.MustCompile(`\(([A-Za-z0-9.\-]+)\)`)

// exchangeSuffixes are exchange codes stripped from tickers so that the same
// instrument keys identically across spreadsheets ("SHOP.TO" vs "SHOP").
var exchangeSuffixes = []string{".TO", ".V", ".CN", ".NE"}

// NormalizeTicker canonicalizes a raw ticker cell: trims and uppercases,
// extracts a parenthetical alias when the cell holds a long display name, and
// strips known exchange suffix codes.
func NormalizeTicker(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}
	if m := parentheticalRE.FindStringSubmatch(s); m != nil {
		s = m[1]
	}
	s = strings.ToUpper(s)
	for _, suffix := range exchangeSuffixes {
		if strings.HasSuffix(s, suffix) {
			s = strings.TrimSuffix(s, suffix)
			break
		}
	}
	return s
}

// CurrencyForTicker infers the native currency of an instrument from its raw
// ticker. Canadian exchange suffixes mean CAD; everything else is assumed USD.
// Used only when the spreadsheet does not carry a currency column.
func CurrencyForTicker(raw string) string {
	s := strings.ToUpper(strings.TrimSpace(raw))
	if m := parentheticalRE.FindStringSubmatch(s); m != nil {
		s = m[1]
	}
	for _, suffix := range exchangeSuffixes {
		if strings.HasSuffix(s, suffix) {
			return "CAD"
		}
	}
	return "USD"
}
