package wealthsheet

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseNumber converts a raw spreadsheet cell into a float64. It tolerates
// currency symbols, thousands separators, percent signs and accounting-style
// parenthesis negatives, and it is total: for any input, including arbitrary
// garbage, it returns a value (0 when nothing numeric can be extracted) and
// never fails.
//
//	ParseNumber("$1,200.50") == 1200.5
//	ParseNumber("(500)")     == -500
//	ParseNumber("")          == 0
func ParseNumber(raw string) float64 {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0
	}

	negative := false
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		negative = true
		s = s[1 : len(s)-1]
	}

	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' {
			b.WriteRune(r)
		}
	}
	s = b.String()

	// Thousands-dot locales leave several dots behind; the first one is kept
	// as the decimal point and the rest are collapsed.
	if strings.Count(s, ".") > 1 {
		first := strings.Index(s, ".")
		s = s[:first+1] + strings.ReplaceAll(s[first+1:], ".", "")
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0
	}
	v := d.InexactFloat64()
	if negative {
		v = -math.Abs(v)
	}
	return v
}
