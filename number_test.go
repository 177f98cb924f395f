package wealthsheet

import "testing"

func TestParseNumber(t *testing.T) {
	testCases := []struct {
		name string
		in   string
		want float64
	}{
		{"plain", "42", 42},
		{"decimal", "42.5", 42.5},
		{"dollar and thousands", "$1,200.50", 1200.5},
		{"euro symbol", "€2.500,75", 2.50075}, // comma stripped, dot kept
		{"parenthesis negative", "(500)", -500},
		{"parenthesis with symbol", "($1,250.00)", -1250},
		{"explicit negative", "-17.25", -17.25},
		{"percent", "12.5%", 12.5},
		{"empty", "", 0},
		{"whitespace", "   ", 0},
		{"garbage", "n/a", 0},
		{"letters", "abc", 0},
		{"lone dash", "-", 0},
		{"embedded text", "CAD 99.95", 99.95},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ParseNumber(tc.in); got != tc.want {
				t.Errorf("ParseNumber(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestParseNumberThousandsDots(t *testing.T) {
	// More than one dot: the first stays the decimal point, the rest join the
	// fractional digits.
	if got := ParseNumber("1.234.567"); got != 1.234567 {
		t.Errorf("ParseNumber(1.234.567) = %v, want 1.234567", got)
	}
}

func TestParseNumberNeverPanics(t *testing.T) {
	inputs := []string{"--..--", "()", "(.)", "....", "1-2-3", "-.-", "\"quoted\"", "∞", "NaN"}
	for _, in := range inputs {
		// Must not panic, any value is acceptable for the weirder ones; the
		// documented contract is only that garbage yields 0.
		_ = ParseNumber(in)
	}
}
