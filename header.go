package wealthsheet

import "strings"

// headerScanLimit bounds the header-row search: spreadsheets occasionally
// carry preamble text, but never fifty lines of it.
const headerScanLimit = 50

// defaultHeaderThreshold is the number of alias hits a row needs to qualify
// as a header row.
const defaultHeaderThreshold = 2

// normalizeHeader lowercases a header cell and strips everything that is not
// a letter or a digit, so that "Avg. Price ($)" and "avg price" compare equal.
func normalizeHeader(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ResolveColumnIndex matches a raw header row against a field's aliases and
// returns the column index of the first alias that matches, in two passes:
// exact normalized equality first, then substring containment for aliases of
// normalized length >= 4. Short aliases ("ccy", "qty") are excluded from the
// fuzzy pass: they show up as substrings of unrelated words too easily.
func ResolveColumnIndex(headers []string, aliases []string) (int, bool) {
	normalized := make([]string, len(headers))
	for i, h := range headers {
		normalized[i] = normalizeHeader(h)
	}

	for _, alias := range aliases {
		na := normalizeHeader(alias)
		if na == "" {
			continue
		}
		for i, nh := range normalized {
			if nh == na {
				return i, true
			}
		}
		if len(na) < 4 {
			continue
		}
		for i, nh := range normalized {
			if strings.Contains(nh, na) {
				return i, true
			}
		}
	}
	return 0, false
}

// resolveColumns computes, once per schema, the column index of every field
// against a header row. Unresolved fields map to -1 and fall back to their
// schema default at parse time.
func resolveColumns(headers []string, schema *Schema) map[string]int {
	columns := make(map[string]int, len(schema.Fields))
	for _, f := range schema.Fields {
		if i, ok := ResolveColumnIndex(headers, f.Aliases); ok {
			columns[f.Name] = i
		} else {
			columns[f.Name] = -1
		}
	}
	return columns
}

// FindHeaderRow scans up to the first 50 rows for the schema's header row:
// the first row whose cells hit at least threshold of any field's aliases.
// When no row qualifies and the schema requires a date, the first row with a
// parseable date in any cell is used instead; failing that, row 0.
// A threshold <= 0 selects the default of 2.
func FindHeaderRow(rows [][]string, schema *Schema, threshold int) int {
	if threshold <= 0 {
		threshold = defaultHeaderThreshold
	}

	limit := len(rows)
	if limit > headerScanLimit {
		limit = headerScanLimit
	}

	for i := 0; i < limit; i++ {
		if countAliasHits(rows[i], schema) >= threshold {
			return i
		}
	}

	if schema.hasRequiredDate() {
		for i := 0; i < limit; i++ {
			for _, c := range rows[i] {
				if _, ok := ParseFlexible(c); ok {
					return i
				}
			}
		}
	}
	return 0
}

// countAliasHits counts how many cells of a row match any field alias.
func countAliasHits(row []string, schema *Schema) int {
	hits := 0
	for _, c := range row {
		nc := normalizeHeader(c)
		if nc == "" {
			continue
		}
		if cellMatchesAnyAlias(nc, schema) {
			hits++
		}
	}
	return hits
}

func cellMatchesAnyAlias(normalizedCell string, schema *Schema) bool {
	for _, f := range schema.Fields {
		for _, alias := range f.Aliases {
			na := normalizeHeader(alias)
			if na == "" {
				continue
			}
			if normalizedCell == na {
				return true
			}
			if len(na) >= 4 && strings.Contains(normalizedCell, na) {
				return true
			}
		}
	}
	return false
}
