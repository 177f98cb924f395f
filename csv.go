package wealthsheet

import (
	"encoding/csv"
	"strings"
)

// SplitRows splits raw spreadsheet text into rows of cells. The input is
// newline-delimited; each line is a comma-separated row where cells may be
// double-quote wrapped to embed literal commas, with "" as an escaped quote.
// Lines are parsed one at a time so that the index of every returned row is
// the physical line number of the source text; downstream entities carry
// that index for write-back. Malformed quoting degrades to a plain comma
// split, never to an error.
func SplitRows(raw string) [][]string {
	lines := strings.Split(raw, "\n")
	rows := make([][]string, len(lines))
	for i, line := range lines {
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) == "" {
			rows[i] = []string{}
			continue
		}
		reader := csv.NewReader(strings.NewReader(line))
		reader.FieldsPerRecord = -1
		reader.LazyQuotes = true
		record, err := reader.Read()
		if err != nil {
			record = strings.Split(line, ",")
		}
		rows[i] = record
	}
	return rows
}

// isBlankRow reports whether every cell of a row is empty or whitespace.
func isBlankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// cell returns the i-th cell of a row, or "" when the row is too short.
func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return row[i]
}
