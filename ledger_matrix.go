package wealthsheet

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// LedgerMode selects which of the two category×month matrices to look for
// when both share a sheet and a similar shape.
type LedgerMode int

const (
	LedgerIncome LedgerMode = iota
	LedgerExpense
)

func (m LedgerMode) String() string {
	if m == LedgerIncome {
		return "income"
	}
	return "expense"
}

// keywords that identify each mode in a header's surroundings.
var ledgerModeWords = map[LedgerMode][]string{
	LedgerIncome:  {"income", "revenue"},
	LedgerExpense: {"expense", "spending"},
}

// LedgerItem is one sub-category row: a value per month plus the row total.
type LedgerItem struct {
	Name          string    `json:"name"`
	MonthlyValues []float64 `json:"monthlyValues"`
	Total         float64   `json:"total"`
}

// LedgerCategory groups the sub-items under one parent row.
type LedgerCategory struct {
	Name          string       `json:"name"`
	SubCategories []LedgerItem `json:"subCategories"`
	Total         float64      `json:"total"`
}

// LedgerData is a parsed category×month matrix. Every item's MonthlyValues
// has exactly len(Months) entries, and every category total is the sum of its
// sub-item totals.
type LedgerData struct {
	Months     []string         `json:"months"`
	Categories []LedgerCategory `json:"categories"`
}

// ledgerMonthSpan bounds how far right the monthly-header heuristic looks:
// a year of months plus a little slack for label and total columns.
const ledgerMonthSpan = 14

// minMonthlyCells is how many date-parsing cells a row needs to qualify as a
// monthly header.
const minMonthlyCells = 2

// ParseLedgerMatrix parses a category×month matrix out of raw rows. The input
// is a hierarchy, not a flat table: parent-category rows carry no numbers in
// their month columns; rows with numbers attach to the most recently opened
// parent. Values are absolute-valued (sign is structural within the ledger),
// "total"/"summary" rows are skipped, and a row whose label is itself a date
// terminates the table so parsing cannot run away into a following section.
func ParseLedgerMatrix(rows [][]string, mode LedgerMode) LedgerData {
	headerIndex, monthCols, months := findLedgerHeader(rows, mode)
	if monthCols == nil {
		return LedgerData{}
	}

	data := LedgerData{Months: months}
	var open *LedgerCategory

	closeCategory := func() {
		if open != nil && len(open.SubCategories) > 0 {
			data.Categories = append(data.Categories, *open)
		}
		open = nil
	}

	for i := headerIndex + 1; i < len(rows); i++ {
		row := rows[i]
		if isBlankRow(row) {
			continue
		}
		label := strings.TrimSpace(cell(row, 0))
		if label == "" {
			continue
		}
		if _, isDate := ParseFlexible(label); isDate {
			break // a dated row means the next section started
		}
		lower := strings.ToLower(label)
		if lower == "total" || strings.Contains(lower, "summary") {
			continue
		}

		if !rowHasNumbers(row, monthCols) {
			closeCategory()
			open = &LedgerCategory{Name: label}
			continue
		}

		if open == nil {
			continue // orphan value row, nothing to attach it to
		}
		open.SubCategories = append(open.SubCategories, ledgerItem(label, row, monthCols))
	}
	closeCategory()

	for c := range data.Categories {
		total := decimal.Zero
		for _, sub := range data.Categories[c].SubCategories {
			total = total.Add(decimal.NewFromFloat(sub.Total))
		}
		data.Categories[c].Total = total.InexactFloat64()
	}
	return data
}

// ledgerItem builds one sub-category row, absolute-valued, with its total
// accumulated exactly.
func ledgerItem(label string, row []string, monthCols []int) LedgerItem {
	item := LedgerItem{Name: label, MonthlyValues: make([]float64, len(monthCols))}
	total := decimal.Zero
	for i, col := range monthCols {
		v := math.Abs(ParseNumber(cell(row, col)))
		item.MonthlyValues[i] = v
		total = total.Add(decimal.NewFromFloat(v))
	}
	item.Total = total.InexactFloat64()
	return item
}

// rowHasNumbers reports whether any month column of the row carries a digit.
// Parent-category rows are exactly the labeled rows that do not.
func rowHasNumbers(row []string, monthCols []int) bool {
	for _, col := range monthCols {
		if strings.ContainsAny(cell(row, col), "0123456789") {
			return true
		}
	}
	return false
}

// findLedgerHeader locates the monthly header row for the requested mode. A
// row qualifies when at least two of its non-first cells within the first 14
// columns parse as dates. When an income and an expense matrix share the
// sheet, the candidate's first cell and the row immediately above it are
// inspected for mode keywords: a candidate in the opposite mode's context is
// skipped, a candidate in the requested mode's context wins outright, and the
// first neutral candidate is used when no strong match exists.
func findLedgerHeader(rows [][]string, mode LedgerMode) (headerIndex int, monthCols []int, months []string) {
	neutralIndex := -1
	for i, row := range rows {
		cols, labels := monthColumns(row)
		if len(cols) < minMonthlyCells {
			continue
		}

		context := strings.ToLower(cell(row, 0))
		if i > 0 {
			context += " " + strings.ToLower(strings.Join(rows[i-1], " "))
		}
		switch classifyLedgerContext(context, mode) {
		case ledgerContextMatch:
			return i, cols, labels
		case ledgerContextOpposite:
			continue
		default:
			if neutralIndex < 0 {
				neutralIndex = i
			}
		}
	}
	if neutralIndex >= 0 {
		cols, labels := monthColumns(rows[neutralIndex])
		return neutralIndex, cols, labels
	}
	return 0, nil, nil
}

type ledgerContext int

const (
	ledgerContextNeutral ledgerContext = iota
	ledgerContextMatch
	ledgerContextOpposite
)

func classifyLedgerContext(context string, mode LedgerMode) ledgerContext {
	opposite := LedgerExpense
	if mode == LedgerExpense {
		opposite = LedgerIncome
	}
	for _, w := range ledgerModeWords[mode] {
		if strings.Contains(context, w) {
			return ledgerContextMatch
		}
	}
	for _, w := range ledgerModeWords[opposite] {
		if strings.Contains(context, w) {
			return ledgerContextOpposite
		}
	}
	return ledgerContextNeutral
}

// monthColumns returns the column indices and labels of the date-parsing
// cells after the first, within the heuristic span.
func monthColumns(row []string) (cols []int, labels []string) {
	limit := len(row)
	if limit > ledgerMonthSpan {
		limit = ledgerMonthSpan
	}
	for i := 1; i < limit; i++ {
		if _, ok := ParseFlexible(row[i]); ok {
			cols = append(cols, i)
			labels = append(labels, strings.TrimSpace(row[i]))
		}
	}
	return cols, labels
}
