package wealthsheet

import "strings"

// This file covers the two table shapes that a plain alias schema cannot
// express: the portfolio log, whose columns grow with the user's accounts,
// and the debt schedule, whose layout is fixed by construction.

// valueColumnSuffix is stripped from portfolio-log headers: a column named
// "Questrade Value" tracks the account "Questrade".
const valueColumnSuffix = " value"

// ParsePortfolioLog parses the portfolio value log: one "Date" column plus an
// arbitrary, user-grown set of "<Account> Value" columns discovered by
// scanning the header row. Rows without a parseable date are excluded.
func ParsePortfolioLog(rows [][]string) []PortfolioLogEntry {
	headerIndex, dateCol, accounts := portfolioLogHeader(rows)
	if accounts == nil {
		return nil
	}

	var entries []PortfolioLogEntry
	for i := headerIndex + 1; i < len(rows); i++ {
		row := rows[i]
		if isBlankRow(row) {
			continue
		}
		d, ok := ParseFlexible(cell(row, dateCol))
		if !ok {
			continue
		}
		values := make(map[string]float64, len(accounts))
		for col, name := range accounts {
			values[name] = ParseNumber(cell(row, col))
		}
		entries = append(entries, PortfolioLogEntry{
			Meta:   Meta{ID: newID(), Row: i},
			Date:   d,
			Values: values,
		})
	}
	return entries
}

// portfolioLogHeader finds the header row (the first row with a "date" cell)
// and maps each remaining non-empty column to an account name.
func portfolioLogHeader(rows [][]string) (headerIndex, dateCol int, accounts map[int]string) {
	limit := len(rows)
	if limit > headerScanLimit {
		limit = headerScanLimit
	}
	for i := 0; i < limit; i++ {
		for j, c := range rows[i] {
			if normalizeHeader(c) != "date" {
				continue
			}
			accounts = make(map[int]string)
			for k, h := range rows[i] {
				if k == j {
					continue
				}
				name := strings.TrimSpace(h)
				if name == "" {
					continue
				}
				if strings.HasSuffix(strings.ToLower(name), valueColumnSuffix) {
					name = strings.TrimSpace(name[:len(name)-len(valueColumnSuffix)])
				}
				accounts[k] = name
			}
			return i, j, accounts
		}
	}
	return 0, 0, nil
}

// debtScheduleFirstRow is the fixed physical offset where debt-schedule data
// rows begin, regardless of what the preamble above looks like.
const debtScheduleFirstRow = 5

// Debt-schedule column layout, fixed by the spreadsheet template.
const (
	debtColDate = iota
	debtColPayment
	debtColPrincipal
	debtColInterest
	debtColBalance
)

// ParseDebtSchedule parses the fixed-layout debt schedule. Header detection
// is skipped on purpose: the template always starts data at the same row.
func ParseDebtSchedule(rows [][]string) []DebtPayment {
	var payments []DebtPayment
	for i := debtScheduleFirstRow; i < len(rows); i++ {
		row := rows[i]
		if isBlankRow(row) {
			continue
		}
		d, _ := ParseFlexible(cell(row, debtColDate))
		payments = append(payments, DebtPayment{
			Meta:      Meta{ID: newID(), Row: i},
			Date:      d,
			Payment:   ParseNumber(cell(row, debtColPayment)),
			Principal: ParseNumber(cell(row, debtColPrincipal)),
			Interest:  ParseNumber(cell(row, debtColInterest)),
			Balance:   ParseNumber(cell(row, debtColBalance)),
		})
	}
	return payments
}
