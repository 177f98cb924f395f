package wealthsheet

import "github.com/shopspring/decimal"

// MonthTotals returns the per-month total across all categories. The result
// has exactly len(Months) entries.
func (d LedgerData) MonthTotals() []float64 {
	totals := make([]decimal.Decimal, len(d.Months))
	for _, cat := range d.Categories {
		for _, sub := range cat.SubCategories {
			for i, v := range sub.MonthlyValues {
				if i < len(totals) {
					totals[i] = totals[i].Add(decimal.NewFromFloat(v))
				}
			}
		}
	}
	out := make([]float64, len(totals))
	for i, t := range totals {
		out[i] = t.InexactFloat64()
	}
	return out
}

// GrandTotal returns the sum of all category totals.
func (d LedgerData) GrandTotal() float64 {
	total := decimal.Zero
	for _, cat := range d.Categories {
		total = total.Add(decimal.NewFromFloat(cat.Total))
	}
	return total.InexactFloat64()
}

// YearView aggregates the income and expense ledgers of one viewed calendar
// year. Results are memoized per view; dropping the view drops its cache.
type YearView struct {
	Year     int
	Income   LedgerData
	Expenses LedgerData

	memo *Memo
}

// NewYearView creates a view over one year's parsed ledgers.
func NewYearView(year int, income, expenses LedgerData) *YearView {
	return &YearView{Year: year, Income: income, Expenses: expenses, memo: NewMemo(0)}
}

// LogicalToday is the date treated as "now" for this view: the real today
// for the live year, December 31 for an archived one.
func (v *YearView) LogicalToday() Date { return LogicalToday(v.Year) }

// ElapsedMonths is how many months of the viewed year have started as of the
// view's logical today.
func (v *YearView) ElapsedMonths() int {
	return MonthsBetween(NewDate(v.Year, 1, 1), v.LogicalToday()) + 1
}

// TotalIncome is the year's total income.
func (v *YearView) TotalIncome() float64 {
	return v.memo.Do(v.memo.Key("totalIncome", v.Year), func() any {
		return v.Income.GrandTotal()
	}).(float64)
}

// TotalExpenses is the year's total expenses.
func (v *YearView) TotalExpenses() float64 {
	return v.memo.Do(v.memo.Key("totalExpenses", v.Year), func() any {
		return v.Expenses.GrandTotal()
	}).(float64)
}

// Net is income minus expenses for the year.
func (v *YearView) Net() float64 {
	return v.TotalIncome() - v.TotalExpenses()
}

// SavingsRate is the saved share of income, in [−∞, 1]; zero income yields 0.
func (v *YearView) SavingsRate() float64 {
	return v.memo.Do(v.memo.Key("savingsRate", v.Year), func() any {
		income := v.TotalIncome()
		if income == 0 {
			return 0.0
		}
		return (income - v.TotalExpenses()) / income
	}).(float64)
}

// MonthlyBurn is the average monthly expense over the elapsed months of the
// viewed year.
func (v *YearView) MonthlyBurn() float64 {
	return v.memo.Do(v.memo.Key("monthlyBurn", v.Year), func() any {
		months := v.ElapsedMonths()
		if months <= 0 {
			return 0.0
		}
		return v.TotalExpenses() / float64(months)
	}).(float64)
}

// Reset drops the view's memoized results, typically after a re-parse.
func (v *YearView) Reset() { v.memo.Reset() }
