package wealthsheet

import "testing"

func TestParsePortfolioLog(t *testing.T) {
	raw := "Tracking sheet\n" +
		"Date,Questrade Value,Wealthsimple Value,Crypto\n" +
		"2024-01-31,10000,5000,1200\n" +
		"2024-02-29,11000,5100,900\n" +
		"notes below the table\n"

	got := ParsePortfolioLog(SplitRows(raw))
	if len(got) != 2 {
		t.Fatalf("got %d entries, want 2", len(got))
	}

	first := got[0]
	if first.Date != NewDate(2024, 1, 31) {
		t.Errorf("date = %s, want 2024-01-31", first.Date)
	}
	// " Value" suffixes are stripped; other columns keep their header name.
	if first.Values["Questrade"] != 10000 {
		t.Errorf("Questrade = %v, want 10000", first.Values["Questrade"])
	}
	if first.Values["Wealthsimple"] != 5000 {
		t.Errorf("Wealthsimple = %v, want 5000", first.Values["Wealthsimple"])
	}
	if first.Values["Crypto"] != 1200 {
		t.Errorf("Crypto = %v, want 1200", first.Values["Crypto"])
	}
}

func TestParsePortfolioLogNoHeader(t *testing.T) {
	if got := ParsePortfolioLog(SplitRows("a,b\nc,d\n")); got != nil {
		t.Errorf("got %v, want nil without a Date column", got)
	}
}

func TestParseDebtSchedule(t *testing.T) {
	raw := "Mortgage schedule\n" +
		"Property,123 Main St\n" +
		"Rate,4.5%\n" +
		"Start,2023-06-01\n" +
		"\n" +
		"2023-07-01,2100,900,1200,498100\n" +
		"2023-08-01,2100,905,1195,497195\n" +
		"\n" +
		"2023-09-01,2100,910,1190,496285\n"

	got := ParseDebtSchedule(SplitRows(raw))
	if len(got) != 3 {
		t.Fatalf("got %d payments, want 3", len(got))
	}
	if got[0].Date != NewDate(2023, 7, 1) {
		t.Errorf("date = %s, want 2023-07-01", got[0].Date)
	}
	if got[0].Principal != 900 || got[0].Interest != 1200 || got[0].Balance != 498100 {
		t.Errorf("unexpected first payment: %+v", got[0])
	}
	// Data starts at the fixed offset: the preamble above row 5 is ignored
	// even though it contains a parseable date.
	if got[0].Row != 5 {
		t.Errorf("row = %d, want 5", got[0].Row)
	}
}
