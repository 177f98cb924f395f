package wealthsheet

import (
	"reflect"
	"strings"
	"testing"
)

func TestLoadQuotes(t *testing.T) {
	payload := `{
		"quotes": [
			{"symbol": "AAPL", "price": 201.5},
			{"symbol": "shop.to", "price": "98.25"},
			{"symbol": "NOPRICE"},
			{"price": 1.0},
			{"symbol": "", "price": 5}
		]
	}`

	got, err := LoadQuotes(strings.NewReader(payload), "", "", "")
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]float64{"AAPL": 201.5, "SHOP": 98.25}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("LoadQuotes() = %v, want %v", got, want)
	}
}

func TestLoadQuotesCustomPaths(t *testing.T) {
	payload := `{"data": {"items": [{"t": "VTI", "last": 250}]}}`

	got, err := LoadQuotes(strings.NewReader(payload), "$.data.items", "$.t", "$.last")
	if err != nil {
		t.Fatal(err)
	}
	if got["VTI"] != 250 {
		t.Errorf("LoadQuotes() = %v, want VTI at 250", got)
	}
}

func TestLoadQuotesErrors(t *testing.T) {
	if _, err := LoadQuotes(strings.NewReader("not json"), "", "", ""); err == nil {
		t.Error("expected a decode error for malformed JSON")
	}
	if _, err := LoadQuotes(strings.NewReader(`{"quotes": 5}`), "", "", ""); err == nil {
		t.Error("expected an error for a non-list quote selection")
	}
}

func TestLoadRates(t *testing.T) {
	payload := `{"base": "CAD", "rates": {"USD": 1.38, "EUR": "1.47", "BAD": true}}`

	got, err := LoadRates(strings.NewReader(payload), "")
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]float64{"USD": 1.38, "EUR": 1.47}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("LoadRates() = %v, want %v", got, want)
	}
}

func TestLoadRatesCustomPath(t *testing.T) {
	payload := `{"fx": {"conversion": {"USD": 1.4}}}`

	got, err := LoadRates(strings.NewReader(payload), "$.fx.conversion")
	if err != nil {
		t.Fatal(err)
	}
	if got["USD"] != 1.4 {
		t.Errorf("LoadRates() = %v, want USD at 1.4", got)
	}
}

func TestLoadRatesNotAnObject(t *testing.T) {
	if _, err := LoadRates(strings.NewReader(`{"rates": [1, 2]}`), ""); err == nil {
		t.Error("expected an error for a non-object rate selection")
	}
}
