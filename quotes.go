package wealthsheet

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/PaesslerAG/jsonpath"
)

// This file extracts the two collaborator maps the core consumes, live
// prices per ticker and exchange rates per currency, out of provider JSON
// payloads. Providers disagree on payload shape, so the extraction points are
// jsonpath expressions rather than struct tags. No fetching happens here: the
// transport that obtains the payload is outside this package.

// Default extraction paths, matching the common "quotes list" and
// "rates object" payload shapes.
const (
	DefaultQuoteListPath = "$.quotes"
	DefaultQuoteTicker   = "$.symbol"
	DefaultQuotePrice    = "$.price"
	DefaultRatesPath     = "$.rates"
)

// LoadQuotes reads a provider JSON payload and extracts a ticker to price
// map. listPath selects the quote list; tickerPath and pricePath are applied
// to each element. Empty paths select the defaults. Elements missing either
// field are skipped, not fatal.
func LoadQuotes(r io.Reader, listPath, tickerPath, pricePath string) (map[string]float64, error) {
	if listPath == "" {
		listPath = DefaultQuoteListPath
	}
	if tickerPath == "" {
		tickerPath = DefaultQuoteTicker
	}
	if pricePath == "" {
		pricePath = DefaultQuotePrice
	}

	var jobj any
	if err := json.NewDecoder(r).Decode(&jobj); err != nil {
		return nil, fmt.Errorf("cannot decode quote payload: %w", err)
	}

	jval, err := jsonpath.Get(listPath, jobj)
	if err != nil {
		return nil, fmt.Errorf("cannot select quote list %q: %w", listPath, err)
	}
	jlist, ok := jval.([]any)
	if !ok {
		return nil, fmt.Errorf("quote list %q is not a list", listPath)
	}

	quotes := make(map[string]float64, len(jlist))
	for _, elem := range jlist {
		jticker, err := jsonpath.Get(tickerPath, elem)
		if err != nil {
			continue
		}
		ticker, ok := unwrapOne(jticker).(string)
		if !ok || ticker == "" {
			continue
		}
		jprice, err := jsonpath.Get(pricePath, elem)
		if err != nil {
			continue
		}
		price, ok := asFloat(unwrapOne(jprice))
		if !ok {
			continue
		}
		quotes[NormalizeTicker(ticker)] = price
	}
	return quotes, nil
}

// LoadRates reads a provider JSON payload and extracts a currency code to
// rate-to-base map from the object selected by ratesPath (default "$.rates").
func LoadRates(r io.Reader, ratesPath string) (map[string]float64, error) {
	if ratesPath == "" {
		ratesPath = DefaultRatesPath
	}

	var jobj any
	if err := json.NewDecoder(r).Decode(&jobj); err != nil {
		return nil, fmt.Errorf("cannot decode rate payload: %w", err)
	}

	jval, err := jsonpath.Get(ratesPath, jobj)
	if err != nil {
		return nil, fmt.Errorf("cannot select rates %q: %w", ratesPath, err)
	}
	jmap, ok := unwrapOne(jval).(map[string]any)
	if !ok {
		return nil, fmt.Errorf("rates %q is not an object", ratesPath)
	}

	rates := make(map[string]float64, len(jmap))
	for code, v := range jmap {
		if rate, ok := asFloat(v); ok {
			rates[code] = rate
		}
	}
	return rates, nil
}

// unwrapOne keeps the first element when jsonpath returns a list of one
// answer instead of a single answer; it is never clear about which.
func unwrapOne(jval any) any {
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		return jlist[0]
	}
	return jval
}

func asFloat(jval any) (float64, bool) {
	switch v := jval.(type) {
	case float64:
		return v, true
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(v, 64)
		return f, err == nil
	}
	return 0, false
}
