package wealthsheet

import (
	"encoding/json"
	"strings"
)

// Record is the output of one parsed row: coerced values keyed by field name,
// plus the generated id and source-row index. Records are an intermediate
// shape; callers normally go through the typed parsers below.
type Record struct {
	Meta
	values map[string]any    // coerced per the field's ValueType
	raw    map[string]string // raw cell text, before coercion
}

// Str returns the string value of a field ("" when absent).
func (r Record) Str(field string) string {
	s, _ := r.values[field].(string)
	return s
}

// Num returns the numeric value of a field (0 when absent).
func (r Record) Num(field string) float64 {
	n, _ := r.values[field].(float64)
	return n
}

// When returns the date value of a field (zero Date when absent).
func (r Record) When(field string) Date {
	d, _ := r.values[field].(Date)
	return d
}

// Flag returns the boolean value of a field (false when absent).
func (r Record) Flag(field string) bool {
	b, _ := r.values[field].(bool)
	return b
}

// Raw returns the raw cell text a field was coerced from.
func (r Record) Raw(field string) string { return r.raw[field] }

// MarshalJSON renders the record as a flat object: id, row, and every
// coerced field.
func (r Record) MarshalJSON() ([]byte, error) {
	obj := make(map[string]any, len(r.values)+2)
	for k, v := range r.values {
		obj[k] = v
	}
	obj["id"] = r.ID
	obj["row"] = r.Row
	return json.Marshal(obj)
}

var (
	truthyWords = map[string]bool{"true": true, "yes": true, "active": true, "1": true}
	falsyWords  = map[string]bool{"false": true, "no": true, "inactive": true, "0": true, "cancelled": true}
)

// ParseRows converts every non-blank row after the header into a Record.
// Column indices are resolved once per schema against the header row. A row
// is rejected when any required field coerces to empty or absent; optional
// fields fall back to their schema default. Nothing here ever fails: bad
// cells degrade to defaults and bad rows are silently excluded.
func ParseRows(rows [][]string, headerIndex int, schema *Schema) []Record {
	if headerIndex < 0 || headerIndex >= len(rows) {
		return nil
	}
	columns := resolveColumns(rows[headerIndex], schema)

	var records []Record
	for i := headerIndex + 1; i < len(rows); i++ {
		row := rows[i]
		if isBlankRow(row) {
			continue
		}

		rec := Record{
			values: make(map[string]any, len(schema.Fields)),
			raw:    make(map[string]string, len(schema.Fields)),
		}
		rejected := false
		for _, f := range schema.Fields {
			raw := ""
			if col := columns[f.Name]; col >= 0 {
				raw = cell(row, col)
			}
			if strings.TrimSpace(raw) == "" {
				raw = f.Fallback
			}
			rec.raw[f.Name] = raw

			value, present := coerce(raw, f.Type)
			if !present && raw != f.Fallback {
				// Unparseable dates and unrecognized booleans degrade to the
				// schema fallback, same as a blank cell.
				if fv, ok := coerce(f.Fallback, f.Type); ok {
					value, present = fv, ok
				}
			}
			if f.Required && !present {
				rejected = true
				break
			}
			rec.values[f.Name] = value
		}
		if rejected {
			continue
		}

		rec.Meta = Meta{ID: newID(), Row: i}
		applyPostProcess(schema, &rec)
		records = append(records, rec)
	}
	return records
}

// coerce converts a raw cell per the field's value type. The second return
// reports presence, which is what required-ness checks.
func coerce(raw string, t ValueType) (any, bool) {
	trimmed := strings.TrimSpace(raw)
	switch t {
	case TypeString:
		return trimmed, trimmed != ""
	case TypeTicker:
		ticker := NormalizeTicker(trimmed)
		return ticker, ticker != ""
	case TypeNumber:
		return ParseNumber(trimmed), trimmed != ""
	case TypeDate:
		d, ok := ParseFlexible(trimmed)
		return d, ok
	case TypeBool:
		word := strings.ToLower(trimmed)
		if truthyWords[word] {
			return true, true
		}
		if falsyWords[word] {
			return false, true
		}
		return false, false
	}
	return trimmed, trimmed != ""
}

// applyPostProcess dispatches the schema's post-process tag to its named
// transformation. Transformations live here, not in the schema table, so the
// table stays declarative.
func applyPostProcess(schema *Schema, rec *Record) {
	switch schema.PostProcess {
	case PostInvestment:
		postProcessInvestment(rec)
	case PostTrade:
		postProcessTrade(rec)
	}
}

// postProcessInvestment derives the average price from book value when the
// sheet omits it, and infers the native currency from the raw ticker when the
// currency column is absent.
func postProcessInvestment(rec *Record) {
	qty := rec.Num("quantity")
	if rec.Num("avgPrice") == 0 && rec.Num("bookValue") != 0 && qty != 0 {
		rec.values["avgPrice"] = rec.Num("bookValue") / qty
	}
	if rec.Str("currency") == "" {
		rec.values["currency"] = CurrencyForTicker(rec.Raw("ticker"))
	}
}

// postProcessTrade normalizes the side and forces the quantity non-negative.
// When the type column is ambiguous the sign of the quantity decides.
func postProcessTrade(rec *Record) {
	side := strings.ToUpper(rec.Str("side"))
	qty := rec.Num("quantity")
	switch {
	case strings.HasPrefix(side, "S"): // sell, sold, sale
		rec.values["side"] = string(Sell)
	case strings.HasPrefix(side, "B"): // buy, bought
		rec.values["side"] = string(Buy)
	case qty < 0:
		rec.values["side"] = string(Sell)
	default:
		rec.values["side"] = string(Buy)
	}
	if qty < 0 {
		rec.values["quantity"] = -qty
	}
}

// ParseAssets parses a flat asset registry.
func ParseAssets(rows [][]string) []Asset {
	header := FindHeaderRow(rows, AssetSchema, 0)
	var assets []Asset
	for _, rec := range ParseRows(rows, header, AssetSchema) {
		assets = append(assets, Asset{
			Meta:     rec.Meta,
			Name:     rec.Str("name"),
			Category: rec.Str("category"),
			Value:    rec.Num("value"),
			Currency: rec.Str("currency"),
			Notes:    rec.Str("notes"),
		})
	}
	return assets
}

// ParseInvestments parses a snapshot of brokerage positions.
func ParseInvestments(rows [][]string) []Investment {
	header := FindHeaderRow(rows, InvestmentSchema, 0)
	var investments []Investment
	for _, rec := range ParseRows(rows, header, InvestmentSchema) {
		investments = append(investments, Investment{
			Meta:         rec.Meta,
			Ticker:       rec.Str("ticker"),
			Name:         rec.Str("name"),
			Quantity:     rec.Num("quantity"),
			AvgPrice:     rec.Num("avgPrice"),
			CurrentPrice: rec.Num("currentPrice"),
			BookValue:    rec.Num("bookValue"),
			Account:      rec.Str("account"),
			AssetClass:   rec.Str("assetClass"),
			Currency:     rec.Str("currency"),
		})
	}
	return investments
}

// ParseTrades parses the append-only trade log.
func ParseTrades(rows [][]string) []Trade {
	header := FindHeaderRow(rows, TradeSchema, 0)
	var trades []Trade
	for _, rec := range ParseRows(rows, header, TradeSchema) {
		trades = append(trades, Trade{
			Meta:        rec.Meta,
			Date:        rec.When("date"),
			Ticker:      rec.Str("ticker"),
			Side:        TradeSide(rec.Str("side")),
			Quantity:    rec.Num("quantity"),
			Price:       rec.Num("price"),
			Total:       rec.Num("total"),
			Fee:         rec.Num("fee"),
			MarketPrice: rec.Num("marketPrice"),
			Account:     rec.Str("account"),
		})
	}
	return trades
}

// ParseSubscriptions parses a recurring-payment registry.
func ParseSubscriptions(rows [][]string) []Subscription {
	header := FindHeaderRow(rows, SubscriptionSchema, 0)
	var subs []Subscription
	for _, rec := range ParseRows(rows, header, SubscriptionSchema) {
		subs = append(subs, Subscription{
			Meta:        rec.Meta,
			Name:        rec.Str("name"),
			Amount:      rec.Num("amount"),
			Cycle:       rec.Str("cycle"),
			RenewalDate: rec.When("renewalDate"),
			Active:      rec.Flag("active"),
			Category:    rec.Str("category"),
		})
	}
	return subs
}

// ParseAccounts parses the account registry.
func ParseAccounts(rows [][]string) []Account {
	header := FindHeaderRow(rows, AccountSchema, 0)
	var accounts []Account
	for _, rec := range ParseRows(rows, header, AccountSchema) {
		accounts = append(accounts, Account{
			Meta:        rec.Meta,
			Name:        rec.Str("name"),
			Institution: rec.Str("institution"),
			Kind:        rec.Str("kind"),
			Currency:    rec.Str("currency"),
			Balance:     rec.Num("balance"),
		})
	}
	return accounts
}

// ParseJournal parses dated free-form journal entries.
func ParseJournal(rows [][]string) []JournalEntry {
	header := FindHeaderRow(rows, JournalSchema, 0)
	var entries []JournalEntry
	for _, rec := range ParseRows(rows, header, JournalSchema) {
		entries = append(entries, JournalEntry{
			Meta: rec.Meta,
			Date: rec.When("date"),
			Text: rec.Str("text"),
			Tag:  rec.Str("tag"),
		})
	}
	return entries
}

// ParseNetWorthLog parses the dated net-worth log.
func ParseNetWorthLog(rows [][]string) []NetWorthEntry {
	header := FindHeaderRow(rows, NetWorthSchema, 0)
	var entries []NetWorthEntry
	for _, rec := range ParseRows(rows, header, NetWorthSchema) {
		entries = append(entries, NetWorthEntry{
			Meta:        rec.Meta,
			Date:        rec.When("date"),
			Assets:      rec.Num("assets"),
			Liabilities: rec.Num("liabilities"),
			NetWorth:    rec.Num("netWorth"),
		})
	}
	return entries
}
