package wealthsheet

// ValueType is the closed set of coercions a schema field can request.
type ValueType int

const (
	// TypeString trims the raw cell and keeps it as-is.
	TypeString ValueType = iota
	// TypeNumber runs the cell through ParseNumber.
	TypeNumber
	// TypeDate runs the cell through ParseFlexible.
	TypeDate
	// TypeBool maps affirmative/negative spreadsheet vocabulary to a bool.
	TypeBool
	// TypeTicker normalizes the cell through NormalizeTicker.
	TypeTicker
)

// PostProcess names the transformation a schema applies to each accepted
// entity after coercion. Keeping this a tag dispatched through a switch (see
// parse.go) keeps the schema table declarative and the transformations
// centrally auditable.
type PostProcess int

const (
	// PostNone applies no transformation.
	PostNone PostProcess = iota
	// PostInvestment derives the average price from book value when the
	// spreadsheet omits it, and infers the native currency from the ticker.
	PostInvestment
	// PostTrade normalizes the side from a signed quantity when the type
	// column is ambiguous, and forces the quantity non-negative.
	PostTrade
)

// FieldDef describes how one output property is sourced from a table column.
type FieldDef struct {
	Aliases  []string // acceptable header spellings, first match wins
	Type     ValueType
	Required bool // a row missing this field is rejected
	Fallback string // raw value substituted when the column is unresolved or the cell blank
}

// Field is a named FieldDef. Schemas keep fields in declaration order.
type Field struct {
	Name string
	FieldDef
}

// Schema describes one importable entity kind: its fields, their header
// aliases, and an optional post-processing step. Schemas are defined once at
// package init and never mutated at runtime.
type Schema struct {
	ID          string
	Fields      []Field
	PostProcess PostProcess
}

// Field returns the definition of a named field, or nil.
func (s *Schema) Field(name string) *FieldDef {
	for i := range s.Fields {
		if s.Fields[i].Name == name {
			return &s.Fields[i].FieldDef
		}
	}
	return nil
}

// hasRequiredDate reports whether the schema carries a required date field.
// Header-row discovery uses it as a fallback signal.
func (s *Schema) hasRequiredDate() bool {
	for _, f := range s.Fields {
		if f.Required && f.Type == TypeDate {
			return true
		}
	}
	return false
}

// Built-in schemas, one per importable spreadsheet shape. Adding a new
// importable format means adding alias strings here, not parsing code.
var (
	// AssetSchema covers flat asset registries (real estate, vehicles, cash
	// holdings and other nameable things with a value).
	AssetSchema = &Schema{
		ID: "assets",
		Fields: []Field{
			{"name", FieldDef{Aliases: []string{"name", "asset", "description", "item"}, Type: TypeString, Required: true}},
			{"category", FieldDef{Aliases: []string{"category", "class", "type"}, Type: TypeString, Fallback: "Other"}},
			{"value", FieldDef{Aliases: []string{"value", "amount", "worth", "balance"}, Type: TypeNumber}},
			{"currency", FieldDef{Aliases: []string{"currency", "ccy"}, Type: TypeString, Fallback: "CAD"}},
			{"notes", FieldDef{Aliases: []string{"notes", "comment", "comments"}, Type: TypeString}},
		},
	}

	// InvestmentSchema covers snapshot positions exported from brokerage
	// spreadsheets.
	InvestmentSchema = &Schema{
		ID: "investments",
		Fields: []Field{
			{"ticker", FieldDef{Aliases: []string{"ticker", "symbol", "stock"}, Type: TypeTicker, Required: true}},
			{"name", FieldDef{Aliases: []string{"name", "company", "description"}, Type: TypeString}},
			{"quantity", FieldDef{Aliases: []string{"quantity", "shares", "units", "qty"}, Type: TypeNumber}},
			{"avgPrice", FieldDef{Aliases: []string{"average price", "avg price", "avg cost", "book price", "cost basis"}, Type: TypeNumber}},
			{"currentPrice", FieldDef{Aliases: []string{"current price", "market price", "last price", "price"}, Type: TypeNumber}},
			{"bookValue", FieldDef{Aliases: []string{"book value", "book cost", "total cost"}, Type: TypeNumber}},
			{"account", FieldDef{Aliases: []string{"account", "broker", "platform"}, Type: TypeString, Fallback: "Unassigned"}},
			{"assetClass", FieldDef{Aliases: []string{"asset class", "class", "category", "type"}, Type: TypeString, Fallback: "Equity"}},
			{"currency", FieldDef{Aliases: []string{"currency", "ccy"}, Type: TypeString}},
		},
		PostProcess: PostInvestment,
	}

	// TradeSchema covers the append-only trade log.
	TradeSchema = &Schema{
		ID: "trades",
		Fields: []Field{
			{"date", FieldDef{Aliases: []string{"date", "trade date", "settlement date"}, Type: TypeDate, Required: true}},
			{"ticker", FieldDef{Aliases: []string{"ticker", "symbol", "stock"}, Type: TypeTicker, Required: true}},
			{"side", FieldDef{Aliases: []string{"type", "side", "action", "buy sell"}, Type: TypeString}},
			{"quantity", FieldDef{Aliases: []string{"quantity", "shares", "units", "qty"}, Type: TypeNumber}},
			{"price", FieldDef{Aliases: []string{"price", "fill price", "execution price"}, Type: TypeNumber}},
			{"total", FieldDef{Aliases: []string{"total", "amount", "proceeds", "value"}, Type: TypeNumber}},
			{"fee", FieldDef{Aliases: []string{"fee", "fees", "commission"}, Type: TypeNumber}},
			{"marketPrice", FieldDef{Aliases: []string{"market price", "current price", "last price"}, Type: TypeNumber}},
			{"account", FieldDef{Aliases: []string{"account", "broker", "platform"}, Type: TypeString, Fallback: "Unassigned"}},
		},
		PostProcess: PostTrade,
	}

	// SubscriptionSchema covers recurring payment registries.
	SubscriptionSchema = &Schema{
		ID: "subscriptions",
		Fields: []Field{
			{"name", FieldDef{Aliases: []string{"name", "service", "subscription", "description"}, Type: TypeString, Required: true}},
			{"amount", FieldDef{Aliases: []string{"amount", "cost", "price", "monthly cost"}, Type: TypeNumber}},
			{"cycle", FieldDef{Aliases: []string{"cycle", "frequency", "billing cycle"}, Type: TypeString, Fallback: "monthly"}},
			{"renewalDate", FieldDef{Aliases: []string{"renewal date", "renewal", "next payment"}, Type: TypeDate}},
			{"active", FieldDef{Aliases: []string{"active", "status"}, Type: TypeBool, Fallback: "true"}},
			{"category", FieldDef{Aliases: []string{"category", "type"}, Type: TypeString, Fallback: "Other"}},
		},
	}

	// AccountSchema covers the account registry.
	AccountSchema = &Schema{
		ID: "accounts",
		Fields: []Field{
			{"name", FieldDef{Aliases: []string{"account", "name", "account name"}, Type: TypeString, Required: true}},
			{"institution", FieldDef{Aliases: []string{"institution", "bank", "provider"}, Type: TypeString}},
			{"kind", FieldDef{Aliases: []string{"type", "kind", "account type"}, Type: TypeString, Fallback: "chequing"}},
			{"currency", FieldDef{Aliases: []string{"currency", "ccy"}, Type: TypeString, Fallback: "CAD"}},
			{"balance", FieldDef{Aliases: []string{"balance", "value", "amount"}, Type: TypeNumber}},
		},
	}

	// JournalSchema covers free-form dated journal entries.
	JournalSchema = &Schema{
		ID: "journal",
		Fields: []Field{
			{"date", FieldDef{Aliases: []string{"date"}, Type: TypeDate, Required: true}},
			{"text", FieldDef{Aliases: []string{"entry", "note", "notes", "description", "text"}, Type: TypeString, Required: true}},
			{"tag", FieldDef{Aliases: []string{"tag", "category", "topic"}, Type: TypeString}},
		},
	}

	// NetWorthSchema covers the dated net-worth log.
	NetWorthSchema = &Schema{
		ID: "networth",
		Fields: []Field{
			{"date", FieldDef{Aliases: []string{"date"}, Type: TypeDate, Required: true}},
			{"assets", FieldDef{Aliases: []string{"assets", "total assets"}, Type: TypeNumber}},
			{"liabilities", FieldDef{Aliases: []string{"liabilities", "total liabilities", "debt"}, Type: TypeNumber}},
			{"netWorth", FieldDef{Aliases: []string{"net worth", "total", "net"}, Type: TypeNumber}},
		},
	}
)

// Schemas indexes every built-in flat-registry schema by ID. The portfolio
// log and the debt schedule have dedicated parsers (see special.go): their
// shapes are not expressible as a plain alias table.
var Schemas = map[string]*Schema{
	AssetSchema.ID:        AssetSchema,
	InvestmentSchema.ID:   InvestmentSchema,
	TradeSchema.ID:        TradeSchema,
	SubscriptionSchema.ID: SubscriptionSchema,
	AccountSchema.ID:      AccountSchema,
	JournalSchema.ID:      JournalSchema,
	NetWorthSchema.ID:     NetWorthSchema,
}
