package fiat

import "strings"

// Currency describes how a fiat currency is rendered.
type Currency struct {
	Code              string `json:"code"`
	Name              string `json:"name"`
	Symbol            string `json:"symbol"`
	DecimalPlaces     int32  `json:"decimal_places"`
	SymbolPosition    string `json:"symbol_position"`
	ThousandSeparator string `json:"thousand_separator"`
	DecimalSeparator  string `json:"decimal_separator"`
}

const (
	// SymbolBefore places the currency symbol before the amount.
	SymbolBefore = "before"
	// SymbolAfter places the currency symbol after the amount.
	SymbolAfter = "after"
)

// currencies is the static metadata table for supported fiat currencies,
// in display order.
var currencies = []Currency{
	{Code: "USD", Name: "US Dollar", Symbol: "$", DecimalPlaces: 2, SymbolPosition: SymbolBefore, ThousandSeparator: ",", DecimalSeparator: "."},
	{Code: "EUR", Name: "Euro", Symbol: "€", DecimalPlaces: 2, SymbolPosition: SymbolAfter, ThousandSeparator: ".", DecimalSeparator: ","},
	{Code: "GBP", Name: "British Pound", Symbol: "£", DecimalPlaces: 2, SymbolPosition: SymbolBefore, ThousandSeparator: ",", DecimalSeparator: "."},
	{Code: "JPY", Name: "Japanese Yen", Symbol: "¥", DecimalPlaces: 0, SymbolPosition: SymbolBefore, ThousandSeparator: ",", DecimalSeparator: "."},
	{Code: "CAD", Name: "Canadian Dollar", Symbol: "CA$", DecimalPlaces: 2, SymbolPosition: SymbolBefore, ThousandSeparator: ",", DecimalSeparator: "."},
	{Code: "AUD", Name: "Australian Dollar", Symbol: "A$", DecimalPlaces: 2, SymbolPosition: SymbolBefore, ThousandSeparator: ",", DecimalSeparator: "."},
	{Code: "CHF", Name: "Swiss Franc", Symbol: "CHF", DecimalPlaces: 2, SymbolPosition: SymbolBefore, ThousandSeparator: "'", DecimalSeparator: "."},
	{Code: "CNY", Name: "Chinese Yuan", Symbol: "¥", DecimalPlaces: 2, SymbolPosition: SymbolBefore, ThousandSeparator: ",", DecimalSeparator: "."},
	{Code: "INR", Name: "Indian Rupee", Symbol: "₹", DecimalPlaces: 2, SymbolPosition: SymbolBefore, ThousandSeparator: ",", DecimalSeparator: "."},
	{Code: "KRW", Name: "South Korean Won", Symbol: "₩", DecimalPlaces: 0, SymbolPosition: SymbolBefore, ThousandSeparator: ",", DecimalSeparator: "."},
}

var currencyIndex = func() map[string]Currency {
	index := make(map[string]Currency, len(currencies))
	for _, c := range currencies {
		index[c.Code] = c
	}
	return index
}()

// Lookup returns the metadata for a currency code, case-insensitively.
func Lookup(code string) (Currency, bool) {
	c, ok := currencyIndex[strings.ToUpper(strings.TrimSpace(code))]
	return c, ok
}

// List returns all supported fiat currencies.
func List() []Currency {
	out := make([]Currency, len(currencies))
	copy(out, currencies)
	return out
}
