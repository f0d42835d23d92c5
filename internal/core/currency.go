package core

import "strings"

// Currency is a display-only preset; amounts are never converted.
type Currency struct {
	Code   string
	Symbol string
}

// CurrencyPresets are the choices offered besides a custom symbol.
var CurrencyPresets = []Currency{
	{Code: "USD", Symbol: "$"},
	{Code: "EUR", Symbol: "€"},
	{Code: "GBP", Symbol: "£"},
	{Code: "JPY", Symbol: "¥"},
	{Code: "INR", Symbol: "₹"},
	{Code: "SAR", Symbol: "ر.س"},
}

// LookupCurrency finds a preset by code (case-insensitive) or by symbol.
func LookupCurrency(codeOrSymbol string) (Currency, bool) {
	s := strings.TrimSpace(codeOrSymbol)
	for _, c := range CurrencyPresets {
		if strings.EqualFold(c.Code, s) || c.Symbol == s {
			return c, true
		}
	}
	return Currency{}, false
}
