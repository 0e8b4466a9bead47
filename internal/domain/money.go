package domain

import (
	"github.com/shopspring/decimal"
)

func init() {
	// The billing API serializes monetary values as bare JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true
}

var currencySymbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"JPY": "¥",
	"INR": "₹",
	"AUD": "A$",
	"CAD": "C$",
}

// FormatAmount renders a monetary value with its currency symbol, e.g.
// "$1250.00". Currencies without a known symbol fall back to the ISO
// code prefix, e.g. "SEK 1250.00".
func FormatAmount(amount decimal.Decimal, currency string) string {
	if sym, ok := currencySymbols[currency]; ok {
		return sym + amount.StringFixed(2)
	}
	if currency == "" {
		return amount.StringFixed(2)
	}
	return currency + " " + amount.StringFixed(2)
}

// Round2 rounds to two decimal places, matching how the API rounds
// invoice totals before storing them.
func Round2(d decimal.Decimal) decimal.Decimal { return d.Round(2) }
