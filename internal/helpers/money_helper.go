package helpers

import (
	"fmt"
	"strings"
)

var currencySymbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"SAR": "SAR ",
	"AED": "AED ",
}

// FormatMoney formats minor units as a display string, e.g. 1250 USD -> $12.50.
func FormatMoney(cents int64, currency string) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%s%d.%02d", sign, GetCurrencySymbol(currency), cents/100, cents%100)
}

// GetCurrencySymbol returns the symbol for a given currency code
func GetCurrencySymbol(currency string) string {
	currency = strings.ToUpper(currency)
	if symbol, ok := currencySymbols[currency]; ok {
		return symbol
	}
	return currency + " "
}

// MinorUnits converts a major-unit amount such as 12.5 to minor units.
func MinorUnits(amount float64) int64 {
	if amount < 0 {
		return -int64(-amount*100 + 0.5)
	}
	return int64(amount*100 + 0.5)
}
