package entity

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// DefaultCurrency is the currency label used in prices and order messages.
const DefaultCurrency = "Rs"

var amountPrinter = message.NewPrinter(language.English)

// FormatAmount renders an amount with thousands grouping and at most two
// fraction digits, e.g. 1234.5 -> "1,234.5".
func FormatAmount(amount decimal.Decimal) string {
	return amountPrinter.Sprint(number.Decimal(amount.InexactFloat64(), number.MaxFractionDigits(2)))
}

// FormatPrice prefixes a grouped amount with currency, e.g. "Rs 1,234".
func FormatPrice(currency string, amount decimal.Decimal) string {
	return currency + " " + FormatAmount(amount)
}
