package utils

import (
	"github.com/shopspring/decimal"
)

// FormatAmount formats a currency amount with two-decimal precision,
// e.g. 5000 renders as "5000.00".
func FormatAmount(amount decimal.Decimal) string {
	return amount.StringFixed(2)
}

// FormatWithPrecision formats an amount with the given precision.
func FormatWithPrecision(amount decimal.Decimal, precision int) string {
	return amount.Round(int32(precision)).String()
}
