package utils

import (
	// Go Internal Packages
	"fmt"

	// Local Packages
	models "pos-engine/models"

	// External Packages
	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

const displayDecimalPlaces = 2

// FormatCurrency formats an integer amount of cents as US dollars, e.g. 12345
// becomes "$123.45".
func FormatCurrency(cents int64) string {
	return FormatMoney(models.Cents(cents))
}

// FormatCurrencyString formats a decimal string of cents. Input that does not
// parse as a number is treated as zero.
func FormatCurrencyString(raw string) string {
	cents, err := decimal.NewFromString(raw)
	if err != nil {
		cents = decimal.Zero
	}
	return FormatMoney(cents)
}

// FormatMoney converts cents to dollars, truncates toward zero to two places
// and groups thousands the en-US way.
func FormatMoney(cents models.Money) string {
	dollars := cents.Div(models.CentsPerDollar).Truncate(displayDecimalPlaces)

	sign := ""
	if dollars.IsNegative() {
		sign = "-"
		dollars = dollars.Neg()
	}

	whole := dollars.Truncate(0)
	fraction := dollars.Sub(whole).Shift(displayDecimalPlaces).IntPart()
	return fmt.Sprintf("%s$%s.%02d", sign, humanize.BigComma(whole.BigInt()), fraction)
}
