package models

import (
	// External Packages
	"github.com/shopspring/decimal"
)

// Money is an amount in minor currency units (cents). Rates share the type so
// that every multiplication stays in decimal arithmetic.
type Money = decimal.Decimal

// PercentDivisor converts a whole-number percent (3.5) to a fraction (0.035).
var PercentDivisor = decimal.NewFromInt(100)

// CentsPerDollar converts minor units to whole dollars.
var CentsPerDollar = decimal.NewFromInt(100)

// Zero returns a zero amount.
func Zero() Money { return decimal.Zero }

// Cents returns an amount of n cents.
func Cents(n int64) Money { return decimal.NewFromInt(n) }

// ParseMoney parses a decimal string; an empty string yields zero.
func ParseMoney(s string) (Money, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(s)
}
