package utils

import (
	// Go Internal Packages
	"testing"

	// Local Packages
	models "pos-engine/models"

	// External Packages
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatCurrency(t *testing.T) {
	cases := map[int64]string{
		0:         "$0.00",
		5:         "$0.05",
		12345:     "$123.45",
		100000:    "$1,000.00",
		123456789: "$1,234,567.89",
		-12345:    "-$123.45",
	}
	for cents, want := range cases {
		assert.Equal(t, want, FormatCurrency(cents), "cents=%d", cents)
	}
}

func TestFormatCurrencyString(t *testing.T) {
	assert.Equal(t, "$123.45", FormatCurrencyString("12345"))
	assert.Equal(t, "$0.00", FormatCurrencyString("abc"))
	assert.Equal(t, "$0.00", FormatCurrencyString(""))
}

func TestFormatMoney_TruncatesFractionalCents(t *testing.T) {
	assert.Equal(t, "$3.81", FormatMoney(decimal.RequireFromString("381.99")))
	assert.Equal(t, "$0.00", FormatMoney(decimal.RequireFromString("0.035")))
	assert.Equal(t, "$109.81", FormatMoney(decimal.RequireFromString("10981")))
}

func TestFormatMoney_WholeDollars(t *testing.T) {
	assert.Equal(t, "$1.00", FormatMoney(models.CentsPerDollar))
	assert.Equal(t, "$25.00", FormatMoney(models.Cents(2500)))
}

func TestJoinIDs(t *testing.T) {
	assert.Equal(t, "", JoinIDs(nil))
	assert.Equal(t, "1,20,300", JoinIDs([]int64{1, 20, 300}))
}
