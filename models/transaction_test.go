package models

import (
	// Go Internal Packages
	"testing"

	// External Packages
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreditCardDetails_Complete(t *testing.T) {
	var nilCard *CreditCardDetails
	assert.False(t, nilCard.Complete())
	assert.False(t, (&CreditCardDetails{}).Complete())

	card := CreditCardDetails{Name: "a", CardNumber: "b", ExpirationDate: "c", CVC: "d", Country: "e", Zip: "f"}
	assert.True(t, card.Complete())
	card.Country = ""
	assert.False(t, card.Complete())
}

func TestNewPayload(t *testing.T) {
	p := NewPayload()
	assert.True(t, p.AmountInCents.IsZero())
	assert.True(t, p.TotalAmountInCents.IsZero())
	assert.Equal(t, PaymentMethodCash, p.PaymentMethod)
	assert.Equal(t, TransactionMethodCash, p.TransactionMethod)
	assert.Nil(t, p.SelectedLocationID)
	require.NotNil(t, p.CreditCardDetails)
}

func TestPayload_CloneIsDeep(t *testing.T) {
	p := NewPayload()
	p.SelectedLocationID = ID(1)
	p.SelectedReaderID = ID(2)
	p.CreditCardDetails.Name = "Jane"

	c := p.Clone()
	*c.SelectedLocationID = 9
	*c.SelectedReaderID = 9
	c.CreditCardDetails.Name = "Mallory"

	assert.Equal(t, int64(1), *p.SelectedLocationID)
	assert.Equal(t, int64(2), *p.SelectedReaderID)
	assert.Equal(t, "Jane", p.CreditCardDetails.Name)
}

func TestParseMoney(t *testing.T) {
	m, err := ParseMoney("")
	require.NoError(t, err)
	assert.True(t, m.IsZero())

	m, err = ParseMoney("0.035")
	require.NoError(t, err)
	assert.Equal(t, "0.035", m.String())

	_, err = ParseMoney("n/a")
	assert.Error(t, err)
}
