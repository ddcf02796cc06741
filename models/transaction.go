package models

type CreditCardDetails struct {
	Name           string `json:"name"`
	CardNumber     string `json:"cardNumber"`
	ExpirationDate string `json:"expirationDate"`
	CVC            string `json:"cvc"`
	Country        string `json:"country"`
	Zip            string `json:"zip"`
}

// Complete reports whether every field is filled in.
func (c *CreditCardDetails) Complete() bool {
	return c != nil &&
		c.Name != "" &&
		c.CardNumber != "" &&
		c.ExpirationDate != "" &&
		c.CVC != "" &&
		c.Country != "" &&
		c.Zip != ""
}

// Payload is the working transaction and the body sent to the payment backend.
type Payload struct {
	ReferenceID string `json:"referenceId,omitempty"`

	AmountInCents        Money `json:"amountInCents"`
	CalculatedTaxInCents Money `json:"calculatedTaxInCents"`
	PatientFeeInCents    Money `json:"patientFeeInCents"`
	TotalAmountInCents   Money `json:"totalAmountInCents"`

	Description string `json:"description,omitempty"`

	PaymentMethod     PaymentMethod     `json:"paymentMethod"`
	TransactionMethod TransactionMethod `json:"transactionMethod"`

	SelectedLocationID *int64 `json:"selectedLocationId"`
	SelectedReaderID   *int64 `json:"selectedReaderId"`

	CreditCardDetails *CreditCardDetails `json:"creditCardDetails,omitempty"`
}

// NewPayload returns a payload with every field at its default.
func NewPayload() Payload {
	return Payload{
		AmountInCents:        Zero(),
		CalculatedTaxInCents: Zero(),
		PatientFeeInCents:    Zero(),
		TotalAmountInCents:   Zero(),
		PaymentMethod:        PaymentMethodCash,
		TransactionMethod:    TransactionMethodCash,
		CreditCardDetails:    &CreditCardDetails{},
	}
}

// Clone returns a deep copy; the engine hands these out as read-only views.
func (p Payload) Clone() Payload {
	p.SelectedLocationID = cloneID(p.SelectedLocationID)
	p.SelectedReaderID = cloneID(p.SelectedReaderID)
	if p.CreditCardDetails != nil {
		cd := *p.CreditCardDetails
		p.CreditCardDetails = &cd
	}
	return p
}

// Subtotal is the base amount plus tax, before the processing fee.
func (p *Payload) Subtotal() Money {
	return p.AmountInCents.Add(p.CalculatedTaxInCents)
}

// SubmissionResult is the backend's acknowledgement of a posted transaction.
type SubmissionResult struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

func cloneID(id *int64) *int64 {
	if id == nil {
		return nil
	}
	v := *id
	return &v
}

// ID returns a pointer to a copy of v.
func ID(v int64) *int64 { return &v }
