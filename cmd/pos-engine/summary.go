package main

import (
	// Local Packages
	engine "pos-engine/services/engine"
	utils "pos-engine/utils"
)

type summary struct {
	Location          string `json:"location"`
	Reader            string `json:"reader,omitempty"`
	PaymentMethod     string `json:"payment_method"`
	TransactionMethod string `json:"transaction_method"`
	Description       string `json:"description,omitempty"`
	Amount            string `json:"amount"`
	Tax               string `json:"tax"`
	TaxRate           string `json:"tax_rate"`
	ProcessingFee     string `json:"processing_fee"`
	Total             string `json:"total"`
}

type chargeResult struct {
	Status string  `json:"status"`
	Charge summary `json:"charge"`
}

func newSummary(eng *engine.Engine) summary {
	tx := eng.Transaction()
	s := summary{
		PaymentMethod:     string(tx.PaymentMethod),
		TransactionMethod: string(tx.TransactionMethod),
		Description:       tx.Description,
		Amount:            utils.FormatMoney(tx.AmountInCents),
		Tax:               utils.FormatMoney(tx.CalculatedTaxInCents),
		TaxRate:           eng.CurrentTaxRate().String(),
		ProcessingFee:     utils.FormatMoney(tx.PatientFeeInCents),
		Total:             utils.FormatMoney(tx.TotalAmountInCents),
	}
	if loc := eng.SelectedLocation(); loc != nil {
		s.Location = loc.Name
	}
	if r := eng.SelectedReader(); r != nil {
		s.Reader = r.Label
	}
	return s
}
