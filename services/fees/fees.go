// Package fees computes the patient-facing processing fee for a payment method.
package fees

import (
	// Local Packages
	errors "pos-engine/errors"
	models "pos-engine/models"
)

// Strategy computes a processing fee from the subtotal (amount plus tax), a
// whole-number percent rate (3.5 for 3.5%) and a fixed fee in cents.
type Strategy func(subtotal, feeRatePercent, fixedFeeCents models.Money) models.Money

// Cash transactions carry no processing fee.
func Cash(_, _, _ models.Money) models.Money {
	return models.Zero()
}

// Card charges the percentage of the subtotal plus the fixed fee.
func Card(subtotal, feeRatePercent, fixedFeeCents models.Money) models.Money {
	rate := feeRatePercent.Div(models.PercentDivisor)
	return subtotal.Mul(rate).Add(fixedFeeCents)
}

// Select returns the strategy for method.
func Select(method models.PaymentMethod) (Strategy, error) {
	switch method {
	case models.PaymentMethodCard:
		return Card, nil
	case models.PaymentMethodCash:
		return Cash, nil
	default:
		return nil, errors.UnsupportedMethodErr("payment", method)
	}
}
