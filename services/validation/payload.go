package validation

import (
	// Local Packages
	errors "pos-engine/errors"
	models "pos-engine/models"

	// External Packages
	"go.uber.org/zap"
)

// PayloadValidator enforces the per-channel requirements of a payload before
// it is submitted.
type PayloadValidator struct {
	logger *zap.Logger
}

func NewPayloadValidator(logger *zap.Logger) *PayloadValidator {
	return &PayloadValidator{logger: logger}
}

// Validate checks the amount first, then the fields the channel depends on.
// Methods without rules pass with a warning; channel selection rejects them
// right after.
func (v *PayloadValidator) Validate(method models.TransactionMethod, payload *models.Payload) error {
	if !payload.AmountInCents.IsPositive() {
		return errors.ErrAmountNotPositive
	}

	switch method {
	case models.TransactionMethodManually:
		if !payload.CreditCardDetails.Complete() {
			return errors.ErrIncompleteCardDetails
		}
	case models.TransactionMethodReader:
		if payload.SelectedReaderID == nil {
			return errors.ErrNoReaderSelected
		}
	case models.TransactionMethodCash:
	default:
		v.logger.Warn("validation not implemented for transaction method", zap.String("transaction_method", string(method)))
	}
	return nil
}
