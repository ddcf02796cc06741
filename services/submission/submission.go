package submission

import (
	// Go Internal Packages
	"context"

	// Local Packages
	errors "pos-engine/errors"
	models "pos-engine/models"

	// External Packages
	"go.uber.org/zap"
)

// Backend receives finalized transactions.
type Backend interface {
	PostTransaction(ctx context.Context, payload *models.Payload) (*models.SubmissionResult, error)
}

// Strategy forwards a payload to the backend for one transaction channel.
// Manual, reader and cash channels share the same flow today and differ only
// in how they are labelled in logs.
type Strategy struct {
	Method  models.TransactionMethod
	label   string
	backend Backend
	logger  *zap.Logger
}

// Select returns the strategy for method.
func Select(method models.TransactionMethod, backend Backend, logger *zap.Logger) (*Strategy, error) {
	var label string
	switch method {
	case models.TransactionMethodManually:
		label = "manual"
	case models.TransactionMethodReader:
		label = "reader"
	case models.TransactionMethodCash:
		label = "cash"
	default:
		return nil, errors.UnsupportedMethodErr("transaction", method)
	}
	return &Strategy{Method: method, label: label, backend: backend, logger: logger}, nil
}

// Submit posts the payload and returns the backend's error unchanged.
func (s *Strategy) Submit(ctx context.Context, payload *models.Payload) error {
	fields := []zap.Field{
		zap.String("transaction_method", string(s.Method)),
		zap.String("reference_id", payload.ReferenceID),
	}

	s.logger.Info("processing "+s.label+" transaction", fields...)
	res, err := s.backend.PostTransaction(ctx, payload)
	if err != nil {
		s.logger.Error("failed to process "+s.label+" transaction", append(fields, zap.Error(err))...)
		return err
	}

	if res != nil {
		fields = append(fields, zap.Int("status", res.Status), zap.String("message", res.Message))
	}
	s.logger.Info(s.label+" transaction processed", fields...)
	return nil
}
