// Package engine owns a point-of-sale transaction while it is being edited:
// it recomputes tax, fee and total after every relevant change and drives
// validation and submission when the operator charges.
package engine

import (
	// Go Internal Packages
	"context"
	"fmt"

	// Local Packages
	errors "pos-engine/errors"
	models "pos-engine/models"
	"pos-engine/services/fees"
	"pos-engine/services/submission"
	"pos-engine/services/validation"

	// External Packages
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DataSource supplies the organization, its locations and their readers.
type DataSource interface {
	FetchTransactionData(ctx context.Context) (*models.TransactionData, error)
}

// FeeParameters are the processing fee inputs: a whole-number percent rate
// (3.5 for 3.5%) and a fixed fee in cents.
type FeeParameters struct {
	RatePercent models.Money
	FixedCents  models.Money
}

// Engine is the single owner of the working transaction. Callers read it
// through copies and change it only through setters. An Engine is not safe for
// concurrent use.
type Engine struct {
	logger    *zap.Logger
	source    DataSource
	backend   submission.Backend
	validator *validation.PayloadValidator

	loaded       bool
	state        State
	organization *models.Organization
	locations    []models.Location
	readers      []models.PaymentReader
	fees         FeeParameters
	tx           models.Payload
}

func New(logger *zap.Logger, source DataSource, backend submission.Backend) *Engine {
	return &Engine{
		logger:    logger,
		source:    source,
		backend:   backend,
		validator: validation.NewPayloadValidator(logger),
		state:     StateIdle,
		fees:      FeeParameters{RatePercent: models.Zero(), FixedCents: models.Zero()},
		tx:        models.NewPayload(),
	}
}

// LoadInitialData fetches the catalog once. Later calls return nil without
// fetching. Nothing on the engine changes unless the whole snapshot is usable.
func (e *Engine) LoadInitialData(ctx context.Context) error {
	if e.loaded {
		return nil
	}

	data, err := e.source.FetchTransactionData(ctx)
	if err != nil {
		e.logger.Error("failed to fetch transaction data", zap.Error(err))
		return errors.DataLoadErr(err)
	}
	if data == nil || data.Organization == nil {
		err = fmt.Errorf("organization missing from transaction data")
		e.logger.Error("failed to fetch transaction data", zap.Error(err))
		return errors.DataLoadErr(err)
	}
	if data.Organization.IsDeleted() {
		err = fmt.Errorf("organization %d is deleted", data.Organization.ID)
		e.logger.Error("failed to fetch transaction data", zap.Error(err))
		return errors.DataLoadErr(err)
	}

	org := *data.Organization
	params := FeeParameters{
		RatePercent: org.TotalProcessingFeePercentage.Mul(models.PercentDivisor),
		FixedCents:  org.TotalProcessingFeeFixed,
	}

	locations := make([]models.Location, 0, len(data.Locations))
	for _, loc := range data.Locations {
		if !loc.IsDeleted() {
			locations = append(locations, loc)
		}
	}
	readers := make([]models.PaymentReader, 0, len(data.Readers))
	for _, r := range data.Readers {
		if !r.IsDeleted() {
			readers = append(readers, r)
		}
	}

	e.organization = &org
	e.fees = params
	e.locations = locations
	e.readers = readers
	e.loaded = true

	if len(locations) > 0 {
		e.tx.SelectedReaderID = nil
		e.tx.SelectedLocationID = models.ID(locations[0].ID)
	}
	e.recompute()

	e.logger.Info("transaction data loaded",
		zap.Int64("organization_id", org.ID),
		zap.Int("locations", len(locations)),
		zap.Int("readers", len(readers)),
		zap.String("fee_rate_percent", params.RatePercent.String()),
		zap.String("fee_fixed_cents", params.FixedCents.String()),
	)
	return nil
}

// SetAmount sets the base charge in cents.
func (e *Engine) SetAmount(amountInCents models.Money) {
	e.edit()
	e.tx.AmountInCents = amountInCents
	e.recompute()
}

func (e *Engine) SetDescription(description string) {
	e.edit()
	e.tx.Description = description
	e.recompute()
}

func (e *Engine) SetPaymentMethod(method models.PaymentMethod) {
	e.edit()
	e.tx.PaymentMethod = method
	e.recompute()
}

func (e *Engine) SetTransactionMethod(method models.TransactionMethod) {
	e.edit()
	e.tx.TransactionMethod = method
	e.recompute()
}

// SetCardDetails stores manually entered card details.
func (e *Engine) SetCardDetails(details models.CreditCardDetails) {
	e.edit()
	e.tx.CreditCardDetails = &details
	e.recompute()
}

// SetFeeParameters overrides the fee parameters loaded from the organization.
func (e *Engine) SetFeeParameters(params FeeParameters) {
	e.edit()
	e.fees = params
	e.recompute()
}

// SelectLocation changes the location, always clearing the reader. A nil id
// clears the location; an id that is not loaded is rejected.
func (e *Engine) SelectLocation(locationID *int64) error {
	if locationID != nil && e.findLocation(*locationID) == nil {
		return errors.ErrUnknownLocation
	}

	e.edit()
	e.tx.SelectedReaderID = nil
	e.tx.SelectedLocationID = cloneID(locationID)
	e.recompute()
	return nil
}

// SelectReader selects a reader of the current location, or clears it on nil.
func (e *Engine) SelectReader(readerID *int64) error {
	if readerID != nil {
		r := e.findReader(*readerID)
		if r == nil || e.tx.SelectedLocationID == nil || r.LocationID != *e.tx.SelectedLocationID {
			return errors.ErrReaderNotAtLocation
		}
	}

	e.edit()
	e.tx.SelectedReaderID = cloneID(readerID)
	e.recompute()
	return nil
}

// Submit validates the transaction, sends it through the channel of its
// transaction method and resets the engine once the backend accepted it. Any
// error leaves the transaction in place, marks it failed and is returned as is.
func (e *Engine) Submit(ctx context.Context) error {
	if e.state == StateSubmitting {
		return errors.ErrSubmissionInProgress
	}

	e.state = StateSubmitting
	payload := e.tx.Clone()
	method := payload.TransactionMethod

	if err := e.validator.Validate(method, &payload); err != nil {
		return e.fail(method, err)
	}

	strategy, err := submission.Select(method, e.backend, e.logger)
	if err != nil {
		return e.fail(method, err)
	}

	payload.ReferenceID = uuid.NewString()
	if err := strategy.Submit(ctx, &payload); err != nil {
		return e.fail(method, err)
	}

	e.state = StateSubmitted
	e.logger.Info("transaction submitted",
		zap.String("reference_id", payload.ReferenceID),
		zap.String("transaction_method", string(method)),
		zap.String("total_amount_in_cents", payload.TotalAmountInCents.String()),
	)
	e.Reset()
	return nil
}

// Reset replaces the transaction with a fresh one on the first location.
func (e *Engine) Reset() {
	e.tx = models.NewPayload()
	if len(e.locations) > 0 {
		e.tx.SelectedLocationID = models.ID(e.locations[0].ID)
	}
	e.state = StateIdle
	e.recompute()
}

func (e *Engine) fail(method models.TransactionMethod, err error) error {
	e.state = StateFailed
	e.logger.Error("error submitting transaction",
		zap.String("transaction_method", string(method)),
		zap.String("kind", errors.KindOf(err).String()),
		zap.Error(err),
	)
	return err
}

func (e *Engine) edit() {
	if e.state != StateSubmitting {
		e.state = StateEditing
	}
}

// recompute derives tax, fee and total. The three values are committed
// together or not at all; failures are logged and the previous values stay.
func (e *Engine) recompute() {
	defer func() {
		// decimal arithmetic panics on malformed operands
		if r := recover(); r != nil {
			e.logger.Error("error recalculating totals", zap.Any("panic", r))
		}
	}()

	strategy, err := fees.Select(e.tx.PaymentMethod)
	if err != nil {
		e.logger.Error("error recalculating totals", zap.Error(err))
		return
	}

	amount := e.tx.AmountInCents
	tax := amount.Mul(e.CurrentTaxRate())
	fee := strategy(amount.Add(tax), e.fees.RatePercent, e.fees.FixedCents)
	total := amount.Add(tax).Add(fee)

	e.tx.CalculatedTaxInCents = tax
	e.tx.PatientFeeInCents = fee
	e.tx.TotalAmountInCents = total
}

func (e *Engine) findLocation(id int64) *models.Location {
	for i := range e.locations {
		if e.locations[i].ID == id {
			return &e.locations[i]
		}
	}
	return nil
}

func (e *Engine) findReader(id int64) *models.PaymentReader {
	for i := range e.readers {
		if e.readers[i].ID == id {
			return &e.readers[i]
		}
	}
	return nil
}

func cloneID(id *int64) *int64 {
	if id == nil {
		return nil
	}
	return models.ID(*id)
}
