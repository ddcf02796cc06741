package engine

import (
	// Local Packages
	models "pos-engine/models"
)

// State is the lifecycle stage of the working transaction.
type State string

const (
	StateIdle       State = "idle"
	StateEditing    State = "editing"
	StateSubmitting State = "submitting"
	StateSubmitted  State = "submitted"
	StateFailed     State = "failed"
)

func (e *Engine) State() State { return e.state }

func (e *Engine) IsLoaded() bool { return e.loaded }

// Transaction returns a copy of the working transaction.
func (e *Engine) Transaction() models.Payload { return e.tx.Clone() }

// Subtotal is amount plus tax.
func (e *Engine) Subtotal() models.Money { return e.tx.Subtotal() }

func (e *Engine) FeeParameters() FeeParameters { return e.fees }

// CurrentTaxRate is the selected location's rate, zero without a location.
func (e *Engine) CurrentTaxRate() models.Money {
	if loc := e.selectedLocation(); loc != nil {
		return loc.TaxRate
	}
	return models.Zero()
}

func (e *Engine) Organization() *models.Organization {
	if e.organization == nil {
		return nil
	}
	org := *e.organization
	return &org
}

func (e *Engine) Locations() []models.Location {
	return append([]models.Location(nil), e.locations...)
}

// LocationOptions lists the locations as label/value pairs for a picker.
func (e *Engine) LocationOptions() []models.Option {
	opts := make([]models.Option, 0, len(e.locations))
	for _, loc := range e.locations {
		opts = append(opts, models.Option{Label: loc.Name, Value: loc.ID})
	}
	return opts
}

func (e *Engine) SelectedLocation() *models.Location {
	loc := e.selectedLocation()
	if loc == nil {
		return nil
	}
	c := *loc
	return &c
}

func (e *Engine) SelectedReader() *models.PaymentReader {
	if e.tx.SelectedReaderID == nil {
		return nil
	}
	r := e.findReader(*e.tx.SelectedReaderID)
	if r == nil {
		return nil
	}
	c := *r
	return &c
}

// ReadersForSelectedLocation lists the readers that SelectReader accepts.
func (e *Engine) ReadersForSelectedLocation() []models.PaymentReader {
	if e.tx.SelectedLocationID == nil {
		return nil
	}
	var out []models.PaymentReader
	for _, r := range e.readers {
		if r.LocationID == *e.tx.SelectedLocationID {
			out = append(out, r)
		}
	}
	return out
}

func (e *Engine) selectedLocation() *models.Location {
	if e.tx.SelectedLocationID == nil {
		return nil
	}
	return e.findLocation(*e.tx.SelectedLocationID)
}
