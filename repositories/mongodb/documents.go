package mongodb

import (
	// Go Internal Packages
	"fmt"
	"time"

	// Local Packages
	models "pos-engine/models"
)

// Decimal fields are stored as strings so that no amount or rate passes
// through a binary float on its way in or out of the database.

type organizationDoc struct {
	ID                           int64      `bson:"_id"`
	Name                         string     `bson:"name"`
	TotalProcessingFeeFixed      string     `bson:"total_processing_fee_fixed"`
	TotalProcessingFeePercentage string     `bson:"total_processing_fee_percentage"`
	CreatedAt                    time.Time  `bson:"created_at"`
	UpdatedAt                    time.Time  `bson:"updated_at"`
	DeletedAt                    *time.Time `bson:"deleted_at"`
}

func (d *organizationDoc) Transform() (models.Organization, error) {
	fixed, err := models.ParseMoney(d.TotalProcessingFeeFixed)
	if err != nil {
		return models.Organization{}, fmt.Errorf("organization %d: total_processing_fee_fixed: %w", d.ID, err)
	}
	pct, err := models.ParseMoney(d.TotalProcessingFeePercentage)
	if err != nil {
		return models.Organization{}, fmt.Errorf("organization %d: total_processing_fee_percentage: %w", d.ID, err)
	}
	return models.Organization{
		ID:                           d.ID,
		Name:                         d.Name,
		TotalProcessingFeeFixed:      fixed,
		TotalProcessingFeePercentage: pct,
		CreatedAt:                    d.CreatedAt,
		UpdatedAt:                    d.UpdatedAt,
		DeletedAt:                    d.DeletedAt,
	}, nil
}

type locationDoc struct {
	ID             int64      `bson:"_id"`
	OrganizationID int64      `bson:"organization_id"`
	Name           string     `bson:"name"`
	TaxRate        string     `bson:"tax_rate"`
	CreatedAt      time.Time  `bson:"created_at"`
	UpdatedAt      time.Time  `bson:"updated_at"`
	DeletedAt      *time.Time `bson:"deleted_at"`
}

func (d *locationDoc) Transform() (models.Location, error) {
	rate, err := models.ParseMoney(d.TaxRate)
	if err != nil {
		return models.Location{}, fmt.Errorf("location %d: tax_rate: %w", d.ID, err)
	}
	return models.Location{
		ID:        d.ID,
		Name:      d.Name,
		TaxRate:   rate,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
		DeletedAt: d.DeletedAt,
	}, nil
}

type readerDoc struct {
	ID         int64      `bson:"_id"`
	Label      string     `bson:"label"`
	ReaderID   string     `bson:"reader_id"`
	Status     string     `bson:"status"`
	LocationID int64      `bson:"location_id"`
	CreatedAt  time.Time  `bson:"created_at"`
	UpdatedAt  time.Time  `bson:"updated_at"`
	DeletedAt  *time.Time `bson:"deleted_at"`
}

func (d *readerDoc) Transform() models.PaymentReader {
	return models.PaymentReader{
		ID:         d.ID,
		Label:      d.Label,
		ReaderID:   d.ReaderID,
		Status:     models.ReaderStatus(d.Status),
		LocationID: d.LocationID,
		CreatedAt:  d.CreatedAt,
		UpdatedAt:  d.UpdatedAt,
		DeletedAt:  d.DeletedAt,
	}
}
