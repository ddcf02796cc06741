package models

import (
	// Go Internal Packages
	"time"
)

// Organization carries the processing fee configuration for every location.
type Organization struct {
	ID                           int64      `json:"id"`
	Name                         string     `json:"name"`
	TotalProcessingFeeFixed      Money      `json:"totalProcessingFeeFixed"`
	TotalProcessingFeePercentage Money      `json:"totalProcessingFeePercentage"`
	CreatedAt                    time.Time  `json:"createdAt"`
	UpdatedAt                    time.Time  `json:"updatedAt"`
	DeletedAt                    *time.Time `json:"deletedAt"`
}

func (o *Organization) IsDeleted() bool { return o.DeletedAt != nil }

type Location struct {
	ID        int64      `json:"id"`
	Name      string     `json:"name"`
	TaxRate   Money      `json:"taxRate"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
	DeletedAt *time.Time `json:"deletedAt"`
}

func (l *Location) IsDeleted() bool { return l.DeletedAt != nil }

type PaymentReader struct {
	ID         int64        `json:"id"`
	Label      string       `json:"label"`
	ReaderID   string       `json:"readerId"`
	Status     ReaderStatus `json:"status"`
	LocationID int64        `json:"locationId"`
	CreatedAt  time.Time    `json:"createdAt"`
	UpdatedAt  time.Time    `json:"updatedAt"`
	DeletedAt  *time.Time   `json:"deletedAt"`
}

func (r *PaymentReader) IsDeleted() bool { return r.DeletedAt != nil }

func (r *PaymentReader) IsOnline() bool { return r.Status == ReaderStatusOnline }

// TransactionData is the catalog snapshot a data source returns.
type TransactionData struct {
	Organization *Organization   `json:"organization"`
	Locations    []Location      `json:"locations"`
	Readers      []PaymentReader `json:"readers"`
}

// Option is a label/value pair for selection lists.
type Option struct {
	Label string `json:"label"`
	Value int64  `json:"value"`
}
