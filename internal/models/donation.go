package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Donation represents a persisted donation row. Amounts are exact decimals;
// the column is NUMERIC(10,2).
type Donation struct {
	ID          string          `db:"id" json:"id"`
	DonorName   *string         `db:"donor_name" json:"donor_name,omitempty"`
	Email       *string         `db:"email" json:"email,omitempty"`
	Amount      decimal.Decimal `db:"amount" json:"amount"`
	Message     *string         `db:"message" json:"message,omitempty"`
	IsAnonymous bool            `db:"is_anonymous" json:"is_anonymous"`
	CreatedAt   time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time       `db:"updated_at" json:"updated_at"`
}

// DonationStats is the full recomputation over the donation set.
type DonationStats struct {
	TotalRaised     decimal.Decimal `json:"total_raised"`
	DonorCount      int             `json:"donor_count"`
	AverageDonation decimal.Decimal `json:"average_donation"`
}

// DonationFilter slices the admin donation listing.
type DonationFilter struct {
	Page     int
	PageSize int
}
