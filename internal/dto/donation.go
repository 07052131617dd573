package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateDonationRequest is the payload for recording a new donation. The
// amount must be strictly positive; the service enforces it on top of the
// schema validation.
type CreateDonationRequest struct {
	DonorName   *string         `json:"donorName"`
	Email       *string         `json:"email" validate:"omitempty,email"`
	Amount      decimal.Decimal `json:"amount" validate:"required"`
	Message     *string         `json:"message"`
	IsAnonymous bool            `json:"isAnonymous"`
}

// DonationResponse mirrors a stored donation.
type DonationResponse struct {
	ID          string          `json:"id"`
	DonorName   *string         `json:"donorName"`
	Email       *string         `json:"email"`
	Amount      decimal.Decimal `json:"amount"`
	Message     *string         `json:"message"`
	IsAnonymous bool            `json:"isAnonymous"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// DonationStatsResponse carries the aggregated donation statistics.
type DonationStatsResponse struct {
	TotalRaised     decimal.Decimal `json:"totalRaised"`
	DonorCount      int             `json:"donorCount"`
	AverageDonation decimal.Decimal `json:"averageDonation"`
}
