package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// UpdateCampaignRequest is the admin settings form payload. It updates the
// active campaign when one exists, otherwise inserts a new active row.
type UpdateCampaignRequest struct {
	CampaignTitle string          `json:"campaignTitle" validate:"required"`
	TargetAmount  decimal.Decimal `json:"targetAmount" validate:"required"`
	EndDate       *time.Time      `json:"endDate"`
}

// CampaignProgressPayload is the derived progress section of the campaign
// response.
type CampaignProgressPayload struct {
	TotalRaised        decimal.Decimal `json:"totalRaised"`
	ProgressPercentage float64         `json:"progressPercentage"`
	RemainingAmount    decimal.Decimal `json:"remainingAmount"`
}

// CountdownPayload is the remaining time until the campaign end date.
type CountdownPayload struct {
	Days    int `json:"days"`
	Hours   int `json:"hours"`
	Minutes int `json:"minutes"`
	Seconds int `json:"seconds"`
}

// CampaignResponse bundles the active campaign with its derived display
// values so polling clients get everything in one round trip.
type CampaignResponse struct {
	ID            string                  `json:"id"`
	CampaignTitle string                  `json:"campaignTitle"`
	TargetAmount  decimal.Decimal         `json:"targetAmount"`
	EndDate       *time.Time              `json:"endDate"`
	IsActive      bool                    `json:"isActive"`
	CreatedAt     time.Time               `json:"createdAt"`
	Progress      CampaignProgressPayload `json:"progress"`
	Countdown     CountdownPayload        `json:"countdown"`
}
